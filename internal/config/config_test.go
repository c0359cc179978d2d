package config

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultsMatchGo(t *testing.T) {
	var cfg ClimbConfig
	if err := yaml.Unmarshal(DefaultYAML(), &cfg); err != nil {
		t.Fatalf("embedded YAML does not parse: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultClimbConfig()) {
		t.Errorf("embedded YAML and DefaultClimbConfig() differ:\nyaml: %+v\ngo:   %+v", cfg, DefaultClimbConfig())
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate, got %v", err)
	}
}

func TestLoadClimbCustomPathPartialOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "climb.yaml")
	if err := os.WriteFile(path, []byte("boss:\n  hp: 500\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadClimb(path)
	if err != nil {
		t.Fatalf("LoadClimb() error: %v", err)
	}
	if cfg.Boss.HP != 500 {
		t.Errorf("Boss.HP = %d, expected 500", cfg.Boss.HP)
	}
	if cfg.Physics.Gravity != 0.65 {
		t.Errorf("Physics.Gravity = %v, expected default 0.65", cfg.Physics.Gravity)
	}
}

func TestLoadClimbErrors(t *testing.T) {
	if _, err := LoadClimb(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("LoadClimb() with missing file should fail")
	}

	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("field:\n  tile_size: 0\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	_, err := LoadClimb(path)
	if !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("LoadClimb() error = %v, expected ErrInvalidConfig", err)
	}
}

func TestCapFor(t *testing.T) {
	w := DefaultClimbConfig().World
	tests := []struct {
		level    int
		expected int
	}{
		{0, 0},
		{4, 0},
		{5, 2},
		{19, 2},
		{20, 3},
		{49, 3},
		{50, 5},
		{5000, 5},
	}
	for _, tc := range tests {
		if got := w.CapFor(tc.level); got != tc.expected {
			t.Errorf("CapFor(%d) = %d, expected %d", tc.level, got, tc.expected)
		}
	}
}

func TestDifficultyLevel(t *testing.T) {
	dm := NewDifficultyManager(DefaultClimbConfig().Difficulty)

	tests := []struct {
		level    int
		expected float64
	}{
		{0, 0},
		{50, 0.5},
		{100, 1},
		{400, 1},
	}
	for _, tc := range tests {
		if got := dm.Level(tc.level); math.Abs(got-tc.expected) > 1e-9 {
			t.Errorf("Level(%d) = %v, expected %v", tc.level, got, tc.expected)
		}
	}

	if got := dm.GapChance(100); math.Abs(got-0.45) > 1e-9 {
		t.Errorf("GapChance(100) = %v, expected 0.45", got)
	}
	if got := dm.UnbreakableChance(0); math.Abs(got-0.1) > 1e-9 {
		t.Errorf("UnbreakableChance(0) = %v, expected 0.1", got)
	}

	dm.SetEnabled(false)
	dm.SetInitialLevel(0.4)
	if got := dm.Level(100); got != 0.4 {
		t.Errorf("Level(100) with progression off = %v, expected 0.4", got)
	}
}

func TestApplyClimbPreset(t *testing.T) {
	cfg := DefaultClimbConfig()
	ApplyClimbPreset(&cfg, DifficultyHard)
	if cfg.Difficulty.InitialLevel != 0.7 || !cfg.Difficulty.Enabled {
		t.Errorf("hard preset difficulty = %+v", cfg.Difficulty)
	}
	if cfg.Boss.HP != 400 {
		t.Errorf("hard preset Boss.HP = %d, expected 400", cfg.Boss.HP)
	}

	cfg = DefaultClimbConfig()
	ApplyClimbPreset(&cfg, DifficultyFixed)
	if cfg.Difficulty.Enabled {
		t.Error("fixed preset should disable progression")
	}
}

func TestEncodeRoundTrip(t *testing.T) {
	data, err := Encode(DefaultClimbConfig())
	if err != nil {
		t.Fatalf("Encode() error: %v", err)
	}
	var back ClimbConfig
	if err := yaml.Unmarshal(data, &back); err != nil {
		t.Fatalf("Unmarshal() error: %v", err)
	}
	if back.Boss.Level != 25 || back.Field.Columns() != 15 {
		t.Errorf("round trip lost fields: boss level %d, columns %d", back.Boss.Level, back.Field.Columns())
	}
}
