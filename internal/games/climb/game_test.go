package climb

import (
	"strings"
	"testing"

	"github.com/pallasting/ICE-Climber/internal/core"
	"github.com/pallasting/ICE-Climber/internal/games/climb/sim"
	"github.com/pallasting/ICE-Climber/internal/registry"
)

func newTestGame(t *testing.T, coop bool) *Game {
	t.Helper()
	g := New()
	if coop {
		g = NewCoop()
	}
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 7})
	return g
}

func press(id core.PlayerID, actions ...core.Action) core.MultiInputFrame {
	in := core.NewMultiInputFrame()
	for _, a := range actions {
		in.Press(id, a)
	}
	return in
}

func TestRegistered(t *testing.T) {
	for _, id := range []string{"climb", "climb_coop"} {
		if !registry.Exists(id) {
			t.Errorf("%s should be registered", id)
		}
		g, err := registry.Create(id)
		if err != nil {
			t.Fatalf("Create(%s): %v", id, err)
		}
		if g.ID() != id {
			t.Errorf("ID = %q, want %q", g.ID(), id)
		}
		if _, ok := g.(registry.RecordViewer); !ok {
			t.Errorf("%s should show records", id)
		}
	}
}

func TestResetPlayers(t *testing.T) {
	if n := newTestGame(t, false).State().Players; n != 1 {
		t.Errorf("solo players = %d, want 1", n)
	}
	if n := newTestGame(t, true).State().Players; n != 2 {
		t.Errorf("co-op players = %d, want 2", n)
	}
}

func TestResetFallsBackOnBadConfig(t *testing.T) {
	SetConfigPath("/nonexistent/climb.yaml")
	defer SetConfigPath("")

	g := newTestGame(t, false)
	g.Step(core.NewMultiInputFrame())
	if g.State().Ticks != 1 {
		t.Errorf("Ticks = %d, want 1 after falling back to defaults", g.State().Ticks)
	}
}

func TestStepAdvancesTicks(t *testing.T) {
	g := newTestGame(t, false)
	for range 10 {
		g.Step(core.NewMultiInputFrame())
	}
	if g.State().Ticks != 10 {
		t.Errorf("Ticks = %d, want 10", g.State().Ticks)
	}
}

func TestDeterministicRuns(t *testing.T) {
	inputs := []core.Action{core.ActionRight, core.ActionJump, core.ActionAttack, core.ActionLeft, core.ActionNone}

	run := func() uint64 {
		g := newTestGame(t, true)
		for i := range 600 {
			in := press(core.Player1, inputs[i%len(inputs)])
			in.Press(core.Player2, inputs[(i/3)%len(inputs)])
			g.Step(in)
			if g.Snapshot().Phase == sim.PhaseShop {
				g.Step(press(core.Player1, core.ActionConfirm))
			}
		}
		snap := g.Snapshot()
		return snap.Hash()
	}

	if a, b := run(), run(); a != b {
		t.Errorf("same seed and input gave hashes %x and %x", a, b)
	}
}

func TestHoldLatchKeepsMovementHeld(t *testing.T) {
	l := newHoldLatch(3)
	ids := []core.PlayerID{core.Player1}

	got := l.intents(press(core.Player1, core.ActionLeft), ids)
	if !got[core.Player1].Left {
		t.Fatal("left should be held on the press tick")
	}

	idle := core.NewMultiInputFrame()
	for i := range 2 {
		if !l.intents(idle, ids)[core.Player1].Left {
			t.Fatalf("left should still be held %d ticks after the press", i+1)
		}
	}
	if l.intents(idle, ids)[core.Player1].Left {
		t.Error("left should release after the hold window")
	}
}

func TestHoldLatchOppositeCancels(t *testing.T) {
	l := newHoldLatch(8)
	ids := []core.PlayerID{core.Player1}

	l.intents(press(core.Player1, core.ActionLeft), ids)
	got := l.intents(press(core.Player1, core.ActionRight), ids)[core.Player1]
	if got.Left || !got.Right {
		t.Errorf("intent = %+v, want right only", got)
	}
}

func TestHoldLatchAttackIsSingleTick(t *testing.T) {
	l := newHoldLatch(8)
	ids := []core.PlayerID{core.Player1}

	if !l.intents(press(core.Player1, core.ActionAttack), ids)[core.Player1].Attack {
		t.Fatal("attack should fire on the press tick")
	}
	if l.intents(core.NewMultiInputFrame(), ids)[core.Player1].Attack {
		t.Error("attack should not repeat")
	}
}

func TestHoldLatchPlayersIndependent(t *testing.T) {
	l := newHoldLatch(4)
	ids := []core.PlayerID{core.Player1, core.Player2}

	got := l.intents(press(core.Player2, core.ActionJump), ids)
	if got[core.Player1].Jump {
		t.Error("player 1 should not jump on player 2's key")
	}
	if !got[core.Player2].Jump {
		t.Error("player 2 should jump")
	}
}

func TestHoldLatchRelease(t *testing.T) {
	l := newHoldLatch(8)
	ids := []core.PlayerID{core.Player1}

	l.intents(press(core.Player1, core.ActionRight), ids)
	l.release()
	if l.intents(core.NewMultiInputFrame(), ids)[core.Player1].Right {
		t.Error("release should drop held keys")
	}
}

func TestPauseToggle(t *testing.T) {
	g := newTestGame(t, false)
	g.Step(core.NewMultiInputFrame())

	g.Step(press(core.Player1, core.ActionPause))
	if !g.State().Paused {
		t.Fatal("game should be paused")
	}
	ticks := g.State().Ticks
	g.Step(core.NewMultiInputFrame())
	if g.State().Ticks != ticks {
		t.Error("paused game should not advance")
	}

	g.Step(press(core.Player1, core.ActionPause))
	if g.State().Paused {
		t.Error("second pause should resume")
	}
}

func TestShopCursorWraps(t *testing.T) {
	g := newTestGame(t, true)
	n := len(g.state.Upgrades())

	g.handleShop(press(core.Player1, core.ActionRight))
	if g.cursors[core.Player1] != 1 {
		t.Errorf("P1 cursor = %d, want 1", g.cursors[core.Player1])
	}
	if g.cursors[core.Player2] != 0 {
		t.Errorf("P2 cursor = %d, want 0", g.cursors[core.Player2])
	}

	g.handleShop(press(core.Player2, core.ActionLeft))
	if g.cursors[core.Player2] != n-1 {
		t.Errorf("P2 cursor = %d, want %d", g.cursors[core.Player2], n-1)
	}
}

func TestShopRejectsBuyOutsideCheckpoint(t *testing.T) {
	g := newTestGame(t, false)

	g.handleShop(press(core.Player1, core.ActionAttack))
	if !strings.Contains(g.shopMsg, "cannot buy") {
		t.Errorf("shopMsg = %q, want a refusal", g.shopMsg)
	}
	if g.state.Owns(core.Player1, sim.UpgradeGrip) {
		t.Error("upgrade should not be granted while playing")
	}
}

func TestRenderDrawsPlayfield(t *testing.T) {
	g := newTestGame(t, true)
	g.Step(core.NewMultiInputFrame())

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	out := screen.String()

	if !strings.Contains(screen.Row(0), "ALT") {
		t.Errorf("HUD row = %q, want altitude", screen.Row(0))
	}
	for _, glyph := range []rune{GlyphPlayer1, GlyphPlayer2, GlyphRock} {
		if !strings.ContainsRune(out, glyph) {
			t.Errorf("screen missing %q", glyph)
		}
	}
}

func TestRenderRecordLine(t *testing.T) {
	g := newTestGame(t, false)
	g.SetRecord(1234, 56)

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	if footer := screen.Row(23); !strings.Contains(footer, "BEST 1234") {
		t.Errorf("footer = %q, want the stored record", footer)
	}
}

func TestRenderTooSmall(t *testing.T) {
	g := New()
	g.Reset(core.RuntimeConfig{ScreenW: 20, ScreenH: 8, Seed: 1})

	g.Step(core.NewMultiInputFrame())
	if g.State().Ticks != 0 {
		t.Error("undersized game should not advance")
	}

	screen := core.NewScreen(20, 8)
	g.Render(screen)
	if !strings.Contains(screen.String(), "too small") {
		t.Error("expected too-small message")
	}
}

func TestViewportScale(t *testing.T) {
	v := newViewport(80, 24, 600, 800, 0)
	if v.rows != 22 {
		t.Errorf("rows = %d, want 22", v.rows)
	}
	if v.cols > 78 || v.cols < 1 {
		t.Errorf("cols = %d, out of range", v.cols)
	}

	r := v.rect(core.Box{X: 0, Y: 0, W: 600, H: 800})
	if r.W != v.cols || r.H != v.rows {
		t.Errorf("full field rect = %+v, want %dx%d", r, v.cols, v.rows)
	}

	off := v.rect(core.Box{X: 0, Y: -200, W: 40, H: 40})
	if off.H != 0 {
		t.Errorf("box above the view should clip away, got %+v", off)
	}

	if _, _, ok := v.point(10, 900); ok {
		t.Error("point below the view should be off field")
	}
}

func TestBossBar(t *testing.T) {
	bar := bossBar(150, 300, 10)
	if !strings.Contains(bar, "█████░░░░░") {
		t.Errorf("bar = %q, want half filled", bar)
	}
	if !strings.Contains(bar, "150/300") {
		t.Errorf("bar = %q, want hp text", bar)
	}
}

func TestResizeKeepsRun(t *testing.T) {
	g := newTestGame(t, false)
	for range 5 {
		g.Step(core.NewMultiInputFrame())
	}

	g.Resize(20, 8)
	g.Step(core.NewMultiInputFrame())
	if g.State().Ticks != 5 {
		t.Errorf("Ticks = %d, undersized screen should hold the run at 5", g.State().Ticks)
	}

	g.Resize(100, 30)
	g.Step(core.NewMultiInputFrame())
	if g.State().Ticks != 6 {
		t.Errorf("Ticks = %d, want 6 after growing back", g.State().Ticks)
	}
}
