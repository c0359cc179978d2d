package sim

import (
	"errors"
	"fmt"

	"github.com/pallasting/ICE-Climber/internal/core"
)

// ErrUnknownUpgrade is returned when parsing an unrecognized upgrade name.
var ErrUnknownUpgrade = errors.New("sim: unknown upgrade")

// Upgrade is a shop item bought at checkpoints.
type Upgrade int

const (
	UpgradeGrip Upgrade = iota
	UpgradeLowGravity
	UpgradePower
	UpgradeJumpBoost
)

var upgradeNames = map[Upgrade]string{
	UpgradeGrip:       "grip",
	UpgradeLowGravity: "low_gravity",
	UpgradePower:      "power",
	UpgradeJumpBoost:  "jump_boost",
}

// String returns the upgrade name.
func (u Upgrade) String() string {
	if name, ok := upgradeNames[u]; ok {
		return name
	}
	return "unknown"
}

// ParseUpgrade returns the upgrade with the given name.
func ParseUpgrade(name string) (Upgrade, error) {
	for u, n := range upgradeNames {
		if n == name {
			return u, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownUpgrade, name)
}

// AllUpgrades returns every upgrade in shop order.
func AllUpgrades() []Upgrade {
	return []Upgrade{UpgradeGrip, UpgradeLowGravity, UpgradePower, UpgradeJumpBoost}
}

// Upgrades lists the kinds offered by the shop.
func (s *State) Upgrades() []Upgrade {
	return AllUpgrades()
}

// Cost returns the price of an upgrade, or 0 if unknown.
func (s *State) Cost(u Upgrade) int {
	c := s.cfg.Upgrades
	switch u {
	case UpgradeGrip:
		return c.GripCost
	case UpgradeLowGravity:
		return c.LowGravityCost
	case UpgradePower:
		return c.PowerCost
	case UpgradeJumpBoost:
		return c.JumpBoostCost
	default:
		return 0
	}
}

// Owns reports whether a player already has an upgrade.
func (s *State) Owns(id core.PlayerID, u Upgrade) bool {
	p := s.player(id)
	if p == nil {
		return false
	}
	if f := upgradeFlag(&p.Upgrades, u); f != nil {
		return *f
	}
	return false
}

func upgradeFlag(up *Upgrades, u Upgrade) *bool {
	switch u {
	case UpgradeGrip:
		return &up.Grip
	case UpgradeLowGravity:
		return &up.LowGravity
	case UpgradePower:
		return &up.Power
	case UpgradeJumpBoost:
		return &up.JumpBoost
	default:
		return nil
	}
}

// Buy spends shared currency on an upgrade for one player. It only works
// while the shop is open and returns false if the upgrade is owned,
// unknown or unaffordable.
func (s *State) Buy(id core.PlayerID, u Upgrade) bool {
	if s.phase != PhaseShop {
		return false
	}
	p := s.player(id)
	if p == nil {
		return false
	}
	flag := upgradeFlag(&p.Upgrades, u)
	cost := s.Cost(u)
	if flag == nil || *flag || s.currency < cost {
		return false
	}
	s.currency -= cost
	*flag = true
	return true
}

// Resume closes the shop and continues the run.
func (s *State) Resume() {
	if s.phase == PhaseShop {
		s.phase = PhasePlaying
	}
}

// Currency returns the shared currency balance.
func (s *State) Currency() int {
	return s.currency
}
