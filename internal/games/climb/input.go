package climb

import (
	"github.com/pallasting/ICE-Climber/internal/core"
	"github.com/pallasting/ICE-Climber/internal/games/climb/sim"
)

// holdLatch turns key presses into held intents. Terminals deliver key
// repeats instead of releases, so a movement press stays held for a few
// ticks and a jump press is buffered for the same window.
type holdLatch struct {
	hold    int
	players map[core.PlayerID]*held
}

type held struct {
	left, right, jump int
}

func newHoldLatch(ticks int) *holdLatch {
	return &holdLatch{
		hold:    max(1, ticks),
		players: make(map[core.PlayerID]*held),
	}
}

// intents resolves this tick's intent for each player.
func (l *holdLatch) intents(in core.MultiInputFrame, ids []core.PlayerID) map[core.PlayerID]sim.Intent {
	out := make(map[core.PlayerID]sim.Intent, len(ids))
	for _, id := range ids {
		h, ok := l.players[id]
		if !ok {
			h = &held{}
			l.players[id] = h
		}

		frame := in.Player(id)
		if frame.Has(core.ActionLeft) {
			h.left, h.right = l.hold, 0
		}
		if frame.Has(core.ActionRight) {
			h.right, h.left = l.hold, 0
		}
		if frame.Has(core.ActionJump) {
			h.jump = l.hold
		}

		out[id] = sim.Intent{
			Left:   h.left > 0,
			Right:  h.right > 0,
			Jump:   h.jump > 0,
			Attack: frame.Has(core.ActionAttack),
		}

		h.left = max(0, h.left-1)
		h.right = max(0, h.right-1)
		h.jump = max(0, h.jump-1)
	}
	return out
}

// release drops every held key, used when play pauses.
func (l *holdLatch) release() {
	clear(l.players)
}
