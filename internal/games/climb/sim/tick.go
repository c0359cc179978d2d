package sim

import "github.com/pallasting/ICE-Climber/internal/core"

// Step advances the run by one tick and returns the resulting snapshot.
// While the shop is open or the run is over nothing is simulated; during
// hit-stop the tick only counts down the freeze.
func (s *State) Step(intents map[core.PlayerID]Intent) Snapshot {
	s.events = s.events[:0]
	s.frame++

	switch {
	case s.phase != PhasePlaying:
	case s.freeze > 0:
		s.freeze--
	default:
		s.simulate(intents)
	}
	return s.Snapshot()
}

func (s *State) simulate(intents map[core.PlayerID]Intent) {
	s.tick++

	s.stream()

	s.moveClouds()
	for _, p := range s.players {
		s.movePlayer(p, intents[p.ID])
	}
	for _, e := range s.enemies {
		s.moveEnemy(e)
	}
	s.moveBoss()
	s.moveProjectiles()

	for _, p := range s.players {
		if p.Alive() {
			s.updateAttack(p, intents[p.ID])
		}
	}
	s.resolveCombat()

	s.updateAI()

	for _, p := range s.players {
		p.Combo.Tick()
	}
	for _, it := range s.items {
		it.FloatPhase += 0.05
	}

	s.updateCamera()
	s.updateProgression()
}
