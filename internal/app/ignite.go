package app

import (
	"fmt"

	"wildfire-ca/internal/core"
	"wildfire-ca/internal/sims/fire"
)

type randomIgniter interface {
	IgniteRandom(count int) []fire.Point
}

type statsProvider interface {
	Stats() fire.Stats
}

type burningCounter interface {
	Burning() int
}

// settled reports whether sim has reached a state further steps cannot
// change. Sims that do not count burning cells never settle.
func settled(sim core.Sim) bool {
	b, ok := sim.(burningCounter)
	return ok && b.Burning() == 0
}

// reseed resets sim and, for sims that support it, lights count random fires.
// It returns how many fires were placed.
func reseed(sim core.Sim, seed int64, count int) int {
	sim.Reset(seed)
	ig, ok := sim.(randomIgniter)
	if !ok || count <= 0 {
		return 0
	}
	return len(ig.IgniteRandom(count))
}

// stepSim advances sim up to due steps, stopping once it settles so an idle
// viewer does not keep appending to the run history. It returns the number of
// steps taken.
func stepSim(sim core.Sim, due int) int {
	n := 0
	for n < due && !settled(sim) {
		sim.Step()
		n++
	}
	return n
}

// statusLine summarizes the sim for the viewer overlay.
func statusLine(sim core.Sim, step int, paused bool) string {
	line := fmt.Sprintf("%s  step %d", sim.Name(), step)
	if s, ok := sim.(statsProvider); ok {
		st := s.Stats()
		line += fmt.Sprintf("  burning %.1f%%  burned %.1f%%", st.BurningPct, st.BurnedPct)
	}
	if settled(sim) {
		line += "  [idle]"
	} else if paused {
		line += "  [paused]"
	}
	return line
}
