package core

import (
	"fmt"
	"sort"

	"github.com/agnivade/levenshtein"
)

// Size describes the dimensions of a simulation grid.
type Size struct {
	W int
	H int
}

// Sim defines the minimal contract a cellular automaton must implement.
type Sim interface {
	Name() string
	Size() Size
	Reset(seed int64)
	Step()
	Cells() []uint8
}

// Factory constructs a Sim using an optional configuration map.
type Factory func(cfg map[string]string) Sim

var sims = map[string]Factory{}

// Register adds a simulation factory under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	sims[name] = f
}

// Sims exposes the registry of available simulation factories.
func Sims() map[string]Factory {
	return sims
}

// Names returns the registered simulation names in sorted order.
func Names() []string {
	names := make([]string, 0, len(sims))
	for name := range sims {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Lookup returns the factory registered under name. Unknown names produce an
// error that suggests the closest registered name.
func Lookup(name string) (Factory, error) {
	if f, ok := sims[name]; ok {
		return f, nil
	}
	if guess := Suggest(name); guess != "" {
		return nil, fmt.Errorf("unknown sim %q (did you mean %q?)", name, guess)
	}
	return nil, fmt.Errorf("unknown sim %q", name)
}

// Suggest returns the registered name closest to name by edit distance, or
// the empty string when nothing is within half the length of the input.
func Suggest(name string) string {
	best := ""
	bestDist := len(name)/2 + 1
	for _, candidate := range Names() {
		d := levenshtein.ComputeDistance(name, candidate)
		if d < bestDist {
			best = candidate
			bestDist = d
		}
	}
	return best
}
