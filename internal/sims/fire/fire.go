package fire

import (
	"wildfire-ca/internal/core"
)

// World is the run context of one fire simulation: it owns the grid, the
// environmental fields, the wind table, the history and the random source.
// A World must not be stepped from more than one goroutine.
type World struct {
	cfg Config
	n   int

	fields *Fields
	wind   WindTable

	curr *Grid
	next *Grid

	history History

	rng *core.RNG
}

// Result is the outcome of Run.
type Result struct {
	// Steps counts the Step invocations executed; the history holds Steps+1
	// snapshots.
	Steps   int
	History *History
	Final   Stats
}

// New returns a fire simulation of the given size using defaults. It panics
// when n is not positive.
func New(n int) *World {
	cfg := DefaultConfig()
	cfg.Params.GridSize = n
	w, err := NewWithConfig(cfg)
	if err != nil {
		panic(err)
	}
	return w
}

// NewWithConfig builds a World whose randomness is seeded from cfg.Seed.
func NewWithConfig(cfg Config) (*World, error) {
	return NewWithRNG(cfg, core.NewRNG(cfg.Seed))
}

// NewWithRNG builds a World drawing every random decision, including
// synthesized fields, from rng.
func NewWithRNG(cfg Config, rng *core.RNG) (*World, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if rng == nil {
		rng = core.NewRNG(cfg.Seed)
	}
	n := cfg.Params.GridSize
	fields, err := NewFields(n, cfg.Vegetation, cfg.Temperature, rng)
	if err != nil {
		return nil, err
	}
	w := &World{
		cfg:    cfg,
		n:      n,
		fields: fields,
		wind:   NewWindTable(cfg.Params.WindSpeed, cfg.Params.WindDirection),
		curr:   newGrid(n),
		next:   newGrid(n),
		rng:    rng,
	}
	w.applyWater()
	return w, nil
}

// Name returns the simulation identifier.
func (w *World) Name() string { return "fire" }

// Size reports the grid dimensions.
func (w *World) Size() core.Size { return core.Size{W: w.n, H: w.n} }

// Cells exposes the current state buffer, one CellState per byte.
func (w *World) Cells() []uint8 { return w.curr.states.Cells() }

// Config returns the configuration the world was built with.
func (w *World) Config() Config { return w.cfg }

// Grid exposes the current grid for reading.
func (w *World) Grid() *Grid { return w.curr }

// Fields exposes the environmental layers.
func (w *World) Fields() *Fields { return w.fields }

// Wind returns the per-direction wind multipliers.
func (w *World) Wind() WindTable { return w.wind }

// History exposes the recorded snapshots and stats.
func (w *World) History() *History { return &w.history }

// Vegetation returns a copy of the vegetation field.
func (w *World) Vegetation() [][]float64 { return w.fields.VegetationMatrix() }

// Stats summarizes the current grid.
func (w *World) Stats() Stats { return statsOf(w.curr.states.Cells()) }

// Burning returns the number of cells currently on fire.
func (w *World) Burning() int { return w.curr.Count(Burning) }

// Reset clears the grid and history and reseeds the random source. A zero seed
// reuses the configured seed. Environmental fields are kept.
func (w *World) Reset(seed int64) {
	if seed == 0 {
		seed = w.cfg.Seed
	}
	w.rng.Seed(seed)
	w.curr.clear()
	w.next.clear()
	w.history.reset()
	w.applyWater()
}

// Step advances the fire by one synchronous update and records the result.
// The pre-step state is recorded first when the history is empty.
func (w *World) Step() {
	if w.history.Len() == 0 {
		w.history.record(w.curr.Snapshot())
	}
	w.advance()
	w.history.record(w.curr.Snapshot())
}

// Run records the current grid as step 0 and steps until maxSteps updates have
// run or nothing is burning. Non-positive maxSteps uses the configured
// TimeSteps. Any earlier history is discarded.
func (w *World) Run(maxSteps int) Result {
	if maxSteps <= 0 {
		maxSteps = w.cfg.Params.TimeSteps
	}
	w.history.reset()
	w.history.record(w.curr.Snapshot())
	steps := 0
	for steps < maxSteps {
		w.Step()
		steps++
		if w.Burning() == 0 {
			break
		}
	}
	final, _ := w.history.Final()
	return Result{Steps: steps, History: &w.history, Final: final}
}

// advance applies the update rule. Every decision reads w.curr only and every
// write lands in w.next, so no cell sees a neighbor's same-step transition.
func (w *World) advance() {
	curr, next := w.curr, w.next
	next.copyFrom(curr)

	p := w.cfg.Params
	for row := 0; row < w.n; row++ {
		for col := 0; col < w.n; col++ {
			idx := curr.index(row, col)
			if curr.stateAt(idx) != Burning {
				continue
			}

			if t := curr.timers[idx] - 1; t <= 0 {
				next.set(idx, Burned, 0)
			} else {
				next.timers[idx] = t
			}

			for _, d := range Directions {
				dr, dc := d.Offset()
				nr, nc := row+dr, col+dc
				if !curr.InBounds(nr, nc) {
					continue
				}
				nIdx := curr.index(nr, nc)
				if curr.stateAt(nIdx) != Unburned {
					continue
				}
				// Independent trial per burning neighbor; any success ignites.
				if w.rng.Float64() < SpreadProbability(p, w.fields, w.wind, nIdx, d) {
					next.set(nIdx, Burning, p.BurnDuration)
				}
			}
		}
	}

	w.curr, w.next = next, curr
}

func (w *World) applyWater() {
	for _, pt := range w.cfg.Water {
		w.curr.set(w.curr.index(pt.Row, pt.Col), Water, 0)
	}
}

func init() {
	core.Register("fire", func(cfg map[string]string) core.Sim {
		w, err := NewWithConfig(FromMap(cfg))
		if err != nil {
			return New(DefaultParams().GridSize)
		}
		return w
	})
}
