package fire

import (
	"encoding/json"
	"errors"
	"slices"
	"testing"

	"wildfire-ca/internal/core"
)

func TestOutOfBoundsIgnitionIsNoop(t *testing.T) {
	w := newTestWorld(t, 10, nil)
	for _, p := range []Point{{-1, 5}, {10, 5}, {5, -1}, {5, 10}} {
		if err := w.Ignite(p.Row, p.Col); err != nil {
			t.Fatalf("lenient ignite %v returned %v", p, err)
		}
	}
	if got := w.Grid().Count(Unburned); got != 100 {
		t.Fatalf("expected every cell unburned, got %d", got)
	}

	strict := newTestWorld(t, 10, func(c *Config) { c.StrictIgnition = true })
	err := strict.Ignite(10, 5)
	var oob *OutOfBoundsError
	if !errors.As(err, &oob) || !errors.Is(err, ErrOutOfBounds) {
		t.Fatalf("strict ignite expected OutOfBoundsError, got %v", err)
	}
	if oob.Point != (Point{Row: 10, Col: 5}) {
		t.Fatalf("unexpected point %+v", oob.Point)
	}
	err = strict.IgnitePoints([]Point{{-1, 0}, {2, 2}, {0, 99}})
	if !errors.Is(err, ErrOutOfBounds) {
		t.Fatalf("expected joined out-of-bounds errors, got %v", err)
	}
	if strict.Grid().State(2, 2) != Burning {
		t.Fatal("valid point in a mixed request should still ignite")
	}
}

func TestIgniteSetsTimerAndSkipsNonFuel(t *testing.T) {
	w := newTestWorld(t, 6, func(c *Config) {
		c.Params.BurnDuration = 4
		c.Water = []Point{{0, 0}}
	})
	if err := w.Ignite(0, 0); err != nil {
		t.Fatalf("ignite water: %v", err)
	}
	if w.Grid().State(0, 0) != Water || w.Grid().Timer(0, 0) != 0 {
		t.Fatal("water must never ignite")
	}
	_ = w.Ignite(3, 3)
	if w.Grid().State(3, 3) != Burning || w.Grid().Timer(3, 3) != 4 {
		t.Fatalf("expected burning cell with timer 4, got %v/%d", w.Grid().State(3, 3), w.Grid().Timer(3, 3))
	}

	w.Step()
	if got := w.Grid().Timer(3, 3); got != 3 {
		t.Fatalf("expected timer 3 after one step, got %d", got)
	}
	_ = w.Ignite(3, 3)
	if w.Grid().State(3, 3) != Burning || w.Grid().Timer(3, 3) != 4 {
		t.Fatalf("re-igniting should refresh the timer to 4, got %v/%d", w.Grid().State(3, 3), w.Grid().Timer(3, 3))
	}

	short := newTestWorld(t, 6, func(c *Config) { c.Params.BurnDuration = 1 })
	_ = short.Ignite(2, 2)
	short.Step()
	if short.Grid().State(2, 2) != Burned {
		t.Fatalf("expected burned cell after one step, got %v", short.Grid().State(2, 2))
	}
	_ = short.Ignite(2, 2)
	if short.Grid().State(2, 2) != Burned || short.Grid().Timer(2, 2) != 0 {
		t.Fatal("burned cells must not re-ignite")
	}
}

func TestBurnDurationOneBurnsOutWhileSpreading(t *testing.T) {
	spread := false
	for seed := int64(1); seed <= 5; seed++ {
		w := newTestWorld(t, 10, func(c *Config) {
			c.Seed = seed
			c.Params.BurnDuration = 1
			c.Params.BaseSpreadProb = 1
			c.Params.Humidity = 0
		})
		_ = w.Ignite(5, 5)
		w.Step()

		g := w.Grid()
		if g.State(5, 5) != Burned || g.Timer(5, 5) != 0 {
			t.Fatalf("seed %d: ignition cell should burn out in one step, got %v", seed, g.State(5, 5))
		}
		for _, d := range Directions {
			dr, dc := d.Offset()
			switch g.State(5+dr, 5+dc) {
			case Burning:
				spread = true
				if g.Timer(5+dr, 5+dc) != 1 {
					t.Fatalf("seed %d: spread cell timer %d, want 1", seed, g.Timer(5+dr, 5+dc))
				}
			case Unburned:
			default:
				t.Fatalf("seed %d: neighbor %v in unexpected state %v", seed, d, g.State(5+dr, 5+dc))
			}
		}

		// Exactly one trial per neighbor was drawn.
		ref := core.NewRNG(seed)
		for i := 0; i < 8; i++ {
			ref.Float64()
		}
		if w.rng.Float64() != ref.Float64() {
			t.Fatalf("seed %d: step consumed an unexpected number of random draws", seed)
		}
	}
	if !spread {
		t.Fatal("expected the fire to reach at least one neighbor across seeds")
	}
}

func TestConcurrentIgnitionAttemptsAreORed(t *testing.T) {
	ignitedSome, sparedSome := false, false
	for seed := int64(1); seed <= 40; seed++ {
		w := newTestWorld(t, 3, func(c *Config) {
			c.Seed = seed
			c.Params.BaseSpreadProb = 0.08
			c.Params.BurnDuration = 5
		})
		for r := 0; r < 3; r++ {
			for c := 0; c < 3; c++ {
				if r != 1 || c != 1 {
					_ = w.Ignite(r, c)
				}
			}
		}
		p := SpreadProbability(w.cfg.Params, w.fields, w.wind, w.curr.index(1, 1), North)

		ref := core.NewRNG(seed)
		want := false
		for i := 0; i < 8; i++ {
			if ref.Float64() < p {
				want = true
			}
		}

		w.Step()
		got := w.Grid().State(1, 1) == Burning
		if got != want {
			t.Fatalf("seed %d: centre burning=%v, want %v", seed, got, want)
		}
		if got {
			ignitedSome = true
			if w.Grid().Timer(1, 1) != 5 {
				t.Fatalf("seed %d: centre timer %d, want 5", seed, w.Grid().Timer(1, 1))
			}
		} else {
			sparedSome = true
		}
	}
	if !ignitedSome || !sparedSome {
		t.Fatalf("expected both outcomes across seeds (ignited=%v spared=%v)", ignitedSome, sparedSome)
	}
}

func TestRunIsMonotonicAndConserving(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Params.GridSize = 32
	cfg.Params.WindSpeed = 12
	cfg.Params.BaseSpreadProb = 0.45
	cfg.Water = []Point{{3, 3}, {3, 4}, {20, 20}}
	w, err := NewWithConfig(cfg)
	if err != nil {
		t.Fatalf("NewWithConfig: %v", err)
	}
	w.IgniteRandom(3)
	res := w.Run(60)

	h := res.History
	if h.Len() != res.Steps+1 {
		t.Fatalf("history has %d frames for %d steps", h.Len(), res.Steps)
	}
	total := cfg.Params.GridSize * cfg.Params.GridSize
	for i := 0; i < h.Len(); i++ {
		if got := h.StatsAt(i).Total(); got != total {
			t.Fatalf("frame %d: counts sum to %d, want %d", i, got, total)
		}
		if s := h.StatsAt(i); s.Affected != s.Burning+s.Burned {
			t.Fatalf("frame %d: affected %d != burning+burned", i, s.Affected)
		}
	}
	for i := 1; i < h.Len(); i++ {
		prev, cur := h.Frame(i-1), h.Frame(i)
		for idx := range cur.Cells() {
			a, b := CellState(prev.Cells()[idx]), CellState(cur.Cells()[idx])
			if !allowedTransition(a, b) {
				t.Fatalf("frame %d cell %d: illegal transition %v -> %v", i, idx, a, b)
			}
		}
	}
	for _, p := range cfg.Water {
		if h.Frame(h.Len()-1).At(p.Row, p.Col) != Water {
			t.Fatalf("water cell %v changed state", p)
		}
	}
	if final, _ := h.Final(); final != res.Final {
		t.Fatal("result final stats disagree with history")
	}
}

func allowedTransition(a, b CellState) bool {
	switch a {
	case Unburned:
		return b == Unburned || b == Burning
	case Burning:
		return b == Burning || b == Burned
	case Burned:
		return b == Burned
	case Water:
		return b == Water
	}
	return false
}

func TestRunDeterministicForSeed(t *testing.T) {
	build := func(seed int64) *World {
		cfg := DefaultConfig()
		cfg.Params.GridSize = 24
		cfg.Seed = seed
		w, err := NewWithConfig(cfg)
		if err != nil {
			t.Fatalf("NewWithConfig: %v", err)
		}
		w.IgniteRandom(2)
		w.Run(0)
		return w
	}

	a, b := build(42), build(42)
	if a.History().Len() != b.History().Len() {
		t.Fatalf("history lengths differ: %d vs %d", a.History().Len(), b.History().Len())
	}
	for i := 0; i < a.History().Len(); i++ {
		if !a.History().Frame(i).Equal(b.History().Frame(i)) {
			t.Fatalf("frame %d differs between identical runs", i)
		}
		if a.History().StatsAt(i) != b.History().StatsAt(i) {
			t.Fatalf("stats %d differ between identical runs", i)
		}
	}

	c := build(43)
	if slices.Equal(a.Vegetation()[0], c.Vegetation()[0]) {
		t.Fatal("different seeds should synthesize different vegetation")
	}
}

func TestRunStopsWhenFireIsOut(t *testing.T) {
	w := newTestWorld(t, 5, func(c *Config) {
		c.Params.BurnDuration = 3
		c.Params.TimeSteps = 50
		for _, d := range Directions {
			dr, dc := d.Offset()
			c.Water = append(c.Water, Point{Row: 2 + dr, Col: 2 + dc})
		}
	})
	_ = w.Ignite(2, 2)
	res := w.Run(0)
	if res.Steps != 3 || res.History.Len() != 4 {
		t.Fatalf("expected 3 steps and 4 frames, got %d and %d", res.Steps, res.History.Len())
	}
	if res.Final.Burned != 1 || res.Final.Burning != 0 || res.Final.Water != 8 {
		t.Fatalf("unexpected final stats %+v", res.Final)
	}

	idle := newTestWorld(t, 5, nil)
	res = idle.Run(50)
	if res.Steps != 1 || res.History.Len() != 2 {
		t.Fatalf("unignited run: expected 1 step and 2 frames, got %d and %d", res.Steps, res.History.Len())
	}
}

func TestRunHonoursStepBudget(t *testing.T) {
	w := newTestWorld(t, 9, func(c *Config) {
		c.Params.BurnDuration = 100
	})
	_ = w.Ignite(4, 4)
	res := w.Run(7)
	if res.Steps != 7 || res.History.Len() != 8 {
		t.Fatalf("expected budget of 7 steps, got %d steps and %d frames", res.Steps, res.History.Len())
	}
	if res.History.StatsAt(0).Burning != 1 {
		t.Fatalf("frame 0 should be the ignited initial state, got %+v", res.History.StatsAt(0))
	}
}

func TestIgniteRandomStaysInInnerHalf(t *testing.T) {
	w := newTestWorld(t, 20, nil)
	points := w.IgniteRandom(200)
	if len(points) != 200 {
		t.Fatalf("expected 200 points, got %d", len(points))
	}
	for _, p := range points {
		if p.Row < 5 || p.Row >= 15 || p.Col < 5 || p.Col >= 15 {
			t.Fatalf("random ignition %v outside inner half", p)
		}
		if w.Grid().State(p.Row, p.Col) != Burning {
			t.Fatalf("random ignition %v not burning", p)
		}
	}

	tiny := newTestWorld(t, 1, nil)
	if pts := tiny.IgniteRandom(1); pts[0] != (Point{}) || tiny.Grid().State(0, 0) != Burning {
		t.Fatalf("single-cell grid should ignite its only cell, got %v", pts)
	}
}

func TestIgniteFromRiskMap(t *testing.T) {
	w := newTestWorld(t, 8, nil)
	risk := constMatrix(8, 0.1)
	hot := []Point{{0, 0}, {1, 6}, {4, 4}, {7, 2}, {7, 7}}
	for _, p := range hot {
		risk[p.Row][p.Col] = 0.9
	}
	points, err := w.IgniteFromRiskMap(risk, 0.7)
	if err != nil {
		t.Fatalf("IgniteFromRiskMap: %v", err)
	}
	if len(points) != 3 {
		t.Fatalf("expected 3 ignitions, got %d", len(points))
	}
	seen := map[Point]bool{}
	for _, p := range points {
		if !slices.Contains(hot, p) {
			t.Fatalf("ignited %v which is not above threshold", p)
		}
		if seen[p] {
			t.Fatalf("point %v sampled twice", p)
		}
		seen[p] = true
	}
	if got := w.Grid().Count(Burning); got != 3 {
		t.Fatalf("expected 3 burning cells, got %d", got)
	}

	few := newTestWorld(t, 8, nil)
	risk = constMatrix(8, 0.1)
	risk[2][3] = 0.75
	risk[5][5] = 0.7 // equal to threshold, not above
	points, _ = few.IgniteFromRiskMap(risk, 0.7)
	if len(points) != 1 || points[0] != (Point{2, 3}) {
		t.Fatalf("expected only (2,3), got %v", points)
	}

	cold := newTestWorld(t, 8, nil)
	points, err = cold.IgniteFromRiskMap(constMatrix(8, 0.2), 0.7)
	if err != nil || points != nil || cold.Grid().Count(Burning) != 0 {
		t.Fatalf("cold map should be a no-op, got %v %v", points, err)
	}

	if _, err := cold.IgniteFromRiskMap(constMatrix(7, 1), 0.5); !errors.Is(err, ErrFieldSize) {
		t.Fatalf("expected size error for 7x7 risk map, got %v", err)
	}
}

func TestSyntheticRiskMap(t *testing.T) {
	risk := SyntheticRiskMap(64, core.NewRNG(42))
	if len(risk) != 64 || len(risk[0]) != 64 {
		t.Fatalf("unexpected risk map shape %dx%d", len(risk), len(risk[0]))
	}
	hot := 0
	for _, row := range risk {
		for _, v := range row {
			if v < 0 || v > 1 {
				t.Fatalf("risk %f outside [0, 1]", v)
			}
			if v > 0.7 {
				hot++
			}
		}
	}
	if hot == 0 {
		t.Fatal("expected hotspots above 0.7")
	}
	if SyntheticRiskMap(0, core.NewRNG(1)) != nil {
		t.Fatal("empty grid should yield nil map")
	}
}

func TestResetReplaysRun(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Params.GridSize = 16
	cfg.Water = []Point{{0, 0}}
	w, err := NewWithConfig(cfg)
	if err != nil {
		t.Fatalf("NewWithConfig: %v", err)
	}
	w.Reset(9)
	w.IgniteRandom(2)
	first := w.Run(20)
	frames := first.History.Frames()

	w.Reset(9)
	if w.History().Len() != 0 || w.Burning() != 0 || w.Grid().State(0, 0) != Water {
		t.Fatal("Reset should clear history and fire but keep water")
	}
	w.IgniteRandom(2)
	second := w.Run(20)
	if second.History.Len() != len(frames) {
		t.Fatalf("replay produced %d frames, want %d", second.History.Len(), len(frames))
	}
	for i, f := range frames {
		if !f.Equal(second.History.Frame(i)) {
			t.Fatalf("frame %d differs after reset", i)
		}
	}
}

func TestStepRecordsInitialFrame(t *testing.T) {
	w := newTestWorld(t, 6, nil)
	_ = w.Ignite(3, 3)
	w.Step()
	if w.History().Len() != 2 {
		t.Fatalf("expected initial and stepped frames, got %d", w.History().Len())
	}
	if w.History().Frame(0).At(3, 3) != Burning {
		t.Fatal("frame 0 should hold the pre-step state")
	}
}

func TestDataJSON(t *testing.T) {
	w := newTestWorld(t, 4, func(c *Config) {
		c.Water = []Point{{0, 3}}
	})
	_ = w.Ignite(1, 1)
	w.Run(2)

	raw, err := json.Marshal(w.Data())
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var decoded struct {
		Params struct {
			GridSize  int `json:"grid_size"`
			TimeSteps int `json:"time_steps"`
		} `json:"params"`
		History      [][][]int   `json:"history"`
		StatsHistory []Stats     `json:"stats_history"`
		Vegetation   [][]float64 `json:"vegetation"`
		FinalStats   *Stats      `json:"final_stats"`
	}
	if err := json.Unmarshal(raw, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if decoded.Params.GridSize != 4 || decoded.Params.TimeSteps != w.History().Len() {
		t.Fatalf("unexpected params %+v", decoded.Params)
	}
	if len(decoded.History) != w.History().Len() || len(decoded.StatsHistory) != w.History().Len() {
		t.Fatalf("history length mismatch")
	}
	if decoded.History[0][1][1] != int(Burning) || decoded.History[0][0][3] != int(Water) {
		t.Fatalf("unexpected initial frame %v", decoded.History[0])
	}
	if len(decoded.Vegetation) != 4 || decoded.Vegetation[2][2] != 0.6 {
		t.Fatalf("unexpected vegetation %v", decoded.Vegetation)
	}
	if decoded.FinalStats == nil || *decoded.FinalStats != decoded.StatsHistory[len(decoded.StatsHistory)-1] {
		t.Fatal("final stats should mirror the last history entry")
	}
}

func TestFromMapAndParameters(t *testing.T) {
	cfg := FromMap(map[string]string{
		"size":           "24",
		"wind_speed":     "7.5",
		"wind_direction": "270",
		"humidity":       "150",
		"spread_prob":    "0.4",
		"burn_duration":  "x",
		"strict":         "true",
		"seed":           "11",
	})
	if cfg.Params.GridSize != 24 || cfg.Params.WindSpeed != 7.5 || cfg.Params.WindDirection != 270 {
		t.Fatalf("unexpected parsed params %+v", cfg.Params)
	}
	if cfg.Params.Humidity != DefaultParams().Humidity || cfg.Params.BurnDuration != DefaultParams().BurnDuration {
		t.Fatalf("invalid values should keep defaults, got %+v", cfg.Params)
	}
	if !cfg.StrictIgnition || cfg.Seed != 11 {
		t.Fatalf("unexpected strict/seed %v/%d", cfg.StrictIgnition, cfg.Seed)
	}

	w, err := NewWithConfig(cfg)
	if err != nil {
		t.Fatalf("NewWithConfig: %v", err)
	}
	snap := w.Parameters()
	if p, ok := snap.Lookup("spread_prob"); !ok || p.Value != "0.4" {
		t.Fatalf("expected spread_prob parameter 0.4, got %+v", p)
	}
	if p, ok := snap.Lookup("size"); !ok || p.Type != core.ParamTypeInt || p.Value != "24" {
		t.Fatalf("unexpected size parameter %+v", p)
	}
}

func TestRegisteredFactory(t *testing.T) {
	factory, err := core.Lookup("fire")
	if err != nil {
		t.Fatalf("fire sim not registered: %v", err)
	}
	sim := factory(map[string]string{"size": "16"})
	if sim.Size() != (core.Size{W: 16, H: 16}) {
		t.Fatalf("unexpected size %+v", sim.Size())
	}
	sim.Reset(3)
	sim.Step()
	if len(sim.Cells()) != 256 {
		t.Fatalf("expected 256 cells, got %d", len(sim.Cells()))
	}
}
