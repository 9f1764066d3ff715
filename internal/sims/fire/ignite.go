package fire

import "errors"

// Ignite sets a cell Burning with a fresh timer; a cell that is already
// Burning has its timer reset to BurnDuration. Out-of-bounds requests are
// ignored unless the world was configured with StrictIgnition, in which case
// they return an *OutOfBoundsError. Burned and Water cells are left untouched.
func (w *World) Ignite(row, col int) error {
	if !w.curr.InBounds(row, col) {
		if w.cfg.StrictIgnition {
			return &OutOfBoundsError{Point: Point{Row: row, Col: col}, Size: w.n}
		}
		return nil
	}
	idx := w.curr.index(row, col)
	if s := w.curr.stateAt(idx); s == Burned || s == Water {
		return nil
	}
	w.curr.set(idx, Burning, w.cfg.Params.BurnDuration)
	return nil
}

// IgnitePoints ignites every point in order.
func (w *World) IgnitePoints(points []Point) error {
	var errs []error
	for _, p := range points {
		if err := w.Ignite(p.Row, p.Col); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// IgniteRandom ignites count cells drawn uniformly from the inner half of the
// grid and returns the chosen points.
func (w *World) IgniteRandom(count int) []Point {
	lo, hi := w.n/4, 3*w.n/4
	if hi <= lo {
		hi = lo + 1
	}
	points := make([]Point, 0, max(count, 0))
	for i := 0; i < count; i++ {
		p := Point{Row: w.rng.IntRange(lo, hi), Col: w.rng.IntRange(lo, hi)}
		_ = w.Ignite(p.Row, p.Col)
		points = append(points, p)
	}
	return points
}

// maxRiskIgnitions caps how many hotspots a risk map can ignite.
const maxRiskIgnitions = 3

// IgniteFromRiskMap ignites up to three distinct cells whose risk exceeds
// threshold, sampled without replacement. A map with no such cell is a no-op.
func (w *World) IgniteFromRiskMap(risk [][]float64, threshold float64) ([]Point, error) {
	if err := checkMatrix("risk map", risk, w.n); err != nil {
		return nil, err
	}
	var hot []Point
	for r, row := range risk {
		for c, v := range row {
			if v > threshold {
				hot = append(hot, Point{Row: r, Col: c})
			}
		}
	}
	if len(hot) == 0 {
		return nil, nil
	}
	picks := w.rng.Sample(len(hot), maxRiskIgnitions)
	points := make([]Point, 0, len(picks))
	for _, i := range picks {
		p := hot[i]
		_ = w.Ignite(p.Row, p.Col)
		points = append(points, p)
	}
	return points, nil
}
