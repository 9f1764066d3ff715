package fire

import "wildfire-ca/internal/core"

// SyntheticRiskMap builds an n x n risk map with a low uniform background and
// five circular hotspots, clipped to [0, 1]. Hotspot placement and radii are
// scaled from a 64-cell reference grid.
func SyntheticRiskMap(n int, rng *core.RNG) [][]float64 {
	if n <= 0 {
		return nil
	}
	risk := make([][]float64, n)
	for r := range risk {
		risk[r] = make([]float64, n)
		for c := range risk[r] {
			risk[r][c] = rng.Uniform(0.1, 0.5)
		}
	}

	scale := func(v int) int { return v * n / 64 }
	rMin := max(scale(5), 1)
	rMax := max(scale(15), rMin+1)
	for i := 0; i < 5; i++ {
		cx := rng.IntRange(scale(10), scale(54))
		cy := rng.IntRange(scale(10), scale(54))
		radius := rng.IntRange(rMin, rMax)
		boost := rng.Uniform(0.3, 0.5)
		r2 := radius * radius
		for y := 0; y < n; y++ {
			for x := 0; x < n; x++ {
				dx, dy := x-cx, y-cy
				if dx*dx+dy*dy <= r2 {
					risk[y][x] += boost
				}
			}
		}
	}

	for _, row := range risk {
		for c, v := range row {
			row[c] = clamp(v, 0, 1)
		}
	}
	return risk
}
