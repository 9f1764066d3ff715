package fire

import (
	"fmt"

	"wildfire-ca/internal/core"
)

const normEpsilon = 1e-8

// FieldSource describes where an environmental layer comes from. A source is
// resolved exactly once, when the World is constructed.
type FieldSource interface {
	resolve(name string, n int, rng *core.RNG) ([]float64, error)
}

// Supplied wraps an externally provided n x n matrix.
type Supplied [][]float64

func (s Supplied) resolve(name string, n int, _ *core.RNG) ([]float64, error) {
	if err := checkMatrix(name, s, n); err != nil {
		return nil, err
	}
	out := make([]float64, 0, n*n)
	for r, row := range s {
		for c, v := range row {
			if !isFinite(v) {
				return nil, fmt.Errorf("%s[%d][%d]=%g: %w", name, r, c, v, ErrNonFinite)
			}
		}
		out = append(out, row...)
	}
	return out, nil
}

// Synthesized draws every cell uniformly from [Min, Max).
type Synthesized struct {
	Min, Max float64
}

func (s Synthesized) resolve(_ string, n int, rng *core.RNG) ([]float64, error) {
	out := make([]float64, n*n)
	for i := range out {
		out[i] = rng.Uniform(s.Min, s.Max)
	}
	return out, nil
}

// Fallback distributions used when no field is supplied.
var (
	SyntheticVegetation  = Synthesized{Min: 0.3, Max: 0.9}
	SyntheticTemperature = Synthesized{Min: 25, Max: 45}
)

// Fields holds the read-only environmental layers of one run in row-major
// order.
type Fields struct {
	n int

	vegetation []float64
	tempRaw    []float64
	tempNorm   []float64
}

// NewFields resolves both sources for an n x n grid. Nil sources fall back to
// the synthetic distributions. Vegetation is drawn before temperature so a
// seed reproduces both layers.
func NewFields(n int, vegetation, temperature FieldSource, rng *core.RNG) (*Fields, error) {
	if vegetation == nil {
		vegetation = SyntheticVegetation
	}
	if temperature == nil {
		temperature = SyntheticTemperature
	}
	veg, err := vegetation.resolve("vegetation", n, rng)
	if err != nil {
		return nil, err
	}
	for i, v := range veg {
		veg[i] = clamp(v, 0, 1)
	}
	temp, err := temperature.resolve("temperature", n, rng)
	if err != nil {
		return nil, err
	}
	return &Fields{n: n, vegetation: veg, tempRaw: temp, tempNorm: normalize(temp)}, nil
}

// Vegetation returns the vegetation density at a linear index.
func (f *Fields) Vegetation(idx int) float64 { return f.vegetation[idx] }

// TemperatureNorm returns the normalized temperature at a linear index.
func (f *Fields) TemperatureNorm(idx int) float64 { return f.tempNorm[idx] }

// TemperatureRaw returns the temperature as supplied at a linear index.
func (f *Fields) TemperatureRaw(idx int) float64 { return f.tempRaw[idx] }

// VegetationMatrix returns a copy of the vegetation layer as rows.
func (f *Fields) VegetationMatrix() [][]float64 {
	return toMatrix(f.vegetation, f.n)
}

func normalize(vals []float64) []float64 {
	out := make([]float64, len(vals))
	if len(vals) == 0 {
		return out
	}
	lo, hi := vals[0], vals[0]
	for _, v := range vals {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	span := hi - lo + normEpsilon
	for i, v := range vals {
		out[i] = (v - lo) / span
	}
	return out
}

func toMatrix(vals []float64, n int) [][]float64 {
	rows := make([][]float64, n)
	for r := range rows {
		rows[r] = append([]float64(nil), vals[r*n:(r+1)*n]...)
	}
	return rows
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
