package fire

// maxSpreadProb keeps every spread attempt stochastic.
const maxSpreadProb = 0.95

// SpreadProbability returns the chance that fire spreading in direction d
// ignites the cell at linear index idx during one step.
func SpreadProbability(p Params, f *Fields, wind WindTable, idx int, d Direction) float64 {
	prob := p.BaseSpreadProb
	prob *= 0.5 + f.Vegetation(idx)
	prob *= 0.7 + 0.6*f.TemperatureNorm(idx)
	prob *= 0.5 + (1 - p.Humidity/100)
	prob *= wind[d]
	return clamp(prob, 0, maxSpreadProb)
}
