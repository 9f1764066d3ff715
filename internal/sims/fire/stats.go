package fire

// Stats summarizes one snapshot. The four counts always sum to the number of
// cells.
type Stats struct {
	Unburned int `json:"unburned"`
	Burning  int `json:"burning"`
	Burned   int `json:"burned"`
	Water    int `json:"water"`

	UnburnedPct float64 `json:"unburned_pct"`
	BurningPct  float64 `json:"burning_pct"`
	BurnedPct   float64 `json:"burned_pct"`

	Affected    int     `json:"total_affected"`
	AffectedPct float64 `json:"affected_pct"`
}

// Total returns the number of cells covered by the stats.
func (s Stats) Total() int { return s.Unburned + s.Burning + s.Burned + s.Water }

func statsOf(cells []uint8) Stats {
	var s Stats
	for _, c := range cells {
		switch CellState(c) {
		case Unburned:
			s.Unburned++
		case Burning:
			s.Burning++
		case Burned:
			s.Burned++
		case Water:
			s.Water++
		}
	}
	s.Affected = s.Burning + s.Burned
	total := float64(len(cells))
	if total == 0 {
		return s
	}
	s.UnburnedPct = float64(s.Unburned) / total * 100
	s.BurningPct = float64(s.Burning) / total * 100
	s.BurnedPct = float64(s.Burned) / total * 100
	s.AffectedPct = float64(s.Affected) / total * 100
	return s
}
