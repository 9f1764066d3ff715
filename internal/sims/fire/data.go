package fire

import (
	"bytes"
	"strconv"
)

// DataParams echoes the run parameters in the exported payload.
type DataParams struct {
	GridSize      int     `json:"grid_size"`
	WindSpeed     float64 `json:"wind_speed"`
	WindDirection float64 `json:"wind_direction"`
	Temperature   float64 `json:"temperature"`
	Humidity      float64 `json:"humidity"`
	// TimeSteps is the number of recorded snapshots, not the configured budget.
	TimeSteps int `json:"time_steps"`
}

// SimulationData is the complete, JSON-ready record of a run.
type SimulationData struct {
	Params       DataParams  `json:"params"`
	History      []Snapshot  `json:"history"`
	StatsHistory []Stats     `json:"stats_history"`
	Vegetation   [][]float64 `json:"vegetation"`
	FinalStats   *Stats      `json:"final_stats"`
}

// Data packages the recorded history for downstream consumers.
func (w *World) Data() SimulationData {
	p := w.cfg.Params
	d := SimulationData{
		Params: DataParams{
			GridSize:      p.GridSize,
			WindSpeed:     p.WindSpeed,
			WindDirection: p.WindDirection,
			Temperature:   p.Temperature,
			Humidity:      p.Humidity,
			TimeSteps:     w.history.Len(),
		},
		History:      w.history.Frames(),
		StatsHistory: w.history.Stats(),
		Vegetation:   w.Vegetation(),
	}
	if final, ok := w.history.Final(); ok {
		d.FinalStats = &final
	}
	return d
}

// MarshalJSON encodes the snapshot as rows of integer state codes.
func (s Snapshot) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.Grow(len(s.cells)*2 + 2*s.n + 2)
	buf.WriteByte('[')
	for r := 0; r < s.n; r++ {
		if r > 0 {
			buf.WriteByte(',')
		}
		buf.WriteByte('[')
		for c := 0; c < s.n; c++ {
			if c > 0 {
				buf.WriteByte(',')
			}
			buf.WriteString(strconv.Itoa(int(s.cells[r*s.n+c])))
		}
		buf.WriteByte(']')
	}
	buf.WriteByte(']')
	return buf.Bytes(), nil
}
