// Package stream exposes fire simulations over HTTP and websockets.
package stream

import (
	"fmt"

	"wildfire-ca/internal/core"
	"wildfire-ca/internal/sims/fire"
)

// Request describes a simulation run. Absent fields keep the values from
// DefaultRequest.
type Request struct {
	GridSize      int     `json:"grid_size"`
	WindSpeed     float64 `json:"wind_speed"`
	WindDirection float64 `json:"wind_direction"`
	Temperature   float64 `json:"temperature"`
	Humidity      float64 `json:"humidity"`
	SpreadProb    float64 `json:"spread_prob"`
	BurnDuration  int     `json:"burn_duration"`
	TimeSteps     int     `json:"time_steps"`
	Seed          int64   `json:"seed"`
	Strict        bool    `json:"strict"`

	IgnitePoints []fire.Point `json:"ignite_points"`
	NumFires     int          `json:"num_fires"`
	// RiskThreshold, when set, ignites from a synthetic risk map instead of
	// random points.
	RiskThreshold *float64 `json:"risk_threshold"`
}

// DefaultRequest mirrors the simulation defaults.
func DefaultRequest() Request {
	cfg := fire.DefaultConfig()
	p := cfg.Params
	return Request{
		GridSize:      p.GridSize,
		WindSpeed:     p.WindSpeed,
		WindDirection: p.WindDirection,
		Temperature:   p.Temperature,
		Humidity:      p.Humidity,
		SpreadProb:    p.BaseSpreadProb,
		BurnDuration:  p.BurnDuration,
		TimeSteps:     p.TimeSteps,
		Seed:          cfg.Seed,
		NumFires:      3,
	}
}

// Config converts the request into a simulation configuration.
func (r Request) Config() fire.Config {
	cfg := fire.DefaultConfig()
	cfg.Params = fire.Params{
		GridSize:       r.GridSize,
		WindSpeed:      r.WindSpeed,
		WindDirection:  r.WindDirection,
		Temperature:    r.Temperature,
		Humidity:       r.Humidity,
		BaseSpreadProb: r.SpreadProb,
		BurnDuration:   r.BurnDuration,
		TimeSteps:      r.TimeSteps,
	}
	cfg.Seed = r.Seed
	cfg.StrictIgnition = r.Strict
	return cfg
}

// Limits on the work and memory a single request can ask for. Every recorded
// step keeps a full snapshot, so the grid area times the step budget bounds
// the history a run can hold.
const (
	maxGridSize      = 512
	maxTimeSteps     = 1000
	maxRecordedCells = 16 << 20
)

// Simulate builds a world for the request, ignites it and runs it to
// completion.
func Simulate(r Request) (*fire.World, error) {
	if r.GridSize > maxGridSize {
		return nil, fmt.Errorf("grid_size=%d exceeds %d", r.GridSize, maxGridSize)
	}
	if r.TimeSteps > maxTimeSteps {
		return nil, fmt.Errorf("time_steps=%d exceeds %d", r.TimeSteps, maxTimeSteps)
	}
	if cells := r.GridSize * r.GridSize * (r.TimeSteps + 1); r.GridSize > 0 && r.TimeSteps > 0 && cells > maxRecordedCells {
		return nil, fmt.Errorf("grid_size=%d with time_steps=%d records %d cells, limit %d",
			r.GridSize, r.TimeSteps, cells, maxRecordedCells)
	}
	world, err := fire.NewWithConfig(r.Config())
	if err != nil {
		return nil, err
	}
	switch {
	case len(r.IgnitePoints) > 0:
		if err := world.IgnitePoints(r.IgnitePoints); err != nil {
			return nil, err
		}
	case r.RiskThreshold != nil:
		risk := fire.SyntheticRiskMap(r.GridSize, core.NewRNG(r.Seed))
		if _, err := world.IgniteFromRiskMap(risk, *r.RiskThreshold); err != nil {
			return nil, err
		}
	default:
		world.IgniteRandom(r.NumFires)
	}
	world.Run(0)
	return world, nil
}
