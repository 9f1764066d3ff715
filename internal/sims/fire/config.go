package fire

import (
	"errors"
	"fmt"
	"math"
	"strconv"
)

// Params holds the immutable physical and timing parameters of one run.
type Params struct {
	GridSize int

	// WindSpeed is in m/s; 20 m/s maps to full wind strength.
	WindSpeed float64
	// WindDirection is in degrees (0=N, 90=E) and taken mod 360.
	WindDirection float64
	// Temperature is the ambient reading in Celsius. It is informational and
	// does not enter the spread probability; the per-cell field does.
	Temperature float64
	// Humidity is a percentage in [0, 100].
	Humidity float64

	BaseSpreadProb float64
	BurnDuration   int
	TimeSteps      int
}

// Config controls the fire simulation.
type Config struct {
	Params Params

	Seed int64

	// Vegetation and Temperature describe where each environmental field
	// comes from. Nil sources synthesize the documented fallback.
	Vegetation  FieldSource
	Temperature FieldSource

	// Water lists cells that never burn.
	Water []Point

	// StrictIgnition turns out-of-bounds ignition requests into errors
	// instead of silent no-ops.
	StrictIgnition bool
}

// DefaultParams returns the standard physical parameters.
func DefaultParams() Params {
	return Params{
		GridSize:       64,
		WindSpeed:      5,
		WindDirection:  45,
		Temperature:    35,
		Humidity:       30,
		BaseSpreadProb: 0.3,
		BurnDuration:   3,
		TimeSteps:      50,
	}
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Params: DefaultParams(),
		Seed:   1337,
	}
}

// Validate reports every parameter violation joined into one error.
func (p Params) Validate() error {
	var errs []error
	for _, f := range []struct {
		key string
		v   float64
	}{
		{"wind_speed", p.WindSpeed},
		{"wind_direction", p.WindDirection},
		{"temperature", p.Temperature},
		{"humidity", p.Humidity},
		{"base_spread_prob", p.BaseSpreadProb},
	} {
		if !isFinite(f.v) {
			errs = append(errs, fmt.Errorf("%s=%g: %w", f.key, f.v, ErrNonFinite))
		}
	}
	if p.GridSize <= 0 {
		errs = append(errs, fmt.Errorf("grid_size=%d: %w", p.GridSize, ErrInvalidGridSize))
	}
	if p.BurnDuration <= 0 {
		errs = append(errs, fmt.Errorf("burn_duration=%d: %w", p.BurnDuration, ErrInvalidBurnDuration))
	}
	if p.TimeSteps <= 0 {
		errs = append(errs, fmt.Errorf("time_steps=%d: %w", p.TimeSteps, ErrInvalidTimeSteps))
	}
	if !(p.BaseSpreadProb > 0 && p.BaseSpreadProb <= 1) {
		errs = append(errs, fmt.Errorf("base_spread_prob=%g: %w", p.BaseSpreadProb, ErrInvalidSpreadProb))
	}
	if p.Humidity < 0 || p.Humidity > 100 {
		errs = append(errs, fmt.Errorf("humidity=%g: %w", p.Humidity, ErrInvalidHumidity))
	}
	if p.WindSpeed < 0 {
		errs = append(errs, fmt.Errorf("wind_speed=%g: %w", p.WindSpeed, ErrInvalidWindSpeed))
	}
	return errors.Join(errs...)
}

func isFinite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }

// parseFinite parses v, rejecting NaN and infinities.
func parseFinite(v string) (float64, bool) {
	f, err := strconv.ParseFloat(v, 64)
	if err != nil || !isFinite(f) {
		return 0, false
	}
	return f, true
}

// Validate checks the parameters and the water mask.
func (c Config) Validate() error {
	err := c.Params.Validate()
	if err != nil {
		return err
	}
	n := c.Params.GridSize
	for _, p := range c.Water {
		if p.Row < 0 || p.Row >= n || p.Col < 0 || p.Col >= n {
			return fmt.Errorf("water cell: %w", &OutOfBoundsError{Point: p, Size: n})
		}
	}
	return nil
}

// FromMap populates the config from a string map (flag-style key/value pairs).
// Values that fail to parse or fall outside their valid range keep their
// defaults.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["size"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Params.GridSize = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["wind_speed"]; ok {
		if parsed, finite := parseFinite(v); finite && parsed >= 0 {
			c.Params.WindSpeed = parsed
		}
	}
	if v, ok := cfg["wind_direction"]; ok {
		if parsed, finite := parseFinite(v); finite {
			c.Params.WindDirection = parsed
		}
	}
	if v, ok := cfg["temperature"]; ok {
		if parsed, finite := parseFinite(v); finite {
			c.Params.Temperature = parsed
		}
	}
	if v, ok := cfg["humidity"]; ok {
		if parsed, finite := parseFinite(v); finite && parsed >= 0 && parsed <= 100 {
			c.Params.Humidity = parsed
		}
	}
	if v, ok := cfg["spread_prob"]; ok {
		if parsed, finite := parseFinite(v); finite && parsed > 0 && parsed <= 1 {
			c.Params.BaseSpreadProb = parsed
		}
	}
	if v, ok := cfg["burn_duration"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Params.BurnDuration = parsed
		}
	}
	if v, ok := cfg["time_steps"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Params.TimeSteps = parsed
		}
	}
	if v, ok := cfg["strict"]; ok {
		if parsed, err := strconv.ParseBool(v); err == nil {
			c.StrictIgnition = parsed
		}
	}
	return c
}
