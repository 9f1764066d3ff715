package app

import (
	"flag"
	"strconv"
	"strings"
)

// Config represents the command-line parameters for the viewer.
type Config struct {
	Sim   string
	Scale int
	TPS   int
	// SPS is the number of simulation steps per second, decoupled from the
	// frame rate.
	SPS  int
	Seed int64
	// Ignite is the number of random ignition points placed after each reset.
	Ignite int
	// HUDWidth is the pixel width of the parameter panel; 0 hides it.
	HUDWidth int
	// Set holds raw sim parameters as key=value pairs.
	Set string
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Sim: "fire", Scale: 8, TPS: 60, SPS: 6, Seed: 42, Ignite: 3, HUDWidth: 260}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Sim, "sim", c.Sim, "simulation to run")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "frames per second")
	fs.IntVar(&c.SPS, "sps", c.SPS, "simulation steps per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for simulation reset")
	fs.IntVar(&c.Ignite, "ignite", c.Ignite, "random ignition points after reset")
	fs.IntVar(&c.HUDWidth, "hud", c.HUDWidth, "parameter panel width in pixels (0 hides it)")
	fs.StringVar(&c.Set, "set", c.Set, "comma separated sim parameters, e.g. wind_speed=8,humidity=20")
}

// SimParams parses Set into the map consumed by sim factories. Malformed
// entries are skipped.
func (c *Config) SimParams() map[string]string {
	out := map[string]string{}
	for _, kv := range strings.Split(c.Set, ",") {
		key, value, ok := strings.Cut(strings.TrimSpace(kv), "=")
		if !ok || key == "" {
			continue
		}
		out[key] = value
	}
	out["seed"] = strconv.FormatInt(c.Seed, 10)
	return out
}
