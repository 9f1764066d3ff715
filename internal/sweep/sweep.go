// Package sweep runs batches of independent fire simulations across a grid of
// weather parameters and seeds.
package sweep

import (
	"context"
	"fmt"
	"runtime"
	"sort"

	"golang.org/x/sync/errgroup"

	"wildfire-ca/internal/sims/fire"
)

// Case is a single scenario in a sweep.
type Case struct {
	WindSpeed float64
	Humidity  float64
	Seed      int64
}

func (c Case) String() string {
	return fmt.Sprintf("wind=%.1f humidity=%.0f seed=%d", c.WindSpeed, c.Humidity, c.Seed)
}

// Outcome is the result of running one Case.
type Outcome struct {
	Case  Case
	Steps int
	Final fire.Stats
}

// Options configures a sweep.
type Options struct {
	Base       fire.Config
	WindSpeeds []float64
	Humidities []float64
	// Seeds is the number of seeds per parameter pair, starting at Base.Seed.
	Seeds     int
	Ignitions int
	// Steps caps each run; zero uses Base.Params.TimeSteps.
	Steps   int
	Workers int
}

// Cases expands the options into the full list of scenarios in a stable
// order.
func Cases(opts Options) []Case {
	seeds := max(opts.Seeds, 1)
	cases := make([]Case, 0, len(opts.WindSpeeds)*len(opts.Humidities)*seeds)
	for _, wind := range opts.WindSpeeds {
		for _, hum := range opts.Humidities {
			for s := 0; s < seeds; s++ {
				cases = append(cases, Case{WindSpeed: wind, Humidity: hum, Seed: opts.Base.Seed + int64(s)})
			}
		}
	}
	return cases
}

// Run executes every case on a bounded worker pool. Outcomes are returned in
// case order regardless of scheduling, so a sweep is reproducible.
func Run(ctx context.Context, opts Options) ([]Outcome, error) {
	cases := Cases(opts)
	outcomes := make([]Outcome, len(cases))

	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, c := range cases {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			out, err := runCase(opts, c)
			if err != nil {
				return fmt.Errorf("%s: %w", c, err)
			}
			outcomes[i] = out
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return outcomes, nil
}

func runCase(opts Options, c Case) (Outcome, error) {
	cfg := opts.Base
	cfg.Params.WindSpeed = c.WindSpeed
	cfg.Params.Humidity = c.Humidity
	cfg.Seed = c.Seed

	world, err := fire.NewWithConfig(cfg)
	if err != nil {
		return Outcome{}, err
	}
	world.IgniteRandom(max(opts.Ignitions, 1))
	res := world.Run(opts.Steps)
	return Outcome{Case: c, Steps: res.Steps, Final: res.Final}, nil
}

// Summary aggregates the outcomes sharing one wind/humidity pair.
type Summary struct {
	WindSpeed       float64
	Humidity        float64
	Runs            int
	MeanAffectedPct float64
	MaxAffectedPct  float64
	MeanSteps       float64
}

// Summarize groups outcomes by parameter pair, ordered by mean affected
// percentage, highest first.
func Summarize(outcomes []Outcome) []Summary {
	type key struct{ wind, hum float64 }
	index := map[key]int{}
	var out []Summary
	for _, o := range outcomes {
		k := key{o.Case.WindSpeed, o.Case.Humidity}
		i, ok := index[k]
		if !ok {
			i = len(out)
			index[k] = i
			out = append(out, Summary{WindSpeed: k.wind, Humidity: k.hum})
		}
		s := &out[i]
		s.Runs++
		s.MeanAffectedPct += o.Final.AffectedPct
		s.MeanSteps += float64(o.Steps)
		if o.Final.AffectedPct > s.MaxAffectedPct {
			s.MaxAffectedPct = o.Final.AffectedPct
		}
	}
	for i := range out {
		out[i].MeanAffectedPct /= float64(out[i].Runs)
		out[i].MeanSteps /= float64(out[i].Runs)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].MeanAffectedPct > out[j].MeanAffectedPct })
	return out
}
