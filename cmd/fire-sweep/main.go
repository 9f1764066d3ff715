package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"runtime"
	"strconv"
	"strings"
	"time"

	"wildfire-ca/internal/sims/fire"
	"wildfire-ca/internal/sweep"
)

func main() {
	size := flag.Int("size", 64, "grid size")
	steps := flag.Int("steps", 50, "maximum steps per run")
	seeds := flag.Int("seeds", 8, "seeds per parameter pair")
	seed := flag.Int64("seed", 1337, "first seed")
	ignite := flag.Int("ignite", 3, "random ignition points per run")
	winds := flag.String("winds", "0,4,8,12,16,20", "comma separated wind speeds (m/s)")
	humidities := flag.String("humidities", "10,30,50,70", "comma separated humidity percentages")
	direction := flag.Float64("dir", 45, "wind direction in degrees")
	prob := flag.Float64("spread", 0.3, "base spread probability")
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	top := flag.Int("top", 10, "summaries to print")
	flag.Parse()

	base := fire.DefaultConfig()
	base.Params.GridSize = *size
	base.Params.TimeSteps = *steps
	base.Params.WindDirection = *direction
	base.Params.BaseSpreadProb = *prob
	base.Seed = *seed

	windList, err := parseFloats(*winds)
	if err != nil {
		log.Fatalf("-winds: %v", err)
	}
	humList, err := parseFloats(*humidities)
	if err != nil {
		log.Fatalf("-humidities: %v", err)
	}

	opts := sweep.Options{
		Base:       base,
		WindSpeeds: windList,
		Humidities: humList,
		Seeds:      *seeds,
		Ignitions:  *ignite,
		Steps:      *steps,
		Workers:    *workers,
	}
	fmt.Printf("Sweeping %d scenarios (%d workers, %d steps, %dx%d grid)\n",
		len(sweep.Cases(opts)), *workers, *steps, *size, *size)

	start := time.Now()
	outcomes, err := sweep.Run(context.Background(), opts)
	if err != nil {
		log.Fatal(err)
	}
	summaries := sweep.Summarize(outcomes)
	elapsed := time.Since(start)

	fmt.Printf("\nTop %d parameter pairs (elapsed %s):\n", min(*top, len(summaries)), elapsed.Round(time.Millisecond))
	for i := 0; i < len(summaries) && i < *top; i++ {
		s := summaries[i]
		fmt.Printf("%2d) wind=%5.1f humidity=%5.1f runs=%d affected mean=%.1f%% max=%.1f%% steps=%.1f\n",
			i+1, s.WindSpeed, s.Humidity, s.Runs, s.MeanAffectedPct, s.MaxAffectedPct, s.MeanSteps)
	}
}

func parseFloats(s string) ([]float64, error) {
	var out []float64
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		v, err := strconv.ParseFloat(part, 64)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}
