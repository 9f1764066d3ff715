package fire

import (
	"strconv"

	"wildfire-ca/internal/core"
)

// Parameters reports the run configuration grouped for display. Keys match
// the ones accepted by FromMap.
func (w *World) Parameters() core.ParameterSnapshot {
	p := w.cfg.Params
	groups := []core.ParameterGroup{
		{
			Name: "Grid",
			Params: []core.Parameter{
				intParam("size", "Grid size", p.GridSize),
				int64Param("seed", "Seed", w.cfg.Seed),
				boolParam("strict", "Strict ignition", w.cfg.StrictIgnition),
			},
		},
		{
			Name: "Weather",
			Params: []core.Parameter{
				floatParam("wind_speed", "Wind speed (m/s)", p.WindSpeed),
				floatParam("wind_direction", "Wind direction (deg)", p.WindDirection),
				floatParam("temperature", "Ambient temperature (C)", p.Temperature),
				floatParam("humidity", "Humidity (%)", p.Humidity),
			},
			Summary: "strongest spread towards " + w.wind.Max().String(),
		},
		{
			Name: "Fire",
			Params: []core.Parameter{
				floatParam("spread_prob", "Base spread probability", p.BaseSpreadProb),
				intParam("burn_duration", "Burn duration", p.BurnDuration),
				intParam("time_steps", "Time steps", p.TimeSteps),
			},
		},
	}
	return core.ParameterSnapshot{Groups: groups}
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.Itoa(value),
	}
}

func int64Param(key, label string, value int64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.FormatInt(value, 10),
	}
}

func floatParam(key, label string, value float64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeFloat,
		Value: strconv.FormatFloat(value, 'f', -1, 64),
	}
}

func boolParam(key, label string, value bool) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeBool,
		Value: strconv.FormatBool(value),
	}
}
