package fire

import (
	"image/color"
	"math"
)

var firePalette = []color.RGBA{
	Unburned: {R: 0x22, G: 0x8b, B: 0x22, A: 0xff},
	Burning:  {R: 0xff, G: 0x45, B: 0x00, A: 0xff},
	Burned:   {R: 0x1a, G: 0x1a, B: 0x1a, A: 0xff},
	Water:    {R: 0x41, G: 0x69, B: 0xe1, A: 0xff},
}

// Palette exposes the colors used for rendering each CellState, indexed by
// state value.
func (w *World) Palette() []color.RGBA {
	return firePalette
}

// Color returns the display color of a state.
func (s CellState) Color() color.RGBA {
	if int(s) >= len(firePalette) {
		return color.RGBA{A: 0xff}
	}
	return firePalette[s]
}

// VegetationMask returns the vegetation density of every cell in row-major
// order.
func (w *World) VegetationMask() []float64 {
	return append([]float64(nil), w.fields.vegetation...)
}

// WindVector returns the wind in screen coordinates, x growing east and y
// growing south, scaled so a speed of 20 m/s has length 1.
func (w *World) WindVector() (float64, float64) {
	p := w.cfg.Params
	strength := p.WindSpeed / fullWindSpeed
	rad := p.WindDirection * math.Pi / 180
	return math.Sin(rad) * strength, -math.Cos(rad) * strength
}
