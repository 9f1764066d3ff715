//go:build ebiten

package ui

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"wildfire-ca/internal/core"
)

type vegetationProvider interface {
	VegetationMask() []float64
}

type windProvider interface {
	WindVector() (float64, float64)
}

// Overlay draws optional visuals on top of the fire grid: a vegetation
// density tint (key 1) and the wind arrow (key 2).
type Overlay struct {
	sim            core.Sim
	scale          int
	showVegetation bool
	showWind       bool

	maskImg *ebiten.Image
	maskBuf []byte
	pixel   *ebiten.Image
}

// NewOverlay constructs a new overlay instance.
func NewOverlay(sim core.Sim, scale int) *Overlay {
	o := &Overlay{sim: sim, scale: scale, showWind: true}
	o.pixel = ebiten.NewImage(1, 1)
	o.pixel.Fill(color.White)
	return o
}

// Update toggles the layers.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit1) {
		o.showVegetation = !o.showVegetation
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit2) {
		o.showWind = !o.showWind
	}
}

// Draw renders the enabled layers onto screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	size := o.sim.Size()
	if size.W <= 0 || size.H <= 0 {
		return
	}
	scale := o.scale
	if scale <= 0 {
		scale = 1
	}
	if o.showVegetation {
		if provider, ok := o.sim.(vegetationProvider); ok {
			o.drawVegetation(screen, provider, size, scale)
		}
	}
	if o.showWind {
		if provider, ok := o.sim.(windProvider); ok {
			vx, vy := provider.WindVector()
			span := math.Min(float64(size.W), float64(size.H)) * float64(scale) / 4
			cx := float64(size.W*scale) - span*0.75
			cy := span * 0.75
			if a, ok := windArrow(cx, cy, vx, vy, span); ok {
				thickness := math.Max(float64(scale)/2, 2)
				col := color.RGBA{R: 150, G: 220, B: 250, A: 230}
				o.drawLine(screen, a.tailX, a.tailY, a.tipX, a.tipY, thickness, col)
				o.drawLine(screen, a.tipX, a.tipY, a.leftX, a.leftY, thickness, col)
				o.drawLine(screen, a.tipX, a.tipY, a.rightX, a.rightY, thickness, col)
			}
		}
	}
}

func (o *Overlay) drawVegetation(screen *ebiten.Image, provider vegetationProvider, size core.Size, scale int) {
	total := size.W * size.H
	if o.maskImg == nil {
		o.maskImg = ebiten.NewImage(size.W, size.H)
		o.maskBuf = make([]byte, 4*total)
		// Vegetation is fixed for the lifetime of a world.
		if !FillMask(o.maskBuf, provider.VegetationMask(), color.RGBA{R: 180, G: 230, B: 60}) {
			return
		}
		o.maskImg.WritePixels(o.maskBuf)
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	screen.DrawImage(o.maskImg, op)
}

func (o *Overlay) drawLine(screen *ebiten.Image, x1, y1, x2, y2, thickness float64, col color.RGBA) {
	dx := x2 - x1
	dy := y2 - y1
	length := math.Hypot(dx, dy)
	if length <= 1e-4 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(length, thickness)
	op.GeoM.Translate(0, -thickness/2)
	op.GeoM.Rotate(math.Atan2(dy, dx))
	op.GeoM.Translate(x1, y1)
	op.ColorScale.ScaleWithColor(col)
	screen.DrawImage(o.pixel, op)
}
