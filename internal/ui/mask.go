package ui

import (
	"image/color"
	"math"
)

const (
	maxAlpha      = 140.0
	glowBase      = 0.35
	glowRange     = 0.65
	intensityBias = 0.75
)

// FillMask writes RGBA pixels tinting each cell by its intensity in [0,1].
// Values outside that range are clamped; zero intensity is fully transparent.
// It returns false when dst cannot hold the mask.
func FillMask(dst []byte, mask []float64, tint color.RGBA) bool {
	if len(dst) < 4*len(mask) {
		return false
	}
	for i, v := range mask {
		base := i * 4
		intensity := clamp01(v)
		if intensity == 0 {
			dst[base+0] = 0
			dst[base+1] = 0
			dst[base+2] = 0
			dst[base+3] = 0
			continue
		}
		glow := glowBase + glowRange*math.Sqrt(intensity)
		dst[base+0] = scaleColorComponent(tint.R, glow)
		dst[base+1] = scaleColorComponent(tint.G, glow)
		dst[base+2] = scaleColorComponent(tint.B, glow)
		dst[base+3] = uint8(math.Round(maxAlpha * math.Pow(intensity, intensityBias)))
	}
	return true
}

// arrow is a line from tail to tip plus the two head strokes.
type arrow struct {
	tailX, tailY float64
	tipX, tipY   float64
	leftX, leftY float64
	rightX       float64
	rightY       float64
}

// windArrow builds an arrow centred on (cx, cy) pointing along (vx, vy). The
// length grows with the vector magnitude up to span. It reports false for calm
// air.
func windArrow(cx, cy, vx, vy, span float64) (arrow, bool) {
	const (
		calmThreshold = 0.05
		headAngle     = math.Pi / 6
	)
	speed := math.Hypot(vx, vy)
	if speed < calmThreshold || span <= 0 {
		return arrow{}, false
	}
	nx, ny := vx/speed, vy/speed
	length := span * (0.35 + 0.65*math.Sqrt(clamp01(speed)))
	head := length * 0.3
	a := arrow{
		tailX: cx - nx*length/2,
		tailY: cy - ny*length/2,
		tipX:  cx + nx*length/2,
		tipY:  cy + ny*length/2,
	}
	angle := math.Atan2(ny, nx)
	a.leftX = a.tipX - math.Cos(angle+headAngle)*head
	a.leftY = a.tipY - math.Sin(angle+headAngle)*head
	a.rightX = a.tipX - math.Cos(angle-headAngle)*head
	a.rightY = a.tipY - math.Sin(angle-headAngle)*head
	return a, true
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func scaleColorComponent(value uint8, factor float64) uint8 {
	scaled := math.Round(float64(value) * factor)
	if scaled < 0 {
		return 0
	}
	if scaled > 255 {
		return 255
	}
	return uint8(scaled)
}
