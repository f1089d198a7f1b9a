package terminal

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// ansi8Lab holds the xterm defaults for ANSI colors 0-7 in linear float form
var ansi8Lab [8]colorful.Color

func init() {
	for i := range ansi8Lab {
		ansi8Lab[i] = toColorful(systemColors[i])
	}
}

func toColorful(c RGB) colorful.Color {
	return colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
}

// RGBTo8 returns the ANSI 8-color index perceptually closest to c
// Distance is measured in CIE L*a*b* space
func RGBTo8(c RGB) uint8 {
	target := toColorful(c)
	best := 0
	bestDist := math.MaxFloat64
	for i, p := range ansi8Lab {
		if d := target.DistanceLab(p); d < bestDist {
			bestDist = d
			best = i
		}
	}
	return uint8(best)
}
