package terminal

// xterm 256-color palette
//
// System colors: indices 0-15
// Color cube: index = 16 + 36*r + 6*g + b where r,g,b ∈ [0,5]
// Grayscale ramp: indices 232-255, level = 8 + 10*(index-232)

// Color cube values for 6x6x6 palette (indices 16-231)
// Levels: 0, 95, 135, 175, 215, 255
var cubeValues = [6]uint8{0, 95, 135, 175, 215, 255}

// systemColors are the xterm defaults for indices 0-15
var systemColors = [16]RGB{
	{0, 0, 0}, {205, 0, 0}, {0, 205, 0}, {205, 205, 0},
	{0, 0, 238}, {205, 0, 205}, {0, 205, 205}, {229, 229, 229},
	{127, 127, 127}, {255, 0, 0}, {0, 255, 0}, {255, 255, 0},
	{92, 92, 255}, {255, 0, 255}, {0, 255, 255}, {255, 255, 255},
}

const grayscaleStart = 232

// cubeIndex maps 0-255 to nearest cube index 0-5
// Pre-computed at init time
var cubeIndex [256]uint8

func init() {
	for i := 0; i < 256; i++ {
		best := 0
		bestDist := abs(i - int(cubeValues[0]))
		for j := 1; j < 6; j++ {
			d := abs(i - int(cubeValues[j]))
			if d < bestDist {
				bestDist = d
				best = j
			}
		}
		cubeIndex[i] = uint8(best)
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func sqDist(a, b RGB) int {
	dr := int(a.R) - int(b.R)
	dg := int(a.G) - int(b.G)
	db := int(a.B) - int(b.B)
	return dr*dr + dg*dg + db*db
}

// RGBTo256 returns the nearest xterm-256 index for an RGB value
// Candidates are the nearest cube cell and the nearest grayscale step; system colors are never chosen
func RGBTo256(c RGB) uint8 {
	cr, cg, cb := cubeIndex[c.R], cubeIndex[c.G], cubeIndex[c.B]
	cubeIdx := Cube256(cr, cg, cb)
	cubeDist := sqDist(c, RGB{cubeValues[cr], cubeValues[cg], cubeValues[cb]})

	gray := (int(c.R) + int(c.G) + int(c.B)) / 3
	step := (gray - 3) / 10
	if step < 0 {
		step = 0
	}
	if step > 23 {
		step = 23
	}
	level := uint8(8 + 10*step)
	grayDist := sqDist(c, RGB{level, level, level})

	if grayDist < cubeDist {
		return Gray256(uint8(step))
	}
	return cubeIdx
}

// Palette256RGB returns the RGB value xterm displays for a palette index
func Palette256RGB(idx uint8) RGB {
	switch {
	case idx < 16:
		return systemColors[idx]
	case idx < grayscaleStart:
		r, g, b := CubeRGB256(idx)
		return RGB{cubeValues[r], cubeValues[g], cubeValues[b]}
	default:
		level := 8 + 10*(idx-grayscaleStart)
		return RGB{level, level, level}
	}
}

// Cube256 returns the xterm 256-palette index for an RGB cube coordinate.
// r, g, b must be in [0,5]. Values outside that range are clamped.
func Cube256(r, g, b uint8) uint8 {
	if r > 5 {
		r = 5
	}
	if g > 5 {
		g = 5
	}
	if b > 5 {
		b = 5
	}
	return 16 + 36*r + 6*g + b
}

// CubeRGB256 returns the (r, g, b) cube coordinates for a 256-palette color cube index.
// Index must be in [16,231]. Returns (0,0,0) for out-of-range indices.
func CubeRGB256(index uint8) (r, g, b uint8) {
	if index < 16 || index > 231 {
		return 0, 0, 0
	}
	n := index - 16
	r = n / 36
	g = (n % 36) / 6
	b = n % 6
	return r, g, b
}

// Gray256 returns the xterm 256-palette index for a grayscale step.
// step must be in [0,23] (maps to indices 232-255, levels 8-238).
func Gray256(step uint8) uint8 {
	if step > 23 {
		step = 23
	}
	return grayscaleStart + step
}
