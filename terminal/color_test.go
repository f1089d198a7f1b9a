package terminal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestColor_Equality(t *testing.T) {
	assert.True(t, NewColor(12, 34, 56) == NewColor(12, 34, 56))
	assert.True(t, ColorFromRGB(RGB{12, 34, 56}) == NewColor(12, 34, 56))
	assert.False(t, NewColor(12, 34, 56) == NewColor(12, 34, 57))

	assert.True(t, DefaultColor == DefaultColor)
	assert.True(t, DefaultColor.IsDefault())
	assert.True(t, Color{}.IsDefault())

	// Black is a concrete color, not the terminal default
	black := NewColor(0, 0, 0)
	assert.False(t, black.IsDefault())
	assert.False(t, black == DefaultColor)
	assert.False(t, PaletteColor(0) == DefaultColor)
}

func TestColor_Forms(t *testing.T) {
	c := NewColor(255, 0, 0)
	assert.Equal(t, RGB{255, 0, 0}, c.RGB())
	assert.Equal(t, uint8(196), c.Index256())
	assert.Equal(t, uint8(1), c.Index8())
}

func TestPaletteColor(t *testing.T) {
	c := PaletteColor(3)
	assert.Equal(t, uint8(3), c.Index256())
	assert.Equal(t, uint8(3), c.Index8())
	assert.Equal(t, systemColors[3], c.RGB())

	bright := PaletteColor(9)
	assert.Equal(t, uint8(9), bright.Index256())
	assert.Equal(t, uint8(1), bright.Index8())

	cube := PaletteColor(21) // pure blue corner of the cube
	assert.Equal(t, RGB{0, 0, 255}, cube.RGB())
	assert.Equal(t, uint8(4), cube.Index8())

	gray := PaletteColor(255)
	assert.Equal(t, RGB{238, 238, 238}, gray.RGB())
}

func TestRGBTo256(t *testing.T) {
	tests := []struct {
		rgb  RGB
		want uint8
	}{
		{RGB{0, 0, 0}, 16},
		{RGB{255, 255, 255}, 231},
		{RGB{255, 0, 0}, 196},
		{RGB{0, 255, 0}, 46},
		{RGB{0, 0, 255}, 21},
		{RGB{95, 135, 175}, 67},
		{RGB{128, 128, 128}, 244},
		{RGB{8, 8, 8}, 232},
		{RGB{238, 238, 238}, 255},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, RGBTo256(tt.rgb), "rgb %v", tt.rgb)
	}
}

func TestRGBTo256_ExactPaletteEntries(t *testing.T) {
	// Every cube and grayscale entry quantizes back to itself
	for idx := 16; idx <= 255; idx++ {
		rgb := Palette256RGB(uint8(idx))
		got := RGBTo256(rgb)
		assert.Equal(t, rgb, Palette256RGB(got), "index %d", idx)
	}
}

func TestRGBTo8(t *testing.T) {
	tests := []struct {
		rgb  RGB
		want uint8
	}{
		{RGB{0, 0, 0}, 0},
		{RGB{200, 0, 0}, 1},
		{RGB{0, 200, 0}, 2},
		{RGB{0, 0, 230}, 4},
		{RGB{255, 255, 255}, 7},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, RGBTo8(tt.rgb), "rgb %v", tt.rgb)
	}
}

func TestCube256(t *testing.T) {
	for idx := 16; idx <= 231; idx++ {
		r, g, b := CubeRGB256(uint8(idx))
		require.Equal(t, uint8(idx), Cube256(r, g, b))
	}
	assert.Equal(t, uint8(231), Cube256(9, 9, 9))

	r, g, b := CubeRGB256(5)
	assert.Equal(t, [3]uint8{0, 0, 0}, [3]uint8{r, g, b})
	assert.Equal(t, uint8(255), Gray256(40))
}

func TestColorDepth_String(t *testing.T) {
	assert.Equal(t, "8", Depth8.String())
	assert.Equal(t, "256", Depth256.String())
	assert.Equal(t, "truecolor", DepthTrueColor.String())
}
