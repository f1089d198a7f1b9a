package terminal

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestColorFromTcell(t *testing.T) {
	assert.Equal(t, DefaultColor, ColorFromTcell(tcell.ColorDefault))
	assert.Equal(t, NewColor(10, 20, 30), ColorFromTcell(tcell.NewRGBColor(10, 20, 30)))
	assert.Equal(t, PaletteColor(1), ColorFromTcell(tcell.ColorMaroon))
	assert.Equal(t, PaletteColor(202), ColorFromTcell(tcell.PaletteColor(202)))
	assert.Equal(t, DefaultColor, ColorFromTcell(tcell.ColorReset))
}

func TestColor_TcellRoundTrip(t *testing.T) {
	c := NewColor(200, 100, 50)
	assert.Equal(t, c, ColorFromTcell(c.TcellColor()))
	assert.Equal(t, tcell.ColorDefault, DefaultColor.TcellColor())
}

func TestAttr_Tcell(t *testing.T) {
	a := AttrBold | AttrItalic | AttrStrikethrough
	assert.Equal(t, tcell.AttrBold|tcell.AttrItalic|tcell.AttrStrikeThrough, a.TcellAttr())
	assert.Equal(t, a, AttrFromTcell(a.TcellAttr()))

	// Hidden has no tcell counterpart
	assert.Equal(t, tcell.AttrNone, AttrHidden.TcellAttr())
	assert.Equal(t, AttrFaint, AttrFromTcell(tcell.AttrDim))
}

func TestKey_TcellRoundTrip(t *testing.T) {
	keys := []Key{
		{Rune: 'x'},
		{Rune: 'x', Alt: true},
		{Named: KeyF5},
		{Named: KeyPageDown, Alt: true},
		{Named: KeyBacktab},
	}
	for _, k := range keys {
		ev := k.TcellEvent()
		require.NotNil(t, ev, k.String())
		got, ok := KeyFromTcell(ev)
		require.True(t, ok, k.String())
		assert.Equal(t, k, got)
	}

	assert.Nil(t, Key{Named: KeyUnknown}.TcellEvent())
}

func TestKeyFromTcell_ControlKeys(t *testing.T) {
	tests := []struct {
		name string
		ev   *tcell.EventKey
		want Key
	}{
		{"ctrl c", tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl), Key{Rune: RuneCtrlC}},
		{"ctrl a", tcell.NewEventKey(tcell.KeyCtrlA, 0, tcell.ModCtrl), Key{Rune: 0x01}},
		{"ctrl z", tcell.NewEventKey(tcell.KeyCtrlZ, 0, tcell.ModCtrl), Key{Rune: 0x1a}},
		{"ctrl space", tcell.NewEventKey(tcell.KeyCtrlSpace, 0, tcell.ModCtrl), Key{Rune: 0}},
		{"ctrl underscore", tcell.NewEventKey(tcell.KeyCtrlUnderscore, 0, tcell.ModCtrl), Key{Rune: 0x1f}},
		{"alt ctrl x", tcell.NewEventKey(tcell.KeyCtrlX, 0, tcell.ModCtrl|tcell.ModAlt), Key{Rune: 0x18, Alt: true}},
		{"escape", tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), Key{Rune: RuneEscape}},
		{"tab", tcell.NewEventKey(tcell.KeyTab, 0, tcell.ModNone), Key{Rune: RuneTab}},
		{"enter", tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone), Key{Rune: RuneEnter}},
		{"backspace", tcell.NewEventKey(tcell.KeyBackspace, 0, tcell.ModNone), Key{Rune: RuneBackspace}},
		{"backspace2", tcell.NewEventKey(tcell.KeyBackspace2, 0, tcell.ModNone), Key{Rune: RuneBackspace}},
		{"raw etx rune", tcell.NewEventKey(tcell.KeyRune, 0x03, tcell.ModNone), Key{Rune: RuneCtrlC}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := KeyFromTcell(tt.ev)
			require.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}

	// Letters never pass through as control keys
	got, ok := KeyFromTcell(tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl))
	require.True(t, ok)
	assert.NotEqual(t, 'C', got.Rune)

	_, ok = KeyFromTcell(tcell.NewEventKey(tcell.KeyF40, 0, tcell.ModNone))
	assert.False(t, ok)
}

func TestKey_TcellControlRoundTrip(t *testing.T) {
	for r := rune(0); r < ' '; r++ {
		for _, alt := range []bool{false, true} {
			k := Key{Rune: r, Alt: alt}
			got, ok := KeyFromTcell(k.TcellEvent())
			require.True(t, ok, k.String())
			assert.Equal(t, k, got, k.String())
		}
	}

	got, ok := KeyFromTcell(Key{Rune: RuneBackspace}.TcellEvent())
	require.True(t, ok)
	assert.Equal(t, Key{Rune: RuneBackspace}, got)

	ev := Key{Rune: RuneCtrlC}.TcellEvent()
	assert.Equal(t, tcell.KeyCtrlC, ev.Key())
	assert.Equal(t, tcell.ModCtrl, ev.Modifiers())
}
