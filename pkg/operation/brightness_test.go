package operation

import (
	"context"
	"testing"

	"github.com/hoppxi/xmon/pkg/xrandr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransforms(t *testing.T) {
	down, up, max := Down(DefaultStep), Up(DefaultStep), Max()

	for _, b := range []float64{0, 0.05, 0.1, 0.35, 0.5, 0.9, 0.95, 1} {
		assert.InDelta(t, max0(b-0.1), down(b), 1e-9, "down(%v)", b)
		assert.InDelta(t, min1(b+0.1), up(b), 1e-9, "up(%v)", b)
		assert.Equal(t, 1.0, max(b), "max(%v)", b)
	}
}

func max0(v float64) float64 {
	if v < 0 {
		return 0
	}
	return v
}

func min1(v float64) float64 {
	if v > 1 {
		return 1
	}
	return v
}

func TestTransformClamps(t *testing.T) {
	assert.Equal(t, 0.0, Down(DefaultStep)(0))
	assert.Equal(t, 1.0, Up(DefaultStep)(1))
	assert.Equal(t, 1.0, Up(DefaultStep)(0.95))
	assert.Equal(t, 1.0, Max()(Max()(0.3)))
}

func TestExpr(t *testing.T) {
	tests := []struct {
		expr string
		in   float64
		want float64
	}{
		{"b * 0.5", 0.8, 0.4},
		{"brightness + 0.25", 0.5, 0.75},
		{"b + 1", 0.5, 1},
		{"b - 2", 0.5, 0},
		{"0.3", 0.9, 0.3},
		{"min(b, 0.6)", 0.9, 0.6},
		{"max(b, 0.6)", 0.2, 0.6},
	}
	for _, tt := range tests {
		fn, err := Expr(tt.expr)
		require.NoError(t, err, tt.expr)
		assert.InDelta(t, tt.want, fn(tt.in), 1e-9, tt.expr)
	}
}

func TestExprRejectsBadInput(t *testing.T) {
	for _, expr := range []string{"b *", "b > 0.5", "nope + 1", "'text'"} {
		_, err := Expr(expr)
		assert.Error(t, err, expr)
	}
}

func TestAdjustBrightnessUpClamps(t *testing.T) {
	r := &fakeRunner{listing: withHDMI, verbose: verboseWith(map[string]string{"HDMI-1": "0.95"})}
	c := newTestController(r)

	changes, err := c.AdjustBrightness(context.Background(), Up(DefaultStep))
	require.NoError(t, err)

	assert.Equal(t, [][]string{{"--output", "HDMI-1", "--brightness", "1.00"}}, r.calls)
	require.Len(t, changes, 1)
	assert.Equal(t, "HDMI-1", changes[0].Display)
	assert.InDelta(t, 0.95, changes[0].Old, 1e-9)
	assert.Equal(t, 1.0, changes[0].New)
}

func TestAdjustBrightnessEachExternal(t *testing.T) {
	r := &fakeRunner{listing: withTwo, verbose: verboseWith(map[string]string{"HDMI-1": "0.8", "DP-2": "0.05"})}
	c := newTestController(r)

	changes, err := c.AdjustBrightness(context.Background(), Down(DefaultStep))
	require.NoError(t, err)

	assert.Equal(t, [][]string{
		{"--output", "HDMI-1", "--brightness", "0.70"},
		{"--output", "DP-2", "--brightness", "0.00"},
	}, r.calls)
	assert.Len(t, changes, 2)
	// One listing plus one verbose query per output.
	assert.Equal(t, 3, r.queries)
}

func TestAdjustBrightnessMax(t *testing.T) {
	r := &fakeRunner{listing: withHDMI, verbose: verboseWith(map[string]string{"HDMI-1": "0.2"})}
	c := newTestController(r)

	for i := 0; i < 2; i++ {
		_, err := c.AdjustBrightness(context.Background(), Max())
		require.NoError(t, err)
	}
	assert.Equal(t, [][]string{
		{"--output", "HDMI-1", "--brightness", "1.00"},
		{"--output", "HDMI-1", "--brightness", "1.00"},
	}, r.calls)
}

func TestAdjustBrightnessNoExternal(t *testing.T) {
	r := &fakeRunner{listing: laptopOnly}
	c := newTestController(r)

	_, err := c.AdjustBrightness(context.Background(), Up(DefaultStep))
	assert.ErrorIs(t, err, ErrNoExternalDisplay)
	assert.Empty(t, r.calls)
}

func TestAdjustBrightnessParseFailure(t *testing.T) {
	// HDMI-1 is connected but missing from the verbose listing.
	r := &fakeRunner{listing: withHDMI, verbose: verboseWith(nil)}
	c := newTestController(r)

	_, err := c.AdjustBrightness(context.Background(), Up(DefaultStep))

	var perr *xrandr.ParseError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, "HDMI-1", perr.Display)
	assert.ErrorIs(t, err, xrandr.ErrDisplayNotFound)
	assert.Empty(t, r.calls)
}

func TestBrightness(t *testing.T) {
	c := newTestController(&fakeRunner{verbose: verboseWith(map[string]string{"HDMI-1": "0.8"})})

	v, err := c.Brightness(context.Background(), "HDMI-1")
	require.NoError(t, err)
	assert.InDelta(t, 0.8, v, 1e-9)
}
