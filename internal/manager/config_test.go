package manager

import (
	"testing"

	"github.com/hoppxi/xmon/pkg/operation"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFlags() *pflag.FlagSet {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.String("laptop", "LVDS-1", "")
	fs.String("tool", "xrandr", "")
	fs.Float64("step", 0.1, "")
	fs.Bool("dry-run", false, "")
	return fs
}

func TestLoadDefaults(t *testing.T) {
	s, err := Config.Load(nil)
	require.NoError(t, err)

	assert.Equal(t, &Settings{
		Laptop:      operation.DefaultLaptop,
		Tool:        "xrandr",
		HighResMode: operation.DefaultHighResMode,
		Step:        operation.DefaultStep,
	}, s)
}

func TestLoadEnvOverridesDefault(t *testing.T) {
	t.Setenv("XMON_LAPTOP", "eDP-1")
	t.Setenv("XMON_HIGH_RES_MODE", "3840x2160")
	t.Setenv("XMON_NOTIFY", "true")

	s, err := Config.Load(newFlags())
	require.NoError(t, err)

	assert.Equal(t, "eDP-1", s.Laptop)
	assert.Equal(t, "3840x2160", s.HighResMode)
	assert.True(t, s.Notify)
}

func TestLoadFlagOverridesEnv(t *testing.T) {
	t.Setenv("XMON_LAPTOP", "eDP-1")

	fs := newFlags()
	require.NoError(t, fs.Parse([]string{"--laptop", "eDP-2", "--dry-run", "--step", "0.05"}))

	s, err := Config.Load(fs)
	require.NoError(t, err)

	assert.Equal(t, "eDP-2", s.Laptop)
	assert.True(t, s.DryRun)
	assert.InDelta(t, 0.05, s.Step, 1e-9)
}

func TestLoadRejectsInvalid(t *testing.T) {
	tests := map[string]string{
		"XMON_LAPTOP": " ",
		"XMON_TOOL":   "  ",
		"XMON_STEP":   "1.5",
	}
	for key, val := range tests {
		t.Run(key, func(t *testing.T) {
			t.Setenv(key, val)
			_, err := Config.Load(nil)
			assert.Error(t, err)
		})
	}
}
