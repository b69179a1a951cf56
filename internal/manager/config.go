package manager

import (
	"fmt"
	"strings"

	"github.com/hoppxi/xmon/pkg/operation"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const EnvPrefix = "XMON"

// Settings are resolved from flags, then XMON_* environment variables,
// then defaults. No config file is read.
type Settings struct {
	Laptop      string
	Tool        string
	HighResMode string
	Step        float64
	Notify      bool
	DryRun      bool
	Verbose     bool
}

type ConfigManager struct{}

var Config = &ConfigManager{}

func (c *ConfigManager) Defaults(v *viper.Viper) {
	v.SetDefault("laptop", operation.DefaultLaptop)
	v.SetDefault("tool", "xrandr")
	v.SetDefault("high-res-mode", operation.DefaultHighResMode)
	v.SetDefault("step", operation.DefaultStep)
	v.SetDefault("notify", false)
	v.SetDefault("dry-run", false)
	v.SetDefault("verbose", false)
}

func (c *ConfigManager) Load(flags *pflag.FlagSet) (*Settings, error) {
	v := viper.New()
	c.Defaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if flags != nil {
		if err := v.BindPFlags(flags); err != nil {
			return nil, fmt.Errorf("failed to bind flags: %w", err)
		}
	}

	s := &Settings{
		Laptop:      strings.TrimSpace(v.GetString("laptop")),
		Tool:        strings.TrimSpace(v.GetString("tool")),
		HighResMode: strings.TrimSpace(v.GetString("high-res-mode")),
		Step:        v.GetFloat64("step"),
		Notify:      v.GetBool("notify"),
		DryRun:      v.GetBool("dry-run"),
		Verbose:     v.GetBool("verbose"),
	}

	switch {
	case s.Laptop == "":
		return nil, fmt.Errorf("laptop output name must not be empty")
	case s.Tool == "":
		return nil, fmt.Errorf("tool path must not be empty")
	case s.Step <= 0 || s.Step > 1:
		return nil, fmt.Errorf("step must be in (0, 1], got %v", s.Step)
	}

	return s, nil
}
