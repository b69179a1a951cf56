package displayinfo

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/hoppxi/xmon/pkg/xrandr"
	"gopkg.in/yaml.v3"
)

type OutputInfo struct {
	Name       string   `json:"name" yaml:"name"`
	State      string   `json:"state" yaml:"state"`
	Primary    bool     `json:"primary" yaml:"primary"`
	Laptop     bool     `json:"laptop" yaml:"laptop"`
	Brightness *float64 `json:"brightness,omitempty" yaml:"brightness,omitempty"`
}

type DisplayInfo struct {
	Laptop  string       `json:"laptop" yaml:"laptop"`
	Outputs []OutputInfo `json:"outputs" yaml:"outputs"`
}

func GetDisplayInfo(ctx context.Context, run xrandr.Runner, laptop string) (*DisplayInfo, error) {
	out, err := run.Run(ctx, "--verbose")
	if err != nil {
		return nil, fmt.Errorf("query outputs: %w", err)
	}

	outputs, err := xrandr.ParseOutputs(out)
	if err != nil {
		return nil, err
	}

	info := &DisplayInfo{Laptop: laptop, Outputs: []OutputInfo{}}
	for _, o := range outputs {
		oi := OutputInfo{
			Name:    o.Name,
			State:   string(o.State),
			Primary: o.Primary,
			Laptop:  o.Name == laptop,
		}
		if o.HasBrightness {
			b := o.Brightness
			oi.Brightness = &b
		}
		info.Outputs = append(info.Outputs, oi)
	}
	return info, nil
}

// Write renders info as text, json or yaml.
func (info *DisplayInfo) Write(w io.Writer, format string) error {
	switch strings.ToLower(format) {
	case "", "text":
		for _, o := range info.Outputs {
			line := fmt.Sprintf("%-10s %s", o.Name, o.State)
			if o.Primary {
				line += " primary"
			}
			if o.Laptop {
				line += " laptop"
			}
			if o.Brightness != nil {
				line += " brightness=" + xrandr.FormatBrightness(*o.Brightness)
			}
			if _, err := fmt.Fprintln(w, line); err != nil {
				return err
			}
		}
		return nil
	case "json":
		data, err := json.MarshalIndent(info, "", "  ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, string(data))
		return err
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(info); err != nil {
			return err
		}
		return enc.Close()
	}
	return fmt.Errorf("unknown format %q (want text, json or yaml)", format)
}
