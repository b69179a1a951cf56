package operation

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/charmbracelet/log"
	"github.com/hoppxi/xmon/pkg/xrandr"
)

// ErrNoExternalDisplay means only the laptop panel is connected. Commands
// treat it as a no-op.
var ErrNoExternalDisplay = errors.New("no external display")

const (
	DefaultLaptop      = "LVDS-1"
	DefaultHighResMode = "2560x1440"
)

type Placement string

const (
	Right Placement = "right"
	Left  Placement = "left"
)

type AddOptions struct {
	Placement          Placement
	PreserveWorkspaces bool
	HighResolution     bool
}

type DisconnectResult struct {
	Display string
	Err     error
}

type Controller struct {
	run         xrandr.Runner
	laptop      string
	highResMode string
	log         *log.Logger
}

// NewController builds a controller around runner. Empty laptop or mode
// fall back to the defaults.
func NewController(runner xrandr.Runner, laptop, highResMode string, logger *log.Logger) *Controller {
	if laptop == "" {
		laptop = DefaultLaptop
	}
	if highResMode == "" {
		highResMode = DefaultHighResMode
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Controller{run: runner, laptop: laptop, highResMode: highResMode, log: logger}
}

func (c *Controller) Laptop() string { return c.laptop }

// ListConnected returns connected output names in the order xrandr reports them.
func (c *Controller) ListConnected(ctx context.Context) ([]string, error) {
	out, err := c.run.Run(ctx)
	if err != nil {
		return nil, fmt.Errorf("list outputs: %w", err)
	}
	return xrandr.ParseConnected(out)
}

// Externals is ListConnected without the laptop panel.
func (c *Controller) Externals(ctx context.Context) ([]string, error) {
	names, err := c.ListConnected(ctx)
	if err != nil {
		return nil, err
	}
	return slices.DeleteFunc(names, func(n string) bool { return n == c.laptop }), nil
}

// Add attaches the first external output next to the laptop panel. Unless
// workspaces are preserved the panel is switched off first so the window
// manager moves its workspaces onto the external output.
func (c *Controller) Add(ctx context.Context, opts AddOptions) error {
	externals, err := c.Externals(ctx)
	if err != nil {
		return err
	}
	if len(externals) == 0 {
		return ErrNoExternalDisplay
	}
	if len(externals) > 1 {
		c.log.Debug("ignoring extra outputs", "using", externals[0], "ignored", externals[1:])
	}

	ext := externals[0]
	placement := opts.Placement
	if placement == "" {
		placement = Right
	}
	if placement != Left && placement != Right {
		return fmt.Errorf("invalid placement %q", placement)
	}

	mode := xrandr.Mode("")
	if opts.HighResolution {
		mode = xrandr.Mode(c.highResMode)
	}

	if !opts.PreserveWorkspaces {
		args := append([]string{"--output", c.laptop, "--off", "--output", ext, "--primary"}, mode...)
		if _, err := c.run.Run(ctx, args...); err != nil {
			return fmt.Errorf("move workspaces to %s: %w", ext, err)
		}
	}

	args := append([]string{
		"--output", c.laptop, "--primary", "--auto",
		"--output", ext, "--" + string(placement) + "-of", c.laptop,
	}, mode...)
	if _, err := c.run.Run(ctx, args...); err != nil {
		if !opts.PreserveWorkspaces {
			return fmt.Errorf("place %s %s of %s (%s may still be off): %w", ext, placement, c.laptop, c.laptop, err)
		}
		return fmt.Errorf("place %s %s of %s: %w", ext, placement, c.laptop, err)
	}

	c.log.Info("display added", "output", ext, "placement", placement)
	return nil
}

// Disconnect switches off every external output. A failure on one output
// does not stop the others; all failures are joined into the returned error.
func (c *Controller) Disconnect(ctx context.Context) ([]DisconnectResult, error) {
	externals, err := c.Externals(ctx)
	if err != nil {
		return nil, err
	}
	if len(externals) == 0 {
		return nil, ErrNoExternalDisplay
	}

	results := make([]DisconnectResult, 0, len(externals))
	var errs []error
	for _, d := range externals {
		_, err := c.run.Run(ctx, xrandr.Off(d)...)
		if err != nil {
			err = fmt.Errorf("disable %s: %w", d, err)
			errs = append(errs, err)
		}
		results = append(results, DisconnectResult{Display: d, Err: err})
	}

	return results, errors.Join(errs...)
}
