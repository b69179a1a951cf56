package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/hoppxi/xmon/internal/manager"
	"github.com/hoppxi/xmon/pkg/operation"
	"github.com/hoppxi/xmon/pkg/xrandr"
	"github.com/spf13/cobra"
)

var Version = "0.1.0"

var (
	settings   *manager.Settings
	controller *operation.Controller
	logger     = log.NewWithOptions(os.Stderr, log.Options{Prefix: "xmon"})

	// newRunner is swapped out in tests.
	newRunner = func(s *manager.Settings, l *log.Logger) xrandr.Runner {
		var r xrandr.Runner = xrandr.NewExecRunner(s.Tool, l)
		if s.DryRun {
			r = &xrandr.DryRunner{Next: r, Log: l}
		}
		return r
	}
)

var rootCmd = &cobra.Command{
	Use:           "xmon",
	Version:       Version,
	Short:         "Attach external monitors and control their brightness with xrandr",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		s, err := manager.Config.Load(cmd.Flags())
		if err != nil {
			return &usageError{err}
		}
		settings = s

		if s.Verbose {
			logger.SetLevel(log.DebugLevel)
		} else {
			logger.SetLevel(log.InfoLevel)
		}

		controller = operation.NewController(newRunner(s, logger), s.Laptop, s.HighResMode, logger)
		return nil
	},
}

func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()

	if err != nil {
		logger.Error(err.Error())
		os.Exit(exitCode(err))
	}
}

// noExternal reports the informational no-op case and swallows it.
func noExternal(cmd *cobra.Command, err error) error {
	if errors.Is(err, operation.ErrNoExternalDisplay) {
		fmt.Fprintln(cmd.OutOrStdout(), "no external display")
		return nil
	}
	return err
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.String("laptop", operation.DefaultLaptop, "Output name of the laptop panel")
	pf.String("tool", "xrandr", "Path to the xrandr binary")
	pf.String("high-res-mode", operation.DefaultHighResMode, "Mode used by add --high-res")
	pf.Float64("step", operation.DefaultStep, "Brightness step for b up and b down")
	pf.Bool("notify", false, "Show a desktop notification after brightness changes")
	pf.Bool("dry-run", false, "Print configuration changes instead of applying them")
	pf.BoolP("verbose", "v", false, "Log every xrandr invocation")

	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(disconnectCmd)
	rootCmd.AddCommand(brightnessCmd)
	rootCmd.AddCommand(statusCmd)
}
