package cmd

import (
	"fmt"

	"github.com/hoppxi/xmon/pkg/notify"
	"github.com/hoppxi/xmon/pkg/operation"
	"github.com/spf13/cobra"
)

var brightnessCmd = &cobra.Command{
	Use:   "b",
	Short: "Brightness control for external displays",
}

var brightnessDownCmd = &cobra.Command{
	Use:   "down",
	Short: "Lower brightness",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return adjust(cmd, operation.Down(settings.Step))
	},
}

var brightnessUpCmd = &cobra.Command{
	Use:   "up",
	Short: "Increase brightness",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return adjust(cmd, operation.Up(settings.Step))
	},
}

var brightnessMaxCmd = &cobra.Command{
	Use:   "max",
	Short: "Increase brightness to the maximum level",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return adjust(cmd, operation.Max())
	},
}

var brightnessSetCmd = &cobra.Command{
	Use:   "set <expr>",
	Short: "Set brightness from an expression over the current value",
	Example: `  xmon b set 0.6
  xmon b set "b * 0.5"
  xmon b set "max(brightness - 0.3, 0.2)"`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		fn, err := operation.Expr(args[0])
		if err != nil {
			return &usageError{err}
		}
		return adjust(cmd, fn)
	},
}

func adjust(cmd *cobra.Command, fn operation.Transform) error {
	changes, err := controller.AdjustBrightness(cmd.Context(), fn)
	for _, c := range changes {
		fmt.Fprintf(cmd.OutOrStdout(), "%s: %.2f -> %.2f\n", c.Display, c.Old, c.New)

		if settings.Notify && !settings.DryRun {
			if nerr := notify.Brightness(c.Display, c.New); nerr != nil {
				logger.Warn("notification failed", "err", nerr)
			}
		}
	}
	return noExternal(cmd, err)
}

func init() {
	brightnessCmd.AddCommand(brightnessDownCmd)
	brightnessCmd.AddCommand(brightnessUpCmd)
	brightnessCmd.AddCommand(brightnessMaxCmd)
	brightnessCmd.AddCommand(brightnessSetCmd)
}
