package cmd

import (
	"github.com/hoppxi/xmon/pkg/operation"
	"github.com/spf13/cobra"
)

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Add the external display right of the laptop screen, or left with -l",
	Long: `Add the external display next to the laptop screen.

Unless -k is given, the laptop screen is switched off for a moment so the
window manager moves every workspace onto the external display.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		left, _ := cmd.Flags().GetBool("left")
		keep, _ := cmd.Flags().GetBool("dont-move-workspaces")
		highRes, _ := cmd.Flags().GetBool("high-res")

		opts := operation.AddOptions{
			Placement:          operation.Right,
			PreserveWorkspaces: keep,
			HighResolution:     highRes,
		}
		if left {
			opts.Placement = operation.Left
		}

		return noExternal(cmd, controller.Add(cmd.Context(), opts))
	},
}

func init() {
	addCmd.Flags().BoolP("left", "l", false, "Add new display to the left of the laptop display")
	addCmd.Flags().BoolP("dont-move-workspaces", "k", false, "Keep all workspaces on their current displays")
	addCmd.Flags().Bool("high-res", false, "Use the high resolution mode instead of --auto")
}
