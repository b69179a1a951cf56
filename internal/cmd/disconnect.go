package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var disconnectCmd = &cobra.Command{
	Use:   "disconnect",
	Short: "Disable all external displays and only use the laptop screen",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		results, err := controller.Disconnect(cmd.Context())
		for _, r := range results {
			if r.Err != nil {
				fmt.Fprintf(cmd.OutOrStdout(), "%s: failed\n", r.Display)
				continue
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: off\n", r.Display)
		}
		return noExternal(cmd, err)
	},
}
