package cmd

import (
	"github.com/hoppxi/xmon/pkg/displayinfo"
	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show outputs, the laptop panel and software brightness",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		format, _ := cmd.Flags().GetString("format")

		info, err := displayinfo.GetDisplayInfo(cmd.Context(), newRunner(settings, logger), settings.Laptop)
		if err != nil {
			return err
		}
		return info.Write(cmd.OutOrStdout(), format)
	},
}

func init() {
	statusCmd.Flags().StringP("format", "f", "text", "Output format: text, json or yaml")
}
