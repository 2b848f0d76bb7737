package cmd

import (
	"errors"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mouse-blink/scalefit/internal/domain"
	m "github.com/mouse-blink/scalefit/internal/model"
)

var errNoReportPath = errors.New("no report path: pass --report or set report.path")

// viewCmd represents the view command.
var viewCmd = newViewCmd()

func newViewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "view",
		Short: "View a previously saved run report",
		Long:  "View a run report written by 'scalefit run --report' or 'scalefit analyze --report'.",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, _ []string) error {
			reportPath := m.Path(viper.GetString(reportConfigKey))
			if reportPath == "" {
				return errNoReportPath
			}

			return workflow.View(cmd.Context(), domain.ViewArgs{Report: reportPath})
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(viewCmd)
}
