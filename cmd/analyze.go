package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mouse-blink/scalefit/internal/domain"
	m "github.com/mouse-blink/scalefit/internal/model"
)

// analyzeCmd represents the analyze command.
var analyzeCmd = newAnalyzeCmd()

func newAnalyzeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "analyze <file.mid|dir|dir/...>...",
		Short: "Find the keys that fit the notes of MIDI files",
		Long: `Read the note-on events of each Standard MIDI File (percussion channel excluded)
and report the keys whose scale contains every pitch class played.

Directories are scanned for *.mid, *.midi and *.smf files; "dir/..." includes
subdirectories.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true

			_, err := workflow.Analyze(cmd.Context(), domain.AnalyzeArgs{
				Paths:  parsePaths(args),
				Report: m.Path(viper.GetString(reportConfigKey)),
			})

			return err
		},
	}
}

func init() {
	rootCmd.AddCommand(analyzeCmd)
}
