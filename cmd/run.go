package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mouse-blink/scalefit/internal/adapter"
	"github.com/mouse-blink/scalefit/internal/domain"
	m "github.com/mouse-blink/scalefit/internal/model"
)

const (
	runSuccessMessage  = "Results have been generated successfully!"
	runRejectedMessage = "Results have been generated, some cases were rejected."
)

var runOutputFlag string
var runParallelFlag int
var runExpectFlag string

// runCmd represents the run command.
var runCmd = newRunCmd()

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run [input]",
		Short: "Find the compatible keys of every case",
		Long:  runLongDescription,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true

			input := m.StdStream
			if len(args) == 1 {
				input = m.Path(args[0])
			}

			_, err := workflow.Run(cmd.Context(), domain.RunArgs{
				Input:    input,
				Output:   m.Path(viper.GetString(runOutputConfigKey)),
				Threads:  viper.GetInt(runParallelConfigKey),
				Report:   m.Path(viper.GetString(reportConfigKey)),
				Expect:   m.Path(runExpectFlag),
				SpillDir: viper.GetString(runSpillDirConfigKey),
			})

			return reportRunOutcome(cmd, err)
		},
	}

	configureRunFlags(cmd)

	return cmd
}

func init() {
	rootCmd.AddCommand(runCmd)
}

func configureRunFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&runOutputFlag, outputFlagName, "o", viper.GetString(runOutputConfigKey), `output file ("-" for stdout)`)
	bindFlagToConfig(cmd.Flags().Lookup(outputFlagName), runOutputConfigKey)

	cmd.Flags().IntVarP(&runParallelFlag, runParallelFlagName, "p", viper.GetInt(runParallelConfigKey), "number of cases solved concurrently")
	bindFlagToConfig(cmd.Flags().Lookup(runParallelFlagName), runParallelConfigKey)

	cmd.Flags().StringVar(&runExpectFlag, expectFlagName, "", "compare the output with this file and fail on differences")
}

// reportRunOutcome prints the closing status line of a run and passes err through.
func reportRunOutcome(cmd *cobra.Command, err error) error {
	out := cmd.ErrOrStderr()

	switch {
	case err == nil:
		fmt.Fprintln(out, runSuccessMessage)
	case errors.Is(err, adapter.ErrFormat):
		fmt.Fprintln(out, adapter.ErrFormat.Error())
	case errors.Is(err, domain.ErrUnrecognizedNote) && !errors.Is(err, domain.ErrMismatch):
		fmt.Fprintln(out, runRejectedMessage)
	}

	return err
}
