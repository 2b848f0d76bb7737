// Package cmd provides the root command and CLI setup for scalefit.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/mouse-blink/scalefit/internal/adapter"
	"github.com/mouse-blink/scalefit/internal/controller"
	"github.com/mouse-blink/scalefit/internal/domain"
	m "github.com/mouse-blink/scalefit/internal/model"
)

var streamFSAdapter adapter.StreamFSAdapter
var reportStore adapter.ReportStore
var midiAdapter adapter.MIDIAdapter
var keyFinder adapter.KeyFinder
var workflow domain.Workflow
var ui controller.UI

// reportFlag is a root-level flag shared by commands that read or write run reports.
var reportFlag string

var logFileFlag string
var verboseFlag bool

func init() {
	configureRootFlags(rootCmd)

	// Initialize shared dependencies.
	ui = controller.NewUI(rootCmd, controller.IsTTY(os.Stdout))
	streamFSAdapter = adapter.NewLocalStreamFSAdapter(os.Stdin, os.Stdout)
	reportStore = adapter.NewReportStore()
	midiAdapter = adapter.NewSMFAdapter()
	keyFinder = domain.NewKeyFinder()
	workflow = domain.NewWorkflow(
		streamFSAdapter,
		reportStore,
		midiAdapter,
		ui,
	)
}

const inputFormatHelp = `Input format:
  line 1           number of cases
  per case         a line with the note count, then a line with the notes
                   (omitted when the count is 0)

Notes are spelled C, C#, Db, ... B; B#, E#, Cb and Fb are accepted too.`

const rootLongDescription = `Scalefit finds every major and minor key whose scale contains all the
notes of a melody. Keys are printed as M<tonic> for major and m<tonic> for minor.

` + inputFormatHelp

const runLongDescription = `Solve every case of the input file (stdin when omitted or "-") and write
one "Case #i: ..." line per case.

` + inputFormatHelp

// rootCmd represents the base command when called without any subcommands.
var rootCmd = baseRootCmd()

func baseRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "scalefit",
		Short: "Find the keys that fit a set of notes",
		Long:  rootLongDescription,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			configureLogger(viper.GetString(logFilenameKey), viper.GetBool(logVerboseKey))
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}
}

// newRootCmd builds a root command with its persistent flags, detached from rootCmd.
func newRootCmd() *cobra.Command {
	cmd := baseRootCmd()
	configureRootFlags(cmd)

	return cmd
}

func configureRootFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringVar(&reportFlag, reportFlagName, viper.GetString(reportConfigKey), "path of the YAML run report")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(reportFlagName), reportConfigKey)

	cmd.PersistentFlags().StringVar(&logFileFlag, logFileFlagName, viper.GetString(logFilenameKey), "log file path")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(logFileFlagName), logFilenameKey)

	cmd.PersistentFlags().BoolVarP(&verboseFlag, verboseFlagName, "v", viper.GetBool(logVerboseKey), "log at debug level")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(verboseFlagName), logVerboseKey)
}

// bindFlagToConfig wires a Cobra flag to a Viper key so config/env values feed the flag.
func bindFlagToConfig(flag *pflag.Flag, key string) {
	if flag == nil {
		cobra.CheckErr(fmt.Errorf("flag for config key %q not found", key))
		return
	}

	cobra.CheckErr(viper.BindPFlag(key, flag))
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func parsePaths(args []string) []m.Path {
	paths := make([]m.Path, 0, len(args))
	for _, arg := range args {
		paths = append(paths, m.Path(arg))
	}

	return paths
}
