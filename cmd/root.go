// Package cmd provides the root command and CLI setup for tokfuzz.
package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"gooze.dev/pkg/tokfuzz/internal/adapter"
	"gooze.dev/pkg/tokfuzz/internal/controller"
	"gooze.dev/pkg/tokfuzz/internal/domain"
)

// outputDirFlag is a root-level flag shared by commands that write testcases.
var outputDirFlag string

// corpusDirFlag is the corpus directory read by list and mutate.
var corpusDirFlag string

// dialectFlag names a dialect file; empty selects the built-in dialect.
var dialectFlag string

var verboseFlag bool

// newWorkflow builds the workflow for cmd. Tests replace it.
var newWorkflow = defaultWorkflow

func defaultWorkflow(cmd *cobra.Command) domain.Workflow {
	fsAdapter := adapter.NewLocalSourceFSAdapter()

	return domain.NewWorkflow(
		fsAdapter,
		adapter.NewDialectAdapter(fsAdapter),
		controller.NewUI(cmd, controller.IsTTY(cmd.OutOrStdout())),
	)
}

const rootLongDescription = `tokfuzz mutates inputs at the token level. Every corpus file is lexed
into tokens, stacks of mutation operators rewrite the token sequence while
keeping brackets balanced where they can, and the result is written back
out as bytes.

Without a dialect file the built-in C-like dialect is used; see
"tokfuzz lex" to check how a dialect splits a file.`

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "tokfuzz",
		Short:         "Token-level input mutator",
		Long:          rootLongDescription,
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			configureLogger(viper.GetString(logFilenameKey), viper.GetBool(logVerboseKey))
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}

	configureRootFlags(cmd)

	return cmd
}

func configureRootFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringVarP(&outputDirFlag, outputFlagName, "o", viper.GetString(outputConfigKey), "output directory for mutated testcases and reports")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(outputFlagName), outputConfigKey)

	cmd.PersistentFlags().StringVarP(&corpusDirFlag, corpusFlagName, "c", viper.GetString(corpusConfigKey), "corpus directory")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(corpusFlagName), corpusConfigKey)

	cmd.PersistentFlags().StringVarP(&dialectFlag, dialectFlagName, "d", viper.GetString(dialectConfigKey), "dialect file (.yaml, .toml or .json); built-in C-like dialect when empty")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(dialectFlagName), dialectConfigKey)

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
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)

	err := rootCmd.ExecuteContext(ctx)

	stop()

	if err != nil {
		os.Exit(1)
	}
}
