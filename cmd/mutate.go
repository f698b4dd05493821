package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"gooze.dev/pkg/tokfuzz/internal/domain"
	m "gooze.dev/pkg/tokfuzz/internal/model"
)

var (
	iterationsFlag int
	stackFlag      int
	parallelFlag   int
	seedFlag       uint64
	maxSizeFlag    int
	reinsertFlag   bool
	mutatorFlags   []string
	diffFlag       bool
)

// mutateCmd represents the mutate command.
var mutateCmd = newMutateCmd()

func newMutateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mutate",
		Short: "Run a mutation campaign over the corpus",
		Long: `Run a mutation campaign. Each iteration picks a corpus entry, applies a
random stack of token mutation operators and writes the result to the
output directory under its content name.

The same seed replays the same campaign; a seed of 0 picks one from the
clock and prints it.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return newWorkflow(cmd).Mutate(cmd.Context(), mutateArgsFromConfig())
		},
	}

	configureMutateFlags(cmd)

	return cmd
}

func configureMutateFlags(cmd *cobra.Command) {
	cmd.Flags().IntVarP(&iterationsFlag, iterationsFlagName, "n", viper.GetInt(iterationsConfigKey), "number of iterations")
	bindFlagToConfig(cmd.Flags().Lookup(iterationsFlagName), iterationsConfigKey)

	cmd.Flags().IntVar(&stackFlag, stackFlagName, viper.GetInt(stackConfigKey), "maximum number of operators stacked per iteration")
	bindFlagToConfig(cmd.Flags().Lookup(stackFlagName), stackConfigKey)

	cmd.Flags().IntVarP(&parallelFlag, parallelFlagName, "p", viper.GetInt(parallelConfigKey), "number of parallel workers")
	bindFlagToConfig(cmd.Flags().Lookup(parallelFlagName), parallelConfigKey)

	cmd.Flags().Uint64Var(&seedFlag, seedFlagName, viper.GetUint64(seedConfigKey), "campaign seed (0 picks one from the clock)")
	bindFlagToConfig(cmd.Flags().Lookup(seedFlagName), seedConfigKey)

	cmd.Flags().IntVar(&maxSizeFlag, maxSizeFlagName, viper.GetInt(maxSizeConfigKey), "maximum testcase length in tokens")
	bindFlagToConfig(cmd.Flags().Lookup(maxSizeFlagName), maxSizeConfigKey)

	cmd.Flags().BoolVar(&reinsertFlag, reinsertFlagName, viper.GetBool(reinsertConfigKey), "add mutated testcases back into the corpus")
	bindFlagToConfig(cmd.Flags().Lookup(reinsertFlagName), reinsertConfigKey)

	cmd.Flags().StringArrayVarP(&mutatorFlags, mutatorFlagName, "m", viper.GetStringSlice(mutatorsConfigKey), "enable only this operator (can be repeated)")
	bindFlagToConfig(cmd.Flags().Lookup(mutatorFlagName), mutatorsConfigKey)

	cmd.Flags().BoolVar(&diffFlag, diffFlagName, viper.GetBool(showDiffConfigKey), "print a unified diff for every mutated testcase")
	bindFlagToConfig(cmd.Flags().Lookup(diffFlagName), showDiffConfigKey)
}

func mutateArgsFromConfig() domain.MutateArgs {
	return domain.MutateArgs{
		Corpus:     m.Path(viper.GetString(corpusConfigKey)),
		Dialect:    m.Path(viper.GetString(dialectConfigKey)),
		Output:     m.Path(viper.GetString(outputConfigKey)),
		Iterations: viper.GetInt(iterationsConfigKey),
		Stack:      viper.GetInt(stackConfigKey),
		Threads:    viper.GetInt(parallelConfigKey),
		Seed:       viper.GetUint64(seedConfigKey),
		MaxSize:    viper.GetInt(maxSizeConfigKey),
		Reinsert:   viper.GetBool(reinsertConfigKey),
		ShowDiff:   viper.GetBool(showDiffConfigKey),
		Mutators:   viper.GetStringSlice(mutatorsConfigKey),
	}
}

func init() {
	rootCmd.AddCommand(mutateCmd)
}
