package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"gooze.dev/pkg/tokfuzz/internal/domain"
	m "gooze.dev/pkg/tokfuzz/internal/model"
)

// listCmd represents the list command.
var listCmd = newListCmd()

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List corpus entries",
		Long: `List every corpus entry with its size, token count, number of bracket
openers and content name. Entries with an up-to-date token cache are marked.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return newWorkflow(cmd).List(cmd.Context(), domain.ListArgs{
				Corpus:  m.Path(viper.GetString(corpusConfigKey)),
				Dialect: m.Path(viper.GetString(dialectConfigKey)),
			})
		},
	}
}

func init() {
	rootCmd.AddCommand(listCmd)
}
