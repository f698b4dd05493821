package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"gooze.dev/pkg/tokfuzz/internal/domain"
	m "gooze.dev/pkg/tokfuzz/internal/model"
)

// lexCmd represents the lex command.
var lexCmd = newLexCmd()

func newLexCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "lex <file>",
		Short: "Show how a file splits into tokens",
		Long: `Lex a file with the configured dialect and print its tokens, bracket
depths and whether lowering the tokens reproduces the file byte for byte.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return newWorkflow(cmd).Lex(cmd.Context(), domain.LexArgs{
				Path:    m.Path(args[0]),
				Dialect: m.Path(viper.GetString(dialectConfigKey)),
			})
		},
	}
}

func init() {
	rootCmd.AddCommand(lexCmd)
}
