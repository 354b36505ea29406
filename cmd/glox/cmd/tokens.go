package cmd

import (
	"github.com/spf13/cobra"

	"github.com/ltungv/lox/gloxfront/internal/config"
)

var tokensCmd = &cobra.Command{
	Use:   "tokens [script]",
	Short: "Print the token sequence instead of the syntax tree",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return run(cmd, args, config.ModeTokens)
	},
}

func init() {
	rootCmd.AddCommand(tokensCmd)
}
