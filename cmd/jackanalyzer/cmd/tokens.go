package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/xiam/jack-analyzer"
)

var tokensCmd = &cobra.Command{
	Use:   "tokens <file.jack|->",
	Short: "Print the token stream of a Jack source",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if args[0] == "-" {
			return jack.DumpTokens(os.Stdin, cmd.OutOrStdout())
		}

		f, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer f.Close()

		return jack.DumpTokens(f, cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.AddCommand(tokensCmd)
}
