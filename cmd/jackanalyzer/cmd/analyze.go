package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/xiam/jack-analyzer"
)

var (
	analyzeOutDir string
	analyzeIndent string
	analyzeTokens bool
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze <file.jack|dir|->",
	Short: "Write the parse tree of Jack sources",
	Long: `Parses a Jack source file, or every .jack file in a directory, and
writes Foo.xml next to each Foo.jack (or into --out-dir). With --tokens the
token stream is written to FooT.xml too.

Passing "-" reads one class from stdin and writes its tree to stdout. Nothing
is written to stdout if the class fails to parse.

Examples:
  jackanalyzer analyze Square/
  jackanalyzer analyze --tokens --out-dir build Main.jack
  cat Main.jack | jackanalyzer analyze -`,
	Args: cobra.ExactArgs(1),
	RunE: runAnalyze,
}

func init() {
	analyzeCmd.Flags().StringVarP(&analyzeOutDir, "out-dir", "o", "", "directory for output files")
	analyzeCmd.Flags().StringVar(&analyzeIndent, "indent", "", "indentation unit (default: four spaces)")
	analyzeCmd.Flags().BoolVarP(&analyzeTokens, "tokens", "t", false, "also write the token stream")
	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("out-dir") {
		cfg.OutputDir = analyzeOutDir
	}
	if flags.Changed("indent") {
		cfg.Indent = analyzeIndent
	}
	if flags.Changed("tokens") {
		cfg.Tokens = analyzeTokens
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	if args[0] == "-" {
		return jack.Analyze(os.Stdin, cmd.OutOrStdout(), cfg)
	}

	results, err := jack.AnalyzePath(cmd.Context(), args[0], cfg)
	for _, res := range results {
		printOK(cmd.OutOrStdout(), "%s -> %s", res.Source, res.Tree)
	}
	return err
}
