package cmd

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/xiam/jack-analyzer"
)

var (
	cfgFile string
	verbose bool

	errorPrefix = color.New(color.FgRed, color.Bold)
	okPrefix    = color.New(color.FgGreen)
)

var rootCmd = &cobra.Command{
	Use:   "jackanalyzer",
	Short: "Syntax analyzer for the Jack language",
	Long: `jackanalyzer parses Jack classes and writes their parse trees as
tagged text, one element per grammar rule.

Commands:
  analyze  - write Foo.xml for every Foo.jack
  tokens   - print the token stream of a source file
  version  - print version information`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command. Errors are printed to stderr.
func Execute() error {
	return ExecuteContext(context.Background())
}

func ExecuteContext(ctx context.Context) error {
	err := rootCmd.ExecuteContext(ctx)
	if err != nil {
		printError(rootCmd.ErrOrStderr(), err)
	}
	return err
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (.toml, .yaml or .yml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")

	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		color.NoColor = true
	}
}

// loadConfig returns the configuration named by --config, or the default
// one.
func loadConfig(cmd *cobra.Command) (*jack.Config, error) {
	cfg := jack.DefaultConfig()
	if cfgFile != "" {
		var err error
		if cfg, err = jack.LoadConfig(cfgFile); err != nil {
			return nil, err
		}
	}
	if verbose {
		cfg.Logger = log.New(cmd.ErrOrStderr(), "jackanalyzer: ", 0)
	}
	return cfg, nil
}

func printError(w io.Writer, err error) {
	errorPrefix.Fprint(w, "error: ")
	fmt.Fprintln(w, err)
}

func printOK(w io.Writer, format string, args ...interface{}) {
	okPrefix.Fprint(w, "ok ")
	fmt.Fprintf(w, format+"\n", args...)
}
