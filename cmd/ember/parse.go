package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"ember/internal/diagfmt"
	"ember/internal/driver"
)

var parseCmd = &cobra.Command{
	Use:   "parse [flags] file.em",
	Short: "Parse an ember source file",
	Long: `Parse builds the statement list for an ember source file and reports
every syntax diagnostic with a code frame. Parsing is error tolerant:
diagnostics do not stop the parse.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runParse,
}

func init() {
	parseCmd.Flags().StringP("expr", "e", "", "parse a single expression instead of a file")
}

func runParse(cmd *cobra.Command, args []string) error {
	maxDiagnostics, err := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	if err != nil {
		return fmt.Errorf("failed to get max-diagnostics flag: %w", err)
	}

	exprSrc, err := cmd.Flags().GetString("expr")
	if err != nil {
		return err
	}

	var result *driver.ParseResult
	switch {
	case exprSrc != "":
		_, result = driver.ParseExprString("<expr>", exprSrc, maxDiagnostics)
	case len(args) == 1:
		result, err = driver.Parse(args[0], maxDiagnostics)
		if err != nil {
			return fmt.Errorf("parsing failed: %w", err)
		}
	default:
		return fmt.Errorf("expected a file argument or --expr")
	}

	if result.Bag.Len() > 0 {
		if err := diagfmt.Pretty(os.Stderr, result.Bag, result.FileSet); err != nil {
			return err
		}
	}
	if result.Bag.HasErrors() {
		return fmt.Errorf("%d syntax problem(s)", result.Bag.Len())
	}
	fmt.Fprintln(cmd.OutOrStdout(), "ok")
	return nil
}
