package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"ember/internal/diagfmt"
	"ember/internal/driver"
)

var checkCmd = &cobra.Command{
	Use:   "check [flags] [path ...]",
	Short: "Parse and typecheck ember source files",
	Long: `Check runs the parser and the type checker over the given files.
A directory argument checks every *.em file under it. Files are checked
in parallel, each with its own state.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runCheck,
}

func runCheck(cmd *cobra.Command, args []string) error {
	maxDiagnostics, err := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	if err != nil {
		return fmt.Errorf("failed to get max-diagnostics flag: %w", err)
	}
	jobs, err := cmd.Root().PersistentFlags().GetInt("jobs")
	if err != nil {
		return fmt.Errorf("failed to get jobs flag: %w", err)
	}

	// Директории раскрываем в списки *.em файлов
	var paths []string
	for _, arg := range args {
		st, err := os.Stat(arg)
		if err != nil {
			return err
		}
		if st.IsDir() {
			results, err := driver.CheckDir(cmd.Context(), arg, maxDiagnostics, jobs)
			if err != nil {
				return err
			}
			if failed := reportCheckResults(results); failed > 0 {
				return fmt.Errorf("%d file(s) failed", failed)
			}
			continue
		}
		paths = append(paths, arg)
	}

	if len(paths) == 0 {
		return nil
	}
	results, err := driver.CheckMany(cmd.Context(), paths, maxDiagnostics, jobs)
	if err != nil {
		return err
	}
	if failed := reportCheckResults(results); failed > 0 {
		return fmt.Errorf("%d file(s) failed", failed)
	}
	return nil
}

// reportCheckResults печатает диагностики каждого файла и возвращает
// число файлов с ошибками.
func reportCheckResults(results []driver.CheckManyResult) (failed int) {
	for i := range results {
		r := &results[i]
		if r.Err == nil {
			continue
		}
		failed++
		if r.Check == nil || r.Check.Parse == nil {
			// Файл даже не загрузился
			fmt.Fprintf(os.Stderr, "%s: %v\n", r.Path, r.Err)
			continue
		}
		fmt.Fprint(os.Stderr, diagfmt.RenderError(r.Check.Parse.FileSet, r.Err))
	}
	return failed
}
