package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"ember/internal/diagfmt"
	"ember/internal/driver"
	"ember/internal/project"
)

var buildCmd = &cobra.Command{
	Use:   "build [flags] [path]",
	Short: "Build an ember project",
	Long: `Build compiles ember sources to JavaScript. Given a *.em file it
compiles just that file. Otherwise it walks up from path (or the current
directory) to find ember.toml and builds the project entry point.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runBuild,
}

func init() {
	buildCmd.Flags().StringP("output", "o", "", "output file (default derived from the entry)")
	buildCmd.Flags().Bool("no-cache", false, "skip the build cache")
	buildCmd.Flags().Bool("drop-cache", false, "clear the build cache and exit")
}

func runBuild(cmd *cobra.Command, args []string) error {
	noCache, err := cmd.Flags().GetBool("no-cache")
	if err != nil {
		return err
	}
	dropCache, err := cmd.Flags().GetBool("drop-cache")
	if err != nil {
		return err
	}
	output, err := cmd.Flags().GetString("output")
	if err != nil {
		return err
	}
	maxDiagnostics, err := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	if err != nil {
		return err
	}

	var cache *driver.DiskCache
	if !noCache || dropCache {
		cache, err = driver.OpenDiskCache("ember")
		if err != nil {
			return fmt.Errorf("failed to open build cache: %w", err)
		}
	}
	if dropCache {
		if err := cache.DropAll(); err != nil {
			return fmt.Errorf("failed to drop build cache: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), "build cache cleared")
		return nil
	}

	entry, outPath, err := resolveBuildTarget(cmd, args, output, &maxDiagnostics)
	if err != nil {
		return err
	}

	var (
		result *driver.CompileResult
		cached bool
	)
	if noCache {
		result, err = driver.Compile(entry, maxDiagnostics)
	} else {
		result, cached, err = driver.CompileCached(entry, maxDiagnostics, cache)
	}
	if err != nil {
		if result != nil && result.Check != nil && result.Check.Parse != nil {
			fmt.Fprint(os.Stderr, diagfmt.RenderError(result.Check.Parse.FileSet, err))
		}
		return fmt.Errorf("build failed: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return err
	}
	if err := os.WriteFile(outPath, []byte(result.Output), 0o644); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	if cached {
		fmt.Fprintf(cmd.OutOrStdout(), "wrote %s (cached)\n", outPath)
	} else {
		fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", outPath)
	}
	return nil
}

// resolveBuildTarget выбирает входной файл и путь вывода.
// Для *.em аргумента проект не нужен, иначе ищем ember.toml.
func resolveBuildTarget(cmd *cobra.Command, args []string, output string, maxDiagnostics *int) (entry, outPath string, err error) {
	target := "."
	if len(args) == 1 {
		target = args[0]
	}

	if strings.HasSuffix(target, ".em") {
		entry = target
		outPath = output
		if outPath == "" {
			outPath = strings.TrimSuffix(target, ".em") + ".js"
		}
		return entry, outPath, nil
	}

	manifestPath, ok, err := project.FindEmberToml(target)
	if err != nil {
		return "", "", err
	}
	if !ok {
		return "", "", fmt.Errorf("no %s found from %q", project.ManifestName, target)
	}
	manifest, err := project.LoadManifest(manifestPath)
	if err != nil {
		return "", "", err
	}

	entry = manifest.EntryPath()
	outPath = output
	if outPath == "" {
		outPath = manifest.OutPath()
	}
	// Манифест задаёт лимит диагностик, если флаг не переопределён
	if manifest.Build.MaxDiagnostics > 0 && !cmd.Root().PersistentFlags().Changed("max-diagnostics") {
		*maxDiagnostics = manifest.Build.MaxDiagnostics
	}
	return entry, outPath, nil
}
