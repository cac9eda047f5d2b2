package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"coltc/internal/diagfmt"
	"coltc/internal/driver"
)

var checkCmd = &cobra.Command{
	Use:   "check [flags] [dir]",
	Short: "Scan every source file in a project",
	Long: `Check tokenizes every colt source file under the project directory in
parallel and prints the collected diagnostics. The project root comes
from coltc.toml when present, the argument otherwise.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCheck,
}

func init() {
	checkCmd.Flags().Int("jobs", 0, "parallel workers (0 = one per CPU)")
}

func runCheck(cmd *cobra.Command, args []string) error {
	startDir := "."
	if len(args) == 1 {
		startDir = args[0]
	}

	jobs, _ := cmd.Flags().GetInt("jobs")
	dir := startDir
	if manifest, ok, err := loadManifest(startDir); err != nil {
		return err
	} else if ok {
		dir = manifest.sourceDir()
		if jobs == 0 {
			jobs = manifest.Config.Check.Jobs
		}
	}

	maxDiagnostics, _ := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	results, err := driver.TokenizeDir(cmd.Context(), dir, driver.Options{
		MaxDiagnostics: maxDiagnostics,
		Log:            newLogger(cmd),
	}, jobs)
	if err != nil {
		return err
	}
	if len(results) == 0 {
		return fmt.Errorf("no %s files under %s", driver.SourceExt, dir)
	}

	opts := diagfmt.PrettyOpts{Color: useColor(cmd, os.Stderr)}
	failed := 0
	for _, r := range results {
		if r.Err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", r.Path, r.Err)
			failed++
			continue
		}
		if r.Result.Bag.Len() > 0 {
			err := diagfmt.Diagnostics(os.Stderr, r.Result.Path,
				r.Result.Bag.Items(), r.Result.Buffer.Lines(), opts)
			if err != nil {
				return err
			}
		}
		if r.Result.Bag.HasErrors() {
			failed++
		}
	}

	fmt.Fprintf(cmd.OutOrStdout(), "checked %d files, %d failed\n", len(results), failed)
	if failed > 0 {
		return fmt.Errorf("%d of %d files failed", failed, len(results))
	}
	return nil
}
