package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"fncomp/internal/diag"
	"fncomp/internal/driver"
	"fncomp/internal/fix"
	"fncomp/internal/project"
	"fncomp/internal/source"
)

var fixCmd = &cobra.Command{
	Use:   "fix [flags] <file.rs|directory>",
	Short: "Apply suggested fixes to annotated functions",
	Long: `Fix expands the input, collects the suggestions attached to failed items
(remove ` + "`mut`" + `, remove a lifetime, take props by reference, declare the
return type) and applies them to the sources.`,
	Args: cobra.ExactArgs(1),
	RunE: runFix,
}

func init() {
	fixCmd.Flags().Bool("all", false, "apply every non-overlapping fix (default: the first one)")
	fixCmd.Flags().Bool("dry-run", false, "print the fixed sources instead of writing them")
}

func runFix(cmd *cobra.Command, args []string) error {
	targetPath := args[0]

	applyAll, err := cmd.Flags().GetBool("all")
	if err != nil {
		return err
	}
	dryRun, err := cmd.Flags().GetBool("dry-run")
	if err != nil {
		return err
	}
	maxDiagnostics, err := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	if err != nil {
		return err
	}
	stopProfiling, err := setupProfiling(cmd)
	if err != nil {
		return err
	}
	defer stopProfiling()

	cleanup, err := setupTracing(cmd)
	if err != nil {
		return err
	}
	defer cleanup()

	info, err := os.Stat(targetPath)
	if err != nil {
		return fmt.Errorf("fix: %w", err)
	}
	startDir := targetPath
	if !info.IsDir() {
		startDir = filepath.Dir(targetPath)
	}
	manifest, _, err := project.Load(startDir)
	if err != nil {
		return err
	}
	opts := driver.OptionsFromConfig(manifest.Config)
	opts.MaxDiagnostics = maxDiagnostics
	opts.Exclude = manifest.Excluded

	var (
		fs          *source.FileSet
		diagnostics []diag.Diagnostic
	)
	if info.IsDir() {
		var results []*driver.Result
		fs, results, err = driver.ExpandDir(cmd.Context(), targetPath, opts)
		if err != nil {
			return fmt.Errorf("fix: expand dir failed: %w", err)
		}
		for _, r := range results {
			r.Bag.Sort()
			diagnostics = append(diagnostics, r.Bag.Items()...)
		}
	} else {
		var res *driver.Result
		fs, res, err = driver.Expand(cmd.Context(), targetPath, opts)
		if err != nil {
			return fmt.Errorf("fix: expand failed: %w", err)
		}
		res.Bag.Sort()
		diagnostics = res.Bag.Items()
	}

	mode := fix.ApplyModeOnce
	if applyAll {
		mode = fix.ApplyModeAll
	}
	res, applyErr := fix.Apply(fs, diagnostics, fix.ApplyOptions{Mode: mode, DryRun: dryRun})
	return handleApplyResult(cmd.OutOrStdout(), res, applyErr, dryRun)
}

func handleApplyResult(out io.Writer, res *fix.ApplyResult, applyErr error, dryRun bool) error {
	if res == nil {
		return applyErr
	}

	if len(res.Applied) > 0 {
		fmt.Fprintf(out, "Applied %d fix(es):\n", len(res.Applied))
		for _, item := range res.Applied {
			location := item.PrimaryPath
			if location == "" {
				location = "(unknown location)"
			}
			fmt.Fprintf(out, "  %s [%s] %s (%d edits)\n", item.Title, item.ID, location, item.EditCount)
		}
	}

	if len(res.FileChanges) > 0 {
		if dryRun {
			for _, change := range res.FileChanges {
				fmt.Fprintf(out, "// ==> %s <==\n%s", change.Path, change.Content)
			}
		} else {
			fmt.Fprintln(out, "Updated files:")
			for _, change := range res.FileChanges {
				fmt.Fprintf(out, "  %s (%d edits)\n", change.Path, change.EditCount)
			}
		}
	}

	if len(res.Skipped) > 0 {
		fmt.Fprintln(out, "Skipped fixes:")
		for _, skip := range res.Skipped {
			fmt.Fprintf(out, "  %s [%s]: %s\n", skip.Title, skip.ID, skip.Reason)
		}
	}

	if errors.Is(applyErr, fix.ErrNoFixes) {
		fmt.Fprintln(out, "No fixes applied.")
		return nil
	}
	return applyErr
}
