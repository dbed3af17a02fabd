package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"fncomp/internal/diag"
	"fncomp/internal/diagfmt"
	"fncomp/internal/driver"
	"fncomp/internal/observ"
	"fncomp/internal/project"
	"fncomp/internal/source"
)

var errExpandFailed = errors.New("expansion finished with errors")

var expandCmd = &cobra.Command{
	Use:   "expand [flags] <file.rs|dir>",
	Short: "Expand #[functional_component] items",
	Long: `Expand rewrites every function annotated with #[functional_component(Name)].
For a single file the expansion is printed to stdout unless --write or --check
is given. For a directory every *.rs file is expanded in parallel.`,
	Args: cobra.ExactArgs(1),
	RunE: runExpand,
}

func init() {
	expandCmd.Flags().Bool("write", false, "write the expansion next to each input (<stem><suffix>)")
	expandCmd.Flags().Bool("stdout", false, "print expanded sources to stdout")
	expandCmd.Flags().Bool("check", false, "report diagnostics only, exit 1 on errors")
	expandCmd.Flags().String("format", "pretty", "diagnostics format (pretty|short|json)")
	expandCmd.Flags().String("path-mode", "auto", "path display mode for diagnostics (auto|absolute|relative|basename)")
	expandCmd.Flags().Int("jobs", 0, "max parallel files (0=manifest or GOMAXPROCS)")
	expandCmd.Flags().Bool("no-cache", false, "disable the expansion cache")
	expandCmd.Flags().String("ui", "auto", "progress view while expanding a directory (auto|on|off)")
	expandCmd.Flags().Bool("verbose", false, "report every expanded item")
	expandCmd.Flags().StringSlice("attribute", nil, "attribute path to expand (repeatable, overrides the manifest)")
	expandCmd.Flags().String("suffix", "", "output suffix for --write (overrides the manifest)")
}

type expandFlags struct {
	write   bool
	stdout  bool
	check   bool
	ui      progressMode
	timings bool
	quiet   bool
	printer diagPrinter
}

func runExpand(cmd *cobra.Command, args []string) error {
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
	ctx := cmd.Context()

	target := args[0]
	info, err := os.Stat(target)
	if err != nil {
		return fmt.Errorf("failed to stat %q: %w", target, err)
	}

	flags, opts, err := expandOptions(cmd, target, info.IsDir())
	if err != nil {
		return err
	}

	var failed bool
	if info.IsDir() {
		failed, err = expandDirectory(ctx, cmd, target, opts, flags)
	} else {
		failed, err = expandSingle(ctx, cmd, target, opts, flags)
	}
	if err != nil {
		return err
	}

	if flags.timings && flags.printer.format == diagFormatPretty && !flags.quiet {
		fmt.Fprint(cmd.ErrOrStderr(), opts.Timer.Summary())
	}
	if failed {
		dumpTrace(ctx, cmd.ErrOrStderr())
		return errExpandFailed
	}
	return nil
}

// expandOptions merges the manifest found from target with the command flags.
func expandOptions(cmd *cobra.Command, target string, isDir bool) (expandFlags, driver.Options, error) {
	var flags expandFlags
	var err error
	if flags.write, err = cmd.Flags().GetBool("write"); err != nil {
		return flags, driver.Options{}, fmt.Errorf("failed to get write flag: %w", err)
	}
	if flags.stdout, err = cmd.Flags().GetBool("stdout"); err != nil {
		return flags, driver.Options{}, fmt.Errorf("failed to get stdout flag: %w", err)
	}
	if flags.check, err = cmd.Flags().GetBool("check"); err != nil {
		return flags, driver.Options{}, fmt.Errorf("failed to get check flag: %w", err)
	}
	if flags.check && flags.write {
		return flags, driver.Options{}, fmt.Errorf("--check and --write are mutually exclusive")
	}
	formatStr, err := cmd.Flags().GetString("format")
	if err != nil {
		return flags, driver.Options{}, fmt.Errorf("failed to get format flag: %w", err)
	}
	format, err := readDiagFormat(formatStr)
	if err != nil {
		return flags, driver.Options{}, err
	}
	pathModeStr, err := cmd.Flags().GetString("path-mode")
	if err != nil {
		return flags, driver.Options{}, fmt.Errorf("failed to get path-mode flag: %w", err)
	}
	uiStr, err := cmd.Flags().GetString("ui")
	if err != nil {
		return flags, driver.Options{}, fmt.Errorf("failed to get ui flag: %w", err)
	}
	if flags.ui, err = readProgressMode(uiStr); err != nil {
		return flags, driver.Options{}, err
	}
	if flags.quiet, err = cmd.Root().PersistentFlags().GetBool("quiet"); err != nil {
		return flags, driver.Options{}, fmt.Errorf("failed to get quiet flag: %w", err)
	}
	if flags.timings, err = cmd.Root().PersistentFlags().GetBool("timings"); err != nil {
		return flags, driver.Options{}, fmt.Errorf("failed to get timings flag: %w", err)
	}
	maxDiagnostics, err := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	if err != nil {
		return flags, driver.Options{}, fmt.Errorf("failed to get max-diagnostics flag: %w", err)
	}
	flags.printer = diagPrinter{
		format:   format,
		color:    useColor(cmd, os.Stderr),
		pathMode: diagfmt.ParsePathMode(pathModeStr),
		quiet:    flags.quiet,
	}

	startDir := target
	if !isDir {
		startDir = filepath.Dir(target)
	}
	manifest, _, err := project.Load(startDir)
	if err != nil {
		return flags, driver.Options{}, err
	}

	opts := driver.OptionsFromConfig(manifest.Config)
	opts.MaxDiagnostics = maxDiagnostics
	opts.Exclude = manifest.Excluded
	if cmd.Flags().Changed("jobs") {
		jobs, _ := cmd.Flags().GetInt("jobs")
		if jobs < 0 {
			return flags, driver.Options{}, fmt.Errorf("--jobs must not be negative")
		}
		opts.Jobs = jobs
	}
	if opts.ReportInfo, err = cmd.Flags().GetBool("verbose"); err != nil {
		return flags, driver.Options{}, fmt.Errorf("failed to get verbose flag: %w", err)
	}
	if attrs, _ := cmd.Flags().GetStringSlice("attribute"); len(attrs) > 0 {
		cfg := manifest.Config
		cfg.Expand.Attributes = attrs
		if err := cfg.Validate(); err != nil {
			return flags, driver.Options{}, fmt.Errorf("--attribute: %w", err)
		}
		opts.Attributes = attrs
	}
	if flags.write {
		suffix := manifest.Config.Expand.Suffix
		if s, _ := cmd.Flags().GetString("suffix"); s != "" {
			cfg := manifest.Config
			cfg.Expand.Suffix = s
			if err := cfg.Validate(); err != nil {
				return flags, driver.Options{}, fmt.Errorf("--suffix: %w", err)
			}
			suffix = s
		}
		opts.WriteSuffix = suffix
	}

	noCache, _ := cmd.Flags().GetBool("no-cache")
	if !noCache && manifest.Config.Expand.Cache {
		cache, err := driver.OpenDiskCache("fncomp")
		if err != nil {
			if !flags.quiet {
				fmt.Fprintf(cmd.ErrOrStderr(), "warning: cache disabled: %v\n", err)
			}
		} else {
			opts.Cache = cache
		}
	}
	if flags.timings {
		opts.Timer = observ.NewTimer()
	}
	return flags, opts, nil
}

func expandSingle(ctx context.Context, cmd *cobra.Command, path string, opts driver.Options, flags expandFlags) (bool, error) {
	fs, res, err := driver.Expand(ctx, path, opts)
	if err != nil && res == nil {
		return false, fmt.Errorf("failed to expand %q: %w", path, err)
	}
	if err != nil {
		res.Bag.Add(diag.NewError(diag.IOWriteError, source.NoSpan, err.Error()))
	}

	if !flags.check && (!flags.write || flags.stdout) {
		fmt.Fprint(cmd.OutOrStdout(), res.Output)
	}
	if res.Written != "" && !flags.quiet {
		fmt.Fprintf(cmd.ErrOrStderr(), "wrote %s\n", res.Written)
	}

	bag := res.Bag
	if flags.timings && flags.printer.format != diagFormatPretty {
		bag.Add(driver.TimingDiagnostic(opts.Timer, opts.Cache, path))
	}
	bag.Sort()
	if err := flags.printer.print(cmd.ErrOrStderr(), bag, fs); err != nil {
		return false, err
	}
	return res.Failed(), nil
}

func expandDirectory(ctx context.Context, cmd *cobra.Command, dir string, opts driver.Options, flags expandFlags) (bool, error) {
	var (
		fs      *source.FileSet
		results []*driver.Result
		err     error
	)
	files, err := driver.ListFiles(dir, opts)
	if err != nil {
		return false, err
	}
	if !flags.quiet && !flags.stdout && wantProgressUI(flags.ui, len(files)) {
		fs, results, err = runExpandWithUI(ctx, "expand "+dir, files, dir, opts)
	} else {
		fs, results, err = driver.ExpandDir(ctx, dir, opts)
	}
	if err != nil {
		return false, err
	}

	out := cmd.OutOrStdout()
	if flags.stdout {
		printOutputs(out, results)
	} else if !flags.check && !flags.quiet {
		printSummary(out, results)
	}

	maxDiagnostics, _ := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	bag := diag.NewBag(maxDiagnostics)
	failed := false
	for _, res := range results {
		if res.Failed() {
			failed = true
		}
		bag.Merge(res.Bag)
	}
	if flags.timings && flags.printer.format != diagFormatPretty {
		bag.Add(driver.TimingDiagnostic(opts.Timer, opts.Cache, dir))
	}
	bag.Sort()
	if err := flags.printer.print(cmd.ErrOrStderr(), bag, fs); err != nil {
		return false, err
	}
	return failed, nil
}

// printSummary lists files with annotated items, one line each.
func printSummary(w io.Writer, results []*driver.Result) {
	var files, items, failed int
	for _, res := range results {
		if len(res.Sites) == 0 {
			continue
		}
		files++
		items += len(res.Sites)
		state := "ok"
		if res.Failed() {
			state = "error"
			failed++
		}
		line := fmt.Sprintf("%s: %d item(s) %s", res.Path, len(res.Sites), state)
		if res.Written != "" {
			line += " -> " + res.Written
		}
		fmt.Fprintln(w, line)
	}
	fmt.Fprintf(w, "expanded %d item(s) in %d file(s), %d failed\n", items, files, failed)
}

func printOutputs(w io.Writer, results []*driver.Result) {
	for _, res := range results {
		if !res.Changed {
			continue
		}
		fmt.Fprintf(w, "// ==> %s <==\n", res.Path)
		fmt.Fprint(w, res.Output)
		if n := len(res.Output); n > 0 && res.Output[n-1] != '\n' {
			fmt.Fprintln(w)
		}
	}
}
