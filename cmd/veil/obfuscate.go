package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"veil/internal/config"
	"veil/internal/driver"
	"veil/internal/observ"
	"veil/internal/pipeline"
)

var obfuscateCmd = &cobra.Command{
	Use:   "obfuscate [flags] path",
	Short: "Obfuscate a JavaScript file or directory",
	Long: `Obfuscate rewrites JavaScript sources through the staged transformation
pipeline. A directory argument processes every .js file under it in parallel.`,
	Args: cobra.ExactArgs(1),
	RunE: runObfuscate,
}

func init() {
	obfuscateCmd.Flags().StringP("out", "o", "", "output file (or directory when the input is a directory)")
	obfuscateCmd.Flags().String("seed", "", "fix the value generator seed for reproducible output")
	obfuscateCmd.Flags().Bool("compact", true, "emit compact output")
	obfuscateCmd.Flags().Bool("dead-code", false, "enable dead code injection")
	obfuscateCmd.Flags().Bool("flatten", false, "enable control flow flattening")
	obfuscateCmd.Flags().String("strings", config.EncodingHex, "string encoding (none|hex|unicode)")
	obfuscateCmd.Flags().Bool("hex-numbers", true, "rewrite integer literals in hex form")
	obfuscateCmd.Flags().Bool("rename", true, "rename declared identifiers")
	obfuscateCmd.Flags().StringSlice("preserve", nil, "identifier names the renamer must keep")
	obfuscateCmd.Flags().Bool("map", false, "emit a source map")
	obfuscateCmd.Flags().String("map-mode", config.MapSeparate, "source map attachment (separate|inline)")
	obfuscateCmd.Flags().String("map-url", "", "sourceMappingURL recorded in separate mode")
	obfuscateCmd.Flags().Int("jobs", 0, "parallel workers for directory input (0 = all CPUs)")
	obfuscateCmd.Flags().Bool("no-cache", false, "bypass the result cache")
	obfuscateCmd.Flags().String("ui", "auto", "interactive progress display (auto|on|off)")
}

func runObfuscate(cmd *cobra.Command, args []string) error {
	input := args[0]

	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	if err := applyObfuscateFlags(cmd, &cfg); err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	quiet, _ := cmd.Root().PersistentFlags().GetBool("quiet")
	showTimings, _ := cmd.Root().PersistentFlags().GetBool("timings")

	uiFlag, _ := cmd.Flags().GetString("ui")
	mode, err := readUIMode(uiFlag)
	if err != nil {
		return err
	}
	useTUI := shouldUseTUI(mode) && !quiet

	logger := log.New(io.Discard)
	if !quiet && !useTUI {
		logger = log.NewWithOptions(os.Stderr, log.Options{ReportTimestamp: true})
	}

	opts := driver.Options{Logger: logger}
	opts.Jobs, _ = cmd.Flags().GetInt("jobs")
	if noCache, _ := cmd.Flags().GetBool("no-cache"); !noCache {
		cache, err := driver.OpenDiskCache("veil")
		if err != nil {
			logger.Warn("result cache unavailable", "err", err)
		} else {
			opts.Cache = cache
		}
	}

	st, err := os.Stat(input)
	if err != nil {
		return err
	}

	var results []driver.FileResult
	if st.IsDir() {
		results, err = obfuscateDir(cmd.Context(), input, cfg, opts, useTUI)
	} else {
		results, err = obfuscateFile(cmd.Context(), input, cfg, opts, useTUI)
	}
	if err != nil {
		return err
	}

	outFlag, _ := cmd.Flags().GetString("out")
	for _, res := range results {
		outPath, err := outputPathFor(res.Path, input, outFlag, st.IsDir())
		if err != nil {
			return err
		}
		if err := writeResult(outPath, res.Result); err != nil {
			return err
		}
		if !quiet {
			fmt.Fprintf(cmd.OutOrStdout(), "%s -> %s\n", res.Path, outPath)
		}
	}

	if showTimings {
		printTimings(cmd.ErrOrStderr(), results)
	}
	return nil
}

func obfuscateFile(ctx context.Context, input string, cfg config.Options, opts driver.Options, useTUI bool) ([]driver.FileResult, error) {
	run := func(sink pipeline.ProgressSink) ([]driver.FileResult, error) {
		opts.Progress = sink
		res, err := driver.ObfuscateFile(ctx, input, cfg, opts)
		if err != nil {
			return nil, err
		}
		return []driver.FileResult{res}, nil
	}
	if useTUI {
		return runWithUI("obfuscating", []string{input}, run)
	}
	return run(nil)
}

func obfuscateDir(ctx context.Context, input string, cfg config.Options, opts driver.Options, useTUI bool) ([]driver.FileResult, error) {
	run := func(sink pipeline.ProgressSink) ([]driver.FileResult, error) {
		opts.Progress = sink
		return driver.ObfuscateDir(ctx, input, cfg, opts)
	}
	if useTUI {
		files, err := driver.ListJSFiles(input)
		if err != nil {
			return nil, err
		}
		return runWithUI("obfuscating", files, run)
	}
	return run(nil)
}

// resolveConfig loads veil.toml from --config, or from the working directory
// when present, falling back to defaults.
func resolveConfig(cmd *cobra.Command) (config.Options, error) {
	path, _ := cmd.Root().PersistentFlags().GetString("config")
	if path != "" {
		return config.LoadFile(path)
	}
	return config.LoadFileIfPresent(config.FileName)
}

// applyObfuscateFlags overlays explicitly set flags onto the file-derived
// configuration.
func applyObfuscateFlags(cmd *cobra.Command, cfg *config.Options) error {
	flags := cmd.Flags()
	if flags.Changed("seed") {
		cfg.Seed, _ = flags.GetString("seed")
	}
	if flags.Changed("compact") {
		cfg.Compact, _ = flags.GetBool("compact")
	}
	if flags.Changed("dead-code") {
		cfg.DeadCodeInjection, _ = flags.GetBool("dead-code")
	}
	if flags.Changed("flatten") {
		cfg.ControlFlowFlattening, _ = flags.GetBool("flatten")
	}
	if flags.Changed("strings") {
		cfg.StringEncoding, _ = flags.GetString("strings")
	}
	if flags.Changed("hex-numbers") {
		cfg.NumbersToHex, _ = flags.GetBool("hex-numbers")
	}
	if flags.Changed("rename") {
		cfg.RenameIdentifiers, _ = flags.GetBool("rename")
	}
	if flags.Changed("preserve") {
		cfg.Preserve, _ = flags.GetStringSlice("preserve")
	}
	if flags.Changed("map") {
		cfg.SourceMap, _ = flags.GetBool("map")
	}
	if flags.Changed("map-mode") {
		cfg.SourceMapMode, _ = flags.GetString("map-mode")
	}
	if flags.Changed("map-url") {
		cfg.SourceMapURL, _ = flags.GetString("map-url")
	}
	return nil
}

// outputPathFor places the result of one input file. Single-file runs honor
// --out directly; directory runs mirror the input layout under --out, or
// write next to the input with an .ob.js suffix when --out is absent.
func outputPathFor(path, input, outFlag string, dirMode bool) (string, error) {
	if !dirMode {
		if outFlag != "" {
			return outFlag, nil
		}
		return suffixedName(path), nil
	}
	if outFlag == "" {
		return suffixedName(path), nil
	}
	rel, err := filepath.Rel(input, path)
	if err != nil {
		return "", err
	}
	out := filepath.Join(outFlag, rel)
	if err := os.MkdirAll(filepath.Dir(out), 0o755); err != nil {
		return "", err
	}
	return out, nil
}

func suffixedName(path string) string {
	ext := filepath.Ext(path)
	return strings.TrimSuffix(path, ext) + ".ob" + ext
}

func writeResult(outPath string, res pipeline.Result) error {
	if err := os.WriteFile(outPath, []byte(res.Code), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", outPath, err)
	}
	if res.SourceMap != "" {
		mapPath := outPath + ".map"
		if err := os.WriteFile(mapPath, []byte(res.SourceMap), 0o644); err != nil {
			return fmt.Errorf("write %s: %w", mapPath, err)
		}
	}
	return nil
}

func printTimings(w io.Writer, results []driver.FileResult) {
	for _, res := range results {
		var timings observ.RunTimings
		for _, stage := range pipeline.Stages() {
			if res.Result.Timings.Has(stage) {
				timings.Record(stage.String(), res.Result.Timings.Duration(stage), "")
			}
		}
		note := ""
		if res.Cached {
			note = "cached"
		}
		timings.Record("generate+reconcile", res.Result.Timings.Total()-res.Result.Timings.Sum(pipeline.Stages()...), note)
		fmt.Fprintf(w, "%s\n%s", res.Path, timings.Table())
	}
}
