package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"sheeppig/internal/diag"
	"sheeppig/internal/diagfmt"
	"sheeppig/internal/driver"
)

var checkCmd = &cobra.Command{
	Use:   "check [flags] <file.sp|directory>",
	Short: "Run diagnostics on a sheeppig source file or directory",
	Long:  `Check reports lexical and syntax issues in sheeppig source files or all *.sp files within a directory`,
	Args:  cobra.ExactArgs(1),
	RunE:  runCheck,
}

func init() {
	checkCmd.Flags().String("output", "pretty", "output format (pretty|json|sarif|short)")
	checkCmd.Flags().Int("jobs", 0, "max parallel workers for directory processing (0=auto)")
	checkCmd.Flags().Bool("no-dialect-hints", false, "disable foreign-syntax hint diagnostics")
	checkCmd.Flags().Bool("with-notes", false, "include diagnostic notes in output")
	checkCmd.Flags().Bool("suggest", false, "include fix suggestions in output")
	checkCmd.Flags().Bool("preview", false, "show fix previews without modifying files")
	checkCmd.Flags().Bool("fullpath", false, "emit absolute file paths in output")
	checkCmd.Flags().Bool("disk-cache", false, "reuse cached results for unchanged files")
	checkCmd.Flags().String("ui", "auto", "progress UI for directory runs (auto|on|off)")
}

func runCheck(cmd *cobra.Command, args []string) error {
	targetPath := args[0]

	output, err := cmd.Flags().GetString("output")
	if err != nil {
		return fmt.Errorf("failed to get output flag: %w", err)
	}
	maxDiagnostics, err := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	if err != nil {
		return fmt.Errorf("failed to get max-diagnostics flag: %w", err)
	}
	showTimings, err := cmd.Root().PersistentFlags().GetBool("timings")
	if err != nil {
		return fmt.Errorf("failed to get timings flag: %w", err)
	}
	noDialectHints, err := cmd.Flags().GetBool("no-dialect-hints")
	if err != nil {
		return fmt.Errorf("failed to get no-dialect-hints flag: %w", err)
	}
	withNotes, err := cmd.Flags().GetBool("with-notes")
	if err != nil {
		return fmt.Errorf("failed to get with-notes flag: %w", err)
	}
	suggest, err := cmd.Flags().GetBool("suggest")
	if err != nil {
		return fmt.Errorf("failed to get suggest flag: %w", err)
	}
	preview, err := cmd.Flags().GetBool("preview")
	if err != nil {
		return fmt.Errorf("failed to get preview flag: %w", err)
	}
	fullPath, err := cmd.Flags().GetBool("fullpath")
	if err != nil {
		return fmt.Errorf("failed to get fullpath flag: %w", err)
	}
	enableDiskCache, err := cmd.Flags().GetBool("disk-cache")
	if err != nil {
		return fmt.Errorf("failed to get disk-cache flag: %w", err)
	}
	uiFlag, err := cmd.Flags().GetString("ui")
	if err != nil {
		return fmt.Errorf("failed to get ui flag: %w", err)
	}
	uiChoice, err := readUIMode(uiFlag)
	if err != nil {
		return err
	}

	var cache *driver.DiskCache
	if enableDiskCache {
		cache, err = driver.OpenDiskCache("sheeppig")
		if err != nil {
			return fmt.Errorf("failed to open disk cache: %w", err)
		}
	}

	cleanup, err := setupProfiling(cmd)
	if err != nil {
		return err
	}

	pathMode := diagfmt.PathModeAuto
	if fullPath {
		pathMode = diagfmt.PathModeAbsolute
	}
	showFixes := suggest || preview
	prettyOpts := diagfmt.PrettyOpts{
		Color:       useColorOutput(cmd, os.Stdout),
		Context:     2,
		PathMode:    pathMode,
		ShowNotes:   withNotes,
		ShowFixes:   showFixes,
		ShowPreview: preview,
	}
	jsonOpts := diagfmt.JSONOpts{
		IncludePositions: true,
		PathMode:         pathMode,
		IncludeNotes:     withNotes,
		IncludeFixes:     showFixes,
		IncludePreviews:  preview,
	}
	sarifMeta := diagfmt.SarifRunMeta{
		ToolName:    "sheeppig",
		ToolVersion: "0.1.0",
	}

	st, err := os.Stat(targetPath)
	if err != nil {
		cleanup()
		return fmt.Errorf("failed to stat path: %w", err)
	}

	var (
		exitCode  int
		resultErr error
	)

	if !st.IsDir() {
		exitCode, resultErr = checkFile(cmd, targetPath, driver.CheckOptions{
			MaxDiagnostics: maxDiagnostics,
			EnableTimings:  showTimings,
			NoDialectHints: noDialectHints,
			Cache:          cache,
		}, output, prettyOpts, jsonOpts, sarifMeta)
	} else {
		exitCode, resultErr = checkDir(cmd, targetPath, driver.CheckDirOptions{
			MaxDiagnostics: maxDiagnostics,
			EnableTimings:  showTimings,
			NoDialectHints: noDialectHints,
			Cache:          cache,
		}, uiChoice, output, prettyOpts, jsonOpts, sarifMeta)
	}

	cleanup()

	if resultErr != nil {
		return resultErr
	}
	if exitCode != 0 {
		// Diagnostics were already printed; suppress cobra chatter.
		cmd.SilenceUsage = true
		cmd.SilenceErrors = true
		return fmt.Errorf("")
	}
	return nil
}

func checkFile(
	cmd *cobra.Command,
	path string,
	opts driver.CheckOptions,
	output string,
	prettyOpts diagfmt.PrettyOpts,
	jsonOpts diagfmt.JSONOpts,
	sarifMeta diagfmt.SarifRunMeta,
) (int, error) {
	result, err := driver.Check(cmd.Context(), path, opts)
	if err != nil {
		return 0, fmt.Errorf("check failed: %w", err)
	}

	exit := 0
	if result.Bag.HasErrors() {
		exit = 1
	}

	switch output {
	case "pretty":
		diagfmt.Pretty(os.Stdout, result.Bag, result.FileSet, prettyOpts)
	case "short":
		if text := diag.FormatGoldenDiagnostics(result.Bag.Items(), result.FileSet, jsonOpts.IncludeNotes); text != "" {
			fmt.Fprintln(os.Stdout, text)
		}
	case "json":
		if err := diagfmt.JSON(os.Stdout, result.Bag, result.FileSet, jsonOpts); err != nil {
			return 0, fmt.Errorf("failed to format diagnostics: %w", err)
		}
	case "sarif":
		if err := diagfmt.Sarif(os.Stdout, result.Bag, result.FileSet, sarifMeta); err != nil {
			return 0, fmt.Errorf("failed to format diagnostics: %w", err)
		}
	default:
		return 0, fmt.Errorf("unknown output format: %s", output)
	}

	return exit, nil
}

func checkDir(
	cmd *cobra.Command,
	dir string,
	opts driver.CheckDirOptions,
	uiChoice uiMode,
	output string,
	prettyOpts diagfmt.PrettyOpts,
	jsonOpts diagfmt.JSONOpts,
	sarifMeta diagfmt.SarifRunMeta,
) (int, error) {
	jobs, err := cmd.Flags().GetInt("jobs")
	if err != nil {
		return 0, fmt.Errorf("failed to get jobs flag: %w", err)
	}
	opts.Jobs = jobs

	fileSet, results, err := runCheckDir(cmd, dir, opts, uiChoice, output)
	if err != nil {
		return 0, fmt.Errorf("check failed: %w", err)
	}

	exit := 0
	for _, r := range results {
		if r.Bag.HasErrors() {
			exit = 1
			break
		}
	}

	switch output {
	case "pretty":
		for _, r := range results {
			diagfmt.Pretty(os.Stdout, r.Bag, fileSet, prettyOpts)
		}
	case "short":
		for _, r := range results {
			if text := diag.FormatGoldenDiagnostics(r.Bag.Items(), fileSet, jsonOpts.IncludeNotes); text != "" {
				fmt.Fprintln(os.Stdout, text)
			}
		}
	case "json":
		docs := make(map[string]diagfmt.DiagnosticsOutput, len(results))
		for _, r := range results {
			docs[r.Path] = diagfmt.BuildDiagnosticsOutput(r.Bag, fileSet, jsonOpts)
		}
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(docs); err != nil {
			return 0, fmt.Errorf("failed to encode diagnostics output: %w", err)
		}
	case "sarif":
		for _, r := range results {
			if err := diagfmt.Sarif(os.Stdout, r.Bag, fileSet, sarifMeta); err != nil {
				return 0, fmt.Errorf("failed to format diagnostics: %w", err)
			}
		}
	default:
		return 0, fmt.Errorf("unknown output format: %s", output)
	}

	return exit, nil
}
