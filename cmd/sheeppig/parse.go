package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"sheeppig/internal/diagfmt"
	"sheeppig/internal/driver"
)

var parseCmd = &cobra.Command{
	Use:   "parse [flags] <file.sp|directory>",
	Short: "Parse a sheeppig source file or directory and output the syntax tree",
	Long:  `Parse analyzes a sheeppig source file or all *.sp files in a directory and prints their syntax trees`,
	Args:  cobra.ExactArgs(1),
	RunE:  runParse,
}

func init() {
	parseCmd.Flags().String("output", "tree", "output format (tree|json)")
	parseCmd.Flags().Int("jobs", 0, "max parallel workers for directory processing (0=auto)")
}

func runParse(cmd *cobra.Command, args []string) error {
	filePath := args[0]

	output, err := cmd.Flags().GetString("output")
	if err != nil {
		return fmt.Errorf("failed to get output flag: %w", err)
	}
	maxDiagnostics, err := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	if err != nil {
		return fmt.Errorf("failed to get max-diagnostics flag: %w", err)
	}
	quiet, err := cmd.Root().PersistentFlags().GetBool("quiet")
	if err != nil {
		return fmt.Errorf("failed to get quiet flag: %w", err)
	}

	st, err := os.Stat(filePath)
	if err != nil {
		return fmt.Errorf("failed to stat path: %w", err)
	}

	prettyOpts := diagfmt.PrettyOpts{
		Color:   useColorOutput(cmd, os.Stderr),
		Context: 2,
	}

	if !st.IsDir() {
		result, err := driver.Parse(cmd.Context(), filePath, maxDiagnostics)
		if err != nil {
			return fmt.Errorf("parsing failed: %w", err)
		}

		if result.Bag.HasErrors() || result.Bag.HasWarnings() {
			diagfmt.Pretty(os.Stderr, result.Bag, result.FileSet, prettyOpts)
		}

		switch output {
		case "tree":
			return diagfmt.FormatASTPretty(os.Stdout, result.Builder, result.FileID, result.FileSet)
		case "json":
			return diagfmt.FormatASTJSON(os.Stdout, result.Builder, result.FileID)
		default:
			return fmt.Errorf("unknown output format: %s", output)
		}
	}

	jobs, err := cmd.Flags().GetInt("jobs")
	if err != nil {
		return fmt.Errorf("failed to get jobs flag: %w", err)
	}

	fs, results, err := driver.ParseDir(cmd.Context(), filePath, maxDiagnostics, jobs)
	if err != nil {
		return fmt.Errorf("parsing failed: %w", err)
	}

	for _, r := range results {
		if r.Bag.HasErrors() || r.Bag.HasWarnings() {
			diagfmt.Pretty(os.Stderr, r.Bag, fs, prettyOpts)
		}
	}

	switch output {
	case "tree":
		for idx, r := range results {
			if !quiet {
				if _, err := fmt.Fprintf(os.Stdout, "== %s ==\n", r.Path); err != nil {
					return err
				}
			}
			if r.Builder != nil {
				if err := diagfmt.FormatASTPretty(os.Stdout, r.Builder, r.ASTFile, fs); err != nil {
					return err
				}
			}
			if !quiet && idx < len(results)-1 {
				if _, err := fmt.Fprintln(os.Stdout); err != nil {
					return err
				}
			}
		}
		return nil
	case "json":
		docs := make(map[string]*diagfmt.ASTNodeOutput, len(results))
		for _, r := range results {
			if r.Builder == nil {
				docs[r.Path] = nil
				continue
			}
			node, err := diagfmt.BuildASTJSON(r.Builder, r.ASTFile)
			if err != nil {
				return err
			}
			docs[r.Path] = &node
		}
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		return encoder.Encode(docs)
	default:
		return fmt.Errorf("unknown output format: %s", output)
	}
}
