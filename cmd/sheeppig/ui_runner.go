package main

import (
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"sheeppig/internal/driver"
	"sheeppig/internal/source"
	"sheeppig/internal/ui"
)

type checkOutcome struct {
	fileSet *source.FileSet
	results []driver.CheckDirResult
	err     error
}

// runCheckDir dispatches a directory check either through the live progress
// UI or as a plain run, depending on the chosen mode and the output format.
// Structured outputs always bypass the TUI so stdout stays machine-readable.
func runCheckDir(
	cmd *cobra.Command,
	dir string,
	opts driver.CheckDirOptions,
	uiChoice uiMode,
	output string,
) (*source.FileSet, []driver.CheckDirResult, error) {
	if output != "pretty" || !shouldUseTUI(uiChoice) {
		return driver.CheckDir(cmd.Context(), dir, opts)
	}

	files, err := driver.ListSourceFiles(dir)
	if err != nil {
		return nil, nil, err
	}
	if len(files) == 0 {
		return driver.CheckDir(cmd.Context(), dir, opts)
	}

	events := make(chan driver.FileEvent, 256)
	outcomeCh := make(chan checkOutcome, 1)

	go func() {
		runOpts := opts
		runOpts.Observer = func(ev driver.FileEvent) {
			events <- ev
		}
		fs, results, err := driver.CheckDir(cmd.Context(), dir, runOpts)
		outcomeCh <- checkOutcome{fileSet: fs, results: results, err: err}
		close(events)
	}()

	title := fmt.Sprintf("checking %s", filepath.Base(dir))
	model := ui.NewProgressModel(title, files, events)
	program := tea.NewProgram(model, tea.WithOutput(os.Stdout))
	_, uiErr := program.Run()
	outcome := <-outcomeCh
	if uiErr != nil {
		return outcome.fileSet, outcome.results, uiErr
	}
	return outcome.fileSet, outcome.results, outcome.err
}
