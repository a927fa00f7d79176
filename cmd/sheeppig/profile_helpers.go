package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"sheeppig/internal/prof"
)

// setupProfiling inspects persistent profiling flags and enables the
// corresponding profilers. It returns a cleanup function that is safe to call
// multiple times.
func setupProfiling(cmd *cobra.Command) (func(), error) {
	root := cmd.Root()

	cpuProfile, err := root.PersistentFlags().GetString("cpu-profile")
	if err != nil {
		return nil, fmt.Errorf("failed to get cpu-profile flag: %w", err)
	}
	memProfile, err := root.PersistentFlags().GetString("mem-profile")
	if err != nil {
		return nil, fmt.Errorf("failed to get mem-profile flag: %w", err)
	}
	tracePath, err := root.PersistentFlags().GetString("runtime-trace")
	if err != nil {
		return nil, fmt.Errorf("failed to get runtime-trace flag: %w", err)
	}

	var session prof.Session
	if cpuProfile != "" {
		if err := session.StartCPU(cpuProfile); err != nil {
			return nil, fmt.Errorf("failed to start cpu profile: %w", err)
		}
	}
	if tracePath != "" {
		if err := session.StartTrace(tracePath); err != nil {
			session.Stop()
			return nil, fmt.Errorf("failed to start trace: %w", err)
		}
	}

	cleanup := func() {
		session.Stop()
		if memProfile != "" {
			if err := prof.WriteHeap(memProfile); err != nil {
				fmt.Fprintf(os.Stderr, "failed to write heap profile: %v\n", err)
			}
			memProfile = ""
		}
	}

	return cleanup, nil
}
