// Package prof wires Go's runtime profilers behind a per-invocation
// session, so a command can enable any mix of CPU profiling and
// execution tracing and tear both down with one call.
package prof

import (
	"os"
	"runtime"
	"runtime/pprof"
	"runtime/trace"
)

// Session owns the profiler outputs enabled for one command run.
// The zero value is ready to use.
type Session struct {
	cpuOut   *os.File
	traceOut *os.File
	stopped  bool
}

// StartCPU enables CPU profiling and writes samples to path.
func (s *Session) StartCPU(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := pprof.StartCPUProfile(f); err != nil {
		_ = f.Close()
		return err
	}
	s.cpuOut = f
	return nil
}

// StartTrace enables the runtime execution tracer, writing to path.
func (s *Session) StartTrace(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := trace.Start(f); err != nil {
		_ = f.Close()
		return err
	}
	s.traceOut = f
	return nil
}

// Stop ends whatever the session started and closes its files. The trace
// stops before the CPU profile so the profile covers the tracer's own
// shutdown. Safe to call multiple times.
func (s *Session) Stop() {
	if s.stopped {
		return
	}
	s.stopped = true
	if s.traceOut != nil {
		trace.Stop()
		_ = s.traceOut.Close()
		s.traceOut = nil
	}
	if s.cpuOut != nil {
		pprof.StopCPUProfile()
		_ = s.cpuOut.Close()
		s.cpuOut = nil
	}
}

// WriteHeap forces a garbage collection and dumps a heap profile to path.
func WriteHeap(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	runtime.GC()
	if err := pprof.WriteHeapProfile(f); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
