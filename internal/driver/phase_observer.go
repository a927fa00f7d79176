package driver

import "time"

// PhaseStatus reports whether a phase started or finished.
type PhaseStatus int

const (
	// PhaseStart indicates that a pipeline phase has begun.
	PhaseStart PhaseStatus = iota
	// PhaseEnd indicates that a pipeline phase has finished.
	PhaseEnd
)

// PhaseEvent describes a timing phase boundary within one file's check.
type PhaseEvent struct {
	Name    string
	Status  PhaseStatus
	Elapsed time.Duration
}

// PhaseObserver receives phase events emitted during Check.
type PhaseObserver func(PhaseEvent)

// FileEvent reports completion of one file during a directory walk.
// Done counts finished files including this one.
type FileEvent struct {
	Path   string
	Done   int
	Total  int
	Errors int
}

// FileObserver receives one event per completed file. Directory walks run
// workers concurrently, so implementations must be safe to call from
// multiple goroutines.
type FileObserver func(FileEvent)
