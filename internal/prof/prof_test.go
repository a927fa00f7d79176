package prof

import (
	"os"
	"path/filepath"
	"testing"
)

func TestSessionCPUProfile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "cpu.pprof")

	var session Session
	if err := session.StartCPU(path); err != nil {
		t.Fatalf("StartCPU: %v", err)
	}
	session.Stop()
	session.Stop() // second call must be a no-op

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("profile file missing: %v", err)
	}
	if info.Size() == 0 {
		t.Errorf("profile file is empty")
	}
}

func TestSessionStopWithoutStart(t *testing.T) {
	var session Session
	session.Stop() // must not panic
}

func TestWriteHeap(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mem.pprof")
	if err := WriteHeap(path); err != nil {
		t.Fatalf("WriteHeap: %v", err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("heap profile missing: %v", err)
	}
	if info.Size() == 0 {
		t.Errorf("heap profile is empty")
	}
}
