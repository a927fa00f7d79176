package driver

import (
	"encoding/hex"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/vmihailenco/msgpack/v5"

	"sheeppig/internal/diag"
	"sheeppig/internal/project"
	"sheeppig/internal/source"
)

// diskCacheSchemaVersion invalidates stale payloads when the format
// changes. Bump it whenever DiskPayload gains or loses a field.
const diskCacheSchemaVersion uint16 = 1

// DiskCache stores per-file check results keyed by content digest, so
// repeated runs over an unchanged tree skip re-parsing clean files.
// Safe for concurrent use.
type DiskCache struct {
	mu  sync.RWMutex
	dir string
}

// CachedNote is the serializable form of a diagnostic note. Spans are
// stored as raw offsets and rebound to the freshly loaded file on replay.
type CachedNote struct {
	Start uint32
	End   uint32
	Msg   string
}

// CachedDiagnostic is the serializable form of one diagnostic. Fixes are
// not cached; a replayed diagnostic reports the finding only.
type CachedDiagnostic struct {
	Code     uint16
	Severity uint8
	Start    uint32
	End      uint32
	Message  string
	Notes    []CachedNote
}

// DiskPayload is the cached check result for one source file.
type DiskPayload struct {
	Schema      uint16
	Path        string
	ContentHash project.Digest
	HasErrors   bool
	Diags       []CachedDiagnostic
}

// OpenDiskCache initializes and returns a disk cache at the standard
// location: $XDG_CACHE_HOME/<app>, falling back to ~/.cache/<app>.
func OpenDiskCache(app string) (*DiskCache, error) {
	base := os.Getenv("XDG_CACHE_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		base = filepath.Join(home, ".cache")
	}
	dir := filepath.Join(base, app)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &DiskCache{dir: dir}, nil
}

func (c *DiskCache) pathFor(key project.Digest) string {
	hexKey := hex.EncodeToString(key[:])
	// Subdirectory keeps the cache root listable and easy to clear.
	return filepath.Join(c.dir, "checks", hexKey+".mp")
}

// Put serializes and writes a payload, replacing atomically via rename.
func (c *DiskCache) Put(key project.Digest, payload *DiskPayload) error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	p := c.pathFor(key)
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return err
	}
	f, err := os.CreateTemp(filepath.Dir(p), "tmp-*")
	if err != nil {
		return err
	}

	enc := msgpack.NewEncoder(f)
	if err := enc.Encode(payload); err != nil {
		f.Close()
		os.Remove(f.Name())
		return err
	}
	if err := f.Close(); err != nil {
		os.Remove(f.Name())
		return err
	}
	if err := os.Rename(f.Name(), p); err != nil {
		os.Remove(f.Name())
		return err
	}
	return nil
}

// Get reads a payload by key. A missing entry is not an error; it
// returns (false, nil).
func (c *DiskCache) Get(key project.Digest, out *DiskPayload) (bool, error) {
	if c == nil {
		return false, nil
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	f, err := os.Open(c.pathFor(key))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return false, nil
		}
		return false, err
	}
	defer f.Close()

	dec := msgpack.NewDecoder(f)
	if err := dec.Decode(out); err != nil {
		return false, err
	}
	return true, nil
}

// DropAll invalidates the whole cache, useful after format changes.
func (c *DiskCache) DropAll() error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	old := c.dir + ".old-" + time.Now().Format("20060102150405")
	if err := os.Rename(c.dir, old); err != nil {
		return err
	}
	return os.RemoveAll(old)
}

// payloadFromBag snapshots a bag for caching. Timing diagnostics are
// run-specific and excluded; callers append them after the Put.
func payloadFromBag(bag *diag.Bag, file *source.File) *DiskPayload {
	items := bag.Items()
	payload := &DiskPayload{
		Schema:      diskCacheSchemaVersion,
		Path:        file.Path,
		ContentHash: project.Digest(file.Hash),
		HasErrors:   bag.HasErrors(),
		Diags:       make([]CachedDiagnostic, 0, len(items)),
	}
	for _, d := range items {
		if d.Code == diag.ObsTimings {
			continue
		}
		cd := CachedDiagnostic{
			Code:     uint16(d.Code),
			Severity: uint8(d.Severity),
			Start:    d.Primary.Start,
			End:      d.Primary.End,
			Message:  d.Message,
		}
		for _, n := range d.Notes {
			cd.Notes = append(cd.Notes, CachedNote{
				Start: n.Span.Start,
				End:   n.Span.End,
				Msg:   n.Msg,
			})
		}
		payload.Diags = append(payload.Diags, cd)
	}
	return payload
}

// replayCachedDiagnostics rebuilds diagnostics from a payload, binding
// their spans to the file's current ID.
func replayCachedDiagnostics(bag *diag.Bag, payload *DiskPayload, fileID source.FileID) {
	for _, cd := range payload.Diags {
		sp := source.Span{File: fileID, Start: cd.Start, End: cd.End}
		d := diag.New(diag.Severity(cd.Severity), diag.Code(cd.Code), sp, cd.Message)
		for _, n := range cd.Notes {
			d = d.WithNote(source.Span{File: fileID, Start: n.Start, End: n.End}, n.Msg)
		}
		if !bag.Add(d) {
			return
		}
	}
}
