package source

type (
	// FileID uniquely identifies a source file within a FileSet.
	// IDs are 1-based; the zero value is NoFileID and never names a
	// real file, so a zero Span cannot alias the first file added.
	FileID uint32
	// FileFlags encodes load-time metadata about a source file.
	FileFlags uint8
)

// NoFileID is the invalid FileID. Diagnostics with no source location
// (load failures, run-level info) carry it in their spans.
const NoFileID FileID = 0

// IsValid reports whether the ID names a file.
func (id FileID) IsValid() bool {
	return id != NoFileID
}

const (
	// FileVirtual marks a file added from memory (tests, stdin) rather than disk.
	FileVirtual FileFlags = 1 << iota
	// FileHadBOM marks a file whose UTF-8 BOM was stripped during load.
	FileHadBOM
	// FileNormalizedCRLF marks a file whose CRLF sequences were rewritten to LF.
	FileNormalizedCRLF
)

// File holds the content and derived metadata for one source file.
// Content is the normalized buffer every Span in the file points into.
type File struct {
	ID      FileID
	Path    string
	Content []byte
	LineIdx []uint32
	Hash    [32]byte
	Flags   FileFlags
}

// LineCol is a human-readable position, both components 1-based.
type LineCol struct {
	Line uint32
	Col  uint32
}
