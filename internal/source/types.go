package source

type (
	// FileID uniquely identifies a source file within a FileSet.
	FileID uint32
	// FileFlags encodes metadata about a source file.
	FileFlags uint8
)

const (
	// FileVirtual indicates the file was added from memory (test, stdin, etc.).
	FileVirtual FileFlags = 1 << iota
	FileHadBOM
	FileNormalizedCRLF
)

// File captures metadata and content for a single source file.
// Content and LineIdx are immutable once the file is added.
type File struct {
	ID      FileID
	Path    string
	Content []byte
	LineIdx []uint32
	Hash    [32]byte
	Flags   FileFlags
}

// Has reports whether all bits of flag are set.
func (f FileFlags) Has(flag FileFlags) bool {
	return f&flag == flag
}

// IsVirtual reports whether the file was added from memory rather than
// read off disk.
func (f *File) IsVirtual() bool {
	return f.Flags.Has(FileVirtual)
}

// LineCol represents a human-readable position in a source file.
type LineCol struct {
	Line uint32 // 1-based
	Col  uint32 // 1-based
}
