package domain

// DirEntry is one immediate child of a listed directory.
type DirEntry struct {
	// Name is the base name as stored on disk.
	Name string
	// Dir reports whether the entry is a directory. Directories carry no size.
	Dir bool
	// Size is the length in bytes for non-directory entries.
	Size int64
}
