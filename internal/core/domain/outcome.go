package domain

// OutcomeKind is the routing classification of a request path.
type OutcomeKind int

const (
	// OutcomeNotFound means the path is missing, unreadable, or not a
	// regular file or directory.
	OutcomeNotFound OutcomeKind = iota
	// OutcomeFile means the path names a regular file.
	OutcomeFile
	// OutcomeIndex means the path names a directory holding an index file.
	OutcomeIndex
	// OutcomeListing means the path names a directory without an index file.
	OutcomeListing
)

// String returns the lowercase name used in logs and metric labels.
func (k OutcomeKind) String() string {
	switch k {
	case OutcomeFile:
		return "file"
	case OutcomeIndex:
		return "index"
	case OutcomeListing:
		return "listing"
	default:
		return "not_found"
	}
}

// Outcome is the result of routing a request path.
//
// Path is the slash-separated location inside the served root. For
// OutcomeIndex it names the index file itself, for OutcomeListing the
// directory. It is empty for OutcomeNotFound.
type Outcome struct {
	Kind OutcomeKind
	Path string
	// Err carries the reason for OutcomeNotFound, if any.
	Err error
}

// ServeFile returns a file outcome.
func ServeFile(p string) Outcome {
	return Outcome{Kind: OutcomeFile, Path: p}
}

// ServeIndex returns an index outcome for the given index file path.
func ServeIndex(p string) Outcome {
	return Outcome{Kind: OutcomeIndex, Path: p}
}

// ServeListing returns a listing outcome for the given directory.
func ServeListing(dir string) Outcome {
	return Outcome{Kind: OutcomeListing, Path: dir}
}

// NotFound returns a not-found outcome carrying the reason.
func NotFound(err error) Outcome {
	return Outcome{Kind: OutcomeNotFound, Err: err}
}
