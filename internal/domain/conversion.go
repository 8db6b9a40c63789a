package domain

// Conversion is the outcome of rendering one project descriptor.
type Conversion struct {
	Input  string // path of the source descriptor
	Output string // path written, empty when nothing was saved
	Bytes  []byte // rendered document
}

// CheckResult reports whether a previously written document is canonical.
type CheckResult struct {
	Input    string
	Output   string
	UpToDate bool

	// FirstDiffLine is the 1-based line where the stored document first differs
	// from the canonical rendering; 0 when UpToDate.
	FirstDiffLine int
}

// ProjectSpec describes where a pomyaml project lives.
type ProjectSpec struct {
	Root string
}
