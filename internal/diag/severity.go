package diag

// Severity defines the importance of a diagnostic.
type Severity uint8

const (
	// SevHelp is for actionable hints attached to other findings.
	SevHelp Severity = iota
	// SevNote is for informational diagnostics.
	SevNote
	// SevWarning is for warning diagnostics.
	SevWarning
	// SevError is for defects in the user's source.
	SevError
	// SevBug marks a violated pipeline invariant: a defect in the compiler
	// itself, not in the input.
	SevBug
)

func (s Severity) String() string {
	switch s {
	case SevHelp:
		return "help"
	case SevNote:
		return "note"
	case SevWarning:
		return "warning"
	case SevError:
		return "error"
	case SevBug:
		return "bug"
	}
	return "unknown"
}

// Prefix returns the single-letter code prefix used in rendered IDs.
func (s Severity) Prefix() string {
	switch s {
	case SevHelp:
		return "H"
	case SevNote:
		return "N"
	case SevWarning:
		return "W"
	case SevError:
		return "E"
	case SevBug:
		return "B"
	}
	return "?"
}
