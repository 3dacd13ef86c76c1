package model

import "fmt"

// Severity is the category an oracle assigns to a Problem.
type Severity int

// Available Severity values.
const (
	SeverityError Severity = iota
	SeverityWarning
	SeveritySuggestion
	SeverityMessage
)

func (s Severity) String() string {
	switch s {
	case SeverityError:
		return "error"
	case SeverityWarning:
		return "warning"
	case SeveritySuggestion:
		return "suggestion"
	case SeverityMessage:
		return "message"
	default:
		return fmt.Sprintf("severity(%d)", int(s))
	}
}

// ParseSeverity maps the lower-case severity names back to a Severity.
// Unknown names fall back to SeverityError.
func ParseSeverity(name string) Severity {
	switch name {
	case "warning":
		return SeverityWarning
	case "suggestion":
		return SeveritySuggestion
	case "message":
		return SeverityMessage
	default:
		return SeverityError
	}
}

// Location pins a Problem to a span of a file.
type Location struct {
	File   Path
	Start  int
	Length int
}

// Problem is a diagnostic reported by an oracle.
type Problem struct {
	Code     int
	Message  string
	Severity Severity
	Location *Location
}

// File returns the file the problem refers to, or "" for project-wide problems.
func (p Problem) File() Path {
	if p.Location == nil {
		return ""
	}

	return p.Location.File
}

// SameLocation reports whether both problems have the same code and span.
func (p Problem) SameLocation(other Problem) bool {
	if p.Code != other.Code {
		return false
	}

	if p.Location == nil || other.Location == nil {
		return p.Location == nil && other.Location == nil
	}

	return p.Location.File == other.Location.File &&
		p.Location.Start == other.Location.Start &&
		p.Location.Length == other.Location.Length
}
