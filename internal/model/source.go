// Package model defines the data structures shared by the fixpass engine.
package model

// Path represents a file system path.
type Path string

// String returns the path as a plain string.
func (p Path) String() string {
	return string(p)
}

// SourceFile is one file of a project snapshot with its current in-memory text.
type SourceFile struct {
	Path Path
	Text string
}
