// Package document holds the line addressable text model the settings codec
// edits, plus helpers for inspecting the markdown it contains.
package document

// Position addresses a byte offset within a line
type Position struct {
	Line int
	Ch   int
}

// Lines is read access to a document one line at a time
type Lines interface {
	// Line returns the text of line n without its trailing newline
	Line(n int) string
	// LastLine returns the index of the final line
	LastLine() int
}

// Editor is a document whose text can be replaced by position range
type Editor interface {
	Lines
	// ReplaceRange replaces the text between from (inclusive) and to
	// (exclusive) with text. An empty range inserts.
	ReplaceRange(text string, from, to Position)
}
