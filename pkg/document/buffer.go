package document

import "strings"

// Buffer is an in-memory Editor backed by a slice of lines
type Buffer struct {
	lines []string
}

// NewBuffer splits text on newlines. An empty text is a single empty line.
func NewBuffer(text string) *Buffer {
	return &Buffer{lines: strings.Split(text, "\n")}
}

func (b *Buffer) Line(n int) string {
	if n < 0 || n >= len(b.lines) {
		return ""
	}
	return b.lines[n]
}

func (b *Buffer) LastLine() int {
	return len(b.lines) - 1
}

// ReplaceRange implements Editor. Positions past the end of a line or of the
// document are clamped to the nearest valid offset.
func (b *Buffer) ReplaceRange(text string, from, to Position) {
	content := b.String()
	start := b.offset(from)
	end := b.offset(to)
	if end < start {
		start, end = end, start
	}
	b.lines = strings.Split(content[:start]+text+content[end:], "\n")
}

// String returns the whole document
func (b *Buffer) String() string {
	return strings.Join(b.lines, "\n")
}

// TextFrom returns the document starting at line n
func (b *Buffer) TextFrom(n int) string {
	if n <= 0 {
		return b.String()
	}
	if n >= len(b.lines) {
		return ""
	}
	return strings.Join(b.lines[n:], "\n")
}

func (b *Buffer) offset(p Position) int {
	if p.Line < 0 {
		return 0
	}
	if p.Line >= len(b.lines) {
		return len(b.String())
	}
	off := 0
	for i := 0; i < p.Line; i++ {
		off += len(b.lines[i]) + 1
	}
	ch := p.Ch
	if ch < 0 {
		ch = 0
	}
	if ch > len(b.lines[p.Line]) {
		ch = len(b.lines[p.Line])
	}
	return off + ch
}
