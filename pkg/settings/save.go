package settings

import (
	"errors"
	"fmt"
	"strings"

	"github.com/pluqqy/numheadings/pkg/document"
	"github.com/pluqqy/numheadings/pkg/frontmatter"
	"github.com/pluqqy/numheadings/pkg/models"
)

// ErrKeyLineNotFound is returned when the frontmatter defines Key but no line
// inside the block starts with it. The document is left untouched.
var ErrKeyLineNotFound = errors.New("number headings key is in the frontmatter but its line was not found")

// Save writes s into the document's frontmatter under Key. fm must describe
// the current contents of ed; a nil fm means the document has no frontmatter
// and a new block is created at the top. Written lines use the line ending of
// the line they replace or are inserted next to.
func Save(fm *frontmatter.FrontMatter, ed document.Editor, s models.NumberingSettings) error {
	line := Line(s)

	if fm == nil {
		eol := lineEnding(ed, 0)
		block := frontmatter.Delimiter + "\n" + line + frontmatter.Delimiter + "\n\n"
		top := document.Position{Line: 0, Ch: 0}
		ed.ReplaceRange(withLineEnding(block, eol), top, top)
		return nil
	}

	if !fm.Has(Key) {
		at := document.Position{Line: fm.Start + 1, Ch: 0}
		ed.ReplaceRange(withLineEnding(line, lineEnding(ed, fm.Start)), at, at)
		return nil
	}

	n, err := findKeyLine(fm, ed)
	if err != nil {
		return err
	}
	ed.ReplaceRange(withLineEnding(line, lineEnding(ed, n)), document.Position{Line: n, Ch: 0}, document.Position{Line: n + 1, Ch: 0})
	return nil
}

// findKeyLine only looks between the delimiters so body text is never
// mistaken for the settings line.
func findKeyLine(fm *frontmatter.FrontMatter, ed document.Lines) (int, error) {
	end := fm.End
	if last := ed.LastLine(); end > last+1 {
		end = last + 1
	}
	for i := fm.Start + 1; i < end; i++ {
		if strings.HasPrefix(ed.Line(i), Key) {
			return i, nil
		}
	}
	return -1, fmt.Errorf("%w (searched lines %d-%d)", ErrKeyLineNotFound, fm.Start+2, end)
}

// lineEnding returns "\r\n" when line n of ed ends with a carriage return
func lineEnding(ed document.Lines, n int) string {
	if strings.HasSuffix(ed.Line(n), "\r") {
		return "\r\n"
	}
	return "\n"
}

func withLineEnding(text, eol string) string {
	if eol == "\n" {
		return text
	}
	return strings.ReplaceAll(text, "\n", eol)
}
