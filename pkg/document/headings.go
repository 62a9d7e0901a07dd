package document

import (
	"strings"
	"sync"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/text"
)

// Heading is a single markdown heading
type Heading struct {
	Level int
	Text  string
}

var (
	markdownParserInstance goldmark.Markdown
	markdownParserOnce     sync.Once
)

func getMarkdownParser() goldmark.Markdown {
	markdownParserOnce.Do(func() {
		markdownParserInstance = goldmark.New(
			goldmark.WithExtensions(extension.GFM),
		)
	})
	return markdownParserInstance
}

// Headings returns every ATX and setext heading in source order. The input
// must not include the frontmatter block, which goldmark would otherwise
// read as a setext heading.
func Headings(src string) []Heading {
	source := []byte(src)
	root := getMarkdownParser().Parser().Parse(text.NewReader(source))

	var headings []Heading
	_ = ast.Walk(root, func(node ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		heading, ok := node.(*ast.Heading)
		if !ok {
			return ast.WalkContinue, nil
		}
		headings = append(headings, Heading{
			Level: heading.Level,
			Text:  strings.TrimSpace(inlineText(heading, source)),
		})
		return ast.WalkSkipChildren, nil
	})
	return headings
}

// HasHeading reports whether any heading's text equals title
func HasHeading(headings []Heading, title string) bool {
	for _, h := range headings {
		if h.Text == title {
			return true
		}
	}
	return false
}

// CountInRange counts headings whose level lies in [first, max]
func CountInRange(headings []Heading, first, max int) int {
	count := 0
	for _, h := range headings {
		if h.Level >= first && h.Level <= max {
			count++
		}
	}
	return count
}

func inlineText(node ast.Node, source []byte) string {
	var b strings.Builder
	for child := node.FirstChild(); child != nil; child = child.NextSibling() {
		switch n := child.(type) {
		case *ast.Text:
			b.Write(n.Segment.Value(source))
			if n.SoftLineBreak() || n.HardLineBreak() {
				b.WriteByte(' ')
			}
		case *ast.String:
			b.Write(n.Value)
		default:
			b.WriteString(inlineText(child, source))
		}
	}
	return b.String()
}
