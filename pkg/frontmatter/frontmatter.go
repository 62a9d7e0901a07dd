// Package frontmatter locates and parses the YAML block delimited by "---"
// lines at the top of a markdown document.
package frontmatter

import (
	"errors"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/pluqqy/numheadings/pkg/document"
)

// Delimiter opens and closes a frontmatter block
const Delimiter = "---"

// ErrInvalidFrontMatter is returned when a closed block does not hold a YAML mapping
var ErrInvalidFrontMatter = errors.New("frontmatter is not a valid YAML mapping")

// FrontMatter is the parsed metadata block of a document
type FrontMatter struct {
	// Start and End are the line indices of the opening and closing delimiters
	Start int
	End   int

	keys   []string
	values map[string]*yaml.Node
}

// Parse reads the frontmatter block from the top of doc. It returns nil and no
// error when the document has no block or the block is never closed.
func Parse(doc document.Lines) (*FrontMatter, error) {
	last := doc.LastLine()
	if last < 1 || !isDelimiter(doc.Line(0)) {
		return nil, nil
	}

	end := -1
	for i := 1; i <= last; i++ {
		if isDelimiter(doc.Line(i)) {
			end = i
			break
		}
	}
	if end < 0 {
		return nil, nil
	}

	body := make([]string, 0, end-1)
	for i := 1; i < end; i++ {
		body = append(body, doc.Line(i))
	}

	fm := &FrontMatter{
		Start:  0,
		End:    end,
		values: make(map[string]*yaml.Node),
	}

	var root yaml.Node
	if err := yaml.Unmarshal([]byte(strings.Join(body, "\n")), &root); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFrontMatter, err)
	}
	if len(root.Content) == 0 {
		// Empty block
		return fm, nil
	}

	mapping := root.Content[0]
	if mapping.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("%w: found %s", ErrInvalidFrontMatter, kindName(mapping.Kind))
	}

	for i := 0; i+1 < len(mapping.Content); i += 2 {
		key := mapping.Content[i].Value
		if _, seen := fm.values[key]; !seen {
			fm.keys = append(fm.keys, key)
		}
		fm.values[key] = mapping.Content[i+1]
	}

	return fm, nil
}

// Has reports whether the block defines key
func (f *FrontMatter) Has(key string) bool {
	if f == nil {
		return false
	}
	_, ok := f.values[key]
	return ok
}

// Keys returns the defined keys in document order
func (f *FrontMatter) Keys() []string {
	if f == nil {
		return nil
	}
	return append([]string(nil), f.keys...)
}

// Raw returns the unparsed scalar text stored under key. A key with an empty
// or null value is present with an empty string. Non scalar values report
// absent.
func (f *FrontMatter) Raw(key string) (string, bool) {
	if f == nil {
		return "", false
	}
	node, ok := f.values[key]
	if !ok {
		return "", false
	}
	if node.Kind != yaml.ScalarNode {
		return "", false
	}
	if node.Tag == "!!null" {
		return "", true
	}
	return node.Value, true
}

// Value returns the value stored under key decoded into its natural Go type
func (f *FrontMatter) Value(key string) (any, bool) {
	if f == nil {
		return nil, false
	}
	node, ok := f.values[key]
	if !ok {
		return nil, false
	}
	var v any
	if err := node.Decode(&v); err != nil {
		return nil, false
	}
	return v, true
}

func isDelimiter(line string) bool {
	return strings.TrimRight(line, " \t\r") == Delimiter
}

func kindName(kind yaml.Kind) string {
	switch kind {
	case yaml.SequenceNode:
		return "sequence"
	case yaml.ScalarNode:
		return "scalar"
	case yaml.AliasNode:
		return "alias"
	default:
		return "unknown node"
	}
}
