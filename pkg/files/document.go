package files

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pluqqy/numheadings/pkg/document"
	"github.com/pluqqy/numheadings/pkg/frontmatter"
)

// MarkdownExtensions are the file extensions treated as markdown documents
var MarkdownExtensions = []string{".md", ".markdown"}

// Document is a markdown file loaded into an editable buffer
type Document struct {
	Path        string
	Buffer      *document.Buffer
	FrontMatter *frontmatter.FrontMatter
	mode        os.FileMode
}

// ReadDocument loads a markdown file and parses its frontmatter
func ReadDocument(path string) (*Document, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read document %s: %w", path, err)
	}

	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to stat document %s: %w", path, err)
	}

	buf := document.NewBuffer(string(content))
	fm, err := frontmatter.Parse(buf)
	if err != nil {
		return nil, fmt.Errorf("failed to parse frontmatter of %s: %w", path, err)
	}

	return &Document{
		Path:        path,
		Buffer:      buf,
		FrontMatter: fm,
		mode:        info.Mode().Perm(),
	}, nil
}

// Reparse refreshes FrontMatter after the buffer was edited
func (d *Document) Reparse() error {
	fm, err := frontmatter.Parse(d.Buffer)
	if err != nil {
		return fmt.Errorf("failed to parse frontmatter of %s: %w", d.Path, err)
	}
	d.FrontMatter = fm
	return nil
}

// Body returns the document text after the frontmatter block
func (d *Document) Body() string {
	if d.FrontMatter == nil {
		return d.Buffer.String()
	}
	return d.Buffer.TextFrom(d.FrontMatter.End + 1)
}

// WriteDocument writes the buffer back to its file, keeping the file mode
func WriteDocument(d *Document) error {
	mode := d.mode
	if mode == 0 {
		mode = 0644
	}
	if err := writeFileAtomic(d.Path, []byte(d.Buffer.String()), mode); err != nil {
		return fmt.Errorf("failed to write document %s: %w", d.Path, err)
	}
	return nil
}

// IsMarkdownFile reports whether path has a markdown extension
func IsMarkdownFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, e := range MarkdownExtensions {
		if ext == e {
			return true
		}
	}
	return false
}

// writeFileAtomic writes data to a temp file in the target directory and
// renames it over path
func writeFileAtomic(path string, data []byte, perm os.FileMode) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return err
	}
	if err := os.Chmod(tmpName, perm); err != nil {
		os.Remove(tmpName)
		return err
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return err
	}
	return nil
}
