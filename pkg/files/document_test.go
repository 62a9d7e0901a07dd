package files

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pluqqy/numheadings/pkg/models"
	"github.com/pluqqy/numheadings/pkg/settings"
)

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestReadDocument(t *testing.T) {
	path := writeTemp(t, "note.md", "---\ntitle: Note\n---\n\n# Heading\n")

	doc, err := ReadDocument(path)
	require.NoError(t, err)

	require.NotNil(t, doc.FrontMatter)
	assert.True(t, doc.FrontMatter.Has("title"))
	assert.Equal(t, "\n# Heading\n", doc.Body())
}

func TestReadDocument_NoFrontMatter(t *testing.T) {
	path := writeTemp(t, "plain.md", "# Heading\n")

	doc, err := ReadDocument(path)
	require.NoError(t, err)

	assert.Nil(t, doc.FrontMatter)
	assert.Equal(t, "# Heading\n", doc.Body())
}

func TestReadDocument_Errors(t *testing.T) {
	_, err := ReadDocument(filepath.Join(t.TempDir(), "missing.md"))
	assert.Error(t, err)

	path := writeTemp(t, "bad.md", "---\n- a\n---\n")
	_, err = ReadDocument(path)
	assert.Error(t, err)
}

func TestWriteDocument_SaveRoundTrip(t *testing.T) {
	path := writeTemp(t, "note.md", "# Heading\n")

	doc, err := ReadDocument(path)
	require.NoError(t, err)

	s := models.DefaultNumberingSettings()
	s.Auto = true
	require.NoError(t, settings.Save(doc.FrontMatter, doc.Buffer, s))
	require.NoError(t, WriteDocument(doc))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "---\nnumber headings: auto, first-level 1, max 6, 1.1\n---\n\n# Heading\n", string(content))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm(), "file mode is preserved")

	reread, err := ReadDocument(path)
	require.NoError(t, err)
	assert.Equal(t, s, settings.Decode(reread.FrontMatter, models.DefaultNumberingSettings()))
}

func TestDocument_Reparse(t *testing.T) {
	path := writeTemp(t, "note.md", "body")
	doc, err := ReadDocument(path)
	require.NoError(t, err)
	require.Nil(t, doc.FrontMatter)

	require.NoError(t, settings.Save(doc.FrontMatter, doc.Buffer, models.DefaultNumberingSettings()))
	require.NoError(t, doc.Reparse())

	require.NotNil(t, doc.FrontMatter)
	assert.True(t, doc.FrontMatter.Has(settings.Key))
	assert.Equal(t, "\nbody", doc.Body())
}

func TestIsMarkdownFile(t *testing.T) {
	assert.True(t, IsMarkdownFile("a.md"))
	assert.True(t, IsMarkdownFile("dir/B.MARKDOWN"))
	assert.False(t, IsMarkdownFile("a.txt"))
	assert.False(t, IsMarkdownFile("md"))
}
