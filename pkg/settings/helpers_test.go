package settings

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pluqqy/numheadings/pkg/document"
	"github.com/pluqqy/numheadings/pkg/frontmatter"
)

func parseFrontMatter(t *testing.T, content string) *frontmatter.FrontMatter {
	t.Helper()
	fm, err := frontmatter.Parse(document.NewBuffer(content))
	require.NoError(t, err)
	return fm
}
