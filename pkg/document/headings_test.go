package document

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHeadings(t *testing.T) {
	src := `# Title

Intro paragraph.

## Table of Contents

## Section *one*

Setext heading
--------------

### Deep ` + "`code`" + `
`

	headings := Headings(src)
	require.Len(t, headings, 5)

	assert.Equal(t, Heading{Level: 1, Text: "Title"}, headings[0])
	assert.Equal(t, Heading{Level: 2, Text: "Table of Contents"}, headings[1])
	assert.Equal(t, Heading{Level: 2, Text: "Section one"}, headings[2])
	assert.Equal(t, Heading{Level: 2, Text: "Setext heading"}, headings[3])
	assert.Equal(t, 3, headings[4].Level)

	assert.True(t, HasHeading(headings, "Table of Contents"))
	assert.False(t, HasHeading(headings, "Missing"))
	assert.Equal(t, 4, CountInRange(headings, 2, 6))
	assert.Equal(t, 1, CountInRange(headings, 1, 1))
}

func TestHeadings_Empty(t *testing.T) {
	assert.Empty(t, Headings(""))
	assert.Empty(t, Headings("just text\n"))
}
