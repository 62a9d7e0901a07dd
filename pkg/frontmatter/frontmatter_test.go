package frontmatter

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pluqqy/numheadings/pkg/document"
)

func parse(t *testing.T, content string) *FrontMatter {
	t.Helper()
	fm, err := Parse(document.NewBuffer(content))
	require.NoError(t, err)
	return fm
}

func TestParse(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		wantNil  bool
		wantEnd  int
		wantKeys []string
	}{
		{
			name: "with keys",
			content: `---
title: My Note
number headings: auto, 1.1
---

# Content`,
			wantEnd:  3,
			wantKeys: []string{"title", "number headings"},
		},
		{
			name:    "no frontmatter",
			content: "# Content\nBody",
			wantNil: true,
		},
		{
			name:    "unterminated block",
			content: "---\ntitle: x\n\n# Content",
			wantNil: true,
		},
		{
			name:    "empty document",
			content: "",
			wantNil: true,
		},
		{
			name:     "empty block",
			content:  "---\n---\nbody",
			wantEnd:  1,
			wantKeys: nil,
		},
		{
			name:     "delimiter with trailing whitespace",
			content:  "--- \r\ntags: [a]\n---\r\n",
			wantEnd:  2,
			wantKeys: []string{"tags"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fm := parse(t, tt.content)
			if tt.wantNil {
				assert.Nil(t, fm)
				return
			}
			require.NotNil(t, fm)
			assert.Equal(t, 0, fm.Start)
			assert.Equal(t, tt.wantEnd, fm.End)
			assert.Equal(t, tt.wantKeys, fm.Keys())
		})
	}
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"not yaml", "---\nkey: [unclosed\n---\n"},
		{"sequence", "---\n- a\n- b\n---\n"},
		{"scalar", "---\njust text\n---\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fm, err := Parse(document.NewBuffer(tt.content))
			assert.Nil(t, fm)
			assert.True(t, errors.Is(err, ErrInvalidFrontMatter), "got %v", err)
		})
	}
}

func TestFrontMatter_Raw(t *testing.T) {
	fm := parse(t, `---
number headings: 1.1
empty:
quoted: "A.A:"
list: [a, b]
---`)

	raw, ok := fm.Raw("number headings")
	assert.True(t, ok)
	assert.Equal(t, "1.1", raw, "raw scalar text must not be reinterpreted as a float")

	raw, ok = fm.Raw("empty")
	assert.True(t, ok)
	assert.Equal(t, "", raw)

	raw, ok = fm.Raw("quoted")
	assert.True(t, ok)
	assert.Equal(t, "A.A:", raw)

	_, ok = fm.Raw("list")
	assert.False(t, ok)

	_, ok = fm.Raw("missing")
	assert.False(t, ok)
}

func TestFrontMatter_Value(t *testing.T) {
	fm := parse(t, `---
flag: true
level: 3
style: A
---`)

	v, ok := fm.Value("flag")
	assert.True(t, ok)
	assert.Equal(t, true, v)

	v, ok = fm.Value("level")
	assert.True(t, ok)
	assert.Equal(t, 3, v)

	v, ok = fm.Value("style")
	assert.True(t, ok)
	assert.Equal(t, "A", v)

	_, ok = fm.Value("missing")
	assert.False(t, ok)
}

func TestFrontMatter_NilReceiver(t *testing.T) {
	var fm *FrontMatter

	assert.False(t, fm.Has("anything"))
	assert.Nil(t, fm.Keys())
	_, ok := fm.Raw("anything")
	assert.False(t, ok)
	_, ok = fm.Value("anything")
	assert.False(t, ok)
}
