package settings

import (
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/pluqqy/numheadings/pkg/models"
)

// Encode renders s in the compact form read by ParseCompact
func Encode(s models.NumberingSettings) string {
	var b strings.Builder
	if s.Auto {
		b.WriteString("auto, ")
	}
	fmt.Fprintf(&b, "first-level %d, ", s.FirstLevel)
	fmt.Fprintf(&b, "max %d, ", s.MaxLevel)
	if s.Contents != "" {
		fmt.Fprintf(&b, "contents %s, ", s.Contents)
	}
	if s.SkipTopLevel {
		b.WriteString("_.")
	}
	b.WriteString(s.StyleLevel1)
	b.WriteString(".")
	b.WriteString(s.StyleLevelOther)
	b.WriteString(s.Separator)
	return b.String()
}

// Line returns the frontmatter line storing s, including its newline. The
// value is written as a plain scalar unless YAML would read it back
// differently, e.g. when the separator is a trailing colon.
func Line(s models.NumberingSettings) string {
	return Key + ": " + yamlScalar(Encode(s)) + "\n"
}

func yamlScalar(value string) string {
	var probe map[string]string
	err := yaml.Unmarshal([]byte("v: "+value), &probe)
	if err == nil && probe["v"] == value {
		return value
	}
	return strconv.Quote(value)
}
