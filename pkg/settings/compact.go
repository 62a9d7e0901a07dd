package settings

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/pluqqy/numheadings/pkg/frontmatter"
	"github.com/pluqqy/numheadings/pkg/models"
)

// overrides collects the fields set by individual tokens. Nil fields keep
// the base value when the overrides are applied.
type overrides struct {
	auto            *bool
	firstLevel      *int
	maxLevel        *int
	contents        *string
	skipTopLevel    *bool
	styleLevel1     *string
	styleLevelOther *string
	separator       *string
}

func (o overrides) apply(base models.NumberingSettings) models.NumberingSettings {
	s := base
	if o.auto != nil {
		s.Auto = *o.auto
	}
	if o.firstLevel != nil {
		s.FirstLevel = *o.firstLevel
	}
	if o.maxLevel != nil {
		s.MaxLevel = *o.maxLevel
	}
	if o.contents != nil {
		s.Contents = *o.contents
	}
	if o.skipTopLevel != nil {
		s.SkipTopLevel = *o.skipTopLevel
	}
	if o.styleLevel1 != nil {
		s.StyleLevel1 = *o.styleLevel1
	}
	if o.styleLevelOther != nil {
		s.StyleLevelOther = *o.styleLevelOther
	}
	if o.separator != nil {
		s.Separator = *o.separator
	}
	return s
}

// tokenRule handles one kind of comma separated part. match returns the part
// with the rule's prefix removed.
type tokenRule struct {
	match func(part string) (string, bool)
	apply func(rest string, o *overrides)
}

func exact(token string) func(string) (string, bool) {
	return func(part string) (string, bool) {
		return "", part == token
	}
}

func prefix(p string) func(string) (string, bool) {
	return func(part string) (string, bool) {
		if !strings.HasPrefix(part, p) {
			return "", false
		}
		return part[len(p):], true
	}
}

// compactRules are tried in order; the first match wins and anything left
// over is a formatting descriptor.
var compactRules = []tokenRule{
	{match: exact("auto"), apply: func(_ string, o *overrides) {
		o.auto = ptr(true)
	}},
	{match: prefix("first-level "), apply: func(rest string, o *overrides) {
		if n, ok := parseLevel(rest); ok {
			o.firstLevel = ptr(n)
		}
	}},
	{match: prefix("max "), apply: func(rest string, o *overrides) {
		if n, ok := parseLevel(rest); ok {
			o.maxLevel = ptr(n)
		}
	}},
	{match: prefix("contents "), apply: func(rest string, o *overrides) {
		rest = strings.TrimSpace(rest)
		if rest != "" && models.IsValidContents(rest) {
			o.contents = ptr(rest)
		}
	}},
}

// ParseCompact decodes a compact settings string. Unknown or invalid parts
// are ignored and the affected fields keep their default values.
func ParseCompact(value string) models.NumberingSettings {
	var o overrides
	for _, part := range strings.Split(value, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		applyPart(part, &o)
	}
	return o.apply(models.DefaultNumberingSettings())
}

// decodeCompact signals absence only when Key is not defined. A value that
// is not a scalar still counts as present and decodes to the defaults.
func decodeCompact(fm *frontmatter.FrontMatter) (models.NumberingSettings, bool) {
	if !fm.Has(Key) {
		return models.NumberingSettings{}, false
	}
	value, _ := fm.Raw(Key)
	return ParseCompact(value), true
}

func applyPart(part string, o *overrides) {
	for _, rule := range compactRules {
		if rest, ok := rule.match(part); ok {
			rule.apply(rest, o)
			return
		}
	}
	applyDescriptor(part, o)
}

// applyDescriptor reads "[_.]STYLE1.STYLE2SEP"
func applyDescriptor(descriptor string, o *overrides) {
	last, size := utf8.DecodeLastRuneInString(descriptor)
	if sep := string(last); models.IsValidSeparator(sep) {
		o.separator = ptr(sep)
		descriptor = descriptor[:len(descriptor)-size]
	}

	segments := strings.Split(descriptor, ".")
	first := 0
	if len(segments) >= 2 && segments[0] == "_" {
		o.skipTopLevel = ptr(true)
		first = 1
	} else {
		o.skipTopLevel = ptr(false)
	}

	if len(segments)-first >= 2 {
		if style := segments[first]; models.IsValidLevelStyle(style) {
			o.styleLevel1 = ptr(style)
		}
		if style := segments[first+1]; models.IsValidLevelStyle(style) {
			o.styleLevelOther = ptr(style)
		}
	}
}

func parseLevel(s string) (int, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || !models.IsValidLevel(n) {
		return 0, false
	}
	return n, true
}

func ptr[T any](v T) *T {
	return &v
}
