package model

import (
	"fmt"
	"strconv"
	"strings"
)

// TagKeys names the struct tag keys that map to annotation kinds.
type TagKeys struct {
	// Arg is the argument-definition key that generated help merges into.
	Arg string
	// Help and LongHelp are the explicit help keys.
	Help     string
	LongHelp string
	// Style is the key written next to Help when the value is styled,
	// with StyleName as its value.
	Style     string
	StyleName string
}

// DefaultTagKeys are the keys used when no configuration overrides them.
var DefaultTagKeys = TagKeys{
	Arg:       "arg",
	Help:      "help",
	LongHelp:  "long_help",
	Style:     "helpfmt",
	StyleName: "cstr",
}

// Kind classifies a struct tag key.
func (k TagKeys) Kind(key string) AnnotationKind {
	switch key {
	case k.Help:
		return KindHelp
	case k.LongHelp:
		return KindLongHelp
	case k.Arg:
		return KindArg
	}
	return KindOther
}

// TagPair is one key:"value" entry of a struct tag.
type TagPair struct {
	Key   string
	Value string
}

// Tag is a parsed struct tag with its key order preserved.
type Tag []TagPair

// ParseTag parses the conventional `key:"value" key2:"value2"` struct tag
// format. The input is the tag content without the enclosing literal quotes.
func ParseTag(s string) (Tag, error) {
	var tag Tag
	for {
		s = strings.TrimLeft(s, " \t")
		if s == "" {
			return tag, nil
		}
		i := 0
		for i < len(s) && s[i] > ' ' && s[i] != ':' && s[i] != '"' && s[i] != 0x7f {
			i++
		}
		if i == 0 || i+1 >= len(s) || s[i] != ':' || s[i+1] != '"' {
			return nil, fmt.Errorf("bad syntax for struct tag pair near %q", s)
		}
		key := s[:i]
		s = s[i+1:]

		i = 1
		for i < len(s) && s[i] != '"' {
			if s[i] == '\\' {
				i++
			}
			i++
		}
		if i >= len(s) {
			return nil, fmt.Errorf("bad syntax for struct tag value of %q", key)
		}
		value, err := strconv.Unquote(s[:i+1])
		if err != nil {
			return nil, fmt.Errorf("bad syntax for struct tag value of %q: %w", key, err)
		}
		tag = append(tag, TagPair{Key: key, Value: value})
		s = s[i+1:]
	}
}

// Lookup returns the value stored under key.
func (t Tag) Lookup(key string) (string, bool) {
	for _, p := range t {
		if p.Key == key {
			return p.Value, true
		}
	}
	return "", false
}

func (t Tag) String() string {
	parts := make([]string, 0, len(t))
	for _, p := range t {
		parts = append(parts, p.Key+":"+strconv.Quote(p.Value))
	}
	return strings.Join(parts, " ")
}

// Literal renders the tag as Go source. A raw string is used unless the tag
// itself contains a back-quote.
func (t Tag) Literal() string {
	s := t.String()
	if strings.Contains(s, "`") {
		return strconv.Quote(s)
	}
	return "`" + s + "`"
}

// TagFromAnnotations rebuilds a struct tag from a field's non-doc annotations.
// A help value held by the Arg annotation is written directly after it.
func TagFromAnnotations(anns []*Annotation, keys TagKeys) Tag {
	var tag Tag
	for _, a := range anns {
		if a.Kind == KindDoc {
			continue
		}
		if !a.Implicit {
			tag = append(tag, TagPair{Key: a.Key, Value: a.Value})
		}
		if a.Kind == KindArg && a.Help != nil {
			tag = append(tag, TagPair{Key: keys.Help, Value: a.Help.Text})
			if a.Help.Styled {
				tag = append(tag, TagPair{Key: keys.Style, Value: keys.StyleName})
			}
		}
	}
	return tag
}
