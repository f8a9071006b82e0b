// Package marker splits template fragments into literal text and the
// placeholder markers that get substituted per label.
package marker

import (
	"regexp"
	"sort"
	"strings"

	"github.com/alecthomas/participle/v2/lexer"
	"gitlab.com/tozd/go/errors"
)

// Sentinel prefixes every marker keyword in template text.
const Sentinel = "@_"

var (
	// ErrMalformedTemplate is returned when the sentinel is followed by an
	// unknown keyword.
	ErrMalformedTemplate = errors.Base("malformed template")
	// ErrNestedDry is returned when a dry fragment references a dry fragment.
	ErrNestedDry = errors.Base("illegal nested dry fragment")
)

// Marker is a placeholder recognized in template text.
type Marker int

const (
	ID Marker = iota + 1
	Scope
	List
	Patterns
	Dry1
	Dry2 // no bundled template uses it yet
)

// Field is the subset of markers that resolve to a label value. Dry
// fragments hold Fields rather than Markers, so they cannot reference
// another dry fragment.
type Field int

const (
	FieldID       = Field(ID)
	FieldScope    = Field(Scope)
	FieldList     = Field(List)
	FieldPatterns = Field(Patterns)
)

var keywords = []struct {
	Keyword string
	Marker  Marker
}{
	{"ID", ID},
	{"SCOPE", Scope},
	{"LIST", List},
	{"PATTERNS", Patterns},
	{"DRY_1", Dry1},
	{"DRY_2", Dry2},
}

func (m Marker) String() string {
	for _, kw := range keywords {
		if kw.Marker == m {
			return kw.Keyword
		}
	}
	return "UNKNOWN"
}

// Field reports the label field a marker resolves to; dry markers have none.
func (m Marker) Field() (Field, bool) {
	switch m {
	case ID, Scope, List, Patterns:
		return Field(m), true
	}
	return 0, false
}

// DryIndex returns 1 or 2 for dry markers and 0 otherwise.
func (m Marker) DryIndex() int {
	switch m {
	case Dry1:
		return 1
	case Dry2:
		return 2
	}
	return 0
}

func (f Field) String() string {
	return Marker(f).String()
}

// Placeholder returns the template spelling of a marker, e.g. "@_SCOPE".
func Placeholder(m Marker) string {
	return Sentinel + m.String()
}

// Lookup resolves a keyword (without the sentinel) to its marker.
func Lookup(keyword string) (Marker, bool) {
	for _, kw := range keywords {
		if kw.Keyword == keyword {
			return kw.Marker, true
		}
	}
	return 0, false
}

var (
	markerLexer = lexer.MustSimple(rules())

	tokMarker   = markerLexer.Symbols()["Marker"]
	tokSentinel = markerLexer.Symbols()["Sentinel"]
)

// rules builds the lexer from the keyword table. Keywords are tried longest
// first so that a keyword sharing a prefix with a shorter one still wins.
func rules() []lexer.SimpleRule {
	alts := make([]string, 0, len(keywords))
	for _, kw := range keywords {
		alts = append(alts, regexp.QuoteMeta(kw.Keyword))
	}
	sort.SliceStable(alts, func(i, j int) bool { return len(alts[i]) > len(alts[j]) })

	sentinel := regexp.QuoteMeta(Sentinel)
	head := regexp.QuoteMeta(Sentinel[:1])

	return []lexer.SimpleRule{
		{Name: "Marker", Pattern: sentinel + `(?:` + strings.Join(alts, "|") + `)`},
		{Name: "Sentinel", Pattern: sentinel},
		{Name: "Text", Pattern: `[^` + head + `]+`},
		{Name: "Char", Pattern: head},
	}
}
