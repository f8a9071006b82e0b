package marker

import (
	"strings"

	"gitlab.com/tozd/go/errors"
)

// Segment is literal text followed by the marker that ends it.
type Segment struct {
	Literal string
	Marker  Marker
}

// Fragment is a tokenized content template. It may reference dry fragments.
type Fragment struct {
	Segments []Segment
	Trailing string
}

// DrySegment is literal text followed by a label field.
type DrySegment struct {
	Literal string
	Field   Field
}

// DryFragment is a tokenized dry template.
type DryFragment struct {
	Segments []DrySegment
	Trailing string
}

// Tokenize splits a content template into segments.
func Tokenize(text string) (*Fragment, error) {
	frag := &Fragment{}
	trailing, err := scan(text, func(literal string, m Marker, _ int) error {
		frag.Segments = append(frag.Segments, Segment{Literal: literal, Marker: m})
		return nil
	})
	if err != nil {
		return nil, err
	}
	frag.Trailing = trailing
	return frag, nil
}

// TokenizeDry splits a dry template into segments. A dry marker inside a dry
// template is rejected with ErrNestedDry.
func TokenizeDry(text string) (*DryFragment, error) {
	frag := &DryFragment{}
	trailing, err := scan(text, func(literal string, m Marker, offset int) error {
		field, ok := m.Field()
		if !ok {
			return errors.Errorf("%w: %s at offset %d", ErrNestedDry, Placeholder(m), offset)
		}
		frag.Segments = append(frag.Segments, DrySegment{Literal: literal, Field: field})
		return nil
	})
	if err != nil {
		return nil, err
	}
	frag.Trailing = trailing
	return frag, nil
}

// Source rebuilds the template text the fragment was tokenized from.
func (f *Fragment) Source() string {
	var sb strings.Builder
	for _, seg := range f.Segments {
		sb.WriteString(seg.Literal)
		sb.WriteString(Placeholder(seg.Marker))
	}
	sb.WriteString(f.Trailing)
	return sb.String()
}

// Source rebuilds the template text the fragment was tokenized from.
func (f *DryFragment) Source() string {
	var sb strings.Builder
	for _, seg := range f.Segments {
		sb.WriteString(seg.Literal)
		sb.WriteString(Placeholder(Marker(seg.Field)))
	}
	sb.WriteString(f.Trailing)
	return sb.String()
}

// References reports whether the fragment uses the given marker.
func (f *Fragment) References(m Marker) bool {
	for _, seg := range f.Segments {
		if seg.Marker == m {
			return true
		}
	}
	return false
}

// scan calls emit for every marker with the literal text preceding it, and
// returns the text after the last marker.
func scan(text string, emit func(literal string, m Marker, offset int) error) (string, error) {
	lex, err := markerLexer.LexString("", text)
	if err != nil {
		return "", errors.Errorf("lexing template: %w", err)
	}

	var literal strings.Builder
	for {
		tok, err := lex.Next()
		if err != nil {
			return "", errors.Errorf("lexing template: %w", err)
		}
		if tok.EOF() {
			break
		}

		switch tok.Type {
		case tokMarker:
			m, ok := Lookup(strings.TrimPrefix(tok.Value, Sentinel))
			if !ok {
				return "", errors.Errorf("%w: unknown marker %q at offset %d", ErrMalformedTemplate, tok.Value, tok.Pos.Offset)
			}
			if err := emit(literal.String(), m, tok.Pos.Offset); err != nil {
				return "", err
			}
			literal.Reset()
		case tokSentinel:
			return "", errors.Errorf("%w: unknown marker at offset %d: %q", ErrMalformedTemplate, tok.Pos.Offset, excerpt(text, tok.Pos.Offset))
		default:
			literal.WriteString(tok.Value)
		}
	}

	return literal.String(), nil
}

func excerpt(text string, offset int) string {
	end := offset + 16
	if end > len(text) {
		end = len(text)
	}
	if i := strings.IndexByte(text[offset:end], '\n'); i >= 0 {
		end = offset + i
	}
	return text[offset:end]
}
