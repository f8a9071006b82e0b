package marker_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/walteh/tmglel/pkg/marker"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		segments []marker.Segment
		trailing string
	}{
		{
			name:     "no_markers",
			input:    "plain = 'text'\n",
			trailing: "plain = 'text'\n",
		},
		{
			name:  "empty",
			input: "",
		},
		{
			name:  "id_and_scope",
			input: "X:@_ID,@_SCOPE;",
			segments: []marker.Segment{
				{Literal: "X:", Marker: marker.ID},
				{Literal: ",", Marker: marker.Scope},
			},
			trailing: ";",
		},
		{
			name:  "adjacent_markers",
			input: "@_LIST@_PATTERNS@_DRY_1@_DRY_2",
			segments: []marker.Segment{
				{Literal: "", Marker: marker.List},
				{Literal: "", Marker: marker.Patterns},
				{Literal: "", Marker: marker.Dry1},
				{Literal: "", Marker: marker.Dry2},
			},
		},
		{
			name:  "lone_at_signs_are_literal",
			input: "a@b @ @_ID @",
			segments: []marker.Segment{
				{Literal: "a@b @ ", Marker: marker.ID},
			},
			trailing: " @",
		},
		{
			name:  "keyword_followed_by_letters",
			input: "@_IDENT",
			segments: []marker.Segment{
				{Literal: "", Marker: marker.ID},
			},
			trailing: "ENT",
		},
		{
			name:  "regexp_context",
			input: `begin = '(//)\s*((?i:@_LIST))\W.*'` + "\n",
			segments: []marker.Segment{
				{Literal: `begin = '(//)\s*((?i:`, Marker: marker.List},
			},
			trailing: `))\W.*'` + "\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			frag, err := marker.Tokenize(tt.input)
			require.NoError(t, err)

			if diff := cmp.Diff(tt.segments, frag.Segments); diff != "" {
				t.Fatalf("segments mismatch (-want +got):\n%s", diff)
			}
			assert.Equal(t, tt.trailing, frag.Trailing, "trailing literal should match")
			assert.Equal(t, tt.input, frag.Source(), "tokenizing should round-trip")
		})
	}
}

func TestTokenizeRoundTrip(t *testing.T) {
	inputs := []string{
		"",
		"@_ID",
		"@@_ID@",
		"[[patterns]]\n@_DRY_1\n[[patterns.patterns]]\ninclude = '@_SCOPE'\n",
		"contentName = 'meta.embedded.block.@_ID'\npatterns = [{ include = '@_SCOPE' }]@_PATTERNS",
		"é@_LISTé",
	}

	for _, input := range inputs {
		frag, err := marker.Tokenize(input)
		require.NoError(t, err, "tokenizing %q", input)
		assert.Equal(t, input, frag.Source(), "round trip of %q", input)
	}
}

func TestTokenizeRejectsUnknownMarkers(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "unknown_keyword", input: "x = '@_NAME'"},
		{name: "lowercase_keyword", input: "@_id"},
		{name: "sentinel_at_end", input: "abc@_"},
		{name: "after_valid_marker", input: "@_ID @_DRY_3"},
		{name: "double_sentinel", input: "@_@_ID"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := marker.Tokenize(tt.input)
			require.Error(t, err)
			assert.ErrorIs(t, err, marker.ErrMalformedTemplate)

			_, err = marker.TokenizeDry(tt.input)
			require.Error(t, err)
			assert.ErrorIs(t, err, marker.ErrMalformedTemplate)
		})
	}
}

func TestTokenizeDry(t *testing.T) {
	t.Run("fields", func(t *testing.T) {
		frag, err := marker.TokenizeDry(" # regexp\ncontentName = 'meta.embedded.block.@_ID'\npatterns = [{ include = '@_SCOPE' }]\n")
		require.NoError(t, err)

		want := []marker.DrySegment{
			{Literal: " # regexp\ncontentName = 'meta.embedded.block.", Field: marker.FieldID},
			{Literal: "'\npatterns = [{ include = '", Field: marker.FieldScope},
		}
		if diff := cmp.Diff(want, frag.Segments); diff != "" {
			t.Fatalf("segments mismatch (-want +got):\n%s", diff)
		}
		assert.Equal(t, "' }]\n", frag.Trailing)
	})

	for _, input := range []string{"@_DRY_1", "[@_ID]@_DRY_2"} {
		t.Run("nested_"+input, func(t *testing.T) {
			_, err := marker.TokenizeDry(input)
			require.Error(t, err)
			assert.ErrorIs(t, err, marker.ErrNestedDry)
			assert.NotErrorIs(t, err, marker.ErrMalformedTemplate)
		})
	}
}

func TestMarkerTable(t *testing.T) {
	for _, m := range []marker.Marker{marker.ID, marker.Scope, marker.List, marker.Patterns, marker.Dry1, marker.Dry2} {
		got, ok := marker.Lookup(m.String())
		require.True(t, ok, "keyword for %v should resolve", m)
		assert.Equal(t, m, got)

		_, isField := m.Field()
		assert.Equal(t, m.DryIndex() == 0, isField, "%v is either a field or a dry reference", m)
	}

	assert.Equal(t, "@_PATTERNS", marker.Placeholder(marker.Patterns))
	assert.Equal(t, 2, marker.Dry2.DryIndex())

	_, ok := marker.Lookup("DRY_3")
	assert.False(t, ok)
}
