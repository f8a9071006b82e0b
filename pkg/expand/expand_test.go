package expand_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/walteh/tmglel/pkg/catalog"
	"github.com/walteh/tmglel/pkg/expand"
	"github.com/walteh/tmglel/pkg/marker"
)

func TestExpand(t *testing.T) {
	tests := []struct {
		name     string
		lang     catalog.Language
		label    catalog.Label
		expected string
	}{
		{
			name:     "id_and_scope",
			lang:     catalog.Language{Name: "Test", Content: "X:@_ID,@_SCOPE;"},
			label:    catalog.Label{ID: "css", Scope: "source.css"},
			expected: "X:css,source.css;",
		},
		{
			name:     "dry_1",
			lang:     catalog.Language{Name: "Test", Content: "@_DRY_1!", Dry1: "[@_ID]"},
			label:    catalog.Label{ID: "go"},
			expected: "[go]!",
		},
		{
			name:     "dry_2",
			lang:     catalog.Language{Name: "Test", Content: "<@_DRY_2>", Dry1: "unused", Dry2: "@_LIST|@_SCOPE"},
			label:    catalog.Label{ID: "go", Scope: "source.go", List: "go|golang"},
			expected: "<go|golang|source.go>",
		},
		{
			name:     "empty_dry_fragment",
			lang:     catalog.Language{Name: "Test", Content: "a@_DRY_1b"},
			label:    catalog.Label{ID: "go"},
			expected: "ab",
		},
		{
			name:     "dry_used_twice",
			lang:     catalog.Language{Name: "Test", Content: "1@_DRY_1 2@_DRY_1 3", Dry1: "(@_ID)"},
			label:    catalog.Label{ID: "sql"},
			expected: "1(sql) 2(sql) 3",
		},
		{
			name:     "patterns_block",
			lang:     catalog.Language{Name: "Test", Content: "p:@_PATTERNS."},
			label:    catalog.Label{ID: "php", Patterns: "\n  - include: text.html.basic"},
			expected: "p:\n  - include: text.html.basic.",
		},
		{
			name:     "empty_patterns_block",
			lang:     catalog.Language{Name: "Test", Content: "p:@_PATTERNS."},
			label:    catalog.Label{ID: "css"},
			expected: "p:.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reg, err := expand.NewRegistry(tt.lang)
			require.NoError(t, err, "building registry should succeed")

			got, err := reg.Expand(tt.label)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestExpandToAppends(t *testing.T) {
	reg, err := expand.NewRegistry(catalog.Language{Name: "Test", Content: "[@_ID]"})
	require.NoError(t, err)

	var sb strings.Builder
	sb.WriteString("head:")
	for _, id := range []string{"a", "b"} {
		require.NoError(t, reg.ExpandTo(&sb, catalog.Label{ID: id}))
	}
	assert.Equal(t, "head:[a][b]", sb.String())
}

func TestNewRegistryErrors(t *testing.T) {
	tests := []struct {
		name   string
		lang   catalog.Language
		target error
		role   string
	}{
		{
			name:   "nested_dry",
			lang:   catalog.Language{Name: "Nested", Content: "@_DRY_1", Dry1: "@_DRY_2"},
			target: marker.ErrNestedDry,
			role:   catalog.RoleDry1,
		},
		{
			name:   "self_referencing_dry",
			lang:   catalog.Language{Name: "Nested", Content: "x", Dry2: "@_DRY_2"},
			target: marker.ErrNestedDry,
			role:   catalog.RoleDry2,
		},
		{
			name:   "malformed_content",
			lang:   catalog.Language{Name: "Broken", Content: "@_NOPE"},
			target: marker.ErrMalformedTemplate,
			role:   catalog.RoleContent,
		},
		{
			name:   "malformed_dry",
			lang:   catalog.Language{Name: "Broken", Content: "@_DRY_1", Dry1: "@_"},
			target: marker.ErrMalformedTemplate,
			role:   catalog.RoleDry1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := expand.NewRegistry(tt.lang)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.target)
			assert.Contains(t, err.Error(), tt.lang.Name, "error should name the host language")
			assert.Contains(t, err.Error(), tt.role, "error should name the template role")
		})
	}
}

func TestBundledLanguagesExpand(t *testing.T) {
	label, ok := catalog.LabelByID("css")
	require.True(t, ok)

	for _, lang := range catalog.Languages() {
		t.Run(lang.ID, func(t *testing.T) {
			reg, err := expand.NewRegistry(lang)
			require.NoError(t, err, "bundled templates should tokenize")

			got, err := reg.Expand(label)
			require.NoError(t, err)
			assert.NotContains(t, got, marker.Sentinel, "every marker should be substituted")
			assert.Contains(t, got, "meta.embedded.block.css")
			assert.Contains(t, got, "source.css")
		})
	}
}
