// Package expand replays a host language's tokenized templates once per label.
package expand

import (
	"strings"

	"github.com/walteh/tmglel/pkg/catalog"
	"github.com/walteh/tmglel/pkg/marker"
	"gitlab.com/tozd/go/errors"
)

// Registry holds the tokenized templates of one host language. It is built
// once per language and only read afterwards.
type Registry struct {
	Language string
	Content  *marker.Fragment
	Dry      [2]*marker.DryFragment
}

// NewRegistry tokenizes the content and dry templates of lang. Errors
// name the language and the template role that failed.
func NewRegistry(lang catalog.Language) (*Registry, error) {
	content, err := marker.Tokenize(lang.Content)
	if err != nil {
		return nil, errors.Errorf("%s template for %s: %w", catalog.RoleContent, lang.Name, err)
	}

	reg := &Registry{Language: lang.Name, Content: content}

	for i, dry := range []struct{ role, text string }{
		{catalog.RoleDry1, lang.Dry1},
		{catalog.RoleDry2, lang.Dry2},
	} {
		frag, err := marker.TokenizeDry(dry.text)
		if err != nil {
			return nil, errors.Errorf("%s template for %s: %w", dry.role, lang.Name, err)
		}
		reg.Dry[i] = frag
	}

	return reg, nil
}

// Expand returns the content template substituted for label.
func (r *Registry) Expand(label catalog.Label) (string, error) {
	var sb strings.Builder
	if err := r.ExpandTo(&sb, label); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// ExpandTo appends the content template substituted for label to sb.
func (r *Registry) ExpandTo(sb *strings.Builder, label catalog.Label) error {
	for _, seg := range r.Content.Segments {
		sb.WriteString(seg.Literal)

		if field, ok := seg.Marker.Field(); ok {
			sb.WriteString(resolve(field, label))
			continue
		}

		idx := seg.Marker.DryIndex()
		if idx == 0 {
			return errors.Errorf("%w: marker %v in content template for %s", marker.ErrMalformedTemplate, seg.Marker, r.Language)
		}
		expandDry(sb, r.Dry[idx-1], label)
	}
	sb.WriteString(r.Content.Trailing)
	return nil
}

func expandDry(sb *strings.Builder, frag *marker.DryFragment, label catalog.Label) {
	if frag == nil {
		return
	}
	for _, seg := range frag.Segments {
		sb.WriteString(seg.Literal)
		sb.WriteString(resolve(seg.Field, label))
	}
	sb.WriteString(frag.Trailing)
}

func resolve(field marker.Field, label catalog.Label) string {
	switch field {
	case marker.FieldID:
		return label.ID
	case marker.FieldScope:
		return label.Scope
	case marker.FieldList:
		return label.List
	case marker.FieldPatterns:
		return label.Patterns
	}
	return ""
}
