// Package config loads the label support set: which labels each host
// language generates grammars for.
package config

import (
	"bytes"
	"context"
	"io"
	"path/filepath"
	"sort"
	"strings"

	"github.com/emirpasic/gods/sets/treeset"
	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/pelletier/go-toml/v2"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"github.com/walteh/tmglel/pkg/catalog"
	"github.com/zclconf/go-cty/cty"
	"gitlab.com/tozd/go/errors"
	"go.uber.org/multierr"
	"gopkg.in/yaml.v3"
)

// DefaultPath is read when no config path is given.
const DefaultPath = "TMGLEL.toml"

// SupportSet maps a host language id to the set of label ids it supports.
// Sets are unordered; callers iterate the global label table instead.
type SupportSet struct {
	langs map[string]*treeset.Set
}

// NewSupportSet builds a support set from raw lists. Duplicate ids collapse.
func NewSupportSet(raw map[string][]string) *SupportSet {
	s := &SupportSet{langs: make(map[string]*treeset.Set, len(raw))}
	for lang, ids := range raw {
		set := treeset.NewWithStringComparator()
		for _, id := range ids {
			set.Add(id)
		}
		s.langs[lang] = set
	}
	return s
}

// Has reports whether lang has an entry, even an empty one.
func (s *SupportSet) Has(lang string) bool {
	_, ok := s.langs[lang]
	return ok
}

// Supports reports whether lang declares support for label.
func (s *SupportSet) Supports(lang, label string) bool {
	set, ok := s.langs[lang]
	return ok && set.Contains(label)
}

// Len returns the number of labels lang supports.
func (s *SupportSet) Len(lang string) int {
	if set, ok := s.langs[lang]; ok {
		return set.Size()
	}
	return 0
}

// Languages returns the configured host language ids, sorted.
func (s *SupportSet) Languages() []string {
	ids := make([]string, 0, len(s.langs))
	for id := range s.langs {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Labels returns the label ids configured for lang, sorted.
func (s *SupportSet) Labels(lang string) []string {
	set, ok := s.langs[lang]
	if !ok {
		return nil
	}
	ids := make([]string, 0, set.Size())
	for _, v := range set.Values() {
		ids = append(ids, v.(string))
	}
	return ids
}

// Validate reports every host language and label id missing from the given
// tables. All problems are returned together.
func (s *SupportSet) Validate(languages []catalog.Language, labels []catalog.Label) error {
	knownLangs := make(map[string]bool, len(languages))
	for _, lang := range languages {
		knownLangs[lang.ID] = true
	}
	knownLabels := make(map[string]bool, len(labels))
	for _, label := range labels {
		knownLabels[label.ID] = true
	}

	var err error
	for _, lang := range s.Languages() {
		if !knownLangs[lang] {
			err = multierr.Append(err, errors.Errorf("unknown host language %q", lang))
		}
		for _, label := range s.Labels(lang) {
			if !knownLabels[label] {
				err = multierr.Append(err, errors.Errorf("unknown label %q for %s", label, lang))
			}
		}
	}
	return err
}

// Load reads a support set from path. The format follows the extension:
// .toml, .yaml/.yml or .hcl.
func Load(ctx context.Context, fs afero.Fs, path string) (*SupportSet, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, errors.Errorf("cannot read `%s`: %w", path, err)
	}

	raw, err := Parse(path, data)
	if err != nil {
		return nil, err
	}

	zerolog.Ctx(ctx).Debug().Str("path", path).Int("languages", len(raw)).Msg("loaded support set")

	return NewSupportSet(raw), nil
}

// Parse decodes config data, picking the format from the name's extension.
func Parse(name string, data []byte) (map[string][]string, error) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".toml":
		return parseTOML(name, data)
	case ".yaml", ".yml":
		return parseYAML(name, data)
	case ".hcl":
		return parseHCL(name, data)
	}
	return nil, errors.Errorf("unsupported config format for `%s`", name)
}

func parseTOML(name string, data []byte) (map[string][]string, error) {
	raw := map[string][]string{}
	if err := toml.Unmarshal(data, &raw); err != nil {
		return nil, errors.Errorf("`%s` is invalid TOML: %w", name, err)
	}
	return raw, nil
}

func parseYAML(name string, data []byte) (map[string][]string, error) {
	raw := map[string][]string{}
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&raw); err != nil && !errors.Is(err, io.EOF) {
		return nil, errors.Errorf("`%s` is invalid YAML: %w", name, err)
	}
	return raw, nil
}

func parseHCL(name string, data []byte) (map[string][]string, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(data, name)
	if diags.HasErrors() {
		return nil, errors.Errorf("`%s` is invalid HCL: %s", name, diags.Error())
	}

	attrs, diags := file.Body.JustAttributes()
	if diags.HasErrors() {
		return nil, errors.Errorf("`%s` is invalid HCL: %s", name, diags.Error())
	}

	ctx := &hcl.EvalContext{
		Variables: map[string]cty.Value{},
	}

	raw := make(map[string][]string, len(attrs))
	for lang, attr := range attrs {
		var ids []string
		if diags := gohcl.DecodeExpression(attr.Expr, ctx, &ids); diags.HasErrors() {
			return nil, errors.Errorf("decoding `%s` in `%s`: %s", lang, name, diags.Error())
		}
		raw[lang] = ids
	}
	return raw, nil
}
