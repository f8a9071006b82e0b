// Package generate drives grammar generation: for every host language it
// expands the templates once per supported label, converts the result to
// JSON and writes it, then writes the manifest covering all languages.
package generate

import (
	"context"
	"fmt"
	"path"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"github.com/walteh/tmglel/pkg/catalog"
	"github.com/walteh/tmglel/pkg/config"
	"github.com/walteh/tmglel/pkg/convert"
	"github.com/walteh/tmglel/pkg/diff"
	"github.com/walteh/tmglel/pkg/expand"
	"github.com/walteh/tmglel/pkg/grammar"
	"github.com/walteh/tmglel/pkg/manifest"
	"gitlab.com/tozd/go/errors"
	"go.uber.org/multierr"
)

const (
	SyntaxesDir  = "syntaxes"
	ManifestName = "package"
)

type Options struct {
	// OutDir is the root that syntaxes/ and the manifest are written under.
	OutDir string
	// SaveTOML also writes the intermediate TOML documents.
	SaveTOML bool
	// Only restricts generation to host languages whose id matches one of
	// these glob patterns. Empty means all.
	Only []string
	// Strict turns unknown ids in the support set into an error.
	Strict bool
	// EditorConfig formats JSON output per the .editorconfig files that
	// apply to it.
	EditorConfig bool
	// Check compares the output with the files on disk instead of writing,
	// and fails if any differ.
	Check bool
}

type Generator struct {
	Fs        afero.Fs
	Languages []catalog.Language
	Labels    []catalog.Label
	Options
}

// Output describes one written grammar.
type Output struct {
	Language string
	Path     string
	Labels   []string
}

type Result struct {
	Grammars []Output
	Manifest string
}

// New returns a generator over the bundled languages and labels.
func New(fs afero.Fs, opts Options) *Generator {
	return &Generator{
		Fs:        fs,
		Languages: catalog.Languages(),
		Labels:    catalog.Labels(),
		Options:   opts,
	}
}

// GrammarPath is the output path of lang's grammar relative to the out dir.
func GrammarPath(id, ext string) string {
	return path.Join(SyntaxesDir, id+".tmLanguage."+ext)
}

// Header is the TOML that starts every generated grammar, followed by the
// language's prelude.
func Header(lang catalog.Language) string {
	return fmt.Sprintf("name = 'TMGLEL for %s'\nscopeName = '%s'\ninjectionSelector = 'L:%s, L:%s'\n\n%s",
		lang.Name, manifest.InjectionScope(lang), lang.Scope, manifest.EmbeddedScope(lang.ID), lang.Prelude)
}

// Document expands lang's templates for every label it supports, in label
// table order. It returns the TOML grammar and the ids of the labels used;
// no labels means the language has nothing to generate.
func (g *Generator) Document(lang catalog.Language, support *config.SupportSet) (string, []string, error) {
	var matched []catalog.Label
	for _, label := range g.Labels {
		if support.Supports(lang.ID, label.ID) {
			matched = append(matched, label)
		}
	}
	if len(matched) == 0 {
		return "", nil, nil
	}

	reg, err := expand.NewRegistry(lang)
	if err != nil {
		return "", nil, err
	}

	var sb strings.Builder
	sb.WriteString(Header(lang))

	ids := make([]string, 0, len(matched))
	for _, label := range matched {
		if err := reg.ExpandTo(&sb, label); err != nil {
			return "", nil, errors.Errorf("expanding %s for %s: %w", label.ID, lang.ID, err)
		}
		ids = append(ids, label.ID)
	}

	return sb.String(), ids, nil
}

// Run generates a grammar for every selected host language with at least
// one supported label, then the manifest. The first error stops the run;
// files already written stay in place. In check mode nothing is written and
// every stale file is reported.
func (g *Generator) Run(ctx context.Context, support *config.SupportSet) (*Result, error) {
	logger := zerolog.Ctx(ctx)

	if err := support.Validate(g.Languages, g.Labels); err != nil {
		if g.Strict {
			return nil, errors.Errorf("invalid support set: %w", err)
		}
		for _, e := range multierr.Errors(err) {
			logger.Warn().Err(e).Msg("ignoring support set entry")
		}
	}

	m := manifest.New()
	store := grammar.NewStore()
	injectTo := make([]string, 0, len(g.Languages))
	for _, lang := range g.Languages {
		injectTo = append(injectTo, lang.Scope)
	}

	w := &writer{fs: g.Fs, check: g.Check}
	result := &Result{}

	for _, lang := range g.Languages {
		selected, err := g.selected(lang.ID)
		if err != nil {
			return nil, err
		}
		if !selected {
			logger.Debug().Str("lang", lang.ID).Msg("not selected")
			continue
		}

		doc, labels, err := g.Document(lang, support)
		if err != nil {
			return nil, err
		}
		if len(labels) == 0 {
			logger.Debug().Str("lang", lang.ID).Msg("no supported labels, skipping")
			continue
		}

		m.AddGrammar(lang, "./"+GrammarPath(lang.ID, "json"), injectTo)
		for _, id := range labels {
			m.AddEmbedded(id)
		}

		out, err := g.writeGrammar(ctx, w, store, lang, doc)
		if err != nil {
			return nil, err
		}

		logger.Info().Str("lang", lang.ID).Int("labels", len(labels)).Str("path", out).Bool("check", g.Check).Msg("grammar done")
		result.Grammars = append(result.Grammars, Output{Language: lang.ID, Path: out, Labels: labels})
	}

	out, err := g.writeManifest(w, m)
	if err != nil {
		return nil, err
	}
	result.Manifest = out

	if w.stale != nil {
		return nil, errors.Errorf("files are out of date: %w", w.stale)
	}

	logger.Info().Int("grammars", m.Grammars()).Str("path", out).Bool("check", g.Check).Msg("manifest done")

	return result, nil
}

func (g *Generator) selected(id string) (bool, error) {
	if len(g.Only) == 0 {
		return true, nil
	}
	for _, pattern := range g.Only {
		ok, err := doublestar.Match(pattern, id)
		if err != nil {
			return false, errors.Errorf("bad language pattern %q: %w", pattern, err)
		}
		if ok {
			return true, nil
		}
	}
	return false, nil
}

func (g *Generator) writeGrammar(ctx context.Context, w *writer, store *grammar.Store, lang catalog.Language, doc string) (string, error) {
	if err := w.mkdir(filepath.Join(g.OutDir, SyntaxesDir)); err != nil {
		return "", err
	}

	if g.SaveTOML {
		if err := w.write(filepath.Join(g.OutDir, GrammarPath(lang.ID, "toml")), []byte(doc)); err != nil {
			return "", err
		}
	}

	target := filepath.Join(g.OutDir, GrammarPath(lang.ID, "json"))

	format, err := g.format(target)
	if err != nil {
		return "", err
	}

	data, err := convert.TOMLToJSON(doc, format)
	if err != nil {
		return "", errors.Errorf("invalid TOML grammar for %s: %w", lang.ID, err)
	}

	if _, err := store.Load(ctx, data); err != nil {
		return "", errors.Errorf("invalid grammar for %s: %w", lang.ID, err)
	}

	if err := w.write(target, data); err != nil {
		return "", err
	}
	return target, nil
}

func (g *Generator) writeManifest(w *writer, m *manifest.Manifest) (string, error) {
	if g.SaveTOML {
		if err := w.write(filepath.Join(g.OutDir, ManifestName+".toml"), []byte(m.String())); err != nil {
			return "", err
		}
	}

	target := filepath.Join(g.OutDir, ManifestName+".json")

	format, err := g.format(target)
	if err != nil {
		return "", err
	}

	data, err := convert.TOMLToJSON(m.String(), format)
	if err != nil {
		return "", errors.Errorf("invalid TOML manifest: %w", err)
	}

	if err := w.write(target, data); err != nil {
		return "", err
	}
	return target, nil
}

func (g *Generator) format(target string) (convert.Format, error) {
	if !g.EditorConfig {
		return convert.DefaultFormat, nil
	}
	return convert.FormatFor(target)
}

// writer writes output files, or in check mode collects the ones whose
// content on disk differs.
type writer struct {
	fs    afero.Fs
	check bool
	stale error
}

func (w *writer) mkdir(dir string) error {
	if w.check {
		return nil
	}
	if err := w.fs.MkdirAll(dir, 0o755); err != nil {
		return errors.Errorf("cannot create directory `%s`: %w", dir, err)
	}
	return nil
}

func (w *writer) write(target string, data []byte) error {
	if w.check {
		current, err := afero.ReadFile(w.fs, target)
		if err != nil {
			w.stale = multierr.Append(w.stale, errors.Errorf("`%s` is missing", target))
			return nil
		}
		if d := diff.Text(string(data), string(current)); d != "" {
			w.stale = multierr.Append(w.stale, errors.Errorf("`%s` differs:\n%s", target, d))
		}
		return nil
	}

	if err := afero.WriteFile(w.fs, target, data, 0o644); err != nil {
		return errors.Errorf("cannot write `%s`: %w", target, err)
	}
	return nil
}
