// Package catalog holds the compiled-in host languages and the global label
// table that embedded-language grammars are generated from.
package catalog

import (
	"embed"
	"io/fs"

	"gitlab.com/tozd/go/errors"
)

//go:embed templates/*.toml
var templates embed.FS

// Template roles, in the order a language declares them.
const (
	RolePrelude = "prelude"
	RoleContent = "content"
	RoleDry1    = "dry-1"
	RoleDry2    = "dry-2"
)

// Language is a host language that embedded-label grammars are generated for.
type Language struct {
	ID    string
	Name  string
	Scope string

	// Prelude is copied verbatim after the grammar header.
	Prelude string
	// Content is replayed once per supported label.
	Content string
	// Dry1 and Dry2 are expanded in place of @_DRY_1 and @_DRY_2 markers
	// found in Content.
	Dry1 string
	Dry2 string
}

// Label is an embeddable target language.
type Label struct {
	ID    string
	Scope string
	// List is an alternation of fenced-code names matched by the templates.
	List string
	// Patterns is an extra block some labels contribute, usually empty.
	Patterns string
}

var languages = []Language{
	mustLanguage("javascript", "JavaScript", "source.js"),
	mustLanguage("rhai", "Rhai", "source.rhai"),
	mustLanguage("rust", "Rust", "source.rust"),
	mustLanguage("toml", "TOML", "source.toml"),
	mustLanguage("yaml", "YAML", "source.yaml"),
}

// Languages returns the host languages in their fixed order.
func Languages() []Language {
	return append([]Language(nil), languages...)
}

// LanguageByID looks up a host language.
func LanguageByID(id string) (Language, bool) {
	for _, lang := range languages {
		if lang.ID == id {
			return lang, true
		}
	}
	return Language{}, false
}

// Scopes returns the scope name of every host language, in order.
func Scopes() []string {
	scopes := make([]string, 0, len(languages))
	for _, lang := range languages {
		scopes = append(scopes, lang.Scope)
	}
	return scopes
}

func mustLanguage(id, name, scope string) Language {
	lang, err := loadLanguage(templates, id, name, scope)
	if err != nil {
		panic(err)
	}
	return lang
}

func loadLanguage(fsys fs.FS, id, name, scope string) (Language, error) {
	lang := Language{ID: id, Name: name, Scope: scope}

	for role, dst := range map[string]*string{
		RolePrelude: &lang.Prelude,
		RoleContent: &lang.Content,
		RoleDry1:    &lang.Dry1,
		RoleDry2:    &lang.Dry2,
	} {
		text, err := readTemplate(fsys, id, role)
		if err != nil {
			return Language{}, err
		}
		*dst = text
	}

	return lang, nil
}

// readTemplate returns the template for a role, or "" if the language does
// not define one.
func readTemplate(fsys fs.FS, id, role string) (string, error) {
	data, err := fs.ReadFile(fsys, "templates/"+id+"."+role+".toml")
	if errors.Is(err, fs.ErrNotExist) {
		return "", nil
	}
	if err != nil {
		return "", errors.Errorf("reading %s template for %s: %w", role, id, err)
	}
	return string(data), nil
}
