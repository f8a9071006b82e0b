// Package manifest assembles the extension manifest that registers every
// generated grammar and the embedded languages it highlights.
package manifest

import (
	"fmt"
	"strings"

	"github.com/walteh/tmglel/pkg/catalog"
)

const header = `name = 'tmglel'
displayName = 'TMGLEL'
description = 'TextMate Grammars for Labeled Embedded Languages'
license = 'Apache-2.0'
version = '0.0.1'
publisher = 'ejaa3'
private = true
engines = { vscode = '^1.92.0' }
repository = 'github:ejaa3/tmglel'
bugs = 'https://github.com/ejaa3/tmglel/issues'
`

// Manifest accumulates the TOML form of the manifest. Grammars are
// registered in the order they are added; embedded labels attach to the most
// recently added grammar.
type Manifest struct {
	sb       strings.Builder
	grammars int
}

// New starts a manifest with the fixed extension metadata.
func New() *Manifest {
	m := &Manifest{}
	m.sb.WriteString(header)
	return m
}

// InjectionScope is the scope name of the grammar generated for a host
// language.
func InjectionScope(lang catalog.Language) string {
	return lang.Scope + ".tmglel"
}

// EmbeddedScope is the content scope the templates assign to a label's text.
func EmbeddedScope(label string) string {
	return "meta.embedded.block." + label
}

// AddGrammar registers the grammar written to path for lang, injected into
// every scope of injectTo.
func (m *Manifest) AddGrammar(lang catalog.Language, path string, injectTo []string) {
	fmt.Fprintf(&m.sb, "\n[[contributes.grammars]]\npath = '%s'\nscopeName = '%s'\ninjectTo = [\n", path, InjectionScope(lang))
	for _, scope := range injectTo {
		fmt.Fprintf(&m.sb, "'%s',", scope)
	}
	m.sb.WriteString("]\n\n[contributes.grammars.embeddedLanguages]\n")
	m.grammars++
}

// AddEmbedded maps the embedded scope of label to its language id in the
// last added grammar.
func (m *Manifest) AddEmbedded(label string) {
	fmt.Fprintf(&m.sb, "'%s' = '%s'\n", EmbeddedScope(label), label)
}

// Grammars returns the number of registered grammars.
func (m *Manifest) Grammars() int {
	return m.grammars
}

func (m *Manifest) String() string {
	return m.sb.String()
}
