package manifest_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/walteh/tmglel/pkg/catalog"
	"github.com/walteh/tmglel/pkg/convert"
	"github.com/walteh/tmglel/pkg/manifest"
)

func TestManifest(t *testing.T) {
	js, ok := catalog.LanguageByID("javascript")
	require.True(t, ok)

	m := manifest.New()
	assert.Equal(t, 0, m.Grammars())

	m.AddGrammar(js, "./syntaxes/javascript.tmLanguage.json", []string{"source.js", "source.rust"})
	m.AddEmbedded("css")
	m.AddEmbedded("sql")

	assert.Equal(t, 1, m.Grammars())
	assert.Contains(t, m.String(), `
[[contributes.grammars]]
path = './syntaxes/javascript.tmLanguage.json'
scopeName = 'source.js.tmglel'
injectTo = [
'source.js','source.rust',]

[contributes.grammars.embeddedLanguages]
'meta.embedded.block.css' = 'css'
'meta.embedded.block.sql' = 'sql'
`)

	out, err := convert.TOMLToJSON(m.String(), convert.DefaultFormat)
	require.NoError(t, err, "manifest should be valid TOML")
	assert.Contains(t, string(out), `"meta.embedded.block.sql": "sql"`)
	assert.Contains(t, string(out), `"displayName": "TMGLEL"`)
}

func TestManifestHeaderOnly(t *testing.T) {
	out, err := convert.TOMLToJSON(manifest.New().String(), convert.DefaultFormat)
	require.NoError(t, err)
	assert.NotContains(t, string(out), "contributes")
	assert.Contains(t, string(out), `"vscode": "^1.92.0"`)
}

func TestScopes(t *testing.T) {
	rust, ok := catalog.LanguageByID("rust")
	require.True(t, ok)
	assert.Equal(t, "source.rust.tmglel", manifest.InjectionScope(rust))
	assert.Equal(t, "meta.embedded.block.xml", manifest.EmbeddedScope("xml"))
}
