// Package convert turns the generated TOML documents into pretty-printed JSON.
package convert

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/editorconfig/editorconfig-core-go/v2"
	"github.com/pelletier/go-toml/v2"
	"gitlab.com/tozd/go/errors"
)

// Format controls how JSON documents are printed.
type Format struct {
	Indent       string
	FinalNewline bool
}

// DefaultFormat is two-space indentation without a final newline.
var DefaultFormat = Format{Indent: "  "}

// TOMLToJSON parses a TOML document and prints it as JSON. Object keys are
// sorted, so the output only depends on the document's content.
func TOMLToJSON(doc string, format Format) ([]byte, error) {
	var value map[string]any
	if err := toml.Unmarshal([]byte(doc), &value); err != nil {
		return nil, errors.Errorf("parsing TOML: %w", err)
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", format.Indent)
	if err := enc.Encode(value); err != nil {
		return nil, errors.Errorf("encoding JSON: %w", err)
	}

	out := bytes.TrimSuffix(buf.Bytes(), []byte("\n"))
	if format.FinalNewline {
		out = append(out, '\n')
	}
	return out, nil
}

// FormatFor resolves the editorconfig definition that applies to path and
// folds it over DefaultFormat.
func FormatFor(path string) (Format, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return Format{}, errors.Errorf("resolving `%s`: %w", path, err)
	}

	def, err := editorconfig.GetDefinitionForFilename(abs)
	if err != nil {
		return Format{}, errors.Errorf("reading editorconfig for `%s`: %w", path, err)
	}

	return FromDefinition(def), nil
}

// FromDefinition applies the indentation and final newline settings of an
// editorconfig definition to DefaultFormat.
func FromDefinition(def *editorconfig.Definition) Format {
	format := DefaultFormat
	if def == nil {
		return format
	}

	switch strings.ToLower(def.IndentStyle) {
	case "tab":
		format.Indent = "\t"
	case "space":
		if n, err := strconv.Atoi(def.IndentSize); err == nil && n > 0 {
			format.Indent = strings.Repeat(" ", n)
		}
	}

	if def.InsertFinalNewline != nil {
		format.FinalNewline = *def.InsertFinalNewline
	}

	return format
}
