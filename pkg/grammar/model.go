package grammar

import "encoding/json"

// Grammar is a TextMate grammar document. Only the keys the generated
// injection grammars use are modelled.
//
// InjectionSelector selects the scopes the grammar is injected into, e.g.
// "L:source.js, L:meta.embedded.block.javascript". Repository holds rules
// that other rules include with "#name".
type Grammar struct {
	Name              string             `json:"name,omitempty"`
	ScopeName         string             `json:"scopeName"`
	InjectionSelector string             `json:"injectionSelector,omitempty"`
	Patterns          []Pattern          `json:"patterns,omitempty"`
	Repository        map[string]Pattern `json:"repository,omitempty"`
}

// Pattern is a grammar rule. Begin is paired with either End or While.
type Pattern struct {
	Name        string `json:"name,omitempty"`
	ContentName string `json:"contentName,omitempty"`
	Comment     string `json:"comment,omitempty"`
	Include     string `json:"include,omitempty"`
	Match       string `json:"match,omitempty"`
	Begin       string `json:"begin,omitempty"`
	End         string `json:"end,omitempty"`
	While       string `json:"while,omitempty"`

	Captures      Captures  `json:"captures,omitempty"`
	BeginCaptures Captures  `json:"beginCaptures,omitempty"`
	EndCaptures   Captures  `json:"endCaptures,omitempty"`
	WhileCaptures Captures  `json:"whileCaptures,omitempty"`
	Patterns      []Pattern `json:"patterns,omitempty"`
}

// Captures maps a capture group number to the scope assigned to it.
type Captures map[string]Capture

type Capture struct {
	Name     string    `json:"name,omitempty"`
	Patterns []Pattern `json:"patterns,omitempty"`
}

// Unmarshal decodes a grammar document.
func Unmarshal(data []byte) (*Grammar, error) {
	var g Grammar
	if err := json.Unmarshal(data, &g); err != nil {
		return nil, err
	}
	return &g, nil
}
