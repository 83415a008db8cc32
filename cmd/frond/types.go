package main

import "github.com/jward/frond"

// CLIResult is the top-level JSON envelope for all commands.
type CLIResult struct {
	Command string `json:"command"`
	Results any    `json:"results"`
	Error   string `json:"error,omitempty"`
}

// CLISuggestion is a JSON-friendly suggestion representation.
type CLISuggestion struct {
	Kind                  string      `json:"kind"`
	Relevance             int         `json:"relevance"`
	Completion            string      `json:"completion"`
	SelectionOffset       int         `json:"selection_offset"`
	SelectionLength       int         `json:"selection_length"`
	Deprecated            bool        `json:"deprecated,omitempty"`
	DefaultArgumentText   string      `json:"default_argument_text,omitempty"`
	DefaultArgumentRanges []int       `json:"default_argument_ranges,omitempty"`
	DeclaringType         string      `json:"declaring_type,omitempty"`
	ReturnType            string      `json:"return_type,omitempty"`
	Element               *CLIElement `json:"element,omitempty"`
}

// CLIElement is a JSON-friendly bound-element representation.
type CLIElement struct {
	Kind       string `json:"kind"`
	Name       string `json:"name"`
	Abstract   bool   `json:"abstract,omitempty"`
	Deprecated bool   `json:"deprecated,omitempty"`
	Private    bool   `json:"private,omitempty"`
	File       string `json:"file,omitempty"`
	Offset     int    `json:"offset"`
	Length     int    `json:"length"`
	Parameters string `json:"parameters,omitempty"`
	ReturnType string `json:"return_type,omitempty"`
}

// CLILoadSummary reports what a load run imported.
type CLILoadSummary struct {
	Database    string `json:"database"`
	Files       int    `json:"files"`
	Symbols     int    `json:"symbols"`
	Parameters  int    `json:"parameters"`
	Annotations int    `json:"annotations"`
}

func toCLISuggestions(suggestions []*frond.Suggestion) []CLISuggestion {
	out := make([]CLISuggestion, 0, len(suggestions))
	for _, s := range suggestions {
		cs := CLISuggestion{
			Kind:                  string(s.Kind),
			Relevance:             s.Relevance,
			Completion:            s.Completion,
			SelectionOffset:       s.SelectionOffset,
			SelectionLength:       s.SelectionLength,
			Deprecated:            s.Deprecated,
			DefaultArgumentText:   s.DefaultArgumentText,
			DefaultArgumentRanges: s.DefaultArgumentRanges,
			DeclaringType:         s.DeclaringType,
			ReturnType:            s.ReturnType,
		}
		if e := s.Element; e != nil {
			ce := &CLIElement{
				Kind:       string(e.Kind),
				Name:       e.Name,
				Abstract:   e.Abstract,
				Deprecated: e.Deprecated,
				Private:    e.Private,
				Parameters: e.Parameters,
				ReturnType: e.ReturnType,
			}
			if e.Location != nil {
				ce.File = e.Location.File
				ce.Offset = e.Location.Offset
				ce.Length = e.Location.Length
			}
			cs.Element = ce
		}
		out = append(out, cs)
	}
	return out
}
