package frond

// SuggestionKind classifies how a completion is expected to be used.
type SuggestionKind string

const (
	// SuggestInvocation completes a callable along with its argument list.
	SuggestInvocation SuggestionKind = "invocation"
	// SuggestIdentifier completes a bare name.
	SuggestIdentifier SuggestionKind = "identifier"
)

// Relevance scores. Higher ranks first.
const (
	RelevanceHigh    = 2000
	RelevanceDefault = 1000
	RelevanceLow     = 500
)

// placeholderName is the single-character name the resolver assigns to
// synthetic and intentionally-unnamed entities; such names are never
// suggested.
const placeholderName = "_"

// privateMarker is the naming-convention prefix that marks an element
// private.
const privateMarker = '_'

// Location is a source position for a suggested element. Line and Col are
// zero placeholders: line-index computation belongs to the caller's source
// model.
type Location struct {
	File   string `json:"file"`
	Offset int    `json:"offset"`
	Length int    `json:"length"`
	Line   int    `json:"line"`
	Col    int    `json:"col"`
}

// SuggestedElement is the bound-element record attached to a suggestion.
type SuggestedElement struct {
	Kind       ElementKind `json:"kind"`
	Name       string      `json:"name"`
	Abstract   bool        `json:"abstract,omitempty"`
	Deprecated bool        `json:"deprecated,omitempty"`
	Private    bool        `json:"private,omitempty"`
	Location   *Location   `json:"location,omitempty"`
	Parameters string      `json:"parameters,omitempty"`
	ReturnType string      `json:"return_type,omitempty"`
}

// Suggestion is a single candidate completion: what to insert, how to rank
// it, and the display metadata an editor needs. Completion is never empty
// and never the synthetic placeholder name.
type Suggestion struct {
	Kind            SuggestionKind `json:"kind"`
	Relevance       int            `json:"relevance"`
	Completion      string         `json:"completion"`
	SelectionOffset int            `json:"selection_offset"`
	SelectionLength int            `json:"selection_length"`
	Deprecated      bool           `json:"deprecated,omitempty"`

	// DefaultArgumentText and DefaultArgumentRanges are present only for
	// invocables with qualifying parameters. Ranges are flat (offset,
	// length) pairs into DefaultArgumentText.
	DefaultArgumentText   string `json:"default_argument_text,omitempty"`
	DefaultArgumentRanges []int  `json:"default_argument_ranges,omitempty"`

	DeclaringType string            `json:"declaring_type,omitempty"`
	ReturnType    string            `json:"return_type,omitempty"`
	Element       *SuggestedElement `json:"element,omitempty"`

	ParameterNames         []string `json:"parameter_names,omitempty"`
	ParameterTypes         []string `json:"parameter_types,omitempty"`
	RequiredParameterCount int      `json:"required_parameter_count,omitempty"`
	HasNamedParameters     bool     `json:"has_named_parameters,omitempty"`
}

// DefaultArgument is synthesized insertion text for an optional parameter.
// Cursor is a byte offset within Text where the editor cursor should land.
type DefaultArgument struct {
	Text   string
	Cursor int
}
