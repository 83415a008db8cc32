package frond

import "github.com/jward/frond/internal/store"

// IsDeprecated reports whether a declaration's attached metadata carries a
// deprecation marker: an exact match on the unqualified annotation name
// "deprecated". This is a purely syntactic check; no deprecation registry
// is consulted.
func IsDeprecated(annotations []*store.Annotation) bool {
	for _, a := range annotations {
		if a.Name == "deprecated" {
			return true
		}
	}
	return false
}

// LocalSuggestion assembles a suggestion record for a locally-declared
// identifier. declared is the return-type annotation as written in source
// ("" when absent); declaringType names the class-like construct that
// lexically owns the declaration ("" when top-level); elem is an optional
// pre-built bound-element record.
//
// Returns nil when the identifier is absent, its name is empty, or its name
// is the synthetic placeholder. Deprecated identifiers receive the fixed
// low relevance regardless of the supplied baseline.
func LocalSuggestion(id *Ident, deprecated bool, relevance int, declared string, declaringType string, elem *SuggestedElement) *Suggestion {
	if id == nil || id.Name == "" || id.Name == placeholderName {
		return nil
	}
	if deprecated {
		relevance = RelevanceLow
	}

	kind := SuggestIdentifier
	if id.Element != nil && id.Element.Kind.invocable() {
		kind = SuggestInvocation
	}

	s := &Suggestion{
		Kind:            kind,
		Relevance:       relevance,
		Completion:      id.Name,
		SelectionOffset: len(id.Name),
		SelectionLength: 0,
		Deprecated:      deprecated,
		DeclaringType:   declaringType,
		Element:         elem,
	}
	if name, ok := TypeName(id, declared); ok {
		s.ReturnType = name
	}
	return s
}

// LocalElement builds a standalone bound-element record for a local
// declaration. file is the declaring source path; parameters is the
// rendered parameter-list text ("" for non-callables); declared is the
// return-type annotation as written. Privacy is derived from the naming
// convention alone. Line and column in the location are placeholders.
func LocalElement(file string, kind ElementKind, id *Ident, parameters string, declared string, abstract, deprecated bool) *SuggestedElement {
	if id == nil || id.Name == "" {
		return nil
	}

	e := &SuggestedElement{
		Kind:       kind,
		Name:       id.Name,
		Abstract:   abstract,
		Deprecated: deprecated,
		Private:    id.Name[0] == privateMarker,
		Location: &Location{
			File:   file,
			Offset: id.Offset,
			Length: id.Length,
		},
		Parameters: parameters,
	}
	if name, ok := TypeName(id, declared); ok {
		e.ReturnType = name
	}
	return e
}
