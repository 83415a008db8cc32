// Package frond formats resolved symbol and type information into ranked,
// editor-ready completion suggestions. It is the presentation half of a
// completion pipeline: an external parser and semantic resolver produce
// annotated syntax trees and bound elements; frond turns those into display
// strings, synthesized default-argument text, and sorted suggestion records.
//
// # Library API
//
// The formatting core is a set of pure functions over immutable value
// objects:
//
//   - [TypeName] — display string for an identifier's static type, with
//     declared-annotation fallback and a "dynamic" marker for the unresolved.
//   - [DefaultParameterValue] — insertion text for list- and function-typed
//     optional parameters, with a cursor offset.
//   - [DefaultArgumentList] — a ready-to-insert argument list for a
//     callable's required parameters, with editable (offset, length) spans.
//   - [CompareSuggestions] / [SortSuggestions] — relevance-then-name
//     ordering over suggestion records.
//   - [LocalSuggestion] / [LocalElement] — assembly of suggestion and bound
//     element records from identifiers and declaration context.
//
// All functions tolerate missing or unresolved input: every lookup has a
// defined fallback (nil result, the "dynamic" marker, or default text), and
// none of them return errors.
//
// # Engine API
//
// [Engine] layers the same formatting over a SQLite symbol snapshot
// populated by an external resolver:
//
//	e, err := frond.New("frond.db")
//	if err != nil { ... }
//	defer e.Close()
//
//	suggestions, err := e.Suggest(ctx, "main.go", "pri")
//
// [Engine.SuggestAt] additionally locates the identifier prefix under a byte
// offset using tree-sitter, and [WithRelevancePolicy] installs a Risor
// script that adjusts relevance scores per suggestion.
package frond
