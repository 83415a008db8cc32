package frond

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/jward/frond/internal/cursor"
	"github.com/jward/frond/internal/policy"
	"github.com/jward/frond/internal/store"
)

// Engine layers suggestion formatting over a SQLite symbol snapshot
// populated by an external resolver.
type Engine struct {
	store  *store.Store
	policy *policy.Policy
}

// Option configures an Engine.
type Option func(*Engine)

// WithRelevancePolicy installs a Risor relevance script. The script runs
// once per suggestion after the builder has applied its own scoring; see
// the policy package for the globals it receives.
func WithRelevancePolicy(source string) Option {
	return func(e *Engine) {
		e.policy = policy.New(source)
	}
}

// New creates an Engine backed by a SQLite database at dbPath.
func New(dbPath string, opts ...Option) (*Engine, error) {
	s, err := store.NewStore(dbPath)
	if err != nil {
		return nil, fmt.Errorf("frond: create store: %w", err)
	}
	if err := s.Migrate(); err != nil {
		s.Close()
		return nil, fmt.Errorf("frond: migrate: %w", err)
	}

	e := &Engine{store: s}
	for _, opt := range opts {
		opt(e)
	}
	return e, nil
}

// Close releases the Engine's database resources.
func (e *Engine) Close() error {
	return e.store.Close()
}

// Store returns the underlying Store for direct access.
func (e *Engine) Store() *Store {
	return e.store
}

// Suggest returns ranked suggestions for symbols declared in file whose
// names start with prefix. An empty prefix matches every symbol. Returns
// nil with no error when the file is not in the snapshot.
func (e *Engine) Suggest(ctx context.Context, file, prefix string) ([]*Suggestion, error) {
	f, err := e.store.FileByPath(file)
	if err != nil {
		return nil, fmt.Errorf("suggest: lookup file: %w", err)
	}
	if f == nil {
		return nil, nil
	}

	syms, err := e.store.SymbolsByPrefix(f.ID, prefix)
	if err != nil {
		return nil, fmt.Errorf("suggest: %w", err)
	}

	var suggestions []*Suggestion
	for _, sym := range syms {
		sugg, err := e.buildSuggestion(f, sym)
		if err != nil {
			return nil, fmt.Errorf("suggest: symbol %s: %w", sym.Name, err)
		}
		if sugg == nil {
			continue
		}
		if e.policy != nil {
			relevance, err := e.policy.Relevance(ctx, sugg.Completion, string(sugg.Kind), sugg.Deprecated, sugg.Relevance)
			if err != nil {
				return nil, fmt.Errorf("suggest: %w", err)
			}
			sugg.Relevance = relevance
		}
		suggestions = append(suggestions, sugg)
	}

	SortSuggestions(suggestions)
	return suggestions, nil
}

// SuggestAt reads the source file, locates the identifier prefix ending at
// the byte offset via tree-sitter, and delegates to Suggest.
func (e *Engine) SuggestAt(ctx context.Context, file string, offset int) ([]*Suggestion, error) {
	src, err := os.ReadFile(file)
	if err != nil {
		return nil, fmt.Errorf("suggest at: read %s: %w", file, err)
	}
	lang, _ := cursor.LanguageForFile(file)
	prefix, err := cursor.PrefixAt(ctx, src, lang, offset)
	if err != nil {
		return nil, fmt.Errorf("suggest at: %w", err)
	}
	return e.Suggest(ctx, file, prefix)
}

// classLikeKinds are the declaration kinds that count as a declaring type
// for member suggestions.
var classLikeKinds = map[string]bool{
	"class":     true,
	"struct":    true,
	"interface": true,
	"enum":      true,
	"mixin":     true,
}

// buildSuggestion assembles one suggestion from a stored symbol. Returns
// nil when the symbol's name is not suggestible.
func (e *Engine) buildSuggestion(f *store.File, sym *store.Symbol) (*Suggestion, error) {
	annotations, err := e.store.AnnotationsByTarget(sym.ID)
	if err != nil {
		return nil, err
	}
	deprecated := IsDeprecated(annotations)

	paramRows, err := e.store.FunctionParams(sym.ID)
	if err != nil {
		return nil, err
	}
	params, returnExpr := splitParamRows(paramRows)

	kind := ElementKind(sym.Kind)
	abstract := hasModifier(sym, "abstract")

	elem := &Element{
		Kind:       kind,
		Name:       sym.Name,
		Abstract:   abstract,
		Deprecated: deprecated,
	}
	declared := sym.TypeExpr
	if kind.functionLike() {
		declared = returnExpr
		elem.ReturnType = ParseTypeExpr(returnExpr)
	} else {
		elem.Type = ParseTypeExpr(sym.TypeExpr)
	}

	id := &Ident{
		Name:    sym.Name,
		Offset:  sym.StartOffset,
		Length:  sym.Length,
		Element: elem,
	}

	var parameters string
	if kind.functionLike() && kind != ElemGetter {
		parameters = paramListText(params)
	}
	suggested := LocalElement(f.Path, kind, id, parameters, declared, abstract, deprecated)

	declaringType, err := e.declaringTypeName(sym)
	if err != nil {
		return nil, err
	}

	sugg := LocalSuggestion(id, deprecated, RelevanceDefault, declared, declaringType, suggested)
	if sugg == nil {
		return nil, nil
	}

	if kind.invocable() {
		text, ranges := DefaultArgumentList(params)
		sugg.DefaultArgumentText = text
		sugg.DefaultArgumentRanges = ranges
		for _, p := range params {
			sugg.ParameterNames = append(sugg.ParameterNames, p.Name)
			sugg.ParameterTypes = append(sugg.ParameterTypes, p.Type.String())
			if !p.Named && p.Required {
				sugg.RequiredParameterCount++
			}
			if p.Named {
				sugg.HasNamedParameters = true
			}
		}
	}
	return sugg, nil
}

// declaringTypeName resolves the name of the class-like parent declaration,
// or "" when the symbol is top-level or nested in something else.
func (e *Engine) declaringTypeName(sym *store.Symbol) (string, error) {
	if sym.ParentSymbolID == nil {
		return "", nil
	}
	parent, err := e.store.SymbolByID(*sym.ParentSymbolID)
	if err != nil {
		return "", err
	}
	if parent == nil || !classLikeKinds[parent.Kind] {
		return "", nil
	}
	return parent.Name, nil
}

// splitParamRows separates parameter rows from the return-type row.
func splitParamRows(rows []*store.FunctionParam) ([]Param, string) {
	var params []Param
	var returnExpr string
	for _, row := range rows {
		if row.IsReturn {
			returnExpr = row.TypeExpr
			continue
		}
		params = append(params, Param{
			Name:     row.Name,
			Type:     ParseTypeExpr(row.TypeExpr),
			Named:    row.IsNamed,
			Required: row.IsRequired,
		})
	}
	return params, returnExpr
}

// paramListText renders a parameter list for element display, with each
// parameter's type (when concrete) before its name.
func paramListText(params []Param) string {
	var sb strings.Builder
	sb.WriteByte('(')
	for i, p := range params {
		if i > 0 {
			sb.WriteString(", ")
		}
		if !p.Type.IsDynamic() {
			sb.WriteString(p.Type.String())
			sb.WriteByte(' ')
		}
		sb.WriteString(p.Name)
	}
	sb.WriteByte(')')
	return sb.String()
}

// hasModifier reports whether the symbol's modifier list contains mod.
func hasModifier(sym *store.Symbol, mod string) bool {
	for _, m := range sym.Modifiers {
		if m == mod {
			return true
		}
	}
	return false
}
