package frond

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEngine(t *testing.T, opts ...Option) *Engine {
	t.Helper()
	e, err := New(filepath.Join(t.TempDir(), "test.db"), opts...)
	require.NoError(t, err)
	t.Cleanup(func() { e.Close() })
	return e
}

func insertFile(t *testing.T, e *Engine, path string) int64 {
	t.Helper()
	id, err := e.Store().InsertFile(&File{
		Path:        path,
		Language:    "dart",
		LastIndexed: time.Now(),
	})
	require.NoError(t, err)
	return id
}

func insertSymbol(t *testing.T, e *Engine, sym *Symbol) int64 {
	t.Helper()
	id, err := e.Store().InsertSymbol(sym)
	require.NoError(t, err)
	return id
}

func TestSuggest_UnknownFileIsNilNil(t *testing.T) {
	e := newTestEngine(t)

	suggestions, err := e.Suggest(context.Background(), "no/such.dart", "")
	require.NoError(t, err)
	assert.Nil(t, suggestions)
}

func TestSuggest_FiltersByPrefixAndRanks(t *testing.T) {
	e := newTestEngine(t)
	fileID := insertFile(t, e, "lib/a.dart")

	for _, name := range []string{"render", "rebuild", "dispose"} {
		insertSymbol(t, e, &Symbol{FileID: &fileID, Name: name, Kind: "variable", TypeExpr: "int"})
	}

	suggestions, err := e.Suggest(context.Background(), "lib/a.dart", "re")
	require.NoError(t, err)
	require.Len(t, suggestions, 2)
	// Equal relevance, so alphabetical.
	assert.Equal(t, "rebuild", suggestions[0].Completion)
	assert.Equal(t, "render", suggestions[1].Completion)
	assert.Equal(t, "int", suggestions[0].ReturnType)
	assert.Equal(t, SuggestIdentifier, suggestions[0].Kind)
}

func TestSuggest_SkipsPlaceholderNames(t *testing.T) {
	e := newTestEngine(t)
	fileID := insertFile(t, e, "lib/a.dart")

	insertSymbol(t, e, &Symbol{FileID: &fileID, Name: "_", Kind: "variable"})
	insertSymbol(t, e, &Symbol{FileID: &fileID, Name: "_kept", Kind: "variable"})

	suggestions, err := e.Suggest(context.Background(), "lib/a.dart", "")
	require.NoError(t, err)
	require.Len(t, suggestions, 1)
	assert.Equal(t, "_kept", suggestions[0].Completion)
	require.NotNil(t, suggestions[0].Element)
	assert.True(t, suggestions[0].Element.Private)
}

func TestSuggest_DeprecatedSymbolRanksLow(t *testing.T) {
	e := newTestEngine(t)
	fileID := insertFile(t, e, "lib/a.dart")

	symID := insertSymbol(t, e, &Symbol{FileID: &fileID, Name: "oldApi", Kind: "function"})
	_, err := e.Store().InsertAnnotation(&Annotation{TargetSymbolID: symID, Name: "deprecated"})
	require.NoError(t, err)
	insertSymbol(t, e, &Symbol{FileID: &fileID, Name: "newApi", Kind: "function"})

	suggestions, err := e.Suggest(context.Background(), "lib/a.dart", "")
	require.NoError(t, err)
	require.Len(t, suggestions, 2)

	assert.Equal(t, "newApi", suggestions[0].Completion)
	assert.Equal(t, RelevanceDefault, suggestions[0].Relevance)
	assert.Equal(t, "oldApi", suggestions[1].Completion)
	assert.Equal(t, RelevanceLow, suggestions[1].Relevance)
	assert.True(t, suggestions[1].Deprecated)
}

func TestSuggest_InvocableCarriesDefaultArguments(t *testing.T) {
	e := newTestEngine(t)
	fileID := insertFile(t, e, "lib/a.dart")

	symID := insertSymbol(t, e, &Symbol{FileID: &fileID, Name: "resize", Kind: "function"})
	s := e.Store()
	for _, p := range []*FunctionParam{
		{SymbolID: symID, Name: "a", Ordinal: 0, TypeExpr: "int", IsRequired: true},
		{SymbolID: symID, Name: "b", Ordinal: 1, TypeExpr: "int", IsNamed: true, IsRequired: true},
		{SymbolID: symID, Ordinal: 2, TypeExpr: "void", IsReturn: true},
	} {
		_, err := s.InsertFunctionParam(p)
		require.NoError(t, err)
	}

	suggestions, err := e.Suggest(context.Background(), "lib/a.dart", "res")
	require.NoError(t, err)
	require.Len(t, suggestions, 1)

	sugg := suggestions[0]
	assert.Equal(t, SuggestInvocation, sugg.Kind)
	assert.Equal(t, "void", sugg.ReturnType)
	assert.Equal(t, "a, b: null", sugg.DefaultArgumentText)
	assert.Equal(t, []int{0, 1, 6, 4}, sugg.DefaultArgumentRanges)
	assert.Equal(t, []string{"a", "b"}, sugg.ParameterNames)
	assert.Equal(t, []string{"int", "int"}, sugg.ParameterTypes)
	assert.Equal(t, 1, sugg.RequiredParameterCount)
	assert.True(t, sugg.HasNamedParameters)

	require.NotNil(t, sugg.Element)
	assert.Equal(t, "(int a, int b)", sugg.Element.Parameters)
	assert.Equal(t, "void", sugg.Element.ReturnType)
}

func TestSuggest_MemberCarriesDeclaringType(t *testing.T) {
	e := newTestEngine(t)
	fileID := insertFile(t, e, "lib/a.dart")

	classID := insertSymbol(t, e, &Symbol{FileID: &fileID, Name: "Widget", Kind: "class"})
	insertSymbol(t, e, &Symbol{
		FileID: &fileID, Name: "dispose", Kind: "method", ParentSymbolID: &classID,
	})

	suggestions, err := e.Suggest(context.Background(), "lib/a.dart", "dis")
	require.NoError(t, err)
	require.Len(t, suggestions, 1)
	assert.Equal(t, "Widget", suggestions[0].DeclaringType)
}

func TestSuggest_TopLevelHasNoDeclaringType(t *testing.T) {
	e := newTestEngine(t)
	fileID := insertFile(t, e, "lib/a.dart")
	insertSymbol(t, e, &Symbol{FileID: &fileID, Name: "main", Kind: "function"})

	suggestions, err := e.Suggest(context.Background(), "lib/a.dart", "")
	require.NoError(t, err)
	require.Len(t, suggestions, 1)
	assert.Empty(t, suggestions[0].DeclaringType)
}

func TestSuggest_AbstractClassFlagged(t *testing.T) {
	e := newTestEngine(t)
	fileID := insertFile(t, e, "lib/a.dart")
	insertSymbol(t, e, &Symbol{
		FileID: &fileID, Name: "Shape", Kind: "class", Modifiers: []string{"abstract"},
	})

	suggestions, err := e.Suggest(context.Background(), "lib/a.dart", "")
	require.NoError(t, err)
	require.Len(t, suggestions, 1)
	require.NotNil(t, suggestions[0].Element)
	assert.True(t, suggestions[0].Element.Abstract)
}

func TestSuggest_RelevancePolicyAdjustsScores(t *testing.T) {
	e := newTestEngine(t, WithRelevancePolicy(`relevance + 500`))
	fileID := insertFile(t, e, "lib/a.dart")
	insertSymbol(t, e, &Symbol{FileID: &fileID, Name: "boosted", Kind: "variable"})

	suggestions, err := e.Suggest(context.Background(), "lib/a.dart", "")
	require.NoError(t, err)
	require.Len(t, suggestions, 1)
	assert.Equal(t, RelevanceDefault+500, suggestions[0].Relevance)
}

func TestSuggest_RelevancePolicyErrorSurfaces(t *testing.T) {
	e := newTestEngine(t, WithRelevancePolicy(`"not a number"`))
	fileID := insertFile(t, e, "lib/a.dart")
	insertSymbol(t, e, &Symbol{FileID: &fileID, Name: "x", Kind: "variable"})

	_, err := e.Suggest(context.Background(), "lib/a.dart", "")
	require.Error(t, err)
}
