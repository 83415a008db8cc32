package store

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := NewStore(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	require.NoError(t, s.Migrate())
	t.Cleanup(func() { s.Close() })
	return s
}

func insertTestFile(t *testing.T, s *Store, path string) int64 {
	t.Helper()
	id, err := s.InsertFile(&File{
		Path:        path,
		Language:    "dart",
		Hash:        "abc123",
		LineCount:   100,
		LastIndexed: time.Now(),
	})
	require.NoError(t, err)
	return id
}

func TestMigrateIsIdempotent(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.Migrate())
	require.NoError(t, s.Migrate())
}

func TestFileRoundTrip(t *testing.T) {
	s := newTestStore(t)

	id := insertTestFile(t, s, "lib/widget.dart")

	f, err := s.FileByPath("lib/widget.dart")
	require.NoError(t, err)
	require.NotNil(t, f)
	assert.Equal(t, id, f.ID)
	assert.Equal(t, "dart", f.Language)
	assert.Equal(t, 100, f.LineCount)
}

func TestFileByPath_MissingIsNilNil(t *testing.T) {
	s := newTestStore(t)

	f, err := s.FileByPath("no/such/file.dart")
	require.NoError(t, err)
	assert.Nil(t, f)
}

func TestFiles_OrderedByPath(t *testing.T) {
	s := newTestStore(t)
	insertTestFile(t, s, "b.dart")
	insertTestFile(t, s, "a.dart")

	files, err := s.Files()
	require.NoError(t, err)
	require.Len(t, files, 2)
	assert.Equal(t, "a.dart", files[0].Path)
	assert.Equal(t, "b.dart", files[1].Path)
}

func TestSymbolRoundTrip(t *testing.T) {
	s := newTestStore(t)
	fileID := insertTestFile(t, s, "lib/a.dart")

	id, err := s.InsertSymbol(&Symbol{
		FileID:      &fileID,
		Name:        "Widget",
		Kind:        "class",
		Visibility:  "public",
		Modifiers:   []string{"abstract"},
		StartOffset: 10,
		Length:      6,
		StartLine:   2,
		StartCol:    1,
	})
	require.NoError(t, err)

	sym, err := s.SymbolByID(id)
	require.NoError(t, err)
	require.NotNil(t, sym)
	assert.Equal(t, "Widget", sym.Name)
	assert.Equal(t, "class", sym.Kind)
	assert.Equal(t, []string{"abstract"}, sym.Modifiers)
	assert.Equal(t, 10, sym.StartOffset)
	require.NotNil(t, sym.FileID)
	assert.Equal(t, fileID, *sym.FileID)
	assert.Nil(t, sym.ParentSymbolID)
}

func TestSymbolByID_MissingIsNilNil(t *testing.T) {
	s := newTestStore(t)

	sym, err := s.SymbolByID(999)
	require.NoError(t, err)
	assert.Nil(t, sym)
}

func TestSymbolsByFile_OrderedByOffset(t *testing.T) {
	s := newTestStore(t)
	fileID := insertTestFile(t, s, "lib/a.dart")

	for _, sym := range []*Symbol{
		{FileID: &fileID, Name: "second", Kind: "function", StartOffset: 50},
		{FileID: &fileID, Name: "first", Kind: "function", StartOffset: 5},
	} {
		_, err := s.InsertSymbol(sym)
		require.NoError(t, err)
	}

	syms, err := s.SymbolsByFile(fileID)
	require.NoError(t, err)
	require.Len(t, syms, 2)
	assert.Equal(t, "first", syms[0].Name)
	assert.Equal(t, "second", syms[1].Name)
}

func TestSymbolsByPrefix(t *testing.T) {
	s := newTestStore(t)
	fileID := insertTestFile(t, s, "lib/a.dart")
	otherID := insertTestFile(t, s, "lib/b.dart")

	for _, sym := range []*Symbol{
		{FileID: &fileID, Name: "render", Kind: "method"},
		{FileID: &fileID, Name: "rebuild", Kind: "method"},
		{FileID: &fileID, Name: "dispose", Kind: "method"},
		{FileID: &otherID, Name: "renderOther", Kind: "method"},
	} {
		_, err := s.InsertSymbol(sym)
		require.NoError(t, err)
	}

	syms, err := s.SymbolsByPrefix(fileID, "re")
	require.NoError(t, err)
	require.Len(t, syms, 2)
	assert.Equal(t, "rebuild", syms[0].Name)
	assert.Equal(t, "render", syms[1].Name)

	// Empty prefix matches everything in the file.
	all, err := s.SymbolsByPrefix(fileID, "")
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestSymbolsByPrefix_EscapesLikeMetachars(t *testing.T) {
	s := newTestStore(t)
	fileID := insertTestFile(t, s, "lib/a.dart")

	for _, name := range []string{"_private", "apple"} {
		_, err := s.InsertSymbol(&Symbol{FileID: &fileID, Name: name, Kind: "variable"})
		require.NoError(t, err)
	}

	// A literal underscore prefix must not act as a single-char wildcard.
	syms, err := s.SymbolsByPrefix(fileID, "_")
	require.NoError(t, err)
	require.Len(t, syms, 1)
	assert.Equal(t, "_private", syms[0].Name)
}

func TestFunctionParams_OrderedByOrdinal(t *testing.T) {
	s := newTestStore(t)
	fileID := insertTestFile(t, s, "lib/a.dart")
	symID, err := s.InsertSymbol(&Symbol{FileID: &fileID, Name: "f", Kind: "function"})
	require.NoError(t, err)

	for _, p := range []*FunctionParam{
		{SymbolID: symID, Ordinal: 2, TypeExpr: "String", IsReturn: true},
		{SymbolID: symID, Name: "b", Ordinal: 1, TypeExpr: "int", IsNamed: true, IsRequired: true},
		{SymbolID: symID, Name: "a", Ordinal: 0, TypeExpr: "int", IsRequired: true},
	} {
		_, err := s.InsertFunctionParam(p)
		require.NoError(t, err)
	}

	params, err := s.FunctionParams(symID)
	require.NoError(t, err)
	require.Len(t, params, 3)
	assert.Equal(t, "a", params[0].Name)
	assert.True(t, params[0].IsRequired)
	assert.Equal(t, "b", params[1].Name)
	assert.True(t, params[1].IsNamed)
	assert.True(t, params[2].IsReturn)
	assert.Equal(t, "String", params[2].TypeExpr)
}

func TestAnnotationsByTarget(t *testing.T) {
	s := newTestStore(t)
	fileID := insertTestFile(t, s, "lib/a.dart")
	symID, err := s.InsertSymbol(&Symbol{FileID: &fileID, Name: "oldApi", Kind: "function"})
	require.NoError(t, err)

	for _, name := range []string{"deprecated", "override"} {
		_, err := s.InsertAnnotation(&Annotation{TargetSymbolID: symID, Name: name, Line: 1, Col: 1})
		require.NoError(t, err)
	}

	anns, err := s.AnnotationsByTarget(symID)
	require.NoError(t, err)
	require.Len(t, anns, 2)
	assert.Equal(t, "deprecated", anns[0].Name)
	assert.Equal(t, "override", anns[1].Name)
}

func TestDeleteFileData_CascadesAcrossTables(t *testing.T) {
	s := newTestStore(t)
	fileID := insertTestFile(t, s, "lib/a.dart")
	keepID := insertTestFile(t, s, "lib/keep.dart")

	symID, err := s.InsertSymbol(&Symbol{FileID: &fileID, Name: "f", Kind: "function"})
	require.NoError(t, err)
	_, err = s.InsertFunctionParam(&FunctionParam{SymbolID: symID, Name: "a", Ordinal: 0})
	require.NoError(t, err)
	_, err = s.InsertAnnotation(&Annotation{TargetSymbolID: symID, Name: "deprecated"})
	require.NoError(t, err)

	keepSymID, err := s.InsertSymbol(&Symbol{FileID: &keepID, Name: "g", Kind: "function"})
	require.NoError(t, err)

	require.NoError(t, s.DeleteFileData(fileID))

	f, err := s.FileByPath("lib/a.dart")
	require.NoError(t, err)
	assert.Nil(t, f)

	sym, err := s.SymbolByID(symID)
	require.NoError(t, err)
	assert.Nil(t, sym)

	params, err := s.FunctionParams(symID)
	require.NoError(t, err)
	assert.Empty(t, params)

	anns, err := s.AnnotationsByTarget(symID)
	require.NoError(t, err)
	assert.Empty(t, anns)

	// The other file is untouched.
	kept, err := s.SymbolByID(keepSymID)
	require.NoError(t, err)
	require.NotNil(t, kept)
	assert.Equal(t, "g", kept.Name)
}
