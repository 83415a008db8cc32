package store

import (
	"database/sql"
	"fmt"
)

// --- File operations ---

func (s *Store) InsertFile(f *File) (int64, error) {
	res, err := s.db.Exec(
		"INSERT INTO files (path, language, hash, line_count, last_indexed) VALUES (?, ?, ?, ?, ?)",
		f.Path, f.Language, f.Hash, f.LineCount, f.LastIndexed,
	)
	if err != nil {
		return 0, fmt.Errorf("insert file: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("last insert id: %w", err)
	}
	f.ID = id
	return id, nil
}

func (s *Store) FileByPath(path string) (*File, error) {
	f := &File{}
	err := s.db.QueryRow(
		"SELECT id, path, language, hash, line_count, last_indexed FROM files WHERE path = ?", path,
	).Scan(&f.ID, &f.Path, &f.Language, &f.Hash, &f.LineCount, &f.LastIndexed)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("file by path: %w", err)
	}
	return f, nil
}

func (s *Store) Files() ([]*File, error) {
	rows, err := s.db.Query(
		"SELECT id, path, language, hash, line_count, last_indexed FROM files ORDER BY path",
	)
	if err != nil {
		return nil, fmt.Errorf("list files: %w", err)
	}
	defer rows.Close()
	var files []*File
	for rows.Next() {
		f := &File{}
		if err := rows.Scan(&f.ID, &f.Path, &f.Language, &f.Hash, &f.LineCount, &f.LastIndexed); err != nil {
			return nil, fmt.Errorf("scan file: %w", err)
		}
		files = append(files, f)
	}
	return files, rows.Err()
}

// --- Symbol operations ---

const symbolCols = `id, file_id, name, kind, visibility, modifiers, type_expr,
	start_offset, length, start_line, start_col, end_line, end_col, parent_symbol_id`

func (s *Store) InsertSymbol(sym *Symbol) (int64, error) {
	mods := marshalModifiers(sym.Modifiers)
	res, err := s.db.Exec(
		`INSERT INTO symbols (file_id, name, kind, visibility, modifiers, type_expr,
			start_offset, length, start_line, start_col, end_line, end_col, parent_symbol_id)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		sym.FileID, sym.Name, sym.Kind, sym.Visibility, mods, sym.TypeExpr,
		sym.StartOffset, sym.Length, sym.StartLine, sym.StartCol, sym.EndLine, sym.EndCol,
		sym.ParentSymbolID,
	)
	if err != nil {
		return 0, fmt.Errorf("insert symbol: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("last insert id: %w", err)
	}
	sym.ID = id
	return id, nil
}

func (s *Store) scanSymbol(scanner interface{ Scan(...any) error }) (*Symbol, error) {
	sym := &Symbol{}
	var mods string
	err := scanner.Scan(
		&sym.ID, &sym.FileID, &sym.Name, &sym.Kind, &sym.Visibility, &mods, &sym.TypeExpr,
		&sym.StartOffset, &sym.Length, &sym.StartLine, &sym.StartCol, &sym.EndLine, &sym.EndCol,
		&sym.ParentSymbolID,
	)
	if err != nil {
		return nil, err
	}
	sym.Modifiers = unmarshalModifiers(mods)
	return sym, nil
}

func (s *Store) querySymbols(query string, args ...any) ([]*Symbol, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var symbols []*Symbol
	for rows.Next() {
		sym, err := s.scanSymbol(rows)
		if err != nil {
			return nil, fmt.Errorf("scan symbol: %w", err)
		}
		symbols = append(symbols, sym)
	}
	return symbols, rows.Err()
}

func (s *Store) SymbolByID(id int64) (*Symbol, error) {
	row := s.db.QueryRow("SELECT "+symbolCols+" FROM symbols WHERE id = ?", id)
	sym, err := s.scanSymbol(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("symbol by id: %w", err)
	}
	return sym, nil
}

func (s *Store) SymbolsByFile(fileID int64) ([]*Symbol, error) {
	syms, err := s.querySymbols(
		"SELECT "+symbolCols+" FROM symbols WHERE file_id = ? ORDER BY start_offset", fileID,
	)
	if err != nil {
		return nil, fmt.Errorf("symbols by file: %w", err)
	}
	return syms, nil
}

// SymbolsByPrefix returns symbols in a file whose name starts with prefix,
// ordered by name. An empty prefix matches every symbol.
func (s *Store) SymbolsByPrefix(fileID int64, prefix string) ([]*Symbol, error) {
	syms, err := s.querySymbols(
		"SELECT "+symbolCols+" FROM symbols WHERE file_id = ? AND name LIKE ? ESCAPE '\\' ORDER BY name",
		fileID, escapeLike(prefix)+"%",
	)
	if err != nil {
		return nil, fmt.Errorf("symbols by prefix: %w", err)
	}
	return syms, nil
}

// --- Function parameter operations ---

func (s *Store) InsertFunctionParam(p *FunctionParam) (int64, error) {
	res, err := s.db.Exec(
		`INSERT INTO function_parameters (symbol_id, name, ordinal, type_expr, is_named, is_required, is_return)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		p.SymbolID, p.Name, p.Ordinal, p.TypeExpr, p.IsNamed, p.IsRequired, p.IsReturn,
	)
	if err != nil {
		return 0, fmt.Errorf("insert function param: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("last insert id: %w", err)
	}
	p.ID = id
	return id, nil
}

func (s *Store) FunctionParams(symbolID int64) ([]*FunctionParam, error) {
	rows, err := s.db.Query(
		`SELECT id, symbol_id, name, ordinal, type_expr, is_named, is_required, is_return
		 FROM function_parameters WHERE symbol_id = ? ORDER BY ordinal`, symbolID,
	)
	if err != nil {
		return nil, fmt.Errorf("function params: %w", err)
	}
	defer rows.Close()
	var params []*FunctionParam
	for rows.Next() {
		p := &FunctionParam{}
		if err := rows.Scan(&p.ID, &p.SymbolID, &p.Name, &p.Ordinal, &p.TypeExpr,
			&p.IsNamed, &p.IsRequired, &p.IsReturn); err != nil {
			return nil, fmt.Errorf("scan function param: %w", err)
		}
		params = append(params, p)
	}
	return params, rows.Err()
}

// --- Annotation operations ---

func (s *Store) InsertAnnotation(a *Annotation) (int64, error) {
	res, err := s.db.Exec(
		`INSERT INTO annotations (target_symbol_id, name, arguments, line, col)
		 VALUES (?, ?, ?, ?, ?)`,
		a.TargetSymbolID, a.Name, a.Arguments, a.Line, a.Col,
	)
	if err != nil {
		return 0, fmt.Errorf("insert annotation: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("last insert id: %w", err)
	}
	a.ID = id
	return id, nil
}

func (s *Store) AnnotationsByTarget(symbolID int64) ([]*Annotation, error) {
	rows, err := s.db.Query(
		`SELECT id, target_symbol_id, name, arguments, line, col
		 FROM annotations WHERE target_symbol_id = ? ORDER BY id`, symbolID,
	)
	if err != nil {
		return nil, fmt.Errorf("annotations by target: %w", err)
	}
	defer rows.Close()
	var anns []*Annotation
	for rows.Next() {
		a := &Annotation{}
		if err := rows.Scan(&a.ID, &a.TargetSymbolID, &a.Name, &a.Arguments, &a.Line, &a.Col); err != nil {
			return nil, fmt.Errorf("scan annotation: %w", err)
		}
		anns = append(anns, a)
	}
	return anns, rows.Err()
}
