package store

import "time"

// Snapshot domain types. Rows are produced by an external resolver and
// consumed by the suggestion formatter; frond never derives them itself.

type File struct {
	ID          int64
	Path        string
	Language    string
	Hash        string
	LineCount   int
	LastIndexed time.Time
}

type Symbol struct {
	ID             int64
	FileID         *int64
	Name           string
	Kind           string
	Visibility     string
	Modifiers      []string
	TypeExpr       string // declared/static type as written in source
	StartOffset    int
	Length         int
	StartLine      int
	StartCol       int
	EndLine        int
	EndCol         int
	ParentSymbolID *int64
}

// FunctionParam describes one parameter of a callable symbol. Rows with
// IsReturn set carry the declared return type instead of a parameter.
type FunctionParam struct {
	ID         int64
	SymbolID   int64
	Name       string
	Ordinal    int
	TypeExpr   string
	IsNamed    bool
	IsRequired bool
	IsReturn   bool
}

type Annotation struct {
	ID             int64
	TargetSymbolID int64
	Name           string
	Arguments      string
	Line           int
	Col            int
}
