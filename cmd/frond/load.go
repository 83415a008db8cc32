package main

import (
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/jward/frond"
	"github.com/spf13/cobra"
)

var loadCmd = &cobra.Command{
	Use:   "load <snapshot.json>",
	Short: "Import a resolver snapshot into the database",
	Long:  "Reads a JSON snapshot produced by an external parser/resolver and writes its files, symbols, parameters, and annotations to the SQLite database. Files already present are replaced.",
	Args:  cobra.ExactArgs(1),
	RunE:  runLoad,
}

// Snapshot is the on-disk exchange format an external resolver emits.
type Snapshot struct {
	Files []SnapshotFile `json:"files"`
}

type SnapshotFile struct {
	Path      string           `json:"path"`
	Language  string           `json:"language"`
	LineCount int              `json:"line_count"`
	Symbols   []SnapshotSymbol `json:"symbols"`
}

type SnapshotSymbol struct {
	Name        string               `json:"name"`
	Kind        string               `json:"kind"`
	Visibility  string               `json:"visibility,omitempty"`
	Modifiers   []string             `json:"modifiers,omitempty"`
	Type        string               `json:"type,omitempty"`    // declared type for variables/fields
	Returns     string               `json:"returns,omitempty"` // declared return type for callables
	StartOffset int                  `json:"start_offset"`
	Length      int                  `json:"length"`
	StartLine   int                  `json:"start_line"`
	StartCol    int                  `json:"start_col"`
	EndLine     int                  `json:"end_line"`
	EndCol      int                  `json:"end_col"`
	Parameters  []SnapshotParam      `json:"parameters,omitempty"`
	Annotations []SnapshotAnnotation `json:"annotations,omitempty"`
	Members     []SnapshotSymbol     `json:"members,omitempty"`
}

type SnapshotParam struct {
	Name     string `json:"name"`
	Type     string `json:"type,omitempty"`
	Named    bool   `json:"named,omitempty"`
	Required bool   `json:"required,omitempty"`
}

type SnapshotAnnotation struct {
	Name      string `json:"name"`
	Arguments string `json:"arguments,omitempty"`
	Line      int    `json:"line"`
	Col       int    `json:"col"`
}

func runLoad(cmd *cobra.Command, args []string) error {
	start := time.Now()

	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("reading snapshot: %w", err)
	}
	var snapshot Snapshot
	if err := json.Unmarshal(data, &snapshot); err != nil {
		return fmt.Errorf("parsing snapshot: %w", err)
	}

	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("resolving working directory: %w", err)
	}
	dbPath := resolveDBPath(findRepoRoot(cwd))
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", filepath.Dir(dbPath), err)
	}

	engine, err := frond.New(dbPath)
	if err != nil {
		return fmt.Errorf("creating engine: %w", err)
	}
	defer engine.Close()

	summary := CLILoadSummary{Database: dbPath}
	s := engine.Store()
	for i := range snapshot.Files {
		sf := &snapshot.Files[i]

		// Replace any previous snapshot of this file.
		existing, err := s.FileByPath(sf.Path)
		if err != nil {
			return fmt.Errorf("load %s: %w", sf.Path, err)
		}
		if existing != nil {
			if err := s.DeleteFileData(existing.ID); err != nil {
				return fmt.Errorf("load %s: delete old data: %w", sf.Path, err)
			}
		}

		fileID, err := s.InsertFile(&frond.File{
			Path:        sf.Path,
			Language:    sf.Language,
			Hash:        fmt.Sprintf("%x", sha256.Sum256(data)),
			LineCount:   sf.LineCount,
			LastIndexed: time.Now(),
		})
		if err != nil {
			return fmt.Errorf("load %s: %w", sf.Path, err)
		}
		summary.Files++

		for j := range sf.Symbols {
			if err := loadSymbol(s, fileID, nil, &sf.Symbols[j], &summary); err != nil {
				return fmt.Errorf("load %s: %w", sf.Path, err)
			}
		}
	}

	fmt.Fprintf(os.Stderr, "Loaded snapshot in %s\n", time.Since(start).Round(time.Millisecond))
	return outputResult(CLIResult{Command: "load", Results: summary})
}

// loadSymbol inserts one snapshot symbol with its parameters, annotations,
// and nested members.
func loadSymbol(s *frond.Store, fileID int64, parentID *int64, ss *SnapshotSymbol, summary *CLILoadSummary) error {
	symID, err := s.InsertSymbol(&frond.Symbol{
		FileID:         &fileID,
		Name:           ss.Name,
		Kind:           ss.Kind,
		Visibility:     ss.Visibility,
		Modifiers:      ss.Modifiers,
		TypeExpr:       ss.Type,
		StartOffset:    ss.StartOffset,
		Length:         ss.Length,
		StartLine:      ss.StartLine,
		StartCol:       ss.StartCol,
		EndLine:        ss.EndLine,
		EndCol:         ss.EndCol,
		ParentSymbolID: parentID,
	})
	if err != nil {
		return fmt.Errorf("symbol %s: %w", ss.Name, err)
	}
	summary.Symbols++

	for ordinal, p := range ss.Parameters {
		if _, err := s.InsertFunctionParam(&frond.FunctionParam{
			SymbolID:   symID,
			Name:       p.Name,
			Ordinal:    ordinal,
			TypeExpr:   p.Type,
			IsNamed:    p.Named,
			IsRequired: p.Required,
		}); err != nil {
			return fmt.Errorf("symbol %s: param %s: %w", ss.Name, p.Name, err)
		}
		summary.Parameters++
	}
	if ss.Returns != "" {
		if _, err := s.InsertFunctionParam(&frond.FunctionParam{
			SymbolID: symID,
			Ordinal:  len(ss.Parameters),
			TypeExpr: ss.Returns,
			IsReturn: true,
		}); err != nil {
			return fmt.Errorf("symbol %s: return type: %w", ss.Name, err)
		}
		summary.Parameters++
	}

	for _, a := range ss.Annotations {
		if _, err := s.InsertAnnotation(&frond.Annotation{
			TargetSymbolID: symID,
			Name:           a.Name,
			Arguments:      a.Arguments,
			Line:           a.Line,
			Col:            a.Col,
		}); err != nil {
			return fmt.Errorf("symbol %s: annotation %s: %w", ss.Name, a.Name, err)
		}
		summary.Annotations++
	}

	for i := range ss.Members {
		if err := loadSymbol(s, fileID, &symID, &ss.Members[i], summary); err != nil {
			return err
		}
	}
	return nil
}
