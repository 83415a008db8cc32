// Package cursor locates the identifier prefix under a byte offset in a
// source file. It parses with tree-sitter purely to find token boundaries;
// no semantic resolution happens here.
package cursor

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"sync"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/c"
	"github.com/smacker/go-tree-sitter/cpp"
	"github.com/smacker/go-tree-sitter/golang"
	"github.com/smacker/go-tree-sitter/java"
	"github.com/smacker/go-tree-sitter/javascript"
	"github.com/smacker/go-tree-sitter/php"
	"github.com/smacker/go-tree-sitter/python"
	"github.com/smacker/go-tree-sitter/ruby"
	"github.com/smacker/go-tree-sitter/rust"
	ts "github.com/smacker/go-tree-sitter/typescript/typescript"
)

// extToLanguage maps file extensions to canonical language names.
var extToLanguage = map[string]string{
	".go":   "go",
	".ts":   "typescript",
	".tsx":  "typescript",
	".js":   "javascript",
	".jsx":  "javascript",
	".py":   "python",
	".rs":   "rust",
	".c":    "c",
	".h":    "c",
	".cpp":  "cpp",
	".cc":   "cpp",
	".cxx":  "cpp",
	".hpp":  "cpp",
	".java": "java",
	".php":  "php",
	".rb":   "ruby",
}

// langToGrammar maps language names to tree-sitter Language objects.
// Lazily initialized on first call via sync.Once.
var (
	langToGrammar map[string]*sitter.Language
	grammarsOnce  sync.Once
)

func grammarFor(lang string) (*sitter.Language, bool) {
	grammarsOnce.Do(func() {
		langToGrammar = map[string]*sitter.Language{
			"go":         golang.GetLanguage(),
			"typescript": ts.GetLanguage(),
			"javascript": javascript.GetLanguage(),
			"python":     python.GetLanguage(),
			"rust":       rust.GetLanguage(),
			"c":          c.GetLanguage(),
			"cpp":        cpp.GetLanguage(),
			"java":       java.GetLanguage(),
			"php":        php.GetLanguage(),
			"ruby":       ruby.GetLanguage(),
		}
	})
	g, ok := langToGrammar[lang]
	return g, ok
}

// LanguageForFile returns the canonical language name for a file path based
// on its extension. Returns ("", false) if the extension is not recognized.
func LanguageForFile(path string) (string, bool) {
	ext := strings.ToLower(filepath.Ext(path))
	lang, ok := extToLanguage[ext]
	return lang, ok
}

// PrefixAt returns the identifier prefix ending at offset in src: the part
// of the identifier token under the cursor that lies before the cursor.
// Returns "" when the offset is not inside or immediately after an
// identifier. Offsets are byte positions; offset == len(src) addresses the
// end of the file.
func PrefixAt(ctx context.Context, src []byte, lang string, offset int) (string, error) {
	if offset < 0 || offset > len(src) {
		return "", fmt.Errorf("cursor: offset %d out of range [0, %d]", offset, len(src))
	}

	grammar, ok := grammarFor(lang)
	if !ok {
		// No grammar — fall back to a lexical scan.
		return scanPrefix(src, offset), nil
	}

	parser := sitter.NewParser()
	defer parser.Close()
	parser.SetLanguage(grammar)

	tree, err := parser.ParseCtx(ctx, nil, src)
	if err != nil {
		return "", fmt.Errorf("cursor: parse: %w", err)
	}
	defer tree.Close()

	// The cursor sits after the typed character, so the token of interest
	// ends at offset; probe the byte just before the cursor.
	probe := offset
	if probe > 0 {
		probe--
	}
	node := leafAt(tree.RootNode(), uint32(probe))
	if node != nil && isIdentifierNode(node.Type()) {
		start := int(node.StartByte())
		if start <= offset && offset <= int(node.EndByte()) {
			return string(src[start:offset]), nil
		}
	}
	return scanPrefix(src, offset), nil
}

// leafAt descends to the deepest node whose byte span contains pos.
func leafAt(node *sitter.Node, pos uint32) *sitter.Node {
	if node == nil || pos < node.StartByte() || pos >= node.EndByte() {
		return nil
	}
	for {
		var next *sitter.Node
		for i := 0; i < int(node.ChildCount()); i++ {
			child := node.Child(i)
			if child != nil && child.StartByte() <= pos && pos < child.EndByte() {
				next = child
				break
			}
		}
		if next == nil {
			return node
		}
		node = next
	}
}

// isIdentifierNode reports whether a tree-sitter node type names an
// identifier-like token across the supported grammars.
func isIdentifierNode(nodeType string) bool {
	switch nodeType {
	case "identifier", "field_identifier", "type_identifier", "package_identifier",
		"property_identifier", "shorthand_property_identifier", "variable_name", "constant":
		return true
	}
	return false
}

// scanPrefix walks backwards from offset over identifier bytes. Used when
// no grammar is available or the parse put the cursor outside any
// identifier token.
func scanPrefix(src []byte, offset int) string {
	start := offset
	for start > 0 && isIdentByte(src[start-1]) {
		start--
	}
	// A pure-digit run is a number literal, not an identifier.
	if start == offset || isDigit(src[start]) {
		return ""
	}
	return string(src[start:offset])
}

func isIdentByte(b byte) bool {
	return b == '_' || isDigit(b) ||
		(b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}
