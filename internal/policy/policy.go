// Package policy evaluates Risor relevance-policy scripts. A policy script
// sees one suggestion at a time through globals and evaluates to the
// adjusted relevance for it, letting deployments re-rank completions
// without recompiling frond.
package policy

import (
	"context"
	"fmt"
	"os"

	"github.com/risor-io/risor"
	"github.com/risor-io/risor/object"
)

// Policy holds a relevance script. The script's last expression must
// evaluate to an integer; it receives these globals per call:
//
//	name       string — completion text
//	kind       string — suggestion kind ("invocation" or "identifier")
//	deprecated bool   — whether the declaration is deprecated
//	relevance  int    — baseline relevance from the builder
type Policy struct {
	source string
	label  string
}

// New creates a Policy from Risor source code.
func New(source string) *Policy {
	return &Policy{source: source, label: "<inline>"}
}

// Load creates a Policy from a script file on disk.
func Load(path string) (*Policy, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("policy: loading script %s: %w", path, err)
	}
	return &Policy{source: string(data), label: path}, nil
}

// Relevance evaluates the script for one suggestion and returns the
// adjusted relevance.
func (p *Policy) Relevance(ctx context.Context, name, kind string, deprecated bool, relevance int) (int, error) {
	result, err := risor.Eval(ctx, p.source,
		risor.WithGlobal("name", name),
		risor.WithGlobal("kind", kind),
		risor.WithGlobal("deprecated", deprecated),
		risor.WithGlobal("relevance", relevance),
	)
	if err != nil {
		return 0, fmt.Errorf("policy: script %s: %w", p.label, err)
	}

	switch v := result.(type) {
	case *object.Int:
		return int(v.Value()), nil
	case *object.Float:
		return int(v.Value()), nil
	default:
		return 0, fmt.Errorf("policy: script %s: expected int result, got %s", p.label, result.Type())
	}
}
