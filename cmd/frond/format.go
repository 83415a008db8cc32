package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"
)

// outputResult writes the result in the selected --format to stdout.
func outputResult(result CLIResult) error {
	if flagFormat == "json" {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	}
	return outputResultText(result)
}

// outputResultText dispatches to the appropriate text formatter based on
// the result type. It writes to os.Stdout.
func outputResultText(result CLIResult) error {
	w := io.Writer(os.Stdout)

	switch v := result.Results.(type) {
	case []CLISuggestion:
		formatSuggestionsText(w, v)
	case CLILoadSummary:
		formatLoadSummaryText(w, v)
	case nil:
		// No output for nil results (e.g., file not in the snapshot).
	default:
		return fmt.Errorf("unsupported result type for text format: %T", v)
	}
	return nil
}

// formatSuggestionsText formats suggestions as aligned columns, ranked
// order preserved.
func formatSuggestionsText(w io.Writer, suggestions []CLISuggestion) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "COMPLETION\tKIND\tRELEVANCE\tTYPE\tDECLARED IN\tARGS")
	for _, s := range suggestions {
		completion := s.Completion
		if s.Deprecated {
			completion += " (deprecated)"
		}
		fmt.Fprintf(tw, "%s\t%s\t%d\t%s\t%s\t%s\n",
			completion, s.Kind, s.Relevance, s.ReturnType, s.DeclaringType, s.DefaultArgumentText)
	}
	tw.Flush()
}

// formatLoadSummaryText formats a load summary as readable text.
func formatLoadSummaryText(w io.Writer, summary CLILoadSummary) {
	fmt.Fprintf(w, "Loaded %d file(s), %d symbol(s), %d parameter(s), %d annotation(s)\n",
		summary.Files, summary.Symbols, summary.Parameters, summary.Annotations)
	fmt.Fprintf(w, "Database: %s\n", summary.Database)
}

// validFormats lists accepted values for --format.
var validFormats = []string{"json", "text"}

// validateFormat checks that the --format flag value is recognized.
func validateFormat(format string) error {
	for _, f := range validFormats {
		if format == f {
			return nil
		}
	}
	return fmt.Errorf("invalid format %q: must be %s", format, strings.Join(validFormats, " or "))
}
