package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jward/frond"
	"github.com/spf13/cobra"
)

var (
	flagDB     string
	flagFormat string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:           "frond",
	Short:         "Completion-suggestion formatting over a symbol snapshot",
	Long:          "Frond loads resolver snapshots into a SQLite database and formats ranked, editor-ready completion suggestions from them.",
	SilenceErrors: true,
	SilenceUsage:  true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return validateFormat(flagFormat)
	},
	// No Run — prints help by default.
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagDB, "db", "", "database path (default: .frond/index.db relative to repo root)")
	rootCmd.PersistentFlags().StringVar(&flagFormat, "format", "json", "output format: json|text")

	rootCmd.AddCommand(loadCmd)
	rootCmd.AddCommand(suggestCmd)
}

var (
	flagPrefix string
	flagOffset int
	flagPolicy string
)

var suggestCmd = &cobra.Command{
	Use:   "suggest <file>",
	Short: "Print ranked completion suggestions for a file",
	Long:  "Formats suggestion records for symbols declared in the given file. Address the completion point with --prefix, or with --offset to locate the identifier prefix in the source via tree-sitter.",
	Args:  cobra.ExactArgs(1),
	RunE:  runSuggest,
}

func init() {
	suggestCmd.Flags().StringVar(&flagPrefix, "prefix", "", "identifier prefix to complete")
	suggestCmd.Flags().IntVar(&flagOffset, "offset", -1, "byte offset in the source file to complete at")
	suggestCmd.Flags().StringVar(&flagPolicy, "policy", "", "Risor relevance-policy script path")
}

func runSuggest(cmd *cobra.Command, args []string) error {
	file, err := filepath.Abs(args[0])
	if err != nil {
		return fmt.Errorf("resolving path %q: %w", args[0], err)
	}

	var opts []frond.Option
	if flagPolicy != "" {
		src, err := os.ReadFile(flagPolicy)
		if err != nil {
			return fmt.Errorf("reading policy script: %w", err)
		}
		opts = append(opts, frond.WithRelevancePolicy(string(src)))
	}

	engine, err := frond.New(resolveDBPath(findRepoRoot(filepath.Dir(file))), opts...)
	if err != nil {
		return fmt.Errorf("creating engine: %w", err)
	}
	defer engine.Close()

	ctx := context.Background()

	var suggestions []*frond.Suggestion
	if flagOffset >= 0 {
		suggestions, err = engine.SuggestAt(ctx, file, flagOffset)
	} else {
		suggestions, err = engine.Suggest(ctx, file, flagPrefix)
	}
	if err != nil {
		return err
	}

	return outputResult(CLIResult{
		Command: "suggest",
		Results: toCLISuggestions(suggestions),
	})
}

// findRepoRoot walks up from startDir looking for a .git directory.
// Returns the directory containing .git, or startDir if not found.
func findRepoRoot(startDir string) string {
	dir := startDir
	for {
		if info, err := os.Stat(filepath.Join(dir, ".git")); err == nil && info.IsDir() {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			// Reached filesystem root without finding .git.
			return startDir
		}
		dir = parent
	}
}

// resolveDBPath returns the database path from the --db flag or the default.
func resolveDBPath(repoRoot string) string {
	if flagDB != "" {
		if filepath.IsAbs(flagDB) {
			return flagDB
		}
		return filepath.Join(repoRoot, flagDB)
	}
	return filepath.Join(repoRoot, ".frond", "index.db")
}
