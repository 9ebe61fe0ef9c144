package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"

	xdgadapter "github.com/bnema/kkc-shortcuts/internal/infrastructure/xdg"
)

const dirPerm = 0o755

var (
	genDocsOutputDir string
	genDocsFormat    string
)

// docFormat describes one gen-docs output.
type docFormat struct {
	ext        string
	defaultDir func() (string, error)
	generate   func(root *cobra.Command, dir string) error
	hint       string
}

var docFormats = map[string]docFormat{
	"man": {
		ext:        ".1",
		defaultDir: xdgadapter.New().ManDir,
		generate: func(root *cobra.Command, dir string) error {
			return doc.GenManTree(root, manHeader(), dir)
		},
		hint: "Run 'mandb' if 'man kkc-shortcuts' does not find the pages yet.",
	},
	"markdown": {
		ext:        ".md",
		defaultDir: func() (string, error) { return "./docs", nil },
		generate:   doc.GenMarkdownTree,
	},
}

var genDocsCmd = &cobra.Command{
	Use:   "gen-docs",
	Short: "Generate man pages or markdown for every command",
	Long: `Write one page per command, built from the command tree: names,
aliases, descriptions, flags and examples.

Formats:
  man       groff manual pages, installed under $XDG_DATA_HOME/man/man1
            so 'man kkc-shortcuts' works right away
  markdown  one .md file per command, written to ./docs`,
	Example: `  kkc-shortcuts gen-docs
  kkc-shortcuts gen-docs --format markdown
  kkc-shortcuts gen-docs --output ./man`,
	RunE: runGenDocs,
}

func init() {
	rootCmd.AddCommand(genDocsCmd)
	genDocsCmd.Flags().StringVarP(&genDocsOutputDir, "output", "o", "", "Output directory (default depends on format)")
	genDocsCmd.Flags().StringVarP(&genDocsFormat, "format", "f", "man", "Output format: man, markdown")
}

func runGenDocs(cmd *cobra.Command, _ []string) error {
	format, ok := docFormats[genDocsFormat]
	if !ok {
		return fmt.Errorf("unsupported format %q (use: man, markdown)", genDocsFormat)
	}

	dir := genDocsOutputDir
	if dir == "" {
		var err error
		if dir, err = format.defaultDir(); err != nil {
			return fmt.Errorf("resolve output directory: %w", err)
		}
	}
	if err := os.MkdirAll(dir, dirPerm); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	// Without the generated-by footer, reruns produce identical files.
	rootCmd.DisableAutoGenTag = true
	if err := format.generate(rootCmd, dir); err != nil {
		return fmt.Errorf("generate %s docs: %w", genDocsFormat, err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Wrote %s docs to %s\n", genDocsFormat, dir)
	printGenerated(out, dir, format.ext)
	if format.hint != "" {
		fmt.Fprintln(out, format.hint)
	}
	return nil
}

// manHeader dates the pages with the build date when it is known.
func manHeader() *doc.GenManHeader {
	date := time.Now()
	if t, err := time.Parse(time.RFC3339, buildInfo.BuildDate); err == nil {
		date = t
	}
	return &doc.GenManHeader{
		Title:   "KKC-SHORTCUTS",
		Section: "1",
		Source:  "kkc-shortcuts " + buildInfo.Version,
		Manual:  "kkc-shortcuts Manual",
		Date:    &date,
	}
}

// printGenerated lists the files with ext in dir. The docs are already
// written, so a read error only skips the listing.
func printGenerated(w io.Writer, dir, ext string) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if filepath.Ext(e.Name()) == ext {
			names = append(names, e.Name())
		}
	}
	slices.Sort(names)
	for _, n := range names {
		fmt.Fprintf(w, "  - %s\n", n)
	}
}
