// Command testdoc writes docs/TESTS.md from the doc comments of the
// test suite. Integration tests document themselves with Scenario and
// Expected lines; this tool collects them into one catalog so the
// suite doubles as behavior documentation.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

func main() {
	root := flag.String("root", ".", "module root to scan")
	out := flag.String("out", "docs/TESTS.md", "catalog file to write")
	unit := flag.Bool("unit", false, "include plain unit tests as well")
	flag.Parse()

	if err := run(*root, *out, *unit); err != nil {
		fmt.Fprintln(os.Stderr, "testdoc:", err)
		os.Exit(1)
	}
}

func run(root, outPath string, unit bool) error {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return err
	}
	byPkg, err := collect(absRoot, unit)
	if err != nil {
		return err
	}
	if len(byPkg) == 0 {
		return fmt.Errorf("no tests found under %s", absRoot)
	}

	if dir := filepath.Dir(outPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	doc, total := render(byPkg)
	if err := os.WriteFile(outPath, []byte(doc), 0o644); err != nil {
		return err
	}
	fmt.Printf("wrote %s: %d tests in %d packages\n", outPath, total, len(byPkg))
	return nil
}

// render produces the catalog markdown and the total test count.
func render(byPkg map[string][]testCase) (string, int) {
	pkgs := make([]string, 0, len(byPkg))
	for pkg := range byPkg {
		pkgs = append(pkgs, pkg)
	}
	sort.Strings(pkgs)

	var b strings.Builder
	b.WriteString("# Test catalog\n\n")
	b.WriteString("Generated from test doc comments by `go run ./tools/testdoc`.\n")
	b.WriteString("Each entry names the scenario a test builds and what it verifies.\n")

	total := 0
	for _, pkg := range pkgs {
		cases := byPkg[pkg]
		total += len(cases)
		fmt.Fprintf(&b, "\n## %s (%d)\n", pkg, len(cases))
		for _, tc := range cases {
			fmt.Fprintf(&b, "\n### %s\n\n", tc.Name)
			if tc.Command != "" {
				fmt.Fprintf(&b, "`%s` ", tc.Command)
			}
			fmt.Fprintf(&b, "(%s:%d)\n", tc.File, tc.Line)
			if tc.Summary != "" {
				fmt.Fprintf(&b, "\n%s\n", tc.Summary)
			}
			if tc.Scenario != "" {
				fmt.Fprintf(&b, "\n- Scenario: %s\n", tc.Scenario)
			}
			if tc.Expected != "" {
				fmt.Fprintf(&b, "- Expected: %s\n", tc.Expected)
			}
		}
	}
	return b.String(), total
}
