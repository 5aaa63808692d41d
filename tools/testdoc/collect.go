package main

import (
	"go/ast"
	"go/parser"
	"go/token"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"
)

// testCase is one Test function with the pieces of its doc comment
// the catalog shows.
type testCase struct {
	Name     string
	File     string // basename of the defining file
	Line     int
	Command  string // repols invocation the test exercises, "" when unknown
	Summary  string
	Scenario string
	Expected string
}

// collect gathers test cases below root, grouped by package directory
// relative to root. Only *_integration_test.go files are read unless
// unit is set. Directories the go tool ignores (dot and underscore
// prefixed, testdata, vendor) are skipped.
func collect(root string, unit bool) (map[string][]testCase, error) {
	byPkg := make(map[string][]testCase)

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		name := d.Name()
		if d.IsDir() {
			if path != root && skipDir(name) {
				return filepath.SkipDir
			}
			return nil
		}
		if !strings.HasSuffix(name, "_test.go") {
			return nil
		}
		if !unit && !strings.HasSuffix(name, "_integration_test.go") {
			return nil
		}

		cases, err := readTests(path)
		if err != nil {
			return err
		}
		if len(cases) == 0 {
			return nil
		}
		pkg, err := filepath.Rel(root, filepath.Dir(path))
		if err != nil {
			return err
		}
		byPkg[pkg] = append(byPkg[pkg], cases...)
		return nil
	})
	if err != nil {
		return nil, err
	}

	for _, cases := range byPkg {
		sort.Slice(cases, func(i, j int) bool {
			if cases[i].File != cases[j].File {
				return cases[i].File < cases[j].File
			}
			return cases[i].Line < cases[j].Line
		})
	}
	return byPkg, nil
}

func skipDir(name string) bool {
	return strings.HasPrefix(name, ".") || strings.HasPrefix(name, "_") ||
		name == "testdata" || name == "vendor"
}

// readTests parses one test file and extracts its Test functions.
func readTests(path string) ([]testCase, error) {
	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, path, nil, parser.ParseComments)
	if err != nil {
		return nil, err
	}

	var cases []testCase
	for _, decl := range file.Decls {
		fn, ok := decl.(*ast.FuncDecl)
		if !ok || !isTestFunc(fn) {
			continue
		}
		tc := testCase{
			Name:    fn.Name.Name,
			File:    filepath.Base(path),
			Line:    fset.Position(fn.Pos()).Line,
			Command: commandFor(fn.Name.Name),
		}
		if fn.Doc != nil {
			tc.Summary, tc.Scenario, tc.Expected = splitDoc(fn.Doc.Text())
		}
		cases = append(cases, tc)
	}
	return cases, nil
}

// isTestFunc reports whether fn has a test signature: a Test name and
// a single *testing.T or *testing.B parameter.
func isTestFunc(fn *ast.FuncDecl) bool {
	if !strings.HasPrefix(fn.Name.Name, "Test") {
		return false
	}
	if fn.Type.Params == nil || len(fn.Type.Params.List) != 1 {
		return false
	}
	star, ok := fn.Type.Params.List[0].Type.(*ast.StarExpr)
	if !ok {
		return false
	}
	sel, ok := star.X.(*ast.SelectorExpr)
	if !ok {
		return false
	}
	pkg, ok := sel.X.(*ast.Ident)
	return ok && pkg.Name == "testing" && (sel.Sel.Name == "T" || sel.Sel.Name == "B")
}

// splitDoc separates a test doc comment into the leading summary
// paragraph and the Scenario and Expected sections. Continuation
// lines are joined with single spaces.
func splitDoc(doc string) (summary, scenario, expected string) {
	cur := &summary
	for _, raw := range strings.Split(doc, "\n") {
		line := strings.TrimSpace(raw)
		switch {
		case line == "":
			cur = nil
		case strings.HasPrefix(line, "Scenario:"):
			scenario = strings.TrimSpace(strings.TrimPrefix(line, "Scenario:"))
			cur = &scenario
		case strings.HasPrefix(line, "Expected:"):
			expected = strings.TrimSpace(strings.TrimPrefix(line, "Expected:"))
			cur = &expected
		case cur == nil:
			// Unmarked paragraph after the summary, not part of the catalog.
		case *cur == "":
			*cur = line
		default:
			*cur += " " + line
		}
	}
	return summary, scenario, expected
}

// commandFor maps a test name to the command it exercises, keyed on
// the segment between Test and the first underscore.
func commandFor(name string) string {
	group, _, _ := strings.Cut(strings.TrimPrefix(name, "Test"), "_")
	switch group {
	case "List":
		return "repols list"
	case "Status":
		return "repols status"
	case "Cd":
		return "repols cd"
	case "Config", "ConfigInit", "ConfigShow":
		return "repols config"
	case "Doctor":
		return "repols doctor"
	case "Completion":
		return "repols completion"
	}
	return ""
}
