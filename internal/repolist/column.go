package repolist

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/repols/repols/internal/format"
	"github.com/repols/repols/internal/git"
	"github.com/repols/repols/internal/scan"
)

// Align is a column's horizontal alignment.
type Align int

const (
	AlignLeft Align = iota
	AlignRight
)

// Emphasis names the rule under which a renderer highlights a cell.
type Emphasis int

const (
	EmphasisNone     Emphasis = iota
	EmphasisNonZero           // numeric cell above zero
	EmphasisAboveOne          // numeric cell above one
	EmphasisDirty             // trailing -dirty marker
)

// DirtySuffix is the marker git appends to a description of a working
// tree with uncommitted changes.
const DirtySuffix = "-dirty"

// overflowCell stands in for any count too large for a single digit.
const overflowCell = "+"

// ColumnSpec describes one summary column: identity, layout hints, and
// the compute function producing a cell for a repository. Compute
// receives the repository explicitly and must return "" for absent
// data; it never fails.
type ColumnSpec struct {
	Key      string
	Title    string
	Width    int // max display width, 0 = unbounded
	Align    Align
	Emphasis Emphasis
	Compute  func(ctx context.Context, repo scan.Repo) string
}

// Emphasized reports whether a rendered cell value triggers the
// column's emphasis rule. Numeric cells capped at "+" always qualify.
func (c ColumnSpec) Emphasized(value string) bool {
	switch c.Emphasis {
	case EmphasisNonZero:
		if value == overflowCell {
			return true
		}
		n, err := strconv.Atoi(value)
		return err == nil && n > 0
	case EmphasisAboveOne:
		if value == overflowCell {
			return true
		}
		n, err := strconv.Atoi(value)
		return err == nil && n > 1
	case EmphasisDirty:
		return strings.HasSuffix(value, DirtySuffix)
	}
	return false
}

// registry is the closed set of column kinds, keyed by config name.
var registry = map[string]ColumnSpec{
	"name": {
		Key: "name", Title: "Name", Width: 25,
		Compute: func(_ context.Context, r scan.Repo) string { return r.Name },
	},
	"path": {
		Key: "path", Title: "Path",
		Compute: func(_ context.Context, r scan.Repo) string { return format.HomePath(r.Path) },
	},
	"version": {
		Key: "version", Title: "Version", Width: 25, Emphasis: EmphasisDirty,
		Compute: func(ctx context.Context, r scan.Repo) string { return git.Describe(ctx, r.Path) },
	},
	"branch": {
		Key: "branch", Title: "Branch", Width: 25,
		Compute: computeBranch,
	},
	"upstream": {
		Key: "upstream", Title: "Upstream", Width: 25,
		Compute: func(ctx context.Context, r scan.Repo) string { return git.UpstreamRef(ctx, r.Path) },
	},
	"behind-up": {
		Key: "behind-up", Title: "B<U", Width: 3, Align: AlignRight, Emphasis: EmphasisNonZero,
		Compute: divergence(git.UpstreamRef, pickBehind),
	},
	"ahead-up": {
		Key: "ahead-up", Title: "B>U", Width: 3, Align: AlignRight, Emphasis: EmphasisNonZero,
		Compute: divergence(git.UpstreamRef, pickAhead),
	},
	"behind-pu": {
		Key: "behind-pu", Title: "B<P", Width: 3, Align: AlignRight, Emphasis: EmphasisNonZero,
		Compute: divergence(git.PushRef, pickBehind),
	},
	"ahead-pu": {
		Key: "ahead-pu", Title: "B>P", Width: 3, Align: AlignRight, Emphasis: EmphasisNonZero,
		Compute: divergence(git.PushRef, pickAhead),
	},
	"branches": {
		Key: "branches", Title: "B", Width: 3, Align: AlignRight, Emphasis: EmphasisAboveOne,
		Compute: computeBranchCount,
	},
	"stashes": {
		Key: "stashes", Title: "S", Width: 3, Align: AlignRight, Emphasis: EmphasisNonZero,
		Compute: computeStashCount,
	},
	"flag": {
		Key: "flag", Title: "F", Width: 1,
		Compute: computeFlag,
	},
	"flags": {
		Key: "flags", Title: "NUS", Width: 3,
		Compute: computeFlags,
	},
	"status": {
		Key: "status", Title: "NUS", Width: 3,
		Compute: computeStatus,
	},
}

// registryOrder is the canonical listing order for docs and doctor.
var registryOrder = []string{
	"name", "path", "version", "branch", "upstream",
	"behind-up", "ahead-up", "behind-pu", "ahead-pu",
	"branches", "stashes", "flag", "flags", "status",
}

// Column returns the column kind registered under key.
func Column(key string) (ColumnSpec, bool) {
	c, ok := registry[key]
	return c, ok
}

// Columns resolves keys against the registry, preserving order. An
// unknown key is an error naming it.
func Columns(keys []string) ([]ColumnSpec, error) {
	cols := make([]ColumnSpec, 0, len(keys))
	for _, key := range keys {
		c, ok := registry[key]
		if !ok {
			return nil, fmt.Errorf("unknown column %q (known: %s)", key, strings.Join(ColumnKeys(), ", "))
		}
		cols = append(cols, c)
	}
	return cols, nil
}

// ColumnKeys returns all registered column keys in canonical order.
func ColumnKeys() []string {
	return append([]string(nil), registryOrder...)
}

func computeBranch(ctx context.Context, r scan.Repo) string {
	branch, err := git.CurrentBranch(ctx, r.Path)
	if err != nil {
		return ""
	}
	return branch
}

func pickAhead(ahead, behind int) int  { return ahead }
func pickBehind(ahead, behind int) int { return behind }

// divergence builds a compute for a count of commits between HEAD and
// the ref named by refOf. No ref configured means an empty cell.
func divergence(refOf func(context.Context, string) string, pick func(ahead, behind int) int) func(context.Context, scan.Repo) string {
	return func(ctx context.Context, r scan.Repo) string {
		ref := refOf(ctx, r.Path)
		if ref == "" {
			return ""
		}
		ahead, behind, err := git.AheadBehind(ctx, r.Path, ref)
		if err != nil {
			return ""
		}
		return strconv.Itoa(pick(ahead, behind))
	}
}

func computeBranchCount(ctx context.Context, r scan.Repo) string {
	branches, err := git.LocalBranches(ctx, r.Path)
	if err != nil {
		return ""
	}
	return strconv.Itoa(len(branches))
}

func computeStashCount(ctx context.Context, r scan.Repo) string {
	stashes, err := git.Stashes(ctx, r.Path)
	if err != nil {
		return ""
	}
	return strconv.Itoa(len(stashes))
}

// treeCounts are the untracked, unstaged, and staged file counts; -1
// marks a failed query.
type treeCounts [3]int

func countTree(ctx context.Context, path string) treeCounts {
	counts := treeCounts{-1, -1, -1}
	queries := []func(context.Context, string) ([]string, error){
		git.UntrackedFiles, git.UnstagedFiles, git.StagedFiles,
	}
	for i, query := range queries {
		if files, err := query(ctx, path); err == nil {
			counts[i] = len(files)
		}
	}
	return counts
}

func computeFlag(ctx context.Context, r scan.Repo) string {
	return countTree(ctx, r.Path).flag()
}

func computeFlags(ctx context.Context, r scan.Repo) string {
	return countTree(ctx, r.Path).flags()
}

func computeStatus(ctx context.Context, r scan.Repo) string {
	return countTree(ctx, r.Path).status()
}

var treeLetters = [3]string{"N", "U", "S"}

// flag renders the first matching working-tree letter: N for untracked
// files, else U for unstaged changes, else S for staged changes, else
// an empty cell.
func (c treeCounts) flag() string {
	for i, letter := range treeLetters {
		if c[i] > 0 {
			return letter
		}
	}
	return ""
}

// flags renders all three working-tree letters in fixed N, U, S order,
// keeping a blank at the position of a clean predicate.
func (c treeCounts) flags() string {
	var b strings.Builder
	for i, letter := range treeLetters {
		if c[i] > 0 {
			b.WriteString(letter)
		} else {
			b.WriteString(" ")
		}
	}
	return strings.TrimRight(b.String(), " ")
}

// status renders the three working-tree counts in fixed N, U, S order
// using numeric cells: blank for zero or absent, the digit for one
// through nine, "+" above nine.
func (c treeCounts) status() string {
	var b strings.Builder
	for _, n := range c {
		b.WriteString(numericCell(n))
	}
	return strings.TrimRight(b.String(), " ")
}

// numericCell renders a count as a single character: blank for zero or
// a failed query, the digit for 1-9, "+" for anything larger.
func numericCell(n int) string {
	switch {
	case n <= 0:
		return " "
	case n <= 9:
		return strconv.Itoa(n)
	default:
		return overflowCell
	}
}
