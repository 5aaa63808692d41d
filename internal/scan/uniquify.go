package scan

import (
	"path/filepath"
)

// Separator joins a display name and the ancestor segments that
// disambiguate it, as in "proj\work".
const Separator = `\`

type entry struct {
	name string // display name built so far
	rest string // ancestor path not yet consumed
	path string // repository path, unchanged
}

// Uniquify rewrites repo names so that repositories sharing a basename
// become distinguishable: colliding names grow by one ancestor segment
// per round ("proj", then "proj\work", then "proj\work\u"), innermost
// ancestor first. Names that are already unique are final. An entry
// whose ancestors are exhausted keeps its name even if it still
// collides. Entries with identical name and path collapse to one.
//
// The input order is preserved and collision-free input is returned
// unchanged, so Uniquify is idempotent.
func Uniquify(repos []Repo) []Repo {
	seen := make(map[Repo]bool, len(repos))
	entries := make([]*entry, 0, len(repos))
	for _, r := range repos {
		name := r.Name
		if name == "" {
			name = filepath.Base(r.Path)
		}
		key := Repo{Name: name, Path: r.Path}
		if seen[key] {
			continue
		}
		seen[key] = true
		entries = append(entries, &entry{name: name, rest: filepath.Dir(r.Path), path: r.Path})
	}

	for _, group := range collide(entries) {
		resolve(group)
	}

	out := make([]Repo, len(entries))
	for i, e := range entries {
		out[i] = Repo{Name: e.name, Path: e.path}
	}
	return out
}

// resolve extends every member of a colliding group by one ancestor
// segment, then recurses into the subgroups that still collide. A group
// whose members are all exhausted is left as duplicates.
func resolve(group []*entry) {
	extended := false
	for _, e := range group {
		seg, rest, ok := popSegment(e.rest)
		if !ok {
			continue
		}
		e.name += Separator + seg
		e.rest = rest
		extended = true
	}
	if !extended {
		return
	}
	for _, sub := range collide(group) {
		resolve(sub)
	}
}

// collide buckets entries by current name and returns the groups of two
// or more, in first-seen order.
func collide(entries []*entry) [][]*entry {
	byName := make(map[string][]*entry)
	var order []string
	for _, e := range entries {
		if _, ok := byName[e.name]; !ok {
			order = append(order, e.name)
		}
		byName[e.name] = append(byName[e.name], e)
	}

	var groups [][]*entry
	for _, name := range order {
		if g := byName[name]; len(g) > 1 {
			groups = append(groups, g)
		}
	}
	return groups
}

// popSegment takes the innermost remaining ancestor segment. ok is
// false when no segment remains.
func popSegment(rest string) (seg, remaining string, ok bool) {
	if rest == "" || rest == "/" || rest == "." {
		return "", "", false
	}
	return filepath.Base(rest), filepath.Dir(rest), true
}
