// Package resolve maps user input to a repository.
//
// Commands that take a repository argument accept either a display name
// from the current listing or a directory path. Names win: input is first
// matched against the scanned repositories, and only when no name matches
// is it treated as a path. Relative paths resolve against the command's
// working directory, ~ against the user's home.
//
// Resolution does not require the path to be a repository. Commands that
// need one surface the git error themselves, which keeps "repols status ."
// usable in any directory.
package resolve
