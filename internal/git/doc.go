// Package git provides read-only repository inspection via shell commands.
//
// All queries use [os/exec.Command] to call the git CLI directly rather than
// using Go git libraries. This approach is simpler, more reliable, and ensures
// compatibility with user configurations (SSH keys, worktree layouts, aliases).
//
// Every query takes the repository directory explicitly; nothing depends on
// the process working directory. Commands run as "git -C <dir> ..." with the
// caller's context, so an interrupt aborts the in-flight subprocess.
//
// # Repository Queries
//
//   - [Describe]: Version from the nearest tag, with pseudo-version fallback
//   - [CurrentBranch], [UpstreamRef], [PushRef]: Branch and tracking refs
//   - [AheadBehind]: Commit divergence against an arbitrary ref
//   - [LocalBranches], [Stashes]: Ref and stash enumeration
//
// # Working Tree Queries
//
//   - [UntrackedFiles]: Files unknown to the index
//   - [UnstagedFiles]: Tracked files with unstaged modifications
//   - [StagedFiles]: Files with staged modifications
//
// # Environment
//
//   - [CheckGit]: Verify the git binary is on PATH
//   - [IsRepoDir]: The .git marker probe (directory or worktree file)
//   - [TopLevel]: The repository enclosing a directory
package git
