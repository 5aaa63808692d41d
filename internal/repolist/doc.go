// Package repolist computes tabular summaries of git repositories.
//
// A [ColumnSpec] names one summary column and how to compute its cell
// for a repository; the closed set of known columns is resolved with
// [Columns]. [Build] turns repositories and columns into display rows,
// strictly one repository and one column at a time. Named column
// selections are grouped into [Style] presets that a [Session] cycles
// through.
//
// The package produces plain strings only. Alignment, widths, and
// emphasis are carried as data on the column; applying them is the
// renderer's concern.
package repolist
