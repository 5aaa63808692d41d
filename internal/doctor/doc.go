// Package doctor diagnoses the repols environment and configuration.
//
// The doctor package detects (but does not repair) issues including:
//
//   - Environment issues: git missing from PATH.
//
//   - Config issues: a config file that does not parse, styles referencing
//     unknown columns, cycle entries naming unknown styles, and an unknown
//     sort column.
//
//   - Root issues: configured scan roots that are missing or not
//     directories.
//
// # Usage
//
// Run diagnostics:
//
//	err := doctor.Run(ctx)
//
// The report goes to the printer carried by ctx. A clean run ends with
// "No issues found"; otherwise issues are listed grouped by category.
// Doctor loads the config itself so that a parse failure shows up as a
// reported issue instead of aborting the command.
package doctor
