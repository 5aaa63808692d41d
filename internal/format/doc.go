// Package format holds display formatting helpers shared by the table
// renderer and the status view.
//
// [HomePath] abbreviates paths under the user's home directory with
// "~". [Truncate] caps cell values at a display width, counting visible
// columns rather than bytes so styled values are cut correctly.
package format
