// Package output persists rendered documents and shows them to the user.
//
// Terminal mode writes its standalone page to a fixed artifact,
// ~/Downloads/tonetint_output.html, overwritten on every run, and then opens
// it in the default browser. Writing and opening are separate steps so hosts
// can skip either.
package output
