// Package hintbox composes an editor with a caret-anchored hint dropdown.
//
// The widget owns the editor: it installs its own change handler, detects the
// word being typed, filters the configured candidates and draws the matches in
// a popup just below (or above) the caret. Keyboard and pointer input drive
// the selection; confirming replaces the in-progress word with the candidate.
package hintbox
