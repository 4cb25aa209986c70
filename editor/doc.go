// Package editor provides a Bubble Tea text editor component backed by the
// buffer package.
//
// The package is responsible for input handling, viewport behavior,
// cell-accurate rendering, and host integration hooks (highlighting, change
// events, and the Surface description overlays use to line up with the text).
package editor
