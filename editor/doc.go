// Package editor provides a Bubble Tea text editor component backed by the
// buffer package.
//
// Besides plain editing, the editor routes bold/italic toggles, list toggles
// and Enter through the session package, so styled text and list markers are
// produced by the same engine the CLI uses. Hosts observe edits through
// OnChange and formatting actions through OnAction.
package editor
