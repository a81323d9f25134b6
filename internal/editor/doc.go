// Package editor holds the editor state: the text buffer, cursor,
// selection, and mode, together with the closed command set that mutates
// them and the closed event set that reports what changed.
//
// State is the single source of truth. It is not internally synchronized;
// the application owns it behind a reader/writer lock and serializes all
// mutation through one goroutine (see internal/app).
package editor
