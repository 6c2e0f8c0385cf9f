// Package gamelog holds the player-facing message log of a session.
package gamelog

import "github.com/leonelquinteros/gotext"

// Log is an ordered, append-only list of messages.
type Log struct {
	Entries []string
}

// New creates a log seeded with the given messages.
func New(initial ...string) *Log {
	entries := make([]string, 0, len(initial)+16)
	return &Log{Entries: append(entries, initial...)}
}

// Say appends a message. The format is looked up in the active gotext
// catalogue; without one it is used as is.
func (l *Log) Say(format string, args ...any) {
	l.Entries = append(l.Entries, gotext.Get(format, args...))
}

// Len returns the number of entries.
func (l *Log) Len() int {
	return len(l.Entries)
}

// Last returns up to n of the most recent entries, newest first.
func (l *Log) Last(n int) []string {
	n = min(n, len(l.Entries))
	out := make([]string, 0, n)
	for i := len(l.Entries) - 1; i >= len(l.Entries)-n; i-- {
		out = append(out, l.Entries[i])
	}
	return out
}

// Configure loads the message catalogue for lang from dir. An empty dir keeps
// the built-in English strings.
func Configure(dir, lang string) {
	if dir == "" {
		return
	}
	gotext.Configure(dir, lang, "tetra")
}

// Add appends a message that has already been formatted.
func (l *Log) Add(message string) {
	l.Entries = append(l.Entries, message)
}
