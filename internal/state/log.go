package state

// LogStore is the read-only view of the typed-text log handed to renderers.
type LogStore interface {
	Len() int
	At(int) string
	Entries() []string
}

// Log is an append-only sequence of text-field values in insertion order.
// Duplicates are kept.
type Log struct {
	entries []string
}

// NewLog returns an empty log.
func NewLog() *Log {
	return &Log{}
}

// Append adds text to the end of the log.
func (l *Log) Append(text string) {
	l.entries = append(l.entries, text)
}

// Len reports the number of entries.
func (l *Log) Len() int {
	if l == nil {
		return 0
	}
	return len(l.entries)
}

// At returns the entry at index i, or "" when i is out of range.
func (l *Log) At(i int) string {
	if l == nil || i < 0 || i >= len(l.entries) {
		return ""
	}
	return l.entries[i]
}

// Last returns the most recent entry.
func (l *Log) Last() (string, bool) {
	if l.Len() == 0 {
		return "", false
	}
	return l.entries[len(l.entries)-1], true
}

// Entries returns a copy of every entry.
func (l *Log) Entries() []string {
	if l == nil {
		return []string{}
	}
	return cloneEntries(l.entries)
}

func cloneEntries(entries []string) []string {
	dup := make([]string, len(entries))
	copy(dup, entries)
	return dup
}
