package state

import (
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// AppendQuery extends the type-ahead query and moves the cursor to the best
// matching row. Rows are never hidden. It reports whether the cursor moved.
func (l *List) AppendQuery(text string, labels []string) bool {
	if text == "" {
		return false
	}
	l.Query += text
	return l.jump(labels)
}

// DeleteQueryRune removes the last rune of the query and re-runs the jump.
func (l *List) DeleteQueryRune(labels []string) bool {
	runes := []rune(l.Query)
	if len(runes) == 0 {
		return false
	}
	l.Query = string(runes[:len(runes)-1])
	if strings.TrimSpace(l.Query) == "" {
		return false
	}
	return l.jump(labels)
}

// ClearQuery drops the query and leaves the cursor where it is.
func (l *List) ClearQuery() bool {
	if l.Query == "" {
		return false
	}
	l.LastQuery = l.Query
	l.Query = ""
	return true
}

func (l *List) jump(labels []string) bool {
	idx := BestMatchIndex(labels, l.Query)
	if idx < 0 || idx == l.Cursor {
		return false
	}
	l.Cursor = idx
	l.refreshFollow()
	return true
}

// BestMatchIndex returns the best row for query: exact match first, then
// prefix, then substring, then the closest fuzzy match. Ties go to the newest
// row since later entries are usually the more complete ones. It returns -1
// when nothing matches.
func BestMatchIndex(labels []string, query string) int {
	trimmed := strings.TrimSpace(query)
	if trimmed == "" || len(labels) == 0 {
		return -1
	}
	lower := strings.ToLower(trimmed)
	for i := len(labels) - 1; i >= 0; i-- {
		if strings.EqualFold(labels[i], trimmed) {
			return i
		}
	}
	for i := len(labels) - 1; i >= 0; i-- {
		if strings.HasPrefix(strings.ToLower(labels[i]), lower) {
			return i
		}
	}
	for i := len(labels) - 1; i >= 0; i-- {
		if strings.Contains(strings.ToLower(labels[i]), lower) {
			return i
		}
	}
	ranks := fuzzy.RankFindNormalizedFold(trimmed, labels)
	if len(ranks) == 0 {
		return -1
	}
	best := ranks[0]
	for _, rank := range ranks[1:] {
		if rank.Distance < best.Distance {
			best = rank
			continue
		}
		if rank.Distance == best.Distance && rank.OriginalIndex > best.OriginalIndex {
			best = rank
		}
	}
	if best.OriginalIndex < 0 || best.OriginalIndex >= len(labels) {
		return -1
	}
	return best.OriginalIndex
}
