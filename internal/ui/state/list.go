package state

// List tracks cursor, viewport and type-ahead state for a list of Count rows.
// The rows themselves live elsewhere; List only deals in indices.
type List struct {
	Count          int
	Cursor         int
	ViewportOffset int
	// Follow keeps the cursor on the newest row as rows are added. Any
	// explicit cursor movement away from the last row turns it off.
	Follow    bool
	Query     string
	LastQuery string
}

// NewList returns an empty list that follows new rows.
func NewList() *List {
	return &List{Follow: true}
}

// SetCount updates the row count and clamps cursor and viewport to it.
func (l *List) SetCount(n int) {
	if n < 0 {
		n = 0
	}
	l.Count = n
	if n == 0 {
		l.Cursor = 0
		l.ViewportOffset = 0
		return
	}
	if l.Follow {
		l.Cursor = n - 1
		return
	}
	if l.Cursor >= n {
		l.Cursor = n - 1
	}
	if l.Cursor < 0 {
		l.Cursor = 0
	}
	if l.ViewportOffset > n-1 {
		l.ViewportOffset = 0
	}
}

func (l *List) refreshFollow() {
	l.Follow = l.Count == 0 || l.Cursor == l.Count-1
}
