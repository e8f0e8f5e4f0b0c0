package pager

// ScrollMetrics describes the cursor position within a rendered list.
// It is deliberately decoupled from any rendering surface so the
// next-page trigger stays testable.
type ScrollMetrics struct {
	Cursor    int // index of the selected row, 0-based
	ItemCount int // rows currently rendered
	Threshold int // rows from the bottom that arm the trigger
}

// ShouldFetchNextPage reports whether the cursor is close enough to the
// bottom of the list to warrant fetching the next page. Whether a fetch
// actually fires is still gated by the pager's Begin (in-flight guard and
// hasMore).
func ShouldFetchNextPage(m ScrollMetrics) bool {
	if m.ItemCount == 0 {
		return false
	}
	threshold := m.Threshold
	if threshold < 1 {
		threshold = 1
	}
	return m.Cursor >= m.ItemCount-threshold
}
