package service

import "strings"

// Debounce collapses rapid successive input triggers into a single
// delayed dispatch carrying only the latest input. Each Arm supersedes
// every earlier one; when a timer fires, the dispatch runs only if its
// generation is still current. Confined to the UI event loop, so no
// locking.
type Debounce struct {
	gen   int
	query string
}

// Arm records the latest input and returns the generation token the
// timer callback must present to Fire
func (d *Debounce) Arm(query string) int {
	d.gen++
	d.query = strings.TrimSpace(query)
	return d.gen
}

// Fire reports whether the dispatch for generation gen should still run,
// and if so, with what input. Superseded generations return ok=false and
// are dropped, not executed.
func (d *Debounce) Fire(gen int) (query string, ok bool) {
	if gen != d.gen || d.query == "" {
		return "", false
	}
	return d.query, true
}

// Cancel invalidates any pending dispatch
func (d *Debounce) Cancel() {
	d.gen++
	d.query = ""
}
