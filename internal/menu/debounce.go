package menu

// Debouncer coalesces bursts of resize observations. Each observation returns
// a token; only the newest token settles.
type Debouncer struct {
	seq   uint64
	width int
}

// Observe records a width and returns the token to settle later
func (d *Debouncer) Observe(width int) uint64 {
	d.seq++
	d.width = width
	return d.seq
}

// Settle returns the final width if token is still the newest observation.
// A token settles at most once.
func (d *Debouncer) Settle(token uint64) (int, bool) {
	if token == 0 || token != d.seq {
		return 0, false
	}
	d.seq++
	return d.width, true
}
