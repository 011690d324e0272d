package pagination

import "fmt"

const (
	DefaultLimit = 20
	MaxLimit     = 100
)

// Params holds a limit/offset window over an ordered result.
type Params struct {
	Limit  int
	Offset int
}

// New normalizes raw limit and offset values, typically from CLI flags.
func New(limit, offset int) Params {
	if limit <= 0 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}
	if offset < 0 {
		offset = 0
	}
	return Params{Limit: limit, Offset: offset}
}

// Bounds returns the half-open [start, end) index range of the window over
// total items, clamped to the collection.
func (p Params) Bounds(total int) (start, end int) {
	start = p.Offset
	if start > total {
		start = total
	}
	end = start + p.Limit
	if end > total {
		end = total
	}
	return start, end
}

// Page returns the window of items selected by p.
func Page[T any](items []T, p Params) []T {
	start, end := p.Bounds(len(items))
	return items[start:end]
}

// HasNext returns true if there are more results after the current page.
func (p Params) HasNext(total int) bool {
	return p.Offset+p.Limit < total
}

// HasPrevious returns true if there are results before the current page.
func (p Params) HasPrevious() bool {
	return p.Offset > 0
}

// NextOffset returns the offset for the next page.
func (p Params) NextOffset() int {
	return p.Offset + p.Limit
}

// PreviousOffset returns the offset for the previous page.
// Returns 0 if the result would be negative.
func (p Params) PreviousOffset() int {
	prev := p.Offset - p.Limit
	if prev < 0 {
		return 0
	}
	return prev
}

// Footer describes the window for display under a listing, with hints
// for fetching the previous and next pages when they exist.
func (p Params) Footer(total int) string {
	start, end := p.Bounds(total)
	if start == end {
		return fmt.Sprintf("No records in range (total %d).", total)
	}
	msg := fmt.Sprintf("Showing %d-%d of %d.", start+1, end, total)
	if p.HasPrevious() {
		msg += fmt.Sprintf(" Previous page: --offset %d --limit %d", p.PreviousOffset(), p.Limit)
	}
	if p.HasNext(total) {
		msg += fmt.Sprintf(" Next page: --offset %d --limit %d", p.NextOffset(), p.Limit)
	}
	return msg
}
