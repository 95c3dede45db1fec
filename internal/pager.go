package internal

// PageCursor walks the pages of a comic one at a time. Positions are 1-based and
// always clamped to [1, Total].
type PageCursor struct {
	pages   []string
	current int
}

// NewPageCursor starts a cursor on the first page of the paginated script
func NewPageCursor(script string) *PageCursor {
	return &PageCursor{pages: Paginate(script), current: 1}
}

// Current returns the 1-based page number
func (c *PageCursor) Current() int { return c.current }

// Total returns the number of pages
func (c *PageCursor) Total() int { return len(c.pages) }

// Page returns the text of the current page
func (c *PageCursor) Page() string { return c.pages[c.current-1] }

// Next moves forward one page, stopping at the last page
func (c *PageCursor) Next() bool {
	if c.current >= len(c.pages) {
		return false
	}
	c.current++
	return true
}

// Prev moves back one page, stopping at the first page
func (c *PageCursor) Prev() bool {
	if c.current <= 1 {
		return false
	}
	c.current--
	return true
}

// Seek jumps to page n, clamped to the valid range
func (c *PageCursor) Seek(n int) {
	switch {
	case n < 1:
		c.current = 1
	case n > len(c.pages):
		c.current = len(c.pages)
	default:
		c.current = n
	}
}

// Reset goes back to the first page
func (c *PageCursor) Reset() { c.current = 1 }
