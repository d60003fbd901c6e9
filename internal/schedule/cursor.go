package schedule

// cursor is a forward-only reader over an immutable slice of canonical
// lines. All lookahead in the extractor goes through Peek so the scan loop
// never re-derives index arithmetic.
type cursor struct {
	lines []string
	pos   int
}

func newCursor(lines []string) *cursor {
	return &cursor{lines: lines}
}

func (c *cursor) done() bool {
	return c.pos >= len(c.lines)
}

// line returns the current line, or "" when the cursor is exhausted.
func (c *cursor) line() string {
	if c.done() {
		return ""
	}
	return c.lines[c.pos]
}

// peek returns the line k positions ahead of the current one.
// peek(0) is the current line.
func (c *cursor) peek(k int) (string, bool) {
	i := c.pos + k
	if i < 0 || i >= len(c.lines) {
		return "", false
	}
	return c.lines[i], true
}

func (c *cursor) advance() {
	if !c.done() {
		c.pos++
	}
}

// skip advances past n lines.
func (c *cursor) skip(n int) {
	for i := 0; i < n && !c.done(); i++ {
		c.pos++
	}
}
