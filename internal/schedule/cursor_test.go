package schedule

import "testing"

func TestCursor(t *testing.T) {
	c := newCursor([]string{"a", "b", "c"})

	if c.done() {
		t.Fatal("fresh cursor must not be done")
	}
	if c.line() != "a" {
		t.Errorf("expected current line 'a', got %q", c.line())
	}

	if line, ok := c.peek(2); !ok || line != "c" {
		t.Errorf("peek(2) = %q, %v", line, ok)
	}
	if _, ok := c.peek(3); ok {
		t.Error("peek past the end must report not-ok")
	}

	c.advance()
	if c.line() != "b" {
		t.Errorf("expected 'b' after advance, got %q", c.line())
	}

	c.skip(5)
	if !c.done() {
		t.Error("skip past the end must exhaust the cursor")
	}
	if c.line() != "" {
		t.Errorf("exhausted cursor line must be empty, got %q", c.line())
	}

	// advance on an exhausted cursor is a no-op
	c.advance()
	if !c.done() {
		t.Error("advance on exhausted cursor must stay done")
	}
}
