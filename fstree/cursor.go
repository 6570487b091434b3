package fstree

import (
	"fmt"
	"strings"
)

// Cursor tracks the working directory as a list of names below the root.
// It never holds on to a node, every Resolve starts over at the root.
type Cursor struct {
	segments []string
}

// Push enters the subdirectory called name.  Existence is not checked.
func (c *Cursor) Push(name string) {
	c.segments = append(c.segments, name)
}

// Pop leaves the current directory.  Popping at the root does nothing.
func (c *Cursor) Pop() {
	if len(c.segments) == 0 {
		return
	}
	c.segments = c.segments[:len(c.segments)-1]
}

// Reset moves the cursor back to the root.
func (c *Cursor) Reset() {
	c.segments = c.segments[:0]
}

// Segments returns a copy of the path segments.
func (c *Cursor) Segments() []string {
	return append([]string(nil), c.segments...)
}

// Path returns the absolute path of the cursor, e.g. /a/e.
func (c *Cursor) Path() string {
	return RootName + strings.Join(c.segments, "/")
}

// Resolve looks up the directory the cursor points at.
func (c *Cursor) Resolve(root *Dir) (*Dir, error) {
	current := root
	for i, name := range c.segments {
		next, ok := current.Child(name).(*Dir)
		if !ok {
			return nil, fmt.Errorf(
				"%q of %q: %w",
				RootName+strings.Join(c.segments[:i+1], "/"),
				c.Path(),
				ErrNotFound,
			)
		}
		current = next
	}

	return current, nil
}
