package fstree

import (
	"fmt"
	"math"
)

// Dir is a directory owning its children.  Child names are unique within a directory.
type Dir struct {
	name     string
	children []Node
}

func (d *Dir) Name() string {
	return d.name
}

// Size sums up the sizes of all children.  Nothing is cached, every call walks the subtree.
// Sums beyond math.MaxInt64 are capped at math.MaxInt64.
func (d *Dir) Size() int64 {
	var size int64
	for _, child := range d.children {
		childSize := child.Size()
		if size > math.MaxInt64-childSize {
			return math.MaxInt64
		}
		size += childSize
	}

	return size
}

// Children returns a copy of the entries of the directory in creation order.
func (d *Dir) Children() []Node {
	children := make([]Node, len(d.children))
	copy(children, d.children)

	return children
}

// Child returns the entry called name, or nil.
func (d *Dir) Child(name string) Node {
	for _, child := range d.children {
		if child.Name() == name {
			return child
		}
	}

	return nil
}

func (d *Dir) Walk(fn func(Node) error) error {
	err := fn(d)
	if err != nil {
		return err
	}

	for _, child := range d.children {
		err = child.Walk(fn)
		if err != nil {
			return err
		}
	}

	return nil
}

func (d *Dir) add(node Node) error {
	if d.Child(node.Name()) != nil {
		return fmt.Errorf("%q in %q: %w", node.Name(), d.name, ErrAlreadyExists)
	}
	d.children = append(d.children, node)

	return nil
}
