// Package fstree models a filesystem as a tree of directories and sized files.
package fstree

import (
	"errors"
	"fmt"
)

// ErrAlreadyExists indicates that the parent already has an entry with the requested name.
var ErrAlreadyExists = errors.New("entry already exists")

// ErrInvalidTarget indicates that an entry was about to be created below a non-directory node.
var ErrInvalidTarget = errors.New("invalid target")

// ErrNegativeSize indicates that a file was given a size below zero.
var ErrNegativeSize = errors.New("file size must not be negative")

// ErrNotFound indicates that a path does not resolve to a directory.
var ErrNotFound = errors.New("path not found")

// Node is either a *File or a *Dir.
type Node interface {
	// Name returns the name of the node, not its path.
	Name() string
	// Size returns the size of a file, or the accumulated size of a directory.
	Size() int64
	// Walk calls fn for every node in the (sub-)tree, in pre-order.
	Walk(fn func(Node) error) error
}

// CreateFile adds a file to parent.  If parent already holds an entry called name
// ErrAlreadyExists is returned and the tree is left untouched.
func CreateFile(parent Node, name string, size int64) error {
	if size < 0 {
		return fmt.Errorf("%q: %w", name, ErrNegativeSize)
	}

	switch p := parent.(type) {
	case *Dir:
		return p.add(&File{name: name, size: size})
	default:
		return fmt.Errorf("creating file %q below %T: %w", name, parent, ErrInvalidTarget)
	}
}

// CreateDir adds an empty directory to parent, following the same rules as CreateFile.
func CreateDir(parent Node, name string) error {
	switch p := parent.(type) {
	case *Dir:
		return p.add(&Dir{name: name})
	default:
		return fmt.Errorf("creating directory %q below %T: %w", name, parent, ErrInvalidTarget)
	}
}
