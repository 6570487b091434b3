package fstree

// File is a leaf of the tree with a fixed size.
type File struct {
	name string
	size int64
}

func (f *File) Name() string {
	return f.name
}

func (f *File) Size() int64 {
	return f.size
}

func (f *File) Walk(fn func(Node) error) error {
	return fn(f)
}
