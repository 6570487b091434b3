package fstree

// RootName is the name of the root directory.
const RootName = "/"

// FileSystem owns the root directory of a tree.
type FileSystem struct {
	root *Dir
}

// New returns a FileSystem holding an empty root directory.
func New() *FileSystem {
	return &FileSystem{root: &Dir{name: RootName}}
}

func (fs *FileSystem) Root() *Dir {
	return fs.root
}
