package fstree

import (
	"path"
	"sort"
)

// DirSize pairs a directory with its accumulated size.
type DirSize struct {
	// Name of the directory.
	Name string `json:"name"`
	// Path is the absolute path of the directory.
	Path string `json:"path"`
	// Size is the sum of all files below the directory.
	Size int64 `json:"size"`
}

// Directories lists every directory of the tree, including the root, in pre-order.
//
// Note that aggregates only look at sizes.  Directories sharing a name are told apart
// by Path, the name alone is ambiguous.
func (fs *FileSystem) Directories() []DirSize {
	type item struct {
		dir  *Dir
		path string
	}

	var result []DirSize
	stack := []item{{fs.root, RootName}}
	for len(stack) > 0 {
		current := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		result = append(result, DirSize{
			Name: current.dir.Name(),
			Path: current.path,
			Size: current.dir.Size(),
		})

		// Push in reverse so children are visited in creation order.
		children := current.dir.children
		for i := len(children) - 1; i >= 0; i-- {
			sub, ok := children[i].(*Dir)
			if ok {
				stack = append(stack, item{sub, path.Join(current.path, sub.Name())})
			}
		}
	}

	return result
}

// TotalSizeAtMost sums up the sizes of all directories not larger than threshold.
// Nested directories are counted once for each level they appear in.
func (fs *FileSystem) TotalSizeAtMost(threshold int64) int64 {
	var total int64
	for _, dir := range fs.DirectoriesAtMost(threshold) {
		total += dir.Size
	}

	return total
}

// MaxDirectorySize returns the size of the largest directory, which is always the root.
func (fs *FileSystem) MaxDirectorySize() int64 {
	var largest int64
	for _, dir := range fs.Directories() {
		if dir.Size > largest {
			largest = dir.Size
		}
	}

	return largest
}

// SmallestDirectoryAtLeast returns the size of the smallest directory that is at least
// minimum bytes large.  The largest directory is returned if none qualifies.
func (fs *FileSystem) SmallestDirectoryAtLeast(minimum int64) int64 {
	smallest := fs.MaxDirectorySize()
	for _, dir := range fs.Directories() {
		if dir.Size >= minimum && dir.Size < smallest {
			smallest = dir.Size
		}
	}

	return smallest
}

// SpaceToFree returns how many bytes must be deleted to have requiredFree bytes
// available on a disk of the given capacity.  The result is zero or negative if
// enough space is free already.
func (fs *FileSystem) SpaceToFree(capacity, requiredFree int64) int64 {
	return requiredFree - (capacity - fs.MaxDirectorySize())
}

// DeletionCandidate returns the size of the smallest directory whose deletion frees enough space.
func (fs *FileSystem) DeletionCandidate(capacity, requiredFree int64) int64 {
	return fs.SmallestDirectoryAtLeast(fs.SpaceToFree(capacity, requiredFree))
}

// DirectoriesAtMost returns all directories not larger than threshold.
func (fs *FileSystem) DirectoriesAtMost(threshold int64) []DirSize {
	return fs.filter(func(dir DirSize) bool { return dir.Size <= threshold })
}

// DeletionCandidates returns all directories that are at least minimum bytes large,
// smallest first.
func (fs *FileSystem) DeletionCandidates(minimum int64) []DirSize {
	dirs := fs.filter(func(dir DirSize) bool { return dir.Size >= minimum })
	SortBySize(dirs)

	return dirs
}

func (fs *FileSystem) filter(keep func(DirSize) bool) []DirSize {
	var result []DirSize
	for _, dir := range fs.Directories() {
		if keep(dir) {
			result = append(result, dir)
		}
	}

	return result
}

// SortBySize orders directories by ascending size, then by path.
func SortBySize(dirs []DirSize) {
	sort.SliceStable(dirs, func(i, j int) bool {
		if dirs[i].Size == dirs[j].Size {
			return dirs[i].Path < dirs[j].Path
		}

		return dirs[i].Size < dirs[j].Size
	})
}
