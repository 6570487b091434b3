// Package transcript turns the text of a shell session into command events.
package transcript

// Event is one of Cd, Ls, FileEntry or DirEntry.
type Event interface {
	event()
}

// Targets of Cd with a special meaning.
const (
	Parent = ".."
	Root   = "/"
)

// Cd changes the working directory to Target, which is Parent, Root or a directory name.
type Cd struct {
	Target string
}

// Ls starts a directory listing.
type Ls struct{}

// FileEntry is a listed file.
type FileEntry struct {
	Name string
	Size int64
}

// DirEntry is a listed directory.
type DirEntry struct {
	Name string
}

func (Cd) event()        {}
func (Ls) event()        {}
func (FileEntry) event() {}
func (DirEntry) event()  {}
