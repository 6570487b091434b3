// Package replay rebuilds a filesystem tree from transcript events.
package replay

import (
	"errors"
	"fmt"

	"github.com/klingtnet/dirsize/fstree"
	"github.com/klingtnet/dirsize/transcript"
	"go.uber.org/zap"
)

// Mode tells whether entry lines are expected.
type Mode int

const (
	// Command is the initial mode, entries are ignored.
	Command Mode = iota
	// Listing follows an ls and lasts until the next command.
	Listing
)

func (m Mode) String() string {
	switch m {
	case Command:
		return "command"
	case Listing:
		return "listing"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// Replayer applies events to a filesystem.
type Replayer struct {
	fs     *fstree.FileSystem
	cursor fstree.Cursor
	mode   Mode
	logger *zap.Logger
	stats  Stats
}

// Option configures a Replayer.
type Option func(*Replayer)

// WithLogger sets the logger, by default nothing is logged.
func WithLogger(logger *zap.Logger) Option {
	return func(r *Replayer) {
		r.logger = logger
	}
}

// New returns a Replayer working on fs, positioned at the root.
func New(fs *fstree.FileSystem, opts ...Option) *Replayer {
	r := &Replayer{
		fs:     fs,
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(r)
	}

	return r
}

func (r *Replayer) Mode() Mode {
	return r.mode
}

// Cwd returns the absolute path of the working directory.
func (r *Replayer) Cwd() string {
	return r.cursor.Path()
}

// Stats returns counters for everything applied so far.
func (r *Replayer) Stats() Stats {
	return r.stats
}

// Apply executes a single event.  Errors wrapping fstree.ErrNotFound or
// fstree.ErrInvalidTarget mean the transcript is inconsistent and replay must stop.
func (r *Replayer) Apply(ev transcript.Event) error {
	r.stats.Events++

	switch e := ev.(type) {
	case transcript.Cd:
		switch e.Target {
		case transcript.Parent:
			r.cursor.Pop()
		case transcript.Root:
			r.cursor.Reset()
		default:
			r.cursor.Push(e.Target)
		}
		r.mode = Command
	case transcript.Ls:
		r.mode = Listing
	case transcript.FileEntry:
		return r.create(e.Name, func(dir *fstree.Dir) error {
			return fstree.CreateFile(dir, e.Name, e.Size)
		})
	case transcript.DirEntry:
		return r.create(e.Name, func(dir *fstree.Dir) error {
			return fstree.CreateDir(dir, e.Name)
		})
	default:
		return fmt.Errorf("unsupported event %T", ev)
	}

	return nil
}

func (r *Replayer) create(name string, fn func(*fstree.Dir) error) error {
	if r.mode != Listing {
		r.stats.IgnoredEntries++
		r.logger.Debug("entry outside of a listing", zap.String("name", name), zap.String("cwd", r.Cwd()))

		return nil
	}

	dir, err := r.cursor.Resolve(r.fs.Root())
	if err != nil {
		return err
	}

	err = fn(dir)
	if errors.Is(err, fstree.ErrAlreadyExists) {
		r.stats.Duplicates++
		r.logger.Debug("entry listed again", zap.String("name", name), zap.String("cwd", r.Cwd()))

		return nil
	}

	return err
}
