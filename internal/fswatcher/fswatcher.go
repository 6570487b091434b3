// Package fswatcher polls a file system for changed files.
package fswatcher

import (
	"context"
	"errors"
	"io/fs"
	"time"
)

type fileInfo struct {
	modTime time.Time
	size    int64
	mode    fs.FileMode
}

// FSWatcher compares file metadata on every tick of its ticker.
type FSWatcher struct {
	filesystem fs.FS
	names      []string
	state      map[string]fileInfo
	ticker     *time.Ticker
}

type Result struct {
	HasChanged bool
	Err        error
}

func (fsw *FSWatcher) collectState(state map[string]fileInfo) error {
	add := func(path string, info fs.FileInfo) {
		state[path] = fileInfo{
			modTime: info.ModTime(),
			size:    info.Size(),
			mode:    info.Mode(),
		}
	}

	if len(fsw.names) > 0 {
		for _, name := range fsw.names {
			info, err := fs.Stat(fsw.filesystem, name)
			if errors.Is(err, fs.ErrNotExist) {
				// Editors often replace files, a missing file shows up as a change.
				continue
			}
			if err != nil {
				return err
			}
			add(name, info)
		}

		return nil
	}

	return fs.WalkDir(fsw.filesystem, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() {
			return nil
		}

		info, err := d.Info()
		if err != nil {
			return err
		}
		add(path, info)

		return nil
	})
}

// diff will first collect metadata of all watched files (ignoring directories)
// and second it will compare this metadata against the last seen state.
func (fsw *FSWatcher) diff() (bool, error) {
	state := make(map[string]fileInfo, len(fsw.state))
	err := fsw.collectState(state)
	if err != nil {
		return false, err
	}
	defer func() {
		fsw.state = state
	}()

	if len(state) != len(fsw.state) {
		return true, nil
	}

	for path, info := range state {
		lastInfo, ok := fsw.state[path]
		if !ok {
			return true, nil
		}

		if !info.modTime.Equal(lastInfo.modTime) ||
			info.size != lastInfo.size ||
			info.mode != lastInfo.mode {
			return true, nil
		}
	}

	return false, nil
}

// Watch sends a Result on every tick.  The first Result always reports a change.
// The channel is closed once ctx is done, or after a Result with Err set.
func (fsw *FSWatcher) Watch(ctx context.Context) <-chan Result {
	resultCh := make(chan Result)
	first := true
	go func(resultCh chan<- Result) {
		defer close(resultCh)
		send := func(result Result) bool {
			select {
			case <-ctx.Done():
				return false
			case resultCh <- result:
				return true
			}
		}

		for {
			select {
			case <-ctx.Done():
				return
			case <-fsw.ticker.C:
				hasChanged, err := fsw.diff()
				if err != nil {
					send(Result{Err: err})

					return
				}

				if !send(Result{HasChanged: hasChanged || first}) {
					return
				}
				first = false
			}
		}
	}(resultCh)

	return resultCh
}

// New returns a watcher for the given names in filesystem, or for every file if no names are given.
func New(filesystem fs.FS, ticker *time.Ticker, names ...string) *FSWatcher {
	return &FSWatcher{
		filesystem: filesystem,
		names:      names,
		state:      make(map[string]fileInfo),
		ticker:     ticker,
	}
}
