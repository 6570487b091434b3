package testutils

import (
	"io/fs"
	"sync"
	"testing/fstest"
	"time"
)

// ConcurrentMapFS implements fs.FS and provides synchronized modification methods.
// Use it instead of fstest.MapFS when files change while another goroutine reads them.
type ConcurrentMapFS struct {
	lock  sync.RWMutex
	mapFS fstest.MapFS
}

func NewConcurrentMapFS(mapFS fstest.MapFS) *ConcurrentMapFS {
	return &ConcurrentMapFS{mapFS: mapFS}
}

// Open implements fs.FS.
func (cmfs *ConcurrentMapFS) Open(name string) (fs.File, error) {
	cmfs.lock.RLock()
	defer cmfs.lock.RUnlock()

	return cmfs.mapFS.Open(name)
}

func (cmfs *ConcurrentMapFS) Store(path string, file *fstest.MapFile) {
	cmfs.lock.Lock()
	cmfs.mapFS[path] = file
	cmfs.lock.Unlock()
}

// StoreTranscript writes a transcript as a read-only file.
func (cmfs *ConcurrentMapFS) StoreTranscript(path, transcript string, modTime time.Time) {
	cmfs.Store(path, &fstest.MapFile{
		Data:    []byte(transcript),
		Mode:    0o444,
		ModTime: modTime,
	})
}

func (cmfs *ConcurrentMapFS) Delete(path string) {
	cmfs.lock.Lock()
	delete(cmfs.mapFS, path)
	cmfs.lock.Unlock()
}

var _ fs.FS = &ConcurrentMapFS{}
