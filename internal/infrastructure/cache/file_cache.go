// Package cache keeps values parsed from rule files in memory so that
// switching rules does not re-read unchanged files.
package cache

import (
	"container/list"
	"io/fs"
	"sync"
	"time"
)

// Stamp identifies one version of a file on disk.
type Stamp struct {
	ModTime time.Time
	Size    int64
}

// StampOf returns the stamp of info.
func StampOf(info fs.FileInfo) Stamp {
	return Stamp{ModTime: info.ModTime(), Size: info.Size()}
}

type fileEntry[V any] struct {
	path  string
	stamp Stamp
	value V
}

// FileCache maps file paths to values derived from their content. It holds
// at most capacity entries and evicts the least recently used one. An entry
// only hits while the file keeps the stamp it was stored with.
//
// FileCache is safe for concurrent use.
type FileCache[V any] struct {
	mu       sync.Mutex
	capacity int
	byPath   map[string]*list.Element
	recent   *list.List // front is most recently used
}

// NewFileCache creates a cache holding up to capacity files. A capacity
// below one is raised to one.
func NewFileCache[V any](capacity int) *FileCache[V] {
	return &FileCache[V]{
		capacity: max(capacity, 1),
		byPath:   make(map[string]*list.Element),
		recent:   list.New(),
	}
}

// Get returns the value stored for path if the file still has stamp. A
// stale entry is dropped.
func (c *FileCache[V]) Get(path string, stamp Stamp) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var zero V
	el, ok := c.byPath[path]
	if !ok {
		return zero, false
	}
	e := el.Value.(*fileEntry[V])
	if !e.stamp.ModTime.Equal(stamp.ModTime) || e.stamp.Size != stamp.Size {
		c.recent.Remove(el)
		delete(c.byPath, path)
		return zero, false
	}
	c.recent.MoveToFront(el)
	return e.value, true
}

// Put stores value for path at stamp.
func (c *FileCache[V]) Put(path string, stamp Stamp, value V) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if el, ok := c.byPath[path]; ok {
		e := el.Value.(*fileEntry[V])
		e.stamp, e.value = stamp, value
		c.recent.MoveToFront(el)
		return
	}

	for c.recent.Len() >= c.capacity {
		oldest := c.recent.Back()
		c.recent.Remove(oldest)
		delete(c.byPath, oldest.Value.(*fileEntry[V]).path)
	}
	c.byPath[path] = c.recent.PushFront(&fileEntry[V]{path: path, stamp: stamp, value: value})
}

// Len returns the number of cached files.
func (c *FileCache[V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.recent.Len()
}

// Purge empties the cache.
func (c *FileCache[V]) Purge() {
	c.mu.Lock()
	defer c.mu.Unlock()
	clear(c.byPath)
	c.recent.Init()
}
