package qtree

import "sync"

// SyncTree guards a Tree with a read-write mutex: Insert runs alone, while
// queries may run concurrently with each other.
//
// Points returned by queries stay valid after the lock is released, since
// stored points are never modified.
type SyncTree[C Coordinate, V any] struct {
	mutex sync.RWMutex
	tree  *Tree[C, V]
}

// NewSync creates an empty tree like New and wraps it in a SyncTree.
func NewSync[C Coordinate, V any](x0, y0, x1, y1 C, opts ...Option) *SyncTree[C, V] {
	return Synchronized(New[C, V](x0, y0, x1, y1, opts...))
}

// Synchronized wraps an existing tree. The caller must not use t directly
// afterwards.
func Synchronized[C Coordinate, V any](t *Tree[C, V]) *SyncTree[C, V] {
	return &SyncTree[C, V]{tree: t}
}

// Bounds does not lock; the rectangle never changes.
func (s *SyncTree[C, V]) Bounds() Rect[C] {
	return s.tree.Bounds()
}

func (s *SyncTree[C, V]) Len() int {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return s.tree.Len()
}

func (s *SyncTree[C, V]) Insert(x, y C, value V) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	return s.tree.Insert(x, y, value)
}

func (s *SyncTree[C, V]) Search(x, y, radius C) ([]*Point[C, V], bool) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return s.tree.Search(x, y, radius)
}

// SearchFunc holds the read lock while fn runs, so fn must not call Insert
// on the same SyncTree.
func (s *SyncTree[C, V]) SearchFunc(x, y, radius C, fn func(p *Point[C, V]) bool) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	s.tree.SearchFunc(x, y, radius, fn)
}

func (s *SyncTree[C, V]) FindNearest(x, y, radius C) (*Point[C, V], bool) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return s.tree.FindNearest(x, y, radius)
}
