package storagemgr

import (
	"sync"

	"github.com/pkg/errors"
)

// MemStore is an in-memory PageStore, for tests and for callers that
// don't need durability: a map keyed by page number guarded by one
// RWMutex.
type MemStore struct {
	mu    sync.RWMutex
	pages map[int][]byte
	count int
}

// NewMemStore creates a MemStore already extended to at least
// initialPages zero-filled pages.
func NewMemStore(initialPages int) *MemStore {
	s := &MemStore{pages: map[int][]byte{}}
	if initialPages > 0 {
		_ = s.EnsureCapacity(initialPages)
	}
	return s
}

func (s *MemStore) Open() error  { return nil }
func (s *MemStore) Close() error { return nil }

func (s *MemStore) ReadBlock(pageNo int, buf []byte) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	data, ok := s.pages[pageNo]
	if !ok {
		return errors.Wrapf(ErrNoSuchPage, "page %d", pageNo)
	}
	copy(buf, data)
	return nil
}

func (s *MemStore) WriteBlock(pageNo int, buf []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	data, ok := s.pages[pageNo]
	if !ok {
		return errors.Wrapf(ErrNoSuchPage, "page %d", pageNo)
	}
	copy(data, buf)
	return nil
}

func (s *MemStore) EnsureCapacity(numPages int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := s.count; i < numPages; i++ {
		s.pages[i] = make([]byte, PageSize)
	}
	if numPages > s.count {
		s.count = numPages
	}
	return nil
}

func (s *MemStore) PageCount() (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.count, nil
}
