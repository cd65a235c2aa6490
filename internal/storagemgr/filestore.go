package storagemgr

import (
	"io"
	"os"
	"sync"

	"github.com/pkg/errors"
)

// ErrFileNotFound is returned by NewFileStore when the backing page
// file does not exist.
var ErrFileNotFound = errors.New("storagemgr: page file not found")

// FileStore is a PageStore backed by one growable page file on disk:
// page i occupies bytes [i*PageSize, (i+1)*PageSize).
type FileStore struct {
	path string
	mu   sync.Mutex
	f    *os.File
}

// NewFileStore opens an existing page file at path. The file must
// already exist; FileStore never creates the page file itself.
func NewFileStore(path string) (*FileStore, error) {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrapf(ErrFileNotFound, "%s", path)
		}
		return nil, errors.Wrapf(err, "stat %s", path)
	}
	return &FileStore{path: path}, nil
}

func (s *FileStore) Open() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.f != nil {
		return nil
	}
	f, err := os.OpenFile(s.path, os.O_RDWR, 0o600)
	if err != nil {
		return errors.Wrapf(err, "open %s", s.path)
	}
	s.f = f
	return nil
}

func (s *FileStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.f == nil {
		return nil
	}
	err := s.f.Close()
	s.f = nil
	return errors.Wrap(err, "close page file")
}

func (s *FileStore) ReadBlock(pageNo int, buf []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.openLocked(); err != nil {
		return err
	}
	n, err := s.f.ReadAt(buf, int64(pageNo)*PageSize)
	if err != nil && err != io.EOF {
		return errors.Wrapf(err, "read page %d", pageNo)
	}
	if n < len(buf) {
		return errors.Wrapf(ErrNoSuchPage, "page %d", pageNo)
	}
	return nil
}

func (s *FileStore) WriteBlock(pageNo int, buf []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.openLocked(); err != nil {
		return err
	}
	if _, err := s.f.WriteAt(buf, int64(pageNo)*PageSize); err != nil {
		return errors.Wrapf(err, "write page %d", pageNo)
	}
	return nil
}

func (s *FileStore) EnsureCapacity(numPages int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.openLocked(); err != nil {
		return err
	}
	current, err := s.pageCountLocked()
	if err != nil {
		return err
	}
	if numPages <= current {
		return nil
	}
	wantSize := int64(numPages) * PageSize
	if err := s.f.Truncate(wantSize); err != nil {
		return errors.Wrapf(err, "extend to %d pages", numPages)
	}
	return nil
}

func (s *FileStore) PageCount() (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.openLocked(); err != nil {
		return 0, err
	}
	return s.pageCountLocked()
}

func (s *FileStore) openLocked() error {
	if s.f != nil {
		return nil
	}
	f, err := os.OpenFile(s.path, os.O_RDWR, 0o600)
	if err != nil {
		return errors.Wrapf(err, "open %s", s.path)
	}
	s.f = f
	return nil
}

func (s *FileStore) pageCountLocked() (int, error) {
	info, err := s.f.Stat()
	if err != nil {
		return 0, errors.Wrap(err, "stat page file")
	}
	return int(info.Size() / PageSize), nil
}

// CreatePageFile creates an empty page file at path if one does not
// already exist, for use by tests and by cmd/bufpoolctl's setup path.
func CreatePageFile(path string) error {
	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_EXCL, 0o600)
	if err != nil {
		if os.IsExist(err) {
			return nil
		}
		return errors.Wrapf(err, "create %s", path)
	}
	return f.Close()
}
