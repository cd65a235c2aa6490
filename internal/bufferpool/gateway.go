package bufferpool

import (
	"github.com/pkg/errors"

	"bufferpool/internal/storagemgr"
)

// ioGateway adapts a storagemgr.PageStore for the buffer pool,
// counting reads and writes. The counters advance only on successful
// operations triggered by user-visible cache misses and write-backs,
// never for capacity extension.
type ioGateway struct {
	store      storagemgr.PageStore
	numReadIO  int
	numWriteIO int
}

func newIOGateway(store storagemgr.PageStore) *ioGateway {
	return &ioGateway{store: store}
}

func (g *ioGateway) open() error {
	if err := g.store.Open(); err != nil {
		return errors.Wrap(ErrFileNotFound, err.Error())
	}
	return nil
}

func (g *ioGateway) close() error {
	return g.store.Close()
}

// read loads pageNo into buf and increments numReadIO on success.
func (g *ioGateway) read(pageNo int, buf []byte) error {
	if err := g.store.ReadBlock(pageNo, buf); err != nil {
		return errors.Wrapf(ErrReadFailed, "page %d: %v", pageNo, err)
	}
	g.numReadIO++
	return nil
}

// write writes buf to pageNo and increments numWriteIO on success.
func (g *ioGateway) write(pageNo int, buf []byte) error {
	if err := g.store.WriteBlock(pageNo, buf); err != nil {
		return errors.Wrapf(ErrWriteFailed, "page %d: %v", pageNo, err)
	}
	g.numWriteIO++
	return nil
}

// ensureCapacity extends the backing store. Never touches the read
// or write counters.
func (g *ioGateway) ensureCapacity(minPages int) error {
	return g.store.EnsureCapacity(minPages)
}
