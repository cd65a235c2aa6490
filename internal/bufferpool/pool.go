// Package bufferpool is the public façade: init, shutdown, pin,
// unpin, markDirty, forcePage, forceFlushPool, and the statistics
// views, orchestrating a frameTable, a pluggable replacement.Policy,
// and an ioGateway over a storagemgr.PageStore.
//
// The core itself is single-threaded: every method here runs to
// completion before the next may begin. Locked wraps a BufferPool for
// callers that share one instance across goroutines.
package bufferpool

import (
	"go.uber.org/zap"

	"bufferpool/internal/replacement"
	"bufferpool/internal/storagemgr"
)

// PageHandle is the stable handle a client gets back from Pin: the
// page number and a slice aliasing the frame's live buffer. Mutating
// Data mutates the cached page directly. The handle is valid only
// while the page remains pinned; unpinning and then continuing to use
// Data is a client contract violation, not something this package can
// detect.
type PageHandle struct {
	PageNumber int
	Data       []byte
}

// BufferPool is the façade over a fixed-size cache of pages backed by
// one PageStore.
type BufferPool struct {
	table       *frameTable
	policy      replacement.Policy
	gateway     *ioGateway
	strategy    replacement.Strategy
	initialized bool
	log         *zap.SugaredLogger
}

// Open resolves pageFileName to a storagemgr.FileStore and inits a
// pool over it.
func Open(pageFileName string, numFrames int, strategy replacement.Strategy, logger *zap.SugaredLogger) (*BufferPool, error) {
	store, err := storagemgr.NewFileStore(pageFileName)
	if err != nil {
		return nil, ErrFileNotFound
	}
	return Init(store, numFrames, strategy, logger)
}

// Init builds a pool directly over an already-constructed PageStore
// (a storagemgr.MemStore in tests, a storagemgr.FileStore via Open in
// production), keeping storage access behind an interface so the core
// never depends on how pages are actually persisted.
func Init(store storagemgr.PageStore, numFrames int, strategy replacement.Strategy, logger *zap.SugaredLogger) (*BufferPool, error) {
	if numFrames < 1 {
		return nil, ErrMemoryAllocationFailed
	}
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	policy, err := replacement.New(strategy, numFrames)
	if err != nil {
		return nil, err
	}
	gw := newIOGateway(store)
	if err := gw.open(); err != nil {
		return nil, ErrFileNotFound
	}
	bp := &BufferPool{
		table:       newFrameTable(numFrames),
		policy:      policy,
		gateway:     gw,
		strategy:    strategy,
		initialized: true,
		log:         logger,
	}
	bp.log.Debugw("buffer pool initialized", "frames", numFrames, "strategy", strategy)
	return bp, nil
}

func (p *BufferPool) mustBeInitialized() error {
	if !p.initialized {
		return ErrNotInitialized
	}
	return nil
}

// Pin returns a handle to pageNumber, loading it from storage on a
// miss and evicting another frame if the pool is full.
func (p *BufferPool) Pin(pageNumber int) (PageHandle, error) {
	if err := p.mustBeInitialized(); err != nil {
		return PageHandle{}, err
	}
	if pageNumber < 0 {
		return PageHandle{}, ErrInvalidPageNumber
	}

	if f, ok := p.table.lookup(pageNumber); ok {
		f.pinCount++
		p.policy.OnAccess(f.FrameIndex())
		return PageHandle{PageNumber: pageNumber, Data: f.data}, nil
	}

	victim, wasEmpty, err := p.selectVictim()
	if err != nil {
		return PageHandle{}, err
	}

	if !wasEmpty {
		if err := p.evict(victim); err != nil {
			return PageHandle{}, err
		}
	}

	if err := p.gateway.ensureCapacity(pageNumber + 1); err != nil {
		if !wasEmpty {
			p.table.abortRebind(victim)
		}
		return PageHandle{}, err
	}
	if err := p.gateway.read(pageNumber, victim.data); err != nil {
		if !wasEmpty {
			p.table.abortRebind(victim)
		}
		p.log.Warnw("pin: read failed", "page", pageNumber, "frame", victim.FrameIndex(), "err", err)
		return PageHandle{}, err
	}

	if wasEmpty {
		p.table.fillEmpty(victim, pageNumber)
	} else {
		p.table.commitRebind(victim, pageNumber)
	}
	victim.pinCount = 1
	victim.dirty = false
	p.policy.OnInsert(victim.FrameIndex())
	p.log.Debugw("pin: miss resolved", "page", pageNumber, "frame", victim.FrameIndex(), "wasEmpty", wasEmpty)

	return PageHandle{PageNumber: pageNumber, Data: victim.data}, nil
}

// selectVictim picks the frame a miss will bind to: the first empty
// frame in creation order while the pool is still filling, otherwise
// whatever the policy selects.
func (p *BufferPool) selectVictim() (frame *PageFrame, wasEmpty bool, err error) {
	if p.table.occupiedCount < p.table.size() {
		f, ok := p.table.firstEmpty()
		if !ok {
			return nil, false, ErrMemoryAllocationFailed
		}
		return f, true, nil
	}
	idx, ok := p.policy.SelectVictim(func(i int) bool {
		return p.table.frame(i).PinCount() > 0
	})
	if !ok {
		return nil, false, ErrNoFreeFrame
	}
	return p.table.frame(idx), false, nil
}

// evict flushes victim if dirty and detaches it from its current
// page.
func (p *BufferPool) evict(victim *PageFrame) error {
	if victim.IsDirty() {
		if err := p.gateway.ensureCapacity(victim.pageNumber + 1); err != nil {
			return err
		}
		if err := p.gateway.write(victim.pageNumber, victim.data); err != nil {
			p.log.Warnw("pin: victim write-back failed", "page", victim.pageNumber, "frame", victim.FrameIndex(), "err", err)
			return err
		}
		victim.dirty = false
	}
	p.log.Debugw("pin: evicting", "page", victim.pageNumber, "frame", victim.FrameIndex())
	p.policy.OnEvict(victim.FrameIndex())
	p.table.detachOldPage(victim)
	return nil
}

// Unpin releases one pin held on handle's page.
func (p *BufferPool) Unpin(handle PageHandle) error {
	if err := p.mustBeInitialized(); err != nil {
		return err
	}
	f, ok := p.table.lookup(handle.PageNumber)
	if !ok {
		return ErrPageNotInPool
	}
	if f.pinCount == 0 {
		return ErrUnpinUnderflow
	}
	f.pinCount--
	return nil
}

// MarkDirty flags handle's page as needing write-back before eviction
// or shutdown.
func (p *BufferPool) MarkDirty(handle PageHandle) error {
	if err := p.mustBeInitialized(); err != nil {
		return err
	}
	f, ok := p.table.lookup(handle.PageNumber)
	if !ok {
		return ErrPageNotInPool
	}
	f.dirty = true
	return nil
}

// ForcePage writes handle's page back to storage immediately if dirty.
func (p *BufferPool) ForcePage(handle PageHandle) error {
	if err := p.mustBeInitialized(); err != nil {
		return err
	}
	f, ok := p.table.lookup(handle.PageNumber)
	if !ok {
		return ErrPageNotInPool
	}
	if !f.IsDirty() {
		return nil
	}
	if err := p.gateway.write(f.pageNumber, f.data); err != nil {
		return err
	}
	f.dirty = false
	return nil
}

// ForceFlushPool writes back every dirty, unpinned frame.
func (p *BufferPool) ForceFlushPool() error {
	if err := p.mustBeInitialized(); err != nil {
		return err
	}
	var failure error
	p.table.forEach(func(f *PageFrame) {
		if failure != nil {
			return
		}
		if f.IsEmpty() || f.PinCount() > 0 || !f.IsDirty() {
			return
		}
		if err := p.gateway.write(f.pageNumber, f.data); err != nil {
			p.log.Warnw("forceFlushPool: write failed", "page", f.pageNumber, "frame", f.FrameIndex(), "err", err)
			failure = err
			return
		}
		f.dirty = false
	})
	return failure
}

// Shutdown flushes every dirty page and releases the pool. It fails
// if any page is still pinned.
func (p *BufferPool) Shutdown() error {
	if err := p.mustBeInitialized(); err != nil {
		return err
	}
	pinned := false
	p.table.forEach(func(f *PageFrame) {
		if f.PinCount() > 0 {
			pinned = true
		}
	})
	if pinned {
		return ErrPoolInUse
	}
	if err := p.ForceFlushPool(); err != nil {
		return err
	}
	if err := p.gateway.close(); err != nil {
		return err
	}
	p.log.Debugw("buffer pool shut down", "numReadIO", p.gateway.numReadIO, "numWriteIO", p.gateway.numWriteIO)
	p.table = nil
	p.policy = nil
	p.gateway = nil
	p.initialized = false
	return nil
}
