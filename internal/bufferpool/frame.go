package bufferpool

import "bufferpool/internal/storagemgr"

// PageSize is the fixed size, in bytes, of every cached page.
const PageSize = storagemgr.PageSize

// NoPage is the sentinel page number meaning "this frame is empty."
const NoPage = -1

// PageFrame holds one cached page: its identity, pin count, dirty
// bit, and byte buffer. Replacement bookkeeping that only one
// strategy needs, such as CLOCK's reference bit, lives on the policy
// implementing it (internal/replacement.ClockPolicy) instead of here,
// so the frame stays strategy-agnostic.
type PageFrame struct {
	frameIndex int
	pageNumber int
	pinCount   int
	dirty      bool
	data       []byte
}

func newPageFrame(frameIndex int) *PageFrame {
	return &PageFrame{
		frameIndex: frameIndex,
		pageNumber: NoPage,
		data:       make([]byte, PageSize),
	}
}

// FrameIndex returns the frame's immutable slot number.
func (f *PageFrame) FrameIndex() int { return f.frameIndex }

// PageNumber returns the page currently cached, or NoPage if empty.
func (f *PageFrame) PageNumber() int { return f.pageNumber }

// PinCount returns the frame's current pin count.
func (f *PageFrame) PinCount() int { return f.pinCount }

// IsDirty reports whether the frame's bytes may differ from disk.
func (f *PageFrame) IsDirty() bool { return f.dirty }

// IsEmpty reports whether the frame holds no page.
func (f *PageFrame) IsEmpty() bool { return f.pageNumber == NoPage }

// reset clears a frame back to its empty state, used after a failed
// capacity extension or read leaves a frame half-bound.
func (f *PageFrame) reset() {
	f.pageNumber = NoPage
	f.pinCount = 0
	f.dirty = false
}
