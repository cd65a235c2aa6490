package bufferpool

// frameTable is a fixed-length collection of PageFrames plus the
// page-number → frame-index lookup index, kept as one type so the
// slice and its reverse index can never drift apart.
type frameTable struct {
	frames        []*PageFrame
	index         map[int]int // pageNumber -> frameIndex
	occupiedCount int
}

func newFrameTable(numFrames int) *frameTable {
	frames := make([]*PageFrame, numFrames)
	for i := range frames {
		frames[i] = newPageFrame(i)
	}
	return &frameTable{
		frames: frames,
		index:  make(map[int]int, numFrames),
	}
}

func (t *frameTable) size() int { return len(t.frames) }

func (t *frameTable) frame(frameIndex int) *PageFrame { return t.frames[frameIndex] }

// lookup returns the frame holding pageNumber, if any.
func (t *frameTable) lookup(pageNumber int) (*PageFrame, bool) {
	idx, ok := t.index[pageNumber]
	if !ok {
		return nil, false
	}
	return t.frames[idx], true
}

// firstEmpty returns the first frame (by creation order) with no page
// bound, used for the warm-up path — empty-frame selection always
// uses creation order, independent of the replacement policy.
func (t *frameTable) firstEmpty() (*PageFrame, bool) {
	for _, f := range t.frames {
		if f.IsEmpty() {
			return f, true
		}
	}
	return nil, false
}

// fillEmpty binds a previously-empty frame to pageNumber, the
// empty-frame-fill half of a miss. Increments occupiedCount, since
// this frame was unoccupied a moment ago.
func (t *frameTable) fillEmpty(f *PageFrame, pageNumber int) {
	f.pageNumber = pageNumber
	t.index[pageNumber] = f.frameIndex
	t.occupiedCount++
}

// detachOldPage removes the index entry for f's current page ahead of
// an eviction rebind. occupiedCount is left untouched: the frame is
// still conceptually occupied until the new page either commits or
// the rebind is aborted, keeping occupiedCount monotonic across
// ordinary evictions.
func (t *frameTable) detachOldPage(f *PageFrame) {
	delete(t.index, f.pageNumber)
}

// commitRebind finishes an eviction rebind after a successful read:
// f now holds pageNumber. occupiedCount does not change — the frame
// was occupied before and after.
func (t *frameTable) commitRebind(f *PageFrame, pageNumber int) {
	f.pageNumber = pageNumber
	t.index[pageNumber] = f.frameIndex
}

// abortRebind finishes a failed eviction rebind: f's old page has
// already been detached and the new page never loaded, so f is left
// genuinely empty.
func (t *frameTable) abortRebind(f *PageFrame) {
	f.reset()
	t.occupiedCount--
}

// forEach visits every frame in fixed creation order.
func (t *frameTable) forEach(fn func(*PageFrame)) {
	for _, f := range t.frames {
		fn(f)
	}
}
