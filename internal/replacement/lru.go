package replacement

import "container/list"

// LRUPolicy evicts the least-recently-used unpinned frame. Recency
// is tracked with container/list: touching a frame moves it to the
// front, and SelectVictim scans from the back for the first unpinned
// entry.
type LRUPolicy struct {
	recency *list.List
	byFrame map[int]*list.Element
}

// NewLRU creates an empty LRU policy.
func NewLRU() *LRUPolicy {
	return &LRUPolicy{
		recency: list.New(),
		byFrame: make(map[int]*list.Element),
	}
}

func (p *LRUPolicy) touch(frameIndex int) {
	if e, ok := p.byFrame[frameIndex]; ok {
		p.recency.MoveToFront(e)
		return
	}
	p.byFrame[frameIndex] = p.recency.PushFront(frameIndex)
}

func (p *LRUPolicy) OnInsert(frameIndex int) { p.touch(frameIndex) }
func (p *LRUPolicy) OnAccess(frameIndex int) { p.touch(frameIndex) }

func (p *LRUPolicy) OnEvict(frameIndex int) {
	if e, ok := p.byFrame[frameIndex]; ok {
		p.recency.Remove(e)
		delete(p.byFrame, frameIndex)
	}
}

func (p *LRUPolicy) SelectVictim(isPinned IsPinned) (int, bool) {
	for e := p.recency.Back(); e != nil; e = e.Prev() {
		idx := e.Value.(int)
		if !isPinned(idx) {
			return idx, true
		}
	}
	return 0, false
}
