package bufferpool

// Statistics view: pure snapshots indexed by fixed frame creation
// order. Each call returns a fresh slice with nothing retained
// between calls.

// FrameContents returns, for each frame in creation order, the page
// number it holds, or NoPage if empty.
func (p *BufferPool) FrameContents() []int {
	if !p.initialized {
		return nil
	}
	out := make([]int, p.table.size())
	p.table.forEach(func(f *PageFrame) {
		out[f.FrameIndex()] = f.PageNumber()
	})
	return out
}

// DirtyFlags returns, for each frame in creation order, its dirty
// bit. Empty frames report false.
func (p *BufferPool) DirtyFlags() []bool {
	if !p.initialized {
		return nil
	}
	out := make([]bool, p.table.size())
	p.table.forEach(func(f *PageFrame) {
		out[f.FrameIndex()] = f.IsDirty()
	})
	return out
}

// FixCounts returns, for each frame in creation order, its pin count.
func (p *BufferPool) FixCounts() []int {
	if !p.initialized {
		return nil
	}
	out := make([]int, p.table.size())
	p.table.forEach(func(f *PageFrame) {
		out[f.FrameIndex()] = f.PinCount()
	})
	return out
}

// NumReadIO returns the count of successful page loads from disk
// since Init.
func (p *BufferPool) NumReadIO() int {
	if !p.initialized {
		return 0
	}
	return p.gateway.numReadIO
}

// NumWriteIO returns the count of successful page write-backs since
// Init.
func (p *BufferPool) NumWriteIO() int {
	if !p.initialized {
		return 0
	}
	return p.gateway.numWriteIO
}
