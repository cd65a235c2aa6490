// Package replacement implements the buffer pool's pluggable
// page-replacement strategies. Each policy owns its own ordering
// state (a FIFO queue, an LRU list, a CLOCK hand) rather than sharing
// the frame table's storage, keeping frame storage and eviction
// ordering as two separate concerns.
package replacement

// IsPinned reports whether the frame at frameIndex currently has a
// non-zero pin count. Policies never hold their own view of pin
// state; they ask the caller via this callback so that the frame
// table remains the single source of truth for pin counts.
type IsPinned func(frameIndex int) bool

// Policy is the shared capability every replacement strategy
// implements.
type Policy interface {
	// OnInsert notifies the policy that frameIndex was just bound to
	// a newly-cached page (an empty-frame fill or an eviction
	// rebind).
	OnInsert(frameIndex int)

	// OnAccess notifies the policy of a pin hit on frameIndex.
	OnAccess(frameIndex int)

	// OnEvict notifies the policy that frameIndex is about to be
	// rebound to a different page, so any state the policy keeps for
	// the current occupant should be dropped.
	OnEvict(frameIndex int)

	// SelectVictim returns an unpinned frame index to evict, or
	// ok=false iff every known frame is pinned. isPinned must be
	// consulted for every candidate; a policy must never return a
	// pinned frame.
	SelectVictim(isPinned IsPinned) (frameIndex int, ok bool)
}

// Strategy names a replacement policy, used by config and CLI wiring.
type Strategy string

const (
	FIFO  Strategy = "fifo"
	LRU   Strategy = "lru"
	Clock Strategy = "clock"
)

// New builds the Policy for the given strategy and frame count.
func New(strategy Strategy, numFrames int) (Policy, error) {
	switch strategy {
	case FIFO:
		return NewFIFO(), nil
	case LRU:
		return NewLRU(), nil
	case Clock:
		return NewClock(numFrames), nil
	default:
		return nil, ErrUnknownStrategy
	}
}
