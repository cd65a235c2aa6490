package replacement

import "errors"

// ErrUnknownStrategy is returned by New for any strategy name other
// than FIFO, LRU, or Clock.
var ErrUnknownStrategy = errors.New("replacement: unknown strategy")
