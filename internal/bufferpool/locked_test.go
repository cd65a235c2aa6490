package bufferpool

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bufferpool/internal/replacement"
)

func TestLockedSerializesConcurrentPins(t *testing.T) {
	bp := newTestPool(t, 4, replacement.LRU)
	locked := NewLocked(bp)

	var wg sync.WaitGroup
	errs := make(chan error, 4)
	for page := 0; page < 4; page++ {
		wg.Add(1)
		go func(page int) {
			defer wg.Done()
			h, err := locked.Pin(page)
			if err != nil {
				errs <- err
				return
			}
			if err := locked.Unpin(h); err != nil {
				errs <- err
			}
		}(page)
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}

	assert.Equal(t, 4, locked.NumReadIO())
	assert.ElementsMatch(t, []int{0, 1, 2, 3}, locked.FrameContents())
}
