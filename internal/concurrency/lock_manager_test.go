package concurrency

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGetLockReturnsSameMutex(t *testing.T) {
	t.Parallel()
	lm := NewLockManager()

	assert.Same(t, lm.GetLock("item:1"), lm.GetLock("item:1"))
	assert.NotSame(t, lm.GetLock("item:1"), lm.GetLock("item:2"))
}

func TestLockSerializesReadModifyWrite(t *testing.T) {
	t.Parallel()
	lm := NewLockManager()

	counter := 0
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			unlock := lm.Lock(ItemKey(7))
			defer unlock()
			v := counter
			time.Sleep(time.Microsecond)
			counter = v + 1
		}()
	}
	wg.Wait()

	assert.Equal(t, 50, counter)
}

func TestLockAllOverlappingSets(t *testing.T) {
	t.Parallel()
	lm := NewLockManager()

	done := make(chan struct{})
	go func() {
		var wg sync.WaitGroup
		for i := 0; i < 100; i++ {
			wg.Add(2)
			go func() {
				defer wg.Done()
				lm.LockAll(ItemKey(1), ItemKey(2))()
			}()
			go func() {
				defer wg.Done()
				lm.LockAll(ItemKey(2), ItemKey(1), ItemKey(2))()
			}()
		}
		wg.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("LockAll deadlocked")
	}
}

func TestItemKey(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "item:42", ItemKey(42))
}
