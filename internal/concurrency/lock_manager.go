package concurrency

import (
	"slices"
	"strconv"
	"sync"
)

// LockManager handles named locks
type LockManager struct {
	locks sync.Map
}

// NewLockManager creates a new LockManager
func NewLockManager() *LockManager {
	return &LockManager{}
}

// GetLock returns a mutex for the given key
func (lm *LockManager) GetLock(key string) *sync.Mutex {
	lock, _ := lm.locks.LoadOrStore(key, &sync.Mutex{})
	return lock.(*sync.Mutex)
}

// Lock acquires the named lock and returns its release func.
func (lm *LockManager) Lock(key string) (unlock func()) {
	mu := lm.GetLock(key)
	mu.Lock()
	return mu.Unlock
}

// LockAll acquires several named locks in sorted order so that two callers
// locking overlapping sets cannot deadlock. Duplicate keys are locked once.
func (lm *LockManager) LockAll(keys ...string) (unlock func()) {
	sorted := slices.Clone(keys)
	slices.Sort(sorted)
	sorted = slices.Compact(sorted)

	held := make([]*sync.Mutex, 0, len(sorted))
	for _, key := range sorted {
		mu := lm.GetLock(key)
		mu.Lock()
		held = append(held, mu)
	}
	return func() {
		for i := len(held) - 1; i >= 0; i-- {
			held[i].Unlock()
		}
	}
}

// ItemKey is the lock name guarding one item instance.
func ItemKey(id int64) string {
	return "item:" + strconv.FormatInt(id, 10)
}
