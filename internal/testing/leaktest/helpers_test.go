package leaktest

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// recorder captures Errorf calls so failing checks can be asserted on
type recorder struct {
	testing.TB
	failed bool
}

func (r *recorder) Helper() {}

func (r *recorder) Errorf(string, ...any) { r.failed = true }

func TestCheckNoGoroutineLeak_Success(t *testing.T) {
	CheckNoGoroutineLeak(t, func() {
		var wg sync.WaitGroup
		wg.Add(1)
		go func() {
			defer wg.Done()
			time.Sleep(5 * time.Millisecond)
		}()
		wg.Wait()
	})
}

func TestCheck_WaitsForExitingGoroutines(t *testing.T) {
	checker := NewGoroutineChecker(t)
	go func() { time.Sleep(50 * time.Millisecond) }()
	checker.Check(0)
}

func TestCheck_ReportsLeak(t *testing.T) {
	rec := &recorder{TB: t}
	checker := NewGoroutineChecker(rec)

	done := make(chan struct{})
	defer close(done)
	go func() { <-done }()

	start := time.Now()
	checker.Check(0)
	assert.True(t, rec.failed)
	assert.GreaterOrEqual(t, time.Since(start), settleTimeout)
}

func TestCheck_WithinTolerance(t *testing.T) {
	rec := &recorder{TB: t}
	checker := NewGoroutineChecker(rec)

	done := make(chan struct{})
	defer close(done)
	go func() { <-done }()

	checker.Check(1)
	assert.False(t, rec.failed)
}
