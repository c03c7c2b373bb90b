package usecase_test

import (
	"sync"
	"testing"
	"time"

	"github.com/obinna/walletcore/internal/usecase"
)

func TestAccountLock_MutualExclusion(t *testing.T) {
	locks := usecase.NewAccountLock()

	// Unsynchronized counter; only the lock keeps the increments safe.
	counter := 0

	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			unlock := locks.Lock("ACC1")
			defer unlock()
			counter++
		}()
	}
	wg.Wait()

	if counter != 100 {
		t.Errorf("counter = %d, want 100", counter)
	}
}

func TestAccountLock_DifferentKeysDoNotContend(t *testing.T) {
	locks := usecase.NewAccountLock()

	unlock := locks.Lock("ACC1")
	defer unlock()

	done := make(chan struct{})
	go func() {
		other := locks.Lock("ACC2")
		other()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("lock on a different key blocked")
	}
}

func TestAccountLock_ReleaseAllowsNextHolder(t *testing.T) {
	locks := usecase.NewAccountLock()

	unlock := locks.Lock("ACC1")

	acquired := make(chan struct{})
	go func() {
		next := locks.Lock("ACC1")
		close(acquired)
		next()
	}()

	select {
	case <-acquired:
		t.Fatal("second holder acquired the lock while it was held")
	case <-time.After(50 * time.Millisecond):
	}

	unlock()

	select {
	case <-acquired:
	case <-time.After(2 * time.Second):
		t.Fatal("second holder never acquired the lock after release")
	}
}
