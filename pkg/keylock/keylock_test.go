package keylock_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"fudys.backend/pkg/keylock"
)

func TestLock_SerializesSameKey(t *testing.T) {
	locks := keylock.New()

	const workers = 20
	counter := 0
	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			unlock := locks.Lock("restaurant-1:opening_hours")
			defer unlock()
			counter++
		}()
	}
	wg.Wait()

	assert.Equal(t, workers, counter)
	assert.Equal(t, 0, locks.Len())
}

func TestLock_DifferentKeysDoNotBlock(t *testing.T) {
	locks := keylock.New()

	unlockA := locks.Lock("a")
	defer unlockA()

	done := make(chan struct{})
	go func() {
		unlockB := locks.Lock("b")
		unlockB()
		close(done)
	}()
	<-done

	assert.Equal(t, 1, locks.Len())
}

func TestLock_EntryRemovedAfterRelease(t *testing.T) {
	locks := keylock.New()
	unlock := locks.Lock("k")
	assert.Equal(t, 1, locks.Len())
	unlock()
	assert.Equal(t, 0, locks.Len())
}
