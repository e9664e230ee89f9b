package sync

import (
	"sync"

	"github.com/iudanet/tasksync/internal/models"
)

type entityKey struct {
	kind models.Kind
	id   int64
}

type refMutex struct {
	mu   sync.Mutex
	refs int
}

// keyedMutex гарантирует не более одной отправки на (kind, local id)
type keyedMutex struct {
	locks map[entityKey]*refMutex
	mu    sync.Mutex
}

func newKeyedMutex() *keyedMutex {
	return &keyedMutex{locks: make(map[entityKey]*refMutex)}
}

// Lock blocks until the entity is free and returns the unlock function.
func (k *keyedMutex) Lock(kind models.Kind, id int64) func() {
	key := entityKey{kind: kind, id: id}

	k.mu.Lock()
	m, ok := k.locks[key]
	if !ok {
		m = &refMutex{}
		k.locks[key] = m
	}
	m.refs++
	k.mu.Unlock()

	m.mu.Lock()

	return func() {
		m.mu.Unlock()

		k.mu.Lock()
		m.refs--
		if m.refs == 0 {
			delete(k.locks, key)
		}
		k.mu.Unlock()
	}
}

// size returns the number of entities currently locked or waited on
func (k *keyedMutex) size() int {
	k.mu.Lock()
	defer k.mu.Unlock()
	return len(k.locks)
}
