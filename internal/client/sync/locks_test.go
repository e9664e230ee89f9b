package sync

import (
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/iudanet/tasksync/internal/models"
)

func TestKeyedMutex_SerializesSameEntity(t *testing.T) {
	k := newKeyedMutex()

	var active, maxActive atomic.Int32
	var wg sync.WaitGroup
	for range 20 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			unlock := k.Lock(models.KindTask, 1)
			defer unlock()

			n := active.Add(1)
			for {
				m := maxActive.Load()
				if n <= m || maxActive.CompareAndSwap(m, n) {
					break
				}
			}
			active.Add(-1)
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), maxActive.Load())
	assert.Zero(t, k.size())
}

func TestKeyedMutex_DifferentEntitiesDoNotBlock(t *testing.T) {
	k := newKeyedMutex()

	unlockTask := k.Lock(models.KindTask, 1)
	unlockTag := k.Lock(models.KindTagData, 1)
	unlockOther := k.Lock(models.KindTask, 2)
	assert.Equal(t, 3, k.size())

	unlockTask()
	unlockTag()
	unlockOther()
	assert.Zero(t, k.size())
}
