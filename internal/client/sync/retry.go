package sync

import (
	"context"
	"sync"
	"time"

	"github.com/iudanet/tasksync/internal/models"
)

// retryQueue очередь неудачных отправок, FIFO
type retryQueue struct {
	items []models.FailedPush
	mu    sync.Mutex
}

func (q *retryQueue) add(fp models.FailedPush) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.items = append(q.items, fp)
}

// swap забирает все накопленные записи и очищает очередь
func (q *retryQueue) swap() []models.FailedPush {
	q.mu.Lock()
	defer q.mu.Unlock()
	items := q.items
	q.items = nil
	return items
}

// prepend возвращает необработанные записи в начало очереди
func (q *retryQueue) prepend(items []models.FailedPush) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.items = append(append([]models.FailedPush(nil), items...), q.items...)
}

func (q *retryQueue) len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.items)
}

// addFailedPush ставит отправку в очередь и при необходимости запускает
// единственный обработчик очереди
func (s *Service) addFailedPush(fp models.FailedPush) {
	s.retry.add(fp)

	s.retryMu.Lock()
	defer s.retryMu.Unlock()
	if s.retryRunning {
		return
	}
	s.retryRunning = true

	s.retryWG.Add(1)
	go s.retryWorker()
}

// retryWorker раз в RetryInterval обрабатывает очередь и завершается,
// когда очередь пуста
func (s *Service) retryWorker() {
	defer s.retryWG.Done()

	timer := time.NewTimer(s.opts.RetryInterval)
	defer timer.Stop()

	for {
		select {
		case <-s.baseCtx.Done():
			s.retryMu.Lock()
			s.retryRunning = false
			s.retryMu.Unlock()
			return
		case <-timer.C:
		}

		s.retryMu.Lock()
		if s.retry.len() == 0 {
			s.retryRunning = false
			s.retryMu.Unlock()
			return
		}
		s.retryMu.Unlock()

		s.runRetryPass(s.baseCtx)
		timer.Reset(s.opts.RetryInterval)
	}
}

// runRetryPass processes the entries queued before the pass started, in order.
// Entries that fail again are queued for the next pass. When a bulk sync
// starts, the unprocessed rest goes back to the front of the queue.
// It returns the number of processed entries.
func (s *Service) runRetryPass(ctx context.Context) int {
	items := s.retry.swap()
	if len(items) == 0 {
		return 0
	}
	s.logger.Info("Retrying failed pushes", "count", len(items))

	for i, fp := range items {
		if s.bulk.Load() || ctx.Err() != nil {
			s.retry.prepend(items[i:])
			s.logger.Info("Retry pass interrupted", "remaining", len(items)-i)
			return i
		}
		s.retryOne(ctx, fp)
	}
	return len(items)
}

func (s *Service) retryOne(ctx context.Context, fp models.FailedPush) {
	var err error
	switch fp.Kind {
	case models.KindTask:
		err = s.PushTask(ctx, fp.LocalID)
	case models.KindTagData:
		err = s.PushTag(ctx, fp.LocalID)
	case models.KindUpdate:
		err = s.PushUpdate(ctx, fp.LocalID)
	default:
		s.logger.Warn("Unknown failed push kind", "kind", fp.Kind, "id", fp.LocalID)
		return
	}
	if err != nil {
		s.logger.Debug("Retry failed", "kind", fp.Kind, "id", fp.LocalID, "error", err)
	}
}
