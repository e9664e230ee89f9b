// Package sync pushes local changes to the server and pulls remote changes
// into the local store.
//
// Saves in the local store are observed through change listeners. A save
// worth pushing is sent as a minimal task_save/tag_save/comment_add call
// built from the changed fields; transport failures go to an in-memory
// retry queue. Fetches pull *_list results after a persisted watermark and
// reconcile them onto local rows by remote id.
package sync

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/sync/semaphore"

	"github.com/iudanet/tasksync/internal/client/api"
	"github.com/iudanet/tasksync/internal/client/storage"
	"github.com/iudanet/tasksync/internal/client/syncctx"
	"github.com/iudanet/tasksync/internal/models"
	"github.com/iudanet/tasksync/internal/validation"
	pkgapi "github.com/iudanet/tasksync/pkg/api"
)

//go:generate moq -out service_mock.go . Invoker SessionProvider Toaster

// Invoker executes remote procedures.
type Invoker interface {
	Invoke(ctx context.Context, method string, params api.Params) (json.RawMessage, error)
	Post(ctx context.Context, method string, payload []byte, params api.Params) (json.RawMessage, error)
}

// SessionProvider gives access to the current sync session.
type SessionProvider interface {
	IsLoggedIn(ctx context.Context) bool
	Token(ctx context.Context) (string, error)
	CurrentUserID(ctx context.Context) (int64, error)
}

// Toaster reports the outcome of a push the user asked to be told about.
// err is nil on success.
type Toaster interface {
	Toast(ctx context.Context, kind models.Kind, err error)
}

// Defaults for Options fields left zero.
const (
	DefaultPushDelay           = time.Second
	DefaultRetryInterval       = 5 * time.Minute
	DefaultMaxConcurrentPushes = 4
)

// Options tunes the sync service.
type Options struct {
	Toaster             Toaster
	Now                 func() time.Time
	ReservedTitles      []string
	PushDelay           time.Duration // задержка перед отправкой задачи, < 0 без задержки
	RetryInterval       time.Duration // интервал между проходами очереди повторов
	MaxConcurrentPushes int64
}

func (o Options) withDefaults(logger *slog.Logger) Options {
	if o.PushDelay < 0 {
		o.PushDelay = 0
	} else if o.PushDelay == 0 {
		o.PushDelay = DefaultPushDelay
	}
	if o.RetryInterval <= 0 {
		o.RetryInterval = DefaultRetryInterval
	}
	if o.MaxConcurrentPushes <= 0 {
		o.MaxConcurrentPushes = DefaultMaxConcurrentPushes
	}
	if o.ReservedTitles == nil {
		o.ReservedTitles = validation.DefaultReservedTitles
	}
	if o.Now == nil {
		o.Now = time.Now
	}
	if o.Toaster == nil {
		o.Toaster = logToaster{logger: logger}
	}
	return o
}

// Service synchronizes local entities with the server
type Service struct {
	invoker  Invoker
	store    storage.Store
	metadata storage.MetadataStorage
	session  SessionProvider
	logger   *slog.Logger

	baseCtx context.Context
	cancel  context.CancelFunc
	sem     *semaphore.Weighted
	locks   *keyedMutex

	retry        retryQueue
	opts         Options
	wg           sync.WaitGroup // отправки и выборки
	retryWG      sync.WaitGroup // обработчик очереди повторов
	retryMu      sync.Mutex
	retryRunning bool
	bulk         atomic.Bool
	started      atomic.Bool
}

// NewService creates a new sync service
func NewService(invoker Invoker, store storage.Store, metadata storage.MetadataStorage,
	session SessionProvider, logger *slog.Logger, opts Options) *Service {
	baseCtx, cancel := context.WithCancel(context.Background())
	opts = opts.withDefaults(logger)

	return &Service{
		invoker:  invoker,
		store:    store,
		metadata: metadata,
		session:  session,
		logger:   logger,
		opts:     opts,
		baseCtx:  baseCtx,
		cancel:   cancel,
		sem:      semaphore.NewWeighted(opts.MaxConcurrentPushes),
		locks:    newKeyedMutex(),
	}
}

// Start registers the change listeners. Calling it again is a no-op.
func (s *Service) Start(ctx context.Context) {
	if !s.started.CompareAndSwap(false, true) {
		return
	}
	s.store.OnModelUpdated(models.KindTask, s.onTaskSaved)
	s.store.OnModelUpdated(models.KindTagData, s.onTagDataSaved)
	s.store.OnModelUpdated(models.KindUpdate, s.onUpdateSaved)
	s.logger.InfoContext(ctx, "Sync listeners registered")
}

// Stop cancels background work and waits for it to finish,
// including the retry worker
func (s *Service) Stop() {
	s.cancel()
	s.wg.Wait()
	s.retryWG.Wait()
}

// Wait blocks until scheduled pushes and fetches have finished.
// The retry worker is not waited for; it is joined by Stop.
func (s *Service) Wait() {
	s.wg.Wait()
}

// BeginBulkSync pauses listeners and retry passes while a bulk sync runs
func (s *Service) BeginBulkSync() {
	s.bulk.Store(true)
}

// EndBulkSync resumes listeners and retry passes
func (s *Service) EndBulkSync() {
	s.bulk.Store(false)
}

// BulkSyncActive reports whether a bulk sync is in progress
func (s *Service) BulkSyncActive() bool {
	return s.bulk.Load()
}

// PendingRetries returns the number of pushes waiting for the next retry pass
func (s *Service) PendingRetries() int {
	return s.retry.len()
}

// Invoke calls an authenticated remote procedure. The token is added to params.
func (s *Service) Invoke(ctx context.Context, method string, params api.Params) (json.RawMessage, error) {
	token, err := s.session.Token(ctx)
	if err != nil {
		return nil, err
	}
	return s.invoker.Invoke(ctx, method, withToken(params, token))
}

// goAsync запускает fn вне вызывающей горутины. Работа живет дольше ctx
// (сохраняются только подсказки syncctx), но отменяется при Stop.
// Не более MaxConcurrentPushes функций выполняются одновременно.
func (s *Service) goAsync(ctx context.Context, delay time.Duration, name string, fn func(ctx context.Context)) {
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()

		workCtx, cancel := context.WithCancel(syncctx.Detach(ctx))
		defer cancel()
		stop := context.AfterFunc(s.baseCtx, cancel)
		defer stop()

		if delay > 0 {
			timer := time.NewTimer(delay)
			select {
			case <-timer.C:
			case <-workCtx.Done():
				timer.Stop()
				return
			}
		}

		if err := s.sem.Acquire(workCtx, 1); err != nil {
			s.logger.Debug("Background work cancelled", "work", name, "error", err)
			return
		}
		defer s.sem.Release(1)

		fn(workCtx)
	}()
}

func withToken(params api.Params, token string) api.Params {
	out := make(api.Params, 0, len(params)+1)
	out = append(out, params...)
	return out.Add(pkgapi.ParamToken, token)
}

// selfID возвращает id пользователя сессии для нормализации ссылок на себя
func (s *Service) selfID(ctx context.Context) (int64, error) {
	id, err := s.session.CurrentUserID(ctx)
	if err != nil {
		return 0, fmt.Errorf("current user: %w", err)
	}
	return id, nil
}

type logToaster struct {
	logger *slog.Logger
}

func (t logToaster) Toast(ctx context.Context, kind models.Kind, err error) {
	if err != nil {
		t.logger.WarnContext(ctx, "Sync failed", "kind", kind, "error", err)
		return
	}
	t.logger.InfoContext(ctx, "Sync succeeded", "kind", kind)
}
