package sync

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/tasksync/internal/client/api"
	"github.com/iudanet/tasksync/internal/client/auth"
	"github.com/iudanet/tasksync/internal/client/storage/boltdb"
	"github.com/iudanet/tasksync/internal/client/storage/sqlite"
	"github.com/iudanet/tasksync/internal/client/syncctx"
	"github.com/iudanet/tasksync/internal/models"
	pkgapi "github.com/iudanet/tasksync/pkg/api"
)

const (
	testToken  = "secret-token"
	testSelfID = int64(7)
)

var testNow = time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC)

type handler func(params api.Params) (json.RawMessage, error)

type fixture struct {
	svc      *Service
	store    *sqlite.Store
	metadata *boltdb.Storage
	invoker  *InvokerMock
	session  *SessionProviderMock
	toaster  *ToasterMock
	routes   map[string]handler
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctx := context.Background()

	store, err := sqlite.New(ctx, filepath.Join(t.TempDir(), "tasks.db"))
	require.NoError(t, err)
	metadata, err := boltdb.New(ctx, filepath.Join(t.TempDir(), "meta.db"))
	require.NoError(t, err)

	f := &fixture{
		store:    store,
		metadata: metadata,
		routes:   make(map[string]handler),
	}
	f.invoker = &InvokerMock{
		InvokeFunc: func(ctx context.Context, method string, params api.Params) (json.RawMessage, error) {
			h, ok := f.routes[method]
			if !ok {
				return nil, fmt.Errorf("unexpected call %s", method)
			}
			return h(params)
		},
		PostFunc: func(ctx context.Context, method string, payload []byte, params api.Params) (json.RawMessage, error) {
			h, ok := f.routes[method]
			if !ok {
				return nil, fmt.Errorf("unexpected call %s", method)
			}
			return h(params)
		},
	}
	f.session = &SessionProviderMock{
		IsLoggedInFunc:    func(ctx context.Context) bool { return true },
		TokenFunc:         func(ctx context.Context) (string, error) { return testToken, nil },
		CurrentUserIDFunc: func(ctx context.Context) (int64, error) { return testSelfID, nil },
	}
	f.toaster = &ToasterMock{ToastFunc: func(ctx context.Context, kind models.Kind, err error) {}}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	f.svc = NewService(f.invoker, store, metadata, f.session, logger, Options{
		Toaster:       f.toaster,
		Now:           func() time.Time { return testNow },
		PushDelay:     -1,
		RetryInterval: time.Hour,
	})

	t.Cleanup(func() {
		f.svc.Stop()
		_ = store.Close()
		_ = metadata.Close()
	})
	return f
}

// loggedOut переключает сессию в состояние без входа
func (f *fixture) loggedOut() {
	f.session.IsLoggedInFunc = func(ctx context.Context) bool { return false }
	f.session.TokenFunc = func(ctx context.Context) (string, error) { return "", auth.ErrNotLoggedIn }
	f.session.CurrentUserIDFunc = func(ctx context.Context) (int64, error) { return 0, auth.ErrNotLoggedIn }
}

func (f *fixture) methods() []string {
	var out []string
	for _, c := range f.invoker.InvokeCalls() {
		out = append(out, c.Method)
	}
	return out
}

func taskJSON(id int64, title, notes string) json.RawMessage {
	return json.RawMessage(fmt.Sprintf(`{"id":%d,"user":{"id":%d},"creator":{"id":%d},"title":%q,`+
		`"importance":0,"has_due_time":false,"notes":%q,"comment_count":0,"tags":[]}`,
		id, testSelfID, testSelfID, title, notes))
}

func tagJSON(id int64, name string) json.RawMessage {
	return json.RawMessage(fmt.Sprintf(`{"id":%d,"name":%q,"user":{"id":%d}}`, id, name, testSelfID))
}

func paramValue(t *testing.T, params api.Params, key string) any {
	t.Helper()
	v, ok := params.Get(key)
	require.True(t, ok, "missing param %s", key)
	return v
}

func TestService_StartIsIdempotent(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.svc.Start(ctx)
	f.svc.Start(ctx)

	f.routes[pkgapi.ProcTaskSave] = func(params api.Params) (json.RawMessage, error) {
		return taskJSON(42, "Buy milk", ""), nil
	}
	require.NoError(t, f.store.CreateTask(ctx, &models.Task{Title: "Buy milk"}))
	f.svc.Wait()

	// Повторный Start не должен регистрировать слушателей второй раз
	assert.Len(t, f.invoker.InvokeCalls(), 1)
}

func TestService_Invoke(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.routes[pkgapi.ProcTaskShow] = func(params api.Params) (json.RawMessage, error) {
		assert.Equal(t, testToken, paramValue(t, params, pkgapi.ParamToken))
		return json.RawMessage(`{"status":"success"}`), nil
	}
	_, err := f.svc.Invoke(ctx, pkgapi.ProcTaskShow, api.Params{}.Add(pkgapi.ParamID, 1))
	require.NoError(t, err)

	f.loggedOut()
	_, err = f.svc.Invoke(ctx, pkgapi.ProcTaskShow, nil)
	assert.ErrorIs(t, err, auth.ErrNotLoggedIn)
	assert.Len(t, f.invoker.InvokeCalls(), 1)
}

func TestService_BulkSyncFlag(t *testing.T) {
	f := newFixture(t)
	assert.False(t, f.svc.BulkSyncActive())
	f.svc.BeginBulkSync()
	assert.True(t, f.svc.BulkSyncActive())
	f.svc.EndBulkSync()
	assert.False(t, f.svc.BulkSyncActive())
}

func TestService_StopCancelsDelayedPush(t *testing.T) {
	f := newFixture(t)
	f.svc.opts.PushDelay = time.Hour
	ctx := context.Background()
	f.svc.Start(ctx)

	require.NoError(t, f.store.CreateTask(ctx, &models.Task{Title: "Buy milk"}))

	done := make(chan struct{})
	go func() {
		f.svc.Stop()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("Stop did not cancel the delayed push")
	}
	assert.Empty(t, f.invoker.InvokeCalls())
}

func TestService_ToastOnlyWhenRequested(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.routes[pkgapi.ProcTaskSave] = func(params api.Params) (json.RawMessage, error) {
		return taskJSON(42, "Buy milk", ""), nil
	}
	task := &models.Task{Title: "Buy milk"}
	require.NoError(t, f.store.CreateTask(syncctx.WithSuppressEcho(ctx), task))

	require.NoError(t, f.svc.PushTask(ctx, task.ID))
	assert.Empty(t, f.toaster.ToastCalls())

	require.NoError(t, f.svc.PushTask(syncctx.WithToastOnSave(ctx), task.ID))
	calls := f.toaster.ToastCalls()
	require.Len(t, calls, 1)
	assert.Equal(t, models.KindTask, calls[0].Kind)
	assert.NoError(t, calls[0].Err)
}

func TestService_WaitDoesNotJoinRetryWorker(t *testing.T) {
	f := newFixture(t)
	f.svc.addFailedPush(models.FailedPush{Kind: models.KindTask, LocalID: 1})

	done := make(chan struct{})
	go func() {
		f.svc.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("Wait blocked on the retry worker")
	}
	assert.Equal(t, 1, f.svc.PendingRetries())

	stopped := make(chan struct{})
	go func() {
		f.svc.Stop()
		close(stopped)
	}()
	select {
	case <-stopped:
	case <-time.After(5 * time.Second):
		t.Fatal("Stop did not join the retry worker")
	}
}

func TestService_GoAsyncOutlivesCaller(t *testing.T) {
	f := newFixture(t)

	ctx, cancel := context.WithCancel(syncctx.WithToastOnSave(context.Background()))
	cancel()

	var (
		ran    bool
		toast  bool
		ctxErr error
	)
	f.svc.goAsync(ctx, 0, "test", func(ctx context.Context) {
		ran = true
		toast = syncctx.ToastOnSave(ctx)
		ctxErr = ctx.Err()
	})
	f.svc.Wait()

	assert.True(t, ran)
	assert.True(t, toast, "подсказки синхронизации переживают вызывающий контекст")
	assert.NoError(t, ctxErr)
}
