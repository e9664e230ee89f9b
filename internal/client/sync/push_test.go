package sync

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/tasksync/internal/client/api"
	"github.com/iudanet/tasksync/internal/client/auth"
	"github.com/iudanet/tasksync/internal/client/syncctx"
	"github.com/iudanet/tasksync/internal/models"
	pkgapi "github.com/iudanet/tasksync/pkg/api"
)

func TestPushTask_NewTaskGetsRemoteID(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.svc.Start(ctx)

	f.routes[pkgapi.ProcTaskSave] = func(params api.Params) (json.RawMessage, error) {
		return taskJSON(42, "Buy milk", ""), nil
	}

	task := &models.Task{Title: "Buy milk"}
	require.NoError(t, f.store.CreateTask(ctx, task))
	f.svc.Wait()

	calls := f.invoker.InvokeCalls()
	require.Len(t, calls, 1)
	params := calls[0].Params
	assert.Equal(t, pkgapi.ProcTaskSave, calls[0].Method)
	assert.Equal(t, "Buy milk", paramValue(t, params, pkgapi.ParamTitle))
	assert.Equal(t, "", paramValue(t, params, pkgapi.ParamTags))
	assert.Equal(t, testToken, paramValue(t, params, pkgapi.ParamToken))
	assert.False(t, params.Has(pkgapi.ParamID))

	stored, err := f.store.FetchTask(ctx, task.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(42), stored.RemoteID)

	// Сохранение ответа сервера не вызывает повторной отправки
	f.svc.Wait()
	assert.Len(t, f.invoker.InvokeCalls(), 1)
}

func TestPushTask_SendsOnlyChangedFields(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	task := &models.Task{RemoteID: 42, Title: "Buy milk"}
	require.NoError(t, f.store.CreateTask(ctx, task))
	f.svc.Start(ctx)

	f.routes[pkgapi.ProcTaskSave] = func(params api.Params) (json.RawMessage, error) {
		return taskJSON(42, "Buy milk", "2 liters"), nil
	}

	task.Notes = "2 liters"
	require.NoError(t, f.store.SaveTask(ctx, task))
	f.svc.Wait()

	calls := f.invoker.InvokeCalls()
	require.Len(t, calls, 1)
	assert.Equal(t, []string{pkgapi.ParamNotes, pkgapi.ParamID, pkgapi.ParamToken}, calls[0].Params.Keys())
	assert.Equal(t, "2 liters", paramValue(t, calls[0].Params, pkgapi.ParamNotes))
	assert.Equal(t, int64(42), paramValue(t, calls[0].Params, pkgapi.ParamID))
}

func TestPushTask_NewTaskWithoutTitleDeltaPushesWholeTask(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	task := &models.Task{Title: "Buy milk", Importance: 2}
	require.NoError(t, f.store.CreateTask(syncctx.WithSuppressEcho(ctx), task))

	f.routes[pkgapi.ProcTaskSave] = func(params api.Params) (json.RawMessage, error) {
		return taskJSON(42, "Buy milk", "x"), nil
	}

	task.Notes = "x"
	require.NoError(t, f.svc.PushTaskOnSave(ctx, task, models.NewFieldSet(models.FieldNotes)))

	calls := f.invoker.InvokeCalls()
	require.Len(t, calls, 1)
	params := calls[0].Params
	assert.Equal(t, "Buy milk", paramValue(t, params, pkgapi.ParamTitle))
	assert.Equal(t, int64(2), paramValue(t, params, pkgapi.ParamImportance))
	assert.Equal(t, testSelfID, paramValue(t, params, pkgapi.ParamUserID))
}

func TestPushTask_Skipped(t *testing.T) {
	tests := []struct {
		name  string
		title string
	}{
		{name: "reserved title", title: "Welcome to tasksync!"},
		{name: "empty title", title: "   "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			ctx := context.Background()
			f.svc.Start(ctx)

			require.NoError(t, f.store.CreateTask(ctx, &models.Task{Title: tt.title, Importance: 1}))
			f.svc.Wait()
			assert.Empty(t, f.invoker.InvokeCalls())
		})
	}
}

func TestPushTask_NotLoggedIn(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.svc.Start(ctx)
	f.loggedOut()

	task := &models.Task{Title: "Buy milk"}
	require.NoError(t, f.store.CreateTask(ctx, task))
	f.svc.Wait()
	assert.Empty(t, f.invoker.InvokeCalls())

	err := f.svc.PushTask(ctx, task.ID)
	assert.ErrorIs(t, err, auth.ErrNotLoggedIn)
	assert.Empty(t, f.invoker.InvokeCalls())
	assert.Zero(t, f.svc.PendingRetries())
}

func TestPushTask_TagsAndUser(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	task := &models.Task{RemoteID: 42, Title: "Buy milk", UserID: models.UserIDUnassigned}
	require.NoError(t, f.store.CreateTask(ctx, task))
	require.NoError(t, f.store.SyncTagLinks(ctx, task.ID, []models.TagLink{
		{TaskID: task.ID, Name: "home", RemoteID: 5},
		{TaskID: task.ID, Name: "shopping"},
	}))

	f.routes[pkgapi.ProcTaskSave] = func(params api.Params) (json.RawMessage, error) {
		return taskJSON(42, "Buy milk", ""), nil
	}

	err := f.svc.PushTaskOnSave(syncctx.WithTagsChanged(ctx), task, models.NewFieldSet(models.FieldTitle))
	require.NoError(t, err)

	calls := f.invoker.InvokeCalls()
	require.Len(t, calls, 1)
	params := calls[0].Params
	assert.Equal(t, []int64{5}, paramValue(t, params, pkgapi.ParamTagIDs))
	assert.Equal(t, []string{"shopping"}, paramValue(t, params, pkgapi.ParamTagNames))
	assert.Equal(t, models.UserIDUnassigned, paramValue(t, params, pkgapi.ParamUserID))
	assert.False(t, params.Has(pkgapi.ParamTags))
}

func TestPushTask_RepeatCompleted(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	task := &models.Task{RemoteID: 42, Title: "Water plants", Recurrence: "FREQ=WEEKLY"}
	require.NoError(t, f.store.CreateTask(ctx, task))

	f.routes[pkgapi.ProcTaskSave] = func(params api.Params) (json.RawMessage, error) {
		return taskJSON(42, "Water plants", ""), nil
	}

	task.DueDate = testNow.Add(7 * 24 * time.Hour).UnixMilli()
	err := f.svc.PushTaskOnSave(syncctx.WithRepeatCompleted(ctx), task, models.NewFieldSet(models.FieldDueDate))
	require.NoError(t, err)

	calls := f.invoker.InvokeCalls()
	require.Len(t, calls, 1)
	assert.Equal(t, testNow.Unix(), paramValue(t, calls[0].Params, pkgapi.ParamCompleted))
	assert.True(t, calls[0].Params.Has(pkgapi.ParamDue))
}

func TestPushTask_TransientErrorQueuesRetry(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	task := &models.Task{Title: "Buy milk"}
	require.NoError(t, f.store.CreateTask(syncctx.WithSuppressEcho(ctx), task))

	f.routes[pkgapi.ProcTaskSave] = func(params api.Params) (json.RawMessage, error) {
		return nil, &api.TransportError{Method: pkgapi.ProcTaskSave, StatusCode: 503, Err: errors.New("unavailable")}
	}

	err := f.svc.PushTask(syncctx.WithToastOnSave(ctx), task.ID)
	require.Error(t, err)
	assert.True(t, api.IsTransient(err))
	assert.Equal(t, 1, f.svc.PendingRetries())

	toasts := f.toaster.ToastCalls()
	require.Len(t, toasts, 1)
	assert.Error(t, toasts[0].Err)
}

func TestPushTask_ServiceErrorIsNotRetried(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	task := &models.Task{Title: "Buy milk"}
	require.NoError(t, f.store.CreateTask(syncctx.WithSuppressEcho(ctx), task))

	f.routes[pkgapi.ProcTaskSave] = func(params api.Params) (json.RawMessage, error) {
		return nil, &api.ServiceError{Method: pkgapi.ProcTaskSave, Message: "title too long"}
	}

	err := f.svc.PushTask(ctx, task.ID)
	require.Error(t, err)
	assert.True(t, api.IsServiceError(err))
	assert.Zero(t, f.svc.PendingRetries())
}

func TestPushTag_ServiceErrorRefetchesTag(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	tag := &models.TagData{RemoteID: 5, Name: "Groceries"}
	require.NoError(t, f.store.CreateTagData(ctx, tag))
	f.svc.Start(ctx)

	f.routes[pkgapi.ProcTagSave] = func(params api.Params) (json.RawMessage, error) {
		return nil, &api.ServiceError{Method: pkgapi.ProcTagSave, Message: "not allowed"}
	}
	f.routes[pkgapi.ProcTagShow] = func(params api.Params) (json.RawMessage, error) {
		assert.Equal(t, int64(5), paramValue(t, params, pkgapi.ParamID))
		return tagJSON(5, "Groceries"), nil
	}

	tag.Name = "Renamed"
	require.NoError(t, f.store.SaveTagData(ctx, tag))
	f.svc.Wait()

	assert.Equal(t, []string{pkgapi.ProcTagSave, pkgapi.ProcTagShow}, f.methods())
	stored, err := f.store.FetchTagData(ctx, tag.ID)
	require.NoError(t, err)
	assert.Equal(t, "Groceries", stored.Name)
	assert.Zero(t, f.svc.PendingRetries())
}

func TestPushTag_Params(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	tag := &models.TagData{
		Name:    "Groceries",
		Members: `[{"id":9},{"name":"Ann","email":"ann@example.com"},{"email":"bob@example.com"}]`,
	}
	tag.SetFlag(models.FlagSilent, true)
	require.NoError(t, f.store.CreateTagData(syncctx.WithSuppressEcho(ctx), tag))

	f.routes[pkgapi.ProcTagSave] = func(params api.Params) (json.RawMessage, error) {
		return tagJSON(5, "Groceries"), nil
	}

	require.NoError(t, f.svc.PushTag(ctx, tag.ID))

	calls := f.invoker.InvokeCalls()
	require.Len(t, calls, 1)
	params := calls[0].Params
	assert.Equal(t, "Groceries", paramValue(t, params, pkgapi.ParamName))
	assert.Equal(t, []string{"9", "Ann <ann@example.com>", "bob@example.com"}, paramValue(t, params, pkgapi.ParamMembers))
	assert.Equal(t, true, paramValue(t, params, pkgapi.ParamIsSilent))
	assert.False(t, params.Has(pkgapi.ParamID))

	stored, err := f.store.FetchTagData(ctx, tag.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(5), stored.RemoteID)
}

func TestPushTag_NewTagKeepsIDFromPartialResult(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	tag := &models.TagData{Name: "Groceries"}
	require.NoError(t, f.store.CreateTagData(syncctx.WithSuppressEcho(ctx), tag))

	f.routes[pkgapi.ProcTagSave] = func(params api.Params) (json.RawMessage, error) {
		return json.RawMessage(`{"id":11}`), nil
	}

	require.NoError(t, f.svc.PushTag(ctx, tag.ID))
	stored, err := f.store.FetchTagData(ctx, tag.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(11), stored.RemoteID)
	assert.Equal(t, "Groceries", stored.Name)
}

func TestSetTagPicture(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.routes[pkgapi.ProcTagSave] = func(params api.Params) (json.RawMessage, error) {
		assert.Equal(t, int64(5), paramValue(t, params, pkgapi.ParamID))
		return json.RawMessage(`{"id":5,"picture":"https://img.example.com/5.jpg"}`), nil
	}

	url, err := f.svc.SetTagPicture(ctx, 5, []byte{0xff, 0xd8})
	require.NoError(t, err)
	assert.Equal(t, "https://img.example.com/5.jpg", url)

	calls := f.invoker.PostCalls()
	require.Len(t, calls, 1)
	assert.Equal(t, []byte{0xff, 0xd8}, calls[0].Payload)
}

func TestPushUpdate_Comment(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.svc.Start(ctx)

	f.routes[pkgapi.ProcCommentAdd] = func(params api.Params) (json.RawMessage, error) {
		return json.RawMessage(`{"id":99,"picture":""}`), nil
	}

	update := &models.Update{Message: "On my way", Tags: ",5,8,", TaskRemoteID: 42}
	require.NoError(t, f.store.CreateUpdate(ctx, update))
	f.svc.Wait()

	calls := f.invoker.InvokeCalls()
	require.Len(t, calls, 1)
	params := calls[0].Params
	assert.Equal(t, "On my way", paramValue(t, params, pkgapi.ParamMessage))
	assert.Equal(t, "5", paramValue(t, params, pkgapi.ParamTagID))
	assert.Equal(t, int64(42), paramValue(t, params, pkgapi.ParamTaskID))

	stored, err := f.store.FetchUpdate(ctx, update.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(99), stored.RemoteID)
}

func TestPushUpdate_WithPicture(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	update := &models.Update{Message: "Look"}
	require.NoError(t, f.store.CreateUpdate(syncctx.WithSuppressEcho(ctx), update))

	f.routes[pkgapi.ProcCommentAdd] = func(params api.Params) (json.RawMessage, error) {
		return json.RawMessage(`{"id":100,"picture":"https://img.example.com/c.jpg"}`), nil
	}

	require.NoError(t, f.svc.PushUpdateWithPicture(ctx, update.ID, []byte("jpeg")))
	assert.Len(t, f.invoker.PostCalls(), 1)
	assert.Empty(t, f.invoker.InvokeCalls())

	stored, err := f.store.FetchUpdate(ctx, update.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(100), stored.RemoteID)
	assert.Equal(t, "https://img.example.com/c.jpg", stored.Picture)
}

func TestPushUpdate_WithoutMessageIsIgnored(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	update := &models.Update{ID: 1, Tags: ",5,"}
	require.NoError(t, f.svc.PushUpdateOnSave(ctx, update, models.NewFieldSet(models.FieldTags), nil))
	assert.Empty(t, f.invoker.InvokeCalls())
}

func TestPushUpdate_AlreadySentIsNotPostedAgain(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	update := &models.Update{RemoteID: 55, Message: "On my way", TaskRemoteID: 42}
	require.NoError(t, f.store.CreateUpdate(syncctx.WithSuppressEcho(ctx), update))

	f.routes[pkgapi.ProcCommentAdd] = func(params api.Params) (json.RawMessage, error) {
		return json.RawMessage(`{"id":56,"picture":""}`), nil
	}

	require.NoError(t, f.svc.PushUpdate(ctx, update.ID))
	require.NoError(t, f.svc.PushUpdateWithPicture(ctx, update.ID, []byte("jpeg")))

	assert.Empty(t, f.invoker.InvokeCalls())
	assert.Empty(t, f.invoker.PostCalls())

	stored, err := f.store.FetchUpdate(ctx, update.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(55), stored.RemoteID)
}

func TestPushTask_IncompleteResultKeepsNewRemoteID(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	task := &models.Task{Title: "Buy milk"}
	require.NoError(t, f.store.CreateTask(syncctx.WithSuppressEcho(ctx), task))

	// в ответе нет user и creator
	f.routes[pkgapi.ProcTaskSave] = func(params api.Params) (json.RawMessage, error) {
		return json.RawMessage(`{"id":42,"title":"Buy milk"}`), nil
	}

	require.NoError(t, f.svc.PushTask(ctx, task.ID))

	stored, err := f.store.FetchTask(ctx, task.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(42), stored.RemoteID)
	assert.Equal(t, "Buy milk", stored.Title)

	// следующая отправка обновляет задачу, а не создает новую
	require.NoError(t, f.svc.PushTask(ctx, task.ID))
	calls := f.invoker.InvokeCalls()
	require.Len(t, calls, 2)
	assert.Equal(t, int64(42), paramValue(t, calls[1].Params, pkgapi.ParamID))
}

func TestPushTask_IncompleteResultForExistingTaskFails(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	task := &models.Task{RemoteID: 42, Title: "Buy milk"}
	require.NoError(t, f.store.CreateTask(syncctx.WithSuppressEcho(ctx), task))

	f.routes[pkgapi.ProcTaskSave] = func(params api.Params) (json.RawMessage, error) {
		return json.RawMessage(`{"id":42}`), nil
	}

	err := f.svc.PushTask(ctx, task.ID)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "user")
}
