package cli

import (
	"context"
	"errors"
	"testing"

	"github.com/iudanet/tasksync/internal/client/storage"
	"github.com/iudanet/tasksync/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newFetchSyncer возвращает мок, который вызывает done, если ok
func newFetchSyncer(ok bool) *SyncerMock {
	finish := func(done func()) {
		if ok && done != nil {
			done()
		}
	}
	return &SyncerMock{
		WaitFunc: func() {},
		FetchTagDataDashboardFunc: func(ctx context.Context, manual bool, done func()) {
			finish(done)
		},
		FetchTasksForTagFunc: func(ctx context.Context, tag *models.TagData, manual bool, done func()) {
			finish(done)
		},
		FetchUpdatesForTagFunc: func(ctx context.Context, tag *models.TagData, manual bool, done func()) {
			finish(done)
		},
		FetchUpdatesForTaskFunc: func(ctx context.Context, task *models.Task, manual bool, done func()) {
			finish(done)
		},
		FetchTagsFunc:     func(ctx context.Context, serverTime int64) error { return nil },
		BeginBulkSyncFunc: func() {},
		EndBulkSyncFunc:   func() {},
	}
}

func newEntities(tags map[int64]*models.TagData, tasks map[int64]*models.Task) *EntitiesMock {
	return &EntitiesMock{
		FetchTagDataFunc: func(ctx context.Context, id int64) (*models.TagData, error) {
			if tag, ok := tags[id]; ok {
				return tag, nil
			}
			return nil, storage.ErrTagDataNotFound
		},
		FetchTaskFunc: func(ctx context.Context, id int64) (*models.Task, error) {
			if task, ok := tasks[id]; ok {
				return task, nil
			}
			return nil, storage.ErrTaskNotFound
		},
		SyncedTagDataIDsFunc: func(ctx context.Context) ([]storage.IDPair, error) {
			var pairs []storage.IDPair
			for id, tag := range tags {
				if tag.RemoteID != 0 {
					pairs = append(pairs, storage.IDPair{RemoteID: tag.RemoteID, LocalID: id})
				}
			}
			return pairs, nil
		},
	}
}

func TestCli_runFetchTags(t *testing.T) {
	out := &output{}
	syncer := newFetchSyncer(true)
	c := New(newIO(out, nil, nil), &SessionManagerMock{}, syncer, &EntitiesMock{}, discardLogger())

	require.NoError(t, c.runFetchTags(context.Background(), true))
	require.Len(t, syncer.FetchTagDataDashboardCalls(), 1)
	assert.True(t, syncer.FetchTagDataDashboardCalls()[0].Manual)
	assert.Len(t, syncer.WaitCalls(), 1)
	assert.Contains(t, out.String(), "Tags fetched")

	failing := newFetchSyncer(false)
	c = New(newIO(out, nil, nil), &SessionManagerMock{}, failing, &EntitiesMock{}, discardLogger())
	assert.ErrorIs(t, c.runFetchTags(context.Background(), false), ErrFetchFailed)
}

func TestCli_runFetchTasks(t *testing.T) {
	entities := newEntities(map[int64]*models.TagData{
		1: {ID: 1, RemoteID: 100, Name: "Home"},
		2: {ID: 2, Name: "Draft"},
	}, nil)

	tests := []struct {
		name    string
		tagID   int64
		wantErr string
	}{
		{name: "synced tag", tagID: 1},
		{name: "no tag", wantErr: "--tag is required"},
		{name: "unsynced tag", tagID: 2, wantErr: "not synchronized"},
		{name: "missing tag", tagID: 3, wantErr: "failed to load tag 3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := &output{}
			syncer := newFetchSyncer(true)
			c := New(newIO(out, nil, nil), &SessionManagerMock{}, syncer, entities, discardLogger())

			err := c.runFetchTasks(context.Background(), tt.tagID, false)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				assert.Empty(t, syncer.FetchTasksForTagCalls())
				return
			}
			require.NoError(t, err)
			calls := syncer.FetchTasksForTagCalls()
			require.Len(t, calls, 1)
			assert.Equal(t, int64(100), calls[0].Tag.RemoteID)
			assert.Contains(t, out.String(), `Tasks of "Home" fetched`)
		})
	}
}

func TestCli_runFetchUpdates(t *testing.T) {
	entities := newEntities(
		map[int64]*models.TagData{1: {ID: 1, RemoteID: 100, Name: "Home"}},
		map[int64]*models.Task{
			5: {ID: 5, RemoteID: 500, Title: "Buy milk"},
			6: {ID: 6, Title: "Local only"},
		},
	)

	tests := []struct {
		name     string
		tagID    int64
		taskID   int64
		wantErr  string
		wantTag  int
		wantTask int
	}{
		{name: "tag activity", tagID: 1, wantTag: 1},
		{name: "task comments", taskID: 5, wantTask: 1},
		{name: "both flags", tagID: 1, taskID: 5, wantErr: "either --tag or --task"},
		{name: "no flags", wantErr: "--tag or --task is required"},
		{name: "unsynced task", taskID: 6, wantErr: "not synchronized"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			syncer := newFetchSyncer(true)
			c := New(newIO(&output{}, nil, nil), &SessionManagerMock{}, syncer, entities, discardLogger())

			err := c.runFetchUpdates(context.Background(), tt.tagID, tt.taskID, true)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
			} else {
				require.NoError(t, err)
			}
			assert.Len(t, syncer.FetchUpdatesForTagCalls(), tt.wantTag)
			assert.Len(t, syncer.FetchUpdatesForTaskCalls(), tt.wantTask)
		})
	}
}

func TestCli_runFetchAll(t *testing.T) {
	entities := newEntities(map[int64]*models.TagData{
		1: {ID: 1, RemoteID: 100, Name: "Home"},
		2: {ID: 2, RemoteID: 200, Name: "Work"},
		3: {ID: 3, Name: "Draft"},
	}, nil)

	t.Run("success", func(t *testing.T) {
		out := &output{}
		syncer := newFetchSyncer(true)
		c := New(newIO(out, nil, nil), &SessionManagerMock{}, syncer, entities, discardLogger())

		require.NoError(t, c.runFetchAll(context.Background()))

		assert.Len(t, syncer.BeginBulkSyncCalls(), 1)
		assert.Len(t, syncer.EndBulkSyncCalls(), 1)
		require.Len(t, syncer.FetchTagsCalls(), 1)
		assert.Zero(t, syncer.FetchTagsCalls()[0].ServerTime)
		assert.Len(t, syncer.FetchTasksForTagCalls(), 2)
		assert.Len(t, syncer.FetchUpdatesForTagCalls(), 2)
		for _, call := range syncer.FetchTasksForTagCalls() {
			assert.True(t, call.Manual)
		}
		assert.Contains(t, out.String(), "Fetched 2 tag(s)")
	})

	t.Run("tags fail", func(t *testing.T) {
		syncer := newFetchSyncer(true)
		syncer.FetchTagsFunc = func(ctx context.Context, serverTime int64) error {
			return errors.New("offline")
		}
		c := New(newIO(&output{}, nil, nil), &SessionManagerMock{}, syncer, entities, discardLogger())

		err := c.runFetchAll(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "offline")
		assert.Empty(t, syncer.FetchTasksForTagCalls())
		// флаг массовой синхронизации снимается и при ошибке
		assert.Len(t, syncer.EndBulkSyncCalls(), 1)
	})

	t.Run("partial failure", func(t *testing.T) {
		out := &output{}
		syncer := newFetchSyncer(false)
		c := New(newIO(out, nil, nil), &SessionManagerMock{}, syncer, entities, discardLogger())

		assert.ErrorIs(t, c.runFetchAll(context.Background()), ErrFetchFailed)
		assert.Contains(t, out.String(), "4 fetch(es) failed")
	})
}
