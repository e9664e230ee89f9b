package storage

import (
	"context"

	"github.com/iudanet/tasksync/internal/models"
)

// IDPair maps a remote id to the local id of the same record.
type IDPair struct {
	RemoteID int64
	LocalID  int64
}

// Listener is called after a committed write with the caller's context,
// the saved entity (*models.Task, *models.TagData or *models.Update) and
// the set of fields that changed.
type Listener func(ctx context.Context, entity any, changed models.FieldSet)

// Notifier delivers change notifications for saved entities.
type Notifier interface {
	OnModelUpdated(kind models.Kind, listener Listener)
}

// TaskStorage stores tasks locally.
type TaskStorage interface {
	// FetchTask returns ErrTaskNotFound when the task does not exist.
	FetchTask(ctx context.Context, id int64) (*models.Task, error)
	// CreateTask inserts the task and sets its ID.
	CreateTask(ctx context.Context, task *models.Task) error
	// SaveTask updates an existing task. Listeners receive only changed fields.
	SaveTask(ctx context.Context, task *models.Task) error
	DeleteTask(ctx context.Context, id int64) error
	// TasksByRemoteIDs returns local ids for the given remote ids ordered
	// by remote id. Duplicated remote ids yield several pairs.
	TasksByRemoteIDs(ctx context.Context, remoteIDs []int64) ([]IDPair, error)
	// TaskIDsForTag returns synchronized tasks linked to the remote tag.
	TaskIDsForTag(ctx context.Context, tagRemoteID int64) ([]IDPair, error)
}

// TagDataStorage stores tags (shared lists) locally.
type TagDataStorage interface {
	FetchTagData(ctx context.Context, id int64) (*models.TagData, error)
	CreateTagData(ctx context.Context, tag *models.TagData) error
	SaveTagData(ctx context.Context, tag *models.TagData) error
	DeleteTagData(ctx context.Context, id int64) error
	TagDataByRemoteIDs(ctx context.Context, remoteIDs []int64) ([]IDPair, error)
	// SyncedTagDataIDs returns every tag that has a remote id.
	SyncedTagDataIDs(ctx context.Context) ([]IDPair, error)
	// DeleteTagDataNotIn deletes synchronized tags whose remote id is not
	// listed. Local-only tags (remote id 0) are kept.
	DeleteTagDataNotIn(ctx context.Context, remoteIDs []int64) (int64, error)
}

// UpdateStorage stores activity records locally.
type UpdateStorage interface {
	FetchUpdate(ctx context.Context, id int64) (*models.Update, error)
	CreateUpdate(ctx context.Context, update *models.Update) error
	SaveUpdate(ctx context.Context, update *models.Update) error
	DeleteUpdate(ctx context.Context, id int64) error
	UpdatesByRemoteIDs(ctx context.Context, remoteIDs []int64) ([]IDPair, error)
	// UpdateIDsForTag returns synchronized updates attached to the remote tag.
	UpdateIDsForTag(ctx context.Context, tagRemoteID int64) ([]IDPair, error)
	// UpdateIDsForTask returns synchronized updates attached to the remote task.
	UpdateIDsForTask(ctx context.Context, taskRemoteID int64) ([]IDPair, error)
}

// TagLinkStorage stores task to tag associations.
type TagLinkStorage interface {
	TagLinks(ctx context.Context, taskID int64) ([]models.TagLink, error)
	// SyncTagLinks replaces all links of the task with links.
	SyncTagLinks(ctx context.Context, taskID int64, links []models.TagLink) error
}

// Store is everything the sync engine needs from the local database.
type Store interface {
	Notifier
	TaskStorage
	TagDataStorage
	UpdateStorage
	TagLinkStorage
}
