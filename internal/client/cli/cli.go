// Package cli реализует команды tasksync поверх движка синхронизации.
package cli

import (
	"context"
	"log/slog"

	"github.com/iudanet/tasksync/internal/client/auth"
	"github.com/iudanet/tasksync/internal/client/iocli"
	"github.com/iudanet/tasksync/internal/client/storage"
	"github.com/iudanet/tasksync/internal/models"
)

//go:generate moq -out cli_mock.go . SessionManager Syncer Entities

// SessionManager управляет сохраненной сессией синхронизации
type SessionManager interface {
	Login(ctx context.Context, userID int64, token string, expiresAt int64) error
	Logout(ctx context.Context) error
	Status(ctx context.Context) (*auth.Status, error)
}

// Syncer is the part of the sync engine used by the commands.
type Syncer interface {
	Start(ctx context.Context)
	Stop()
	Wait()
	PendingRetries() int
	BeginBulkSync()
	EndBulkSync()

	FetchTagDataDashboard(ctx context.Context, manual bool, done func())
	FetchTasksForTag(ctx context.Context, tag *models.TagData, manual bool, done func())
	FetchUpdatesForTag(ctx context.Context, tag *models.TagData, manual bool, done func())
	FetchUpdatesForTask(ctx context.Context, task *models.Task, manual bool, done func())
	FetchTags(ctx context.Context, serverTime int64) error

	PushTask(ctx context.Context, localID int64) error
	PushTag(ctx context.Context, localID int64) error
	PushUpdate(ctx context.Context, localID int64) error
}

// Entities reads local records referenced from the command line.
type Entities interface {
	FetchTask(ctx context.Context, id int64) (*models.Task, error)
	FetchTagData(ctx context.Context, id int64) (*models.TagData, error)
	SyncedTagDataIDs(ctx context.Context) ([]storage.IDPair, error)
}

type Cli struct {
	io       iocli.IO
	session  SessionManager
	sync     Syncer
	entities Entities
	logger   *slog.Logger
}

func New(io iocli.IO, session SessionManager, syncer Syncer, entities Entities, logger *slog.Logger) *Cli {
	return &Cli{
		io:       io,
		session:  session,
		sync:     syncer,
		entities: entities,
		logger:   logger,
	}
}
