package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"

	"github.com/iudanet/tasksync/internal/client/storage"
	"github.com/iudanet/tasksync/internal/models"
)

const updateColumns = `remote_id, user_id, user, action, action_code, target_name, message,
	picture, creation_date, tags, task_remote_id`

func updateArgs(u *models.Update) []any {
	return []any{
		u.RemoteID, u.UserID, u.User, u.Action, u.ActionCode, u.TargetName, u.Message,
		u.Picture, u.CreationDate, u.Tags, u.TaskRemoteID,
	}
}

func getUpdate(ctx context.Context, q querier, id int64) (*models.Update, error) {
	u := &models.Update{}
	err := q.QueryRowContext(ctx, "SELECT id, "+updateColumns+" FROM updates WHERE id = ?", id).Scan(
		&u.ID, &u.RemoteID, &u.UserID, &u.User, &u.Action, &u.ActionCode, &u.TargetName, &u.Message,
		&u.Picture, &u.CreationDate, &u.Tags, &u.TaskRemoteID,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrUpdateNotFound
		}
		return nil, fmt.Errorf("failed to get update: %w", err)
	}
	return u, nil
}

// FetchUpdate returns the update with the local id
func (s *Store) FetchUpdate(ctx context.Context, id int64) (*models.Update, error) {
	return getUpdate(ctx, s.db, id)
}

// CreateUpdate inserts a new update and assigns its local id
func (s *Store) CreateUpdate(ctx context.Context, update *models.Update) error {
	query := "INSERT INTO updates (" + updateColumns + ") VALUES (" + placeholders(11) + ")"
	res, err := s.db.ExecContext(ctx, query, updateArgs(update)...)
	if err != nil {
		return fmt.Errorf("failed to insert update: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get update id: %w", err)
	}
	update.ID = id

	s.notify(ctx, models.KindUpdate, update.Clone(), update.Diff(nil))
	return nil
}

// SaveUpdate updates an existing update record
func (s *Store) SaveUpdate(ctx context.Context, update *models.Update) error {
	var changed models.FieldSet

	err := s.inTx(ctx, func(tx *sql.Tx) error {
		old, err := getUpdate(ctx, tx, update.ID)
		if err != nil {
			return err
		}

		changed = update.Diff(old)
		if len(changed) == 0 {
			return nil
		}

		query := `UPDATE updates SET remote_id = ?, user_id = ?, user = ?, action = ?, action_code = ?,
			target_name = ?, message = ?, picture = ?, creation_date = ?, tags = ?, task_remote_id = ?
			WHERE id = ?`
		if _, err := tx.ExecContext(ctx, query, append(updateArgs(update), update.ID)...); err != nil {
			return fmt.Errorf("failed to update update: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.notify(ctx, models.KindUpdate, update.Clone(), changed)
	return nil
}

// DeleteUpdate removes the update
func (s *Store) DeleteUpdate(ctx context.Context, id int64) error {
	return deleteByID(ctx, s.db, "updates", id)
}

// UpdatesByRemoteIDs maps remote ids to local update ids
func (s *Store) UpdatesByRemoteIDs(ctx context.Context, remoteIDs []int64) ([]storage.IDPair, error) {
	return idsByRemote(ctx, s.db, "updates", remoteIDs)
}

// UpdateIDsForTag returns synchronized updates whose tag list contains the remote tag
func (s *Store) UpdateIDsForTag(ctx context.Context, tagRemoteID int64) ([]storage.IDPair, error) {
	pattern := "%," + strconv.FormatInt(tagRemoteID, 10) + ",%"
	return queryIDPairs(ctx, s.db,
		"SELECT remote_id, id FROM updates WHERE remote_id > 0 AND tags LIKE ? ORDER BY remote_id, id",
		pattern)
}

// UpdateIDsForTask returns synchronized updates of the remote task
func (s *Store) UpdateIDsForTask(ctx context.Context, taskRemoteID int64) ([]storage.IDPair, error) {
	return queryIDPairs(ctx, s.db,
		"SELECT remote_id, id FROM updates WHERE remote_id > 0 AND task_remote_id = ? ORDER BY remote_id, id",
		taskRemoteID)
}
