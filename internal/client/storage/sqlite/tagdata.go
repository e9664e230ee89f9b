package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"slices"

	"github.com/iudanet/tasksync/internal/client/storage"
	"github.com/iudanet/tasksync/internal/models"
)

const tagColumns = `remote_id, name, user_id, user, picture, thumb, flags, members,
	member_count, task_count, deletion_date`

func tagArgs(t *models.TagData) []any {
	return []any{
		t.RemoteID, t.Name, t.UserID, t.User, t.Picture, t.Thumb, t.Flags, t.Members,
		t.MemberCount, t.TaskCount, t.DeletionDate,
	}
}

func getTagData(ctx context.Context, q querier, id int64) (*models.TagData, error) {
	t := &models.TagData{}
	err := q.QueryRowContext(ctx, "SELECT id, "+tagColumns+" FROM tag_data WHERE id = ?", id).Scan(
		&t.ID, &t.RemoteID, &t.Name, &t.UserID, &t.User, &t.Picture, &t.Thumb, &t.Flags, &t.Members,
		&t.MemberCount, &t.TaskCount, &t.DeletionDate,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrTagDataNotFound
		}
		return nil, fmt.Errorf("failed to get tag data: %w", err)
	}
	return t, nil
}

// FetchTagData returns the tag with the local id
func (s *Store) FetchTagData(ctx context.Context, id int64) (*models.TagData, error) {
	return getTagData(ctx, s.db, id)
}

// CreateTagData inserts a new tag and assigns its local id
func (s *Store) CreateTagData(ctx context.Context, tag *models.TagData) error {
	query := "INSERT INTO tag_data (" + tagColumns + ") VALUES (" + placeholders(11) + ")"
	res, err := s.db.ExecContext(ctx, query, tagArgs(tag)...)
	if err != nil {
		return fmt.Errorf("failed to insert tag data: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get tag data id: %w", err)
	}
	tag.ID = id

	s.notify(ctx, models.KindTagData, tag.Clone(), tag.Diff(nil))
	return nil
}

// SaveTagData updates an existing tag
func (s *Store) SaveTagData(ctx context.Context, tag *models.TagData) error {
	var changed models.FieldSet

	err := s.inTx(ctx, func(tx *sql.Tx) error {
		old, err := getTagData(ctx, tx, tag.ID)
		if err != nil {
			return err
		}

		changed = tag.Diff(old)
		if len(changed) == 0 {
			return nil
		}

		query := `UPDATE tag_data SET remote_id = ?, name = ?, user_id = ?, user = ?, picture = ?,
			thumb = ?, flags = ?, members = ?, member_count = ?, task_count = ?, deletion_date = ?
			WHERE id = ?`
		if _, err := tx.ExecContext(ctx, query, append(tagArgs(tag), tag.ID)...); err != nil {
			return fmt.Errorf("failed to update tag data: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.notify(ctx, models.KindTagData, tag.Clone(), changed)
	return nil
}

// DeleteTagData removes the tag
func (s *Store) DeleteTagData(ctx context.Context, id int64) error {
	return deleteByID(ctx, s.db, "tag_data", id)
}

// TagDataByRemoteIDs maps remote ids to local tag ids
func (s *Store) TagDataByRemoteIDs(ctx context.Context, remoteIDs []int64) ([]storage.IDPair, error) {
	return idsByRemote(ctx, s.db, "tag_data", remoteIDs)
}

// SyncedTagDataIDs returns every tag with a remote id
func (s *Store) SyncedTagDataIDs(ctx context.Context) ([]storage.IDPair, error) {
	return queryIDPairs(ctx, s.db,
		"SELECT remote_id, id FROM tag_data WHERE remote_id > 0 ORDER BY remote_id, id")
}

// DeleteTagDataNotIn deletes synchronized tags missing from remoteIDs
func (s *Store) DeleteTagDataNotIn(ctx context.Context, remoteIDs []int64) (int64, error) {
	var deleted int64

	err := s.inTx(ctx, func(tx *sql.Tx) error {
		// Сначала дочитываем все строки, потом удаляем
		pairs, err := queryIDPairs(ctx, tx, "SELECT remote_id, id FROM tag_data WHERE remote_id > 0")
		if err != nil {
			return err
		}

		for _, p := range pairs {
			if slices.Contains(remoteIDs, p.RemoteID) {
				continue
			}
			if err := deleteByID(ctx, tx, "tag_data", p.LocalID); err != nil {
				return err
			}
			deleted++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return deleted, nil
}
