package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/iudanet/tasksync/internal/client/storage"
	"github.com/iudanet/tasksync/internal/models"
)

const taskColumns = `remote_id, title, importance, due_date, completion_date, creation_date,
	deletion_date, modification_date, notes, recurrence, flags, user_id, user,
	creator_id, details, details_date, last_sync, comment_count`

func taskArgs(t *models.Task) []any {
	return []any{
		t.RemoteID, t.Title, t.Importance, t.DueDate, t.CompletionDate, t.CreationDate,
		t.DeletionDate, t.ModificationDate, t.Notes, t.Recurrence, t.Flags, t.UserID, t.User,
		t.CreatorID, t.Details, t.DetailsDate, t.LastSync, t.CommentCount,
	}
}

func getTask(ctx context.Context, q querier, id int64) (*models.Task, error) {
	t := &models.Task{}
	err := q.QueryRowContext(ctx, "SELECT id, "+taskColumns+" FROM tasks WHERE id = ?", id).Scan(
		&t.ID, &t.RemoteID, &t.Title, &t.Importance, &t.DueDate, &t.CompletionDate, &t.CreationDate,
		&t.DeletionDate, &t.ModificationDate, &t.Notes, &t.Recurrence, &t.Flags, &t.UserID, &t.User,
		&t.CreatorID, &t.Details, &t.DetailsDate, &t.LastSync, &t.CommentCount,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrTaskNotFound
		}
		return nil, fmt.Errorf("failed to get task: %w", err)
	}
	return t, nil
}

// FetchTask returns the task with the local id
func (s *Store) FetchTask(ctx context.Context, id int64) (*models.Task, error) {
	return getTask(ctx, s.db, id)
}

// CreateTask inserts a new task and assigns its local id
func (s *Store) CreateTask(ctx context.Context, task *models.Task) error {
	query := "INSERT INTO tasks (" + taskColumns + ") VALUES (" + placeholders(18) + ")"
	res, err := s.db.ExecContext(ctx, query, taskArgs(task)...)
	if err != nil {
		return fmt.Errorf("failed to insert task: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get task id: %w", err)
	}
	task.ID = id

	s.notify(ctx, models.KindTask, task.Clone(), task.Diff(nil))
	return nil
}

// SaveTask updates an existing task. Listeners receive only changed fields;
// a save that changes nothing notifies nobody.
func (s *Store) SaveTask(ctx context.Context, task *models.Task) error {
	var changed models.FieldSet

	err := s.inTx(ctx, func(tx *sql.Tx) error {
		old, err := getTask(ctx, tx, task.ID)
		if err != nil {
			return err
		}

		changed = task.Diff(old)
		if len(changed) == 0 {
			return nil
		}

		query := `UPDATE tasks SET remote_id = ?, title = ?, importance = ?, due_date = ?,
			completion_date = ?, creation_date = ?, deletion_date = ?, modification_date = ?,
			notes = ?, recurrence = ?, flags = ?, user_id = ?, user = ?, creator_id = ?,
			details = ?, details_date = ?, last_sync = ?, comment_count = ?
			WHERE id = ?`
		if _, err := tx.ExecContext(ctx, query, append(taskArgs(task), task.ID)...); err != nil {
			return fmt.Errorf("failed to update task: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.notify(ctx, models.KindTask, task.Clone(), changed)
	return nil
}

// DeleteTask removes the task and its tag links
func (s *Store) DeleteTask(ctx context.Context, id int64) error {
	return s.inTx(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, "DELETE FROM task_tags WHERE task_id = ?", id); err != nil {
			return fmt.Errorf("failed to delete task tags: %w", err)
		}
		return deleteByID(ctx, tx, "tasks", id)
	})
}

// TasksByRemoteIDs maps remote ids to local task ids
func (s *Store) TasksByRemoteIDs(ctx context.Context, remoteIDs []int64) ([]storage.IDPair, error) {
	return idsByRemote(ctx, s.db, "tasks", remoteIDs)
}

// TaskIDsForTag returns synchronized tasks linked to the remote tag
func (s *Store) TaskIDsForTag(ctx context.Context, tagRemoteID int64) ([]storage.IDPair, error) {
	query := `SELECT DISTINCT t.remote_id, t.id FROM tasks t
		JOIN task_tags tt ON tt.task_id = t.id
		WHERE tt.remote_id = ? AND t.remote_id > 0
		ORDER BY t.remote_id, t.id`
	return queryIDPairs(ctx, s.db, query, tagRemoteID)
}

// TagLinks lists tag links of the task ordered by name
func (s *Store) TagLinks(ctx context.Context, taskID int64) ([]models.TagLink, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT task_id, name, remote_id FROM task_tags WHERE task_id = ? ORDER BY name", taskID)
	if err != nil {
		return nil, fmt.Errorf("failed to query tag links: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var links []models.TagLink
	for rows.Next() {
		var l models.TagLink
		if err := rows.Scan(&l.TaskID, &l.Name, &l.RemoteID); err != nil {
			return nil, fmt.Errorf("failed to scan tag link: %w", err)
		}
		links = append(links, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate tag links: %w", err)
	}
	return links, nil
}

// SyncTagLinks replaces every tag link of the task
func (s *Store) SyncTagLinks(ctx context.Context, taskID int64, links []models.TagLink) error {
	return s.inTx(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, "DELETE FROM task_tags WHERE task_id = ?", taskID); err != nil {
			return fmt.Errorf("failed to clear tag links: %w", err)
		}
		for _, l := range links {
			if l.Name == "" {
				continue
			}
			_, err := tx.ExecContext(ctx,
				"INSERT OR REPLACE INTO task_tags (task_id, name, remote_id) VALUES (?, ?, ?)",
				taskID, l.Name, l.RemoteID)
			if err != nil {
				return fmt.Errorf("failed to insert tag link: %w", err)
			}
		}
		return nil
	})
}
