package cli

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"

	"github.com/iudanet/tasksync/internal/models"
)

// ErrFetchFailed означает, что выборка завершилась без успеха (подробности в журнале)
var ErrFetchFailed = errors.New("fetch failed, see log for details")

// await запускает асинхронную выборку и ждет ее завершения
func (c *Cli) await(start func(done func())) error {
	var ok atomic.Bool
	start(func() { ok.Store(true) })
	c.sync.Wait()
	if !ok.Load() {
		return ErrFetchFailed
	}
	return nil
}

func (c *Cli) runFetchTags(ctx context.Context, manual bool) error {
	if err := c.await(func(done func()) {
		c.sync.FetchTagDataDashboard(ctx, manual, done)
	}); err != nil {
		return err
	}
	c.io.Println("✓ Tags fetched")
	return nil
}

func (c *Cli) runFetchTasks(ctx context.Context, tagID int64, manual bool) error {
	tag, err := c.syncedTag(ctx, tagID)
	if err != nil {
		return err
	}
	if err := c.await(func(done func()) {
		c.sync.FetchTasksForTag(ctx, tag, manual, done)
	}); err != nil {
		return err
	}
	c.io.Printf("✓ Tasks of %q fetched\n", tag.Name)
	return nil
}

// runFetchUpdates выбирает активность списка или комментарии задачи
func (c *Cli) runFetchUpdates(ctx context.Context, tagID, taskID int64, manual bool) error {
	switch {
	case tagID > 0 && taskID > 0:
		return fmt.Errorf("use either --tag or --task")
	case tagID > 0:
		tag, err := c.syncedTag(ctx, tagID)
		if err != nil {
			return err
		}
		if err := c.await(func(done func()) {
			c.sync.FetchUpdatesForTag(ctx, tag, manual, done)
		}); err != nil {
			return err
		}
		c.io.Printf("✓ Activity of %q fetched\n", tag.Name)
	case taskID > 0:
		task, err := c.entities.FetchTask(ctx, taskID)
		if err != nil {
			return fmt.Errorf("failed to load task %d: %w", taskID, err)
		}
		if task.RemoteID == 0 {
			return fmt.Errorf("task %d is not synchronized yet", taskID)
		}
		if err := c.await(func(done func()) {
			c.sync.FetchUpdatesForTask(ctx, task, manual, done)
		}); err != nil {
			return err
		}
		c.io.Printf("✓ Comments of %q fetched\n", task.Title)
	default:
		return fmt.Errorf("--tag or --task is required")
	}
	return nil
}

// runFetchAll выполняет полную выборку: списки, затем задачи и активность
// каждого списка. Слушатели на время выборки приостановлены.
func (c *Cli) runFetchAll(ctx context.Context) error {
	c.sync.BeginBulkSync()
	defer c.sync.EndBulkSync()

	if err := c.sync.FetchTags(ctx, 0); err != nil {
		return fmt.Errorf("failed to fetch tags: %w", err)
	}

	pairs, err := c.entities.SyncedTagDataIDs(ctx)
	if err != nil {
		return fmt.Errorf("failed to list tags: %w", err)
	}

	failed := 0
	for _, p := range pairs {
		tag, err := c.entities.FetchTagData(ctx, p.LocalID)
		if err != nil {
			c.logger.Warn("Tag disappeared during fetch", "tag_id", p.LocalID, "error", err)
			continue
		}
		if err := c.await(func(done func()) {
			c.sync.FetchTasksForTag(ctx, tag, true, done)
		}); err != nil {
			failed++
		}
		if err := c.await(func(done func()) {
			c.sync.FetchUpdatesForTag(ctx, tag, true, done)
		}); err != nil {
			failed++
		}
	}

	c.io.Printf("✓ Fetched %d tag(s)\n", len(pairs))
	if failed > 0 {
		c.io.Printf("⚠️  %d fetch(es) failed, see log for details\n", failed)
		return ErrFetchFailed
	}
	return nil
}

func (c *Cli) syncedTag(ctx context.Context, tagID int64) (*models.TagData, error) {
	if tagID <= 0 {
		return nil, fmt.Errorf("--tag is required")
	}
	tag, err := c.entities.FetchTagData(ctx, tagID)
	if err != nil {
		return nil, fmt.Errorf("failed to load tag %d: %w", tagID, err)
	}
	if tag.RemoteID == 0 {
		return nil, fmt.Errorf("tag %d is not synchronized yet", tagID)
	}
	return tag, nil
}
