package cli

import (
	"context"
	"time"
)

// runDaemon регистрирует слушателей и периодически выполняет
// инкрементальную выборку до отмены ctx
func (c *Cli) runDaemon(ctx context.Context, interval time.Duration) error {
	c.sync.Start(ctx)
	c.io.Printf("Sync running, fetching every %s. Press Ctrl+C to stop.\n", interval)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	c.fetchIncremental(ctx)
	for {
		select {
		case <-ctx.Done():
			pending := c.sync.PendingRetries()
			c.sync.Stop()
			if pending > 0 {
				c.io.Printf("⚠️  %d push(es) were waiting for retry and are dropped\n", pending)
			}
			c.io.Println("Sync stopped")
			return nil
		case <-ticker.C:
			c.fetchIncremental(ctx)
		}
	}
}

// fetchIncremental запрашивает изменения списков, затем задач и активности
// каждого синхронизированного списка
func (c *Cli) fetchIncremental(ctx context.Context) {
	c.sync.FetchTagDataDashboard(ctx, false, func() {
		pairs, err := c.entities.SyncedTagDataIDs(ctx)
		if err != nil {
			c.logger.Error("Failed to list tags", "error", err)
			return
		}
		for _, p := range pairs {
			tag, err := c.entities.FetchTagData(ctx, p.LocalID)
			if err != nil {
				c.logger.Warn("Tag disappeared during fetch", "tag_id", p.LocalID, "error", err)
				continue
			}
			c.sync.FetchTasksForTag(ctx, tag, false, nil)
			c.sync.FetchUpdatesForTag(ctx, tag, false, nil)
		}
	})
}
