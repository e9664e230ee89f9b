package cli

import (
	"context"
	"fmt"

	"github.com/iudanet/tasksync/internal/client/api"
	"github.com/iudanet/tasksync/internal/models"
)

// runPush отправляет запись целиком
func (c *Cli) runPush(ctx context.Context, kind models.Kind, localID int64) error {
	var err error
	switch kind {
	case models.KindTask:
		err = c.sync.PushTask(ctx, localID)
	case models.KindTagData:
		err = c.sync.PushTag(ctx, localID)
	case models.KindUpdate:
		err = c.sync.PushUpdate(ctx, localID)
	default:
		return fmt.Errorf("unknown kind %q", kind)
	}

	if err != nil {
		if api.IsTransient(err) {
			c.io.Println("⚠️  Server unreachable, the push will be retried while 'tasksync run' is active.")
		}
		return fmt.Errorf("push %s %d: %w", kind, localID, err)
	}

	c.io.Printf("✓ Pushed %s %d\n", kind, localID)
	return nil
}
