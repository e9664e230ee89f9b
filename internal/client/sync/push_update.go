package sync

import (
	"context"
	"errors"
	"fmt"

	"github.com/tidwall/gjson"

	"github.com/iudanet/tasksync/internal/client/api"
	"github.com/iudanet/tasksync/internal/client/storage"
	"github.com/iudanet/tasksync/internal/client/syncctx"
	"github.com/iudanet/tasksync/internal/models"
	pkgapi "github.com/iudanet/tasksync/pkg/api"
)

// PushUpdateOnSave sends a new comment to the server. picture is optional.
func (s *Service) PushUpdateOnSave(ctx context.Context, update *models.Update, changed models.FieldSet, picture []byte) error {
	unlock := s.locks.Lock(models.KindUpdate, update.ID)
	defer unlock()
	return s.pushUpdateOnSave(ctx, update, changed, picture)
}

// PushUpdate sends the whole update to the server
func (s *Service) PushUpdate(ctx context.Context, localID int64) error {
	return s.PushUpdateWithPicture(ctx, localID, nil)
}

// PushUpdateWithPicture sends the whole update with an attached picture
func (s *Service) PushUpdateWithPicture(ctx context.Context, localID int64, picture []byte) error {
	unlock := s.locks.Lock(models.KindUpdate, localID)
	defer unlock()

	update, err := s.store.FetchUpdate(ctx, localID)
	if err != nil {
		if errors.Is(err, storage.ErrUpdateNotFound) {
			s.logger.Debug("Update to push no longer exists", "update_id", localID)
			return nil
		}
		return fmt.Errorf("failed to load update %d: %w", localID, err)
	}
	return s.pushUpdateOnSave(ctx, update, models.AllFields(models.KindUpdate), picture)
}

func (s *Service) pushUpdateOnSave(ctx context.Context, update *models.Update, changed models.FieldSet, picture []byte) error {
	// без сообщения комментарий не создается
	if !changed.Has(models.FieldMessage) {
		return nil
	}
	// комментарии только добавляются, повторная отправка создаст дубликат
	if update.RemoteID > 0 {
		s.logger.Debug("Update already on server", "update_id", update.ID, "remote_id", update.RemoteID)
		return nil
	}

	params := api.Params{}.Add(pkgapi.ParamMessage, update.Message)
	if tagID := update.FirstTagID(); tagID != "" {
		params = params.Add(pkgapi.ParamTagID, tagID)
	}
	if update.TaskRemoteID > 0 {
		params = params.Add(pkgapi.ParamTaskID, update.TaskRemoteID)
	}

	token, err := s.session.Token(ctx)
	if err != nil {
		return err
	}
	params = params.Add(pkgapi.ParamToken, token)

	var result []byte
	if picture == nil {
		result, err = s.invoker.Invoke(ctx, pkgapi.ProcCommentAdd, params)
	} else {
		result, err = s.invoker.Post(ctx, pkgapi.ProcCommentAdd, picture, params)
	}
	if err != nil {
		return s.pushFailed(ctx, models.KindUpdate, update.ID, err)
	}

	stored, err := s.store.FetchUpdate(ctx, update.ID)
	if err != nil {
		if errors.Is(err, storage.ErrUpdateNotFound) {
			return nil
		}
		return fmt.Errorf("failed to load update %d: %w", update.ID, err)
	}
	stored.RemoteID = gjson.GetBytes(result, "id").Int()
	stored.Picture = gjson.GetBytes(result, "picture").String()

	if err := s.store.SaveUpdate(syncctx.WithSuppressEcho(ctx), stored); err != nil {
		s.logger.Error("Failed to save comment_add result", "update_id", update.ID, "error", err)
		return fmt.Errorf("failed to save update: %w", err)
	}
	s.toast(ctx, models.KindUpdate, nil)
	return nil
}
