package sync

import (
	"context"

	"github.com/iudanet/tasksync/internal/client/syncctx"
	"github.com/iudanet/tasksync/internal/models"
)

// shouldPush проверяет общие условия для всех слушателей
func (s *Service) shouldPush(ctx context.Context, changed models.FieldSet, remoteID int64) bool {
	if syncctx.SuppressEcho(ctx) || s.bulk.Load() || len(changed) == 0 {
		return false
	}
	// запись, которая только что получила id с сервера, обратно не отправляем
	if changed.Has(models.FieldRemoteID) && remoteID > 0 {
		return false
	}
	return s.session.IsLoggedIn(ctx)
}

func (s *Service) onTaskSaved(ctx context.Context, entity any, changed models.FieldSet) {
	task, ok := entity.(*models.Task)
	if !ok || !s.shouldPush(ctx, changed, task.RemoteID) {
		return
	}
	// выполнение повторяющейся задачи отправляется отдельным сохранением
	// с WithRepeatCompleted, промежуточное состояние пропускаем
	if task.Recurrence != "" && task.IsCompleted() && !syncctx.RepeatCompleted(ctx) {
		return
	}

	task = task.Clone()
	changed = changed.Clone()
	s.goAsync(ctx, s.opts.PushDelay, "push-task", func(ctx context.Context) {
		if err := s.PushTaskOnSave(ctx, task, changed); err != nil {
			s.logger.Debug("Task push finished with error", "task_id", task.ID, "error", err)
		}
	})
}

func (s *Service) onTagDataSaved(ctx context.Context, entity any, changed models.FieldSet) {
	tag, ok := entity.(*models.TagData)
	if !ok || !s.shouldPush(ctx, changed, tag.RemoteID) {
		return
	}

	tag = tag.Clone()
	changed = changed.Clone()
	s.goAsync(ctx, 0, "push-tag", func(ctx context.Context) {
		if err := s.PushTagDataOnSave(ctx, tag, changed); err != nil {
			s.logger.Debug("Tag push finished with error", "tag_id", tag.ID, "error", err)
		}
	})
}

func (s *Service) onUpdateSaved(ctx context.Context, entity any, changed models.FieldSet) {
	update, ok := entity.(*models.Update)
	// комментарии только создаются, отправленные больше не трогаем
	if !ok || update.RemoteID > 0 || !s.shouldPush(ctx, changed, update.RemoteID) {
		return
	}

	update = update.Clone()
	changed = changed.Clone()
	s.goAsync(ctx, 0, "push-update", func(ctx context.Context) {
		if err := s.PushUpdateOnSave(ctx, update, changed, nil); err != nil {
			s.logger.Debug("Update push finished with error", "update_id", update.ID, "error", err)
		}
	})
}
