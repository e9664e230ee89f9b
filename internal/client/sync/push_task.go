package sync

import (
	"context"
	"errors"
	"fmt"

	"github.com/tidwall/gjson"

	"github.com/iudanet/tasksync/internal/client/api"
	"github.com/iudanet/tasksync/internal/client/storage"
	"github.com/iudanet/tasksync/internal/client/syncctx"
	"github.com/iudanet/tasksync/internal/jsonmap"
	"github.com/iudanet/tasksync/internal/models"
	"github.com/iudanet/tasksync/internal/validation"
	pkgapi "github.com/iudanet/tasksync/pkg/api"
)

// PushTaskOnSave sends the changed fields of a saved task to the server
func (s *Service) PushTaskOnSave(ctx context.Context, task *models.Task, changed models.FieldSet) error {
	unlock := s.locks.Lock(models.KindTask, task.ID)
	defer unlock()
	return s.pushTaskOnSave(ctx, task, changed)
}

// PushTask sends the whole task to the server
func (s *Service) PushTask(ctx context.Context, localID int64) error {
	unlock := s.locks.Lock(models.KindTask, localID)
	defer unlock()
	return s.pushTask(ctx, localID)
}

func (s *Service) pushTask(ctx context.Context, localID int64) error {
	task, err := s.store.FetchTask(ctx, localID)
	if err != nil {
		if errors.Is(err, storage.ErrTaskNotFound) {
			s.logger.Debug("Task to push no longer exists", "task_id", localID)
			return nil
		}
		return fmt.Errorf("failed to load task %d: %w", localID, err)
	}
	return s.pushTaskOnSave(ctx, task, models.AllFields(models.KindTask))
}

func (s *Service) pushTaskOnSave(ctx context.Context, task *models.Task, changed models.FieldSet) error {
	token, err := s.session.Token(ctx)
	if err != nil {
		return err
	}

	remoteID := task.RemoteID
	if remoteID == 0 {
		stored, err := s.store.FetchTask(ctx, task.ID)
		if err != nil {
			if errors.Is(err, storage.ErrTaskNotFound) {
				return nil
			}
			return fmt.Errorf("failed to load task %d: %w", task.ID, err)
		}
		remoteID = stored.RemoteID
	}
	newlyCreated := remoteID == 0

	// задачи-подсказки и пустые задачи на сервер не попадают
	if newlyCreated {
		if err := validation.ValidateNewTaskTitle(task.Title, s.opts.ReservedTitles); err != nil {
			s.logger.Debug("Task not pushed", "task_id", task.ID, "reason", err)
			return nil
		}
	}

	params, err := s.taskParams(ctx, task, changed, newlyCreated)
	if err != nil {
		return err
	}
	if len(params) == 0 {
		return nil
	}

	if !newlyCreated {
		params = params.Add(pkgapi.ParamID, remoteID)
	} else if !changed.Has(models.FieldTitle) {
		// без заголовка сервер не создаст задачу
		return s.pushTask(ctx, task.ID)
	}

	result, err := s.invoker.Invoke(ctx, pkgapi.ProcTaskSave, params.Add(pkgapi.ParamToken, token))
	if err != nil {
		return s.pushFailed(ctx, models.KindTask, task.ID, err)
	}

	if err := s.applyTaskResult(ctx, task.ID, newlyCreated, result); err != nil {
		s.logger.Error("Failed to apply task_save result", "task_id", task.ID, "error", err)
		return err
	}
	s.toast(ctx, models.KindTask, nil)
	return nil
}

// taskParams строит параметры task_save только из измененных полей
func (s *Service) taskParams(ctx context.Context, task *models.Task, changed models.FieldSet, newlyCreated bool) (api.Params, error) {
	var params api.Params

	if changed.Has(models.FieldTitle) {
		params = params.Add(pkgapi.ParamTitle, task.Title)
	}
	if changed.Has(models.FieldDueDate) {
		params = params.
			Add(pkgapi.ParamDue, jsonmap.ToSeconds(task.DueDate)).
			Add(pkgapi.ParamHasDueTime, task.HasDueTime())
	}
	if changed.Has(models.FieldNotes) {
		params = params.Add(pkgapi.ParamNotes, task.Notes)
	}
	if changed.Has(models.FieldDeletionDate) {
		params = params.Add(pkgapi.ParamDeletedAt, jsonmap.ToSeconds(task.DeletionDate))
	}
	if syncctx.RepeatCompleted(ctx) {
		params = params.Add(pkgapi.ParamCompleted, s.opts.Now().Unix())
	} else if changed.Has(models.FieldCompletionDate) {
		params = params.Add(pkgapi.ParamCompleted, jsonmap.ToSeconds(task.CompletionDate))
	}
	if changed.Has(models.FieldImportance) {
		params = params.Add(pkgapi.ParamImportance, task.Importance)
	}
	if changed.Has(models.FieldRecurrence) || (changed.Has(models.FieldFlags) && task.Recurrence != "") {
		params = params.Add(pkgapi.ParamRepeat, jsonmap.RepeatForRemote(task))
	}
	if (changed.Has(models.FieldUserID) && task.UserID >= 0) || task.UserID == models.UserIDUnassigned {
		userID := task.UserID
		if userID == models.UserIDSelf {
			self, err := s.selfID(ctx)
			if err != nil {
				return nil, err
			}
			userID = self
		}
		params = params.Add(pkgapi.ParamUserID, userID)
	}
	if syncctx.TagsChanged(ctx) || newlyCreated {
		links, err := s.store.TagLinks(ctx, task.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to load tags of task %d: %w", task.ID, err)
		}
		params = appendTagParams(params, links)
	}

	return params, nil
}

// appendTagParams: tag_ids[] для известных серверу тегов, tags[] по имени
// для остальных, пустой tags если тегов нет
func appendTagParams(params api.Params, links []models.TagLink) api.Params {
	if len(links) == 0 {
		return params.Add(pkgapi.ParamTags, "")
	}

	var ids []int64
	var names []string
	for _, l := range links {
		if l.RemoteID > 0 {
			ids = append(ids, l.RemoteID)
		} else {
			names = append(names, l.Name)
		}
	}
	if len(ids) > 0 {
		params = params.Add(pkgapi.ParamTagIDs, ids)
	}
	if len(names) > 0 {
		params = params.Add(pkgapi.ParamTagNames, names)
	}
	return params
}

// applyTaskResult записывает ответ сервера в задачу без повторной отправки.
// Если ответ неполный, у новой задачи сохраняется хотя бы remote id.
func (s *Service) applyTaskResult(ctx context.Context, localID int64, newlyCreated bool, result []byte) error {
	task, err := s.store.FetchTask(ctx, localID)
	if err != nil {
		if errors.Is(err, storage.ErrTaskNotFound) {
			return nil
		}
		return err
	}

	self, err := s.selfID(ctx)
	if err != nil {
		return err
	}
	links, err := jsonmap.TaskFromJSON(result, task, self, s.opts.Now())
	if err != nil {
		id := gjson.GetBytes(result, "id").Int()
		if !newlyCreated || id <= 0 {
			return err
		}
		s.logger.Warn("Incomplete task_save result, keeping remote id only", "task_id", localID, "error", err)
		task.RemoteID = id
		if err := s.store.SaveTask(syncctx.WithSuppressEcho(ctx), task); err != nil {
			return fmt.Errorf("failed to save task: %w", err)
		}
		return nil
	}

	if err := s.store.SaveTask(syncctx.WithSuppressEcho(ctx), task); err != nil {
		return fmt.Errorf("failed to save task: %w", err)
	}
	if err := s.store.SyncTagLinks(ctx, task.ID, links); err != nil {
		return fmt.Errorf("failed to save task tags: %w", err)
	}
	return nil
}

// pushFailed классифицирует ошибку отправки: транспортные ошибки попадают
// в очередь повторов, ошибки сервиса только логируются
func (s *Service) pushFailed(ctx context.Context, kind models.Kind, localID int64, err error) error {
	if api.IsTransient(err) {
		s.logger.Warn("Push failed, will retry", "kind", kind, "id", localID, "error", err)
		s.addFailedPush(models.FailedPush{Kind: kind, LocalID: localID})
	} else {
		s.logger.Error("Push rejected by server", "kind", kind, "id", localID, "error", err)
	}
	s.toast(ctx, kind, err)
	return err
}

func (s *Service) toast(ctx context.Context, kind models.Kind, err error) {
	if syncctx.ToastOnSave(ctx) {
		s.opts.Toaster.Toast(ctx, kind, err)
	}
}
