package sync

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"slices"
	"strconv"

	"github.com/iudanet/tasksync/internal/client/api"
	"github.com/iudanet/tasksync/internal/client/storage"
	"github.com/iudanet/tasksync/internal/client/syncctx"
	"github.com/iudanet/tasksync/internal/jsonmap"
	"github.com/iudanet/tasksync/internal/models"
	pkgapi "github.com/iudanet/tasksync/pkg/api"
)

// Watermark scopes.
const (
	ScopeTags = "tags"
)

// ScopeTasks returns the watermark scope of tasks in the local tag.
func ScopeTasks(localTagID int64) string { return "tasks:" + strconv.FormatInt(localTagID, 10) }

// ScopeUpdates returns the watermark scope of updates in the local tag.
func ScopeUpdates(localTagID int64) string { return "updates:" + strconv.FormatInt(localTagID, 10) }

// ScopeComments returns the watermark scope of comments on the local task.
func ScopeComments(localTaskID int64) string {
	return "comments:" + strconv.FormatInt(localTaskID, 10)
}

// TimeKey is the metadata key of the last server time seen for scope.
func TimeKey(scope string) string { return "sync_time_" + scope }

// LastKey is the metadata key of the last successful fetch time (ms) for scope.
func LastKey(scope string) string { return "sync_last_" + scope }

// fetchStrategy описывает слияние списка одного типа сущностей
type fetchStrategy[T any] struct {
	// locals находит локальные записи с данными remote id
	locals func(ctx context.Context, remoteIDs []int64) ([]storage.IDPair, error)
	// scoped находит все синхронизированные записи области для полной выборки
	scoped func(ctx context.Context) ([]storage.IDPair, error)
	load   func(ctx context.Context, localID int64) (T, error)
	blank  func() T
	// merge применяет JSON с сервера к записи
	merge func(ctx context.Context, raw []byte, entity T) error
	// persist создает или сохраняет запись и возвращает ее локальный id
	persist func(ctx context.Context, entity T) (int64, error)
	remove  func(ctx context.Context, localID int64) error
	kind    models.Kind
}

type reconcileResult struct {
	merged  int
	deleted int
}

// reconcile merges remote items onto local rows, one local row per remote id.
// A malformed item rejects the whole list before anything is written.
// When manual is set, synchronized local rows of the scope that are missing
// from items are deleted.
func reconcile[T any](ctx context.Context, st fetchStrategy[T], items [][]byte, manual bool) (reconcileResult, error) {
	var res reconcileResult

	// весь список проверяется до первой записи в хранилище
	remoteIDs := make([]int64, 0, len(items))
	for _, raw := range items {
		id, err := jsonmap.RemoteID(st.kind, raw)
		if err != nil {
			return res, err
		}
		if err := st.merge(ctx, raw, st.blank()); err != nil {
			return res, err
		}
		remoteIDs = append(remoteIDs, id)
	}

	pairs, err := st.locals(ctx, remoteIDs)
	if err != nil {
		return res, err
	}
	if manual && st.scoped != nil {
		scoped, err := st.scoped(ctx)
		if err != nil {
			return res, err
		}
		pairs = append(pairs, scoped...)
	}
	slices.SortFunc(pairs, func(a, b storage.IDPair) int {
		if c := cmp.Compare(a.RemoteID, b.RemoteID); c != 0 {
			return c
		}
		return cmp.Compare(a.LocalID, b.LocalID)
	})
	pairs = slices.Compact(pairs)

	// дубликаты по remote id схлопываются: остается последняя запись
	locals := make(map[int64]int64, len(pairs))
	for _, p := range pairs {
		if prev, ok := locals[p.RemoteID]; ok {
			if err := st.remove(ctx, prev); err != nil {
				return res, fmt.Errorf("failed to delete duplicate %s %d: %w", st.kind, prev, err)
			}
			res.deleted++
		}
		locals[p.RemoteID] = p.LocalID
	}

	suppressed := syncctx.WithSuppressEcho(ctx)
	seen := make(map[int64]int64, len(items))
	for i, raw := range items {
		remoteID := remoteIDs[i]

		localID, ok := locals[remoteID]
		if ok {
			delete(locals, remoteID)
		} else {
			// тот же remote id уже встречался в этом списке
			localID = seen[remoteID]
		}

		entity := st.blank()
		if localID != 0 {
			loaded, err := st.load(ctx, localID)
			if err != nil {
				return res, err
			}
			entity = loaded
		}

		if err := st.merge(ctx, raw, entity); err != nil {
			return res, err
		}
		id, err := st.persist(suppressed, entity)
		if err != nil {
			return res, err
		}
		seen[remoteID] = id
		res.merged++
	}

	if manual {
		for _, localID := range locals {
			if err := st.remove(ctx, localID); err != nil {
				return res, fmt.Errorf("failed to delete %s %d: %w", st.kind, localID, err)
			}
			res.deleted++
		}
	}

	return res, nil
}

// fetchList requests a *_list procedure after the scope watermark, hands the
// items to process and advances the watermark on success.
func (s *Service) fetchList(ctx context.Context, kind models.Kind, method, scope string, params api.Params,
	manual bool, process func(ctx context.Context, items [][]byte) (reconcileResult, error)) error {
	token, err := s.session.Token(ctx)
	if err != nil {
		return err
	}

	var since int64
	if !manual {
		since, err = s.metadata.GetLong(ctx, TimeKey(scope), 0)
		if err != nil {
			return fmt.Errorf("failed to read watermark: %w", err)
		}
	}

	params = append(append(api.Params{}, params...), api.Params{
		{Key: pkgapi.ParamToken, Value: token},
		{Key: pkgapi.ParamModifiedAfter, Value: since},
	}...)

	raw, err := s.invoker.Invoke(ctx, method, params)
	if err != nil {
		return fmt.Errorf("%s: %w", method, err)
	}
	list, err := jsonmap.ParseList(kind, raw)
	if err != nil {
		return fmt.Errorf("%s: %w", method, err)
	}

	res, err := process(ctx, list.List)
	if err != nil {
		return fmt.Errorf("%s: %w", method, err)
	}

	if err := s.metadata.SetLong(ctx, TimeKey(scope), list.Time); err != nil {
		return fmt.Errorf("failed to save watermark: %w", err)
	}
	if err := s.metadata.SetLong(ctx, LastKey(scope), s.opts.Now().UnixMilli()); err != nil {
		return fmt.Errorf("failed to save last fetch time: %w", err)
	}

	s.logger.Info("Fetched list", "method", method, "scope", scope, "manual", manual,
		"since", since, "items", len(list.List), "merged", res.merged, "deleted", res.deleted)
	return nil
}

// fetchAsync runs fetchList off the caller's goroutine and calls done on success
func (s *Service) fetchAsync(ctx context.Context, name string, done func(), fetch func(ctx context.Context) error) {
	if !s.session.IsLoggedIn(ctx) {
		return
	}
	s.goAsync(ctx, 0, name, func(ctx context.Context) {
		if err := fetch(ctx); err != nil {
			s.logger.Warn("Fetch failed", "fetch", name, "error", err)
			return
		}
		if done != nil {
			done()
		}
	})
}

// FetchTagDataDashboard fetches the tag list asynchronously
func (s *Service) FetchTagDataDashboard(ctx context.Context, manual bool, done func()) {
	s.fetchAsync(ctx, "fetch-tags", done, func(ctx context.Context) error {
		return s.fetchTagDataDashboard(ctx, manual)
	})
}

func (s *Service) fetchTagDataDashboard(ctx context.Context, manual bool) error {
	self, err := s.selfID(ctx)
	if err != nil {
		return err
	}
	st := s.tagStrategy(self)
	st.scoped = s.store.SyncedTagDataIDs

	return s.fetchList(ctx, models.KindTagData, pkgapi.ProcTagList, ScopeTags, nil, manual,
		func(ctx context.Context, items [][]byte) (reconcileResult, error) {
			return reconcile(ctx, st, items, manual)
		})
}

// FetchTasksForTag fetches tasks of the tag asynchronously
func (s *Service) FetchTasksForTag(ctx context.Context, tag *models.TagData, manual bool, done func()) {
	tag = tag.Clone()
	s.fetchAsync(ctx, "fetch-tasks", done, func(ctx context.Context) error {
		return s.fetchTasksForTag(ctx, tag, manual)
	})
}

func (s *Service) fetchTasksForTag(ctx context.Context, tag *models.TagData, manual bool) error {
	if tag.RemoteID == 0 {
		return fmt.Errorf("tag %d is not synchronized", tag.ID)
	}
	self, err := s.selfID(ctx)
	if err != nil {
		return err
	}
	st := s.taskStrategy(self)
	st.scoped = func(ctx context.Context) ([]storage.IDPair, error) {
		return s.store.TaskIDsForTag(ctx, tag.RemoteID)
	}

	params := api.Params{}.Add(pkgapi.ParamTagID, tag.RemoteID)
	return s.fetchList(ctx, models.KindTask, pkgapi.ProcTaskList, ScopeTasks(tag.ID), params, manual,
		func(ctx context.Context, items [][]byte) (reconcileResult, error) {
			return reconcile(ctx, st, items, manual)
		})
}

// FetchUpdatesForTag fetches activity of the tag asynchronously
func (s *Service) FetchUpdatesForTag(ctx context.Context, tag *models.TagData, manual bool, done func()) {
	tag = tag.Clone()
	s.fetchAsync(ctx, "fetch-tag-updates", done, func(ctx context.Context) error {
		if tag.RemoteID == 0 {
			return fmt.Errorf("tag %d is not synchronized", tag.ID)
		}
		params := api.Params{}.Add(pkgapi.ParamTagID, tag.RemoteID)
		return s.fetchUpdates(ctx, ScopeUpdates(tag.ID), params, manual,
			func(ctx context.Context) ([]storage.IDPair, error) {
				return s.store.UpdateIDsForTag(ctx, tag.RemoteID)
			})
	})
}

// FetchUpdatesForTask fetches comments of the task asynchronously
func (s *Service) FetchUpdatesForTask(ctx context.Context, task *models.Task, manual bool, done func()) {
	task = task.Clone()
	s.fetchAsync(ctx, "fetch-task-comments", done, func(ctx context.Context) error {
		if task.RemoteID == 0 {
			return fmt.Errorf("task %d is not synchronized", task.ID)
		}
		params := api.Params{}.Add(pkgapi.ParamTaskID, task.RemoteID)
		return s.fetchUpdates(ctx, ScopeComments(task.ID), params, manual,
			func(ctx context.Context) ([]storage.IDPair, error) {
				return s.store.UpdateIDsForTask(ctx, task.RemoteID)
			})
	})
}

func (s *Service) fetchUpdates(ctx context.Context, scope string, params api.Params, manual bool,
	scoped func(ctx context.Context) ([]storage.IDPair, error)) error {
	self, err := s.selfID(ctx)
	if err != nil {
		return err
	}
	st := s.updateStrategy(self)
	st.scoped = scoped

	return s.fetchList(ctx, models.KindUpdate, pkgapi.ProcActivityList, scope, params, manual,
		func(ctx context.Context, items [][]byte) (reconcileResult, error) {
			return reconcile(ctx, st, items, manual)
		})
}

// FetchTags synchronously refreshes tags changed after serverTime (seconds).
// With serverTime 0 the result is complete and synchronized tags missing
// from it are deleted.
func (s *Service) FetchTags(ctx context.Context, serverTime int64) error {
	token, err := s.session.Token(ctx)
	if err != nil {
		return err
	}
	self, err := s.selfID(ctx)
	if err != nil {
		return err
	}

	params := api.Params{}.
		Add(pkgapi.ParamToken, token).
		Add(pkgapi.ParamModifiedAfter, serverTime)
	raw, err := s.invoker.Invoke(ctx, pkgapi.ProcTagList, params)
	if err != nil {
		return fmt.Errorf("%s: %w", pkgapi.ProcTagList, err)
	}
	list, err := jsonmap.ParseList(models.KindTagData, raw)
	if err != nil {
		return fmt.Errorf("%s: %w", pkgapi.ProcTagList, err)
	}

	if _, err := reconcile(ctx, s.tagStrategy(self), list.List, false); err != nil {
		return fmt.Errorf("%s: %w", pkgapi.ProcTagList, err)
	}

	if serverTime == 0 {
		remoteIDs := make([]int64, 0, len(list.List))
		for _, raw := range list.List {
			id, err := jsonmap.RemoteID(models.KindTagData, raw)
			if err != nil {
				return err
			}
			remoteIDs = append(remoteIDs, id)
		}
		deleted, err := s.store.DeleteTagDataNotIn(ctx, remoteIDs)
		if err != nil {
			return fmt.Errorf("failed to delete stale tags: %w", err)
		}
		s.logger.Info("Full tag refresh", "tags", len(remoteIDs), "deleted", deleted)
	}
	return nil
}

// FetchTag refreshes a single tag by remote id, or by name if it has none
func (s *Service) FetchTag(ctx context.Context, tag *models.TagData) error {
	return s.fetchTag(ctx, tag)
}

func (s *Service) fetchTag(ctx context.Context, tag *models.TagData) error {
	token, err := s.session.Token(ctx)
	if err != nil {
		return err
	}

	params := api.Params{}
	if tag.RemoteID == 0 {
		if tag.Name == "" {
			return nil
		}
		params = params.Add(pkgapi.ParamName, tag.Name)
	} else {
		params = params.Add(pkgapi.ParamID, tag.RemoteID)
	}

	raw, err := s.invoker.Invoke(ctx, pkgapi.ProcTagShow, params.Add(pkgapi.ParamToken, token))
	if err != nil {
		return fmt.Errorf("%s: %w", pkgapi.ProcTagShow, err)
	}

	self, err := s.selfID(ctx)
	if err != nil {
		return err
	}
	if err := jsonmap.TagFromJSON(raw, tag, self); err != nil {
		return err
	}

	_, err = s.persistTag(syncctx.WithSuppressEcho(ctx), tag)
	return err
}

// FetchTask refreshes a single synchronized task and its tags
func (s *Service) FetchTask(ctx context.Context, task *models.Task) error {
	token, err := s.session.Token(ctx)
	if err != nil {
		return err
	}
	if task.RemoteID == 0 {
		return nil
	}

	params := api.Params{}.
		Add(pkgapi.ParamID, task.RemoteID).
		Add(pkgapi.ParamToken, token)
	raw, err := s.invoker.Invoke(ctx, pkgapi.ProcTaskShow, params)
	if err != nil {
		return fmt.Errorf("%s: %w", pkgapi.ProcTaskShow, err)
	}

	self, err := s.selfID(ctx)
	if err != nil {
		return err
	}
	links, err := jsonmap.TaskFromJSON(raw, task, self, s.opts.Now())
	if err != nil {
		return err
	}

	_, err = s.persistTask(syncctx.WithSuppressEcho(ctx), task, links)
	return err
}

func (s *Service) persistTask(ctx context.Context, task *models.Task, links []models.TagLink) (int64, error) {
	if task.ID == 0 {
		if err := s.store.CreateTask(ctx, task); err != nil {
			return 0, err
		}
	} else if err := s.store.SaveTask(ctx, task); err != nil {
		return 0, err
	}
	if err := s.store.SyncTagLinks(ctx, task.ID, links); err != nil {
		return 0, err
	}
	return task.ID, nil
}

func (s *Service) persistTag(ctx context.Context, tag *models.TagData) (int64, error) {
	if tag.ID == 0 {
		if err := s.store.CreateTagData(ctx, tag); err != nil {
			return 0, err
		}
		return tag.ID, nil
	}
	if err := s.store.SaveTagData(ctx, tag); err != nil {
		return 0, err
	}
	return tag.ID, nil
}

func (s *Service) persistUpdate(ctx context.Context, update *models.Update) (int64, error) {
	if update.ID == 0 {
		if err := s.store.CreateUpdate(ctx, update); err != nil {
			return 0, err
		}
		return update.ID, nil
	}
	if err := s.store.SaveUpdate(ctx, update); err != nil {
		return 0, err
	}
	return update.ID, nil
}

// taskEntry связывает задачу с тегами из того же JSON до сохранения
type taskEntry struct {
	task  *models.Task
	links []models.TagLink
}

func (s *Service) taskStrategy(self int64) fetchStrategy[*taskEntry] {
	return fetchStrategy[*taskEntry]{
		kind:   models.KindTask,
		locals: s.store.TasksByRemoteIDs,
		load: func(ctx context.Context, id int64) (*taskEntry, error) {
			task, err := s.store.FetchTask(ctx, id)
			if errors.Is(err, storage.ErrTaskNotFound) {
				return &taskEntry{task: &models.Task{}}, nil
			}
			if err != nil {
				return nil, err
			}
			return &taskEntry{task: task}, nil
		},
		blank: func() *taskEntry { return &taskEntry{task: &models.Task{}} },
		merge: func(ctx context.Context, raw []byte, e *taskEntry) error {
			links, err := jsonmap.TaskFromJSON(raw, e.task, self, s.opts.Now())
			e.links = links
			return err
		},
		persist: func(ctx context.Context, e *taskEntry) (int64, error) {
			return s.persistTask(ctx, e.task, e.links)
		},
		remove: s.store.DeleteTask,
	}
}

func (s *Service) tagStrategy(self int64) fetchStrategy[*models.TagData] {
	return fetchStrategy[*models.TagData]{
		kind:   models.KindTagData,
		locals: s.store.TagDataByRemoteIDs,
		load: func(ctx context.Context, id int64) (*models.TagData, error) {
			tag, err := s.store.FetchTagData(ctx, id)
			if errors.Is(err, storage.ErrTagDataNotFound) {
				return &models.TagData{}, nil
			}
			return tag, err
		},
		blank: func() *models.TagData { return &models.TagData{} },
		merge: func(ctx context.Context, raw []byte, tag *models.TagData) error {
			return jsonmap.TagFromJSON(raw, tag, self)
		},
		persist: s.persistTag,
		remove:  s.store.DeleteTagData,
	}
}

func (s *Service) updateStrategy(self int64) fetchStrategy[*models.Update] {
	return fetchStrategy[*models.Update]{
		kind:   models.KindUpdate,
		locals: s.store.UpdatesByRemoteIDs,
		load: func(ctx context.Context, id int64) (*models.Update, error) {
			update, err := s.store.FetchUpdate(ctx, id)
			if errors.Is(err, storage.ErrUpdateNotFound) {
				return &models.Update{}, nil
			}
			return update, err
		},
		blank: func() *models.Update { return &models.Update{} },
		merge: func(ctx context.Context, raw []byte, update *models.Update) error {
			return jsonmap.UpdateFromJSON(raw, update, self)
		},
		persist: s.persistUpdate,
		remove:  s.store.DeleteUpdate,
	}
}
