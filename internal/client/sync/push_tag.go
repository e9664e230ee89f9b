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
	pkgapi "github.com/iudanet/tasksync/pkg/api"
)

// PushTagDataOnSave sends the changed fields of a saved tag to the server
func (s *Service) PushTagDataOnSave(ctx context.Context, tag *models.TagData, changed models.FieldSet) error {
	unlock := s.locks.Lock(models.KindTagData, tag.ID)
	defer unlock()
	return s.pushTagDataOnSave(ctx, tag, changed)
}

// PushTag sends the whole tag to the server
func (s *Service) PushTag(ctx context.Context, localID int64) error {
	unlock := s.locks.Lock(models.KindTagData, localID)
	defer unlock()

	tag, err := s.store.FetchTagData(ctx, localID)
	if err != nil {
		if errors.Is(err, storage.ErrTagDataNotFound) {
			s.logger.Debug("Tag to push no longer exists", "tag_id", localID)
			return nil
		}
		return fmt.Errorf("failed to load tag %d: %w", localID, err)
	}
	return s.pushTagDataOnSave(ctx, tag, models.AllFields(models.KindTagData))
}

func (s *Service) pushTagDataOnSave(ctx context.Context, tag *models.TagData, changed models.FieldSet) error {
	token, err := s.session.Token(ctx)
	if err != nil {
		return err
	}

	remoteID := tag.RemoteID
	if remoteID == 0 {
		stored, err := s.store.FetchTagData(ctx, tag.ID)
		if err != nil {
			if errors.Is(err, storage.ErrTagDataNotFound) {
				return nil
			}
			return fmt.Errorf("failed to load tag %d: %w", tag.ID, err)
		}
		remoteID = stored.RemoteID
	}
	newlyCreated := remoteID == 0

	params, err := tagParams(tag, changed)
	if err != nil {
		s.logger.Error("Invalid tag members", "tag_id", tag.ID, "error", err)
		return err
	}
	if len(params) == 0 {
		return nil
	}
	if !newlyCreated {
		params = params.Add(pkgapi.ParamID, remoteID)
	}

	result, err := s.invoker.Invoke(ctx, pkgapi.ProcTagSave, params.Add(pkgapi.ParamToken, token))
	if err != nil {
		if api.IsServiceError(err) {
			// сервер отверг изменения, возвращаем его версию
			if ferr := s.fetchTag(ctx, tag); ferr != nil {
				s.logger.Error("Failed to refetch tag", "tag_id", tag.ID, "error", ferr)
			}
		}
		return s.pushFailed(ctx, models.KindTagData, tag.ID, err)
	}

	if err := s.applyTagResult(ctx, tag.ID, newlyCreated, result); err != nil {
		s.logger.Error("Failed to apply tag_save result", "tag_id", tag.ID, "error", err)
		return err
	}
	s.toast(ctx, models.KindTagData, nil)
	return nil
}

func tagParams(tag *models.TagData, changed models.FieldSet) (api.Params, error) {
	var params api.Params

	if changed.Has(models.FieldName) {
		params = params.Add(pkgapi.ParamName, tag.Name)
	}
	if changed.Has(models.FieldDeletionDate) {
		params = params.Add(pkgapi.ParamDeletedAt, jsonmap.ToSeconds(tag.DeletionDate))
	}
	if changed.Has(models.FieldMembers) {
		members, err := jsonmap.MembersForRemote(tag.Members)
		if err != nil {
			return nil, err
		}
		if len(members) == 0 {
			params = params.Add(pkgapi.ParamMembers, "")
		} else {
			params = params.Add(pkgapi.ParamMembers, members)
		}
	}
	if changed.Has(models.FieldFlags) {
		params = params.Add(pkgapi.ParamIsSilent, tag.HasFlag(models.FlagSilent))
	}

	return params, nil
}

// applyTagResult сохраняет версию тега с сервера. Если ответ не содержит
// полного тега, для нового тега запоминается хотя бы его id.
func (s *Service) applyTagResult(ctx context.Context, localID int64, newlyCreated bool, result []byte) error {
	tag, err := s.store.FetchTagData(ctx, localID)
	if err != nil {
		if errors.Is(err, storage.ErrTagDataNotFound) {
			return nil
		}
		return err
	}

	self, err := s.selfID(ctx)
	if err != nil {
		return err
	}
	if err := jsonmap.TagFromJSON(result, tag, self); err != nil {
		if !newlyCreated {
			s.logger.Debug("tag_save result not applied", "tag_id", localID, "error", err)
			return nil
		}
		id := gjson.GetBytes(result, "id").Int()
		if id <= 0 {
			return err
		}
		tag.RemoteID = id
	}

	if err := s.store.SaveTagData(syncctx.WithSuppressEcho(ctx), tag); err != nil {
		return fmt.Errorf("failed to save tag: %w", err)
	}
	return nil
}

// SetTagPicture uploads a new picture for the remote tag and returns its URL
func (s *Service) SetTagPicture(ctx context.Context, remoteTagID int64, picture []byte) (string, error) {
	token, err := s.session.Token(ctx)
	if err != nil {
		return "", err
	}

	params := api.Params{}.
		Add(pkgapi.ParamID, remoteTagID).
		Add(pkgapi.ParamToken, token)

	result, err := s.invoker.Post(ctx, pkgapi.ProcTagSave, picture, params)
	if err != nil {
		s.logger.Error("Failed to upload tag picture", "remote_id", remoteTagID, "error", err)
		return "", err
	}
	return gjson.GetBytes(result, "picture").String(), nil
}
