// Package jsonmap converts remote JSON records to local entities and back.
// Functions here are pure: no I/O and no shared state.
package jsonmap

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/tidwall/gjson"

	"github.com/iudanet/tasksync/internal/models"
	"github.com/iudanet/tasksync/pkg/api"
)

// RepeatFromCompletion is the recurrence marker for rules anchored to the
// completion date.
const RepeatFromCompletion = "FROM=COMPLETION"

var fromClause = regexp.MustCompile(`;?FROM=[^;]*`)

// ErrMalformed is wrapped by every MappingError.
var ErrMalformed = errors.New("malformed remote record")

// MappingError is returned when a remote record misses a required field
// or is not valid JSON.
type MappingError struct {
	Kind  models.Kind
	Field string
}

func (e *MappingError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("jsonmap: %s: invalid json", e.Kind)
	}
	return fmt.Sprintf("jsonmap: %s: missing field %q", e.Kind, e.Field)
}

func (e *MappingError) Unwrap() error { return ErrMalformed }

// record wraps a parsed object and remembers the first missing field.
type record struct {
	obj     gjson.Result
	kind    models.Kind
	missing string
}

func parse(kind models.Kind, raw []byte) (*record, error) {
	if !gjson.ValidBytes(raw) {
		return nil, &MappingError{Kind: kind}
	}
	obj := gjson.ParseBytes(raw)
	if !obj.IsObject() {
		return nil, &MappingError{Kind: kind}
	}
	return &record{obj: obj, kind: kind}, nil
}

func (r *record) require(field string) gjson.Result {
	v := r.obj.Get(field)
	if !v.Exists() && r.missing == "" {
		r.missing = field
	}
	return v
}

func (r *record) err() error {
	if r.missing != "" {
		return &MappingError{Kind: r.kind, Field: r.missing}
	}
	return nil
}

// ReadDate converts a remote timestamp in seconds to local milliseconds.
func ReadDate(v gjson.Result) int64 {
	return v.Int() * 1000
}

// ToSeconds converts local milliseconds to a remote timestamp.
func ToSeconds(millis int64) int64 {
	return millis / 1000
}

// ReadUser normalizes a remote user reference. A missing id maps to
// UserIDUnassigned, the session's own id maps to UserIDSelf; both get an
// empty display payload. Any other user keeps its id and the raw object.
func ReadUser(user gjson.Result, selfID int64) (int64, string) {
	id, ok := readID(user.Get("id"))
	if !ok {
		return models.UserIDUnassigned, ""
	}
	if id == selfID {
		return models.UserIDSelf, ""
	}
	return id, user.Raw
}

// readID читает id, присланный числом или строкой с числом
func readID(v gjson.Result) (int64, bool) {
	switch v.Type {
	case gjson.Number:
		return v.Int(), true
	case gjson.String:
		id, err := strconv.ParseInt(strings.TrimSpace(v.Str), 10, 64)
		return id, err == nil
	default:
		return 0, false
	}
}

// FilterRepeat strips the empty BYDAY clause and any FROM= clause from a
// remote recurrence rule.
func FilterRepeat(repeat string) string {
	repeat = strings.ReplaceAll(repeat, "BYDAY=;", "")
	return fromClause.ReplaceAllString(repeat, "")
}

// RepeatForRemote returns the recurrence rule as the server expects it,
// with the FROM=COMPLETION marker when the task repeats after completion.
func RepeatForRemote(task *models.Task) string {
	if task.Recurrence != "" && task.HasFlag(models.FlagRepeatAfterCompletion) {
		return task.Recurrence + ";" + RepeatFromCompletion
	}
	return task.Recurrence
}

// RemoteID extracts the required id of a remote record.
func RemoteID(kind models.Kind, raw []byte) (int64, error) {
	r, err := parse(kind, raw)
	if err != nil {
		return 0, err
	}
	id := r.require("id")
	if err := r.err(); err != nil {
		return 0, err
	}
	return id.Int(), nil
}

// ParseList decodes the {list, time} envelope of a *_list response.
func ParseList(kind models.Kind, raw []byte) (*api.ListResult, error) {
	r, err := parse(kind, raw)
	if err != nil {
		return nil, err
	}
	list := r.require("list")
	if err := r.err(); err != nil {
		return nil, err
	}
	if !list.IsArray() {
		return nil, &MappingError{Kind: kind, Field: "list"}
	}

	result := &api.ListResult{Time: r.obj.Get("time").Int()}
	for _, item := range list.Array() {
		result.List = append(result.List, []byte(item.Raw))
	}
	return result, nil
}

// TaskFromJSON applies a remote task onto task and returns its tag links.
// now is used for the LastSync bookkeeping field.
func TaskFromJSON(raw []byte, task *models.Task, selfID int64, now time.Time) ([]models.TagLink, error) {
	r, err := parse(models.KindTask, raw)
	if err != nil {
		return nil, err
	}

	id := r.require("id")
	user := r.require("user")
	creator := r.require("creator")
	title := r.require("title")
	importance := r.require("importance")
	hasDueTime := r.require("has_due_time")
	commentCount := r.require("comment_count")
	tags := r.require("tags")
	if err := r.err(); err != nil {
		return nil, err
	}

	before := *task

	task.RemoteID = id.Int()
	task.UserID, task.User = ReadUser(user, selfID)
	task.CreatorID, _ = ReadUser(creator, selfID)
	task.Title = title.String()
	task.Importance = importance.Int()
	task.DueDate = models.CreateDueDate(hasDueTime.Bool(), ReadDate(r.obj.Get("due")))
	task.CompletionDate = ReadDate(r.obj.Get("completed_at"))
	task.CreationDate = ReadDate(r.obj.Get("created_at"))
	task.DeletionDate = ReadDate(r.obj.Get("deleted_at"))

	repeat := r.obj.Get("repeat").String()
	task.Recurrence = FilterRepeat(repeat)
	task.SetFlag(models.FlagRepeatAfterCompletion, strings.Contains(repeat, RepeatFromCompletion))

	task.Notes = r.obj.Get("notes").String()
	task.DetailsDate = 0
	task.LastSync = now.UnixMilli() + 1000
	task.CommentCount = commentCount.Int()

	// кэш деталей не должен пережить слияние
	if len(task.Diff(&before).Without(models.FieldDetailsDate, models.FieldLastSync)) > 0 {
		task.Details = ""
	}

	var links []models.TagLink
	for _, tag := range tags.Array() {
		name := tag.Get("name").String()
		if name == "" {
			continue
		}
		links = append(links, models.TagLink{
			TaskID:   task.ID,
			Name:     name,
			RemoteID: tag.Get("id").Int(),
		})
	}
	return links, nil
}

// TagFromJSON applies a remote tag onto tag.
func TagFromJSON(raw []byte, tag *models.TagData, selfID int64) error {
	r, err := parse(models.KindTagData, raw)
	if err != nil {
		return err
	}

	id := r.require("id")
	name := r.require("name")
	user := r.require("user")
	if err := r.err(); err != nil {
		return err
	}

	tag.RemoteID = id.Int()
	tag.Name = name.String()
	tag.UserID, tag.User = ReadUser(user, selfID)

	if v := r.obj.Get("picture"); v.Exists() {
		tag.Picture = v.String()
	}
	if v := r.obj.Get("thumb"); v.Exists() {
		tag.Thumb = v.String()
	}
	if v := r.obj.Get("is_silent"); v.Exists() {
		tag.SetFlag(models.FlagSilent, v.Bool())
	}
	if v := r.obj.Get("emergent"); v.Exists() {
		tag.SetFlag(models.FlagEmergent, v.Bool())
	}
	if v := r.obj.Get("members"); v.Exists() && v.IsArray() {
		tag.Members = v.Raw
		tag.MemberCount = int64(len(v.Array()))
	}
	if v := r.obj.Get("tasks"); v.Exists() {
		tag.TaskCount = v.Int()
	}
	return nil
}

// UpdateFromJSON applies a remote activity record onto update.
func UpdateFromJSON(raw []byte, update *models.Update, selfID int64) error {
	r, err := parse(models.KindUpdate, raw)
	if err != nil {
		return err
	}

	id := r.require("id")
	user := r.require("user")
	action := r.require("action")
	actionCode := r.require("action_code")
	targetName := r.require("target_name")
	if err := r.err(); err != nil {
		return err
	}

	update.RemoteID = id.Int()
	update.UserID, update.User = ReadUser(user, selfID)
	update.Action = action.String()
	update.ActionCode = actionCode.String()
	update.TargetName = targetName.String()
	// null и отсутствие сообщения одинаково дают пустую строку
	update.Message = r.obj.Get("message").String()
	update.Picture = r.obj.Get("picture").String()
	update.CreationDate = ReadDate(r.obj.Get("created_at"))
	update.Tags = "," + tagIDs(r.obj.Get("tag_ids")) + ","
	update.TaskRemoteID = r.obj.Get("task_id").Int()
	return nil
}

func tagIDs(v gjson.Result) string {
	if !v.IsArray() {
		return v.String()
	}
	ids := make([]string, 0, len(v.Array()))
	for _, id := range v.Array() {
		ids = append(ids, id.String())
	}
	return strings.Join(ids, ",")
}

// MembersForRemote converts the stored members array into tag_save values:
// the remote id when known, "name <email>" when a name is present, the bare
// email otherwise.
func MembersForRemote(members string) ([]string, error) {
	if strings.TrimSpace(members) == "" {
		return nil, nil
	}
	if !gjson.Valid(members) {
		return nil, &MappingError{Kind: models.KindTagData, Field: "members"}
	}
	arr := gjson.Parse(members)
	if !arr.IsArray() {
		return nil, &MappingError{Kind: models.KindTagData, Field: "members"}
	}

	out := make([]string, 0, len(arr.Array()))
	for _, person := range arr.Array() {
		switch {
		case person.Get("id").Exists():
			out = append(out, person.Get("id").String())
		case person.Get("name").Exists():
			out = append(out, person.Get("name").String()+" <"+person.Get("email").String()+">")
		default:
			out = append(out, person.Get("email").String())
		}
	}
	return out, nil
}
