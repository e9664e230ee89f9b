package models

import "time"

// Task flags.
const (
	// FlagRepeatAfterCompletion anchors the recurrence to the completion date
	// instead of the due date.
	FlagRepeatAfterCompletion = 1 << 1
)

// Task представляет задачу в локальном хранилище.
// Все даты хранятся в миллисекундах с начала эпохи.
type Task struct {
	Title            string `json:"title"`
	Notes            string `json:"notes"`
	Recurrence       string `json:"recurrence"`        // правило повторения без маркера FROM=
	User             string `json:"user"`              // JSON исполнителя для отображения
	Details          string `json:"details"`           // кэш деталей, сбрасывается при слиянии
	ID               int64  `json:"id"`                // локальный идентификатор
	RemoteID         int64  `json:"remote_id"`         // 0 пока сервер не назначил id
	Importance       int64  `json:"importance"`        // приоритет
	DueDate          int64  `json:"due_date"`          // см. CreateDueDate
	CompletionDate   int64  `json:"completion_date"`   // 0 если не выполнена
	CreationDate     int64  `json:"creation_date"`     // время создания
	DeletionDate     int64  `json:"deletion_date"`     // 0 если не удалена
	ModificationDate int64  `json:"modification_date"` // время последнего локального изменения
	Flags            int64  `json:"flags"`             // битовые флаги
	UserID           int64  `json:"user_id"`           // UserIDSelf, UserIDUnassigned или id на сервере
	CreatorID        int64  `json:"creator_id"`        // автор задачи
	DetailsDate      int64  `json:"details_date"`      // время расчета Details
	LastSync         int64  `json:"last_sync"`         // время последней синхронизации
	CommentCount     int64  `json:"comment_count"`     // количество комментариев
}

// IsCompleted reports whether the task has a completion date.
func (t *Task) IsCompleted() bool {
	return t.CompletionDate > 0
}

// HasDueTime reports whether the due date carries a specific time of day.
func (t *Task) HasDueTime() bool {
	return HasDueTime(t.DueDate)
}

// HasFlag reports whether the flag bit is set.
func (t *Task) HasFlag(flag int64) bool {
	return t.Flags&flag != 0
}

// SetFlag sets or clears a flag bit.
func (t *Task) SetFlag(flag int64, value bool) {
	if value {
		t.Flags |= flag
	} else {
		t.Flags &^= flag
	}
}

// Clone returns a copy of the task.
func (t *Task) Clone() *Task {
	c := *t
	return &c
}

// Diff returns the fields that differ from old. A nil old means the task is
// new, in which case every non-zero field is reported.
func (t *Task) Diff(old *Task) FieldSet {
	if old == nil {
		old = &Task{}
	}
	fs := NewFieldSet()
	diff(fs, FieldRemoteID, t.RemoteID, old.RemoteID)
	diff(fs, FieldTitle, t.Title, old.Title)
	diff(fs, FieldImportance, t.Importance, old.Importance)
	diff(fs, FieldDueDate, t.DueDate, old.DueDate)
	diff(fs, FieldCompletionDate, t.CompletionDate, old.CompletionDate)
	diff(fs, FieldCreationDate, t.CreationDate, old.CreationDate)
	diff(fs, FieldDeletionDate, t.DeletionDate, old.DeletionDate)
	diff(fs, FieldModificationDate, t.ModificationDate, old.ModificationDate)
	diff(fs, FieldNotes, t.Notes, old.Notes)
	diff(fs, FieldRecurrence, t.Recurrence, old.Recurrence)
	diff(fs, FieldFlags, t.Flags, old.Flags)
	diff(fs, FieldUserID, t.UserID, old.UserID)
	diff(fs, FieldUser, t.User, old.User)
	diff(fs, FieldCreatorID, t.CreatorID, old.CreatorID)
	diff(fs, FieldDetails, t.Details, old.Details)
	diff(fs, FieldDetailsDate, t.DetailsDate, old.DetailsDate)
	diff(fs, FieldLastSync, t.LastSync, old.LastSync)
	diff(fs, FieldCommentCount, t.CommentCount, old.CommentCount)
	return fs
}

// CreateDueDate builds a due date in milliseconds. A date without a time of
// day is anchored at noon with zero seconds; a date with a time keeps the
// minute and gets its seconds set to 1 so HasDueTime can tell them apart.
func CreateDueDate(hasDueTime bool, millis int64) int64 {
	if millis <= 0 {
		return 0
	}
	d := time.UnixMilli(millis)
	if hasDueTime {
		d = time.Date(d.Year(), d.Month(), d.Day(), d.Hour(), d.Minute(), 1, 0, d.Location())
	} else {
		d = time.Date(d.Year(), d.Month(), d.Day(), 12, 0, 0, 0, d.Location())
	}
	return d.UnixMilli()
}

// HasDueTime reports whether a due date created by CreateDueDate has a time.
func HasDueTime(dueDate int64) bool {
	return dueDate > 0 && (dueDate/1000)%60 > 0
}

// TagLink связывает задачу с тегом. RemoteID равен 0 для тегов,
// которые еще не известны серверу.
type TagLink struct {
	Name     string `json:"name"`
	TaskID   int64  `json:"task_id"`
	RemoteID int64  `json:"remote_id"`
}

func diff[T comparable](fs FieldSet, field string, a, b T) {
	if a != b {
		fs.Add(field)
	}
}
