package models

// TagData flags.
const (
	FlagSilent   = 1 << 1 // уведомления списка отключены
	FlagEmergent = 1 << 2 // список создан сервером
)

// TagData представляет общий список задач (тег с участниками).
type TagData struct {
	Name         string `json:"name"`
	User         string `json:"user"`    // JSON владельца для отображения
	Picture      string `json:"picture"` // URL изображения
	Thumb        string `json:"thumb"`   // URL миниатюры
	Members      string `json:"members"` // JSON массив участников
	ID           int64  `json:"id"`
	RemoteID     int64  `json:"remote_id"`
	UserID       int64  `json:"user_id"`
	Flags        int64  `json:"flags"`
	MemberCount  int64  `json:"member_count"`
	TaskCount    int64  `json:"task_count"`
	DeletionDate int64  `json:"deletion_date"`
}

// HasFlag reports whether the flag bit is set.
func (t *TagData) HasFlag(flag int64) bool {
	return t.Flags&flag != 0
}

// SetFlag sets or clears a flag bit.
func (t *TagData) SetFlag(flag int64, value bool) {
	if value {
		t.Flags |= flag
	} else {
		t.Flags &^= flag
	}
}

// Clone returns a copy of the tag data.
func (t *TagData) Clone() *TagData {
	c := *t
	return &c
}

// Diff returns the fields that differ from old (all non-zero fields when old is nil).
func (t *TagData) Diff(old *TagData) FieldSet {
	if old == nil {
		old = &TagData{}
	}
	fs := NewFieldSet()
	diff(fs, FieldRemoteID, t.RemoteID, old.RemoteID)
	diff(fs, FieldName, t.Name, old.Name)
	diff(fs, FieldUserID, t.UserID, old.UserID)
	diff(fs, FieldUser, t.User, old.User)
	diff(fs, FieldPicture, t.Picture, old.Picture)
	diff(fs, FieldThumb, t.Thumb, old.Thumb)
	diff(fs, FieldFlags, t.Flags, old.Flags)
	diff(fs, FieldMembers, t.Members, old.Members)
	diff(fs, FieldMemberCount, t.MemberCount, old.MemberCount)
	diff(fs, FieldTaskCount, t.TaskCount, old.TaskCount)
	diff(fs, FieldDeletionDate, t.DeletionDate, old.DeletionDate)
	return fs
}
