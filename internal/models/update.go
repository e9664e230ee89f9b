package models

import "strings"

// Update представляет запись активности: комментарий или событие по задаче/списку.
type Update struct {
	User         string `json:"user"`
	Action       string `json:"action"`
	ActionCode   string `json:"action_code"`
	TargetName   string `json:"target_name"`
	Message      string `json:"message"`
	Picture      string `json:"picture"`
	Tags         string `json:"tags"` // удаленные id списков в формате ",id1,id2,"
	ID           int64  `json:"id"`
	RemoteID     int64  `json:"remote_id"`
	UserID       int64  `json:"user_id"`
	CreationDate int64  `json:"creation_date"`
	TaskRemoteID int64  `json:"task_remote_id"`
}

// FirstTagID returns the first remote tag id from Tags, or "" if there is none.
func (u *Update) FirstTagID() string {
	for _, part := range strings.Split(u.Tags, ",") {
		if part = strings.TrimSpace(part); part != "" {
			return part
		}
	}
	return ""
}

// Clone returns a copy of the update.
func (u *Update) Clone() *Update {
	c := *u
	return &c
}

// Diff returns the fields that differ from old (all non-zero fields when old is nil).
func (u *Update) Diff(old *Update) FieldSet {
	if old == nil {
		old = &Update{}
	}
	fs := NewFieldSet()
	diff(fs, FieldRemoteID, u.RemoteID, old.RemoteID)
	diff(fs, FieldUserID, u.UserID, old.UserID)
	diff(fs, FieldUser, u.User, old.User)
	diff(fs, FieldAction, u.Action, old.Action)
	diff(fs, FieldActionCode, u.ActionCode, old.ActionCode)
	diff(fs, FieldTargetName, u.TargetName, old.TargetName)
	diff(fs, FieldMessage, u.Message, old.Message)
	diff(fs, FieldPicture, u.Picture, old.Picture)
	diff(fs, FieldCreationDate, u.CreationDate, old.CreationDate)
	diff(fs, FieldTags, u.Tags, old.Tags)
	diff(fs, FieldTaskRemoteID, u.TaskRemoteID, old.TaskRemoteID)
	return fs
}
