// Package api describes the remote wire contract shared by the sync client
// and anything that talks to the same server.
package api

// Remote procedure names.
const (
	ProcTaskSave     = "task_save"
	ProcTaskShow     = "task_show"
	ProcTaskList     = "task_list"
	ProcTagSave      = "tag_save"
	ProcTagShow      = "tag_show"
	ProcTagList      = "tag_list"
	ProcCommentAdd   = "comment_add"
	ProcActivityList = "activity_list"
)

// Parameter names sent with remote calls.
const (
	ParamToken         = "token"
	ParamID            = "id"
	ParamModifiedAfter = "modified_after"
	ParamTagID         = "tag_id"
	ParamTaskID        = "task_id"

	ParamTitle      = "title"
	ParamDue        = "due"
	ParamHasDueTime = "has_due_time"
	ParamNotes      = "notes"
	ParamDeletedAt  = "deleted_at"
	ParamCompleted  = "completed"
	ParamImportance = "importance"
	ParamRepeat     = "repeat"
	ParamUserID     = "user_id"
	ParamTags       = "tags"
	ParamTagIDs     = "tag_ids[]"
	ParamTagNames   = "tags[]"

	ParamName     = "name"
	ParamMembers  = "members"
	ParamIsSilent = "is_silent"

	ParamMessage = "message"
	ParamPicture = "picture"
)

// Response status values.
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// ErrorResponse is the body the server returns when it rejects a call.
type ErrorResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// ListResult is the decoded envelope {list: [...], time: <int>} of every
// *_list procedure. Items stay raw and are decoded by the mapper of the
// matching kind.
type ListResult struct {
	List [][]byte
	Time int64 // server time in seconds, 0 if not reported
}
