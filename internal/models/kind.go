package models

// Kind identifies the entity kinds that take part in synchronization.
type Kind string

const (
	KindTask    Kind = "task"   // задачи
	KindTagData Kind = "tag"    // списки (теги с участниками)
	KindUpdate  Kind = "update" // активность и комментарии
)

// Sentinel user ids stored locally instead of remote user references.
const (
	// UserIDUnassigned marks a record without an assignee.
	UserIDUnassigned int64 = -1
	// UserIDSelf marks a record owned by the logged in user.
	UserIDSelf int64 = 0
)

// FailedPush is a push that failed with a transient error and waits for
// the next retry pass.
type FailedPush struct {
	Kind    Kind
	LocalID int64
}
