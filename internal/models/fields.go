package models

import "sort"

// Field names used in change sets. They match the local column names.
const (
	FieldRemoteID         = "remote_id"
	FieldTitle            = "title"
	FieldImportance       = "importance"
	FieldDueDate          = "due_date"
	FieldCompletionDate   = "completion_date"
	FieldCreationDate     = "creation_date"
	FieldDeletionDate     = "deletion_date"
	FieldModificationDate = "modification_date"
	FieldNotes            = "notes"
	FieldRecurrence       = "recurrence"
	FieldFlags            = "flags"
	FieldUserID           = "user_id"
	FieldUser             = "user"
	FieldCreatorID        = "creator_id"
	FieldDetails          = "details"
	FieldDetailsDate      = "details_date"
	FieldLastSync         = "last_sync"
	FieldCommentCount     = "comment_count"

	FieldName        = "name"
	FieldPicture     = "picture"
	FieldThumb       = "thumb"
	FieldMembers     = "members"
	FieldMemberCount = "member_count"
	FieldTaskCount   = "task_count"

	FieldAction       = "action"
	FieldActionCode   = "action_code"
	FieldTargetName   = "target_name"
	FieldMessage      = "message"
	FieldTags         = "tags"
	FieldTaskRemoteID = "task_remote_id"
)

// FieldSet is the set of fields touched by a single write.
type FieldSet map[string]struct{}

// NewFieldSet creates a set from the given field names.
func NewFieldSet(fields ...string) FieldSet {
	fs := make(FieldSet, len(fields))
	fs.Add(fields...)
	return fs
}

// Add inserts field names into the set.
func (fs FieldSet) Add(fields ...string) {
	for _, f := range fields {
		fs[f] = struct{}{}
	}
}

// Has reports whether the field was touched.
func (fs FieldSet) Has(field string) bool {
	_, ok := fs[field]
	return ok
}

// Without returns a copy of the set minus the given fields.
func (fs FieldSet) Without(fields ...string) FieldSet {
	out := make(FieldSet, len(fs))
	for f := range fs {
		out[f] = struct{}{}
	}
	for _, f := range fields {
		delete(out, f)
	}
	return out
}

// Clone returns an independent copy of the set.
func (fs FieldSet) Clone() FieldSet {
	return fs.Without()
}

// Names returns the sorted field names, mostly for logging.
func (fs FieldSet) Names() []string {
	names := make([]string, 0, len(fs))
	for f := range fs {
		names = append(names, f)
	}
	sort.Strings(names)
	return names
}

// AllFields returns every synchronizable field of the given kind.
// It is used when a record is pushed as a whole (retries, full pushes).
func AllFields(kind Kind) FieldSet {
	switch kind {
	case KindTask:
		return NewFieldSet(FieldTitle, FieldImportance, FieldDueDate, FieldCompletionDate,
			FieldCreationDate, FieldDeletionDate, FieldNotes, FieldRecurrence, FieldFlags,
			FieldUserID, FieldUser, FieldCreatorID)
	case KindTagData:
		return NewFieldSet(FieldName, FieldUserID, FieldUser, FieldPicture, FieldThumb,
			FieldFlags, FieldMembers, FieldMemberCount, FieldTaskCount, FieldDeletionDate)
	case KindUpdate:
		return NewFieldSet(FieldUserID, FieldUser, FieldAction, FieldActionCode, FieldTargetName,
			FieldMessage, FieldPicture, FieldCreationDate, FieldTags, FieldTaskRemoteID)
	default:
		return NewFieldSet()
	}
}
