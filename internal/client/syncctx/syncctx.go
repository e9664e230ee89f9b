// Package syncctx carries per-save sync hints through context.Context.
//
// A save made by the sync engine itself is tagged with WithSuppressEcho so
// the change listeners do not push it back. The other hints describe the
// intent of a user save: the task was completed as a repeating task, its
// tags changed, or a failure should be surfaced to the user.
package syncctx

import "context"

type key int

const (
	suppressEchoKey key = iota
	repeatCompletedKey
	tagsChangedKey
	toastOnSaveKey
)

// WithSuppressEcho marks saves made with ctx as originating from sync.
func WithSuppressEcho(ctx context.Context) context.Context {
	return context.WithValue(ctx, suppressEchoKey, true)
}

// SuppressEcho reports whether listeners must ignore saves made with ctx.
func SuppressEcho(ctx context.Context) bool {
	return flag(ctx, suppressEchoKey)
}

// WithRepeatCompleted marks a save that completed a repeating task.
func WithRepeatCompleted(ctx context.Context) context.Context {
	return context.WithValue(ctx, repeatCompletedKey, true)
}

// RepeatCompleted reports whether ctx carries the repeat-completed hint.
func RepeatCompleted(ctx context.Context) bool {
	return flag(ctx, repeatCompletedKey)
}

// WithTagsChanged marks a save after which the task's tag list must be resent.
func WithTagsChanged(ctx context.Context) context.Context {
	return context.WithValue(ctx, tagsChangedKey, true)
}

// TagsChanged reports whether ctx carries the tags-changed hint.
func TagsChanged(ctx context.Context) bool {
	return flag(ctx, tagsChangedKey)
}

// WithToastOnSave asks the push path to report failures to the user.
func WithToastOnSave(ctx context.Context) context.Context {
	return context.WithValue(ctx, toastOnSaveKey, true)
}

// ToastOnSave reports whether failures should be shown to the user.
func ToastOnSave(ctx context.Context) bool {
	return flag(ctx, toastOnSaveKey)
}

// Detach returns a context that keeps only the sync hints of ctx.
// Used for work that outlives the request which triggered it.
func Detach(ctx context.Context) context.Context {
	out := context.Background()
	if SuppressEcho(ctx) {
		out = WithSuppressEcho(out)
	}
	if RepeatCompleted(ctx) {
		out = WithRepeatCompleted(out)
	}
	if TagsChanged(ctx) {
		out = WithTagsChanged(out)
	}
	if ToastOnSave(ctx) {
		out = WithToastOnSave(out)
	}
	return out
}

func flag(ctx context.Context, k key) bool {
	v, ok := ctx.Value(k).(bool)
	return ok && v
}
