// Package visibility reconciles a note's status enum with its is_public
// flag. Every create and update path runs through Resolve, so a draft or
// private note can never end up publicly visible.
package visibility

import (
	"github.com/memory-blog/backend/types"
)

// Change is the visibility slice of a partial note update. Nil fields were
// absent from the request and leave the current value alone.
type Change struct {
	Status   *string
	IsPublic *bool
}

// Resolve applies a partial update to the current (status, isPublic) pair.
// Status wins on conflict: a draft or private status forces isPublic false
// even when the update explicitly asks for true.
func Resolve(status string, isPublic bool, ch Change) (string, bool) {
	if ch.Status != nil {
		status = *ch.Status
	}
	if Hidden(status) {
		return status, false
	}
	if ch.IsPublic != nil {
		return status, *ch.IsPublic
	}
	return status, isPublic
}

// ResolveNew is Resolve for note creation: default published and public
// unless the request says otherwise.
func ResolveNew(ch Change) (string, bool) {
	return Resolve(types.StatusPublished, true, ch)
}

// Hidden reports whether a status keeps a note off the public surface.
func Hidden(status string) bool {
	return status == types.StatusDraft || status == types.StatusPrivate
}
