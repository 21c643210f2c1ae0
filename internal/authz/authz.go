// Package authz holds the per-request access predicates gating resource
// mutations and reads.
package authz

import "chainboard/internal/token"

// CanMutate reports whether the actor owns the resource or is an admin.
// Admins bypass ownership uniformly.
func CanMutate(actor token.Actor, ownerId int64) bool {
	return actor.UserId == ownerId || actor.IsAdmin()
}

// IsParticipant reports whether the actor is one of the given participants or
// an admin. Used for message and application read access.
func IsParticipant(actor token.Actor, participantIds ...int64) bool {
	if actor.IsAdmin() {
		return true
	}
	for _, id := range participantIds {
		if actor.UserId == id {
			return true
		}
	}
	return false
}
