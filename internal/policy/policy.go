// Package policy holds the authorization decisions for user-owned resources.
// Each function is a pure predicate over the facts the caller already fetched,
// so the rules can be tested without a database or HTTP layer. Callers must
// check existence first: a missing resource is 404, never a policy denial.
package policy

// CanUpdatePost allows only the post's author to edit it. Admins have no
// update override; moderation removes content, it does not rewrite it.
func CanUpdatePost(ownerID, actorID uint) (bool, string) {
	if ownerID == actorID {
		return true, ""
	}
	return false, "Not allowed to update this post"
}

// CanDeletePost allows the author or an admin.
func CanDeletePost(ownerID, actorID uint, actorIsAdmin bool) (bool, string) {
	if ownerID == actorID || actorIsAdmin {
		return true, ""
	}
	return false, "Not allowed to delete this post"
}

// CanDeleteComment allows only the comment's author. Admin comment removal
// goes through the dedicated moderation endpoints instead.
func CanDeleteComment(authorID, actorID uint) (bool, string) {
	if authorID == actorID {
		return true, ""
	}
	return false, "Not allowed to delete this comment"
}
