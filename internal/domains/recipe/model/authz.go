package model

// =====================================================
// AUTHORIZATION RULES
// =====================================================
// Pure functions over (acting identity, recipe owner, configured admin).
// The acting identity is the identity provider's subject; "" means
// anonymous. A single admin identity is configured per deployment and
// has override rights on every recipe.
//
// The policy is defined once here and applied uniformly by the service
// layer instead of inline conditionals per handler.

// IsAdmin reports whether the actor is the configured admin identity.
// An unset admin identity never matches, in particular not anonymous.
func IsAdmin(actorID, adminID string) bool {
	return adminID != "" && actorID == adminID
}

// isOwner reports whether the actor owns the recipe. Legacy rows with a
// null owner belong to nobody.
func (r *Recipe) isOwner(actorID string) bool {
	return actorID != "" && r.UserID != nil && *r.UserID == actorID
}

// CanView reports read access: public recipes are visible to every
// identity including anonymous; private ones only to owner or admin.
func (r *Recipe) CanView(actorID, adminID string) bool {
	if r.IsPublic {
		return true
	}
	return r.isOwner(actorID) || IsAdmin(actorID, adminID)
}

// CanModify reports edit/delete access: owner or admin only.
// Anonymous and mismatched identities are rejected.
func (r *Recipe) CanModify(actorID, adminID string) bool {
	return r.isOwner(actorID) || IsAdmin(actorID, adminID)
}

// ResolveVisibility applies the publish policy to an update: only the
// admin identity may set isPublic. Any other caller, including the
// owner, has the flag forced to false regardless of the requested
// value. Ownership does not grant publishing rights.
func ResolveVisibility(actorID, adminID string, requested bool) bool {
	if IsAdmin(actorID, adminID) {
		return requested
	}
	return false
}
