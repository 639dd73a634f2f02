package audit

import "strconv"

// Actor carries the best-effort identity of the caller performing a
// lifecycle operation. Both fields are optional: audit events are recorded
// with whatever identity information is available, never rejected for the
// lack of it.
//
// Identity is threaded through the call chain as an explicit parameter;
// the transport layer builds an Actor from inbound headers and nothing in
// the core reads ambient request state.
type Actor struct {
	userID   *int64
	userRole *string
}

// AnonymousActor returns an Actor with no identity information.
func AnonymousActor() Actor {
	return Actor{}
}

// NewActor creates an Actor from already-parsed identity fields.
// Either field may be nil.
func NewActor(userID *int64, userRole *string) Actor {
	return Actor{userID: userID, userRole: userRole}
}

// ActorFromRequest builds an Actor from raw inbound identity fields.
// The user id is parsed as a decimal integer; values that fail to parse
// are dropped, not rejected. An empty role is treated as absent.
func ActorFromRequest(rawUserID, rawUserRole string) Actor {
	var actor Actor

	if rawUserID != "" {
		if id, err := strconv.ParseInt(rawUserID, 10, 64); err == nil {
			actor.userID = &id
		}
	}

	if rawUserRole != "" {
		actor.userRole = &rawUserRole
	}

	return actor
}

// UserID returns the caller's numeric user id, or nil if unavailable.
func (a Actor) UserID() *int64 {
	return a.userID
}

// UserRole returns the caller's role, or nil if unavailable.
func (a Actor) UserRole() *string {
	return a.userRole
}
