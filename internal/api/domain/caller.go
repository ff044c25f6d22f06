package domain

// Role is the closed set of account roles. A user's role is fixed at
// registration and never changes.
type Role string

const (
	RoleClient     Role = "client"
	RoleFreelancer Role = "freelancer"
)

// ValidRole reports whether s is a recognized role.
func ValidRole(s string) bool {
	switch Role(s) {
	case RoleClient, RoleFreelancer:
		return true
	}
	return false
}

// Caller is the identity attached to an inbound operation. The zero value
// is the anonymous caller. Every core operation receives its Caller
// explicitly; nothing reads ambient authentication state.
type Caller struct {
	ID   string
	Role Role
}

// IsAnonymous reports whether the caller is unauthenticated.
func (c Caller) IsAnonymous() bool {
	return c.ID == ""
}
