package domain

// Role of the authenticated principal, as reported by the
// authentication collaborator. The client treats it as opaque data.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// Principal is the authenticated user plus its session credential.
// Created on successful login/register, destroyed on logout, and
// persisted to the restorable store so a restart can rehydrate it.
type Principal struct {
	ID           string `json:"id"`
	DisplayName  string `json:"displayName"`
	Email        string `json:"email"`
	Role         Role   `json:"role"`
	SessionToken string `json:"sessionToken"`
}

// WellFormed reports whether a rehydrated principal blob carries the
// minimum fields needed to act as an active session.
func (p *Principal) WellFormed() bool {
	return p != nil && p.ID != "" && p.SessionToken != ""
}
