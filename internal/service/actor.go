package service

import "github.com/adil-123-dev/Insight-loop/internal/model"

// Actor is the authenticated caller, resolved by the auth middleware and
// passed explicitly into every service that enforces access rules.
type Actor struct {
	UserID   uint
	OrgID    uint
	Role     string
	FullName string
}

func (a Actor) IsAdmin() bool {
	return a.Role == model.RoleAdmin
}

func (a Actor) IsInstructor() bool {
	return a.Role == model.RoleInstructor || a.Role == model.RoleAdmin
}
