package models

import "strings"

// Role is the account type chosen at signup and stored as provider metadata
type Role string

const (
	RoleTrainee Role = "trainee"
	RoleLawyer  Role = "lawyer"
	RoleUser    Role = "user"
)

// Roles lists the selectable roles in display order
var Roles = []Role{RoleTrainee, RoleLawyer, RoleUser}

// ParseRole maps form input to a Role, defaulting to RoleUser
func ParseRole(s string) Role {
	switch Role(strings.ToLower(strings.TrimSpace(s))) {
	case RoleTrainee:
		return RoleTrainee
	case RoleLawyer:
		return RoleLawyer
	default:
		return RoleUser
	}
}

// Description is the short blurb shown under the role picker
func (r Role) Description() string {
	switch r {
	case RoleLawyer:
		return "As a lawyer, you'll have access to pending cases, can submit legal arguments, and receive AI-assisted case analysis."
	case RoleTrainee:
		return "As a trainee, you can observe cases, practice with AI simulations, and receive guidance on legal procedures."
	case RoleUser:
		return "As a user, you can file new cases, track case progress, and receive updates on your legal matters."
	default:
		return ""
	}
}
