package entities

import "time"

// Role is the staff permission tier. The set is closed: values arriving
// over the wire go through ParseRole, and every mutating entry point asks
// Allows instead of comparing strings at the call site.

type Role string

const (
	RoleEditor Role = "editor"
	RoleAdmin  Role = "admin"
)

func ParseRole(s string) (Role, bool) {
	switch Role(s) {
	case RoleEditor, RoleAdmin:
		return Role(s), true
	}
	return "", false
}

// Action enumerates the role-gated staff operations.

type Action string

const (
	ActionArchiveLead   Action = "archive_lead"
	ActionUnarchiveLead Action = "unarchive_lead"
	ActionDeleteLead    Action = "delete_lead"
	ActionPurgeArchived Action = "purge_archived"
	ActionManageUsers   Action = "manage_users"
)

// Allows reports whether the role may perform the action. Archiving is a
// reversible triage operation open to all staff; destructive operations and
// account management are admin only.
func (r Role) Allows(a Action) bool {
	switch a {
	case ActionArchiveLead, ActionUnarchiveLead:
		return r == RoleEditor || r == RoleAdmin
	case ActionDeleteLead, ActionPurgeArchived, ActionManageUsers:
		return r == RoleAdmin
	}
	return false
}

// Profile is a staff account row.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (email-index): email

type Profile struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	Role         Role      `json:"role"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}
