package models

// Account roles
const (
	RoleAdmin  = "admin"
	RoleWorker = "worker"
)

type Account struct {
	Login   string `json:"login"`   // unique identity key
	Secret  string `json:"secret"`  // compared as an opaque string
	Name    string `json:"name"`    // display name shown on entries
	Role    string `json:"role"`    // admin or worker
	Blocked bool   `json:"blocked"` // blocked accounts cannot log in
	ChatID  *int64 `json:"chat_id"` // linked messenger identity, set on login
}

// IsAdmin reports whether the account holds the admin role
func (a *Account) IsAdmin() bool {
	return a.Role == RoleAdmin
}

// AccountUpdate carries the fields of a partial account update.
// Nil fields are left untouched.
type AccountUpdate struct {
	Name    *string
	Secret  *string
	Blocked *bool
	ChatID  *int64
}
