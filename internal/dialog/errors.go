package dialog

import "fmt"

// Error taxonomy. The machine maps every error to a user-visible reply and
// a state policy in exactly one place (see Handle); nothing is swallowed.

// ValidationError: malformed or out-of-domain input. Re-prompt, state
// unchanged.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return "validation: " + e.Msg }

// PermissionError: role-gated action attempted by the wrong role. Message,
// state unchanged.
type PermissionError struct{}

func (e *PermissionError) Error() string { return "permission denied" }

// NotFoundError: referenced account/category/entry is absent. Message,
// state reverts to authenticated.
type NotFoundError struct {
	What string
}

func (e *NotFoundError) Error() string { return fmt.Sprintf("%s not found", e.What) }

// AuthError: bad credentials or blocked account. Session discarded, user
// must restart.
type AuthError struct {
	Msg string
}

func (e *AuthError) Error() string { return "auth: " + e.Msg }

// ReportError: no data in the requested window. Informational, not a
// failure.
type ReportError struct {
	Msg string
}

func (e *ReportError) Error() string { return "report: " + e.Msg }
