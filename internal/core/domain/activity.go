package domain

import "time"

// ActivityKind enumerates the auth events recorded in the activity log.
type ActivityKind string

const (
	ActivitySignup      ActivityKind = "signup"
	ActivityLogin       ActivityKind = "login"
	ActivityLoginFailed ActivityKind = "login_failed"
	ActivitySignout     ActivityKind = "signout"
)

// Activity is a single auth event. UserID may be empty for failed logins
// against unknown accounts; Email is always the identifier the caller used.
type Activity struct {
	ID        string       `json:"id"`
	Kind      ActivityKind `json:"kind"`
	UserID    string       `json:"user_id,omitempty"`
	Email     string       `json:"email"`
	RemoteIP  string       `json:"remote_ip,omitempty"`
	Timestamp time.Time    `json:"timestamp"`
}
