package handler

import (
	"strings"
	"testing"
)

func TestValidatorUsesJSONFieldNames(t *testing.T) {
	v := NewValidator()

	err := v.Validate(signupRequest{Username: "alice", Email: "not-an-email", Password: "secret"})
	if err == nil {
		t.Fatal("expected a validation error for a malformed email")
	}
	if got := err.Error(); got != "email must be a valid email address" {
		t.Errorf("unexpected message: %q", got)
	}
}

func TestValidatorJoinsViolations(t *testing.T) {
	v := NewValidator()

	err := v.Validate(loginRequest{})
	if err == nil {
		t.Fatal("expected validation errors for an empty request")
	}
	msg := err.Error()
	for _, want := range []string{"email is required", "password is required"} {
		if !strings.Contains(msg, want) {
			t.Errorf("message %q missing %q", msg, want)
		}
	}
}

func TestValidatorAcceptsValidRequest(t *testing.T) {
	v := NewValidator()

	if err := v.Validate(signupRequest{Username: "alice", Email: "alice@example.com", Password: "secret"}); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}
