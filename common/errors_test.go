package common

import (
	"errors"
	"fmt"
	"testing"
)

func TestErrorKindsMatchSentinels(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		target error
		kind   Kind
	}{
		{"not found", NotFoundError(nil, "Post not found"), ErrNotFound, KindNotFound},
		{"invalid argument", InvalidArgumentError(nil, "bad page"), ErrInvalidArgument, KindInvalidArgument},
		{"credentials", InvalidCredentialsError(nil), ErrInvalidCredentials, KindInvalidCredentials},
		{"unauthorized", UnauthorizedError(nil, ""), ErrUnauthorized, KindUnauthorized},
		{"wrapped", fmt.Errorf("get post: %w", NotFoundError(nil, "Post not found")), ErrNotFound, KindNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !errors.Is(tt.err, tt.target) {
				t.Fatalf("errors.Is(%v, %v) = false", tt.err, tt.target)
			}
			if got := KindOf(tt.err); got != tt.kind {
				t.Fatalf("KindOf = %v, want %v", got, tt.kind)
			}
		})
	}
}

func TestErrorDoesNotMatchOtherKinds(t *testing.T) {
	err := NotFoundError(nil, "Country not found")
	if errors.Is(err, ErrUnauthorized) {
		t.Fatal("not found error matched ErrUnauthorized")
	}
	if KindOf(errors.New("boom")) != KindSystem {
		t.Fatal("plain error should be KindSystem")
	}
}

func TestMessageHidesCause(t *testing.T) {
	cause := errors.New("disk on fire")
	err := SystemError(cause)
	if got := Message(err); got != "internal error" {
		t.Fatalf("Message = %q", got)
	}
	if !errors.Is(err, cause) {
		t.Fatal("system error should unwrap to its cause")
	}
	if got := Message(InvalidCredentialsError(nil)); got != "Invalid credentials" {
		t.Fatalf("Message = %q", got)
	}
}
