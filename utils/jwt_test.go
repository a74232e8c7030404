package utils

import (
	"testing"
)

func TestSignerRoundTrip(t *testing.T) {
	s := NewSigner("test-secret")
	token, err := s.GenerateToken("demo1", "testuser", "test@example.com")
	if err != nil {
		t.Fatal(err)
	}
	claims, err := s.ValidateToken(token)
	if err != nil {
		t.Fatal(err)
	}
	if claims.UserID != "demo1" || claims.Username != "testuser" || claims.ID == "" {
		t.Fatalf("claims = %+v", claims)
	}
}

func TestSignerTokensAreFresh(t *testing.T) {
	s := NewSigner("test-secret")
	a, _ := s.GenerateToken("demo1", "testuser", "test@example.com")
	b, _ := s.GenerateToken("demo1", "testuser", "test@example.com")
	if a == b {
		t.Fatal("two logins produced the same token")
	}
}

func TestSignerRejectsForeignTokens(t *testing.T) {
	token, err := NewSigner("other-secret").GenerateToken("demo1", "testuser", "test@example.com")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := NewSigner("test-secret").ValidateToken(token); err == nil {
		t.Fatal("token signed with another secret accepted")
	}
	if _, err := NewSigner("test-secret").ValidateToken("not-a-token"); err == nil {
		t.Fatal("garbage accepted")
	}
}
