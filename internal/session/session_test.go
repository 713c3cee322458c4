package session

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func signedToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	s, err := tok.SignedString([]byte("irrelevant-to-the-client"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return s
}

func TestFromToken_ExtractsClaims(t *testing.T) {
	exp := time.Now().Add(time.Hour).Truncate(time.Second)
	token := signedToken(t, jwt.MapClaims{
		"sub":      "usr-viewer",
		"username": "dustrider",
		"exp":      exp.Unix(),
	})

	sess, err := FromToken(token)
	if err != nil {
		t.Fatalf("from token: %v", err)
	}
	if sess.UserID != "usr-viewer" {
		t.Errorf("user id = %q, want usr-viewer", sess.UserID)
	}
	if sess.Username != "dustrider" {
		t.Errorf("username = %q, want dustrider", sess.Username)
	}
	if !sess.ExpiresAt.Equal(exp) {
		t.Errorf("expires at = %v, want %v", sess.ExpiresAt, exp)
	}
	if sess.Token != token {
		t.Error("session must keep the raw token for the Authorization header")
	}
}

func TestFromToken_Empty(t *testing.T) {
	if _, err := FromToken(""); !errors.Is(err, ErrNoToken) {
		t.Errorf("err = %v, want ErrNoToken", err)
	}
}

func TestFromToken_Garbage(t *testing.T) {
	if _, err := FromToken("not.a.jwt"); err == nil {
		t.Error("expected a parse error for a malformed token")
	}
}

func TestExpired(t *testing.T) {
	now := time.Now()

	past := &Session{ExpiresAt: now.Add(-time.Minute)}
	if !past.Expired(now) {
		t.Error("a token past its exp must be expired")
	}

	future := &Session{ExpiresAt: now.Add(time.Minute)}
	if future.Expired(now) {
		t.Error("a token before its exp must not be expired")
	}

	// No exp claim: never expires client-side.
	eternal := &Session{}
	if eternal.Expired(now) {
		t.Error("a token without exp must not be expired")
	}
}
