package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestIssueAndVerify(t *testing.T) {
	iss := NewIssuer("s3cret", time.Hour)
	tok, err := iss.Issue("user-1", "juan@example.com")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	id, err := NewVerifier("s3cret").Verify(tok)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if id.UserID != "user-1" || id.Email != "juan@example.com" {
		t.Fatalf("unexpected identity %+v", id)
	}
	if iss.TTL() != time.Hour {
		t.Fatalf("unexpected ttl %v", iss.TTL())
	}
}

func TestVerify_Rejects(t *testing.T) {
	good := NewIssuer("s3cret", time.Hour)

	expired := NewIssuer("s3cret", time.Minute)
	expired.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
	expiredTok, _ := expired.Issue("user-1", "")

	wrongKeyTok, _ := NewIssuer("other", time.Hour).Issue("user-1", "")
	noSubTok, _ := good.Issue("", "")

	foreign := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Issuer: "someone-else", Subject: "user-1", ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})
	foreignTok, _ := foreign.SignedString([]byte("s3cret"))

	noneTok, _ := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.RegisteredClaims{
		Issuer: issuerName, Subject: "user-1", ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)

	cases := []struct {
		name string
		tok  string
	}{
		{name: "garbage", tok: "not-a-token"},
		{name: "expired", tok: expiredTok},
		{name: "wrong key", tok: wrongKeyTok},
		{name: "no subject", tok: noSubTok},
		{name: "foreign issuer", tok: foreignTok},
		{name: "alg none", tok: noneTok},
	}
	v := NewVerifier("s3cret")
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := v.Verify(tc.tok); !errors.Is(err, ErrInvalidToken) {
				t.Fatalf("expected ErrInvalidToken, got %v", err)
			}
		})
	}
}
