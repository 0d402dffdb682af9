package identity

import (
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestNewIssuerRejectsEmptySecret(t *testing.T) {
	if _, err := NewIssuer("", 24*time.Hour); err == nil {
		t.Fatal("expected error for empty secret")
	}
	if _, err := NewIssuer("   ", 24*time.Hour); err == nil {
		t.Fatal("expected error for blank secret")
	}
	if _, err := NewIssuer("secret", 0); err == nil {
		t.Fatal("expected error for zero ttl")
	}
}

func TestIssueAndParse(t *testing.T) {
	issuer, err := NewIssuer("test-secret", 24*time.Hour)
	if err != nil {
		t.Fatalf("issuer error: %v", err)
	}

	emp := &Employee{
		ID:          "emp-1",
		Credentials: Credentials{Email: "a@x.com"},
	}
	token, expiry, err := issuer.Issue(emp)
	if err != nil {
		t.Fatalf("issue error: %v", err)
	}
	if token == "" {
		t.Fatal("expected non-empty token")
	}

	wantExpiry := time.Now().Add(24 * time.Hour)
	if diff := expiry.Sub(wantExpiry); diff < -time.Minute || diff > time.Minute {
		t.Fatalf("expected expiry near now+24h, got %v", expiry)
	}

	claims, err := issuer.Parse(token)
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	if claims.Email != "a@x.com" || claims.Subject != "emp-1" {
		t.Fatalf("claims mismatch: %+v", claims)
	}
}

func TestParseRejectsTamperedSignature(t *testing.T) {
	issuer, err := NewIssuer("test-secret", 24*time.Hour)
	if err != nil {
		t.Fatalf("issuer error: %v", err)
	}
	token, _, err := issuer.Issue(&Employee{ID: "emp-1", Credentials: Credentials{Email: "a@x.com"}})
	if err != nil {
		t.Fatalf("issue error: %v", err)
	}

	parts := strings.Split(token, ".")
	if len(parts) != 3 {
		t.Fatalf("expected compact token with 3 segments, got %d", len(parts))
	}
	sig := []byte(parts[2])
	if sig[0] == 'A' {
		sig[0] = 'B'
	} else {
		sig[0] = 'A'
	}
	tampered := parts[0] + "." + parts[1] + "." + string(sig)

	if _, err := issuer.Parse(tampered); err == nil {
		t.Fatal("expected tampered token to be rejected")
	}
}

func TestParseRejectsExpiredToken(t *testing.T) {
	issuer, err := NewIssuer("test-secret", time.Millisecond)
	if err != nil {
		t.Fatalf("issuer error: %v", err)
	}
	token, _, err := issuer.Issue(&Employee{ID: "emp-1", Credentials: Credentials{Email: "a@x.com"}})
	if err != nil {
		t.Fatalf("issue error: %v", err)
	}

	time.Sleep(5 * time.Millisecond)
	if _, err := issuer.Parse(token); err == nil {
		t.Fatal("expected expired token to be rejected")
	}
}

func TestParseRejectsWrongSecret(t *testing.T) {
	issuer, err := NewIssuer("test-secret", 24*time.Hour)
	if err != nil {
		t.Fatalf("issuer error: %v", err)
	}
	other, err := NewIssuer("other-secret", 24*time.Hour)
	if err != nil {
		t.Fatalf("issuer error: %v", err)
	}
	token, _, err := issuer.Issue(&Employee{ID: "emp-1", Credentials: Credentials{Email: "a@x.com"}})
	if err != nil {
		t.Fatalf("issue error: %v", err)
	}
	if _, err := other.Parse(token); err == nil {
		t.Fatal("expected token signed with a different secret to be rejected")
	}
}

func TestParseRejectsForeignSigningMethod(t *testing.T) {
	issuer, err := NewIssuer("test-secret", 24*time.Hour)
	if err != nil {
		t.Fatalf("issuer error: %v", err)
	}

	claims := Claims{
		Email: "a@x.com",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "emp-1",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	foreign, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("sign error: %v", err)
	}

	if _, err := issuer.Parse(foreign); err == nil {
		t.Fatal("expected HS256 token to be rejected")
	}
}
