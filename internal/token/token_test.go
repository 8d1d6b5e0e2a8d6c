package token

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestIssueAndVerify(t *testing.T) {
	t.Parallel()

	svc := New("super-secret")
	subject := "64adf0a72f1b2c3d4e5f6071"

	tok, err := svc.Issue(subject)
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	got, err := svc.Verify(tok)
	if err != nil {
		t.Fatalf("Verify error: %v", err)
	}
	if got != subject {
		t.Fatalf("subject mismatch: got %q want %q", got, subject)
	}
}

func TestVerify_WrongSecret(t *testing.T) {
	t.Parallel()

	tok, err := New("right-secret").Issue("u1")
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	_, err = New("wrong-secret").Verify(tok)
	if err != ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestVerify_Expired(t *testing.T) {
	t.Parallel()

	secret := []byte("secret")
	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
		},
		UserID: "u1",
	})
	signed, err := expired.SignedString(secret)
	if err != nil {
		t.Fatalf("sign error: %v", err)
	}

	_, err = New("secret").Verify(signed)
	if err != ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken for expired token, got %v", err)
	}
}

func TestVerify_Malformed(t *testing.T) {
	t.Parallel()

	_, err := New("k").Verify("not.a.jwt")
	if err != ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken for malformed token, got %v", err)
	}
}

func TestVerify_MissingSubject(t *testing.T) {
	t.Parallel()

	empty := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})
	signed, err := empty.SignedString([]byte("k"))
	if err != nil {
		t.Fatalf("sign error: %v", err)
	}

	_, err = New("k").Verify(signed)
	if err != ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken for empty subject, got %v", err)
	}
}
