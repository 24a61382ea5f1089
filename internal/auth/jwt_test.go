package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
)

var testSecret = []byte("test-secret")

func signSessionToken(t *testing.T, claims SessionClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(testSecret)
	assert.NoError(t, err)
	return signed
}

func TestVerifySessionToken_ValidToken(t *testing.T) {
	verifier := NewVerifierWithSecret(testSecret)
	tokenString := signSessionToken(t, SessionClaims{
		Email:      "jo@example.com",
		GivenName:  "Jo",
		FamilyName: "Kowalska",
		PictureURL: "https://img.example.com/jo.png",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "clerk-1",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})

	subject, err := verifier.VerifySessionToken(tokenString)

	assert.NoError(t, err)
	assert.Equal(t, "clerk-1", subject.ID)
	assert.Equal(t, "jo@example.com", subject.Email)
	assert.Equal(t, "Jo", subject.GivenName)
	assert.Equal(t, "Kowalska", subject.FamilyName)
	assert.Equal(t, "https://img.example.com/jo.png", subject.PictureURL)
}

func TestVerifySessionToken_ExpiredToken(t *testing.T) {
	verifier := NewVerifierWithSecret(testSecret)
	tokenString := signSessionToken(t, SessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "clerk-1",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
		},
	})

	subject, err := verifier.VerifySessionToken(tokenString)

	assert.Nil(t, subject)
	assert.ErrorIs(t, err, ErrExpiredSessionToken)
}

func TestVerifySessionToken_WrongSecret(t *testing.T) {
	verifier := NewVerifierWithSecret([]byte("another-secret"))
	tokenString := signSessionToken(t, SessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "clerk-1",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})

	subject, err := verifier.VerifySessionToken(tokenString)

	assert.Nil(t, subject)
	assert.ErrorIs(t, err, ErrInvalidSessionToken)
}

func TestVerifySessionToken_MissingSubjectClaim(t *testing.T) {
	verifier := NewVerifierWithSecret(testSecret)
	tokenString := signSessionToken(t, SessionClaims{
		Email: "jo@example.com",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})

	subject, err := verifier.VerifySessionToken(tokenString)

	assert.Nil(t, subject)
	assert.ErrorIs(t, err, ErrInvalidSessionToken)
}

func TestVerifySessionToken_GarbageToken(t *testing.T) {
	verifier := NewVerifierWithSecret(testSecret)

	subject, err := verifier.VerifySessionToken("not.a.token")

	assert.Nil(t, subject)
	assert.ErrorIs(t, err, ErrInvalidSessionToken)
}
