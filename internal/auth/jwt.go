package auth

import (
	"errors"
	"log"
	"os"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrInvalidSessionToken = errors.New("session token is invalid")
	ErrExpiredSessionToken = errors.New("session token is expired")
)

// SessionClaims mirrors the claim set the identity provider puts into its
// session tokens. The subject claim carries the stable external user id.
type SessionClaims struct {
	Email      string `json:"email,omitempty"`
	GivenName  string `json:"given_name,omitempty"`
	FamilyName string `json:"family_name,omitempty"`
	PictureURL string `json:"picture,omitempty"`
	jwt.RegisteredClaims
}

type VerifierInterface interface {
	VerifySessionToken(tokenString string) (*Subject, error)
}

// Verifier validates session tokens issued by the external identity
// provider. Token issuance is entirely the provider's business; this
// service only checks the signature and expiry and extracts the subject.
type Verifier struct {
	secret []byte
}

func NewVerifier() *Verifier {
	secret := os.Getenv("SESSION_JWT_SECRET")
	if secret == "" {
		log.Fatalf("SESSION_JWT_SECRET is not set")
	}
	return &Verifier{secret: []byte(secret)}
}

func NewVerifierWithSecret(secret []byte) *Verifier {
	return &Verifier{secret: secret}
}

func (v *Verifier) VerifySessionToken(tokenString string) (*Subject, error) {
	claims := &SessionClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return v.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredSessionToken
		}
		return nil, ErrInvalidSessionToken
	}

	if !token.Valid || claims.Subject == "" {
		return nil, ErrInvalidSessionToken
	}

	return &Subject{
		ID:         claims.Subject,
		Email:      claims.Email,
		GivenName:  claims.GivenName,
		FamilyName: claims.FamilyName,
		PictureURL: claims.PictureURL,
	}, nil
}
