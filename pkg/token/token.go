// Package token issues and verifies the RS256 session tokens handed to
// members on login. The token subject is the member's user ID.
package token

import (
	"crypto/rsa"
	"errors"
	"fmt"
	"library/pkg/domain"
	"library/pkg/serrors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Issuer signs session tokens with an RSA private key.
type Issuer struct {
	key *rsa.PrivateKey
	now func() time.Time
}

// NewIssuer parses a PEM encoded RSA private key.
func NewIssuer(privateKeyPEM string) (*Issuer, error) {
	key, err := jwt.ParseRSAPrivateKeyFromPEM([]byte(privateKeyPEM))
	if err != nil {
		return nil, fmt.Errorf("could not parse RSA private key: %w", err)
	}

	return &Issuer{key: key, now: time.Now}, nil
}

// Issue returns a token for userID valid for ttl.
func (i *Issuer) Issue(userID domain.UserID, ttl time.Duration) (string, error) {
	now := i.now()
	claims := jwt.RegisteredClaims{
		Subject:   userID.String(),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		IssuedAt:  jwt.NewNumericDate(now),
		NotBefore: jwt.NewNumericDate(now),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodRS256, claims).SignedString(i.key)
	if err != nil {
		return "", fmt.Errorf("could not sign token: %w", err)
	}

	return signed, nil
}

// Verifier validates session tokens against an RSA public key.
type Verifier struct {
	key    *rsa.PublicKey
	parser *jwt.Parser
}

// NewVerifier parses a PEM encoded RSA public key.
func NewVerifier(publicKeyPEM string) (*Verifier, error) {
	key, err := jwt.ParseRSAPublicKeyFromPEM([]byte(publicKeyPEM))
	if err != nil {
		return nil, fmt.Errorf("could not parse RSA public key: %w", err)
	}

	return &Verifier{
		key: key,
		parser: jwt.NewParser(
			jwt.WithValidMethods([]string{jwt.SigningMethodRS256.Alg()}),
			jwt.WithExpirationRequired(),
			jwt.WithIssuedAt(),
		),
	}, nil
}

// Verify checks signature, algorithm and validity window of raw and returns
// the user it was issued to. Every failure is reported as
// serrors.ErrUnauthorized.
func (v *Verifier) Verify(raw string) (domain.UserID, error) {
	if raw == "" {
		return domain.UserID{}, serrors.With(serrors.ErrUnauthorized, "Not authenticated")
	}

	var claims jwt.RegisteredClaims
	_, err := v.parser.ParseWithClaims(raw, &claims, func(*jwt.Token) (any, error) {
		return v.key, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return domain.UserID{}, serrors.Wrap(serrors.ErrUnauthorized, err, "Token expired")
		}

		return domain.UserID{}, serrors.Wrap(serrors.ErrUnauthorized, err, "Invalid token")
	}

	id, err := uuid.Parse(claims.Subject)
	if err != nil {
		return domain.UserID{}, serrors.Wrap(serrors.ErrUnauthorized, err, "Invalid token payload")
	}

	return domain.UserID(id), nil
}
