package jwt

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/piresc/bikeparts/internal/pkg/models"
)

var (
	ErrInvalidToken   = errors.New("invalid token")
	ErrMissingRiderID = errors.New("token is missing the riderId claim")
)

// RiderClaims are the claims carried by a rider bearer token
type RiderClaims struct {
	RiderID string `json:"riderId"`
	jwt.RegisteredClaims
}

// RiderUUID parses the riderId claim
func (c *RiderClaims) RiderUUID() (uuid.UUID, error) {
	if c.RiderID == "" {
		return uuid.Nil, ErrMissingRiderID
	}
	id, err := uuid.Parse(c.RiderID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("riderId claim is not a valid UUID: %w", err)
	}
	return id, nil
}

// GenerateRiderToken signs a rider token. Tokens are normally issued by the
// identity service; this is used by local tooling and tests.
func GenerateRiderToken(riderID uuid.UUID, cfg models.JWTConfig) (string, int64, error) {
	expirationTime := time.Now().Add(time.Duration(cfg.Expiration) * time.Minute)

	claims := RiderClaims{
		RiderID: riderID.String(),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   riderID.String(),
			Issuer:    cfg.Issuer,
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(expirationTime),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(cfg.Secret))
	if err != nil {
		return "", 0, err
	}

	return tokenString, expirationTime.Unix(), nil
}

// ValidateToken verifies the signature and expiry of a rider token and returns its claims
func ValidateToken(tokenString string, secret string) (*RiderClaims, error) {
	claims := &RiderClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, ErrInvalidToken
	}
	if claims.RiderID == "" {
		return nil, ErrMissingRiderID
	}

	return claims, nil
}
