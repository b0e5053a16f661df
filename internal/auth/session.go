package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/franciscosanchezn/restaurant-backoffice/internal/models"
)

// Session is the explicit actor binding threaded into every facade call.
// The zero value means no one is logged in.
type Session struct {
	ID       string
	UserID   int
	Username string
	Role     models.Role
	IssuedAt time.Time
	// Token is the signed form of the fields above. A Session whose fields
	// disagree with its token does not authorize anything.
	Token string
}

// IsZero reports whether the session carries no actor
func (s Session) IsZero() bool {
	return s.Token == ""
}

// sessionClaims are the JWT claims of a session token
type sessionClaims struct {
	UserID int    `json:"uid"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// issueSession signs a new session for user
func issueSession(user models.User, key []byte, now time.Time, ttl time.Duration) (Session, error) {
	id := uuid.New().String()
	claims := sessionClaims{
		UserID: user.ID,
		Role:   string(user.Role),
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        id,
			Subject:   user.Username,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(key)
	if err != nil {
		return Session{}, fmt.Errorf("sign session token: %w", err)
	}

	return Session{
		ID:       id,
		UserID:   user.ID,
		Username: user.Username,
		Role:     user.Role,
		IssuedAt: now,
		Token:    signed,
	}, nil
}

// verifySession checks the token signature and expiry and that the session
// fields match the signed claims
func verifySession(s Session, key []byte, now func() time.Time) error {
	token, err := jwt.ParseWithClaims(s.Token, &sessionClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return key, nil
	}, jwt.WithTimeFunc(now), jwt.WithExpirationRequired())
	if err != nil {
		return fmt.Errorf("session token parsing failed: %w", err)
	}
	if !token.Valid {
		return fmt.Errorf("session token is invalid")
	}

	claims, ok := token.Claims.(*sessionClaims)
	if !ok {
		return fmt.Errorf("invalid session claims format")
	}
	if claims.ID != s.ID || claims.UserID != s.UserID ||
		claims.Subject != s.Username || claims.Role != string(s.Role) {
		return fmt.Errorf("session fields do not match token claims")
	}
	return nil
}
