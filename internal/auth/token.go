package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

// CookieName is the session cookie carrying the signed token.
const CookieName = "session"

// SessionTTL matches the cookie and token lifetime.
const SessionTTL = 7 * 24 * time.Hour

var ErrInvalidToken = errors.New("invalid session token")

// Session is the verified identity carried by the cookie.
type Session struct {
	UserID string `json:"id"`
	Email  string `json:"email"`
	Role   string `json:"role"`
}

// IssueToken signs a session token for the user.
func IssueToken(secret []byte, s Session) (string, error) {
	claims := jwt.MapClaims{
		"sub":   s.UserID,
		"email": s.Email,
		"role":  s.Role,
		"iat":   time.Now().Unix(),
		"exp":   time.Now().Add(SessionTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}

// ParseToken verifies the signature and expiry and returns the session.
func ParseToken(secret []byte, raw string) (Session, error) {
	token, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return secret, nil
	})
	if err != nil || !token.Valid {
		return Session{}, ErrInvalidToken
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return Session{}, ErrInvalidToken
	}
	s := Session{}
	if sub, ok := claims["sub"].(string); ok {
		s.UserID = sub
	}
	if email, ok := claims["email"].(string); ok {
		s.Email = email
	}
	if role, ok := claims["role"].(string); ok {
		s.Role = role
	}
	if s.UserID == "" {
		return Session{}, ErrInvalidToken
	}
	return s, nil
}
