package http

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"mota/internal/core/domain/model/actor"
	"mota/internal/core/domain/model/kernel"

	"github.com/golang-jwt/jwt/v4"
	"github.com/labstack/echo/v4"
)

const actorContextKey = "mota.actor"

// SessionClaims is the payload of a gateway session token.
type SessionClaims struct {
	jwt.RegisteredClaims
	UserID int64 `json:"uid"`
	Role   int   `json:"role"`
}

// IssueSessionToken signs an HS256 token for a.
func IssueSessionToken(signingKey string, a actor.Actor, ttl time.Duration) (string, error) {
	if err := a.Validate(); err != nil {
		return "", err
	}

	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, SessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   a.ID().String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
		UserID: a.ID().Int64(),
		Role:   a.Role().Code(),
	})
	return token.SignedString([]byte(signingKey))
}

// ParseSessionToken verifies the signature and expiry and rebuilds the actor.
func ParseSessionToken(signingKey, tokenString string) (actor.Actor, error) {
	claims := new(SessionClaims)
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(signingKey), nil
	})
	if err != nil {
		return actor.Actor{}, fmt.Errorf("parse token: %w", err)
	}
	if !token.Valid {
		return actor.Actor{}, errors.New("invalid token")
	}

	userID, err := kernel.NewID(claims.UserID)
	if err != nil {
		return actor.Actor{}, err
	}
	return actor.NewActor(userID, actor.Role(claims.Role))
}

// SessionMiddleware decodes the bearer token into an explicit actor for the
// request. Requests without a valid token are answered with 401.
func SessionMiddleware(signingKey string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			tokenString, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || strings.TrimSpace(tokenString) == "" {
				return fmt.Errorf("missing bearer token: %w", errSessionRequired)
			}

			a, err := ParseSessionToken(signingKey, strings.TrimSpace(tokenString))
			if err != nil {
				return fmt.Errorf("%w: %w", errSessionRequired, err)
			}

			c.Set(actorContextKey, a)
			return next(c)
		}
	}
}

func actorFrom(c echo.Context) (actor.Actor, error) {
	a, ok := c.Get(actorContextKey).(actor.Actor)
	if !ok {
		return actor.Actor{}, errSessionRequired
	}
	return a, nil
}
