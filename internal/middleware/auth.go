package middleware

import (
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/rmacedof/hotel-booking-service/internal/repository"
)

// ContextUserID is the echo context key under which the authenticated user's
// id is stored.
const ContextUserID = "userID"

// Auth validates a Bearer token and resolves it to a user id. The token must
// be a valid HS256 JWT carrying a userId claim, and a session row for the raw
// token must exist: a well-signed token without a session is rejected.
func Auth(secret string, sessions repository.SessionRepository) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			if !strings.HasPrefix(header, "Bearer ") {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing bearer token")
			}
			raw := strings.TrimPrefix(header, "Bearer ")

			token, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
				if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, echo.ErrUnauthorized
				}
				return []byte(secret), nil
			})
			if err != nil || !token.Valid {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			claims, ok := token.Claims.(jwt.MapClaims)
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid claims")
			}
			userID, ok := claims["userId"].(float64)
			if !ok || userID <= 0 {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid claims")
			}

			if _, err := sessions.FindByToken(c.Request().Context(), raw); err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "no session for token")
			}

			c.Set(ContextUserID, uint(userID))
			return next(c)
		}
	}
}

// UserID reads the authenticated user's id out of the request context.
func UserID(c echo.Context) uint {
	id, _ := c.Get(ContextUserID).(uint)
	return id
}
