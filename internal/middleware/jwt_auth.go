package middleware

import (
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v4"
	"github.com/labstack/echo/v4"

	"github.com/adityakx/sangam/backend/internal/models"
)

const emailContextKey = "authEmail"

// JWTAuthMiddleware checks for a valid bearer token and stores the verified
// subject email in the request context. Downstream handlers resolve the email
// to a user record themselves; no user id from the token is ever trusted
// without that lookup.
func JWTAuthMiddleware(jwtSecret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "Missing Authorization header")
			}

			// Expecting "Bearer <token>"
			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return echo.NewHTTPError(http.StatusUnauthorized, "Invalid Authorization header format")
			}
			tokenString := parts[1]

			claims := &models.JwtCustomClaims{}
			token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
				if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, echo.NewHTTPError(http.StatusUnauthorized, "Unexpected signing method")
				}
				return []byte(jwtSecret), nil
			})
			if err != nil || !token.Valid {
				return echo.NewHTTPError(http.StatusUnauthorized, "Invalid token")
			}

			email := claims.Email
			if email == "" {
				email = claims.Subject
			}
			if email == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "Invalid token")
			}

			c.Set(emailContextKey, email)
			return next(c)
		}
	}
}

// EmailFrom returns the verified subject email set by JWTAuthMiddleware, or
// empty when the request was not authenticated.
func EmailFrom(c echo.Context) string {
	if email, ok := c.Get(emailContextKey).(string); ok {
		return email
	}
	return ""
}
