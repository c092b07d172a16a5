package devserver

import (
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/plantdesk/portalctl/internal/core/domain"
)

// Context keys set by the auth middleware.
const (
	ctxUserID  = "user_id"
	ctxTokenID = "token_id"
	ctxRoles   = "roles"
)

// authMiddleware validates the bearer JWT, rejects revoked sessions, and
// injects the caller's identity into context.
func authMiddleware(store *Store, jwtSecret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			claims := jwt.MapClaims{}
			tkn, err := jwt.ParseWithClaims(parts[1], claims, func(token *jwt.Token) (interface{}, error) {
				if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
					return nil, jwt.ErrTokenSignatureInvalid
				}
				return []byte(jwtSecret), nil
			})
			if err != nil || !tkn.Valid {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			tokenID, _ := claims["jti"].(string)
			if tokenID == "" || !store.SessionActive(tokenID) {
				// Logout-all revokes by jti, so a structurally valid token
				// can still be a dead session.
				return echo.NewHTTPError(http.StatusUnauthorized, "session revoked")
			}

			userID, _ := claims["sub"].(string)
			roles := rolesFromClaim(claims["roles"])

			c.Set(ctxUserID, userID)
			c.Set(ctxTokenID, tokenID)
			c.Set(ctxRoles, roles)

			return next(c)
		}
	}
}

// requireRole enforces role-based access control on top of authMiddleware.
func requireRole(allowedRoles ...string) echo.MiddlewareFunc {
	allowed := make(map[string]struct{}, len(allowedRoles))
	for _, r := range allowedRoles {
		allowed[r] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			roles, _ := c.Get(ctxRoles).([]string)
			for _, r := range roles {
				if _, ok := allowed[r]; ok {
					return next(c)
				}
			}
			return domain.ErrForbidden
		}
	}
}

func rolesFromClaim(v any) []string {
	raw, ok := v.([]any)
	if !ok {
		return nil
	}
	roles := make([]string, 0, len(raw))
	for _, r := range raw {
		if s, ok := r.(string); ok {
			roles = append(roles, s)
		}
	}
	return roles
}
