package middleware

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/streamhive/streamhive/internal/models"
	"github.com/streamhive/streamhive/pkg/utils"
)

// AuthJWTMiddleware resolves the caller from a bearer token or the auth
// cookie and loads the full user record into the request context.
func (mw *MiddlewareManager) AuthJWTMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		bearerHeader := c.Request().Header.Get("Authorization")
		if bearerHeader != "" {
			headerParts := strings.Split(bearerHeader, " ")
			if len(headerParts) != 2 || !strings.EqualFold(headerParts[0], "Bearer") {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Unauthorized"})
			}
			if err := mw.validateJWTToken(c, headerParts[1]); err != nil {
				mw.logger.Errorf("auth middleware validateJWTToken: %v", err)
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Unauthorized"})
			}
			return next(c)
		}

		cookie, err := c.Cookie(mw.cfg.Cookie.Name)
		if err != nil {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Unauthorized"})
		}
		if err = mw.validateJWTToken(c, cookie.Value); err != nil {
			mw.logger.Errorf("auth middleware validateJWTToken: %v", err)
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Unauthorized"})
		}
		return next(c)
	}
}

func (mw *MiddlewareManager) validateJWTToken(c echo.Context, tokenString string) error {
	if tokenString == "" {
		return fmt.Errorf("empty token string")
	}

	claims, err := utils.ValidateToken(tokenString, mw.cfg.Server.JwtSecretKey)
	if err != nil {
		return err
	}
	userUUID, err := uuid.Parse(claims.UserID)
	if err != nil {
		return fmt.Errorf("invalid user id claim: %w", err)
	}

	user, err := mw.authUC.GetByID(c.Request().Context(), userUUID)
	if err != nil {
		return err
	}
	if !user.IsActive {
		return fmt.Errorf("user %s is deactivated", user.UserID)
	}

	c.Set("user", user)
	ctx := context.WithValue(c.Request().Context(), utils.UserCtxKey{}, user)
	c.SetRequest(c.Request().WithContext(ctx))
	return nil
}

// RequireRoles gates a route to the given roles. It must run after
// AuthJWTMiddleware.
func (mw *MiddlewareManager) RequireRoles(roles ...models.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user, err := utils.GetUserFromCtx(c.Request().Context())
			if err != nil {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Unauthorized"})
			}
			for _, role := range roles {
				if role == user.Role {
					return next(c)
				}
			}
			mw.logger.Warnf("RequestID: %s, user %s denied, role %s not allowed",
				utils.GetRequestID(c),
				user.UserID,
				user.Role,
			)
			return c.JSON(http.StatusForbidden, map[string]string{"error": "Forbidden"})
		}
	}
}
