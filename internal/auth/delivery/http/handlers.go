package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/streamhive/streamhive/internal/auth"
	"github.com/streamhive/streamhive/internal/config"
	"github.com/streamhive/streamhive/internal/models"
	"github.com/streamhive/streamhive/pkg/logger"
	"github.com/streamhive/streamhive/pkg/utils"
)

type authHandler struct {
	cfg    *config.Config
	authUC auth.UseCase
	logger logger.Logger
}

func NewAuthHandler(cfg *config.Config, authUC auth.UseCase, log logger.Logger) auth.Handler {
	return &authHandler{
		cfg:    cfg,
		authUC: authUC,
		logger: log,
	}
}

func (h *authHandler) Register() echo.HandlerFunc {
	return func(c echo.Context) error {
		user := &models.User{}
		if err := c.Bind(user); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request payload"})
		}
		if err := utils.ValidateStruct(c.Request().Context(), user); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		}

		createdUser, err := h.authUC.Register(c.Request().Context(), user)
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		}
		c.SetCookie(utils.CreateJWTCookie(h.cfg, createdUser.Token))
		return c.JSON(http.StatusCreated, createdUser)
	}
}

func (h *authHandler) Login() echo.HandlerFunc {
	return func(c echo.Context) error {
		user := &models.User{}
		if err := c.Bind(user); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request payload"})
		}

		loggedInUser, err := h.authUC.Login(c.Request().Context(), user)
		if err != nil {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": err.Error()})
		}
		c.SetCookie(utils.CreateJWTCookie(h.cfg, loggedInUser.Token))
		return c.JSON(http.StatusOK, loggedInUser)
	}
}

// Logout only clears the cookie. Tokens stay valid until expiry, there is
// no server-side revocation list.
func (h *authHandler) Logout() echo.HandlerFunc {
	return func(c echo.Context) error {
		c.SetCookie(utils.DeleteJWTCookie(h.cfg))
		return c.JSON(http.StatusOK, map[string]string{"message": "Logged out successfully"})
	}
}

func (h *authHandler) GetMe() echo.HandlerFunc {
	return func(c echo.Context) error {
		user, err := utils.GetUserFromCtx(c.Request().Context())
		if err != nil {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Unauthorized"})
		}
		return c.JSON(http.StatusOK, user)
	}
}

func (h *authHandler) GetStorageStats() echo.HandlerFunc {
	return func(c echo.Context) error {
		total, err := h.authUC.GetStorageStats(c.Request().Context())
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, map[string]int64{"total_size": total})
	}
}
