package http

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/streamhive/streamhive/internal/admin"
	"github.com/streamhive/streamhive/internal/models"
	"github.com/streamhive/streamhive/pkg/logger"
	"github.com/streamhive/streamhive/pkg/utils"
)

type adminHandler struct {
	adminUC admin.UseCase
	logger  logger.Logger
}

func NewAdminHandler(adminUC admin.UseCase, log logger.Logger) admin.Handler {
	return &adminHandler{
		adminUC: adminUC,
		logger:  log,
	}
}

func (h *adminHandler) ListUsers() echo.HandlerFunc {
	return func(c echo.Context) error {
		pagination, err := utils.GetPaginationFromCtx(c)
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		}
		list, err := h.adminUC.ListUsers(c.Request().Context(), pagination)
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, list)
	}
}

func (h *adminHandler) SearchUsers() echo.HandlerFunc {
	return func(c echo.Context) error {
		query := c.QueryParam("query")
		if query == "" {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "Query param is required"})
		}
		pagination, err := utils.GetPaginationFromCtx(c)
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		}
		list, err := h.adminUC.SearchUsers(c.Request().Context(), query, pagination)
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, list)
	}
}

func (h *adminHandler) CreateUser() echo.HandlerFunc {
	return func(c echo.Context) error {
		user := &models.User{}
		if err := c.Bind(user); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request payload"})
		}
		created, err := h.adminUC.CreateUser(c.Request().Context(), user)
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusCreated, created)
	}
}

func (h *adminHandler) UpdateUser() echo.HandlerFunc {
	return func(c echo.Context) error {
		userID, err := uuid.Parse(c.Param("user_id"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid user id"})
		}
		upd := &models.UserUpdate{}
		if err = c.Bind(upd); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request payload"})
		}
		updated, err := h.adminUC.UpdateUser(c.Request().Context(), userID, upd)
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, updated)
	}
}

func (h *adminHandler) DeleteUser() echo.HandlerFunc {
	return func(c echo.Context) error {
		userID, err := uuid.Parse(c.Param("user_id"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid user id"})
		}
		if err = h.adminUC.DeleteUser(c.Request().Context(), userID); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, map[string]string{"message": "User deleted successfully"})
	}
}

func (h *adminHandler) GetStats() echo.HandlerFunc {
	return func(c echo.Context) error {
		stats, err := h.adminUC.GetStats(c.Request().Context())
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, stats)
	}
}
