package admin

import (
	"context"

	"github.com/google/uuid"
	"github.com/streamhive/streamhive/internal/models"
	"github.com/streamhive/streamhive/pkg/utils"
)

type UseCase interface {
	ListUsers(ctx context.Context, pq *utils.Pagination) (*models.UserList, error)
	SearchUsers(ctx context.Context, query string, pq *utils.Pagination) (*models.UserList, error)
	CreateUser(ctx context.Context, user *models.User) (*models.User, error)
	UpdateUser(ctx context.Context, userID uuid.UUID, upd *models.UserUpdate) (*models.User, error)
	DeleteUser(ctx context.Context, userID uuid.UUID) error
	GetStats(ctx context.Context) (*models.UserStats, error)
}
