package auth

import (
	"context"

	"github.com/google/uuid"
	"github.com/streamhive/streamhive/internal/models"
)

type UseCase interface {
	Register(ctx context.Context, user *models.User) (*models.UserWithToken, error)
	Login(ctx context.Context, user *models.User) (*models.UserWithToken, error)
	GetByID(ctx context.Context, userID uuid.UUID) (*models.User, error)
	GetStorageStats(ctx context.Context) (int64, error)
}
