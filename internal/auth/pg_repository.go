package auth

import (
	"context"

	"github.com/google/uuid"
	"github.com/streamhive/streamhive/internal/models"
)

type Repository interface {
	Register(ctx context.Context, user *models.User) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	GetByID(ctx context.Context, userID uuid.UUID) (*models.User, error)
	GetOrCreateOrganization(ctx context.Context, name string) (*models.Organization, error)
	GetStorageUsage(ctx context.Context, userID uuid.UUID) (int64, error)
}
