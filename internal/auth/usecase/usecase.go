package usecase

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/streamhive/streamhive/internal/auth"
	"github.com/streamhive/streamhive/internal/config"
	"github.com/streamhive/streamhive/internal/models"
	"github.com/streamhive/streamhive/pkg/logger"
	"github.com/streamhive/streamhive/pkg/utils"
)

type authUC struct {
	cfg      *config.Config
	authRepo auth.Repository
	logger   logger.Logger
}

func NewAuthUseCase(cfg *config.Config, authRepo auth.Repository, log logger.Logger) auth.UseCase {
	return &authUC{
		cfg:      cfg,
		authRepo: authRepo,
		logger:   log,
	}
}

// Register creates the account inside the shared default organization.
func (u *authUC) Register(ctx context.Context, user *models.User) (*models.UserWithToken, error) {
	if _, err := u.authRepo.FindByEmail(ctx, user.Email); err == nil {
		return nil, fmt.Errorf("user with email %s already exists", user.Email)
	} else if !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("failed to check existing user: %v", err)
	}

	if err := user.PrepareCreate(); err != nil {
		return nil, fmt.Errorf("failed to prepare user for create: %v", err)
	}

	org, err := u.authRepo.GetOrCreateOrganization(ctx, models.DefaultOrganizationName)
	if err != nil {
		u.logger.Errorf("Register - GetOrCreateOrganization: %v", err)
		return nil, fmt.Errorf("failed to resolve organization: %v", err)
	}
	user.OrganizationID = org.OrganizationID

	createdUser, err := u.authRepo.Register(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("failed to create user: %v", err)
	}
	createdUser.SanitizePassword()

	token, err := utils.GenerateJWTToken(createdUser, u.cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to generate jwt token: %v", err)
	}
	return &models.UserWithToken{
		User:  createdUser,
		Token: token,
	}, nil
}

func (u *authUC) Login(ctx context.Context, user *models.User) (*models.UserWithToken, error) {
	existUser, err := u.authRepo.FindByEmail(ctx, user.Email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("invalid credentials")
		}
		return nil, fmt.Errorf("failed to find user: %v", err)
	}
	if !existUser.IsActive {
		return nil, fmt.Errorf("account is deactivated")
	}
	if err = existUser.ComparePassword(user.Password); err != nil {
		return nil, fmt.Errorf("invalid credentials")
	}
	existUser.SanitizePassword()

	token, err := utils.GenerateJWTToken(existUser, u.cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to generate jwt token: %v", err)
	}
	return &models.UserWithToken{
		User:  existUser,
		Token: token,
	}, nil
}

func (u *authUC) GetByID(ctx context.Context, userID uuid.UUID) (*models.User, error) {
	user, err := u.authRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	user.SanitizePassword()
	return user, nil
}

func (u *authUC) GetStorageStats(ctx context.Context) (int64, error) {
	user, err := utils.GetUserFromCtx(ctx)
	if err != nil {
		u.logger.Errorf("GetStorageStats - GetUserFromCtx: %v", err)
		return 0, err
	}
	total, err := u.authRepo.GetStorageUsage(ctx, user.UserID)
	if err != nil {
		u.logger.Errorf("GetStorageStats - GetStorageUsage: %v", err)
		return 0, fmt.Errorf("failed to get storage usage: %v", err)
	}
	return total, nil
}
