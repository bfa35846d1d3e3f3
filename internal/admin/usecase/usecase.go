package usecase

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/streamhive/streamhive/internal/admin"
	"github.com/streamhive/streamhive/internal/config"
	"github.com/streamhive/streamhive/internal/models"
	"github.com/streamhive/streamhive/pkg/logger"
	"github.com/streamhive/streamhive/pkg/utils"
)

type adminUC struct {
	cfg       *config.Config
	adminRepo admin.Repository
	logger    logger.Logger
}

func NewAdminUseCase(cfg *config.Config, adminRepo admin.Repository, log logger.Logger) admin.UseCase {
	return &adminUC{
		cfg:       cfg,
		adminRepo: adminRepo,
		logger:    log,
	}
}

func (u *adminUC) ListUsers(ctx context.Context, pq *utils.Pagination) (*models.UserList, error) {
	return u.adminRepo.GetUsers(ctx, pq)
}

func (u *adminUC) SearchUsers(ctx context.Context, query string, pq *utils.Pagination) (*models.UserList, error) {
	return u.adminRepo.GetUsersByQuery(ctx, query, pq)
}

// CreateUser provisions a member inside the calling admin's organization.
func (u *adminUC) CreateUser(ctx context.Context, user *models.User) (*models.User, error) {
	caller, err := utils.GetUserFromCtx(ctx)
	if err != nil {
		u.logger.Errorf("CreateUser - GetUserFromCtx: %v", err)
		return nil, err
	}
	if err = utils.ValidateStruct(ctx, user); err != nil {
		return nil, fmt.Errorf("invalid input: %v", err)
	}
	if err = user.PrepareCreate(); err != nil {
		return nil, fmt.Errorf("failed to prepare user for create: %v", err)
	}
	user.OrganizationID = caller.OrganizationID

	created, err := u.adminRepo.CreateUser(ctx, user)
	if err != nil {
		u.logger.Errorf("CreateUser - CreateUser: %v", err)
		return nil, err
	}
	created.SanitizePassword()
	return created, nil
}

func (u *adminUC) UpdateUser(ctx context.Context, userID uuid.UUID, upd *models.UserUpdate) (*models.User, error) {
	if upd.Role != nil && !upd.Role.Valid() {
		return nil, fmt.Errorf("invalid role: %s", *upd.Role)
	}
	caller, err := utils.GetUserFromCtx(ctx)
	if err != nil {
		return nil, err
	}
	// An admin demoting or deactivating themselves locks the org out.
	if caller.UserID == userID {
		if upd.Role != nil && *upd.Role != models.AdminRole {
			return nil, fmt.Errorf("admins cannot change their own role")
		}
		if upd.IsActive != nil && !*upd.IsActive {
			return nil, fmt.Errorf("admins cannot deactivate themselves")
		}
	}
	updated, err := u.adminRepo.UpdateUser(ctx, userID, upd)
	if err != nil {
		u.logger.Errorf("UpdateUser - UpdateUser: %v", err)
		return nil, err
	}
	updated.SanitizePassword()
	return updated, nil
}

func (u *adminUC) DeleteUser(ctx context.Context, userID uuid.UUID) error {
	caller, err := utils.GetUserFromCtx(ctx)
	if err != nil {
		return err
	}
	if caller.UserID == userID {
		return fmt.Errorf("admins cannot delete themselves")
	}
	if err = u.adminRepo.DeleteUser(ctx, userID); err != nil {
		u.logger.Errorf("DeleteUser - DeleteUser: %v", err)
		return fmt.Errorf("failed to delete user: %v", err)
	}
	return nil
}

func (u *adminUC) GetStats(ctx context.Context) (*models.UserStats, error) {
	return u.adminRepo.GetStats(ctx)
}
