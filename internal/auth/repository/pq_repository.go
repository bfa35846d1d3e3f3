package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/streamhive/streamhive/internal/auth"
	"github.com/streamhive/streamhive/internal/models"
)

type authRepo struct {
	db *sqlx.DB
}

func NewAuthRepo(db *sqlx.DB) auth.Repository {
	return &authRepo{
		db: db,
	}
}

func (a *authRepo) Register(ctx context.Context, user *models.User) (*models.User, error) {
	u := &models.User{}
	if err := a.db.QueryRowxContext(
		ctx,
		createUserQuery,
		user.Email,
		user.Password,
		user.Fullname,
		user.Role,
		user.OrganizationID,
		user.IsActive,
	).StructScan(u); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return u, nil
}

func (a *authRepo) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	u := &models.User{}
	if err := a.db.QueryRowxContext(
		ctx,
		getUserByEmailQuery,
		email,
	).StructScan(u); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sql.ErrNoRows
		}
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}
	return u, nil
}

func (a *authRepo) GetByID(ctx context.Context, userID uuid.UUID) (*models.User, error) {
	u := &models.User{}
	if err := a.db.QueryRowxContext(
		ctx,
		getUserByIDQuery,
		userID,
	).StructScan(u); err != nil {
		return nil, fmt.Errorf("failed to get user by id: %w", err)
	}
	return u, nil
}

// GetOrCreateOrganization resolves an organization by name, creating it on
// first use. The upsert keeps concurrent first registrations from racing.
func (a *authRepo) GetOrCreateOrganization(ctx context.Context, name string) (*models.Organization, error) {
	org := &models.Organization{}
	err := a.db.QueryRowxContext(ctx, getOrganizationByNameQuery, name).StructScan(org)
	if err == nil {
		return org, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("failed to get organization: %w", err)
	}
	if err = a.db.QueryRowxContext(ctx, createOrganizationQuery, name).StructScan(org); err != nil {
		return nil, fmt.Errorf("failed to create organization: %w", err)
	}
	return org, nil
}

func (a *authRepo) GetStorageUsage(ctx context.Context, userID uuid.UUID) (int64, error) {
	var total int64
	if err := a.db.GetContext(ctx, &total, getStorageUsageQuery, userID); err != nil {
		return 0, fmt.Errorf("failed to get storage usage: %w", err)
	}
	return total, nil
}
