package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/streamhive/streamhive/internal/admin"
	"github.com/streamhive/streamhive/internal/models"
	"github.com/streamhive/streamhive/pkg/utils"
)

type adminRepo struct {
	db *sqlx.DB
}

func NewAdminRepo(db *sqlx.DB) admin.Repository {
	return &adminRepo{
		db: db,
	}
}

func (a *adminRepo) GetUsers(ctx context.Context, pq *utils.Pagination) (*models.UserList, error) {
	var totalCount int
	if err := a.db.GetContext(ctx, &totalCount, getTotalUsersQuery); err != nil {
		return nil, fmt.Errorf("failed to get total users count: %w", err)
	}
	rows, err := a.db.QueryxContext(
		ctx,
		getUsersQuery,
		pq.GetOffset(),
		pq.GetLimit(),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get users: %w", err)
	}
	defer rows.Close()
	users := make([]*models.User, 0, pq.GetSize())
	for rows.Next() {
		var user models.User
		if err = rows.StructScan(&user); err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		users = append(users, &user)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to scan users: %w", err)
	}
	return &models.UserList{
		Users:      users,
		TotalCount: totalCount,
		Page:       pq.GetPage(),
		PageSize:   pq.GetSize(),
		HasMore:    utils.GetHasMore(pq.GetPage(), totalCount, pq.GetSize()),
	}, nil
}

func (a *adminRepo) GetUsersByQuery(ctx context.Context, query string, pq *utils.Pagination) (*models.UserList, error) {
	var totalCount int
	if err := a.db.GetContext(ctx, &totalCount, getTotalUsersBySearchQuery, query); err != nil {
		return nil, fmt.Errorf("failed to get total users by query: %w", err)
	}
	rows, err := a.db.QueryxContext(
		ctx,
		getUsersBySearchQuery,
		query,
		pq.GetOffset(),
		pq.GetLimit(),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get users by query: %w", err)
	}
	defer rows.Close()
	users := make([]*models.User, 0, pq.GetSize())
	for rows.Next() {
		var user models.User
		if err = rows.StructScan(&user); err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		users = append(users, &user)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to scan users: %w", err)
	}
	return &models.UserList{
		Users:      users,
		TotalCount: totalCount,
		Page:       pq.GetPage(),
		PageSize:   pq.GetSize(),
		HasMore:    utils.GetHasMore(pq.GetPage(), totalCount, pq.GetSize()),
	}, nil
}

func (a *adminRepo) CreateUser(ctx context.Context, user *models.User) (*models.User, error) {
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

func (a *adminRepo) UpdateUser(ctx context.Context, userID uuid.UUID, upd *models.UserUpdate) (*models.User, error) {
	u := &models.User{}
	if err := a.db.QueryRowxContext(
		ctx,
		updateUserQuery,
		upd.Fullname,
		upd.Role,
		upd.IsActive,
		userID,
	).StructScan(u); err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}
	return u, nil
}

func (a *adminRepo) DeleteUser(ctx context.Context, userID uuid.UUID) error {
	res, err := a.db.ExecContext(ctx, deleteUserQuery, userID)
	if err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	count, _ := res.RowsAffected()
	if count == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (a *adminRepo) GetStats(ctx context.Context) (*models.UserStats, error) {
	stats := &models.UserStats{}
	if err := a.db.QueryRowxContext(ctx, getStatsQuery).StructScan(stats); err != nil {
		return nil, fmt.Errorf("failed to get user stats: %w", err)
	}
	return stats, nil
}
