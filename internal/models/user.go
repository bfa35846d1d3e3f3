package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type Role string

const (
	ViewerRole Role = "viewer"
	EditorRole Role = "editor"
	AdminRole  Role = "admin"
)

func (r Role) Valid() bool {
	switch r {
	case ViewerRole, EditorRole, AdminRole:
		return true
	}
	return false
}

// CanUpload reports whether the role may create videos.
func (r Role) CanUpload() bool {
	return r == EditorRole || r == AdminRole
}

type User struct {
	UserID         uuid.UUID `json:"user_id" db:"user_id" validate:"omitempty"`
	Email          string    `json:"email" db:"email" validate:"required,email,lte=60"`
	Password       string    `json:"password,omitempty" db:"password" validate:"required,min=6"`
	Fullname       string    `json:"fullname" db:"fullname" validate:"required,lte=60"`
	Role           Role      `json:"role" db:"role" validate:"omitempty,oneof=viewer editor admin"`
	OrganizationID uuid.UUID `json:"organization_id" db:"organization_id" validate:"omitempty"`
	IsActive       bool      `json:"is_active" db:"is_active"`
	CreatedAt      time.Time `json:"created_at" db:"created_at"`
	UpdatedAt      time.Time `json:"updated_at" db:"updated_at"`
}

// UserUpdate is a partial admin-side update. Nil fields are left as is.
type UserUpdate struct {
	Fullname *string `json:"fullname" validate:"omitempty,lte=60"`
	Role     *Role   `json:"role" validate:"omitempty,oneof=viewer editor admin"`
	IsActive *bool   `json:"is_active"`
}

type UserWithToken struct {
	User  *User  `json:"user"`
	Token string `json:"token"`
}

type UserList struct {
	Users      []*User `json:"users"`
	TotalCount int     `json:"total_count"`
	Page       int     `json:"page"`
	PageSize   int     `json:"page_size"`
	HasMore    bool    `json:"has_more"`
}

type UserStats struct {
	TotalUsers  int `json:"total_users" db:"total_users"`
	ActiveUsers int `json:"active_users" db:"active_users"`
	Admins      int `json:"admins" db:"admins"`
	Editors     int `json:"editors" db:"editors"`
	Viewers     int `json:"viewers" db:"viewers"`
	TotalVideos int `json:"total_videos" db:"total_videos"`
}

func (u *User) SanitizePassword() {
	u.Password = ""
}

func (u *User) HashPassword() error {
	hashedPass, err := bcrypt.GenerateFromPassword([]byte(u.Password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("error hashing password: %w", err)
	}
	u.Password = string(hashedPass)
	return nil
}

func (u *User) ComparePassword(password string) error {
	if err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)); err != nil {
		return fmt.Errorf("error comparing password: %w", err)
	}
	return nil
}

func (u *User) PrepareCreate() error {
	u.Email = strings.ToLower(strings.TrimSpace(u.Email))
	u.Password = strings.TrimSpace(u.Password)
	if err := u.HashPassword(); err != nil {
		return err
	}
	if u.Role == "" {
		u.Role = ViewerRole
	} else if !u.Role.Valid() {
		return fmt.Errorf("invalid role: %s", u.Role)
	}
	u.IsActive = true
	return nil
}
