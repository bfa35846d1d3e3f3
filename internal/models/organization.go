package models

import (
	"time"

	"github.com/google/uuid"
)

const DefaultOrganizationName = "Default Organization"

type Organization struct {
	OrganizationID uuid.UUID `json:"organization_id" db:"organization_id"`
	Name           string    `json:"name" db:"name" validate:"required,lte=100"`
	MaxVideoSize   int64     `json:"max_video_size" db:"max_video_size"`
	CreatedAt      time.Time `json:"created_at" db:"created_at"`
	UpdatedAt      time.Time `json:"updated_at" db:"updated_at"`
}
