package queries

import (
	"time"

	"health-push/internal/domain/profile"

	"github.com/google/uuid"
)

// PushRecordView represents read-optimized push history data
type PushRecordView struct {
	ID       uuid.UUID `json:"id"`
	UserID   string    `json:"user_id"`
	PushType string    `json:"push_type"`
	Content  string    `json:"content"`
	PushTime time.Time `json:"push_time"`
	IsRead   bool      `json:"is_read"`
}

// ProfileView represents read-optimized health profile data
type ProfileView struct {
	UserID       string              `json:"user_id"`
	BasicInfo    profile.BasicInfo   `json:"basic_info"`
	HealthInfo   profile.HealthInfo  `json:"health_info"`
	OtherInfo    profile.OtherInfo   `json:"other_info"`
	PersonaStyle *string             `json:"persona_style,omitempty"`
	Location     *profile.Location   `json:"location,omitempty"`
	CreatedAt    time.Time           `json:"created_at"`
	UpdatedAt    time.Time           `json:"updated_at"`
}

const (
	DefaultHistoryLimit = 20
	MaxHistoryLimit     = 100
)

// ValidateLimit clamps a caller-supplied history limit into [1, MaxHistoryLimit].
func ValidateLimit(limit int) int {
	if limit <= 0 {
		return DefaultHistoryLimit
	}
	if limit > MaxHistoryLimit {
		return MaxHistoryLimit
	}
	return limit
}
