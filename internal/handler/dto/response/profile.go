package response

import (
	"health-push/internal/domain/profile"
	"health-push/internal/usecase/queries"

	"github.com/jinzhu/copier"
)

type ProfileResponse struct {
	UserID       string             `json:"user_id"`
	BasicInfo    profile.BasicInfo  `json:"basic_info"`
	HealthInfo   profile.HealthInfo `json:"health_info"`
	OtherInfo    profile.OtherInfo  `json:"other_info"`
	PersonaStyle *string            `json:"persona_style,omitempty"`
	Location     *profile.Location  `json:"location,omitempty"`
	CreatedAt    int64              `json:"created_at"`
	UpdatedAt    int64              `json:"updated_at"`
}

func FromProfileView(v *queries.ProfileView) *ProfileResponse {
	var res ProfileResponse
	// Field names line up except the timestamps, which flatten to Unix seconds.
	_ = copier.Copy(&res, v)
	res.CreatedAt = v.CreatedAt.Unix()
	res.UpdatedAt = v.UpdatedAt.Unix()
	return &res
}
