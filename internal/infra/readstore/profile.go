package readstore

import (
	"context"
	"encoding/json"

	"health-push/internal/domain/profile"
	"health-push/internal/infra"
	"health-push/internal/usecase/queries"
)

type ProfileReadStore struct {
	db infra.DBTX
}

func NewProfileReadStore(db infra.DBTX) *ProfileReadStore {
	return &ProfileReadStore{db: db}
}

func (r *ProfileReadStore) FindByUser(ctx context.Context, userID string) (*queries.ProfileView, error) {
	const q = `
		SELECT user_id, basic_info, health_info, other_info, persona_style,
		       location_province, location_city, created_at, updated_at
		FROM health_profiles
		WHERE user_id = $1`

	var (
		view                 queries.ProfileView
		basic, health, other []byte
		province, city       *string
	)
	err := r.db.QueryRow(ctx, q, userID).Scan(
		&view.UserID, &basic, &health, &other, &view.PersonaStyle,
		&province, &city, &view.CreatedAt, &view.UpdatedAt,
	)
	if err != nil {
		if infra.IsNoRows(err) {
			return nil, infra.WrapRepoErr("health profile not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get profile view", err)
	}

	if err := json.Unmarshal(basic, &view.BasicInfo); err != nil {
		return nil, infra.WrapRepoErr("failed to decode basic_info", err)
	}
	if err := json.Unmarshal(health, &view.HealthInfo); err != nil {
		return nil, infra.WrapRepoErr("failed to decode health_info", err)
	}
	if err := json.Unmarshal(other, &view.OtherInfo); err != nil {
		return nil, infra.WrapRepoErr("failed to decode other_info", err)
	}
	if province != nil && city != nil {
		view.Location = &profile.Location{Province: *province, City: *city}
	}
	return &view, nil
}
