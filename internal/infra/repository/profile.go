package repository

import (
	"context"
	"encoding/json"
	"time"

	"health-push/internal/domain/profile"
	"health-push/internal/infra"
)

type ProfileRepository struct {
	db infra.DBTX
}

func NewProfileRepository(db infra.DBTX) *ProfileRepository {
	return &ProfileRepository{db: db}
}

// UpdateProfileParams carries a partial update; nil sections are left
// untouched.
type UpdateProfileParams struct {
	BasicInfo    *profile.BasicInfo
	HealthInfo   *profile.HealthInfo
	OtherInfo    *profile.OtherInfo
	PersonaStyle *string
	Location     *profile.Location
}

func (r *ProfileRepository) Create(ctx context.Context, p *profile.HealthProfile) error {
	basic, health, other, err := marshalSections(&p.BasicInfo, &p.HealthInfo, &p.OtherInfo)
	if err != nil {
		return infra.WrapRepoErr("failed to encode profile sections", err)
	}

	const q = `
		INSERT INTO health_profiles (user_id, basic_info, health_info, other_info, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $5)`

	if _, err := r.db.Exec(ctx, q, p.UserID, basic, health, other, p.CreatedAt); err != nil {
		return infra.WrapRepoErr("failed to create health profile", err)
	}
	return nil
}

func (r *ProfileRepository) Get(ctx context.Context, userID string) (*profile.HealthProfile, error) {
	const q = `
		SELECT user_id, basic_info, health_info, other_info, persona_style,
		       location_province, location_city, created_at, updated_at
		FROM health_profiles
		WHERE user_id = $1`

	var (
		p                    profile.HealthProfile
		basic, health, other []byte
		province, city       *string
	)
	err := r.db.QueryRow(ctx, q, userID).Scan(
		&p.UserID, &basic, &health, &other, &p.PersonaStyle,
		&province, &city, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if infra.IsNoRows(err) {
			return nil, infra.WrapRepoErr("health profile not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get health profile", err)
	}

	if err := unmarshalSections(basic, health, other, &p); err != nil {
		return nil, infra.WrapRepoErr("failed to decode profile sections", err)
	}
	if province != nil && city != nil {
		p.Location = &profile.Location{Province: *province, City: *city}
	}
	return &p, nil
}

func (r *ProfileRepository) Update(ctx context.Context, userID string, params UpdateProfileParams, now time.Time) error {
	basic, health, other, err := marshalSections(params.BasicInfo, params.HealthInfo, params.OtherInfo)
	if err != nil {
		return infra.WrapRepoErr("failed to encode profile sections", err)
	}

	var province, city *string
	if params.Location != nil {
		province, city = &params.Location.Province, &params.Location.City
	}

	const q = `
		UPDATE health_profiles
		SET basic_info        = COALESCE($2, basic_info),
		    health_info       = COALESCE($3, health_info),
		    other_info        = COALESCE($4, other_info),
		    persona_style     = COALESCE($5, persona_style),
		    location_province = COALESCE($6, location_province),
		    location_city     = COALESCE($7, location_city),
		    updated_at        = $8
		WHERE user_id = $1`

	tag, err := r.db.Exec(ctx, q, userID, basic, health, other, params.PersonaStyle, province, city, now)
	if err != nil {
		return infra.WrapRepoErr("failed to update health profile", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("health profile not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *ProfileRepository) SetLocation(ctx context.Context, userID string, loc profile.Location, now time.Time) error {
	const q = `
		UPDATE health_profiles
		SET location_province = $2, location_city = $3, updated_at = $4
		WHERE user_id = $1`

	tag, err := r.db.Exec(ctx, q, userID, loc.Province, loc.City, now)
	if err != nil {
		return infra.WrapRepoErr("failed to set profile location", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("health profile not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *ProfileRepository) SetPersona(ctx context.Context, userID string, styleName string, now time.Time) error {
	const q = `
		UPDATE health_profiles
		SET persona_style = $2, updated_at = $3
		WHERE user_id = $1`

	tag, err := r.db.Exec(ctx, q, userID, styleName, now)
	if err != nil {
		return infra.WrapRepoErr("failed to set persona style", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("health profile not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *ProfileRepository) Delete(ctx context.Context, userID string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM health_profiles WHERE user_id = $1`, userID)
	if err != nil {
		return infra.WrapRepoErr("failed to delete health profile", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("health profile not found", nil, infra.KindNotFound)
	}
	return nil
}

// ListUserIDs returns the id of every registered user. The fan-out takes this
// once per run as its snapshot.
func (r *ProfileRepository) ListUserIDs(ctx context.Context) ([]string, error) {
	rows, err := r.db.Query(ctx, `SELECT user_id FROM health_profiles ORDER BY user_id`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list user ids", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, infra.WrapRepoErr("failed to scan user id", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate user ids", err)
	}
	return ids, nil
}

func marshalSections(basic *profile.BasicInfo, health *profile.HealthInfo, other *profile.OtherInfo) (b, h, o []byte, err error) {
	if basic != nil {
		if b, err = json.Marshal(basic); err != nil {
			return nil, nil, nil, err
		}
	}
	if health != nil {
		if h, err = json.Marshal(health); err != nil {
			return nil, nil, nil, err
		}
	}
	if other != nil {
		if o, err = json.Marshal(other); err != nil {
			return nil, nil, nil, err
		}
	}
	return b, h, o, nil
}

func unmarshalSections(basic, health, other []byte, p *profile.HealthProfile) error {
	if err := json.Unmarshal(basic, &p.BasicInfo); err != nil {
		return err
	}
	if err := json.Unmarshal(health, &p.HealthInfo); err != nil {
		return err
	}
	return json.Unmarshal(other, &p.OtherInfo)
}
