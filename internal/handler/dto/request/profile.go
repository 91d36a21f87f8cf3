package request

import (
	"health-push/internal/domain/profile"
	"health-push/internal/infra/repository"
	"health-push/internal/usecase/commands"
)

type BasicInfoDTO struct {
	Nickname  string  `json:"nickname" binding:"required,max=50"`
	BirthDate string  `json:"birth_date" binding:"omitempty,len=7"` // YYYY-MM
	Age       int     `json:"age" binding:"required,min=0,max=150"`
	Gender    string  `json:"gender" binding:"required,oneof=male female other"`
	Height    float64 `json:"height" binding:"omitempty,min=0,max=300"`
	Weight    float64 `json:"weight" binding:"omitempty,min=0,max=500"`
	BloodType *string `json:"blood_type" binding:"omitempty,oneof=A B AB O"`
}

type SurgeryDTO struct {
	Name string `json:"name" binding:"required"`
	Date string `json:"date" binding:"required"`
}

type HealthInfoDTO struct {
	LifestyleHabits  []string     `json:"lifestyle_habits"`
	Allergies        []string     `json:"allergies"`
	MedicalHistory   []string     `json:"medical_history"`
	AdverseReactions []string     `json:"adverse_reactions"`
	FamilyHistory    []string     `json:"family_history"`
	SurgeryHistory   []SurgeryDTO `json:"surgery_history" binding:"omitempty,dive"`
}

type VaccinationDTO struct {
	Name string `json:"name" binding:"required"`
	Date string `json:"date" binding:"required"`
}

type OtherInfoDTO struct {
	Vaccinations []VaccinationDTO `json:"vaccinations" binding:"omitempty,dive"`
	OtherNotes   *string          `json:"other_notes" binding:"omitempty,max=2000"`
}

type CreateProfileRequest struct {
	BasicInfo  BasicInfoDTO  `json:"basic_info" binding:"required"`
	HealthInfo HealthInfoDTO `json:"health_info"`
	OtherInfo  OtherInfoDTO  `json:"other_info"`
}

type UpdateProfileRequest struct {
	BasicInfo  *BasicInfoDTO  `json:"basic_info"`
	HealthInfo *HealthInfoDTO `json:"health_info"`
	OtherInfo  *OtherInfoDTO  `json:"other_info"`
}

type SetLocationRequest struct {
	Province string `json:"province" binding:"required,max=50"`
	City     string `json:"city" binding:"required,max=50"`
}

type SelectPersonaRequest struct {
	StyleName string `json:"style_name" binding:"required,max=50"`
}

func (r *CreateProfileRequest) ToParams() commands.CreateProfileParams {
	return commands.CreateProfileParams{
		BasicInfo:  r.BasicInfo.toDomain(),
		HealthInfo: r.HealthInfo.toDomain(),
		OtherInfo:  r.OtherInfo.toDomain(),
	}
}

func (r *UpdateProfileRequest) ToParams() repository.UpdateProfileParams {
	var params repository.UpdateProfileParams
	if r.BasicInfo != nil {
		b := r.BasicInfo.toDomain()
		params.BasicInfo = &b
	}
	if r.HealthInfo != nil {
		h := r.HealthInfo.toDomain()
		params.HealthInfo = &h
	}
	if r.OtherInfo != nil {
		o := r.OtherInfo.toDomain()
		params.OtherInfo = &o
	}
	return params
}

func (r *SetLocationRequest) ToDomain() profile.Location {
	return profile.Location{Province: r.Province, City: r.City}
}

func (d *BasicInfoDTO) toDomain() profile.BasicInfo {
	return profile.BasicInfo{
		Nickname:  d.Nickname,
		BirthDate: d.BirthDate,
		Age:       d.Age,
		Gender:    d.Gender,
		Height:    d.Height,
		Weight:    d.Weight,
		BloodType: d.BloodType,
	}
}

func (d *HealthInfoDTO) toDomain() profile.HealthInfo {
	surgeries := make([]profile.Surgery, len(d.SurgeryHistory))
	for i, s := range d.SurgeryHistory {
		surgeries[i] = profile.Surgery{Name: s.Name, Date: s.Date}
	}
	return profile.HealthInfo{
		LifestyleHabits:  d.LifestyleHabits,
		Allergies:        d.Allergies,
		MedicalHistory:   d.MedicalHistory,
		AdverseReactions: d.AdverseReactions,
		FamilyHistory:    d.FamilyHistory,
		SurgeryHistory:   surgeries,
	}
}

func (d *OtherInfoDTO) toDomain() profile.OtherInfo {
	vaccinations := make([]profile.Vaccination, len(d.Vaccinations))
	for i, v := range d.Vaccinations {
		vaccinations[i] = profile.Vaccination{Name: v.Name, Date: v.Date}
	}
	return profile.OtherInfo{
		Vaccinations: vaccinations,
		OtherNotes:   d.OtherNotes,
	}
}
