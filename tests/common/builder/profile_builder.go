//go:build unit || e2e

package builder

import (
	domprofile "health-push/internal/domain/profile"
	reqdto "health-push/internal/handler/dto/request"
)

type ProfileBuilder struct {
	Nickname        string
	BirthDate       string
	Age             int
	Gender          string
	Height          float64
	Weight          float64
	BloodType       *string
	LifestyleHabits []string
	Allergies       []string
	Province        string
	City            string
}

func NewProfileBuilder() *ProfileBuilder {
	bloodType := "A"
	return &ProfileBuilder{
		Nickname:        "Wei",
		BirthDate:       "1990-05",
		Age:             35,
		Gender:          "male",
		Height:          175,
		Weight:          68,
		BloodType:       &bloodType,
		LifestyleHabits: []string{"late nights"},
		Allergies:       []string{"pollen"},
		Province:        "Zhejiang",
		City:            "Hangzhou",
	}
}

func (b *ProfileBuilder) With(mutate func(*ProfileBuilder)) *ProfileBuilder {
	mutate(b)
	return b
}

func (b *ProfileBuilder) BuildCreateRequestDTO() reqdto.CreateProfileRequest {
	return reqdto.CreateProfileRequest{
		BasicInfo: reqdto.BasicInfoDTO{
			Nickname:  b.Nickname,
			BirthDate: b.BirthDate,
			Age:       b.Age,
			Gender:    b.Gender,
			Height:    b.Height,
			Weight:    b.Weight,
			BloodType: b.BloodType,
		},
		HealthInfo: reqdto.HealthInfoDTO{
			LifestyleHabits: b.LifestyleHabits,
			Allergies:       b.Allergies,
		},
	}
}

func (b *ProfileBuilder) BuildLocationRequestDTO() reqdto.SetLocationRequest {
	return reqdto.SetLocationRequest{
		Province: b.Province,
		City:     b.City,
	}
}

func (b *ProfileBuilder) BuildDomain(userID string) *domprofile.HealthProfile {
	return &domprofile.HealthProfile{
		UserID: userID,
		BasicInfo: domprofile.BasicInfo{
			Nickname:  b.Nickname,
			BirthDate: b.BirthDate,
			Age:       b.Age,
			Gender:    b.Gender,
			Height:    b.Height,
			Weight:    b.Weight,
			BloodType: b.BloodType,
		},
		HealthInfo: domprofile.HealthInfo{
			LifestyleHabits: b.LifestyleHabits,
			Allergies:       b.Allergies,
		},
	}
}
