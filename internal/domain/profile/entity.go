package profile

import "time"

// HealthProfile is the per-user health record that conditions generated
// content. The nested sections are stored as JSON documents; only
// PersonaStyle and Location are promoted to columns because the push
// pipeline branches on them.
type HealthProfile struct {
	UserID       string
	BasicInfo    BasicInfo
	HealthInfo   HealthInfo
	OtherInfo    OtherInfo
	PersonaStyle *string
	Location     *Location
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type BasicInfo struct {
	Nickname  string  `json:"nickname"`
	BirthDate string  `json:"birth_date"` // YYYY-MM
	Age       int     `json:"age"`
	Gender    string  `json:"gender"`
	Height    float64 `json:"height"` // cm
	Weight    float64 `json:"weight"` // kg
	BloodType *string `json:"blood_type,omitempty"`
}

type HealthInfo struct {
	LifestyleHabits  []string  `json:"lifestyle_habits"`
	Allergies        []string  `json:"allergies"`
	MedicalHistory   []string  `json:"medical_history"`
	AdverseReactions []string  `json:"adverse_reactions"`
	FamilyHistory    []string  `json:"family_history"`
	SurgeryHistory   []Surgery `json:"surgery_history"`
}

type Surgery struct {
	Name string `json:"name"`
	Date string `json:"date"`
}

type OtherInfo struct {
	Vaccinations []Vaccination `json:"vaccinations"`
	OtherNotes   *string       `json:"other_notes,omitempty"`
}

type Vaccination struct {
	Name string `json:"name"`
	Date string `json:"date"`
}

type Location struct {
	Province string `json:"province"`
	City     string `json:"city"`
}

// HasLocation reports whether a weather push can be produced for this user.
func (p *HealthProfile) HasLocation() bool {
	return p.Location != nil && p.Location.City != ""
}
