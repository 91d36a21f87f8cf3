package gateway

import (
	"fmt"
	"strings"

	"health-push/internal/domain/profile"
	"health-push/internal/domain/push"
)

var restSlotDesc = map[push.Slot]string{
	push.SlotMorning: "7 in the morning, time to get up",
	push.SlotNoon:    "1 in the afternoon, time for a short nap",
	push.SlotNight:   "11 at night, time to go to bed",
}

var mealSlotDesc = map[push.Slot]string{
	push.SlotBreakfast: "breakfast",
	push.SlotLunch:     "lunch",
	push.SlotDinner:    "dinner",
}

func restPrompt(p *profile.HealthProfile, slot push.Slot) string {
	desc, ok := restSlotDesc[slot]
	if !ok {
		desc = "a scheduled reminder time"
	}
	return fmt.Sprintf(`It is now %s.
User info:
- Name: %s
- Age: %d
- Lifestyle habits: %s

Write one warm reminder, 100 words or fewer, about why keeping a regular daily rhythm matters.`,
		desc, nickname(p), p.BasicInfo.Age, joinOr(p.HealthInfo.LifestyleHabits, "nothing special"))
}

func mealPrompt(p *profile.HealthProfile, slot push.Slot) string {
	desc, ok := mealSlotDesc[slot]
	if !ok {
		desc = "meal"
	}
	return fmt.Sprintf(`It is %s time.

User basics:
- Name: %s
- Age: %d
- Gender: %s
- Height: %.0fcm
- Weight: %.0fkg

User health record:
- Lifestyle habits: %s
- Allergies: %s
- Medical history: %s
- Adverse drug reactions: %s
- Family history: %s

Other notes: %s

Based on the user's full health record, suggest:
1. A recommended food combination
2. Foods to avoid
3. One friendly tip
Keep it within 150 words.`,
		desc, nickname(p), p.BasicInfo.Age, p.BasicInfo.Gender,
		p.BasicInfo.Height, p.BasicInfo.Weight,
		joinOr(p.HealthInfo.LifestyleHabits, "nothing special"),
		joinOr(p.HealthInfo.Allergies, "none"),
		joinOr(p.HealthInfo.MedicalHistory, "none"),
		joinOr(p.HealthInfo.AdverseReactions, "none"),
		joinOr(p.HealthInfo.FamilyHistory, "none"),
		notesOr(p, "none"))
}

func weatherPrompt(p *profile.HealthProfile, w *push.WeatherReport) string {
	if w == nil {
		w = &push.WeatherReport{}
	}
	return fmt.Sprintf(`Today's weather:
- Temperature: %s
- Conditions: %s
- Wind: %s

User basics:
- Name: %s
- Age: %d
- Gender: %s

User health record:
- Lifestyle habits: %s
- Allergies: %s
- Medical history: %s
- Family history: %s

Other notes: %s

Given the weather and the user's health record, write one warm weather advisory with health advice, 100 words or fewer.`,
		w.Temperature, w.Weather, w.Wind,
		nickname(p), p.BasicInfo.Age, p.BasicInfo.Gender,
		joinOr(p.HealthInfo.LifestyleHabits, "nothing special"),
		joinOr(p.HealthInfo.Allergies, "none"),
		joinOr(p.HealthInfo.MedicalHistory, "none"),
		joinOr(p.HealthInfo.FamilyHistory, "none"),
		notesOr(p, "none"))
}

func healthTipPrompt(p *profile.HealthProfile) string {
	return fmt.Sprintf(`User basics:
- Name: %s
- Age: %d
- Gender: %s
- Height: %.0fcm
- Weight: %.0fkg

User health record:
- Lifestyle habits: %s
- Allergies: %s
- Medical history: %s
- Adverse drug reactions: %s
- Family history: %s
- Surgery history: %s

Other notes: %s

Based on the user's full health record, write one practical wellness tip that is:
1. Tailored to the user's actual situation
2. Easy to follow
3. Grounded in sound health practice
Keep it within 150 words.`,
		nickname(p), p.BasicInfo.Age, p.BasicInfo.Gender,
		p.BasicInfo.Height, p.BasicInfo.Weight,
		joinOr(p.HealthInfo.LifestyleHabits, "nothing special"),
		joinOr(p.HealthInfo.Allergies, "none"),
		joinOr(p.HealthInfo.MedicalHistory, "none"),
		joinOr(p.HealthInfo.AdverseReactions, "none"),
		joinOr(p.HealthInfo.FamilyHistory, "none"),
		surgeriesOr(p.HealthInfo.SurgeryHistory, "none"),
		notesOr(p, "none"))
}

func nickname(p *profile.HealthProfile) string {
	if p.BasicInfo.Nickname != "" {
		return p.BasicInfo.Nickname
	}
	return "the user"
}

func joinOr(items []string, fallback string) string {
	if len(items) == 0 {
		return fallback
	}
	return strings.Join(items, ", ")
}

func surgeriesOr(items []profile.Surgery, fallback string) string {
	if len(items) == 0 {
		return fallback
	}
	parts := make([]string, len(items))
	for i, s := range items {
		parts[i] = fmt.Sprintf("%s (%s)", s.Name, s.Date)
	}
	return strings.Join(parts, ", ")
}

func notesOr(p *profile.HealthProfile, fallback string) string {
	if p.OtherInfo.OtherNotes == nil || *p.OtherInfo.OtherNotes == "" {
		return fallback
	}
	return *p.OtherInfo.OtherNotes
}
