package push

import (
	"fmt"

	"health-push/internal/pkg/errs"
)

// Kind identifies one notification category together with its time slot.
// Each kind maps to exactly one content-generation path and one trigger
// schedule.
type Kind struct {
	Type Type
	Slot Slot
}

// Type is the coarse push category persisted as push_type in the ledger.
type Type string

const (
	TypeRest      Type = "rest"
	TypeMeal      Type = "meal"
	TypeWeather   Type = "weather"
	TypeHealthTip Type = "health_tip"
)

// Slot refines Rest and Meal kinds; Weather and HealthTip carry SlotNone.
type Slot string

const (
	SlotNone Slot = ""

	SlotMorning Slot = "morning"
	SlotNoon    Slot = "noon"
	SlotNight   Slot = "night"

	SlotBreakfast Slot = "breakfast"
	SlotLunch     Slot = "lunch"
	SlotDinner    Slot = "dinner"
)

func RestKind(slot Slot) Kind { return Kind{Type: TypeRest, Slot: slot} }
func MealKind(slot Slot) Kind { return Kind{Type: TypeMeal, Slot: slot} }
func WeatherKind() Kind       { return Kind{Type: TypeWeather} }
func HealthTipKind() Kind     { return Kind{Type: TypeHealthTip} }

func (k Kind) String() string {
	if k.Slot == SlotNone {
		return string(k.Type)
	}
	return fmt.Sprintf("%s/%s", k.Type, k.Slot)
}

// ParseRestSlot validates the time_type query value of a manual rest trigger.
func ParseRestSlot(s string) (Slot, error) {
	switch Slot(s) {
	case SlotMorning, SlotNoon, SlotNight:
		return Slot(s), nil
	}
	return SlotNone, errs.Wrap(errs.ErrUnknownPushType, fmt.Sprintf("time_type must be morning/noon/night, got %q", s))
}

// ParseMealSlot validates the meal_type query value of a manual meal trigger.
func ParseMealSlot(s string) (Slot, error) {
	switch Slot(s) {
	case SlotBreakfast, SlotLunch, SlotDinner:
		return Slot(s), nil
	}
	return SlotNone, errs.Wrap(errs.ErrUnknownPushType, fmt.Sprintf("meal_type must be breakfast/lunch/dinner, got %q", s))
}

// ParseType validates an optional push_type history filter.
func ParseType(s string) (Type, error) {
	switch Type(s) {
	case TypeRest, TypeMeal, TypeWeather, TypeHealthTip:
		return Type(s), nil
	}
	return "", errs.Wrap(errs.ErrUnknownPushType, fmt.Sprintf("push_type must be rest/meal/weather/health_tip, got %q", s))
}
