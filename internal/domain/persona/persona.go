package persona

// Style is a named tone profile whose prompt conditions generated content.
type Style struct {
	Name        string `json:"style_name"`
	Description string `json:"description"`
	Prompt      string `json:"prompt"`
	Icon        string `json:"icon,omitempty"`
}

// DefaultStyleName is applied when a profile has no persona selected.
const DefaultStyleName = "Professional Advisor"

// The catalog is fixed at build time. Unknown names resolve to an empty
// prompt instead of failing; the generator then speaks in its neutral voice.
var catalog = []Style{
	{
		Name:        "Professional Advisor",
		Description: "Calm, evidence-based guidance from a clinical perspective.",
		Prompt: "You are a professional health advisor. Speak calmly and precisely, " +
			"ground every suggestion in established health guidance, and address the " +
			"user respectfully by nickname.",
		Icon: "stethoscope",
	},
	{
		Name:        "Caring Family",
		Description: "Warm, nagging-in-a-good-way reminders like a family member.",
		Prompt: "You are a caring family elder. Use warm, homely language, show " +
			"genuine concern for the user's wellbeing, and keep reminders gentle " +
			"but persistent.",
		Icon: "heart",
	},
	{
		Name:        "Energetic Coach",
		Description: "Upbeat motivation with a sports-coach energy.",
		Prompt: "You are an energetic fitness coach. Be upbeat and encouraging, " +
			"use short punchy sentences, and always end with a small actionable " +
			"challenge.",
		Icon: "dumbbell",
	},
	{
		Name:        "Gentle Companion",
		Description: "Soft-spoken encouragement without any pressure.",
		Prompt: "You are a gentle companion. Use soft, soothing language, never " +
			"pressure the user, and focus on small comforting suggestions.",
		Icon: "leaf",
	},
}

type Resolver struct {
	byName map[string]Style
}

func NewResolver() *Resolver {
	m := make(map[string]Style, len(catalog))
	for _, s := range catalog {
		m[s.Name] = s
	}
	return &Resolver{byName: m}
}

// GetPrompt resolves a style name to its prompt. Unknown names yield an empty
// prompt; this permissive fallback is deliberate so that a stale or mistyped
// persona on a profile never blocks a push.
func (r *Resolver) GetPrompt(styleName string) string {
	return r.byName[styleName].Prompt
}

// Get returns the style and whether it exists in the catalog.
func (r *Resolver) Get(styleName string) (Style, bool) {
	s, ok := r.byName[styleName]
	return s, ok
}

// All returns the catalog in its fixed display order.
func (r *Resolver) All() []Style {
	out := make([]Style, len(catalog))
	copy(out, catalog)
	return out
}
