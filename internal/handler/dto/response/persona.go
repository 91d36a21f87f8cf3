package response

import "health-push/internal/domain/persona"

// The prompt text is internal; only display fields are exposed.
type PersonaStyleResponse struct {
	Name        string `json:"style_name"`
	Description string `json:"description"`
	Icon        string `json:"icon,omitempty"`
}

func FromPersonaStyles(styles []persona.Style) []*PersonaStyleResponse {
	res := make([]*PersonaStyleResponse, len(styles))
	for i, s := range styles {
		res[i] = &PersonaStyleResponse{
			Name:        s.Name,
			Description: s.Description,
			Icon:        s.Icon,
		}
	}
	return res
}
