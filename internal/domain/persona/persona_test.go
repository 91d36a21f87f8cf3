//go:build unit

package persona_test

import (
	"testing"

	"health-push/internal/domain/persona"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolverGetPrompt(t *testing.T) {
	r := persona.NewResolver()

	prompt := r.GetPrompt(persona.DefaultStyleName)
	require.NotEmpty(t, prompt)
	assert.Contains(t, prompt, "professional health advisor")

	// unknown styles degrade to a neutral prompt instead of failing
	assert.Empty(t, r.GetPrompt("Stand-up Comedian"))
	assert.Empty(t, r.GetPrompt(""))
}

func TestResolverCatalog(t *testing.T) {
	r := persona.NewResolver()

	styles := r.All()
	require.NotEmpty(t, styles)

	names := make(map[string]bool, len(styles))
	for _, s := range styles {
		assert.NotEmpty(t, s.Name)
		assert.NotEmpty(t, s.Prompt)
		assert.False(t, names[s.Name], "duplicate style name %q", s.Name)
		names[s.Name] = true
	}
	assert.True(t, names[persona.DefaultStyleName], "default style must exist in catalog")

	_, ok := r.Get(persona.DefaultStyleName)
	assert.True(t, ok)
	_, ok = r.Get("nope")
	assert.False(t, ok)
}
