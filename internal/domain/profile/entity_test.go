//go:build unit

package profile_test

import (
	"testing"

	"health-push/internal/domain/profile"

	"github.com/stretchr/testify/assert"
)

func TestHasLocation(t *testing.T) {
	p := &profile.HealthProfile{UserID: "u1"}
	assert.False(t, p.HasLocation(), "no location set")

	p.Location = &profile.Location{Province: "Zhejiang"}
	assert.False(t, p.HasLocation(), "province alone is not enough for a weather lookup")

	p.Location.City = "Hangzhou"
	assert.True(t, p.HasLocation())
}
