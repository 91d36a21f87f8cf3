//go:build unit

package gateway_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"health-push/internal/domain/profile"
	"health-push/internal/domain/push"
	"health-push/internal/infra/gateway"
	"health-push/internal/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testProfile() *profile.HealthProfile {
	return &profile.HealthProfile{
		UserID: "u1",
		BasicInfo: profile.BasicInfo{
			Nickname: "Alex",
			Age:      34,
			Gender:   "male",
			Height:   178,
			Weight:   72,
		},
		HealthInfo: profile.HealthInfo{
			LifestyleHabits: []string{"stays up late"},
			Allergies:       []string{"peanuts"},
		},
	}
}

func newLLM(t *testing.T, handler http.HandlerFunc) *gateway.LLMGateway {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	cfg := config.LLMConfig{
		BaseURL: srv.URL,
		APIKey:  "test-key",
		Model:   "qwen-plus",
		Timeout: 5 * time.Second,
	}
	return gateway.NewLLMGateway(cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func chatOK(content string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{
			"choices": []map[string]any{
				{"message": map[string]any{"content": content}},
			},
		})
	}
}

func TestLLMGateway_Generate(t *testing.T) {
	t.Run("returns model content on success", func(t *testing.T) {
		g := newLLM(t, chatOK("Time for a short nap."))
		got := g.Generate(context.Background(), push.RestKind(push.SlotNoon), testProfile(), "", nil)
		assert.Equal(t, "Time for a short nap.", got)
	})

	t.Run("sends persona prompt as system message", func(t *testing.T) {
		var captured struct {
			Messages []struct {
				Role    string `json:"role"`
				Content string `json:"content"`
			} `json:"messages"`
		}
		g := newLLM(t, func(w http.ResponseWriter, r *http.Request) {
			require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))
			chatOK("ok")(w, r)
		})

		g.Generate(context.Background(), push.HealthTipKind(), testProfile(), "You are a caring family member.", nil)

		require.Len(t, captured.Messages, 2)
		assert.Equal(t, "system", captured.Messages[0].Role)
		assert.Equal(t, "You are a caring family member.", captured.Messages[0].Content)
		assert.Equal(t, "user", captured.Messages[1].Role)
	})

	t.Run("omits system message when persona prompt is empty", func(t *testing.T) {
		var roles []string
		g := newLLM(t, func(w http.ResponseWriter, r *http.Request) {
			var req struct {
				Messages []struct {
					Role string `json:"role"`
				} `json:"messages"`
			}
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			for _, m := range req.Messages {
				roles = append(roles, m.Role)
			}
			chatOK("ok")(w, r)
		})

		g.Generate(context.Background(), push.MealKind(push.SlotLunch), testProfile(), "", nil)

		assert.Equal(t, []string{"user"}, roles)
	})

	t.Run("user prompt carries profile details", func(t *testing.T) {
		var prompt string
		g := newLLM(t, func(w http.ResponseWriter, r *http.Request) {
			var req struct {
				Messages []struct {
					Content string `json:"content"`
				} `json:"messages"`
			}
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			prompt = req.Messages[len(req.Messages)-1].Content
			chatOK("ok")(w, r)
		})

		g.Generate(context.Background(), push.MealKind(push.SlotDinner), testProfile(), "", nil)

		assert.Contains(t, prompt, "Alex")
		assert.Contains(t, prompt, "peanuts")
		assert.Contains(t, prompt, "stays up late")
	})

	t.Run("degrades to apology on upstream error", func(t *testing.T) {
		g := newLLM(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		})
		got := g.Generate(context.Background(), push.RestKind(push.SlotNight), testProfile(), "", nil)
		assert.True(t, strings.HasPrefix(got, "Sorry, something went wrong"), got)
	})

	t.Run("degrades to apology on empty choices", func(t *testing.T) {
		g := newLLM(t, func(w http.ResponseWriter, r *http.Request) {
			_ = json.NewEncoder(w).Encode(map[string]any{"choices": []any{}})
		})
		got := g.Generate(context.Background(), push.WeatherKind(), testProfile(), "", &push.WeatherReport{})
		assert.True(t, strings.HasPrefix(got, "Sorry, something went wrong"), got)
	})

	t.Run("degrades to apology on cancelled context", func(t *testing.T) {
		g := newLLM(t, chatOK("never seen"))
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		got := g.Generate(ctx, push.HealthTipKind(), testProfile(), "", nil)
		assert.True(t, strings.HasPrefix(got, "Sorry, something went wrong"), got)
	})
}
