//go:build unit

package api_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"health-push/internal/domain/persona"
	"health-push/internal/domain/profile"
	"health-push/internal/handler/api"
	"health-push/internal/pkg/errs"
	"health-push/internal/usecase/queries"
	commandsmock "health-push/tests/mock/commands"
	queriesmock "health-push/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ProfileHandlerTestSuite struct {
	suite.Suite
	router         *gin.Engine
	mockCtrl       *gomock.Controller
	mockCommands   *commandsmock.MockProfileCommands
	mockQueries    *queriesmock.MockProfileQueries
	profileHandler *api.ProfileHandler
	personaHandler *api.PersonaHandler
}

func (s *ProfileHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockProfileCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockProfileQueries(s.mockCtrl)
	s.profileHandler = api.NewProfileHandler(s.mockCommands, s.mockQueries)
	s.personaHandler = api.NewPersonaHandler(persona.NewResolver(), s.mockCommands, s.mockQueries)

	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Access token required"})
			return
		}
		c.Set("user_id", "u1")
		c.Next()
	}

	s.router.POST("/health-profile", authMiddleware, s.profileHandler.Create)
	s.router.GET("/health-profile/:user_id", authMiddleware, s.profileHandler.Get)
	s.router.PUT("/health-profile/:user_id", authMiddleware, s.profileHandler.Update)
	s.router.DELETE("/health-profile/:user_id", authMiddleware, s.profileHandler.Delete)
	s.router.POST("/health-profile/:user_id/location", authMiddleware, s.profileHandler.SetLocation)
	s.router.POST("/health-profile/:user_id/persona", authMiddleware, s.personaHandler.Select)
	s.router.GET("/health-profile/:user_id/persona", authMiddleware, s.personaHandler.Current)
	s.router.GET("/persona-styles", authMiddleware, s.personaHandler.List)
	s.router.GET("/persona-styles/:style_name", authMiddleware, s.personaHandler.Get)
}

func (s *ProfileHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestProfileHandlerSuite(t *testing.T) {
	suite.Run(t, new(ProfileHandlerTestSuite))
}

func (s *ProfileHandlerTestSuite) doJSON(method, url string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		s.Require().NoError(json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, url, &buf)
	req.Header.Set("Authorization", "Bearer test-token")
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func validCreateBody() map[string]any {
	return map[string]any{
		"basic_info": map[string]any{
			"nickname": "Alex",
			"age":      34,
			"gender":   "male",
			"height":   178,
			"weight":   72,
		},
		"health_info": map[string]any{
			"lifestyle_habits": []string{"stays up late"},
			"allergies":        []string{"peanuts"},
		},
	}
}

func (s *ProfileHandlerTestSuite) TestCreate() {
	s.Run("creates for the authenticated user", func() {
		s.mockCommands.EXPECT().
			CreateProfile(gomock.Any(), "u1", gomock.Any()).
			Return(nil)

		w := s.doJSON(http.MethodPost, "/health-profile", validCreateBody())
		s.Equal(http.StatusCreated, w.Code)
	})

	s.Run("duplicate maps to 409", func() {
		s.mockCommands.EXPECT().
			CreateProfile(gomock.Any(), "u1", gomock.Any()).
			Return(errs.Mark(errs.New("dup"), errs.ErrProfileAlreadyExists))

		w := s.doJSON(http.MethodPost, "/health-profile", validCreateBody())
		s.Equal(http.StatusConflict, w.Code)
	})

	s.Run("missing basic info maps to 400", func() {
		w := s.doJSON(http.MethodPost, "/health-profile", map[string]any{})
		s.Equal(http.StatusBadRequest, w.Code)
	})

	s.Run("invalid gender maps to 400", func() {
		body := validCreateBody()
		body["basic_info"].(map[string]any)["gender"] = "robot"
		w := s.doJSON(http.MethodPost, "/health-profile", body)
		s.Equal(http.StatusBadRequest, w.Code)
	})
}

func (s *ProfileHandlerTestSuite) TestGet() {
	s.Run("returns the profile view", func() {
		style := "Caring Family"
		view := &queries.ProfileView{
			UserID:       "u1",
			BasicInfo:    profile.BasicInfo{Nickname: "Alex", Age: 34, Gender: "male"},
			PersonaStyle: &style,
			Location:     &profile.Location{Province: "Zhejiang", City: "Hangzhou"},
			CreatedAt:    time.Now(),
			UpdatedAt:    time.Now(),
		}
		s.mockQueries.EXPECT().Get(gomock.Any(), "u1").Return(view, nil)

		w := s.doJSON(http.MethodGet, "/health-profile/u1", nil)

		s.Equal(http.StatusOK, w.Code)
		s.Contains(w.Body.String(), "Alex")
		s.Contains(w.Body.String(), "Hangzhou")
	})

	s.Run("unknown user maps to 404", func() {
		s.mockQueries.EXPECT().
			Get(gomock.Any(), "ghost").
			Return(nil, errs.Mark(errs.New("missing"), errs.ErrProfileNotFound))

		w := s.doJSON(http.MethodGet, "/health-profile/ghost", nil)
		s.Equal(http.StatusNotFound, w.Code)
	})
}

func (s *ProfileHandlerTestSuite) TestUpdate() {
	s.Run("partial update passes through", func() {
		s.mockCommands.EXPECT().
			UpdateProfile(gomock.Any(), "u1", gomock.Any()).
			Return(nil)

		w := s.doJSON(http.MethodPut, "/health-profile/u1", map[string]any{
			"health_info": map[string]any{"allergies": []string{"pollen"}},
		})
		s.Equal(http.StatusOK, w.Code)
	})

	s.Run("unknown user maps to 404", func() {
		s.mockCommands.EXPECT().
			UpdateProfile(gomock.Any(), "ghost", gomock.Any()).
			Return(errs.Mark(errs.New("missing"), errs.ErrProfileNotFound))

		w := s.doJSON(http.MethodPut, "/health-profile/ghost", map[string]any{})
		s.Equal(http.StatusNotFound, w.Code)
	})
}

func (s *ProfileHandlerTestSuite) TestSetLocation() {
	s.Run("sets location", func() {
		s.mockCommands.EXPECT().
			SetLocation(gomock.Any(), "u1", profile.Location{Province: "Zhejiang", City: "Hangzhou"}).
			Return(nil)

		w := s.doJSON(http.MethodPost, "/health-profile/u1/location", map[string]any{
			"province": "Zhejiang",
			"city":     "Hangzhou",
		})
		s.Equal(http.StatusOK, w.Code)
	})

	s.Run("missing city maps to 400", func() {
		w := s.doJSON(http.MethodPost, "/health-profile/u1/location", map[string]any{
			"province": "Zhejiang",
		})
		s.Equal(http.StatusBadRequest, w.Code)
	})
}

func (s *ProfileHandlerTestSuite) TestPersona() {
	s.Run("lists the catalog without prompts", func() {
		w := s.doJSON(http.MethodGet, "/persona-styles", nil)

		s.Equal(http.StatusOK, w.Code)
		s.Contains(w.Body.String(), "Professional Advisor")
		s.Contains(w.Body.String(), "Caring Family")
		s.NotContains(w.Body.String(), "prompt")
	})

	s.Run("gets one style by name", func() {
		w := s.doJSON(http.MethodGet, "/persona-styles/Energetic%20Coach", nil)
		s.Equal(http.StatusOK, w.Code)
		s.Contains(w.Body.String(), "Energetic Coach")
	})

	s.Run("unknown style maps to 404", func() {
		w := s.doJSON(http.MethodGet, "/persona-styles/Sassy%20Pirate", nil)
		s.Equal(http.StatusNotFound, w.Code)
	})

	s.Run("select validates against the catalog", func() {
		s.mockCommands.EXPECT().
			SelectPersona(gomock.Any(), "u1", "Gentle Companion").
			Return(nil)

		w := s.doJSON(http.MethodPost, "/health-profile/u1/persona", map[string]any{
			"style_name": "Gentle Companion",
		})
		s.Equal(http.StatusOK, w.Code)
	})

	s.Run("select of unknown style maps to 400", func() {
		s.mockCommands.EXPECT().
			SelectPersona(gomock.Any(), "u1", "Sassy Pirate").
			Return(errs.Mark(errs.New("unknown"), errs.ErrPersonaStyleUnknown))

		w := s.doJSON(http.MethodPost, "/health-profile/u1/persona", map[string]any{
			"style_name": "Sassy Pirate",
		})
		s.Equal(http.StatusBadRequest, w.Code)
	})

	s.Run("current falls back to the default style", func() {
		view := &queries.ProfileView{UserID: "u1"}
		s.mockQueries.EXPECT().Get(gomock.Any(), "u1").Return(view, nil)

		w := s.doJSON(http.MethodGet, "/health-profile/u1/persona", nil)

		s.Equal(http.StatusOK, w.Code)
		s.Contains(w.Body.String(), persona.DefaultStyleName)
	})
}
