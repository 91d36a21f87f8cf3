//go:build e2e

package push_test

import (
	"fmt"
	"net/http"
	"testing"

	"health-push/internal/handler/dto/response"
	"health-push/tests/common/authtest"
	"health-push/tests/common/builder"
	"health-push/tests/common/dbtest"
	"health-push/tests/common/helper"
	"health-push/tests/e2e"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	healthTipURL = "/api/push/health-tip/%s"
	restURL      = "/api/push/rest/%s?time_type=%s"
	weatherURL   = "/api/push/weather/%s"
	runURL       = "/api/push/run/%s"
	historyURL   = "/api/push/history/%s"
	markReadURL  = "/api/push/history/%s/read?user_id=%s"
	unreadURL    = "/api/push/history/%s/unread-count"
	profileURL   = "/api/health-profile"
	locationURL  = "/api/health-profile/%s/location"
)

type PushSuite struct {
	e2e.SharedSuite
}

func (s *PushSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()
}

func TestPushSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(PushSuite))
}

func (s *PushSuite) token(t *testing.T, userID string) string {
	return authtest.NewJWTHelper(s.Config.JWT).GenerateToken(t, userID)
}

// =============================================================================
// TestDispatch - manual push trigger API tests
// =============================================================================

func (s *PushSuite) TestDispatch() {
	s.Run("Normal case: Health tip push is generated and recorded", func() {
		t := s.T()
		userID := "push-user-1"
		token := s.token(t, userID)

		reqBody := builder.NewProfileBuilder().BuildCreateRequestDTO()
		w := helper.PerformRequest(t, s.Router, http.MethodPost, profileURL, reqBody, token)
		require.Equal(t, http.StatusCreated, w.Code, "Should create profile successfully")

		w = helper.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(healthTipURL, userID), nil, token)

		var outcome response.OutcomeResponse
		helper.AssertSuccessResponse(t, w, http.StatusOK, &outcome)
		require.Equal(t, "success", outcome.Status)
		require.Equal(t, userID, outcome.UserID)
		require.Equal(t, e2e.StubGeneratedContent, outcome.Content)

		// The push must land in the history ledger
		hw := helper.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(historyURL, userID), nil, token)
		var listed struct {
			Records []response.PushRecordResponse `json:"records"`
		}
		helper.AssertSuccessResponse(t, hw, http.StatusOK, &listed)
		require.Len(t, listed.Records, 1)
		require.Equal(t, "health_tip", listed.Records[0].PushType)
		require.Equal(t, e2e.StubGeneratedContent, listed.Records[0].Content)
		require.False(t, listed.Records[0].IsRead)
	})

	s.Run("Normal case: Rest push accepts each time slot", func() {
		t := s.T()
		userID := "push-user-2"
		token := s.token(t, userID)
		dbtest.CreateTestProfile(t, s.DB, userID)

		for _, slot := range []string{"morning", "noon", "night"} {
			w := helper.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(restURL, userID, slot), nil, token)

			var outcome response.OutcomeResponse
			helper.AssertSuccessResponse(t, w, http.StatusOK, &outcome)
			require.Equal(t, "success", outcome.Status, "slot %s should succeed", slot)
		}
	})

	s.Run("Normal case: Fan-out run reaches every user", func() {
		t := s.T()
		token := s.token(t, "admin-1")
		dbtest.CreateTestProfile(t, s.DB, "fan-user-1")
		dbtest.CreateTestProfile(t, s.DB, "fan-user-2")

		w := helper.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(runURL, "health_tip"), nil, token)

		var summary response.SummaryResponse
		helper.AssertSuccessResponse(t, w, http.StatusOK, &summary)
		require.Equal(t, "health_tip", summary.Kind)
		require.Equal(t, 2, summary.Total)
		require.Equal(t, 2, summary.Succeeded)
	})

	s.Run("Error case: Unknown rest slot is rejected", func() {
		t := s.T()
		userID := "push-user-3"
		token := s.token(t, userID)
		dbtest.CreateTestProfile(t, s.DB, userID)

		w := helper.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(restURL, userID, "midnight"), nil, token)
		helper.AssertErrorResponse(t, w, http.StatusBadRequest, "")
	})

	s.Run("Error case: Push for user without profile fails", func() {
		t := s.T()
		token := s.token(t, "ghost-user")

		w := helper.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(healthTipURL, "ghost-user"), nil, token)
		helper.AssertErrorResponse(t, w, http.StatusBadRequest, "profile not found")
	})

	s.Run("Error case: Request without token is unauthorized", func() {
		t := s.T()

		w := helper.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(healthTipURL, "push-user-1"), nil, "")
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

// =============================================================================
// TestWeatherPush - weather advisory dispatch tests
// =============================================================================

func (s *PushSuite) TestWeatherPush() {
	s.Run("Normal case: Weather push composes report and advice", func() {
		t := s.T()
		userID := "weather-user-1"
		token := s.token(t, userID)
		dbtest.CreateTestProfile(t, s.DB, userID)

		locBody := builder.NewProfileBuilder().BuildLocationRequestDTO()
		w := helper.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(locationURL, userID), locBody, token)
		require.Equal(t, http.StatusOK, w.Code, "Should set location successfully")

		w = helper.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(weatherURL, userID), nil, token)

		var outcome response.OutcomeResponse
		helper.AssertSuccessResponse(t, w, http.StatusOK, &outcome)
		require.Equal(t, "success", outcome.Status)
		require.Contains(t, outcome.Content, "[Today's Weather]")
		require.Contains(t, outcome.Content, fmt.Sprintf("%s %s %s", e2e.StubWeatherCity, e2e.StubWeatherCondition, e2e.StubWeatherTemp))
		require.Contains(t, outcome.Content, e2e.StubWeatherWind)
		require.Contains(t, outcome.Content, e2e.StubGeneratedContent)
	})

	s.Run("Skip case: Weather push without location writes nothing", func() {
		t := s.T()
		userID := "weather-user-2"
		token := s.token(t, userID)
		dbtest.CreateTestProfile(t, s.DB, userID)

		w := helper.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(weatherURL, userID), nil, token)
		helper.AssertErrorResponse(t, w, http.StatusBadRequest, "no location set")

		hw := helper.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(historyURL, userID), nil, token)
		var listed struct {
			Records []response.PushRecordResponse `json:"records"`
		}
		helper.AssertSuccessResponse(t, hw, http.StatusOK, &listed)
		require.Empty(t, listed.Records)
	})
}

// =============================================================================
// TestHistory - push history listing and read-state tests
// =============================================================================

func (s *PushSuite) TestHistory() {
	s.Run("Normal case: History is newest first and filterable by type", func() {
		t := s.T()
		userID := "history-user-1"
		token := s.token(t, userID)
		dbtest.CreateTestProfile(t, s.DB, userID)

		dbtest.CreateTestPushRecord(t, s.DB, userID, "rest", "first")
		dbtest.CreateTestPushRecord(t, s.DB, userID, "meal", "second")
		dbtest.CreateTestPushRecord(t, s.DB, userID, "rest", "third")

		w := helper.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(historyURL, userID), nil, token)
		var listed struct {
			Records []response.PushRecordResponse `json:"records"`
		}
		helper.AssertSuccessResponse(t, w, http.StatusOK, &listed)
		require.Len(t, listed.Records, 3)
		require.Equal(t, "third", listed.Records[0].Content)
		require.Equal(t, "first", listed.Records[2].Content)

		w = helper.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(historyURL, userID)+"?push_type=rest", nil, token)
		helper.AssertSuccessResponse(t, w, http.StatusOK, &listed)
		require.Len(t, listed.Records, 2)
		for _, rec := range listed.Records {
			require.Equal(t, "rest", rec.PushType)
		}
	})

	s.Run("Error case: Unknown push_type filter is rejected", func() {
		t := s.T()
		userID := "history-user-2"
		token := s.token(t, userID)

		w := helper.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(historyURL, userID)+"?push_type=sms", nil, token)
		helper.AssertErrorResponse(t, w, http.StatusBadRequest, "Invalid push_type")
	})

	s.Run("Normal case: Mark read flips once and then reports not found", func() {
		t := s.T()
		userID := "history-user-3"
		token := s.token(t, userID)
		dbtest.CreateTestProfile(t, s.DB, userID)
		recordID := dbtest.CreateTestPushRecord(t, s.DB, userID, "health_tip", "read me")

		uw := helper.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(unreadURL, userID), nil, token)
		var unread map[string]int64
		helper.AssertSuccessResponse(t, uw, http.StatusOK, &unread)
		require.EqualValues(t, 1, unread["unread"])

		w := helper.PerformRequest(t, s.Router, http.MethodPut, fmt.Sprintf(markReadURL, recordID, userID), nil, token)
		var updated map[string]bool
		helper.AssertSuccessResponse(t, w, http.StatusOK, &updated)
		require.True(t, updated["updated"])

		uw = helper.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(unreadURL, userID), nil, token)
		helper.AssertSuccessResponse(t, uw, http.StatusOK, &unread)
		require.EqualValues(t, 0, unread["unread"])

		// Second attempt is a no-op
		w = helper.PerformRequest(t, s.Router, http.MethodPut, fmt.Sprintf(markReadURL, recordID, userID), nil, token)
		helper.AssertErrorResponse(t, w, http.StatusNotFound, "Record not found or already read")
	})

	s.Run("Error case: Mark read for another user's record is not found", func() {
		t := s.T()
		owner := "history-user-4"
		token := s.token(t, owner)
		dbtest.CreateTestProfile(t, s.DB, owner)
		recordID := dbtest.CreateTestPushRecord(t, s.DB, owner, "rest", "private")

		w := helper.PerformRequest(t, s.Router, http.MethodPut, fmt.Sprintf(markReadURL, recordID, "someone-else"), nil, token)
		helper.AssertErrorResponse(t, w, http.StatusNotFound, "")
	})
}
