package api

import (
	"errors"
	"net/http"
	"strconv"

	"health-push/internal/domain/push"
	resdto "health-push/internal/handler/dto/response"
	"health-push/internal/handler/httperr"
	"health-push/internal/pkg/errs"
	"health-push/internal/usecase/commands"
	"health-push/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type PushHandler struct {
	cmds   commands.PushCommands
	q      queries.PushHistoryQueries
	runner commands.FanoutRunner
}

func NewPushHandler(cmds commands.PushCommands, q queries.PushHistoryQueries, runner commands.FanoutRunner) *PushHandler {
	return &PushHandler{cmds: cmds, q: q, runner: runner}
}

// @Summary Trigger rest reminder
// @Description Dispatch a rest reminder of the given time slot to one user
// @Tags push
// @Produce json
// @Security BearerAuth
// @Param user_id path string true "User ID"
// @Param time_type query string true "Time slot" Enums(morning, noon, night)
// @Success 200 {object} resdto.OutcomeResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /push/rest/{user_id} [post]
func (h *PushHandler) TriggerRest(c *gin.Context) {
	slot, err := push.ParseRestSlot(c.Query("time_type"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid time_type", nil)
		return
	}
	h.dispatch(c, push.RestKind(slot))
}

// @Summary Trigger meal suggestion
// @Description Dispatch a meal suggestion of the given meal slot to one user
// @Tags push
// @Produce json
// @Security BearerAuth
// @Param user_id path string true "User ID"
// @Param meal_type query string true "Meal slot" Enums(breakfast, lunch, dinner)
// @Success 200 {object} resdto.OutcomeResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /push/meal/{user_id} [post]
func (h *PushHandler) TriggerMeal(c *gin.Context) {
	slot, err := push.ParseMealSlot(c.Query("meal_type"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid meal_type", nil)
		return
	}
	h.dispatch(c, push.MealKind(slot))
}

// @Summary Trigger weather advisory
// @Description Dispatch today's weather advisory to one user
// @Tags push
// @Produce json
// @Security BearerAuth
// @Param user_id path string true "User ID"
// @Success 200 {object} resdto.OutcomeResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /push/weather/{user_id} [post]
func (h *PushHandler) TriggerWeather(c *gin.Context) {
	h.dispatch(c, push.WeatherKind())
}

// @Summary Trigger health tip
// @Description Dispatch a personalized health tip to one user
// @Tags push
// @Produce json
// @Security BearerAuth
// @Param user_id path string true "User ID"
// @Success 200 {object} resdto.OutcomeResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /push/health-tip/{user_id} [post]
func (h *PushHandler) TriggerHealthTip(c *gin.Context) {
	h.dispatch(c, push.HealthTipKind())
}

func (h *PushHandler) dispatch(c *gin.Context, kind push.Kind) {
	userID := c.Param("user_id")
	if userID == "" {
		httperr.AbortWithError(c, http.StatusBadRequest, errs.New("empty user_id"), "Invalid user id", nil)
		return
	}

	outcome, err := h.cmds.Dispatch(c.Request.Context(), userID, kind)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to dispatch push", nil)
		return
	}
	if outcome.Status != push.StatusSuccess {
		httperr.AbortWithError(c, http.StatusBadRequest,
			errs.New("push not delivered: "+outcome.Reason), outcome.Reason, resdto.FromOutcome(outcome))
		return
	}
	c.JSON(http.StatusOK, resdto.FromOutcome(outcome))
}

// @Summary Run a push for every user
// @Description Fan one notification kind out to the whole user base and return the run summary
// @Tags push
// @Produce json
// @Security BearerAuth
// @Param kind path string true "Notification kind" Enums(rest, meal, weather, health_tip)
// @Param time_type query string false "Rest slot" Enums(morning, noon, night)
// @Param meal_type query string false "Meal slot" Enums(breakfast, lunch, dinner)
// @Success 200 {object} resdto.SummaryResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /push/run/{kind} [post]
func (h *PushHandler) RunAll(c *gin.Context) {
	kind, err := runKind(c)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid push kind", nil)
		return
	}

	summary := h.runner.Run(c.Request.Context(), kind)
	c.JSON(http.StatusOK, resdto.FromSummary(kind, summary))
}

func runKind(c *gin.Context) (push.Kind, error) {
	t, err := push.ParseType(c.Param("kind"))
	if err != nil {
		return push.Kind{}, err
	}
	switch t {
	case push.TypeRest:
		slot, err := push.ParseRestSlot(c.Query("time_type"))
		if err != nil {
			return push.Kind{}, err
		}
		return push.RestKind(slot), nil
	case push.TypeMeal:
		slot, err := push.ParseMealSlot(c.Query("meal_type"))
		if err != nil {
			return push.Kind{}, err
		}
		return push.MealKind(slot), nil
	case push.TypeWeather:
		return push.WeatherKind(), nil
	default:
		return push.HealthTipKind(), nil
	}
}

// @Summary Push history
// @Description List a user's push records, newest first
// @Tags push
// @Produce json
// @Security BearerAuth
// @Param user_id path string true "User ID"
// @Param push_type query string false "Filter by type" Enums(rest, meal, weather, health_tip)
// @Param limit query int false "Max records (1-100, default 20)"
// @Success 200 {array} resdto.PushRecordResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /push/history/{user_id} [get]
func (h *PushHandler) History(c *gin.Context) {
	userID := c.Param("user_id")

	limit := queries.DefaultHistoryLimit
	if v := c.Query("limit"); v != "" {
		if iv, e := strconv.Atoi(v); e == nil {
			limit = iv
		}
	}

	records, err := h.q.List(c.Request.Context(), userID, c.Query("push_type"), limit)
	if err != nil {
		if errors.Is(err, errs.ErrUnknownPushType) {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid push_type", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to list push history", nil)
		return
	}
	c.JSON(http.StatusOK, gin.H{"records": resdto.FromPushRecordList(records)})
}

// @Summary Unread push count
// @Description Count a user's unread push records
// @Tags push
// @Produce json
// @Security BearerAuth
// @Param user_id path string true "User ID"
// @Success 200 {object} map[string]int64
// @Failure 401 {object} map[string]string
// @Router /push/history/{user_id}/unread-count [get]
func (h *PushHandler) UnreadCount(c *gin.Context) {
	userID := c.Param("user_id")

	n, err := h.q.UnreadCount(c.Request.Context(), userID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to count unread records", nil)
		return
	}
	c.JSON(http.StatusOK, gin.H{"unread": n})
}

// @Summary Mark push record read
// @Description Mark one push record as read; no-op repeats report not found
// @Tags push
// @Produce json
// @Security BearerAuth
// @Param id path string true "Record ID"
// @Param user_id query string true "Owning user ID"
// @Success 200 {object} map[string]bool
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /push/history/{id}/read [put]
func (h *PushHandler) MarkRead(c *gin.Context) {
	recordID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid record id", nil)
		return
	}
	userID := c.Query("user_id")
	if userID == "" {
		httperr.AbortWithError(c, http.StatusBadRequest, errs.New("empty user_id"), "user_id is required", nil)
		return
	}

	changed, err := h.cmds.MarkRead(c.Request.Context(), userID, recordID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to mark record read", nil)
		return
	}
	if !changed {
		httperr.AbortWithError(c, http.StatusNotFound,
			errs.Mark(errs.New("no unread record matched"), errs.ErrPushRecordNotFound),
			"Record not found or already read", nil)
		return
	}
	c.JSON(http.StatusOK, gin.H{"updated": true})
}
