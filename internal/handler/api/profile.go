package api

import (
	"errors"
	"net/http"

	reqdto "health-push/internal/handler/dto/request"
	resdto "health-push/internal/handler/dto/response"
	"health-push/internal/handler/httperr"
	"health-push/internal/handler/middleware"
	"health-push/internal/pkg/errs"
	"health-push/internal/usecase/commands"
	"health-push/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type ProfileHandler struct {
	cmds commands.ProfileCommands
	q    queries.ProfileQueries
}

func NewProfileHandler(cmds commands.ProfileCommands, q queries.ProfileQueries) *ProfileHandler {
	return &ProfileHandler{cmds: cmds, q: q}
}

// @Summary Create health profile
// @Description Create the authenticated user's health profile
// @Tags health-profile
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateProfileRequest true "Create profile request"
// @Success 201 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /health-profile [post]
func (h *ProfileHandler) Create(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errs.New("no authenticated user"), "Unauthorized", nil)
		return
	}

	var req reqdto.CreateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request body", nil)
		return
	}

	if err := h.cmds.CreateProfile(c.Request.Context(), userID, req.ToParams()); err != nil {
		if errors.Is(err, errs.ErrProfileAlreadyExists) {
			httperr.AbortWithError(c, http.StatusConflict, err, "Profile already exists", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to create profile", nil)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"user_id": userID})
}

// @Summary Get health profile
// @Description Get one user's health profile
// @Tags health-profile
// @Produce json
// @Security BearerAuth
// @Param user_id path string true "User ID"
// @Success 200 {object} resdto.ProfileResponse
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /health-profile/{user_id} [get]
func (h *ProfileHandler) Get(c *gin.Context) {
	view, err := h.q.Get(c.Request.Context(), c.Param("user_id"))
	if err != nil {
		if errors.Is(err, errs.ErrProfileNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Profile not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to get profile", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromProfileView(view))
}

// @Summary Update health profile
// @Description Partially update one user's health profile; omitted sections are untouched
// @Tags health-profile
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param user_id path string true "User ID"
// @Param request body reqdto.UpdateProfileRequest true "Update profile request"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /health-profile/{user_id} [put]
func (h *ProfileHandler) Update(c *gin.Context) {
	var req reqdto.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request body", nil)
		return
	}

	userID := c.Param("user_id")
	if err := h.cmds.UpdateProfile(c.Request.Context(), userID, req.ToParams()); err != nil {
		h.abortProfileErr(c, err, "Failed to update profile")
		return
	}
	c.JSON(http.StatusOK, gin.H{"user_id": userID})
}

// @Summary Delete health profile
// @Description Delete one user's health profile
// @Tags health-profile
// @Produce json
// @Security BearerAuth
// @Param user_id path string true "User ID"
// @Success 204
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /health-profile/{user_id} [delete]
func (h *ProfileHandler) Delete(c *gin.Context) {
	if err := h.cmds.DeleteProfile(c.Request.Context(), c.Param("user_id")); err != nil {
		h.abortProfileErr(c, err, "Failed to delete profile")
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Set profile location
// @Description Set the city used for weather advisories
// @Tags health-profile
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param user_id path string true "User ID"
// @Param request body reqdto.SetLocationRequest true "Location"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /health-profile/{user_id}/location [post]
func (h *ProfileHandler) SetLocation(c *gin.Context) {
	var req reqdto.SetLocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request body", nil)
		return
	}

	userID := c.Param("user_id")
	if err := h.cmds.SetLocation(c.Request.Context(), userID, req.ToDomain()); err != nil {
		h.abortProfileErr(c, err, "Failed to set location")
		return
	}
	c.JSON(http.StatusOK, gin.H{"user_id": userID})
}

func (h *ProfileHandler) abortProfileErr(c *gin.Context, err error, msg string) {
	if errors.Is(err, errs.ErrProfileNotFound) {
		httperr.AbortWithError(c, http.StatusNotFound, err, "Profile not found", nil)
		return
	}
	httperr.AbortWithError(c, http.StatusInternalServerError, err, msg, nil)
}
