package api

import (
	"errors"
	"net/http"

	"health-push/internal/domain/persona"
	reqdto "health-push/internal/handler/dto/request"
	resdto "health-push/internal/handler/dto/response"
	"health-push/internal/handler/httperr"
	"health-push/internal/pkg/errs"
	"health-push/internal/usecase/commands"
	"health-push/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type PersonaHandler struct {
	styles      commands.PersonaResolver
	profileCmds commands.ProfileCommands
	profileQ    queries.ProfileQueries
}

func NewPersonaHandler(styles commands.PersonaResolver, profileCmds commands.ProfileCommands, profileQ queries.ProfileQueries) *PersonaHandler {
	return &PersonaHandler{styles: styles, profileCmds: profileCmds, profileQ: profileQ}
}

// @Summary List persona styles
// @Description List the persona style catalog
// @Tags persona
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.PersonaStyleResponse
// @Failure 401 {object} map[string]string
// @Router /persona-styles [get]
func (h *PersonaHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"styles": resdto.FromPersonaStyles(h.styles.All())})
}

// @Summary Get persona style
// @Description Get one persona style by name
// @Tags persona
// @Produce json
// @Security BearerAuth
// @Param style_name path string true "Style name"
// @Success 200 {object} resdto.PersonaStyleResponse
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /persona-styles/{style_name} [get]
func (h *PersonaHandler) Get(c *gin.Context) {
	name := c.Param("style_name")
	style, ok := h.styles.Get(name)
	if !ok {
		httperr.AbortWithError(c, http.StatusNotFound,
			errs.Mark(errs.New("persona style not in catalog: "+name), errs.ErrPersonaStyleUnknown),
			"Persona style not found", nil)
		return
	}
	c.JSON(http.StatusOK, &resdto.PersonaStyleResponse{
		Name:        style.Name,
		Description: style.Description,
		Icon:        style.Icon,
	})
}

// @Summary Select persona style
// @Description Set the persona style used for a user's pushes
// @Tags persona
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param user_id path string true "User ID"
// @Param request body reqdto.SelectPersonaRequest true "Style selection"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /health-profile/{user_id}/persona [post]
func (h *PersonaHandler) Select(c *gin.Context) {
	var req reqdto.SelectPersonaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request body", nil)
		return
	}

	userID := c.Param("user_id")
	if err := h.profileCmds.SelectPersona(c.Request.Context(), userID, req.StyleName); err != nil {
		switch {
		case errors.Is(err, errs.ErrPersonaStyleUnknown):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Unknown persona style", nil)
		case errors.Is(err, errs.ErrProfileNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Profile not found", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to select persona", nil)
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"user_id": userID, "style_name": req.StyleName})
}

// @Summary Current persona style
// @Description Get the persona style currently selected on a user's profile
// @Tags persona
// @Produce json
// @Security BearerAuth
// @Param user_id path string true "User ID"
// @Success 200 {object} resdto.PersonaStyleResponse
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /health-profile/{user_id}/persona [get]
func (h *PersonaHandler) Current(c *gin.Context) {
	view, err := h.profileQ.Get(c.Request.Context(), c.Param("user_id"))
	if err != nil {
		if errors.Is(err, errs.ErrProfileNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Profile not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to get profile", nil)
		return
	}

	name := persona.DefaultStyleName
	if view.PersonaStyle != nil && *view.PersonaStyle != "" {
		name = *view.PersonaStyle
	}
	style, ok := h.styles.Get(name)
	if !ok {
		// Stale selection on the profile; report it as-is without a prompt
		c.JSON(http.StatusOK, &resdto.PersonaStyleResponse{Name: name})
		return
	}
	c.JSON(http.StatusOK, &resdto.PersonaStyleResponse{
		Name:        style.Name,
		Description: style.Description,
		Icon:        style.Icon,
	})
}
