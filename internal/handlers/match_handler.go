package handlers

import (
	"net/http"

	"celobuddy/internal/models"
	"celobuddy/internal/services"

	"github.com/gin-gonic/gin"
)

const (
	defaultMatchLimit = 20
	maxMatchLimit     = 100
)

type MatchHandler struct {
	*BaseHandler
	matchService services.MatchService
}

func NewMatchHandler(base *BaseHandler, matchService services.MatchService) *MatchHandler {
	return &MatchHandler{
		BaseHandler:  base,
		matchService: matchService,
	}
}

func (h *MatchHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/matches", h.ListMine)
}

// ListMine godoc
// @Summary Мои совпадения
// @Tags matches
// @Produce json
// @Param status query string false "pending, accepted или rejected"
// @Param limit query int false "Не больше 100"
// @Success 200 {array} dto.MatchSummary
// @Failure 400 {object} apperrors.ErrorResponse
// @Security BearerAuth
// @Router /matches [get]
func (h *MatchHandler) ListMine(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	status := models.MatchStatus(c.Query("status"))
	limit := ParseLimit(c, defaultMatchLimit, maxMatchLimit)

	matches, err := h.matchService.ListMine(c.Request.Context(), h.GetDB(c), userID, status, limit)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, matches)
}
