package handlers

import (
	"net/http"

	"celobuddy/internal/auth"
	"celobuddy/internal/middleware"
	"celobuddy/internal/services"
	"celobuddy/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type FeedbackHandler struct {
	*BaseHandler
	feedbackService services.FeedbackService
}

func NewFeedbackHandler(base *BaseHandler, feedbackService services.FeedbackService) *FeedbackHandler {
	return &FeedbackHandler{
		BaseHandler:     base,
		feedbackService: feedbackService,
	}
}

func (h *FeedbackHandler) RegisterRoutes(rg *gin.RouterGroup, guards *middleware.Guards) {
	feedback := rg.Group("/feedback")
	{
		feedback.GET("", h.Page)
		feedback.GET("/mine", h.ListMine)
		feedback.GET("/matches", h.Matches)
		feedback.POST("", guards.RequireCapability(auth.CapFeedbackWriteSelf), h.Submit)
	}
}

// Page godoc
// @Summary Страница отзывов
// @Description Принятые совпадения, о которых можно написать, и мои отзывы
// @Tags feedback
// @Produce json
// @Success 200 {object} dto.FeedbackPage
// @Security BearerAuth
// @Router /feedback [get]
func (h *FeedbackHandler) Page(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	page, err := h.feedbackService.FeedbackPage(c.Request.Context(), h.GetDB(c), userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, page)
}

// ListMine godoc
// @Summary Мои отзывы
// @Tags feedback
// @Produce json
// @Success 200 {array} models.Feedback
// @Security BearerAuth
// @Router /feedback/mine [get]
func (h *FeedbackHandler) ListMine(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	items, err := h.feedbackService.ListMine(c.Request.Context(), h.GetDB(c), userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, items)
}

// Matches godoc
// @Summary Совпадения, доступные для отзыва
// @Tags feedback
// @Produce json
// @Success 200 {array} dto.MatchSummary
// @Security BearerAuth
// @Router /feedback/matches [get]
func (h *FeedbackHandler) Matches(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	page, err := h.feedbackService.FeedbackPage(c.Request.Context(), h.GetDB(c), userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, page.AcceptedMatches)
}

// Submit godoc
// @Summary Оставить отзыв
// @Tags feedback
// @Accept json
// @Produce json
// @Param request body dto.FeedbackRequest true "Отзыв"
// @Success 201 {object} models.Feedback
// @Failure 400 {object} apperrors.ErrorResponse
// @Security BearerAuth
// @Router /feedback [post]
func (h *FeedbackHandler) Submit(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.FeedbackRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	fb, err := h.feedbackService.Submit(c.Request.Context(), h.GetDB(c), userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, fb)
}
