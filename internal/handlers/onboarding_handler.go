package handlers

import (
	"context"
	"net/http"

	"celobuddy/internal/services"
	"celobuddy/internal/services/dto"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type OnboardingHandler struct {
	*BaseHandler
	onboardingService services.OnboardingService
}

func NewOnboardingHandler(base *BaseHandler, onboardingService services.OnboardingService) *OnboardingHandler {
	return &OnboardingHandler{
		BaseHandler:       base,
		onboardingService: onboardingService,
	}
}

func (h *OnboardingHandler) RegisterRoutes(rg *gin.RouterGroup) {
	onboarding := rg.Group("/onboarding")
	{
		onboarding.GET("", h.GetState)
		onboarding.POST("/profile", h.SubmitProfile)
		onboarding.POST("/needs", h.SubmitNeeds)
		onboarding.POST("/back", h.Back)
		onboarding.POST("/complete", h.Complete)
	}
}

// GetState godoc
// @Summary Текущий шаг онбординга
// @Tags onboarding
// @Produce json
// @Success 200 {object} dto.OnboardingStateResponse
// @Security BearerAuth
// @Router /onboarding [get]
func (h *OnboardingHandler) GetState(c *gin.Context) {
	h.respond(c, h.onboardingService.GetState)
}

// SubmitProfile godoc
// @Summary Шаг 1: профиль
// @Description Допустим только на шаге profile; ошибки полей возвращаются картой
// @Tags onboarding
// @Accept json
// @Produce json
// @Param request body dto.OnboardingProfileRequest true "Профиль"
// @Success 200 {object} dto.OnboardingStateResponse
// @Failure 400 {object} apperrors.ErrorResponse
// @Security BearerAuth
// @Router /onboarding/profile [post]
func (h *OnboardingHandler) SubmitProfile(c *gin.Context) {
	var req dto.OnboardingProfileRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}
	h.respond(c, func(ctx context.Context, db *gorm.DB, userID string) (*dto.OnboardingStateResponse, error) {
		return h.onboardingService.SubmitProfile(ctx, db, userID, &req)
	})
}

// SubmitNeeds godoc
// @Summary Шаг 2: потребности
// @Description Одна потребность на каждую выбранную категорию, все в одной транзакции
// @Tags onboarding
// @Accept json
// @Produce json
// @Param request body dto.OnboardingNeedsRequest true "Категории и описание"
// @Success 200 {object} dto.OnboardingStateResponse
// @Failure 400 {object} apperrors.ErrorResponse
// @Security BearerAuth
// @Router /onboarding/needs [post]
func (h *OnboardingHandler) SubmitNeeds(c *gin.Context) {
	var req dto.OnboardingNeedsRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}
	h.respond(c, func(ctx context.Context, db *gorm.DB, userID string) (*dto.OnboardingStateResponse, error) {
		return h.onboardingService.SubmitNeeds(ctx, db, userID, &req)
	})
}

// Back godoc
// @Summary Назад на шаг профиля
// @Tags onboarding
// @Produce json
// @Success 200 {object} dto.OnboardingStateResponse
// @Failure 400 {object} apperrors.ErrorResponse
// @Security BearerAuth
// @Router /onboarding/back [post]
func (h *OnboardingHandler) Back(c *gin.Context) {
	h.respond(c, h.onboardingService.Back)
}

// Complete godoc
// @Summary Завершить онбординг
// @Tags onboarding
// @Produce json
// @Success 200 {object} dto.OnboardingStateResponse
// @Failure 400 {object} apperrors.ErrorResponse
// @Failure 409 {object} apperrors.ErrorResponse
// @Security BearerAuth
// @Router /onboarding/complete [post]
func (h *OnboardingHandler) Complete(c *gin.Context) {
	h.respond(c, h.onboardingService.Complete)
}

func (h *OnboardingHandler) respond(c *gin.Context, step func(ctx context.Context, db *gorm.DB, userID string) (*dto.OnboardingStateResponse, error)) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	state, err := step(c.Request.Context(), h.GetDB(c), userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, state)
}
