package handlers

import (
	"net/http"

	"celobuddy/internal/services"
	"celobuddy/internal/services/dto"
	"celobuddy/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

type ProfileHandler struct {
	*BaseHandler
	profileService   services.ProfileService
	dashboardService services.DashboardService
}

func NewProfileHandler(base *BaseHandler, profileService services.ProfileService, dashboardService services.DashboardService) *ProfileHandler {
	return &ProfileHandler{
		BaseHandler:      base,
		profileService:   profileService,
		dashboardService: dashboardService,
	}
}

// RegisterRoutes - группа уже требует JWT
func (h *ProfileHandler) RegisterRoutes(rg *gin.RouterGroup) {
	profile := rg.Group("/profile")
	{
		profile.GET("", h.GetProfile)
		profile.PUT("", h.UpdateProfile)
		profile.POST("/avatar", h.UploadAvatar)
	}
	rg.GET("/dashboard", h.GetDashboard)
}

// GetProfile godoc
// @Summary Мой профиль
// @Tags profile
// @Produce json
// @Success 200 {object} models.Profile
// @Failure 401 {object} apperrors.ErrorResponse
// @Failure 404 {object} apperrors.ErrorResponse
// @Security BearerAuth
// @Router /profile [get]
func (h *ProfileHandler) GetProfile(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	profile, err := h.profileService.GetProfile(c.Request.Context(), h.GetDB(c), userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, profile)
}

// UpdateProfile godoc
// @Summary Обновить профиль
// @Description Частичное обновление: отсутствующие поля не меняются
// @Tags profile
// @Accept json
// @Produce json
// @Param request body dto.UpdateProfileRequest true "Поля профиля"
// @Success 200 {object} models.Profile
// @Failure 400 {object} apperrors.ErrorResponse
// @Security BearerAuth
// @Router /profile [put]
func (h *ProfileHandler) UpdateProfile(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateProfileRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	profile, err := h.profileService.UpdateProfile(c.Request.Context(), h.GetDB(c), userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, profile)
}

// UploadAvatar godoc
// @Summary Загрузить аватар
// @Description jpeg, png или webp до 2 МБ. Тип определяется по содержимому файла.
// @Tags profile
// @Accept multipart/form-data
// @Produce json
// @Param avatar formData file true "Изображение"
// @Success 200 {object} dto.AvatarResponse
// @Failure 400 {object} apperrors.ErrorResponse
// @Failure 413 {object} apperrors.ErrorResponse
// @Failure 415 {object} apperrors.ErrorResponse
// @Security BearerAuth
// @Router /profile/avatar [post]
func (h *ProfileHandler) UploadAvatar(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	file, err := c.FormFile("avatar")
	if err != nil {
		apperrors.HandleError(c, apperrors.NewBadRequestError("avatar file is required"))
		return
	}

	resp, err := h.profileService.UploadAvatar(c.Request.Context(), h.GetDB(c), userID, file)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// GetDashboard godoc
// @Summary Дашборд основателя
// @Description Без заполненного профиля 409 PROFILE_INCOMPLETE с redirect на /onboarding
// @Tags profile
// @Produce json
// @Success 200 {object} dto.FounderDashboard
// @Failure 409 {object} apperrors.ErrorResponse
// @Security BearerAuth
// @Router /dashboard [get]
func (h *ProfileHandler) GetDashboard(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	dash, err := h.dashboardService.GetFounderDashboard(c.Request.Context(), h.GetDB(c), userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dash)
}
