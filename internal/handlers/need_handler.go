package handlers

import (
	"net/http"

	"celobuddy/internal/auth"
	"celobuddy/internal/middleware"
	"celobuddy/internal/services"
	"celobuddy/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type NeedHandler struct {
	*BaseHandler
	needService services.NeedService
}

func NewNeedHandler(base *BaseHandler, needService services.NeedService) *NeedHandler {
	return &NeedHandler{
		BaseHandler: base,
		needService: needService,
	}
}

func (h *NeedHandler) RegisterRoutes(rg *gin.RouterGroup, guards *middleware.Guards) {
	write := guards.RequireCapability(auth.CapNeedsWriteSelf)

	needs := rg.Group("/needs")
	{
		needs.GET("", h.ListMine)
		needs.POST("", write, h.Create)
		needs.PUT("/:id", write, h.Update)
		needs.PATCH("/:id/active", write, h.SetActive)
	}
}

// ListMine godoc
// @Summary Мои потребности
// @Tags needs
// @Produce json
// @Success 200 {array} models.Need
// @Security BearerAuth
// @Router /needs [get]
func (h *NeedHandler) ListMine(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	needs, err := h.needService.ListMine(c.Request.Context(), h.GetDB(c), userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, needs)
}

// Create godoc
// @Summary Добавить потребность
// @Tags needs
// @Accept json
// @Produce json
// @Param request body dto.NeedRequest true "Потребность"
// @Success 201 {object} models.Need
// @Failure 400 {object} apperrors.ErrorResponse
// @Security BearerAuth
// @Router /needs [post]
func (h *NeedHandler) Create(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.NeedRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	need, err := h.needService.Create(c.Request.Context(), h.GetDB(c), userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, need)
}

// Update godoc
// @Summary Изменить потребность
// @Tags needs
// @Accept json
// @Produce json
// @Param id path string true "ID потребности"
// @Param request body dto.NeedRequest true "Потребность"
// @Success 200 {object} models.Need
// @Failure 404 {object} apperrors.ErrorResponse
// @Security BearerAuth
// @Router /needs/{id} [put]
func (h *NeedHandler) Update(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.NeedRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	need, err := h.needService.Update(c.Request.Context(), h.GetDB(c), userID, c.Param("id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, need)
}

// SetActive godoc
// @Summary Включить или выключить потребность
// @Tags needs
// @Accept json
// @Param id path string true "ID потребности"
// @Param request body dto.SetActiveRequest true "Флаг активности"
// @Success 204
// @Failure 404 {object} apperrors.ErrorResponse
// @Security BearerAuth
// @Router /needs/{id}/active [patch]
func (h *NeedHandler) SetActive(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.SetActiveRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	if err := h.needService.SetActive(c.Request.Context(), h.GetDB(c), userID, c.Param("id"), *req.IsActive); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
