package handlers

import (
	"net/http"

	"celobuddy/internal/auth"
	"celobuddy/internal/middleware"
	"celobuddy/internal/services"
	"celobuddy/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type OpportunityHandler struct {
	*BaseHandler
	opportunityService services.OpportunityService
}

func NewOpportunityHandler(base *BaseHandler, opportunityService services.OpportunityService) *OpportunityHandler {
	return &OpportunityHandler{
		BaseHandler:        base,
		opportunityService: opportunityService,
	}
}

// RegisterPublicRoutes - POST /opportunities для внешних источников.
// Доступ: service key или JWT админа.
func (h *OpportunityHandler) RegisterPublicRoutes(rg *gin.RouterGroup, guards *middleware.Guards) {
	rg.POST("/opportunities",
		guards.ServiceKeyOrAuth(),
		guards.RequireCapability(auth.CapOpportunitiesWrite),
		h.CreatePublic,
	)
}

// RegisterAdminRoutes - CRUD под /admin/opportunities, группа уже требует JWT
func (h *OpportunityHandler) RegisterAdminRoutes(admin *gin.RouterGroup, guards *middleware.Guards) {
	read := guards.RequireCapability(auth.CapOpportunitiesRead)
	write := guards.RequireCapability(auth.CapOpportunitiesWrite)

	opps := admin.Group("/opportunities")
	{
		opps.GET("", read, h.List)
		opps.GET("/:id", read, h.Get)
		opps.POST("", write, h.Create)
		opps.PUT("/:id", write, h.Update)
		opps.PATCH("/:id/active", write, h.SetActive)
		opps.DELETE("/:id", write, h.Delete)
	}
}

// CreatePublic godoc
// @Summary Создать возможность (внешний API)
// @Description Запись создается от имени провайдера-заглушки. Нужен X-Service-Key или JWT администратора.
// @Tags opportunities
// @Accept json
// @Produce json
// @Param request body dto.OpportunityRequest true "Возможность"
// @Success 201 {object} map[string]models.Opportunity "{\"data\": row}"
// @Failure 400 {object} apperrors.ErrorResponse
// @Failure 401 {object} apperrors.ErrorResponse
// @Failure 403 {object} apperrors.ErrorResponse
// @Failure 500 {object} apperrors.ErrorResponse
// @Security ServiceKey
// @Security BearerAuth
// @Router /opportunities [post]
func (h *OpportunityHandler) CreatePublic(c *gin.Context) {
	var req dto.OpportunityRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	opp, err := h.opportunityService.CreatePublic(c.Request.Context(), h.GetDB(c), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"data": opp})
}

// List godoc
// @Summary Список возможностей (админ)
// @Tags admin
// @Produce json
// @Param category query string false "Категория"
// @Param type query string false "Тип"
// @Param is_active query bool false "Активность"
// @Param search query string false "Поиск по названию и описанию"
// @Param page query int false "Страница" default(1)
// @Param page_size query int false "Размер страницы" default(20)
// @Success 200 {object} dto.OpportunityListResponse
// @Security BearerAuth
// @Router /admin/opportunities [get]
func (h *OpportunityHandler) List(c *gin.Context) {
	var req dto.OpportunityListRequest
	if !h.BindAndValidate_Query(c, &req) {
		return
	}
	page, pageSize := ParsePagination(c)

	resp, err := h.opportunityService.List(c.Request.Context(), h.GetDB(c), &req, page, pageSize)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// Get godoc
// @Summary Возможность по ID (админ)
// @Tags admin
// @Produce json
// @Param id path string true "ID возможности"
// @Success 200 {object} models.Opportunity
// @Failure 404 {object} apperrors.ErrorResponse
// @Security BearerAuth
// @Router /admin/opportunities/{id} [get]
func (h *OpportunityHandler) Get(c *gin.Context) {
	opp, err := h.opportunityService.Get(c.Request.Context(), h.GetDB(c), c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, opp)
}

// Create godoc
// @Summary Создать возможность (админ)
// @Description Провайдером записи становится администратор
// @Tags admin
// @Accept json
// @Produce json
// @Param request body dto.OpportunityRequest true "Возможность"
// @Success 201 {object} models.Opportunity
// @Failure 400 {object} apperrors.ErrorResponse
// @Security BearerAuth
// @Router /admin/opportunities [post]
func (h *OpportunityHandler) Create(c *gin.Context) {
	adminID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.OpportunityRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	opp, err := h.opportunityService.Create(c.Request.Context(), h.GetDB(c), adminID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, opp)
}

// Update godoc
// @Summary Изменить возможность (админ)
// @Tags admin
// @Accept json
// @Produce json
// @Param id path string true "ID возможности"
// @Param request body dto.OpportunityRequest true "Возможность"
// @Success 200 {object} models.Opportunity
// @Failure 400 {object} apperrors.ErrorResponse
// @Failure 404 {object} apperrors.ErrorResponse
// @Security BearerAuth
// @Router /admin/opportunities/{id} [put]
func (h *OpportunityHandler) Update(c *gin.Context) {
	var req dto.OpportunityRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	opp, err := h.opportunityService.Update(c.Request.Context(), h.GetDB(c), c.Param("id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, opp)
}

// SetActive godoc
// @Summary Включить или скрыть возможность (админ)
// @Tags admin
// @Accept json
// @Param id path string true "ID возможности"
// @Param request body dto.SetActiveRequest true "Флаг активности"
// @Success 204
// @Failure 404 {object} apperrors.ErrorResponse
// @Security BearerAuth
// @Router /admin/opportunities/{id}/active [patch]
func (h *OpportunityHandler) SetActive(c *gin.Context) {
	var req dto.SetActiveRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	if err := h.opportunityService.SetActive(c.Request.Context(), h.GetDB(c), c.Param("id"), *req.IsActive); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// Delete godoc
// @Summary Удалить возможность (админ)
// @Description Отказ 409, пока на возможность ссылаются совпадения
// @Tags admin
// @Param id path string true "ID возможности"
// @Success 204
// @Failure 404 {object} apperrors.ErrorResponse
// @Failure 409 {object} apperrors.ErrorResponse
// @Security BearerAuth
// @Router /admin/opportunities/{id} [delete]
func (h *OpportunityHandler) Delete(c *gin.Context) {
	if err := h.opportunityService.Delete(c.Request.Context(), h.GetDB(c), c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
