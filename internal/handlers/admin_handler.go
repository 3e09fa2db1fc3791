package handlers

import (
	"bytes"
	"fmt"
	"net/http"

	"celobuddy/internal/auth"
	"celobuddy/internal/middleware"
	"celobuddy/internal/services"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	*BaseHandler
	analyticsService services.AnalyticsService
	exportService    services.ExportService
}

func NewAdminHandler(
	base *BaseHandler,
	analyticsService services.AnalyticsService,
	exportService services.ExportService,
) *AdminHandler {
	return &AdminHandler{
		BaseHandler:      base,
		analyticsService: analyticsService,
		exportService:    exportService,
	}
}

// RegisterRoutes вешает маршруты на группу /admin
func (h *AdminHandler) RegisterRoutes(admin *gin.RouterGroup, guards *middleware.Guards) {
	analytics := guards.RequireCapability(auth.CapAnalyticsRead)
	admin.GET("/dashboard", analytics, h.Dashboard)
	admin.GET("/analytics", analytics, h.Analytics)

	admin.GET("/export/:dataset", guards.RequireCapability(auth.CapDataExport), h.Export)
}

// Dashboard godoc
// @Summary Сводка для администратора
// @Tags admin
// @Produce json
// @Success 200 {object} dto.AdminDashboard
// @Failure 403 {object} apperrors.ErrorResponse
// @Security BearerAuth
// @Router /admin/dashboard [get]
func (h *AdminHandler) Dashboard(c *gin.Context) {
	stats, err := h.analyticsService.AdminDashboard(c.Request.Context(), h.GetDB(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, stats)
}

// Analytics godoc
// @Summary Аналитика платформы
// @Tags admin
// @Produce json
// @Success 200 {object} dto.PlatformAnalytics
// @Failure 403 {object} apperrors.ErrorResponse
// @Security BearerAuth
// @Router /admin/analytics [get]
func (h *AdminHandler) Analytics(c *gin.Context) {
	stats, err := h.analyticsService.PlatformAnalytics(c.Request.Context(), h.GetDB(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, stats)
}

// Export godoc
// @Summary Выгрузка в CSV
// @Tags admin
// @Produce text/csv
// @Param dataset path string true "profiles, opportunities, needs, matches, feedback или subscriptions"
// @Success 200 {file} file
// @Failure 400 {object} apperrors.ErrorResponse
// @Failure 403 {object} apperrors.ErrorResponse
// @Security BearerAuth
// @Router /admin/export/{dataset} [get]
func (h *AdminHandler) Export(c *gin.Context) {
	// сначала в буфер: при ошибке отвечаем JSON, а не обрезанным файлом
	var buf bytes.Buffer
	filename, err := h.exportService.Export(c.Request.Context(), h.GetDB(c), c.Param("dataset"), &buf)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
}
