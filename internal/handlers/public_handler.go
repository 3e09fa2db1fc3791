package handlers

import (
	"net/http"

	"celobuddy/internal/algorithms"
	"celobuddy/internal/models"
	"celobuddy/internal/services"
	"celobuddy/internal/services/dto"

	"github.com/gin-gonic/gin"
)

// PublicHandler - анонимный разговорный онбординг и страница результатов
type PublicHandler struct {
	*BaseHandler
	feedService         services.FeedService
	subscriptionService services.SubscriptionService
}

func NewPublicHandler(base *BaseHandler, feedService services.FeedService, subscriptionService services.SubscriptionService) *PublicHandler {
	return &PublicHandler{
		BaseHandler:         base,
		feedService:         feedService,
		subscriptionService: subscriptionService,
	}
}

func (h *PublicHandler) RegisterRoutes(rg *gin.RouterGroup) {
	public := rg.Group("/public")
	{
		public.GET("/chat/questions", h.GetChatQuestions)
		public.GET("/options", h.GetOptions)
		public.POST("/results", h.GetResults)
		public.POST("/subscriptions", h.Subscribe)
	}
}

// GetChatQuestions godoc
// @Summary Сценарий разговорного онбординга
// @Tags public
// @Produce json
// @Success 200 {array} algorithms.ChatQuestion
// @Router /public/chat/questions [get]
func (h *PublicHandler) GetChatQuestions(c *gin.Context) {
	c.JSON(http.StatusOK, algorithms.ChatScript())
}

// GetOptions godoc
// @Summary Варианты для форм онбординга
// @Description Стадии компании, категории потребностей, срочность, индустрии, категории и типы возможностей
// @Tags public
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /public/options [get]
func (h *PublicHandler) GetOptions(c *gin.Context) {
	stages := make([]algorithms.ChatOption, 0, len(models.CompanyStages))
	for _, s := range models.CompanyStages {
		stages = append(stages, algorithms.ChatOption{Value: string(s), Label: models.CompanyStageLabels[s]})
	}
	categories := make([]algorithms.ChatOption, 0, len(models.NeedCategories))
	for _, nc := range models.NeedCategories {
		categories = append(categories, algorithms.ChatOption{Value: string(nc), Label: nc.Label()})
	}

	c.JSON(http.StatusOK, gin.H{
		"company_stages":         stages,
		"need_categories":        categories,
		"urgencies":              models.Urgencies,
		"industries":             models.Industries,
		"opportunity_categories": models.OpportunityCategories,
		"opportunity_types":      models.OpportunityTypes,
	})
}

// GetResults godoc
// @Summary Подборка возможностей по ответам чата
// @Description Без авторизации: активные возможности по выбранным категориям, не больше 12
// @Tags public
// @Accept json
// @Produce json
// @Param answers body dto.ChatAnswers true "Ответы чата"
// @Success 200 {object} dto.ChatResultsResponse
// @Failure 400 {object} apperrors.ErrorResponse
// @Router /public/results [post]
func (h *PublicHandler) GetResults(c *gin.Context) {
	var req dto.ChatAnswers
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	c.JSON(http.StatusOK, h.feedService.PreviewFeed(c.Request.Context(), h.GetDB(c), &req))
}

// Subscribe godoc
// @Summary Подписка на рассылку возможностей
// @Tags public
// @Accept json
// @Produce json
// @Param request body dto.SubscribeRequest true "Email и интересы"
// @Success 201 {object} models.EmailSubscription
// @Failure 400 {object} apperrors.ErrorResponse
// @Router /public/subscriptions [post]
func (h *PublicHandler) Subscribe(c *gin.Context) {
	var req dto.SubscribeRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	sub, err := h.subscriptionService.Subscribe(c.Request.Context(), h.GetDB(c), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, sub)
}
