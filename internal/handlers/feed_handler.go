package handlers

import (
	"context"
	"net/http"

	"celobuddy/internal/auth"
	"celobuddy/internal/middleware"
	"celobuddy/internal/services"
	"celobuddy/internal/services/dto"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// FeedHandler - лента и карточки. Все маршруты требуют заполненного профиля.
type FeedHandler struct {
	*BaseHandler
	feedService    services.FeedService
	swipeService   services.SwipeService
	profileService services.ProfileService
}

func NewFeedHandler(
	base *BaseHandler,
	feedService services.FeedService,
	swipeService services.SwipeService,
	profileService services.ProfileService,
) *FeedHandler {
	return &FeedHandler{
		BaseHandler:    base,
		feedService:    feedService,
		swipeService:   swipeService,
		profileService: profileService,
	}
}

func (h *FeedHandler) RegisterRoutes(rg *gin.RouterGroup, guards *middleware.Guards) {
	feed := rg.Group("/feed", guards.RequireCapability(auth.CapFeedRead), h.requireCompleteProfile)
	{
		feed.GET("", h.GetFeed)
		feed.POST("/sessions", h.StartSession)
		feed.GET("/sessions/:id", h.GetSession)
		feed.POST("/sessions/:id/pass", h.Pass)
		feed.POST("/sessions/:id/interest", h.Interest)
	}
}

// requireCompleteProfile отправляет на онбординг, пока профиль не заполнен
func (h *FeedHandler) requireCompleteProfile(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}
	if _, err := h.profileService.RequireComplete(c.Request.Context(), h.GetDB(c), userID); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.Next()
}

// GetFeed godoc
// @Summary Лента возможностей
// @Description Активные чужие возможности по категориям активных потребностей, новые первыми, до 20.
// @Description Ошибка чтения дает пустой список.
// @Tags feed
// @Produce json
// @Success 200 {object} dto.FeedResponse
// @Failure 409 {object} apperrors.ErrorResponse "Профиль не заполнен"
// @Security BearerAuth
// @Router /feed [get]
func (h *FeedHandler) GetFeed(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, h.feedService.ComposeFeed(c.Request.Context(), h.GetDB(c), userID))
}

// StartSession godoc
// @Summary Начать просмотр карточек
// @Description Снимок текущей ленты; курсор стоит на первой карточке
// @Tags feed
// @Produce json
// @Success 201 {object} dto.SwipeSessionResponse
// @Security BearerAuth
// @Router /feed/sessions [post]
func (h *FeedHandler) StartSession(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	session, err := h.swipeService.Start(c.Request.Context(), h.GetDB(c), userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, session)
}

// GetSession godoc
// @Summary Текущая карточка сессии
// @Tags feed
// @Produce json
// @Param id path string true "ID сессии"
// @Success 200 {object} dto.SwipeSessionResponse
// @Failure 404 {object} apperrors.ErrorResponse
// @Security BearerAuth
// @Router /feed/sessions/{id} [get]
func (h *FeedHandler) GetSession(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	session, err := h.swipeService.Current(c.Request.Context(), h.GetDB(c), userID, c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, session)
}

// Pass godoc
// @Summary Пропустить карточку
// @Tags feed
// @Accept json
// @Produce json
// @Param id path string true "ID сессии"
// @Param request body dto.SwipeRequest false "Курсор, который видел клиент"
// @Success 200 {object} dto.SwipeResultResponse
// @Failure 409 {object} apperrors.ErrorResponse "Курсор устарел или карточки закончились"
// @Security BearerAuth
// @Router /feed/sessions/{id}/pass [post]
func (h *FeedHandler) Pass(c *gin.Context) {
	h.swipe(c, h.swipeService.Pass)
}

// Interest godoc
// @Summary Интересно
// @Description Создает Match со статусом pending, если у основателя есть активная потребность той же категории
// @Tags feed
// @Accept json
// @Produce json
// @Param id path string true "ID сессии"
// @Param request body dto.SwipeRequest false "Курсор, который видел клиент"
// @Success 200 {object} dto.SwipeResultResponse
// @Failure 409 {object} apperrors.ErrorResponse "Курсор устарел или карточки закончились"
// @Security BearerAuth
// @Router /feed/sessions/{id}/interest [post]
func (h *FeedHandler) Interest(c *gin.Context) {
	h.swipe(c, h.swipeService.Interest)
}

type swipeFunc func(ctx context.Context, db *gorm.DB, founderID, sessionID string, expectedCursor *int) (*dto.SwipeResultResponse, error)

func (h *FeedHandler) swipe(c *gin.Context, action swipeFunc) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	// тело необязательно: без курсора проверка CAS идет по текущему значению
	var req dto.SwipeRequest
	if !h.BindOptional_JSON(c, &req) {
		return
	}

	result, err := action(c.Request.Context(), h.GetDB(c), userID, c.Param("id"), req.Cursor)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}
