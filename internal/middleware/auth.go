package middleware

import (
	"crypto/subtle"
	"errors"
	"strings"

	"celobuddy/internal/auth"
	"celobuddy/internal/logger"
	"celobuddy/internal/models"
	"celobuddy/internal/repositories"
	"celobuddy/pkg/apperrors"
	"celobuddy/pkg/contextkeys"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const (
	// ServiceKeyHeader - заголовок service key для POST /opportunities
	ServiceKeyHeader = "X-Service-Key"
	// AnonKeyHeader - публичный ключ клиента
	AnonKeyHeader = "apikey"

	principalUser = "user"
)

// Guards - middleware доступа. Роль никогда не берется из токена:
// RequireCapability перечитывает ее из профиля на каждый запрос.
type Guards struct {
	tokens     *auth.TokenManager
	profiles   repositories.ProfileRepository
	anonKey    string
	serviceKey string
}

func NewGuards(tokens *auth.TokenManager, profiles repositories.ProfileRepository, anonKey, serviceKey string) *Guards {
	return &Guards{
		tokens:     tokens,
		profiles:   profiles,
		anonKey:    anonKey,
		serviceKey: serviceKey,
	}
}

// AnonKey проверяет публичный ключ, если он задан в конфиге
func (g *Guards) AnonKey() gin.HandlerFunc {
	return func(c *gin.Context) {
		if g.anonKey == "" {
			c.Next()
			return
		}
		if !keysEqual(c.GetHeader(AnonKeyHeader), g.anonKey) {
			apperrors.HandleError(c, apperrors.NewUnauthorizedError("Missing or invalid API key"))
			return
		}
		c.Next()
	}
}

// Auth - обязательный Bearer JWT
func (g *Guards) Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !g.authenticate(c) {
			return
		}
		c.Next()
	}
}

// ServiceKeyOrAuth: X-Service-Key дает принципала service, без заголовка нужен JWT
func (g *Guards) ServiceKeyOrAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.GetHeader(ServiceKeyHeader)
		if key == "" {
			if !g.authenticate(c) {
				return
			}
			c.Next()
			return
		}

		if g.serviceKey == "" || !keysEqual(key, g.serviceKey) {
			logger.CtxWarn(c.Request.Context(), "Invalid service key", "path", c.Request.URL.Path, "ip", c.ClientIP())
			apperrors.HandleError(c, apperrors.NewUnauthorizedError("Invalid service key"))
			return
		}

		c.Set(string(contextkeys.PrincipalKey), auth.PrincipalService)
		c.Next()
	}
}

// RequireCapability проверяет право принципала. Ставится после Auth или ServiceKeyOrAuth.
func (g *Guards) RequireCapability(capability auth.Capability) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		if c.GetString(string(contextkeys.PrincipalKey)) == auth.PrincipalService {
			if !auth.ServiceCan(capability) {
				apperrors.HandleError(c, apperrors.ErrInsufficientPermissions)
				return
			}
			c.Next()
			return
		}

		userID := c.GetString(string(contextkeys.UserIDKey))
		if userID == "" {
			apperrors.HandleError(c, apperrors.NewUnauthorizedError("User not authenticated"))
			return
		}

		db, ok := c.MustGet(string(contextkeys.DBContextKey)).(*gorm.DB)
		if !ok {
			apperrors.HandleError(c, apperrors.InternalError(errors.New("db missing in context")))
			return
		}

		role, err := g.profiles.FindRole(db, userID)
		if err != nil {
			if !errors.Is(err, repositories.ErrProfileNotFound) {
				logger.CtxWithError(ctx, "Failed to load role", err)
				apperrors.HandleError(c, apperrors.InternalError(err))
				return
			}
			role = models.UserRoleUser
		}

		if !auth.Can(role, capability) {
			logger.CtxWarn(ctx, "Capability denied", "capability", string(capability), "role", string(role))
			apperrors.HandleError(c, apperrors.ErrInsufficientPermissions)
			return
		}
		c.Next()
	}
}

func (g *Guards) authenticate(c *gin.Context) bool {
	header := c.GetHeader("Authorization")
	if header == "" || !strings.HasPrefix(header, "Bearer ") {
		apperrors.HandleError(c, apperrors.NewUnauthorizedError("Authorization header missing or invalid"))
		return false
	}

	claims, err := g.tokens.ParseToken(strings.TrimPrefix(header, "Bearer "))
	if err != nil {
		apperrors.HandleError(c, apperrors.ErrInvalidToken)
		return false
	}

	c.Set(string(contextkeys.UserIDKey), claims.UserID)
	c.Set(string(contextkeys.PrincipalKey), principalUser)
	c.Request = c.Request.WithContext(logger.WithUserID(c.Request.Context(), claims.UserID))
	return true
}

func keysEqual(got, want string) bool {
	return subtle.ConstantTimeCompare([]byte(got), []byte(want)) == 1
}

// GetUserID извлекает ID пользователя из контекста
func GetUserID(c *gin.Context) string {
	return c.GetString(string(contextkeys.UserIDKey))
}
