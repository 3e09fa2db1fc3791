// Package testutil поднимает изолированную in-memory SQLite базу для тестов
// репозиториев и сервисов и создает типовые записи.
package testutil

import (
	"fmt"
	"testing"
	"time"

	"celobuddy/database"
	"celobuddy/internal/auth"
	"celobuddy/internal/models"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// NewDB - отдельная база на каждый тест. Одно соединение: in-memory
// SQLite с shared cache иначе ловит "table is locked" под транзакциями.
func NewDB(t testing.TB) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), database.GormConfig("test"))
	if err != nil {
		t.Fatalf("failed to open sqlite: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get *sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(database.Models()...); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}

	t.Cleanup(func() { _ = sqlDB.Close() })
	return db
}

// FounderOption настраивает профиль перед вставкой
type FounderOption func(*models.Profile)

func WithRole(role models.UserRole) FounderOption {
	return func(p *models.Profile) { p.Role = role }
}

func WithLocation(location string) FounderOption {
	return func(p *models.Profile) { p.Location = location }
}

func Incomplete() FounderOption {
	return func(p *models.Profile) {
		p.CompanyName = ""
		p.CompanyStage = ""
	}
}

// CreateFounder создает пользователя (пароль "passw0rd!") и полный профиль
func CreateFounder(t testing.TB, db *gorm.DB, email string, opts ...FounderOption) *models.Profile {
	t.Helper()

	hash, err := auth.HashPassword("passw0rd!")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	user := &models.User{Email: email, PasswordHash: hash}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("create user %s: %v", email, err)
	}

	profile := &models.Profile{
		ID:           user.ID,
		Email:        email,
		FullName:     "Founder " + email,
		CompanyName:  "Project " + email,
		CompanyStage: models.CompanyStageMVP,
		Role:         models.UserRoleUser,
		GithubURL:    "https://github.com/example/repo",
	}
	for _, opt := range opts {
		opt(profile)
	}
	if err := db.Create(profile).Error; err != nil {
		t.Fatalf("create profile %s: %v", email, err)
	}
	return profile
}

// CreateNeed - активная потребность с заданным временем создания
func CreateNeed(t testing.TB, db *gorm.DB, userID string, category models.NeedCategory, createdAt time.Time) *models.Need {
	t.Helper()

	need := &models.Need{
		BaseModel:   models.BaseModel{CreatedAt: createdAt.UTC()},
		UserID:      userID,
		Title:       "Looking for " + category.Label(),
		Description: "test need",
		Category:    category,
		Urgency:     models.UrgencyMedium,
		IsActive:    true,
	}
	if err := db.Create(need).Error; err != nil {
		t.Fatalf("create need: %v", err)
	}
	return need
}

// CreateOpportunity - активная возможность провайдера
func CreateOpportunity(t testing.TB, db *gorm.DB, providerID, category string, createdAt time.Time) *models.Opportunity {
	t.Helper()

	opp := &models.Opportunity{
		BaseModel:  models.BaseModel{CreatedAt: createdAt.UTC()},
		ProviderID: providerID,
		Title:      category + " opportunity",
		Category:   category,
		Type:       "grant",
		IsActive:   true,
	}
	if err := db.Create(opp).Error; err != nil {
		t.Fatalf("create opportunity: %v", err)
	}
	return opp
}
