package database

import (
	"fmt"

	"celobuddy/internal/logger"
	"celobuddy/internal/models"

	"gorm.io/gorm"
)

// Models - все таблицы приложения в порядке миграции
func Models() []interface{} {
	return []interface{}{
		&models.User{},
		&models.Profile{},
		&models.Need{},
		&models.Opportunity{},
		&models.Match{},
		&models.Feedback{},
		&models.EmailSubscription{},
		&models.OnboardingState{},
		&models.SwipeSession{},
	}
}

// AutoMigrate выполняет миграцию всех моделей
func AutoMigrate(db *gorm.DB) error {
	if err := db.AutoMigrate(Models()...); err != nil {
		return fmt.Errorf("auto migration failed: %w", err)
	}
	logger.Info("Database migration completed", "tables", len(Models()))
	return nil
}
