package repositories

import (
	"celobuddy/internal/models"

	"gorm.io/gorm"
)

type SubscriptionRepository interface {
	Create(db *gorm.DB, sub *models.EmailSubscription) error
	ListAll(db *gorm.DB) ([]models.EmailSubscription, error)
	Count(db *gorm.DB, activeOnly bool) (int64, error)
}

type SubscriptionRepositoryImpl struct{}

func NewSubscriptionRepository() SubscriptionRepository {
	return &SubscriptionRepositoryImpl{}
}

func (r *SubscriptionRepositoryImpl) Create(db *gorm.DB, sub *models.EmailSubscription) error {
	return db.Create(sub).Error
}

func (r *SubscriptionRepositoryImpl) ListAll(db *gorm.DB) ([]models.EmailSubscription, error) {
	var subs []models.EmailSubscription
	err := db.Order("created_at DESC").Find(&subs).Error
	return subs, err
}

func (r *SubscriptionRepositoryImpl) Count(db *gorm.DB, activeOnly bool) (int64, error) {
	query := db.Model(&models.EmailSubscription{})
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}
	var count int64
	err := query.Count(&count).Error
	return count, err
}
