package repositories

import (
	"celobuddy/internal/models"

	"gorm.io/gorm"
)

type NeedRepository interface {
	Create(db *gorm.DB, need *models.Need) error
	CreateBatch(db *gorm.DB, needs []models.Need) error
	FindByID(db *gorm.DB, id string) (*models.Need, error)
	FindByUser(db *gorm.DB, userID string, activeOnly bool) ([]models.Need, error)
	FindRecentActive(db *gorm.DB, userID string, limit int) ([]models.Need, error)
	CountActiveByUser(db *gorm.DB, userID string) (int64, error)
	ActiveCategories(db *gorm.DB, userID string) ([]string, error)
	Update(db *gorm.DB, need *models.Need) error
	SetActive(db *gorm.DB, id string, active bool) error
	ListAll(db *gorm.DB) ([]models.Need, error)
	Count(db *gorm.DB) (int64, error)
}

type NeedRepositoryImpl struct{}

func NewNeedRepository() NeedRepository {
	return &NeedRepositoryImpl{}
}

func (r *NeedRepositoryImpl) Create(db *gorm.DB, need *models.Need) error {
	return db.Create(need).Error
}

// CreateBatch - одна вставка на все строки; атомарность дает транзакция вызывающего
func (r *NeedRepositoryImpl) CreateBatch(db *gorm.DB, needs []models.Need) error {
	if len(needs) == 0 {
		return nil
	}
	return db.Create(&needs).Error
}

func (r *NeedRepositoryImpl) FindByID(db *gorm.DB, id string) (*models.Need, error) {
	var need models.Need
	if err := db.First(&need, "id = ?", id).Error; err != nil {
		return nil, notFound(err, ErrNeedNotFound)
	}
	return &need, nil
}

func (r *NeedRepositoryImpl) FindByUser(db *gorm.DB, userID string, activeOnly bool) ([]models.Need, error) {
	var needs []models.Need
	query := db.Where("user_id = ?", userID)
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}
	err := query.Order("created_at DESC").Order("id DESC").Find(&needs).Error
	return needs, err
}

func (r *NeedRepositoryImpl) FindRecentActive(db *gorm.DB, userID string, limit int) ([]models.Need, error) {
	var needs []models.Need
	err := db.Where("user_id = ? AND is_active = ?", userID, true).
		Order("created_at DESC").
		Limit(limit).
		Find(&needs).Error
	return needs, err
}

func (r *NeedRepositoryImpl) CountActiveByUser(db *gorm.DB, userID string) (int64, error) {
	var count int64
	err := db.Model(&models.Need{}).Where("user_id = ? AND is_active = ?", userID, true).Count(&count).Error
	return count, err
}

func (r *NeedRepositoryImpl) ActiveCategories(db *gorm.DB, userID string) ([]string, error) {
	var categories []string
	err := db.Model(&models.Need{}).
		Where("user_id = ? AND is_active = ?", userID, true).
		Distinct().
		Pluck("category", &categories).Error
	return categories, err
}

func (r *NeedRepositoryImpl) Update(db *gorm.DB, need *models.Need) error {
	return db.Model(need).Select(
		"title", "description", "category", "urgency", "budget_range", "timeline", "skills_needed",
	).Updates(need).Error
}

func (r *NeedRepositoryImpl) SetActive(db *gorm.DB, id string, active bool) error {
	result := db.Model(&models.Need{}).Where("id = ?", id).Update("is_active", active)
	return updatedOrMissing(db, result, &models.Need{}, id, ErrNeedNotFound)
}

func (r *NeedRepositoryImpl) ListAll(db *gorm.DB) ([]models.Need, error) {
	var needs []models.Need
	err := db.Order("created_at DESC").Find(&needs).Error
	return needs, err
}

func (r *NeedRepositoryImpl) Count(db *gorm.DB) (int64, error) {
	var count int64
	err := db.Model(&models.Need{}).Count(&count).Error
	return count, err
}
