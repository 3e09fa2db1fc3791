package repositories

import (
	"celobuddy/internal/models"

	"gorm.io/gorm"
)

type MatchRepository interface {
	Create(db *gorm.DB, match *models.Match) error
	FindByID(db *gorm.DB, id string) (*models.Match, error)
	FindByRequester(db *gorm.DB, userID string, status models.MatchStatus, limit int) ([]models.Match, error)
	CountByRequester(db *gorm.DB, userID string, status models.MatchStatus) (int64, error)
	CountByOpportunity(db *gorm.DB, opportunityID string) (int64, error)
	ListAll(db *gorm.DB) ([]models.Match, error)
	Count(db *gorm.DB) (int64, error)
}

type MatchRepositoryImpl struct{}

func NewMatchRepository() MatchRepository {
	return &MatchRepositoryImpl{}
}

func (r *MatchRepositoryImpl) Create(db *gorm.DB, match *models.Match) error {
	return db.Omit("Need", "Opportunity").Create(match).Error
}

func (r *MatchRepositoryImpl) FindByID(db *gorm.DB, id string) (*models.Match, error) {
	var match models.Match
	if err := db.First(&match, "id = ?", id).Error; err != nil {
		return nil, notFound(err, ErrMatchNotFound)
	}
	return &match, nil
}

// FindByRequester - последние матчи основателя с возможностью и потребностью.
// Пустой status - все статусы, limit <= 0 - без ограничения.
func (r *MatchRepositoryImpl) FindByRequester(db *gorm.DB, userID string, status models.MatchStatus, limit int) ([]models.Match, error) {
	query := db.Preload("Opportunity").Preload("Need").Where("requester_id = ?", userID)
	if status != "" {
		query = query.Where("status = ?", status)
	}
	if limit > 0 {
		query = query.Limit(limit)
	}

	var matches []models.Match
	err := query.Order("created_at DESC").Find(&matches).Error
	return matches, err
}

func (r *MatchRepositoryImpl) CountByRequester(db *gorm.DB, userID string, status models.MatchStatus) (int64, error) {
	query := db.Model(&models.Match{}).Where("requester_id = ?", userID)
	if status != "" {
		query = query.Where("status = ?", status)
	}
	var count int64
	err := query.Count(&count).Error
	return count, err
}

func (r *MatchRepositoryImpl) CountByOpportunity(db *gorm.DB, opportunityID string) (int64, error) {
	var count int64
	err := db.Model(&models.Match{}).Where("opportunity_id = ?", opportunityID).Count(&count).Error
	return count, err
}

func (r *MatchRepositoryImpl) ListAll(db *gorm.DB) ([]models.Match, error) {
	var matches []models.Match
	err := db.Order("created_at DESC").Find(&matches).Error
	return matches, err
}

func (r *MatchRepositoryImpl) Count(db *gorm.DB) (int64, error) {
	var count int64
	err := db.Model(&models.Match{}).Count(&count).Error
	return count, err
}
