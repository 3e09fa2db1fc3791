package repositories

import (
	"time"

	"celobuddy/internal/models"

	"gorm.io/gorm"
)

type SwipeSessionRepository interface {
	Create(db *gorm.DB, session *models.SwipeSession) error
	FindByID(db *gorm.DB, id string) (*models.SwipeSession, error)
	AdvanceCursor(db *gorm.DB, id string, from, to int) error
	DeleteOlderThan(db *gorm.DB, cutoff time.Time) (int64, error)
}

type SwipeSessionRepositoryImpl struct{}

func NewSwipeSessionRepository() SwipeSessionRepository {
	return &SwipeSessionRepositoryImpl{}
}

func (r *SwipeSessionRepositoryImpl) Create(db *gorm.DB, session *models.SwipeSession) error {
	return db.Create(session).Error
}

func (r *SwipeSessionRepositoryImpl) FindByID(db *gorm.DB, id string) (*models.SwipeSession, error) {
	var session models.SwipeSession
	if err := db.First(&session, "id = ?", id).Error; err != nil {
		return nil, notFound(err, ErrSessionNotFound)
	}
	return &session, nil
}

// AdvanceCursor - compare-and-set: запись проходит, только если курсор все еще from
func (r *SwipeSessionRepositoryImpl) AdvanceCursor(db *gorm.DB, id string, from, to int) error {
	result := db.Model(&models.SwipeSession{}).
		Where("id = ? AND cursor_pos = ?", id, from).
		Update("cursor_pos", to)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrStaleCursor
	}
	return nil
}

func (r *SwipeSessionRepositoryImpl) DeleteOlderThan(db *gorm.DB, cutoff time.Time) (int64, error) {
	result := db.Where("created_at < ?", cutoff).Delete(&models.SwipeSession{})
	return result.RowsAffected, result.Error
}
