package repositories

import (
	"errors"

	"gorm.io/gorm"
)

var (
	ErrUserNotFound        = errors.New("user not found")
	ErrUserAlreadyExists   = errors.New("user already exists")
	ErrProfileNotFound     = errors.New("profile not found")
	ErrNeedNotFound        = errors.New("need not found")
	ErrOpportunityNotFound = errors.New("opportunity not found")
	ErrMatchNotFound       = errors.New("match not found")
	ErrOnboardingNotFound  = errors.New("onboarding state not found")
	ErrSessionNotFound     = errors.New("swipe session not found")
	ErrStaleCursor         = errors.New("swipe cursor was already advanced")
)

// notFound подменяет gorm.ErrRecordNotFound доменной ошибкой
func notFound(err, target error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return target
	}
	return err
}

// updatedOrMissing различает "строки нет" и "значение не изменилось":
// MySQL без clientFoundRows считает только измененные строки.
func updatedOrMissing(db *gorm.DB, result *gorm.DB, model interface{}, id string, target error) error {
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected > 0 {
		return nil
	}
	var count int64
	if err := db.Model(model).Where("id = ?", id).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return target
	}
	return nil
}
