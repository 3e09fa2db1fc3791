package repositories

import (
	"celobuddy/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ProfileRepository interface {
	FindByID(db *gorm.DB, id string) (*models.Profile, error)
	FindRole(db *gorm.DB, id string) (models.UserRole, error)
	Create(db *gorm.DB, profile *models.Profile) error
	Upsert(db *gorm.DB, profile *models.Profile) error
	Update(db *gorm.DB, profile *models.Profile) error
	UpdateAvatar(db *gorm.DB, id, avatarURL string) error
	ListAll(db *gorm.DB) ([]models.Profile, error)
	Count(db *gorm.DB) (int64, error)
}

type ProfileRepositoryImpl struct{}

func NewProfileRepository() ProfileRepository {
	return &ProfileRepositoryImpl{}
}

func (r *ProfileRepositoryImpl) FindByID(db *gorm.DB, id string) (*models.Profile, error) {
	var profile models.Profile
	if err := db.First(&profile, "id = ?", id).Error; err != nil {
		return nil, notFound(err, ErrProfileNotFound)
	}
	return &profile, nil
}

// FindRole - легкий запрос для проверки прав на каждом привилегированном запросе
func (r *ProfileRepositoryImpl) FindRole(db *gorm.DB, id string) (models.UserRole, error) {
	var profile models.Profile
	err := db.Select("id", "role").First(&profile, "id = ?", id).Error
	if err != nil {
		return "", notFound(err, ErrProfileNotFound)
	}
	return profile.Role, nil
}

func (r *ProfileRepositoryImpl) Create(db *gorm.DB, profile *models.Profile) error {
	return db.Create(profile).Error
}

// Upsert обновляет поля онбординга, не трогая role и avatar_url
func (r *ProfileRepositoryImpl) Upsert(db *gorm.DB, profile *models.Profile) error {
	return db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"email", "full_name", "company_name", "company_stage", "industry",
			"location", "github_url", "karmagap_url", "bio", "updated_at",
		}),
	}).Create(profile).Error
}

func (r *ProfileRepositoryImpl) Update(db *gorm.DB, profile *models.Profile) error {
	return db.Model(profile).Select(
		"full_name", "company_name", "company_stage", "industry", "location",
		"github_url", "karmagap_url", "bio",
	).Updates(profile).Error
}

func (r *ProfileRepositoryImpl) UpdateAvatar(db *gorm.DB, id, avatarURL string) error {
	result := db.Model(&models.Profile{}).Where("id = ?", id).Update("avatar_url", avatarURL)
	return updatedOrMissing(db, result, &models.Profile{}, id, ErrProfileNotFound)
}

func (r *ProfileRepositoryImpl) ListAll(db *gorm.DB) ([]models.Profile, error) {
	var profiles []models.Profile
	err := db.Order("created_at DESC").Find(&profiles).Error
	return profiles, err
}

func (r *ProfileRepositoryImpl) Count(db *gorm.DB) (int64, error) {
	var count int64
	err := db.Model(&models.Profile{}).Count(&count).Error
	return count, err
}
