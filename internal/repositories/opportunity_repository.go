package repositories

import (
	"time"

	"celobuddy/internal/models"

	"gorm.io/gorm"
)

// FeedQuery - контракт запроса ленты
type FeedQuery struct {
	ExcludeProviderID string   // пусто - без исключения
	Categories        []string // пусто - без фильтра по категории
	Limit             int
}

// OpportunityFilter - фильтр админского списка
type OpportunityFilter struct {
	Category string
	Type     string
	IsActive *bool
	Search   string
	Page     int
	PageSize int
}

type OpportunityRepository interface {
	Create(db *gorm.DB, opp *models.Opportunity) error
	FindByID(db *gorm.DB, id string) (*models.Opportunity, error)
	FindByIDs(db *gorm.DB, ids []string) ([]models.Opportunity, error)
	FindFeed(db *gorm.DB, q FeedQuery) ([]models.Opportunity, error)
	FindWithFilter(db *gorm.DB, f OpportunityFilter) ([]models.Opportunity, int64, error)
	Update(db *gorm.DB, opp *models.Opportunity) error
	SetActive(db *gorm.DB, id string, active bool) error
	Delete(db *gorm.DB, id string) error
	ListAll(db *gorm.DB) ([]models.Opportunity, error)
	Count(db *gorm.DB, activeOnly bool) (int64, error)
	DeactivateExpired(db *gorm.DB, now time.Time) (int64, error)
}

type OpportunityRepositoryImpl struct{}

func NewOpportunityRepository() OpportunityRepository {
	return &OpportunityRepositoryImpl{}
}

func (r *OpportunityRepositoryImpl) Create(db *gorm.DB, opp *models.Opportunity) error {
	return db.Omit("Provider").Create(opp).Error
}

func (r *OpportunityRepositoryImpl) FindByID(db *gorm.DB, id string) (*models.Opportunity, error) {
	var opp models.Opportunity
	if err := db.Preload("Provider").First(&opp, "id = ?", id).Error; err != nil {
		return nil, notFound(err, ErrOpportunityNotFound)
	}
	return &opp, nil
}

// FindByIDs сохраняет порядок ids; отсутствующие записи пропускаются
func (r *OpportunityRepositoryImpl) FindByIDs(db *gorm.DB, ids []string) ([]models.Opportunity, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	var rows []models.Opportunity
	if err := db.Preload("Provider").Where("id IN ?", ids).Find(&rows).Error; err != nil {
		return nil, err
	}

	byID := make(map[string]models.Opportunity, len(rows))
	for _, o := range rows {
		byID[o.ID] = o
	}
	out := make([]models.Opportunity, 0, len(ids))
	for _, id := range ids {
		if o, ok := byID[id]; ok {
			out = append(out, o)
		}
	}
	return out, nil
}

// FindFeed: is_active, provider_id != founder, category IN (...) если категории есть,
// created_at DESC, limit
func (r *OpportunityRepositoryImpl) FindFeed(db *gorm.DB, q FeedQuery) ([]models.Opportunity, error) {
	query := db.Model(&models.Opportunity{}).
		Preload("Provider", func(tx *gorm.DB) *gorm.DB {
			return tx.Select("id", "full_name", "company_name", "avatar_url")
		}).
		Where("is_active = ?", true)

	if q.ExcludeProviderID != "" {
		query = query.Where("provider_id <> ?", q.ExcludeProviderID)
	}
	if len(q.Categories) > 0 {
		query = query.Where("category IN ?", q.Categories)
	}
	if q.Limit > 0 {
		query = query.Limit(q.Limit)
	}

	var opps []models.Opportunity
	err := query.Order("created_at DESC").Order("id DESC").Find(&opps).Error
	return opps, err
}

func (r *OpportunityRepositoryImpl) FindWithFilter(db *gorm.DB, f OpportunityFilter) ([]models.Opportunity, int64, error) {
	query := db.Model(&models.Opportunity{})

	if f.Category != "" {
		query = query.Where("category = ?", f.Category)
	}
	if f.Type != "" {
		query = query.Where("type = ?", f.Type)
	}
	if f.IsActive != nil {
		query = query.Where("is_active = ?", *f.IsActive)
	}
	if f.Search != "" {
		like := "%" + f.Search + "%"
		query = query.Where("title LIKE ? OR description LIKE ?", like, like)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if f.Page <= 0 {
		f.Page = 1
	}
	if f.PageSize <= 0 {
		f.PageSize = 20
	}

	var opps []models.Opportunity
	err := query.Preload("Provider").
		Order("created_at DESC").
		Offset((f.Page - 1) * f.PageSize).
		Limit(f.PageSize).
		Find(&opps).Error
	return opps, total, err
}

func (r *OpportunityRepositoryImpl) Update(db *gorm.DB, opp *models.Opportunity) error {
	return db.Model(opp).Select(
		"title", "description", "category", "type", "requirements", "benefits",
		"application_url", "source_url", "deadline", "contact_info", "is_active",
	).Updates(opp).Error
}

func (r *OpportunityRepositoryImpl) SetActive(db *gorm.DB, id string, active bool) error {
	result := db.Model(&models.Opportunity{}).Where("id = ?", id).Update("is_active", active)
	return updatedOrMissing(db, result, &models.Opportunity{}, id, ErrOpportunityNotFound)
}

func (r *OpportunityRepositoryImpl) Delete(db *gorm.DB, id string) error {
	result := db.Delete(&models.Opportunity{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrOpportunityNotFound
	}
	return nil
}

func (r *OpportunityRepositoryImpl) ListAll(db *gorm.DB) ([]models.Opportunity, error) {
	var opps []models.Opportunity
	err := db.Order("created_at DESC").Find(&opps).Error
	return opps, err
}

func (r *OpportunityRepositoryImpl) Count(db *gorm.DB, activeOnly bool) (int64, error) {
	var count int64
	query := db.Model(&models.Opportunity{})
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}
	err := query.Count(&count).Error
	return count, err
}

// DeactivateExpired снимает с публикации активные записи с прошедшим дедлайном
func (r *OpportunityRepositoryImpl) DeactivateExpired(db *gorm.DB, now time.Time) (int64, error) {
	result := db.Model(&models.Opportunity{}).
		Where("is_active = ? AND deadline IS NOT NULL AND deadline < ?", true, now).
		Update("is_active", false)
	return result.RowsAffected, result.Error
}
