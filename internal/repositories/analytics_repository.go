package repositories

import (
	"time"

	"celobuddy/internal/models"

	"gorm.io/gorm"
)

// Снимки - только колонки, нужные для агрегатов

type ProfileSnapshot struct {
	ID           string
	CompanyStage string
	Industry     string
	Location     string
	CreatedAt    time.Time
}

type OpportunitySnapshot struct {
	ID        string
	Category  string
	Type      string
	IsActive  bool
	CreatedAt time.Time
}

type NeedSnapshot struct {
	ID        string
	Category  string
	Urgency   string
	IsActive  bool
	CreatedAt time.Time
}

type MatchSnapshot struct {
	ID        string
	Status    string
	CreatedAt time.Time
}

type FeedbackSnapshot struct {
	ID        string
	Type      string
	Rating    *int
	CreatedAt time.Time
}

type AnalyticsRepository interface {
	ProfileSnapshots(db *gorm.DB) ([]ProfileSnapshot, error)
	OpportunitySnapshots(db *gorm.DB) ([]OpportunitySnapshot, error)
	NeedSnapshots(db *gorm.DB) ([]NeedSnapshot, error)
	MatchSnapshots(db *gorm.DB) ([]MatchSnapshot, error)
	FeedbackSnapshots(db *gorm.DB) ([]FeedbackSnapshot, error)
	OpportunityCategoryCounts(db *gorm.DB) (map[string]int64, error)
}

type AnalyticsRepositoryImpl struct{}

func NewAnalyticsRepository() AnalyticsRepository {
	return &AnalyticsRepositoryImpl{}
}

func (r *AnalyticsRepositoryImpl) ProfileSnapshots(db *gorm.DB) ([]ProfileSnapshot, error) {
	var rows []ProfileSnapshot
	err := db.Model(&models.Profile{}).
		Select("id", "company_stage", "industry", "location", "created_at").
		Scan(&rows).Error
	return rows, err
}

func (r *AnalyticsRepositoryImpl) OpportunitySnapshots(db *gorm.DB) ([]OpportunitySnapshot, error) {
	var rows []OpportunitySnapshot
	err := db.Model(&models.Opportunity{}).
		Select("id", "category", "type", "is_active", "created_at").
		Scan(&rows).Error
	return rows, err
}

func (r *AnalyticsRepositoryImpl) NeedSnapshots(db *gorm.DB) ([]NeedSnapshot, error) {
	var rows []NeedSnapshot
	err := db.Model(&models.Need{}).
		Select("id", "category", "urgency", "is_active", "created_at").
		Scan(&rows).Error
	return rows, err
}

func (r *AnalyticsRepositoryImpl) MatchSnapshots(db *gorm.DB) ([]MatchSnapshot, error) {
	var rows []MatchSnapshot
	err := db.Model(&models.Match{}).
		Select("id", "status", "created_at").
		Scan(&rows).Error
	return rows, err
}

func (r *AnalyticsRepositoryImpl) FeedbackSnapshots(db *gorm.DB) ([]FeedbackSnapshot, error) {
	var rows []FeedbackSnapshot
	err := db.Model(&models.Feedback{}).
		Select("id", "type", "rating", "created_at").
		Scan(&rows).Error
	return rows, err
}

func (r *AnalyticsRepositoryImpl) OpportunityCategoryCounts(db *gorm.DB) (map[string]int64, error) {
	type row struct {
		Category string
		Total    int64
	}
	var rows []row
	err := db.Model(&models.Opportunity{}).
		Select("category, COUNT(*) AS total").
		Group("category").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int64, len(rows))
	for _, r := range rows {
		counts[r.Category] = r.Total
	}
	return counts, nil
}
