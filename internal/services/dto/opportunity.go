package dto

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"celobuddy/internal/models"
)

// OpportunityRequest - тело создания/редактирования возможности
type OpportunityRequest struct {
	Title          string          `json:"title" validate:"required,max=200"`
	Description    string          `json:"description" validate:"required"`
	Category       string          `json:"category" validate:"required,opportunity-category"`
	Type           string          `json:"type" validate:"required,opportunity-type"`
	Requirements   []string        `json:"requirements"`
	Benefits       []string        `json:"benefits"`
	ApplicationURL string          `json:"application_url" validate:"omitempty,url"`
	SourceURL      string          `json:"source_url" validate:"omitempty,url"`
	Deadline       OptionalDate    `json:"deadline" swaggertype:"string" example:"2025-12-31"`
	ContactInfo    json.RawMessage `json:"contact_info" swaggertype:"object"`
	IsActive       *bool           `json:"is_active"`
}

// OpportunityListRequest - фильтр админского списка
type OpportunityListRequest struct {
	Category string `form:"category"`
	Type     string `form:"type"`
	IsActive *bool  `form:"is_active"`
	Search   string `form:"search" validate:"omitempty,max=100"`
}

// OpportunityListResponse - страница возможностей
type OpportunityListResponse struct {
	Opportunities []models.Opportunity `json:"opportunities"`
	Total         int64                `json:"total"`
	Page          int                  `json:"page"`
	PageSize      int                  `json:"page_size"`
	TotalPages    int                  `json:"total_pages"`
}

// OptionalDate принимает null, "", YYYY-MM-DD и RFC3339.
// Пустая строка означает "без дедлайна".
type OptionalDate struct {
	Time *time.Time
}

var optionalDateLayouts = []string{time.RFC3339Nano, "2006-01-02T15:04:05", "2006-01-02"}

func (d *OptionalDate) UnmarshalJSON(data []byte) error {
	d.Time = nil
	if string(data) == "null" {
		return nil
	}

	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("date must be a string: %w", err)
	}
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}

	for _, layout := range optionalDateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			t = t.UTC()
			d.Time = &t
			return nil
		}
	}
	return fmt.Errorf("invalid date %q: expected YYYY-MM-DD or RFC3339", raw)
}

func (d OptionalDate) MarshalJSON() ([]byte, error) {
	if d.Time == nil {
		return []byte("null"), nil
	}
	return json.Marshal(d.Time.Format(time.RFC3339))
}
