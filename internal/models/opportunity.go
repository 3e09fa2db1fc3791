package models

import (
	"time"

	"gorm.io/datatypes"
)

// PlaceholderProviderID - провайдер для записей, созданных через публичный API
const PlaceholderProviderID = "00000000-0000-0000-0000-000000000000"

type Opportunity struct {
	BaseModel
	ProviderID     string         `gorm:"type:varchar(36);not null;index" json:"provider_id"`
	CreatedBy      string         `gorm:"type:varchar(36)" json:"created_by,omitempty"`
	Title          string         `gorm:"not null" json:"title"`
	Description    string         `gorm:"type:text" json:"description"`
	Category       string         `gorm:"type:varchar(30);not null;index" json:"category"`
	Type           string         `gorm:"type:varchar(30)" json:"type"`
	Requirements   StringList     `json:"requirements"`
	Benefits       StringList     `json:"benefits"`
	ApplicationURL string         `json:"application_url,omitempty"`
	SourceURL      string         `json:"source_url,omitempty"`
	Deadline       *time.Time     `json:"deadline,omitempty"`
	ContactInfo    datatypes.JSON `json:"contact_info,omitempty"`
	IsActive       bool           `gorm:"not null;index" json:"is_active"`

	// Relations
	Provider *Profile `gorm:"foreignKey:ProviderID" json:"provider,omitempty"`
}
