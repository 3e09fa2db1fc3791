package models

import "time"

// OnboardingState - серверная запись шага визарда
type OnboardingState struct {
	UserID    string    `gorm:"type:varchar(36);primaryKey" json:"user_id"`
	Step      string    `gorm:"type:varchar(20);not null" json:"step"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}
