package models

type Need struct {
	BaseModel
	UserID       string       `gorm:"type:varchar(36);not null;index" json:"user_id"`
	Title        string       `gorm:"not null" json:"title"`
	Description  string       `gorm:"type:text" json:"description"`
	Category     NeedCategory `gorm:"type:varchar(20);not null;index" json:"category"`
	Urgency      Urgency      `gorm:"type:varchar(20);not null" json:"urgency"`
	BudgetRange  string       `json:"budget_range,omitempty"`
	Timeline     string       `json:"timeline,omitempty"`
	SkillsNeeded StringList   `json:"skills_needed,omitempty"`
	IsActive     bool         `gorm:"not null;index" json:"is_active"`
}
