package models

// EmailSubscription - подписка с результатов чат-онбординга
type EmailSubscription struct {
	BaseModel
	Email        string     `gorm:"type:varchar(255);not null;index" json:"email"`
	Interests    StringList `json:"interests"`
	ProjectName  string     `json:"project_name,omitempty"`
	ProjectStage string     `json:"project_stage,omitempty"`
	IsActive     bool       `gorm:"not null" json:"is_active"`
}
