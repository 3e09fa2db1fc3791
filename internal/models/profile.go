package models

import "time"

// Profile - одна запись на пользователя, ID совпадает с User.ID
type Profile struct {
	ID           string       `gorm:"type:varchar(36);primaryKey" json:"id"`
	Email        string       `gorm:"type:varchar(255)" json:"email"`
	FullName     string       `json:"full_name"`
	CompanyName  string       `json:"company_name"`
	CompanyStage CompanyStage `gorm:"type:varchar(20)" json:"company_stage"`
	Industry     string       `json:"industry"`
	Location     string       `json:"location"`
	Role         UserRole     `gorm:"type:varchar(20);not null;default:'user'" json:"role"`
	GithubURL    string       `json:"github_url"`
	KarmaGapURL  string       `json:"karmagap_url"`
	Bio          string       `gorm:"type:text" json:"bio"`
	AvatarURL    string       `json:"avatar_url"`
	CreatedAt    time.Time    `gorm:"autoCreateTime;index" json:"created_at"`
	UpdatedAt    time.Time    `gorm:"autoUpdateTime" json:"updated_at"`
}

// IsComplete - условие доступа к дашборду
func (p *Profile) IsComplete() bool {
	return p != nil && p.CompanyName != "" && p.CompanyStage != ""
}

func (p *Profile) IsAdmin() bool {
	return p != nil && p.Role == UserRoleAdmin
}
