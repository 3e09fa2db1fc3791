package models

// Match - интерес основателя к возможности в рамках одной из его потребностей.
// Уникальность (need, opportunity) намеренно не навязывается.
type Match struct {
	BaseModel
	NeedID        string      `gorm:"type:varchar(36);not null;index" json:"need_id"`
	OpportunityID string      `gorm:"type:varchar(36);not null;index" json:"opportunity_id"`
	RequesterID   string      `gorm:"type:varchar(36);not null;index" json:"requester_id"`
	ProviderID    string      `gorm:"type:varchar(36);not null;index" json:"provider_id"`
	Status        MatchStatus `gorm:"type:varchar(20);not null;index" json:"status"`

	// Relations
	Need        *Need        `gorm:"foreignKey:NeedID" json:"need,omitempty"`
	Opportunity *Opportunity `gorm:"foreignKey:OpportunityID" json:"opportunity,omitempty"`
}
