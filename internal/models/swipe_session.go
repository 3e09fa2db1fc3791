package models

// SwipeSession - снимок ленты и курсор по нему.
// Курсор только растет, запись идет через compare-and-set.
type SwipeSession struct {
	BaseModel
	UserID         string     `gorm:"type:varchar(36);not null;index" json:"user_id"`
	OpportunityIDs StringList `json:"opportunity_ids"`
	Cursor         int        `gorm:"column:cursor_pos;not null" json:"cursor"`
}
