package models

type Feedback struct {
	BaseModel
	UserID   string       `gorm:"type:varchar(36);not null;index" json:"user_id"`
	Type     FeedbackType `gorm:"type:varchar(20);not null" json:"type"`
	Category string       `json:"category,omitempty"`
	Message  string       `gorm:"type:text;not null" json:"message"`
	Rating   *int         `json:"rating,omitempty"`
	MatchID  *string      `gorm:"type:varchar(36)" json:"match_id,omitempty"`
}

func (Feedback) TableName() string {
	return "feedback"
}
