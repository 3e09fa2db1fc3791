package models

// User - учетные данные. Профиль живет отдельно с тем же ID.
type User struct {
	BaseModel
	Email        string `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"not null" json:"-"`
}
