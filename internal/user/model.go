package user

import "time"

const MaxBioLength = 300

type User struct {
	ID           string `gorm:"primaryKey"`
	CreatedAt    time.Time
	Username     string `gorm:"uniqueIndex"`
	Email        string `gorm:"uniqueIndex"`
	DisplayName  string
	Bio          string
	PasswordHash string `json:"-"`
}
