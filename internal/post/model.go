package post

import (
	"time"
)

// MaxContentLength borne le texte d'un post comme d'un commentaire.
const MaxContentLength = 500

type Post struct {
	ID        string    `json:"id" gorm:"primaryKey"`
	CreatedAt time.Time `json:"created_at" gorm:"index"`
	UserID    string    `json:"user_id" gorm:"type:uuid;index"`
	Content   string    `json:"content"`
}

func (Post) TableName() string {
	return "posts"
}
