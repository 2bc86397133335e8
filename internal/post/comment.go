package post

import (
	"time"
)

type Comment struct {
	ID        string    `json:"id" gorm:"primaryKey"`
	CreatedAt time.Time `json:"created_at"`
	PostID    string    `json:"post_id" gorm:"type:uuid;index"`
	UserID    string    `json:"user_id" gorm:"type:uuid;index"`
	Content   string    `json:"text" gorm:"column:content"`
}

func (Comment) TableName() string {
	return "comments"
}
