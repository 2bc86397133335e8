package like

import (
	"time"
)

// Like : un acteur aime un post au plus une fois, l'index composite
// unique fait foi en cas de course.
type Like struct {
	ID        string    `json:"id" gorm:"primaryKey"`
	CreatedAt time.Time `json:"created_at"`
	UserID    string    `json:"user_id" gorm:"type:uuid;index;uniqueIndex:idx_like_pair"`
	PostID    string    `json:"post_id" gorm:"type:uuid;index;uniqueIndex:idx_like_pair"`
}

func (Like) TableName() string {
	return "likes"
}

type CommentLike struct {
	ID        string    `json:"id" gorm:"primaryKey"`
	CreatedAt time.Time `json:"created_at"`
	UserID    string    `json:"user_id" gorm:"type:uuid;index;uniqueIndex:idx_comment_like_pair"`
	CommentID string    `json:"comment_id" gorm:"type:uuid;index;uniqueIndex:idx_comment_like_pair"`
}

func (CommentLike) TableName() string {
	return "comment_likes"
}

// State : résultat d'un toggle.
type State string

const (
	Liked   State = "liked"
	Unliked State = "unliked"
)

type LikeResponse struct {
	PostID    string `json:"post_id"`
	LikeCount int64  `json:"like_count"`
	IsLiked   bool   `json:"is_liked"`
}
