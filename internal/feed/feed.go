package feed

import (
	"time"

	"github.com/ArthurDelaporte/MiniTweet-Back/internal/apperr"
	"github.com/ArthurDelaporte/MiniTweet-Back/internal/database"
	"github.com/ArthurDelaporte/MiniTweet-Back/internal/follow"
	"github.com/ArthurDelaporte/MiniTweet-Back/internal/like"
	"github.com/ArthurDelaporte/MiniTweet-Back/internal/post"
)

const DefaultPageSize = 20

// Item : un post du fil, annoté de l'état d'engagement du viewer.
type Item struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UserID    string    `json:"user_id"`
	Content   string    `json:"content"`
	LikeCount int64     `json:"like_count"`
	IsLiked   bool      `json:"is_liked"`
}

// Assemble construit la page demandée du fil du viewer : les posts des
// auteurs suivis, du plus récent au plus ancien (égalité départagée par
// id croissant). Un viewer qui ne suit personne reçoit une page vide
// sans aucun scan de la table des posts. L'ensemble des posts likés par
// le viewer et les compteurs de likes sont calculés une fois par page.
func Assemble(viewerID string, offset, pageSize int) ([]Item, bool, error) {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}

	followed, err := follow.FollowedIDs(viewerID)
	if err != nil {
		return nil, false, err
	}
	if len(followed) == 0 {
		return []Item{}, false, nil
	}

	var total int64
	if err := database.DB.Model(&post.Post{}).
		Where("user_id IN ?", followed).
		Count(&total).Error; err != nil {
		return nil, false, apperr.Wrap(apperr.ErrStorage, err.Error())
	}

	var posts []post.Post
	if err := database.DB.
		Where("user_id IN ?", followed).
		Order("created_at DESC, id ASC").
		Offset(offset).
		Limit(pageSize).
		Find(&posts).Error; err != nil {
		return nil, false, apperr.Wrap(apperr.ErrStorage, err.Error())
	}

	liked, err := like.LikedPostIDs(viewerID)
	if err != nil {
		return nil, false, err
	}

	postIDs := make([]string, 0, len(posts))
	for _, p := range posts {
		postIDs = append(postIDs, p.ID)
	}
	counts, err := like.CountsForPosts(postIDs)
	if err != nil {
		return nil, false, err
	}

	items := make([]Item, 0, len(posts))
	for _, p := range posts {
		items = append(items, Item{
			ID:        p.ID,
			CreatedAt: p.CreatedAt,
			UserID:    p.UserID,
			Content:   p.Content,
			LikeCount: counts[p.ID],
			IsLiked:   liked[p.ID],
		})
	}

	hasMore := int64(offset+pageSize) < total
	return items, hasMore, nil
}
