package like

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/ArthurDelaporte/MiniTweet-Back/internal/apperr"
	"github.com/ArthurDelaporte/MiniTweet-Back/internal/database"
)

// TogglePost inverse la présence du like (userID, postID) : présent il
// est retiré, absent il est créé. Si deux toggles concurrents se
// croisent, l'index unique tranche et la violation d'unicité est lue
// comme « déjà liké », jamais comme une erreur.
func TogglePost(userID, postID string) (State, error) {
	var postCount int64
	if err := database.DB.Table("posts").Where("id = ?", postID).Count(&postCount).Error; err != nil {
		return "", apperr.Wrap(apperr.ErrStorage, err.Error())
	}
	if postCount == 0 {
		return "", apperr.Wrap(apperr.ErrNotFound, "post introuvable")
	}

	var existing Like
	err := database.DB.Where("user_id = ? AND post_id = ?", userID, postID).First(&existing).Error

	if err == nil {
		if err := database.DB.Delete(&existing).Error; err != nil {
			return "", apperr.Wrap(apperr.ErrStorage, err.Error())
		}
		return Unliked, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return "", apperr.Wrap(apperr.ErrStorage, err.Error())
	}

	newLike := Like{
		ID:        uuid.New().String(),
		CreatedAt: time.Now(),
		UserID:    userID,
		PostID:    postID,
	}
	if err := database.DB.Create(&newLike).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			// Un toggle concurrent a gagné la course, l'état vrai est « liké »
			return Liked, nil
		}
		return "", apperr.Wrap(apperr.ErrStorage, err.Error())
	}
	return Liked, nil
}

// ToggleComment : même contrat que TogglePost pour les commentaires.
func ToggleComment(userID, commentID string) (State, error) {
	var commentCount int64
	if err := database.DB.Table("comments").Where("id = ?", commentID).Count(&commentCount).Error; err != nil {
		return "", apperr.Wrap(apperr.ErrStorage, err.Error())
	}
	if commentCount == 0 {
		return "", apperr.Wrap(apperr.ErrNotFound, "commentaire introuvable")
	}

	var existing CommentLike
	err := database.DB.Where("user_id = ? AND comment_id = ?", userID, commentID).First(&existing).Error

	if err == nil {
		if err := database.DB.Delete(&existing).Error; err != nil {
			return "", apperr.Wrap(apperr.ErrStorage, err.Error())
		}
		return Unliked, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return "", apperr.Wrap(apperr.ErrStorage, err.Error())
	}

	newLike := CommentLike{
		ID:        uuid.New().String(),
		CreatedAt: time.Now(),
		UserID:    userID,
		CommentID: commentID,
	}
	if err := database.DB.Create(&newLike).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return Liked, nil
		}
		return "", apperr.Wrap(apperr.ErrStorage, err.Error())
	}
	return Liked, nil
}

// LikedPostIDs : l'ensemble des posts likés par un utilisateur, calculé
// une fois par page pour annoter sans requête par élément.
func LikedPostIDs(userID string) (map[string]bool, error) {
	var ids []string
	if err := database.DB.Model(&Like{}).
		Where("user_id = ?", userID).
		Pluck("post_id", &ids).Error; err != nil {
		return nil, apperr.Wrap(apperr.ErrStorage, err.Error())
	}
	set := make(map[string]bool, len(ids))
	for _, id := range ids {
		set[id] = true
	}
	return set, nil
}

func LikedCommentIDs(userID string) (map[string]bool, error) {
	var ids []string
	if err := database.DB.Model(&CommentLike{}).
		Where("user_id = ?", userID).
		Pluck("comment_id", &ids).Error; err != nil {
		return nil, apperr.Wrap(apperr.ErrStorage, err.Error())
	}
	set := make(map[string]bool, len(ids))
	for _, id := range ids {
		set[id] = true
	}
	return set, nil
}

// CountsForPosts : nombre de likes par post pour un lot d'ids, en une
// seule requête groupée.
func CountsForPosts(postIDs []string) (map[string]int64, error) {
	counts := make(map[string]int64, len(postIDs))
	if len(postIDs) == 0 {
		return counts, nil
	}

	var rows []struct {
		PostID string
		Total  int64
	}
	if err := database.DB.Model(&Like{}).
		Select("post_id, COUNT(*) as total").
		Where("post_id IN ?", postIDs).
		Group("post_id").
		Find(&rows).Error; err != nil {
		return nil, apperr.Wrap(apperr.ErrStorage, err.Error())
	}
	for _, r := range rows {
		counts[r.PostID] = r.Total
	}
	return counts, nil
}

// StatusForPost : compteur + état « liké » du viewer pour un post.
func StatusForPost(postID, userID string) LikeResponse {
	var likeCount int64
	database.DB.Model(&Like{}).Where("post_id = ?", postID).Count(&likeCount)

	var isLiked bool
	if userID != "" {
		var existing Like
		err := database.DB.Where("user_id = ? AND post_id = ?", userID, postID).First(&existing).Error
		isLiked = (err == nil)
	}

	return LikeResponse{
		PostID:    postID,
		LikeCount: likeCount,
		IsLiked:   isLiked,
	}
}
