// Package cascade garantit le nettoyage référentiel : un post, un
// commentaire ou un like ne survit jamais à son parent. Chaque
// suppression s'exécute dans une transaction unique, soit tout est
// appliqué, soit rien n'est visible.
package cascade

import (
	"gorm.io/gorm"

	"github.com/ArthurDelaporte/MiniTweet-Back/internal/apperr"
	"github.com/ArthurDelaporte/MiniTweet-Back/internal/database"
	"github.com/ArthurDelaporte/MiniTweet-Back/internal/follow"
	"github.com/ArthurDelaporte/MiniTweet-Back/internal/like"
	"github.com/ArthurDelaporte/MiniTweet-Back/internal/post"
	"github.com/ArthurDelaporte/MiniTweet-Back/internal/user"
)

// DeleteComment supprime un commentaire et ses likes.
func DeleteComment(commentID string) error {
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		return deleteCommentTx(tx, commentID)
	})
	if err != nil {
		return apperr.Wrap(apperr.ErrStorage, err.Error())
	}
	return nil
}

// DeletePost supprime un post, ses commentaires (et leurs likes) et ses
// likes.
func DeletePost(postID string) error {
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		return deletePostTx(tx, postID)
	})
	if err != nil {
		return apperr.Wrap(apperr.ErrStorage, err.Error())
	}
	return nil
}

// DeleteUser supprime un compte et tout ce qui s'y rattache : ses
// likes, ses commentaires, ses posts (avec leur propre cascade), les
// arêtes de suivi qui le mentionnent, puis l'utilisateur lui-même.
func DeleteUser(userID string) error {
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		// Engagement de l'utilisateur
		if err := tx.Where("user_id = ?", userID).Delete(&like.Like{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", userID).Delete(&like.CommentLike{}).Error; err != nil {
			return err
		}

		// Ses commentaires sur les posts des autres
		var commentIDs []string
		if err := tx.Model(&post.Comment{}).Where("user_id = ?", userID).
			Pluck("id", &commentIDs).Error; err != nil {
			return err
		}
		if len(commentIDs) > 0 {
			if err := tx.Where("comment_id IN ?", commentIDs).Delete(&like.CommentLike{}).Error; err != nil {
				return err
			}
			if err := tx.Where("id IN ?", commentIDs).Delete(&post.Comment{}).Error; err != nil {
				return err
			}
		}

		// Ses posts, avec la cascade complète de chacun
		var postIDs []string
		if err := tx.Model(&post.Post{}).Where("user_id = ?", userID).
			Pluck("id", &postIDs).Error; err != nil {
			return err
		}
		for _, id := range postIDs {
			if err := deletePostTx(tx, id); err != nil {
				return err
			}
		}

		// Arêtes de suivi dans les deux sens
		if err := tx.Where("follower_id = ? OR followed_id = ?", userID, userID).
			Delete(&follow.Follow{}).Error; err != nil {
			return err
		}

		return tx.Where("id = ?", userID).Delete(&user.User{}).Error
	})
	if err != nil {
		return apperr.Wrap(apperr.ErrStorage, err.Error())
	}
	return nil
}

func deletePostTx(tx *gorm.DB, postID string) error {
	var commentIDs []string
	if err := tx.Model(&post.Comment{}).Where("post_id = ?", postID).
		Pluck("id", &commentIDs).Error; err != nil {
		return err
	}
	if len(commentIDs) > 0 {
		if err := tx.Where("comment_id IN ?", commentIDs).Delete(&like.CommentLike{}).Error; err != nil {
			return err
		}
	}
	if err := tx.Where("post_id = ?", postID).Delete(&post.Comment{}).Error; err != nil {
		return err
	}
	if err := tx.Where("post_id = ?", postID).Delete(&like.Like{}).Error; err != nil {
		return err
	}
	return tx.Where("id = ?", postID).Delete(&post.Post{}).Error
}

func deleteCommentTx(tx *gorm.DB, commentID string) error {
	if err := tx.Where("comment_id = ?", commentID).Delete(&like.CommentLike{}).Error; err != nil {
		return err
	}
	return tx.Where("id = ?", commentID).Delete(&post.Comment{}).Error
}
