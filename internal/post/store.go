package post

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/ArthurDelaporte/MiniTweet-Back/internal/apperr"
	"github.com/ArthurDelaporte/MiniTweet-Back/internal/database"
)

func validateContent(text string) (string, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return "", apperr.Wrap(apperr.ErrValidation, "le contenu est vide")
	}
	if len(text) > MaxContentLength {
		return "", apperr.Wrapf(apperr.ErrValidation, "contenu limité à %d caractères", MaxContentLength)
	}
	return text, nil
}

func Create(authorID, text string) (*Post, error) {
	content, err := validateContent(text)
	if err != nil {
		return nil, err
	}

	newPost := Post{
		ID:        uuid.New().String(),
		CreatedAt: time.Now(),
		UserID:    authorID,
		Content:   content,
	}

	if err := database.DB.Create(&newPost).Error; err != nil {
		return nil, apperr.Wrap(apperr.ErrStorage, err.Error())
	}
	return &newPost, nil
}

func GetByID(postID string) (*Post, error) {
	var p Post
	if err := database.DB.First(&p, "id = ?", postID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.Wrap(apperr.ErrNotFound, "post introuvable")
		}
		return nil, apperr.Wrap(apperr.ErrStorage, err.Error())
	}
	return &p, nil
}

// ByAuthor liste les posts d'un auteur du plus récent au plus ancien.
// L'égalité de date est départagée par id croissant pour garder un
// ordre total stable.
func ByAuthor(authorID string) ([]Post, error) {
	var posts []Post
	if err := database.DB.
		Where("user_id = ?", authorID).
		Order("created_at DESC, id ASC").
		Find(&posts).Error; err != nil {
		return nil, apperr.Wrap(apperr.ErrStorage, err.Error())
	}
	return posts, nil
}

func AddComment(postID, authorID, text string) (*Comment, error) {
	content, err := validateContent(text)
	if err != nil {
		return nil, err
	}

	if _, err := GetByID(postID); err != nil {
		return nil, err
	}

	comment := Comment{
		ID:        uuid.New().String(),
		CreatedAt: time.Now(),
		PostID:    postID,
		UserID:    authorID,
		Content:   content,
	}

	if err := database.DB.Create(&comment).Error; err != nil {
		return nil, apperr.Wrap(apperr.ErrStorage, err.Error())
	}
	return &comment, nil
}

func GetCommentByID(commentID string) (*Comment, error) {
	var comment Comment
	if err := database.DB.First(&comment, "id = ?", commentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.Wrap(apperr.ErrNotFound, "commentaire introuvable")
		}
		return nil, apperr.Wrap(apperr.ErrStorage, err.Error())
	}
	return &comment, nil
}

func CommentsByPost(postID string) ([]Comment, error) {
	var comments []Comment
	if err := database.DB.
		Where("post_id = ?", postID).
		Order("created_at DESC, id ASC").
		Find(&comments).Error; err != nil {
		return nil, apperr.Wrap(apperr.ErrStorage, err.Error())
	}
	return comments, nil
}
