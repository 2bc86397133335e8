package follow

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/ArthurDelaporte/MiniTweet-Back/internal/apperr"
	"github.com/ArthurDelaporte/MiniTweet-Back/internal/database"
)

// Create ajoute l'arête follower -> followed. Se suivre soi-même est
// refusé ; suivre quelqu'un qu'on suit déjà est un no-op, jamais une
// erreur. En cas de course sur l'insertion, l'index unique tranche et
// le doublon est absorbé.
func Create(followerID, followedID string) error {
	if followerID == followedID {
		return apperr.Wrap(apperr.ErrValidation, "impossible de se suivre soi-même")
	}

	exists, err := IsFollowing(followerID, followedID)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}

	newFollow := Follow{
		ID:         uuid.New().String(),
		CreatedAt:  time.Now(),
		FollowerID: followerID,
		FollowedID: followedID,
	}

	if err := database.DB.Create(&newFollow).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil
		}
		return apperr.Wrap(apperr.ErrStorage, err.Error())
	}
	return nil
}

// Delete retire l'arête ; absente, l'appel est un no-op.
func Delete(followerID, followedID string) error {
	if err := database.DB.
		Where("follower_id = ? AND followed_id = ?", followerID, followedID).
		Delete(&Follow{}).Error; err != nil {
		return apperr.Wrap(apperr.ErrStorage, err.Error())
	}
	return nil
}

func IsFollowing(followerID, followedID string) (bool, error) {
	var f Follow
	err := database.DB.
		Where("follower_id = ? AND followed_id = ?", followerID, followedID).
		First(&f).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, apperr.Wrap(apperr.ErrStorage, err.Error())
	}
	return true, nil
}

// FollowedIDs liste les ids suivis par followerID (entrée du feed).
func FollowedIDs(followerID string) ([]string, error) {
	var ids []string
	if err := database.DB.Model(&Follow{}).
		Where("follower_id = ?", followerID).
		Pluck("followed_id", &ids).Error; err != nil {
		return nil, apperr.Wrap(apperr.ErrStorage, err.Error())
	}
	return ids, nil
}

func FollowerCount(userID string) (int64, error) {
	var count int64
	if err := database.DB.Model(&Follow{}).
		Where("followed_id = ?", userID).
		Count(&count).Error; err != nil {
		return 0, apperr.Wrap(apperr.ErrStorage, err.Error())
	}
	return count, nil
}

func FollowingCount(userID string) (int64, error) {
	var count int64
	if err := database.DB.Model(&Follow{}).
		Where("follower_id = ?", userID).
		Count(&count).Error; err != nil {
		return 0, apperr.Wrap(apperr.ErrStorage, err.Error())
	}
	return count, nil
}
