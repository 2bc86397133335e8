package follow

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ArthurDelaporte/MiniTweet-Back/internal/apperr"
	"github.com/ArthurDelaporte/MiniTweet-Back/internal/database"
	"github.com/ArthurDelaporte/MiniTweet-Back/internal/logs"
	"github.com/ArthurDelaporte/MiniTweet-Back/internal/user"
)

// FollowUser POST /api/follow/:id
func FollowUser(c *gin.Context) {
	route := c.FullPath()

	followerID := c.GetString("user_id")
	followedID := c.Param("id")

	// L'utilisateur ciblé doit exister
	if _, err := user.FindByID(followedID); err != nil {
		c.JSON(apperr.HTTPStatus(err), gin.H{"error": "Utilisateur non trouvé"})
		logs.LogJSON("WARN", "Followed user not found", map[string]interface{}{
			"route":  route,
			"userID": followerID,
			"extra":  fmt.Sprintf("followedID : %s", followedID),
		})
		return
	}

	if err := Create(followerID, followedID); err != nil {
		c.JSON(apperr.HTTPStatus(err), gin.H{"error": err.Error()})
		logs.LogJSON("WARN", "Error adding follow", map[string]interface{}{
			"error":  err.Error(),
			"route":  route,
			"userID": followerID,
			"extra":  fmt.Sprintf("followedID : %s", followedID),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Utilisateur suivi"})
	logs.LogJSON("INFO", "Followed user", map[string]interface{}{
		"route":  route,
		"userID": followerID,
		"extra":  fmt.Sprintf("followedID : %s", followedID),
	})
}

// UnfollowUser DELETE /api/follow/:id
func UnfollowUser(c *gin.Context) {
	route := c.FullPath()

	followerID := c.GetString("user_id")
	followedID := c.Param("id")

	if err := Delete(followerID, followedID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur unfollow"})
		logs.LogJSON("ERROR", "Error unfollow", map[string]interface{}{
			"error":  err.Error(),
			"route":  route,
			"userID": followerID,
			"extra":  fmt.Sprintf("followedID : %s", followedID),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Utilisateur unfollow"})
	logs.LogJSON("INFO", "User unfollow", map[string]interface{}{
		"route":  route,
		"userID": followerID,
		"extra":  fmt.Sprintf("followedID : %s", followedID),
	})
}

// GetFollowing GET /api/following
func GetFollowing(c *gin.Context) {
	route := c.FullPath()

	followerID := c.GetString("user_id")

	ids, err := FollowedIDs(followerID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur récupération des suivis"})
		logs.LogJSON("ERROR", "Error retrieving followed users", map[string]interface{}{
			"error":  err.Error(),
			"route":  route,
			"userID": followerID,
		})
		return
	}

	var usersFollowed []user.User
	if len(ids) > 0 {
		if err := database.DB.Where("id IN ?", ids).Find(&usersFollowed).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur récupération des utilisateurs suivis"})
			logs.LogJSON("ERROR", "Error retrieving followed users", map[string]interface{}{
				"error":  err.Error(),
				"route":  route,
				"userID": followerID,
			})
			return
		}
	}

	count, err := FollowingCount(followerID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur récupération des suivis"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"following": usersFollowed, "count": count})
}

// GetFollowers GET /api/followers/:id
func GetFollowers(c *gin.Context) {
	route := c.FullPath()

	userID := c.Param("id")

	var follows []Follow
	if err := database.DB.
		Where("followed_id = ?", userID).
		Find(&follows).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur récupération followers"})
		logs.LogJSON("ERROR", "Error recovery followers", map[string]interface{}{
			"error":  err.Error(),
			"route":  route,
			"userID": userID,
		})
		return
	}

	var ids []string
	for _, f := range follows {
		ids = append(ids, f.FollowerID)
	}

	var followers []user.User
	if len(ids) > 0 {
		if err := database.DB.Where("id IN ?", ids).Find(&followers).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur récupération des utilisateurs followers"})
			logs.LogJSON("ERROR", "Error recovering followers", map[string]interface{}{
				"error":  err.Error(),
				"route":  route,
				"userID": userID,
			})
			return
		}
	}

	count, err := FollowerCount(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur récupération followers"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"followers": followers, "count": count})
}
