package like

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ArthurDelaporte/MiniTweet-Back/internal/apperr"
	"github.com/ArthurDelaporte/MiniTweet-Back/internal/database"
	"github.com/ArthurDelaporte/MiniTweet-Back/internal/logs"
)

// ToggleLike POST /api/posts/:id/like
func ToggleLike(c *gin.Context) {
	route := c.FullPath()
	userID := c.GetString("user_id")
	postID := c.Param("id")

	state, err := TogglePost(userID, postID)
	if err != nil {
		c.JSON(apperr.HTTPStatus(err), gin.H{"error": err.Error()})
		logs.LogJSON("WARN", "Error toggling like", map[string]interface{}{
			"error":  err.Error(),
			"route":  route,
			"userID": userID,
			"postID": postID,
		})
		return
	}

	response := StatusForPost(postID, userID)
	c.JSON(http.StatusOK, gin.H{"state": state, "likes": response})
	logs.LogJSON("INFO", "Like toggled", map[string]interface{}{
		"route":  route,
		"userID": userID,
		"postID": postID,
		"extra":  string(state),
	})
}

// GetLikeStatus GET /api/posts/:id/likes
func GetLikeStatus(c *gin.Context) {
	route := c.FullPath()
	postID := c.Param("id")
	userID := c.GetString("user_id") // Peut être vide si non connecté

	var postCount int64
	if err := database.DB.Table("posts").Where("id = ?", postID).Count(&postCount).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur de base de données"})
		logs.LogJSON("ERROR", "Database error", map[string]interface{}{
			"error":  err.Error(),
			"route":  route,
			"userID": userID,
			"postID": postID,
		})
		return
	}
	if postCount == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Post non trouvé"})
		return
	}

	c.JSON(http.StatusOK, StatusForPost(postID, userID))
}

// ToggleCommentLike POST /api/comments/:id/like
func ToggleCommentLike(c *gin.Context) {
	route := c.FullPath()
	userID := c.GetString("user_id")
	commentID := c.Param("id")

	state, err := ToggleComment(userID, commentID)
	if err != nil {
		c.JSON(apperr.HTTPStatus(err), gin.H{"error": err.Error()})
		logs.LogJSON("WARN", "Error toggling comment like", map[string]interface{}{
			"error":     err.Error(),
			"route":     route,
			"userID":    userID,
			"commentID": commentID,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"state": state})
	logs.LogJSON("INFO", "Comment like toggled", map[string]interface{}{
		"route":     route,
		"userID":    userID,
		"commentID": commentID,
		"extra":     string(state),
	})
}
