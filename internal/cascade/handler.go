package cascade

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ArthurDelaporte/MiniTweet-Back/internal/apperr"
	"github.com/ArthurDelaporte/MiniTweet-Back/internal/logs"
	"github.com/ArthurDelaporte/MiniTweet-Back/internal/post"
)

// DeleteMyAccount DELETE /api/me
func DeleteMyAccount(c *gin.Context) {
	route := c.FullPath()
	userID := c.GetString("user_id")

	if err := DeleteUser(userID); err != nil {
		c.JSON(apperr.HTTPStatus(err), gin.H{"error": "Erreur lors de la suppression du compte"})
		logs.LogJSON("ERROR", "Account deletion failed", map[string]interface{}{
			"error":  err.Error(),
			"route":  route,
			"userID": userID,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Compte supprimé"})
	logs.LogJSON("INFO", "Account deleted successfully", map[string]interface{}{
		"route":  route,
		"userID": userID,
	})
}

// DeletePostByID DELETE /api/posts/:id
// Seul l'auteur du post peut le supprimer.
func DeletePostByID(c *gin.Context) {
	route := c.FullPath()
	userID := c.GetString("user_id")
	postID := c.Param("id")

	p, err := post.GetByID(postID)
	if err != nil {
		c.JSON(apperr.HTTPStatus(err), gin.H{"error": "Post non trouvé"})
		return
	}
	if p.UserID != userID {
		c.JSON(http.StatusForbidden, gin.H{"error": "Vous n'êtes pas autorisé à supprimer ce post"})
		logs.LogJSON("WARN", "Unauthorized post deletion attempt", map[string]interface{}{
			"route":  route,
			"userID": userID,
			"postID": postID,
		})
		return
	}

	if err := DeletePost(postID); err != nil {
		c.JSON(apperr.HTTPStatus(err), gin.H{"error": "Erreur lors de la suppression du post"})
		logs.LogJSON("ERROR", "Post deletion failed", map[string]interface{}{
			"error":  err.Error(),
			"route":  route,
			"userID": userID,
			"postID": postID,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Post supprimé avec succès"})
	logs.LogJSON("INFO", "Post deleted successfully", map[string]interface{}{
		"route":  route,
		"userID": userID,
		"postID": postID,
	})
}

// DeleteCommentByID DELETE /api/comments/:id
// Seul l'auteur du commentaire peut le supprimer.
func DeleteCommentByID(c *gin.Context) {
	route := c.FullPath()
	userID := c.GetString("user_id")
	commentID := c.Param("id")

	comment, err := post.GetCommentByID(commentID)
	if err != nil {
		c.JSON(apperr.HTTPStatus(err), gin.H{"error": "Commentaire non trouvé"})
		return
	}
	if comment.UserID != userID {
		c.JSON(http.StatusForbidden, gin.H{"error": "Vous n'êtes pas autorisé à supprimer ce commentaire"})
		logs.LogJSON("WARN", "Unauthorized comment deletion attempt", map[string]interface{}{
			"route":     route,
			"userID":    userID,
			"commentID": commentID,
		})
		return
	}

	if err := DeleteComment(commentID); err != nil {
		c.JSON(apperr.HTTPStatus(err), gin.H{"error": "Erreur lors de la suppression du commentaire"})
		logs.LogJSON("ERROR", "Comment deletion failed", map[string]interface{}{
			"error":     err.Error(),
			"route":     route,
			"userID":    userID,
			"commentID": commentID,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Commentaire supprimé avec succès"})
}
