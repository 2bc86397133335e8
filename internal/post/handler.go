package post

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ArthurDelaporte/MiniTweet-Back/internal/apperr"
	"github.com/ArthurDelaporte/MiniTweet-Back/internal/like"
	"github.com/ArthurDelaporte/MiniTweet-Back/internal/logs"
	"github.com/ArthurDelaporte/MiniTweet-Back/internal/user"
)

// CreatePost POST /api/posts
func CreatePost(c *gin.Context) {
	route := c.FullPath()
	userID := c.GetString("user_id")

	var input struct {
		Content string `json:"content" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Requête invalide"})
		return
	}

	newPost, err := Create(userID, input.Content)
	if err != nil {
		c.JSON(apperr.HTTPStatus(err), gin.H{"error": err.Error()})
		logs.LogJSON("WARN", "Post creation rejected", map[string]interface{}{
			"error":  err.Error(),
			"route":  route,
			"userID": userID,
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Post créé avec succès",
		"post":    newPost,
	})
	logs.LogJSON("INFO", "Post created successfully", map[string]interface{}{
		"route":  route,
		"userID": userID,
		"postID": newPost.ID,
	})
}

// GetMyPosts GET /api/me/posts
func GetMyPosts(c *gin.Context) {
	userID := c.GetString("user_id")

	posts, err := ByAuthor(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur lors de la récupération des posts"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"posts": posts})
}

// GetPostsByUsername GET /api/users/username/:username/posts
func GetPostsByUsername(c *gin.Context) {
	username := c.Param("username")
	viewerID := c.GetString("user_id")

	u, err := user.FindByUsername(username)
	if err != nil {
		c.JSON(apperr.HTTPStatus(err), gin.H{"error": "Utilisateur introuvable"})
		return
	}

	posts, err := ByAuthor(u.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur de récupération des posts"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"posts": annotate(posts, viewerID)})
}

// GetPostByID GET /api/posts/:id
func GetPostByID(c *gin.Context) {
	postID := c.Param("id")
	viewerID := c.GetString("user_id")

	p, err := GetByID(postID)
	if err != nil {
		c.JSON(apperr.HTTPStatus(err), gin.H{"error": "Post non trouvé"})
		return
	}

	likeStatus := like.StatusForPost(p.ID, viewerID)
	c.JSON(http.StatusOK, gin.H{"post": gin.H{
		"id":         p.ID,
		"created_at": p.CreatedAt,
		"user_id":    p.UserID,
		"content":    p.Content,
		"like_count": likeStatus.LikeCount,
		"is_liked":   likeStatus.IsLiked,
	}})
}

// GetCommentsByPostID GET /api/posts/:id/comments
func GetCommentsByPostID(c *gin.Context) {
	postID := c.Param("id")
	viewerID := c.GetString("user_id")

	if _, err := GetByID(postID); err != nil {
		c.JSON(apperr.HTTPStatus(err), gin.H{"error": "Post non trouvé"})
		return
	}

	comments, err := CommentsByPost(postID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur lors de la récupération des commentaires"})
		return
	}

	// Un seul calcul de l'ensemble liké pour toute la liste
	liked := map[string]bool{}
	if viewerID != "" {
		liked, err = like.LikedCommentIDs(viewerID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur lors de la récupération des likes"})
			return
		}
	}

	var response []gin.H
	for _, comment := range comments {
		response = append(response, gin.H{
			"id":         comment.ID,
			"created_at": comment.CreatedAt,
			"post_id":    comment.PostID,
			"user_id":    comment.UserID,
			"text":       comment.Content,
			"is_liked":   liked[comment.ID],
		})
	}

	c.JSON(http.StatusOK, gin.H{"comments": response})
}

// CreateComment POST /api/posts/:id/comments
func CreateComment(c *gin.Context) {
	route := c.FullPath()
	userID := c.GetString("user_id")
	postID := c.Param("id")

	var input struct {
		Text string `json:"text" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	comment, err := AddComment(postID, userID, input.Text)
	if err != nil {
		c.JSON(apperr.HTTPStatus(err), gin.H{"error": err.Error()})
		logs.LogJSON("WARN", "Comment creation rejected", map[string]interface{}{
			"error":  err.Error(),
			"route":  route,
			"userID": userID,
			"postID": postID,
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Commentaire ajouté avec succès",
		"comment": comment,
	})
}

// annotate marque chaque post avec l'état « liké » du viewer et son
// compteur de likes, précalculés une fois pour toute la liste.
func annotate(posts []Post, viewerID string) []gin.H {
	ids := make([]string, 0, len(posts))
	for _, p := range posts {
		ids = append(ids, p.ID)
	}

	counts, _ := like.CountsForPosts(ids)
	liked := map[string]bool{}
	if viewerID != "" {
		liked, _ = like.LikedPostIDs(viewerID)
	}

	var out []gin.H
	for _, p := range posts {
		out = append(out, gin.H{
			"id":         p.ID,
			"created_at": p.CreatedAt,
			"user_id":    p.UserID,
			"content":    p.Content,
			"like_count": counts[p.ID],
			"is_liked":   liked[p.ID],
		})
	}
	return out
}
