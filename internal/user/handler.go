package user

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ArthurDelaporte/MiniTweet-Back/internal/apperr"
	"github.com/ArthurDelaporte/MiniTweet-Back/internal/database"
	"github.com/ArthurDelaporte/MiniTweet-Back/internal/logs"
)

// publicView construit la vue publique d'un utilisateur.
func publicView(u *User) gin.H {
	return gin.H{
		"id":           u.ID,
		"username":     u.Username,
		"display_name": u.DisplayName,
		"bio":          u.Bio,
		"created_at":   u.CreatedAt,
	}
}

// GetMe GET /api/me
func GetMe(c *gin.Context) {
	userID := c.GetString("user_id")

	u, err := FindByID(userID)
	if err != nil {
		c.JSON(apperr.HTTPStatus(err), gin.H{"error": "Utilisateur non trouvé"})
		return
	}

	response := publicView(u)
	response["email"] = u.Email

	c.JSON(http.StatusOK, gin.H{"user": response})
}

// UpdateMe PATCH /api/me
func UpdateMe(c *gin.Context) {
	route := c.FullPath()
	userID := c.GetString("user_id")

	var input UpdateInput
	if err := c.BindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Requête invalide"})
		return
	}

	u, err := Update(userID, input)
	if err != nil {
		c.JSON(apperr.HTTPStatus(err), gin.H{"error": err.Error()})
		logs.LogJSON("WARN", "User update rejected", map[string]interface{}{
			"error":  err.Error(),
			"route":  route,
			"userID": userID,
		})
		return
	}

	response := publicView(u)
	response["email"] = u.Email

	c.JSON(http.StatusOK, gin.H{"message": "Profil mis à jour", "user": response})
	logs.LogJSON("INFO", "User updated successfully", map[string]interface{}{
		"route":  route,
		"userID": userID,
	})
}

// GetUserByUsername GET /api/users/username/:username
func GetUserByUsername(c *gin.Context) {
	route := c.FullPath()
	username := c.Param("username")
	currentUserID := c.GetString("user_id")

	u, err := FindByUsername(username)
	if err != nil {
		c.JSON(apperr.HTTPStatus(err), gin.H{"error": "Utilisateur non trouvé"})
		logs.LogJSON("WARN", "User not found", map[string]interface{}{
			"route":    route,
			"username": username,
			"userID":   currentUserID,
		})
		return
	}

	// On retourne uniquement les champs publics
	dataUser := gin.H{
		"user":  publicView(u),
		"stats": gin.H{},
	}

	if currentUserID != "" && currentUserID != u.ID {
		var count int64
		database.DB.Table("follows").
			Where("follower_id = ? AND followed_id = ?", currentUserID, u.ID).
			Count(&count)
		dataUser["is_following"] = count > 0
	}

	if u.ID == currentUserID {
		dataUser["user"].(gin.H)["email"] = u.Email
	}

	var followersCount, followingCount, postsCount int64
	database.DB.Table("follows").Where("followed_id = ?", u.ID).Count(&followersCount)
	database.DB.Table("follows").Where("follower_id = ?", u.ID).Count(&followingCount)
	database.DB.Table("posts").Where("user_id = ?", u.ID).Count(&postsCount)

	stats := dataUser["stats"].(gin.H)
	stats["followers_count"] = followersCount
	stats["following_count"] = followingCount
	stats["posts_count"] = postsCount

	c.JSON(http.StatusOK, dataUser)
	logs.LogJSON("INFO", "User fetched successfully", map[string]interface{}{
		"route":    route,
		"username": username,
		"userID":   currentUserID,
	})
}

// SearchUsers GET /api/users/search
func SearchUsers(c *gin.Context) {
	route := c.FullPath()

	query := c.Query("q")
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Paramètre de recherche 'q' requis"})
		return
	}
	if len(query) < 2 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "La recherche doit contenir au moins 2 caractères"})
		return
	}

	users, err := Search(query, 20)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur lors de la recherche"})
		logs.LogJSON("ERROR", "Search error", map[string]interface{}{
			"error": err.Error(),
			"route": route,
			"extra": fmt.Sprintf("The search is : %s", query),
		})
		return
	}

	var response []gin.H
	for i := range users {
		response = append(response, publicView(&users[i]))
	}

	c.JSON(http.StatusOK, gin.H{"users": response})
	logs.LogJSON("INFO", "User search is successful", map[string]interface{}{
		"route": route,
		"extra": fmt.Sprintf("The search is : %s", query),
	})
}
