package auth

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/ArthurDelaporte/MiniTweet-Back/internal/apperr"
	"github.com/ArthurDelaporte/MiniTweet-Back/internal/database"
	"github.com/ArthurDelaporte/MiniTweet-Back/internal/logs"
	"github.com/ArthurDelaporte/MiniTweet-Back/internal/user"
)

// Signup POST /api/signup
func Signup(c *gin.Context) {
	route := c.FullPath()

	var input struct {
		Email       string `json:"email"`
		Password    string `json:"password"`
		Username    string `json:"username"`
		DisplayName string `json:"display_name"`
	}
	if err := c.BindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Requête invalide"})
		return
	}

	if input.Email == "" || input.Password == "" || input.Username == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Champs requis manquants"})
		return
	}

	// Le cœur ne voit jamais le mot de passe en clair, seulement le hash
	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur de hachage du mot de passe"})
		return
	}

	newUser, err := user.Create(input.Username, input.DisplayName, input.Email, string(hash))
	if err != nil {
		c.JSON(apperr.HTTPStatus(err), gin.H{"error": err.Error()})
		logs.LogJSON("WARN", "Signup rejected", map[string]interface{}{
			"error": err.Error(),
			"route": route,
			"extra": input.Username,
		})
		return
	}

	token, err := GenerateToken(newUser.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur de génération du token"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Utilisateur inscrit 🎉",
		"user": gin.H{
			"id":           newUser.ID,
			"username":     newUser.Username,
			"email":        newUser.Email,
			"display_name": newUser.DisplayName,
		},
		"access_token": token,
	})
	logs.LogJSON("INFO", "User signed up", map[string]interface{}{
		"route":  route,
		"userID": newUser.ID,
	})
}

// Login POST /api/login
func Login(c *gin.Context) {
	route := c.FullPath()

	var input struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.BindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Requête invalide"})
		return
	}

	var u user.User
	if err := database.DB.First(&u, "email = ?", input.Email).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// Même réponse qu'un mauvais mot de passe
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Identifiants invalides"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur de base de données"})
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(input.Password)); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Identifiants invalides"})
		logs.LogJSON("WARN", "Login failed", map[string]interface{}{
			"route":  route,
			"userID": u.ID,
		})
		return
	}

	token, err := GenerateToken(u.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur de génération du token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"access_token": token,
		"user": gin.H{
			"id":           u.ID,
			"username":     u.Username,
			"display_name": u.DisplayName,
		},
	})
	logs.LogJSON("INFO", "User logged in", map[string]interface{}{
		"route":  route,
		"userID": u.ID,
	})
}
