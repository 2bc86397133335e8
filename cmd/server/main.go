package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/ArthurDelaporte/MiniTweet-Back/internal/auth"
	"github.com/ArthurDelaporte/MiniTweet-Back/internal/cascade"
	"github.com/ArthurDelaporte/MiniTweet-Back/internal/config"
	"github.com/ArthurDelaporte/MiniTweet-Back/internal/database"
	"github.com/ArthurDelaporte/MiniTweet-Back/internal/feed"
	"github.com/ArthurDelaporte/MiniTweet-Back/internal/follow"
	"github.com/ArthurDelaporte/MiniTweet-Back/internal/like"
	"github.com/ArthurDelaporte/MiniTweet-Back/internal/middleware"
	"github.com/ArthurDelaporte/MiniTweet-Back/internal/post"
	"github.com/ArthurDelaporte/MiniTweet-Back/internal/user"
)

func main() {
	_ = godotenv.Load()
	cfg := config.LoadConfig()
	if cfg.DBUrl == "" {
		panic("DATABASE_URL manquant")
	}

	database.Connect(cfg.DBUrl)

	err := database.DB.AutoMigrate(
		&user.User{},
		&follow.Follow{},
		&post.Post{},
		&post.Comment{},
		&like.Like{},
		&like.CommentLike{},
	)
	if err != nil {
		log.Fatalf("Erreur migration : %v", err)
	}

	r := gin.Default()
	r.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	api := r.Group("/api")

	// Inscription & Connexion
	api.POST("/signup", auth.Signup)
	api.POST("/login", auth.Login)

	// Lecture publique, identité optionnelle pour les annotations
	public := api.Group("")
	public.Use(middleware.OptionalAuthMiddleware())
	public.GET("/users/username/:username", user.GetUserByUsername)
	public.GET("/users/username/:username/posts", post.GetPostsByUsername)
	public.GET("/users/search", user.SearchUsers)
	public.GET("/posts/:id", post.GetPostByID)
	public.GET("/posts/:id/comments", post.GetCommentsByPostID)
	public.GET("/posts/:id/likes", like.GetLikeStatus)
	public.GET("/followers/:id", follow.GetFollowers)

	// Tout le reste exige un viewer authentifié
	api.Use(middleware.AuthMiddleware())
	api.GET("/me", user.GetMe)
	api.PATCH("/me", user.UpdateMe)
	api.DELETE("/me", cascade.DeleteMyAccount)
	api.GET("/me/posts", post.GetMyPosts)

	api.POST("/follow/:id", follow.FollowUser)
	api.DELETE("/follow/:id", follow.UnfollowUser)
	api.GET("/following", follow.GetFollowing)

	api.POST("/posts", post.CreatePost)
	api.DELETE("/posts/:id", cascade.DeletePostByID)
	api.POST("/posts/:id/comments", post.CreateComment)
	api.DELETE("/comments/:id", cascade.DeleteCommentByID)

	api.POST("/posts/:id/like", like.ToggleLike)
	api.POST("/comments/:id/like", like.ToggleCommentLike)

	api.GET("/feed", feed.GetFeed)

	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Erreur serveur : %v", err)
	}
}
