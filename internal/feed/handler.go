package feed

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/ArthurDelaporte/MiniTweet-Back/internal/logs"
)

// GetFeed GET /api/feed?offset=0
func GetFeed(c *gin.Context) {
	route := c.FullPath()
	viewerID := c.GetString("user_id")

	offset, err := strconv.Atoi(c.DefaultQuery("offset", "0"))
	if err != nil || offset < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Paramètre 'offset' invalide"})
		return
	}

	items, hasMore, err := Assemble(viewerID, offset, DefaultPageSize)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur lors de l'assemblage du fil"})
		logs.LogJSON("ERROR", "Feed assembly failed", map[string]interface{}{
			"error":  err.Error(),
			"route":  route,
			"userID": viewerID,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"items":    items,
		"has_more": hasMore,
		"offset":   offset,
	})
	logs.LogJSON("INFO", "Feed assembled", map[string]interface{}{
		"route":  route,
		"userID": viewerID,
		"extra":  strconv.Itoa(len(items)) + " items",
	})
}
