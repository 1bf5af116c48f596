package dashboard

import (
	"log"
	"net/http"

	"artify-backend/database"
	"artify-backend/internal/domain/artworks"
	"artify-backend/internal/domain/favorites"

	"github.com/gin-gonic/gin"
)

// ------------------------------
// GET /dashboard-overview?email=  (owner only)
// ------------------------------
func Overview(c *gin.Context) {
	email := c.Query("email")
	if email != c.GetString("email") {
		c.JSON(http.StatusForbidden, gin.H{"message": "forbidden access"})
		return
	}

	var arts []artworks.Artwork
	if err := database.DB.Where("artist_email = ?", email).Find(&arts).Error; err != nil {
		log.Println("dashboard overview error:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Server error"})
		return
	}

	var favoritesCount int64
	err := database.DB.Model(&favorites.Favorite{}).
		Where("user_email = ?", email).
		Count(&favoritesCount).Error
	if err != nil {
		log.Println("dashboard overview error:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"totalArtworks": len(arts),
			"totalLikes":    artworks.TotalLikes(arts),
			"favorites":     favoritesCount,
		},
	})
}
