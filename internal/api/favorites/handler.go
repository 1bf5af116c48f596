package favorites

import (
	"log"
	"net/http"

	"artify-backend/database"
	"artify-backend/internal/domain/favorites"

	"github.com/gin-gonic/gin"
)

type CreateFavoriteRequest struct {
	UserEmail  string  `json:"userEmail" binding:"required,email"`
	ArtworkID  string  `json:"artworkId"`
	Title      string  `json:"title"`
	ArtistName string  `json:"artistName"`
	Image      string  `json:"image"`
	Price      float64 `json:"price"`
}

// ------------------------------
// POST /fevorites  (route name kept for existing callers)
// ------------------------------
func AddFavorite(c *gin.Context) {
	var req CreateFavoriteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}

	f := favorites.Favorite{
		UserEmail:  req.UserEmail,
		ArtworkID:  req.ArtworkID,
		Title:      req.Title,
		ArtistName: req.ArtistName,
		Image:      req.Image,
		Price:      req.Price,
	}

	if err := database.DB.Create(&f).Error; err != nil {
		log.Println("favorite insert error:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to save favorite"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"result":  f,
	})
}

// ------------------------------
// GET /favorites-list?email=
// ------------------------------
func FavoritesList(c *gin.Context) {
	email := c.Query("email")
	if email == "" {
		email = c.GetString("email")
	}

	var result []favorites.Favorite
	err := database.DB.
		Where("user_email = ?", email).
		Order("created_at DESC").
		Find(&result).Error
	if err != nil {
		log.Println("favorites list error:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to load favorites"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"result":  result,
	})
}

// ------------------------------
// DELETE /unFevorites?id=  (scoped to the caller's own favorites)
// ------------------------------
func Unfavorite(c *gin.Context) {
	id := c.Query("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Missing favorite id"})
		return
	}

	res := database.DB.
		Where("id = ? AND user_email = ?", id, c.GetString("email")).
		Delete(&favorites.Favorite{})
	if res.Error != nil {
		log.Println("favorite delete error:", res.Error)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to remove favorite"})
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Favorite not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"result":  gin.H{"deletedCount": res.RowsAffected},
	})
}
