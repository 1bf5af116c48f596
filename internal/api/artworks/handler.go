package artworks

import (
	"errors"
	"log"
	"net/http"

	"artify-backend/database"
	"artify-backend/internal/domain/artworks"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ------------------------------
// GET /latest-artworks
// ------------------------------
func LatestArtworks(c *gin.Context) {
	var result []artworks.Artwork
	err := visibleArtworks(database.DB).
		Order("created_at DESC").
		Limit(6).
		Find(&result).Error
	if err != nil {
		log.Println("latest artworks error:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to load latest artworks"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"result":  result,
	})
}

// ------------------------------
// GET /all-artworks?page=&limit=&search=&category=&sort=
// ------------------------------
func AllArtworks(c *gin.Context) {
	page := intParam(c.Query("page"), 1)
	limit := intParam(c.Query("limit"), defaultPageSize)
	search := c.Query("search")
	category := c.Query("category")
	sort := c.DefaultQuery("sort", "newest")

	var totalItems int64
	if err := filteredArtworks(database.DB, search, category).Count(&totalItems).Error; err != nil {
		log.Println("artwork count error:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to load artworks"})
		return
	}

	var result []artworks.Artwork
	err := filteredArtworks(database.DB, search, category).
		Order(sortOrder(sort)).
		Offset(pageOffset(page, limit)).
		Limit(limit).
		Find(&result).Error
	if err != nil {
		log.Println("artwork list error:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to load artworks"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"result":      result,
		"totalItems":  totalItems,
		"totalPages":  totalPages(totalItems, limit),
		"currentPage": page,
	})
}

// ------------------------------
// GET /update/:id  (authenticated fetch for the edit form)
// ------------------------------
func GetArtwork(c *gin.Context) {
	id := c.Param("id")

	var result artworks.Artwork
	err := database.DB.First(&result, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Artwork not found"})
			return
		}
		log.Println("artwork fetch error:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to load artwork"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"result":  result,
	})
}

// ------------------------------
// GET /my-gallery?email=  (owner only, visible or not)
// ------------------------------
func MyGallery(c *gin.Context) {
	email := c.Query("email")
	if email != c.GetString("email") {
		c.JSON(http.StatusForbidden, gin.H{"message": "forbidden access"})
		return
	}

	var result []artworks.Artwork
	err := database.DB.
		Where("artist_email = ?", email).
		Order("created_at DESC").
		Find(&result).Error
	if err != nil {
		log.Println("gallery error:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to load gallery"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"result":  result,
	})
}

// ------------------------------
// PATCH /update-art/:id  (owner-scoped partial update)
// ------------------------------
func UpdateArtwork(c *gin.Context) {
	id := c.Param("id")

	var req UpdateArtworkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}

	updates := req.updates()
	if len(updates) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "No fields to update"})
		return
	}

	res := database.DB.Model(&artworks.Artwork{}).
		Where("id = ? AND artist_email = ?", id, c.GetString("email")).
		Updates(updates)
	if res.Error != nil {
		log.Println("artwork update error:", res.Error)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to update artwork"})
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Artwork not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"result":  gin.H{"modifiedCount": res.RowsAffected},
	})
}

// ------------------------------
// DELETE /delete-artwork?id=  (owner-scoped)
// ------------------------------
func DeleteArtwork(c *gin.Context) {
	id := c.Query("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Missing artwork id"})
		return
	}

	res := database.DB.
		Where("id = ? AND artist_email = ?", id, c.GetString("email")).
		Delete(&artworks.Artwork{})
	if res.Error != nil {
		log.Println("artwork delete error:", res.Error)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to delete artwork"})
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Artwork not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"result":  gin.H{"deletedCount": res.RowsAffected},
	})
}

// ------------------------------
// POST /add-artworks
// ------------------------------
func AddArtwork(c *gin.Context) {
	var req CreateArtworkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}

	artistEmail := req.ArtistEmail
	if artistEmail == "" {
		artistEmail = c.GetString("email")
	}

	visibility := true
	if req.Visibility != nil {
		visibility = *req.Visibility
	}

	a := artworks.Artwork{
		Title:       req.Title,
		ArtistName:  req.ArtistName,
		ArtistEmail: artistEmail,
		Category:    req.Category,
		Medium:      req.Medium,
		Description: req.Description,
		Image:       req.Image,
		Price:       req.Price,
		Visibility:  visibility,
	}

	if err := database.DB.Create(&a).Error; err != nil {
		log.Println("artwork insert error:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to add artwork"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"result":  a,
	})
}

// ------------------------------
// GET /art-details/:id  (artwork plus everything by the same artist)
// ------------------------------
func ArtDetails(c *gin.Context) {
	id := c.Param("id")

	var result artworks.Artwork
	err := database.DB.First(&result, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Artwork not found"})
			return
		}
		log.Println("art details error:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to load artwork"})
		return
	}

	var allArtByArtist []artworks.Artwork
	err = database.DB.
		Where("artist_email = ?", result.ArtistEmail).
		Order("created_at DESC").
		Find(&allArtByArtist).Error
	if err != nil {
		log.Println("art details error:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to load artist works"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":        true,
		"result":         result,
		"allArtByArtist": allArtByArtist,
	})
}

// ------------------------------
// PUT /art-details/:id/like  (public, single-row atomic increment)
// ------------------------------
func LikeArtwork(c *gin.Context) {
	id := c.Param("id")

	res := database.DB.Model(&artworks.Artwork{}).
		Where("id = ?", id).
		UpdateColumn("likes", gorm.Expr("likes + 1"))
	if res.Error != nil {
		log.Println("like error:", res.Error)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to like artwork"})
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Artwork not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"result":  gin.H{"modifiedCount": res.RowsAffected},
	})
}
