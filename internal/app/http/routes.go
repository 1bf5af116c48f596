package routes

import (
	artworksapi "artify-backend/internal/api/artworks"
	authapi "artify-backend/internal/api/auth"
	dashboardapi "artify-backend/internal/api/dashboard"
	favoritesapi "artify-backend/internal/api/favorites"
	"artify-backend/internal/app/http/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine) {
	r.GET("/", func(c *gin.Context) {
		c.String(200, "Server is running")
	})
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Public routes; write routes get input sanitization.
	public := r.Group("/")
	public.Use(middleware.SanitizeInputMiddleware())

	public.POST("/register", authapi.Register)
	public.POST("/login", authapi.Login)
	public.GET("/auth/google", authapi.GoogleStart)
	public.GET("/auth/google/callback", authapi.GoogleCallback)

	public.GET("/latest-artworks", artworksapi.LatestArtworks)
	public.GET("/all-artworks", artworksapi.AllArtworks)
	public.GET("/art-details/:id", artworksapi.ArtDetails)
	public.PUT("/art-details/:id/like", artworksapi.LikeArtwork)
	public.POST("/fevorites", favoritesapi.AddFavorite)

	// Authenticated
	auth := r.Group("/")
	auth.Use(middleware.AuthMiddleware())

	auth.GET("/update/:id", artworksapi.GetArtwork)
	auth.GET("/my-gallery", artworksapi.MyGallery)
	auth.PATCH("/update-art/:id", artworksapi.UpdateArtwork)
	auth.DELETE("/delete-artwork", artworksapi.DeleteArtwork)
	auth.POST("/add-artworks", artworksapi.AddArtwork)

	auth.GET("/favorites-list", favoritesapi.FavoritesList)
	auth.DELETE("/unFevorites", favoritesapi.Unfavorite)

	auth.GET("/dashboard-overview", dashboardapi.Overview)
}
