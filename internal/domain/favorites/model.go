package favorites

import "time"

// Favorite links a user to an artwork they bookmarked. Display fields are
// denormalized at save time so the favorites list renders without a join;
// deleting an artwork does not cascade here.
type Favorite struct {
	ID string `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`

	UserEmail string `gorm:"not null;index" json:"userEmail"`
	ArtworkID string `gorm:"type:uuid;index" json:"artworkId"`

	Title      string  `json:"title"`
	ArtistName string  `json:"artistName"`
	Image      string  `json:"image,omitempty"`
	Price      float64 `json:"price"`

	CreatedAt time.Time `json:"createdAt"`
}
