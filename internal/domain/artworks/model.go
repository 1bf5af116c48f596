package artworks

import "time"

// Artwork is one listed piece. Only rows with Visibility=true show up on the
// public browsing endpoints; the owner always sees their own rows.
type Artwork struct {
	ID string `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`

	ArtistEmail string `gorm:"not null;index" json:"artistEmail"`
	ArtistName  string `json:"artistName"`

	Title       string `gorm:"not null" json:"title"`
	Category    string `gorm:"index" json:"category"`
	Medium      string `json:"medium,omitempty"`
	Description string `json:"description,omitempty"`
	Image       string `json:"image,omitempty"`

	Price float64 `json:"price"`

	// Bumped atomically by the like endpoint, never decremented.
	Likes int64 `gorm:"not null;default:0" json:"likes"`

	Visibility bool `gorm:"not null;default:true;index" json:"visibility"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TotalLikes sums the like counters of a set of artworks.
func TotalLikes(list []Artwork) int64 {
	var sum int64
	for _, a := range list {
		sum += a.Likes
	}
	return sum
}
