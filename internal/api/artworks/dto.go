package artworks

// ---------- requests

type CreateArtworkRequest struct {
	Title       string  `json:"title" binding:"required"`
	ArtistName  string  `json:"artistName"`
	ArtistEmail string  `json:"artistEmail"`
	Category    string  `json:"category"`
	Medium      string  `json:"medium"`
	Description string  `json:"description"`
	Image       string  `json:"image"`
	Price       float64 `json:"price"`
	Visibility  *bool   `json:"visibility"`
}

// UpdateArtworkRequest carries a partial update; nil fields are left alone.
type UpdateArtworkRequest struct {
	Title       *string  `json:"title"`
	ArtistName  *string  `json:"artistName"`
	Category    *string  `json:"category"`
	Medium      *string  `json:"medium"`
	Description *string  `json:"description"`
	Image       *string  `json:"image"`
	Price       *float64 `json:"price"`
	Visibility  *bool    `json:"visibility"`
}

func (r UpdateArtworkRequest) updates() map[string]interface{} {
	u := map[string]interface{}{}
	if r.Title != nil {
		u["title"] = *r.Title
	}
	if r.ArtistName != nil {
		u["artist_name"] = *r.ArtistName
	}
	if r.Category != nil {
		u["category"] = *r.Category
	}
	if r.Medium != nil {
		u["medium"] = *r.Medium
	}
	if r.Description != nil {
		u["description"] = *r.Description
	}
	if r.Image != nil {
		u["image"] = *r.Image
	}
	if r.Price != nil {
		u["price"] = *r.Price
	}
	if r.Visibility != nil {
		u["visibility"] = *r.Visibility
	}
	return u
}
