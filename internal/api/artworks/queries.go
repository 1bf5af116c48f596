package artworks

import (
	"strings"

	"artify-backend/internal/domain/artworks"

	"gorm.io/gorm"
)

// escapeLike makes user input safe as a literal LIKE substring. The original
// search fed raw input into a regex; here a search term is always literal.
func escapeLike(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(s)
}

func searchPattern(search string) string {
	return "%" + escapeLike(search) + "%"
}

// visibleArtworks scopes to publicly discoverable rows.
func visibleArtworks(db *gorm.DB) *gorm.DB {
	return db.Model(&artworks.Artwork{}).Where("visibility = ?", true)
}

// filteredArtworks applies the public listing filter: visibility, optional
// case-insensitive substring search over title/artist name, optional exact
// category match. Empty parameters impose no constraint.
func filteredArtworks(db *gorm.DB, search, category string) *gorm.DB {
	q := visibleArtworks(db)
	if search != "" {
		p := searchPattern(search)
		q = q.Where("(title ILIKE ? OR artist_name ILIKE ?)", p, p)
	}
	if category != "" {
		q = q.Where("category = ?", category)
	}
	return q
}

// sortOrder maps the sort query parameter to an ORDER BY clause. Anything
// unrecognized falls back to newest-first.
func sortOrder(sort string) string {
	switch sort {
	case "priceLow":
		return "price ASC"
	case "priceHigh":
		return "price DESC"
	case "popular":
		return "likes DESC"
	default:
		return "created_at DESC"
	}
}
