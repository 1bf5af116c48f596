package artworks

import "strconv"

const defaultPageSize = 8

// intParam parses a numeric query parameter, falling back on absent or
// non-numeric input. Zero and negative values parse fine and propagate as-is.
func intParam(raw string, fallback int) int {
	v, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return v
}

func pageOffset(page, limit int) int {
	return (page - 1) * limit
}

func totalPages(totalItems int64, limit int) int64 {
	if limit <= 0 {
		return 0
	}
	return (totalItems + int64(limit) - 1) / int64(limit)
}
