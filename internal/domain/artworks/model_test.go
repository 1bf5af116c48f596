package artworks

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTotalLikes(t *testing.T) {
	assert.Equal(t, int64(0), TotalLikes(nil))

	list := []Artwork{
		{Likes: 5},
		{Likes: 0}, // never-liked artwork contributes nothing
		{Likes: 3},
	}
	assert.Equal(t, int64(8), TotalLikes(list))
}
