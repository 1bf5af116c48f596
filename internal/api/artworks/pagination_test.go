package artworks

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIntParamDefaults(t *testing.T) {
	assert.Equal(t, 1, intParam("", 1))
	assert.Equal(t, 8, intParam("abc", 8))
	assert.Equal(t, 3, intParam("3", 1))
	// zero and negative values parse and propagate untouched
	assert.Equal(t, 0, intParam("0", 1))
	assert.Equal(t, -2, intParam("-2", 1))
}

func TestPageOffset(t *testing.T) {
	assert.Equal(t, 0, pageOffset(1, 8))
	assert.Equal(t, 8, pageOffset(2, 8))
	assert.Equal(t, 4, pageOffset(3, 2))

	for page := 1; page <= 10; page++ {
		for limit := 1; limit <= 10; limit++ {
			assert.Equal(t, (page-1)*limit, pageOffset(page, limit))
		}
	}
}

func TestTotalPages(t *testing.T) {
	assert.Equal(t, int64(2), totalPages(3, 2))
	assert.Equal(t, int64(1), totalPages(8, 8))
	assert.Equal(t, int64(2), totalPages(9, 8))
	assert.Equal(t, int64(0), totalPages(0, 8))
	assert.Equal(t, int64(0), totalPages(10, 0))

	for limit := 1; limit <= 9; limit++ {
		for items := int64(0); items <= 30; items++ {
			want := int64(math.Ceil(float64(items) / float64(limit)))
			assert.Equal(t, want, totalPages(items, limit), "items=%d limit=%d", items, limit)
		}
	}
}
