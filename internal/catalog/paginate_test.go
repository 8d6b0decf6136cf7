package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPagerEmpty(t *testing.T) {
	p := NewPager(1, 10, 0)
	assert.Equal(t, 0, p.TotalPages())
	assert.False(t, p.HasPrev())
	assert.False(t, p.HasNext())
}

func TestPagerThreePages(t *testing.T) {
	// 25 records at 10 per page span 3 pages
	tests := []struct {
		page    int
		hasPrev bool
		hasNext bool
	}{
		{1, false, true},
		{2, true, true},
		{3, true, false},
	}

	for _, tt := range tests {
		p := NewPager(tt.page, 10, 25)
		assert.Equal(t, 3, p.TotalPages())
		assert.Equal(t, tt.hasPrev, p.HasPrev(), "page %d prev", tt.page)
		assert.Equal(t, tt.hasNext, p.HasNext(), "page %d next", tt.page)
	}
}

func TestPagerExactMultiple(t *testing.T) {
	p := NewPager(2, 10, 20)
	assert.Equal(t, 2, p.TotalPages())
	assert.True(t, p.HasPrev())
	assert.False(t, p.HasNext())
}

func TestPagerPartialSecondPage(t *testing.T) {
	// Page 2 of 18 records: 8 items on this page, next unavailable,
	// prev available.
	p := NewPager(2, 10, 18)
	assert.Equal(t, 2, p.TotalPages())
	assert.True(t, p.HasPrev())
	assert.False(t, p.HasNext())
}

func TestPagerClamping(t *testing.T) {
	p := NewPager(0, 0, -5)
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, DefaultPerPage, p.PerPage)
	assert.Equal(t, 0, p.Total)
}
