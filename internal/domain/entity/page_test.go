package entity

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPage(t *testing.T) {
	tests := []struct {
		name       string
		number     int
		limit      int
		wantNumber int
		wantLimit  int
	}{
		{name: "defaults", number: 0, limit: 0, wantNumber: 1, wantLimit: 10},
		{name: "negative page", number: -3, limit: 5, wantNumber: 1, wantLimit: 5},
		{name: "limit capped", number: 2, limit: 1000, wantNumber: 2, wantLimit: 100},
		{name: "huge page clamped", number: math.MaxInt, limit: 10, wantNumber: math.MaxInt32, wantLimit: 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page := NewPage(tt.number, tt.limit, 10, 100)
			assert.Equal(t, tt.wantNumber, page.Number)
			assert.Equal(t, tt.wantLimit, page.Limit)
		})
	}
}

func TestPage_Offset(t *testing.T) {
	tests := []struct {
		name string
		page Page
		want int
	}{
		{name: "first page", page: Page{Number: 1, Limit: 10}, want: 0},
		{name: "second page", page: Page{Number: 2, Limit: 10}, want: 10},
		{name: "zero limit", page: Page{Number: 5, Limit: 0}, want: 0},
		{name: "saturates", page: Page{Number: math.MaxInt, Limit: 10}, want: math.MaxInt},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.page.Offset())
		})
	}
}

func TestPage_OffsetNeverWraps(t *testing.T) {
	page := NewPage(1152921504606846976, 10, 10, 100)
	assert.Positive(t, page.Offset())
	assert.Equal(t, (math.MaxInt32-1)*10, page.Offset())
}

func TestPage_WindowOverItems(t *testing.T) {
	items := make([]int, 25)
	for i := range items {
		items[i] = i
	}

	window := func(p Page) []int {
		start := min(p.Offset(), len(items))
		end := min(start+p.Limit, len(items))

		return items[start:end]
	}

	assert.Equal(t, []int{10, 11, 12, 13, 14, 15, 16, 17, 18, 19}, window(NewPage(2, 10, 10, 100)))
	assert.Equal(t, []int{20, 21, 22, 23, 24}, window(NewPage(3, 10, 10, 100)))
	assert.Empty(t, window(NewPage(4, 10, 10, 100)))
	assert.Empty(t, window(NewPage(1152921504606846976, 10, 10, 100)))
}
