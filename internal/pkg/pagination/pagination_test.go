package pagination

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewParams(t *testing.T) {
	tests := []struct {
		name       string
		page       int
		limit      int
		wantPage   int
		wantLimit  int
		wantOffset int
	}{
		{"defaults applied", 0, 0, 1, DefaultLimit, 0},
		{"negative page", -3, 10, 1, 10, 0},
		{"limit capped", 2, 500, 2, MaxLimit, MaxLimit},
		{"normal values", 3, 25, 3, 25, 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewParams(tt.page, tt.limit)
			assert.Equal(t, tt.wantPage, p.Page)
			assert.Equal(t, tt.wantLimit, p.Limit)
			assert.Equal(t, tt.wantOffset, p.Offset)
		})
	}
}

func TestGetMeta(t *testing.T) {
	params := NewParams(2, 10)
	meta := GetMeta(params, 35)

	assert.Equal(t, 2, meta.Page)
	assert.Equal(t, int64(35), meta.Total)
	assert.Equal(t, 4, meta.TotalPages)
	assert.True(t, meta.HasNext)
	assert.True(t, meta.HasPrev)
}

func TestGetMeta_LastPage(t *testing.T) {
	params := NewParams(4, 10)
	meta := GetMeta(params, 35)

	assert.False(t, meta.HasNext)
	assert.True(t, meta.HasPrev)
}

func TestNewResponse(t *testing.T) {
	params := NewParams(1, 10)
	resp := NewResponse([]string{"a", "b"}, params, 2)

	assert.Equal(t, []string{"a", "b"}, resp.Data)
	assert.Equal(t, 1, resp.Meta.TotalPages)
	assert.False(t, resp.Meta.HasNext)
}
