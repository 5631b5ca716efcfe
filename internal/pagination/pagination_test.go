package pagination

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPaginate(t *testing.T) {
	tests := []struct {
		name       string
		page       int
		pageSize   int
		totalItems int
		want       Window
	}{
		{
			name: "first page of three", page: 1, pageSize: 20, totalItems: 45,
			want: Window{Page: 1, PageSize: 20, TotalItems: 45, Skip: 0, TotalPages: 3, HasNext: true, HasPrev: false},
		},
		{
			name: "middle page", page: 2, pageSize: 20, totalItems: 45,
			want: Window{Page: 2, PageSize: 20, TotalItems: 45, Skip: 20, TotalPages: 3, HasNext: true, HasPrev: true},
		},
		{
			name: "last partial page", page: 3, pageSize: 20, totalItems: 45,
			want: Window{Page: 3, PageSize: 20, TotalItems: 45, Skip: 40, TotalPages: 3, HasNext: false, HasPrev: true},
		},
		{
			name: "page beyond total", page: 7, pageSize: 20, totalItems: 45,
			want: Window{Page: 7, PageSize: 20, TotalItems: 45, Skip: 120, TotalPages: 3, HasNext: false, HasPrev: true},
		},
		{
			name: "empty set", page: 1, pageSize: 20, totalItems: 0,
			want: Window{Page: 1, PageSize: 20, TotalItems: 0, Skip: 0, TotalPages: 0, HasNext: false, HasPrev: false},
		},
		{
			name: "exact multiple", page: 2, pageSize: 10, totalItems: 20,
			want: Window{Page: 2, PageSize: 10, TotalItems: 20, Skip: 10, TotalPages: 2, HasNext: false, HasPrev: true},
		},
		{
			name: "single item", page: 1, pageSize: 20, totalItems: 1,
			want: Window{Page: 1, PageSize: 20, TotalItems: 1, Skip: 0, TotalPages: 1, HasNext: false, HasPrev: false},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Paginate(tt.page, tt.pageSize, tt.totalItems))
		})
	}
}

func TestPaginateCeiling(t *testing.T) {
	// totalPages must always be ceil(totalItems/pageSize).
	for totalItems := 0; totalItems <= 50; totalItems++ {
		for pageSize := 1; pageSize <= 25; pageSize++ {
			w := Paginate(1, pageSize, totalItems)
			wantPages := (totalItems + pageSize - 1) / pageSize
			assert.Equal(t, wantPages, w.TotalPages, "totalItems=%d pageSize=%d", totalItems, pageSize)
		}
	}
}

func TestParsePage(t *testing.T) {
	tests := []struct {
		raw  string
		want int
	}{
		{"", DefaultPage},
		{"abc", DefaultPage},
		{"0", DefaultPage},
		{"-3", DefaultPage},
		{"1", 1},
		{"42", 42},
		{"2.5", DefaultPage},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ParsePage(tt.raw), "raw=%q", tt.raw)
	}
}

func TestParsePageSize(t *testing.T) {
	tests := []struct {
		raw  string
		want int
	}{
		{"", DefaultPageSize},
		{"garbage", DefaultPageSize},
		{"0", DefaultPageSize},
		{"-1", DefaultPageSize},
		{"20", 20},
		{"100", 100},
		{"500", MaxPageSize},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ParsePageSize(tt.raw), "raw=%q", tt.raw)
	}
}

func TestSlice(t *testing.T) {
	items := []string{"a", "b", "c", "d", "e"}

	assert.Equal(t, []string{"a", "b"}, Slice(items, Paginate(1, 2, len(items))))
	assert.Equal(t, []string{"c", "d"}, Slice(items, Paginate(2, 2, len(items))))
	assert.Equal(t, []string{"e"}, Slice(items, Paginate(3, 2, len(items))))
	assert.Empty(t, Slice(items, Paginate(4, 2, len(items))))
	assert.Empty(t, Slice([]string{}, Paginate(1, 20, 0)))
}
