package store

import (
	"context"
	"errors"
	"sort"
	"strings"

	"movie-catalog-service/internal/domain"
)

var (
	ErrMovieNotFound  = errors.New("movie not found")
	ErrInvalidMovieID = errors.New("invalid movie id")
)

// DistinctField names a multi-valued movie attribute whose distinct values
// may be listed.
type DistinctField string

const (
	FieldDirectors DistinctField = "directors"
	FieldCast      DistinctField = "cast"
)

// MovieListParams carries pagination and sorting for List.
type MovieListParams struct {
	Page     int
	PageSize int
	SortBy   string
	SortAsc  bool
}

// MovieStore is the read surface over the movies collection.
type MovieStore interface {
	// List returns one page of movies plus the total collection count. The
	// count is taken independently of the window so it stays correct for any
	// page. Order among documents with equal sort keys is store-defined; no
	// secondary tie-break is applied, so such documents may shift between
	// pages.
	List(ctx context.Context, params MovieListParams) ([]*domain.Movie, int, error)
	GetByID(ctx context.Context, id string) (*domain.Movie, error)
	// DistinctValues returns the distinct values of field across all movies,
	// with empty and whitespace-only entries removed, deduplicated and sorted
	// lexicographically ascending. The set is recomputed per call; page
	// boundaries derived from it are only consistent within one request.
	DistinctValues(ctx context.Context, field DistinctField) ([]string, error)
	// Search returns at most limit movies matching query under the store's
	// text-matching rules, ordered by descending relevance score.
	Search(ctx context.Context, query string, limit int) ([]*domain.Movie, error)
	Ping(ctx context.Context) error
}

// CommentStore is the read surface over the comments collection.
type CommentStore interface {
	// ListByMovie returns all comments for one movie, newest first.
	ListByMovie(ctx context.Context, movieID string) ([]*domain.Comment, error)
}

// DefaultSortField is the sort applied when the caller names no field or an
// unknown one.
const DefaultSortField = "released"

// sortFields enumerates the movie attributes a caller may sort by. Arbitrary
// field names are not forwarded to the store; anything outside this set falls
// back to DefaultSortField.
var sortFields = map[string]struct{}{
	"released":    {},
	"title":       {},
	"year":        {},
	"runtime":     {},
	"lastupdated": {},
	"imdb.rating": {},
}

// ResolveSortField maps a caller-supplied sort name onto the allow-list.
func ResolveSortField(name string) string {
	if _, ok := sortFields[name]; ok {
		return name
	}
	return DefaultSortField
}

// cleanDistinct drops empty and whitespace-only values, deduplicates, and
// sorts ascending so that pagination over the set is reproducible.
func cleanDistinct(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	cleaned := make([]string, 0, len(values))
	for _, v := range values {
		if strings.TrimSpace(v) == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		cleaned = append(cleaned, v)
	}
	sort.Strings(cleaned)
	return cleaned
}
