package store

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"movie-catalog-service/internal/domain"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MockMovieStore is an in-memory MovieStore used by handler tests. It mirrors
// the Mongo implementation's contracts: full-count listing, cleaned distinct
// sets, score-ordered capped search.
type MockMovieStore struct {
	mu     sync.RWMutex
	movies []*domain.Movie

	// FailWith, when set, is returned by every operation. Lets tests exercise
	// the store-error path.
	FailWith error
}

// NewMockMovieStore creates a mock seeded with the given movies.
func NewMockMovieStore(movies ...*domain.Movie) *MockMovieStore {
	return &MockMovieStore{movies: movies}
}

func (m *MockMovieStore) List(ctx context.Context, params MovieListParams) ([]*domain.Movie, int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.FailWith != nil {
		return nil, 0, m.FailWith
	}

	sorted := make([]*domain.Movie, len(m.movies))
	copy(sorted, m.movies)

	field := ResolveSortField(params.SortBy)
	sort.SliceStable(sorted, func(i, j int) bool {
		less := movieLess(sorted[i], sorted[j], field)
		if params.SortAsc {
			return less
		}
		return movieLess(sorted[j], sorted[i], field)
	})

	total := len(sorted)
	start := params.PageSize * (params.Page - 1)
	if start >= total || start < 0 {
		return []*domain.Movie{}, total, nil
	}
	end := start + params.PageSize
	if end > total {
		end = total
	}
	page := make([]*domain.Movie, end-start)
	copy(page, sorted[start:end])
	return page, total, nil
}

func (m *MockMovieStore) GetByID(ctx context.Context, id string) (*domain.Movie, error) {
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return nil, ErrInvalidMovieID
	}

	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.FailWith != nil {
		return nil, m.FailWith
	}
	for _, movie := range m.movies {
		if movie.ID.Hex() == id {
			movieCopy := *movie
			return &movieCopy, nil
		}
	}
	return nil, ErrMovieNotFound
}

func (m *MockMovieStore) DistinctValues(ctx context.Context, field DistinctField) ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.FailWith != nil {
		return nil, m.FailWith
	}

	var values []string
	for _, movie := range m.movies {
		switch field {
		case FieldDirectors:
			values = append(values, movie.Directors...)
		case FieldCast:
			values = append(values, movie.Cast...)
		}
	}
	return cleanDistinct(values), nil
}

func (m *MockMovieStore) Search(ctx context.Context, query string, limit int) ([]*domain.Movie, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.FailWith != nil {
		return nil, m.FailWith
	}

	type scored struct {
		movie *domain.Movie
		score int
	}
	terms := strings.Fields(strings.ToLower(query))
	var matches []scored
	for _, movie := range m.movies {
		score := 0
		for _, term := range terms {
			if strings.Contains(strings.ToLower(movie.Title), term) {
				score += 2
			}
			if strings.Contains(strings.ToLower(movie.FullPlot), term) {
				score++
			}
			if containsFold(movie.Cast, term) {
				score++
			}
			if containsFold(movie.Genres, term) {
				score++
			}
		}
		if score > 0 {
			matches = append(matches, scored{movie: movie, score: score})
		}
	}

	sort.SliceStable(matches, func(i, j int) bool { return matches[i].score > matches[j].score })
	if len(matches) > limit {
		matches = matches[:limit]
	}
	results := make([]*domain.Movie, len(matches))
	for i, match := range matches {
		movieCopy := *match.movie
		results[i] = &movieCopy
	}
	return results, nil
}

func (m *MockMovieStore) Ping(ctx context.Context) error {
	if m.FailWith != nil {
		return m.FailWith
	}
	return nil
}

func containsFold(values []string, term string) bool {
	for _, v := range values {
		if strings.Contains(strings.ToLower(v), term) {
			return true
		}
	}
	return false
}

// movieLess is the ascending comparator for a resolved sort field. Absent
// optional values sort before present ones, matching no particular store
// guarantee; the listing contract leaves equal-key order undefined anyway.
func movieLess(a, b *domain.Movie, field string) bool {
	switch field {
	case "title":
		return a.Title < b.Title
	case "year":
		return a.Year < b.Year
	case "runtime":
		return a.Runtime < b.Runtime
	case "imdb.rating":
		return imdbRating(a) < imdbRating(b)
	case "lastupdated":
		return timeOrZero(a.LastUpdated).Before(timeOrZero(b.LastUpdated))
	default: // released
		return timeOrZero(a.Released).Before(timeOrZero(b.Released))
	}
}

func imdbRating(m *domain.Movie) float64 {
	if m.IMDB == nil {
		return 0
	}
	return m.IMDB.Rating
}

func timeOrZero(t *time.Time) time.Time {
	if t == nil {
		return time.Time{}
	}
	return *t
}

// MockCommentStore is an in-memory CommentStore for handler tests.
type MockCommentStore struct {
	mu       sync.RWMutex
	comments []*domain.Comment

	FailWith error
}

// NewMockCommentStore creates a mock seeded with the given comments.
func NewMockCommentStore(comments ...*domain.Comment) *MockCommentStore {
	return &MockCommentStore{comments: comments}
}

func (m *MockCommentStore) ListByMovie(ctx context.Context, movieID string) ([]*domain.Comment, error) {
	oid, err := primitive.ObjectIDFromHex(movieID)
	if err != nil {
		return nil, ErrInvalidMovieID
	}

	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.FailWith != nil {
		return nil, m.FailWith
	}

	matched := []*domain.Comment{}
	for _, comment := range m.comments {
		if comment.MovieID == oid {
			commentCopy := *comment
			matched = append(matched, &commentCopy)
		}
	}
	sort.SliceStable(matched, func(i, j int) bool { return matched[i].Date.After(matched[j].Date) })
	return matched, nil
}
