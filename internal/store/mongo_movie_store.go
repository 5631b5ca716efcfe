package store

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"movie-catalog-service/internal/domain"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// MongoMovieStore implements MovieStore on the movies collection.
type MongoMovieStore struct {
	collection *mongo.Collection
	logger     *slog.Logger
	timeout    time.Duration
}

// NewMongoMovieStore creates a new MongoMovieStore. The database handle must
// already be connected.
func NewMongoMovieStore(db *mongo.Database, logger *slog.Logger, timeout time.Duration) (*MongoMovieStore, error) {
	if db == nil {
		return nil, errors.New("database handle cannot be nil")
	}
	return &MongoMovieStore{
		collection: db.Collection(moviesCollection),
		logger:     logger,
		timeout:    timeout,
	}, nil
}

// EnsureIndexes creates the composite text index the search endpoint relies
// on. CreateOne is a no-op when an equivalent index already exists.
func (s *MongoMovieStore) EnsureIndexes(ctx context.Context) error {
	opCtx, cancel := withTimeout(ctx, s.timeout)
	defer cancel()

	model := mongo.IndexModel{Keys: bson.D{
		{Key: "title", Value: "text"},
		{Key: "fullplot", Value: "text"},
		{Key: "cast", Value: "text"},
		{Key: "genres", Value: "text"},
	}}
	if _, err := s.collection.Indexes().CreateOne(opCtx, model); err != nil {
		return fmt.Errorf("failed to create text index: %w", err)
	}
	return nil
}

// List returns one page of movies plus the full collection count.
func (s *MongoMovieStore) List(ctx context.Context, params MovieListParams) ([]*domain.Movie, int, error) {
	opCtx, cancel := withTimeout(ctx, s.timeout)
	defer cancel()

	total, err := s.collection.CountDocuments(opCtx, bson.D{})
	if err != nil {
		s.logger.ErrorContext(ctx, "Failed to count movies", slog.String("error", err.Error()))
		return nil, 0, fmt.Errorf("failed to count movies: %w", err)
	}

	order := -1
	if params.SortAsc {
		order = 1
	}
	opts := options.Find().
		SetSort(bson.D{{Key: ResolveSortField(params.SortBy), Value: order}}).
		SetSkip(int64(params.PageSize * (params.Page - 1))).
		SetLimit(int64(params.PageSize))

	cursor, err := s.collection.Find(opCtx, bson.D{}, opts)
	if err != nil {
		s.logger.ErrorContext(ctx, "Failed to list movies", slog.String("error", err.Error()))
		return nil, 0, fmt.Errorf("failed to list movies: %w", err)
	}
	defer cursor.Close(opCtx)

	var movies []*domain.Movie
	if err := cursor.All(opCtx, &movies); err != nil {
		return nil, 0, fmt.Errorf("failed to decode movies: %w", err)
	}
	if movies == nil {
		movies = []*domain.Movie{}
	}
	return movies, int(total), nil
}

// GetByID finds a single movie by its hex object id.
func (s *MongoMovieStore) GetByID(ctx context.Context, id string) (*domain.Movie, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrInvalidMovieID
	}

	opCtx, cancel := withTimeout(ctx, s.timeout)
	defer cancel()

	var movie domain.Movie
	err = s.collection.FindOne(opCtx, bson.M{"_id": oid}).Decode(&movie)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrMovieNotFound
		}
		s.logger.ErrorContext(ctx, "Failed to get movie by ID", slog.String("movieID", id), slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to get movie by id: %w", err)
	}
	return &movie, nil
}

// DistinctValues runs a store-level distinct on field and returns the
// cleaned, deterministically ordered value set.
func (s *MongoMovieStore) DistinctValues(ctx context.Context, field DistinctField) ([]string, error) {
	opCtx, cancel := withTimeout(ctx, s.timeout)
	defer cancel()

	raw, err := s.collection.Distinct(opCtx, string(field), bson.D{})
	if err != nil {
		s.logger.ErrorContext(ctx, "Failed to get distinct values", slog.String("field", string(field)), slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to get distinct %s: %w", field, err)
	}

	values := make([]string, 0, len(raw))
	for _, v := range raw {
		if str, ok := v.(string); ok {
			values = append(values, str)
		}
	}
	return cleanDistinct(values), nil
}

// Search runs a text-relevance query against the composite text index and
// returns matches ordered by descending textScore, capped at limit.
func (s *MongoMovieStore) Search(ctx context.Context, query string, limit int) ([]*domain.Movie, error) {
	opCtx, cancel := withTimeout(ctx, s.timeout)
	defer cancel()

	filter := bson.M{"$text": bson.M{"$search": query}}
	opts := options.Find().
		SetSort(bson.D{{Key: "score", Value: bson.M{"$meta": "textScore"}}}).
		SetProjection(bson.M{"score": bson.M{"$meta": "textScore"}}).
		SetLimit(int64(limit))

	cursor, err := s.collection.Find(opCtx, filter, opts)
	if err != nil {
		s.logger.ErrorContext(ctx, "Failed to search movies", slog.String("query", query), slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to search movies: %w", err)
	}
	defer cursor.Close(opCtx)

	var movies []*domain.Movie
	if err := cursor.All(opCtx, &movies); err != nil {
		return nil, fmt.Errorf("failed to decode search results: %w", err)
	}
	if movies == nil {
		movies = []*domain.Movie{}
	}
	return movies, nil
}

// Ping verifies connectivity to the underlying deployment.
func (s *MongoMovieStore) Ping(ctx context.Context) error {
	opCtx, cancel := withTimeout(ctx, s.timeout)
	defer cancel()
	return s.collection.Database().Client().Ping(opCtx, readpref.Primary())
}
