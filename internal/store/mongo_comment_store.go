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
)

// MongoCommentStore implements CommentStore on the comments collection.
type MongoCommentStore struct {
	collection *mongo.Collection
	logger     *slog.Logger
	timeout    time.Duration
}

// NewMongoCommentStore creates a new MongoCommentStore.
func NewMongoCommentStore(db *mongo.Database, logger *slog.Logger, timeout time.Duration) (*MongoCommentStore, error) {
	if db == nil {
		return nil, errors.New("database handle cannot be nil")
	}
	return &MongoCommentStore{
		collection: db.Collection(commentsCollection),
		logger:     logger,
		timeout:    timeout,
	}, nil
}

// ListByMovie returns every comment referencing the movie, newest first.
// The full set is returned; any display cap is the consumer's concern.
func (s *MongoCommentStore) ListByMovie(ctx context.Context, movieID string) ([]*domain.Comment, error) {
	oid, err := primitive.ObjectIDFromHex(movieID)
	if err != nil {
		return nil, ErrInvalidMovieID
	}

	opCtx, cancel := withTimeout(ctx, s.timeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "date", Value: -1}})
	cursor, err := s.collection.Find(opCtx, bson.M{"movie_id": oid}, opts)
	if err != nil {
		s.logger.ErrorContext(ctx, "Failed to list comments", slog.String("movieID", movieID), slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}
	defer cursor.Close(opCtx)

	var comments []*domain.Comment
	if err := cursor.All(opCtx, &comments); err != nil {
		return nil, fmt.Errorf("failed to decode comments: %w", err)
	}
	if comments == nil {
		comments = []*domain.Comment{}
	}
	return comments, nil
}
