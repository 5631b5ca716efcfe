package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"movie-catalog-service/internal/domain"
	"movie-catalog-service/internal/pagination"
	"movie-catalog-service/internal/store"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
)

// maxSearchResults caps the search endpoint. Search offers no pagination;
// the cap is the whole contract.
const maxSearchResults = 20

// Error kinds carried in the wire contract alongside the human-readable message.
const (
	errKindValidation = "validation_error"
	errKindNotFound   = "not_found"
	errKindInternal   = "internal_server_error"
)

type errorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// MovieHandler contains the dependencies for the catalog HTTP handlers.
type MovieHandler struct {
	movies    store.MovieStore
	comments  store.CommentStore
	logger    *slog.Logger
	validator *validator.Validate
}

// NewMovieHandler creates a new MovieHandler.
func NewMovieHandler(movies store.MovieStore, comments store.CommentStore, l *slog.Logger, v *validator.Validate) *MovieHandler {
	return &MovieHandler{
		movies:    movies,
		comments:  comments,
		logger:    l,
		validator: v,
	}
}

func (h *MovieHandler) respondJSON(w http.ResponseWriter, r *http.Request, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			h.logger.ErrorContext(r.Context(), "Failed to encode JSON response", slog.String("error", err.Error()), slog.String("path", r.URL.Path))
		}
	}
}

func (h *MovieHandler) respondError(w http.ResponseWriter, r *http.Request, status int, kind, message string) {
	h.respondJSON(w, r, status, errorResponse{Error: kind, Message: message})
}

// GetMovies returns a sorted, paginated slice of the movies collection.
func (h *MovieHandler) GetMovies(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	queryParams := r.URL.Query()

	page := pagination.ParsePage(queryParams.Get("page"))
	pageSize := pagination.ParsePageSize(queryParams.Get("limit"))
	params := store.MovieListParams{
		Page:     page,
		PageSize: pageSize,
		SortBy:   queryParams.Get("sort"),
		SortAsc:  queryParams.Get("order") == "asc",
	}

	movies, total, err := h.movies.List(ctx, params)
	if err != nil {
		h.logger.ErrorContext(ctx, "Failed to list movies from store", slog.String("error", err.Error()))
		h.respondError(w, r, http.StatusInternalServerError, errKindInternal, "Failed to retrieve movies")
		return
	}

	window := pagination.Paginate(page, pageSize, total)
	h.respondJSON(w, r, http.StatusOK, struct {
		Movies      []*domain.Movie `json:"movies"`
		CurrentPage int             `json:"currentPage"`
		TotalPages  int             `json:"totalPages"`
		TotalMovies int             `json:"totalMovies"`
		HasNext     bool            `json:"hasNext"`
		HasPrev     bool            `json:"hasPrev"`
	}{
		Movies:      movies,
		CurrentPage: window.Page,
		TotalPages:  window.TotalPages,
		TotalMovies: window.TotalItems,
		HasNext:     window.HasNext,
		HasPrev:     window.HasPrev,
	})
}

// GetDirectors returns the paginated distinct directors listing.
func (h *MovieHandler) GetDirectors(w http.ResponseWriter, r *http.Request) {
	values, window, ok := h.distinctPage(w, r, store.FieldDirectors)
	if !ok {
		return
	}
	h.respondJSON(w, r, http.StatusOK, struct {
		Directors      []string `json:"directors"`
		CurrentPage    int      `json:"currentPage"`
		TotalPages     int      `json:"totalPages"`
		TotalDirectors int      `json:"totalDirectors"`
		HasNext        bool     `json:"hasNext"`
		HasPrev        bool     `json:"hasPrev"`
	}{
		Directors:      values,
		CurrentPage:    window.Page,
		TotalPages:     window.TotalPages,
		TotalDirectors: window.TotalItems,
		HasNext:        window.HasNext,
		HasPrev:        window.HasPrev,
	})
}

// GetCast returns the paginated distinct cast listing.
func (h *MovieHandler) GetCast(w http.ResponseWriter, r *http.Request) {
	values, window, ok := h.distinctPage(w, r, store.FieldCast)
	if !ok {
		return
	}
	h.respondJSON(w, r, http.StatusOK, struct {
		Cast        []string `json:"cast"`
		CurrentPage int      `json:"currentPage"`
		TotalPages  int      `json:"totalPages"`
		TotalActors int      `json:"totalActors"`
		HasNext     bool     `json:"hasNext"`
		HasPrev     bool     `json:"hasPrev"`
	}{
		Cast:        values,
		CurrentPage: window.Page,
		TotalPages:  window.TotalPages,
		TotalActors: window.TotalItems,
		HasNext:     window.HasNext,
		HasPrev:     window.HasPrev,
	})
}

// distinctPage fetches the distinct value set for field and windows it.
// The set is recomputed per request, so totals and page boundaries are only
// consistent within this one call; concurrent writes may shift values across
// pages between requests. Accepted trade-off, not mitigated.
func (h *MovieHandler) distinctPage(w http.ResponseWriter, r *http.Request, field store.DistinctField) ([]string, pagination.Window, bool) {
	ctx := r.Context()
	queryParams := r.URL.Query()

	page := pagination.ParsePage(queryParams.Get("page"))
	pageSize := pagination.ParsePageSize(queryParams.Get("limit"))

	values, err := h.movies.DistinctValues(ctx, field)
	if err != nil {
		h.logger.ErrorContext(ctx, "Failed to get distinct values from store", slog.String("field", string(field)), slog.String("error", err.Error()))
		h.respondError(w, r, http.StatusInternalServerError, errKindInternal, "Failed to retrieve "+string(field))
		return nil, pagination.Window{}, false
	}

	window := pagination.Paginate(page, pageSize, len(values))
	return pagination.Slice(values, window), window, true
}

// GetMovieByID returns one movie or a not-found error.
func (h *MovieHandler) GetMovieByID(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	movieID := mux.Vars(r)["movieId"]

	movie, err := h.movies.GetByID(ctx, movieID)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrMovieNotFound):
			h.respondError(w, r, http.StatusNotFound, errKindNotFound, "Movie not found")
		case errors.Is(err, store.ErrInvalidMovieID):
			h.respondError(w, r, http.StatusBadRequest, errKindValidation, "Invalid movie id")
		default:
			h.logger.ErrorContext(ctx, "Error finding movie by ID", slog.String("movieID", movieID), slog.String("error", err.Error()))
			h.respondError(w, r, http.StatusInternalServerError, errKindInternal, "Error finding movie")
		}
		return
	}
	h.respondJSON(w, r, http.StatusOK, movie)
}

// GetMovieComments returns every comment for a movie, newest first.
func (h *MovieHandler) GetMovieComments(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	movieID := mux.Vars(r)["movieId"]

	comments, err := h.comments.ListByMovie(ctx, movieID)
	if err != nil {
		if errors.Is(err, store.ErrInvalidMovieID) {
			h.respondError(w, r, http.StatusBadRequest, errKindValidation, "Invalid movie id")
			return
		}
		h.logger.ErrorContext(ctx, "Failed to list comments from store", slog.String("movieID", movieID), slog.String("error", err.Error()))
		h.respondError(w, r, http.StatusInternalServerError, errKindInternal, "Failed to retrieve comments")
		return
	}
	h.respondJSON(w, r, http.StatusOK, comments)
}

type searchRequest struct {
	Query string `validate:"required"`
}

// SearchMovies runs the relevance-ranked text search. The query is required;
// an empty one is rejected before the store is ever reached.
func (h *MovieHandler) SearchMovies(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	query := r.URL.Query().Get("q")

	if err := h.validator.StructCtx(ctx, searchRequest{Query: query}); err != nil {
		h.respondError(w, r, http.StatusBadRequest, errKindValidation, "Search query is required")
		return
	}

	movies, err := h.movies.Search(ctx, query, maxSearchResults)
	if err != nil {
		h.logger.ErrorContext(ctx, "Failed to search movies", slog.String("query", query), slog.String("error", err.Error()))
		h.respondError(w, r, http.StatusInternalServerError, errKindInternal, "Failed to search movies")
		return
	}

	h.respondJSON(w, r, http.StatusOK, struct {
		Movies []*domain.Movie `json:"movies"`
		Query  string          `json:"query"`
		Total  int             `json:"total"`
	}{
		Movies: movies,
		Query:  query,
		Total:  len(movies),
	})
}

// Healthz reports store connectivity for liveness probes.
func (h *MovieHandler) Healthz(w http.ResponseWriter, r *http.Request) {
	if err := h.movies.Ping(r.Context()); err != nil {
		h.respondError(w, r, http.StatusServiceUnavailable, errKindInternal, "store unreachable")
		return
	}
	h.respondJSON(w, r, http.StatusOK, map[string]string{"status": "ok"})
}
