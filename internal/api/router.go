package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// NewRouter wires the catalog routes with the middleware chain. CORS wraps
// the whole router so preflight requests are answered even for method-scoped
// routes.
func NewRouter(handler *MovieHandler, logger *slog.Logger, allowedOrigins []string) http.Handler {
	router := mux.NewRouter()
	router.Use(RequestID, RequestLogging(logger), Metrics)

	router.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)
	router.HandleFunc("/healthz", handler.Healthz).Methods(http.MethodGet)

	apiRouter := router.PathPrefix("/api").Subrouter()
	apiRouter.HandleFunc("/movies", handler.GetMovies).Methods(http.MethodGet)
	apiRouter.HandleFunc("/movies/{movieId}", handler.GetMovieByID).Methods(http.MethodGet)
	apiRouter.HandleFunc("/movies/{movieId}/comments", handler.GetMovieComments).Methods(http.MethodGet)
	apiRouter.HandleFunc("/directors", handler.GetDirectors).Methods(http.MethodGet)
	apiRouter.HandleFunc("/cast", handler.GetCast).Methods(http.MethodGet)
	apiRouter.HandleFunc("/search", handler.SearchMovies).Methods(http.MethodGet)

	return CORS(allowedOrigins)(router)
}
