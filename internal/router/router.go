package router

import (
	"encoding/json"
	"net/http"

	"github.com/BerylCAtieno/career-feedback-api/internal/handlers"
	"github.com/BerylCAtieno/career-feedback-api/internal/middleware"
	"github.com/BerylCAtieno/career-feedback-api/internal/models"
	"github.com/BerylCAtieno/career-feedback-api/internal/services"
	"github.com/BerylCAtieno/career-feedback-api/internal/utils"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Options struct {
	MaxFileSize        int64
	CORSAllowedOrigins []string
	// Registerer receives the HTTP metrics and Gatherer backs /metrics. Both
	// are usually the same registry.
	Registerer prometheus.Registerer
	Gatherer   prometheus.Gatherer
}

func NewRouter(feedbackService services.FeedbackService, logger *utils.Logger, opts Options) (http.Handler, error) {
	promMiddleware, err := middleware.NewPrometheusMiddleware(opts.Registerer)
	if err != nil {
		return nil, err
	}

	r := mux.NewRouter()

	// Middlewares. mux only applies them to matched routes, so the 404 and 405
	// handlers are wrapped in the same chain.
	chain := []mux.MiddlewareFunc{
		middleware.RequestID(),
		middleware.Logger(logger),
		promMiddleware.Handler,
		middleware.CORS(opts.CORSAllowedOrigins),
		middleware.Recovery(logger),
	}
	r.Use(chain...)
	r.NotFoundHandler = wrap(errorHandler(http.StatusNotFound, "Not found"), chain)
	r.MethodNotAllowedHandler = wrap(errorHandler(http.StatusMethodNotAllowed, "Method not allowed"), chain)

	feedbackHandler := handlers.NewFeedbackHandler(feedbackService, logger, opts.MaxFileSize)

	// Health check
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"healthy"}`))
	}).Methods(http.MethodGet)

	r.Handle(middleware.MetricsPath, promhttp.HandlerFor(opts.Gatherer, promhttp.HandlerOpts{})).Methods(http.MethodGet)

	// Feedback endpoints. OPTIONS is routed so the CORS middleware can answer preflights.
	r.HandleFunc("/review", feedbackHandler.ReviewResume).Methods(http.MethodPost, http.MethodOptions)
	r.HandleFunc("/career/ask-chatbot", feedbackHandler.AskCareerGuidance).Methods(http.MethodPost, http.MethodOptions)
	r.HandleFunc("/mock-interview", feedbackHandler.MockInterviewFeedback).Methods(http.MethodPost, http.MethodOptions)

	return r, nil
}

// wrap applies chain to h with the first middleware outermost, matching mux.Use.
func wrap(h http.Handler, chain []mux.MiddlewareFunc) http.Handler {
	for i := len(chain) - 1; i >= 0; i-- {
		h = chain[i](h)
	}
	return h
}

func errorHandler(status int, message string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		json.NewEncoder(w).Encode(models.ErrorResponse{Error: message})
	})
}
