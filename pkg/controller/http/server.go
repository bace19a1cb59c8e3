package http

import (
	"context"
	"net/http"
	"time"

	sentryhttp "github.com/getsentry/sentry-go/http"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/secmon-lab/riskboard/pkg/domain/model"
	"github.com/secmon-lab/riskboard/pkg/domain/types"
	"github.com/secmon-lab/riskboard/pkg/usecase"
	"github.com/secmon-lab/riskboard/pkg/utils/logging"
)

// RiskUseCase is the risk operations the HTTP layer depends on
type RiskUseCase interface {
	CreateRisk(ctx context.Context, hazard string, likelihood types.Likelihood, impact types.Impact) (*model.Risk, error)
	ListRisks(ctx context.Context) ([]*model.Risk, error)
	Assess(likelihood types.Likelihood, impact types.Impact) (*model.Assessment, error)
	Matrix() *usecase.RiskMatrix
}

type Server struct {
	router         *chi.Mux
	riskUC         RiskUseCase
	metricsHandler http.Handler
	enableSentry   bool
}

type Options func(*Server)

// WithMetrics exposes h at /metrics
func WithMetrics(h http.Handler) Options {
	return func(s *Server) {
		s.metricsHandler = h
	}
}

// WithSentry attaches a Sentry hub to every request and reports panics
func WithSentry(enabled bool) Options {
	return func(s *Server) {
		s.enableSentry = enabled
	}
}

func New(riskUC RiskUseCase, opts ...Options) *Server {
	r := chi.NewRouter()

	s := &Server{
		router: r,
		riskUC: riskUC,
	}
	for _, opt := range opts {
		opt(s)
	}

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(accessLogger)
	r.Use(middleware.Recoverer)
	if s.enableSentry {
		r.Use(sentryhttp.New(sentryhttp.Options{Repanic: true}).Handle)
	}

	r.Route("/api", func(r chi.Router) {
		r.Post("/risk", createRiskHandler(s.riskUC))
		r.Get("/risks", listRisksHandler(s.riskUC))
		r.Post("/assess", assessHandler(s.riskUC))
		r.Get("/matrix", matrixHandler(s.riskUC))
	})

	if s.metricsHandler != nil {
		r.Method(http.MethodGet, "/metrics", s.metricsHandler)
	}

	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// accessLogger logs HTTP requests and puts a request-scoped logger into the context
func accessLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		logger := logging.Default().With("request_id", middleware.GetReqID(r.Context()))
		ctx := logging.With(r.Context(), logger)

		defer func() {
			logger.Info("access",
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"bytes", ww.BytesWritten(),
				"duration", time.Since(start),
				"remote", r.RemoteAddr,
				"user_agent", r.UserAgent(),
			)
		}()

		next.ServeHTTP(ww, r.WithContext(ctx))
	})
}
