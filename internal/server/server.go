// Package server exposes the calculation engine over HTTP. Handlers are
// thin: validation, one call into the core, serialization. All request
// state is request-scoped; the only shared object is the read-only
// reference store.
package server

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/mfeld/parity-pulse/internal/brief"
	"github.com/mfeld/parity-pulse/internal/calculator"
	"github.com/mfeld/parity-pulse/internal/classifier"
	"github.com/mfeld/parity-pulse/internal/refdata"
)

// Server wires the engine components behind a gin router.
type Server struct {
	store      *refdata.Store
	classifier *classifier.Classifier
	calc       *calculator.Calculator
	briefs     *brief.Generator
	logger     *slog.Logger
	upgrader   websocket.Upgrader
}

// New creates a server over the given components.
func New(store *refdata.Store, cls *classifier.Classifier, calc *calculator.Calculator, briefs *brief.Generator, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{
		store:      store,
		classifier: cls,
		calc:       calc,
		briefs:     briefs,
		logger:     logger,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// The ticker stream is public, read-only, illustrative data.
			CheckOrigin: func(*http.Request) bool { return true },
		},
	}
}

// Router builds the HTTP routes.
func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(s.requestLogger())

	api := r.Group("/api")
	api.POST("/calculate", s.handleCalculate)
	api.GET("/countries", s.handleCountries)
	api.GET("/ticker", s.handleTicker)
	api.GET("/ticker/stream", s.handleTickerStream)
	api.POST("/consultant-brief", s.handleConsultantBrief)

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	return r
}

// requestLogger tags every request with an ID and logs its outcome.
func (s *Server) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := uuid.NewString()
		c.Set("request_id", requestID)

		start := time.Now()
		c.Next()

		s.logger.Info("request handled",
			"request_id", requestID,
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration", time.Since(start))
	}
}
