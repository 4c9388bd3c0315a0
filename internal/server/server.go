package server

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/agenthands/chronicle/internal/config"
	"github.com/agenthands/chronicle/internal/core"
	"github.com/agenthands/chronicle/internal/driver"
	"github.com/agenthands/chronicle/internal/logger"
	"github.com/agenthands/chronicle/internal/version"
)

// EventSource produces the historic events for a viewer language tag.
type EventSource interface {
	HistoricEventsAll(ctx context.Context, languageTag string) []string
}

// VersionSource reports running and released versions.
type VersionSource interface {
	Latest(ctx context.Context) string
	UpdateAvailable(ctx context.Context) bool
}

type Server struct {
	Events  EventSource
	Version VersionSource
	Current string
}

// NewServer wires the SPARQL driver, the chronicle and the version checker
// from cfg.
func NewServer(cfg *config.Config) *Server {
	d := driver.NewSPARQLDriver(
		cfg.Query.Endpoint,
		cfg.Query.UserAgent,
		cfg.QueryTimeout(),
		cfg.Query.RequestsPerSecond,
		cfg.Query.Burst,
	)

	checker := version.NewChecker(
		cfg.Version.Current,
		cfg.Version.LatestURL,
		time.Duration(cfg.Version.TimeoutSeconds)*time.Second,
		time.Duration(cfg.Version.CacheHours)*time.Hour,
	)

	return &Server{
		Events:  core.NewChronicle(d, cfg),
		Version: checker,
		Current: cfg.Version.Current,
	}
}

func (s *Server) SetupRouter() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), RequestLogger())

	r.GET("/events", s.GetEvents)
	r.GET("/version", s.GetVersion)
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	return r
}

// RequestLogger tags each request with an ID and logs its outcome.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader("X-Request-ID")
		if requestID == "" {
			requestID = uuid.New().String()
		}
		c.Header("X-Request-ID", requestID)
		c.Request = c.Request.WithContext(logger.WithRequestID(c.Request.Context(), requestID))

		start := time.Now()
		c.Next()

		logger.FromContext(c.Request.Context()).Infow("Request handled",
			logger.FieldMethod, c.Request.Method,
			logger.FieldPath, c.Request.URL.Path,
			logger.FieldStatus, c.Writer.Status(),
			logger.FieldDurationMS, time.Since(start).Milliseconds())
	}
}

// GetEvents serves the event records for ?lang= (default "en"). With
// ?format=text the records are returned as plain text separated by blank lines.
func (s *Server) GetEvents(c *gin.Context) {
	lang := c.DefaultQuery("lang", "en")
	events := s.Events.HistoricEventsAll(c.Request.Context(), lang)
	if events == nil {
		events = []string{}
	}

	if c.Query("format") == "text" {
		c.String(http.StatusOK, strings.Join(events, "\n\n"))
		return
	}

	c.JSON(http.StatusOK, gin.H{"events": events})
}

func (s *Server) GetVersion(c *gin.Context) {
	ctx := c.Request.Context()
	c.JSON(http.StatusOK, gin.H{
		"version":          s.Current,
		"latest":           s.Version.Latest(ctx),
		"update_available": s.Version.UpdateAvailable(ctx),
	})
}
