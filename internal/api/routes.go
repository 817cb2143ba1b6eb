// Package api serves the leaderboard and the live spectator feed over HTTP.
package api

import (
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gin-gonic/gin"

	"github.com/vovakirdan/eggcatch/internal/registry"
	"github.com/vovakirdan/eggcatch/internal/storage"
)

const (
	defaultLimit = 10
	maxLimit     = 100
)

// ScoreReader is the read side of the score store.
type ScoreReader interface {
	TopScores(gameID string, limit int) ([]storage.ScoreEntry, error)
	HighScore(gameID string) (int, error)
	GetGameStats(gameID string) (*storage.GameStats, error)
}

// Server holds the handlers' dependencies.
type Server struct {
	scores ScoreReader
	live   http.Handler
	logger *log.Logger
}

// NewRouter builds the gin engine. live may be nil, in which case /live is
// not served.
func NewRouter(scores ScoreReader, live http.Handler, logger *log.Logger) *gin.Engine {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	s := &Server{scores: scores, live: live, logger: logger}

	router := gin.New()
	router.Use(gin.Recovery(), s.requestLogger())
	SetupRoutes(router, s)
	return router
}

// SetupRoutes configures all API routes
func SetupRoutes(router *gin.Engine, s *Server) {
	v1 := router.Group("/api/v1")
	{
		v1.GET("/health", s.health)
		v1.GET("/modes", s.modes)

		scores := v1.Group("/scores", s.requireStore)
		{
			scores.GET("/:mode", s.requireMode, s.topScores)
			scores.GET("/:mode/best", s.requireMode, s.bestScore)
		}

		v1.GET("/stats/:mode", s.requireStore, s.requireMode, s.stats)

		if s.live != nil {
			v1.GET("/live", gin.WrapH(s.live))
		}
	}
}

func (s *Server) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		s.logger.Debug("http",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"took", time.Since(start),
		)
	}
}

func (s *Server) requireMode(c *gin.Context) {
	if !registry.Exists(c.Param("mode")) {
		c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "unknown mode"})
		return
	}
	c.Next()
}

// requireStore answers 503 when the server runs without a score store.
func (s *Server) requireStore(c *gin.Context) {
	if s.scores == nil {
		c.AbortWithStatusJSON(http.StatusServiceUnavailable, gin.H{"error": "storage unavailable"})
		return
	}
	c.Next()
}

func (s *Server) storageError(c *gin.Context, err error) {
	s.logger.Error("storage", "path", c.Request.URL.Path, "err", err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": "storage unavailable"})
}

func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) modes(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"modes": registry.List()})
}

func (s *Server) topScores(c *gin.Context) {
	limit := defaultLimit
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be a positive integer"})
			return
		}
		limit = min(n, maxLimit)
	}

	mode := c.Param("mode")
	entries, err := s.scores.TopScores(mode, limit)
	if err != nil {
		s.storageError(c, err)
		return
	}
	if entries == nil {
		entries = []storage.ScoreEntry{}
	}
	c.JSON(http.StatusOK, gin.H{"mode": mode, "scores": entries})
}

func (s *Server) bestScore(c *gin.Context) {
	mode := c.Param("mode")
	best, err := s.scores.HighScore(mode)
	if err != nil {
		s.storageError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"mode": mode, "best": best})
}

func (s *Server) stats(c *gin.Context) {
	stats, err := s.scores.GetGameStats(c.Param("mode"))
	if err != nil {
		s.storageError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}
