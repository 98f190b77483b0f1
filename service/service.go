// Package service exposes the solver over HTTP.  It fronts the
// engine with a write-through solve cache: a puzzle seen before
// is answered from storage, a new one is solved and recorded.
package service

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/ancientHacker/xudoku.go/puzzle"
	"github.com/ancientHacker/xudoku.go/storage"
)

/*

metrics

*/

var (
	solvesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "xudoku_solves_total",
		Help: "Solve requests by outcome.",
	}, []string{"outcome"}) // solved, unsolvable, invalid
	cacheHitsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "xudoku_cache_hits_total",
		Help: "Solve requests answered from the cache.",
	})
)

/*

the service

*/

// A Store is where the service records and looks up solves.  The
// storage package's Store satisfies it; tests use a stub.
type Store interface {
	LookupSolve(puzzle string) (*storage.SolveRecord, bool, error)
	SaveSolve(ctx context.Context, rec *storage.SolveRecord) error
	RecentSolves(ctx context.Context, limit int) ([]storage.SolveRecord, error)
}

// A Service carries the handlers' shared state.
type Service struct {
	store  Store
	logger zerolog.Logger
}

// New creates a Service over the given store.
func New(store Store, logger zerolog.Logger) *Service {
	return &Service{store: store, logger: logger}
}

// Router builds the gin engine with all routes registered.
func (s *Service) Router() *gin.Engine {
	e := gin.New()
	e.Use(gin.Recovery())
	v1 := e.Group("/api").Group("/v1")
	v1.POST("/solve", s.Solve)
	v1.GET("/solves/recent", s.Recent)
	e.GET("/metrics", gin.WrapH(promhttp.Handler()))
	return e
}

/*

handlers

*/

type solveRequest struct {
	Puzzle string `json:"puzzle" binding:"required"`
}

type solveResponse struct {
	Puzzle    string `json:"puzzle"`
	Solution  string `json:"solution"`
	Steps     int    `json:"steps"`
	ElapsedUs int64  `json:"elapsed_us"`
	Cached    bool   `json:"cached"`
}

// Solve answers POST /api/v1/solve.  Malformed input is a 400,
// an unsolvable puzzle a 422; both are ordinary outcomes, not
// server failures.
func (s *Service) Solve(c *gin.Context) {
	var req solveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		solvesTotal.WithLabelValues("invalid").Inc()
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// answered before?
	if rec, found, err := s.store.LookupSolve(req.Puzzle); err != nil {
		// a broken cache shouldn't block solving; log and move on
		s.logger.Warn().Err(err).Msg("solve cache lookup")
	} else if found {
		cacheHitsTotal.Inc()
		solvesTotal.WithLabelValues("solved").Inc()
		c.JSON(http.StatusOK, solveResponse{
			Puzzle:    rec.Puzzle,
			Solution:  rec.Solution,
			Steps:     rec.Steps,
			ElapsedUs: rec.Elapsed.Microseconds(),
			Cached:    true,
		})
		return
	}

	start := time.Now()
	solved, trace, err := puzzle.Solve(req.Puzzle)
	elapsed := time.Since(start)
	if err != nil {
		if errors.Is(err, puzzle.ErrUnsolvable) {
			solvesTotal.WithLabelValues("unsolvable").Inc()
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
			return
		}
		solvesTotal.WithLabelValues("invalid").Inc()
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	rec := &storage.SolveRecord{
		Puzzle:   req.Puzzle,
		Solution: solved.Signature(),
		Steps:    trace.Len(),
		Elapsed:  elapsed,
	}
	if err := s.store.SaveSolve(c.Request.Context(), rec); err != nil {
		// the client still gets the solution
		s.logger.Warn().Err(err).Msg("solve record save")
	}

	solvesTotal.WithLabelValues("solved").Inc()
	s.logger.Info().
		Str("puzzle", req.Puzzle).
		Int("steps", rec.Steps).
		Dur("elapsed", elapsed).
		Msg("solved")
	c.JSON(http.StatusOK, solveResponse{
		Puzzle:    rec.Puzzle,
		Solution:  rec.Solution,
		Steps:     rec.Steps,
		ElapsedUs: rec.Elapsed.Microseconds(),
	})
}

// Recent answers GET /api/v1/solves/recent.
func (s *Service) Recent(c *gin.Context) {
	recs, err := s.store.RecentSolves(c.Request.Context(), 20)
	if err != nil {
		s.logger.Error().Err(err).Msg("recent solves")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "storage unavailable"})
		return
	}
	if recs == nil {
		recs = []storage.SolveRecord{}
	}
	c.JSON(http.StatusOK, recs)
}
