package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/katalvlaran/mazefinder/maze"
	"github.com/katalvlaran/mazefinder/render"
	"github.com/katalvlaran/mazefinder/search"
)

type strategyDTO struct {
	Name  string `json:"name"`
	Title string `json:"title"`
}

type familyDTO struct {
	Name       string        `json:"name"`
	Strategies []strategyDTO `json:"strategies"`
}

type position struct {
	Column int `json:"column"`
	Row    int `json:"row"`
}

// SolveRequest is the body of POST /api/solve. Seed and MaxDepth override
// the configured search defaults when present.
type SolveRequest struct {
	Maze     string `json:"maze" binding:"required"`
	Strategy string `json:"strategy" binding:"required"`
	Seed     *int64 `json:"seed"`
	MaxDepth *int   `json:"maxDepth"`
}

// SolveResponse is the result of one run.
type SolveResponse struct {
	RunID           string     `json:"runId"`
	Strategy        string     `json:"strategy"`
	Family          string     `json:"family"`
	Outcome         string     `json:"outcome"`
	Path            []position `json:"path"`
	PathLength      int        `json:"pathLength"`
	Explored        int        `json:"explored"`
	Summary         string     `json:"summary,omitempty"`
	Grid            []string   `json:"grid"`
	ExecutionTimeMs float64    `json:"executionTimeMs"`
}

func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) strategies(c *gin.Context) {
	families := search.Families()
	out := make([]familyDTO, 0, len(families))
	for _, f := range families {
		dto := familyDTO{Name: string(f)}
		for _, e := range search.ByFamily(f) {
			dto.Strategies = append(dto.Strategies, strategyDTO{Name: e.Name, Title: e.Title})
		}
		out = append(out, dto)
	}
	c.JSON(http.StatusOK, gin.H{"families": out})
}

func (s *Server) solve(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, s.cfg.MaxMazeBytes)

	var req SolveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.fail(c, &badRequest{err})
		return
	}
	entry, err := search.Lookup(req.Strategy)
	if err != nil {
		s.fail(c, err)
		return
	}
	p, err := maze.ParseString(req.Maze)
	if err != nil {
		s.fail(c, err)
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), s.cfg.RequestTimeout)
	defer cancel()
	opts := []search.Option{
		search.WithContext(ctx),
		search.WithSeed(s.search.Seed),
		search.WithMaxDepth(s.search.MaxDepth),
	}
	if req.Seed != nil {
		opts = append(opts, search.WithSeed(*req.Seed))
	}
	if req.MaxDepth != nil {
		opts = append(opts, search.WithMaxDepth(*req.MaxDepth))
	}

	runID := uuid.NewString()
	start := time.Now()
	res, err := entry.Run(p, nil, opts...)
	elapsed := time.Since(start)
	if err != nil {
		s.fail(c, err)
		return
	}

	s.log.Debug("solved",
		slog.String("run_id", runID),
		slog.String("strategy", entry.Name),
		slog.String("outcome", res.Outcome.String()),
		slog.Int("explored", res.Explored),
	)

	path := make([]position, len(res.Path))
	for i, pos := range res.Path {
		path[i] = position{Column: pos.Column, Row: pos.Row}
	}
	c.JSON(http.StatusOK, SolveResponse{
		RunID:           runID,
		Strategy:        entry.Name,
		Family:          string(entry.Family),
		Outcome:         res.Outcome.String(),
		Path:            path,
		PathLength:      res.Moves(),
		Explored:        res.Explored,
		Summary:         render.FormatPath(res.Path),
		Grid:            strings.Split(render.Plain().Grid(p.Grid()), "\n"),
		ExecutionTimeMs: float64(elapsed.Microseconds()) / 1000.0,
	})
}

// fail maps err to a status code and writes {"error": ...}.
func (s *Server) fail(c *gin.Context, err error) {
	status := statusFor(err)
	if status >= http.StatusInternalServerError {
		s.log.Error("solve failed", slog.Any("err", err))
	}
	c.AbortWithStatusJSON(status, gin.H{"error": err.Error()})
}

func statusFor(err error) int {
	var tooLarge *http.MaxBytesError
	switch {
	case errors.As(err, &tooLarge):
		return http.StatusRequestEntityTooLarge
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	case errors.Is(err, context.Canceled):
		return http.StatusServiceUnavailable
	case errors.Is(err, maze.ErrFormat),
		errors.Is(err, search.ErrUnknownStrategy),
		errors.Is(err, search.ErrOptionViolation):
		return http.StatusBadRequest
	}
	var bad *badRequest
	if errors.As(err, &bad) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

// badRequest marks a malformed or invalid request body.
type badRequest struct{ err error }

func (e *badRequest) Error() string { return "invalid request: " + e.err.Error() }
func (e *badRequest) Unwrap() error { return e.err }
