// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package server exposes the generation pipeline over HTTP.
package server

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/pdiddy/listing-engine/internal/pipeline"
	"github.com/pdiddy/listing-engine/internal/render"
	"github.com/pdiddy/listing-engine/internal/runlog"
	"github.com/pdiddy/listing-engine/pkg/types"
)

// Server wires the pipeline runner and run log into HTTP handlers. The
// runner is safe to share across requests: each Run owns its own state.
type Server struct {
	runner *pipeline.Runner
	store  *runlog.Store
}

// New builds a server. store may be nil to disable run persistence.
func New(runner *pipeline.Runner, store *runlog.Store) *Server {
	return &Server{runner: runner, store: store}
}

// Routes builds the gin engine with all endpoints registered.
func (s *Server) Routes() *gin.Engine {
	r := gin.Default()
	r.GET("/healthz", s.handleHealth)
	api := r.Group("/api")
	api.POST("/generate", s.handleGenerate)
	api.GET("/runs", s.handleListRuns)
	api.GET("/runs/:id", s.handleGetRun)
	return r
}

type generateRequest struct {
	// Input is the property listing record.
	Input types.InputRecord `json:"input" binding:"required"`
}

type generateResponse struct {
	RunID  string        `json:"run_id,omitempty"`
	HTML   string        `json:"html,omitempty"`
	Result *types.Result `json:"result"`
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// handleGenerate runs the full pipeline for one record. A run that never
// produced a document is a 502: the verdict is still returned so callers
// can see why.
func (s *Server) handleGenerate(c *gin.Context) {
	var req generateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	res, err := s.runner.Run(c.Request.Context(), req.Input)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if res.Copy != nil {
		html, err := render.HTML(res.Copy)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		res.HTML = html
	}

	resp := generateResponse{HTML: res.HTML, Result: res}
	if s.store != nil {
		id, err := s.store.Record(c.Request.Context(), req.Input, res)
		if err != nil {
			// Persistence failure must not fail the generation request,
			// but it has to reach the logs.
			c.Error(fmt.Errorf("recording run: %w", err))
		} else {
			resp.RunID = id
		}
	}

	if res.Copy == nil {
		c.JSON(http.StatusBadGateway, resp)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (s *Server) handleListRuns(c *gin.Context) {
	if s.store == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "run log disabled"})
		return
	}
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	runs, err := s.store.List(c.Request.Context(), limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"runs": runs})
}

func (s *Server) handleGetRun(c *gin.Context) {
	if s.store == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "run log disabled"})
		return
	}
	run, err := s.store.Get(c.Request.Context(), c.Param("id"))
	if errors.Is(err, runlog.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "run not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, run)
}
