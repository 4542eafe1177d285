package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"net/http"
	"strconv"

	"go.uber.org/zap"

	"github.com/ObywatelTB/cztery-de/internal/geom4d"
)

func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	s.respond(w, http.StatusOK, map[string]string{
		"message": "4D Visualization API",
		"version": Version,
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.respond(w, http.StatusOK, map[string]string{"status": "healthy"})
}

// handleCube serves GET /shapes/cube?size=<real>. Size defaults to 1.0;
// non-positive sizes are accepted and produce a mirrored/degenerate cube.
func (s *Server) handleCube(w http.ResponseWriter, r *http.Request) {
	size := 1.0
	if raw := r.URL.Query().Get("size"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
			s.fail(w, http.StatusBadRequest, "bad_size", fmt.Sprintf("size %q must be a finite number", raw))
			return
		}
		size = v
	}
	s.respond(w, http.StatusOK, geom4d.Tesseract(size))
}

// handleTransform serves POST /shapes/transform: applies the six plane
// rotations and the translation to the submitted shape.
func (s *Server) handleTransform(w http.ResponseWriter, r *http.Request) {
	var req transformRequest
	if !s.decode(w, r, &req) {
		return
	}
	if !s.checkShape(w, req.Shape) {
		return
	}
	s.respond(w, http.StatusOK, req.Transform.domain().Apply(req.Shape))
}

// handleProject serves POST /shapes/project: perspective-projects every
// vertex (offset by the shape position) to 3D.
func (s *Server) handleProject(w http.ResponseWriter, r *http.Request) {
	var req projectRequest
	if !s.decode(w, r, &req) {
		return
	}
	if !s.checkShape(w, req.Shape) {
		return
	}
	distance := req.ViewerDistance
	if distance == 0 {
		distance = s.cfg.ViewerDistance
	}
	if math.IsNaN(distance) || math.IsInf(distance, 0) {
		s.fail(w, http.StatusBadRequest, "bad_distance", "viewer_distance must be a finite number")
		return
	}
	points, err := geom4d.ProjectShape(req.Shape, distance)
	if err != nil {
		if errors.Is(err, geom4d.ErrSingularProjection) {
			s.fail(w, http.StatusUnprocessableEntity, "singular_projection", err.Error())
			return
		}
		s.fail(w, http.StatusBadRequest, "bad_request", err.Error())
		return
	}
	s.respond(w, http.StatusOK, projectResponse{Points: points})
}

// checkShape enforces wire limits and topology before any kernel call.
func (s *Server) checkShape(w http.ResponseWriter, shape geom4d.Shape) bool {
	if len(shape.Vertices) > s.cfg.MaxVertices || len(shape.Edges) > s.cfg.MaxEdges {
		s.fail(w, http.StatusRequestEntityTooLarge, "shape_too_large",
			fmt.Sprintf("shape exceeds limits (%d vertices, %d edges)", s.cfg.MaxVertices, s.cfg.MaxEdges))
		return false
	}
	if err := shape.Validate(); err != nil {
		s.fail(w, http.StatusUnprocessableEntity, "invalid_topology", err.Error())
		return false
	}
	return true
}

func (s *Server) decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		s.fail(w, http.StatusBadRequest, "bad_json", err.Error())
		return false
	}
	return true
}

func (s *Server) respond(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.log.Error("encode response", zap.Error(err))
	}
}

func (s *Server) fail(w http.ResponseWriter, status int, code, msg string) {
	s.respond(w, status, errorResponse{Err: errorBody{Code: code, Message: msg}})
}
