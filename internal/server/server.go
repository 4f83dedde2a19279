// Package server exposes the calculators as a small JSON API. It is a
// thin shell: decode, call the pure calculator, encode.
package server

import (
	json "github.com/goccy/go-json"
	"github.com/sirupsen/logrus"
	"github.com/valyala/fasthttp"

	"github.com/kabecheck/kabecheck/internal/calculation"
	"github.com/kabecheck/kabecheck/internal/domain"
)

// Server routes calculation requests to the engine.
type Server struct {
	Engine *calculation.Engine
	Log    *logrus.Logger
}

// New creates a server. A nil logger falls back to the logrus standard
// logger; a nil engine gets a fresh one.
func New(engine *calculation.Engine, log *logrus.Logger) *Server {
	if engine == nil {
		engine = calculation.NewEngine()
	}
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Server{Engine: engine, Log: log}
}

// ErrorResponse is the JSON body for every non-200 answer.
type ErrorResponse struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}

// ListenAndServe blocks serving HTTP on addr.
func (s *Server) ListenAndServe(addr string) error {
	s.Log.WithField("addr", addr).Info("wall-check API listening")
	return fasthttp.ListenAndServe(addr, s.Handler)
}

// Handler is the single fasthttp request handler.
func (s *Server) Handler(ctx *fasthttp.RequestCtx) {
	path := string(ctx.Path())
	method := string(ctx.Method())

	s.Log.WithFields(logrus.Fields{"method": method, "path": path}).Debug("request")

	if method != fasthttp.MethodPost {
		s.writeError(ctx, fasthttp.StatusMethodNotAllowed, "only POST is supported")
		return
	}

	switch path {
	case "/v1/parttime":
		s.handleParttime(ctx)
	case "/v1/freelance":
		s.handleFreelance(ctx)
	default:
		s.writeError(ctx, fasthttp.StatusNotFound, "unknown path: "+path)
	}
}

func (s *Server) handleParttime(ctx *fasthttp.RequestCtx) {
	var in domain.ParttimeInput
	if err := json.Unmarshal(ctx.PostBody(), &in); err != nil {
		s.writeError(ctx, fasthttp.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	result := s.Engine.CalculateParttime(in)
	s.writeJSON(ctx, result)
}

func (s *Server) handleFreelance(ctx *fasthttp.RequestCtx) {
	var in domain.FreelanceInput
	if err := json.Unmarshal(ctx.PostBody(), &in); err != nil {
		s.writeError(ctx, fasthttp.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	result := s.Engine.CalculateFreelance(in)
	s.writeJSON(ctx, result)
}

func (s *Server) writeJSON(ctx *fasthttp.RequestCtx, v interface{}) {
	data, err := json.Marshal(v)
	if err != nil {
		s.writeError(ctx, fasthttp.StatusInternalServerError, "failed to encode response: "+err.Error())
		return
	}
	ctx.SetContentType("application/json")
	ctx.SetStatusCode(fasthttp.StatusOK)
	ctx.SetBody(data)
}

func (s *Server) writeError(ctx *fasthttp.RequestCtx, status int, message string) {
	s.Log.WithFields(logrus.Fields{"status": status, "message": message}).Warn("request rejected")

	body, _ := json.Marshal(ErrorResponse{Status: status, Message: message})
	ctx.SetContentType("application/json")
	ctx.SetStatusCode(status)
	ctx.SetBody(body)
}
