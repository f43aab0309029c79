package main

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/valyala/bytebufferpool"
	"github.com/valyala/fasthttp"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"

	"github.com/baditaflorin/go_text_heuristic/internal/adapters/chart"
	"github.com/baditaflorin/go_text_heuristic/internal/batch"
	"github.com/baditaflorin/go_text_heuristic/internal/core/domain"
	"github.com/baditaflorin/go_text_heuristic/internal/ports"
)

// AnalyzeRequest is the body of POST /analyze.
type AnalyzeRequest struct {
	Text string `json:"text"`
}

// BatchRequest is the body of POST /analyze/batch.
type BatchRequest struct {
	Texts []string `json:"texts"`
}

// AnalyzeResponse is one analysis result.
type AnalyzeResponse struct {
	Features   domain.FeatureSet  `json:"features"`
	Score      domain.ScoreResult `json:"score"`
	Confidence domain.Confidence  `json:"confidence"`
	Leaning    domain.Leaning     `json:"leaning"`
	Warnings   []domain.Warning   `json:"warnings,omitempty"`
	Charts     chart.Charts       `json:"charts"`
}

// BatchResponse holds one entry per submitted text; blank texts are null.
type BatchResponse struct {
	Results []*AnalyzeResponse `json:"results"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

const tracerName = "github.com/baditaflorin/go_text_heuristic/cmd/server"

// serverOptions holds the request limits of the HTTP handlers.
type serverOptions struct {
	MaxBatchSize     int
	BatchConcurrency int
	// BatchTimeout bounds the scoring of one batch request.
	BatchTimeout time.Duration
}

type server struct {
	analyzer   ports.Analyzer
	logger     ports.Logger
	batch      *batch.Processor
	tracer     trace.Tracer
	propagator propagation.TextMapPropagator
	options    serverOptions
}

func newServer(analyzer ports.Analyzer, logger ports.Logger, tp trace.TracerProvider, options serverOptions) *server {
	return &server{
		analyzer:   analyzer,
		logger:     logger,
		batch:      batch.NewProcessor(analyzer, logger, options.BatchConcurrency),
		tracer:     tp.Tracer(tracerName),
		propagator: propagation.NewCompositeTextMapPropagator(propagation.TraceContext{}, propagation.Baggage{}),
		options:    options,
	}
}

func newAnalyzeResponse(a domain.Analysis) *AnalyzeResponse {
	return &AnalyzeResponse{
		Features:   a.Features,
		Score:      a.Score,
		Confidence: a.Confidence,
		Leaning:    a.Score.Leaning(),
		Warnings:   a.Warnings,
		Charts:     chart.FromAnalysis(a),
	}
}

// requestHandler is the main fasthttp request handler
func (s *server) requestHandler(ctx *fasthttp.RequestCtx) {
	startTime := time.Now()
	requestID := uuid.New().String()
	path := string(ctx.Path())

	parent := s.propagator.Extract(context.Background(), requestHeaderCarrier{header: &ctx.Request.Header})
	_, span := s.tracer.Start(parent, "http "+path,
		trace.WithSpanKind(trace.SpanKindServer),
		trace.WithAttributes(
			attribute.String("http.method", string(ctx.Method())),
			attribute.String("http.route", path),
			attribute.String("request.id", requestID),
		),
	)
	defer span.End()

	ctx.Response.Header.Set("Content-Type", "application/json")
	ctx.Response.Header.Set("X-Request-ID", requestID)

	switch path {
	case "/health":
		s.handleHealthCheck(ctx)
	case "/analyze":
		s.handleAnalyze(ctx)
	case "/analyze/batch":
		s.handleBatch(ctx)
	default:
		ctx.SetStatusCode(fasthttp.StatusNotFound)
		s.writeJSONError(ctx, "Not found")
	}

	status := ctx.Response.StatusCode()
	span.SetAttributes(attribute.Int("http.status_code", status))
	if status >= fasthttp.StatusInternalServerError {
		span.SetStatus(codes.Error, fasthttp.StatusMessage(status))
	}

	s.logger.Info("Request processed",
		"request_id", requestID,
		"method", string(ctx.Method()),
		"path", path,
		"status", status,
		"ip", ctx.RemoteIP().String(),
		"duration", time.Since(startTime),
	)
}

// handleHealthCheck responds to health check requests
func (s *server) handleHealthCheck(ctx *fasthttp.RequestCtx) {
	ctx.SetStatusCode(fasthttp.StatusOK)
	s.writeJSONResponse(ctx, map[string]interface{}{
		"status": "ok",
		"time":   time.Now().Format(time.RFC3339),
	})
}

// handleAnalyze scores a single text. Blank text is answered with 204.
func (s *server) handleAnalyze(ctx *fasthttp.RequestCtx) {
	if !ctx.IsPost() {
		ctx.SetStatusCode(fasthttp.StatusMethodNotAllowed)
		s.writeJSONError(ctx, "Method not allowed")
		return
	}

	var req AnalyzeRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		ctx.SetStatusCode(fasthttp.StatusBadRequest)
		s.writeJSONError(ctx, "Invalid request: "+err.Error())
		return
	}

	result, ok := s.analyzer.Analyze(req.Text)
	if !ok {
		ctx.Response.Header.Del("Content-Type")
		ctx.SetStatusCode(fasthttp.StatusNoContent)
		return
	}

	ctx.SetStatusCode(fasthttp.StatusOK)
	s.writeJSONResponse(ctx, newAnalyzeResponse(result))
}

// handleBatch scores several texts in one request.
func (s *server) handleBatch(ctx *fasthttp.RequestCtx) {
	if !ctx.IsPost() {
		ctx.SetStatusCode(fasthttp.StatusMethodNotAllowed)
		s.writeJSONError(ctx, "Method not allowed")
		return
	}

	var req BatchRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		ctx.SetStatusCode(fasthttp.StatusBadRequest)
		s.writeJSONError(ctx, "Invalid request: "+err.Error())
		return
	}
	if len(req.Texts) > s.options.MaxBatchSize {
		ctx.SetStatusCode(fasthttp.StatusRequestEntityTooLarge)
		s.writeJSONError(ctx, fmt.Sprintf("Too many texts: %d > %d", len(req.Texts), s.options.MaxBatchSize))
		return
	}

	names := make([]string, len(req.Texts))
	for i := range names {
		names[i] = fmt.Sprintf("text-%d", i)
	}

	c, cancel := context.WithTimeout(context.Background(), s.options.BatchTimeout)
	defer cancel()

	reports, err := s.batch.Texts(c, names, req.Texts)
	if err != nil {
		ctx.SetStatusCode(fasthttp.StatusServiceUnavailable)
		s.writeJSONError(ctx, "Batch aborted: "+err.Error())
		return
	}

	resp := BatchResponse{Results: make([]*AnalyzeResponse, len(reports))}
	for i, r := range reports {
		if r.Analysis != nil {
			resp.Results[i] = newAnalyzeResponse(*r.Analysis)
		}
	}

	ctx.SetStatusCode(fasthttp.StatusOK)
	s.writeJSONResponse(ctx, resp)
}

// writeJSONResponse encodes data through a pooled buffer.
func (s *server) writeJSONResponse(ctx *fasthttp.RequestCtx, data interface{}) {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	if err := json.NewEncoder(buf).Encode(data); err != nil {
		ctx.SetStatusCode(fasthttp.StatusInternalServerError)
		s.logger.Error("Error marshaling JSON response", "error", err)
		s.writeJSONError(ctx, "Internal server error")
		return
	}

	ctx.SetBody(buf.B)
}

// writeJSONError writes a JSON error response to the context
func (s *server) writeJSONError(ctx *fasthttp.RequestCtx, message string) {
	response, err := json.Marshal(ErrorResponse{Error: message})
	if err != nil {
		s.logger.Error("Error marshaling JSON error response", "error", err)
		ctx.SetBodyString(`{"error":"Internal server error"}`)
		return
	}

	ctx.SetBody(response)
}
