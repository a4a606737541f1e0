package server

import (
	"context"
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/MeKo-Tech/langid/internal/pipeline"
)

// detectorInterface defines the methods the server needs from a pipeline.
type detectorInterface interface {
	DetectWithOptions(ctx context.Context, text string, opts pipeline.DetectOptions) (*pipeline.Result, error)
	DetectBatchWithOptions(ctx context.Context, texts []string, opts pipeline.DetectOptions) ([]*pipeline.Result, error)
	Methods() []string
	Info() map[string]interface{}
	Close() error
}

// Server holds the HTTP server state and dependencies.
type Server struct {
	detector   detectorInterface
	corsOrigin string
	maxBodyKB  int64
	timeoutSec int
}

// Config holds server configuration.
type Config struct {
	Host           string
	Port           int
	CORSOrigin     string
	MaxBodyKB      int64
	TimeoutSec     int
	PipelineConfig pipeline.Config
}

// DetectRequest is the JSON body of a detection request.
type DetectRequest struct {
	Text                    string `json:"text"`
	Method                  string `json:"method,omitempty"`
	AdvancedCleaning        bool   `json:"advanced_cleaning,omitempty"`
	RemovePunctuation       *bool  `json:"remove_punctuation,omitempty"`
	RemoveNumbers           bool   `json:"remove_numbers,omitempty"`
	RemoveSpecialCharacters bool   `json:"remove_special_characters,omitempty"`
}

// BatchDetectRequest is the JSON body of a batch detection request.
type BatchDetectRequest struct {
	Texts                   []string `json:"texts"`
	Method                  string   `json:"method,omitempty"`
	AdvancedCleaning        bool     `json:"advanced_cleaning,omitempty"`
	RemovePunctuation       *bool    `json:"remove_punctuation,omitempty"`
	RemoveNumbers           bool     `json:"remove_numbers,omitempty"`
	RemoveSpecialCharacters bool     `json:"remove_special_characters,omitempty"`
}

// DetectionPayload is a pipeline result plus the percentage rendering the
// original UI displayed.
type DetectionPayload struct {
	*pipeline.Result
	ConfidencePct string `json:"confidence_pct"`
}

// DetectResponse wraps a single detection result.
type DetectResponse struct {
	Success bool              `json:"success"`
	Result  *DetectionPayload `json:"result,omitempty"`
	Error   string            `json:"error,omitempty"`
}

// BatchDetectResponse wraps batch detection results.
type BatchDetectResponse struct {
	Success bool                `json:"success"`
	Results []*DetectionPayload `json:"results,omitempty"`
	Count   int                 `json:"count"`
	Error   string              `json:"error,omitempty"`
}

// MethodsResponse lists the registered detection methods.
type MethodsResponse struct {
	Methods []string `json:"methods"`
	Count   int      `json:"count"`
}

// HealthResponse reports server health.
type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version,omitempty"`
	Time    string `json:"time"`
}

// NewServer creates a detection server, building the pipeline from the
// provided config.
func NewServer(config Config) (*Server, error) {
	cfg := config.PipelineConfig

	pl, err := pipeline.NewBuilder().
		WithWeights(cfg.Weights).
		WithWeightsFile(cfg.WeightsFile).
		WithCleaning(cfg.Cleaning).
		WithModel(cfg.Model).
		WithModelEnabled(cfg.ModelEnabled).
		WithMethods(cfg.Methods...).
		WithWorkers(cfg.Workers).
		Build()
	if err != nil {
		return nil, err
	}

	return &Server{
		detector:   pl,
		corsOrigin: config.CORSOrigin,
		maxBodyKB:  config.MaxBodyKB,
		timeoutSec: config.TimeoutSec,
	}, nil
}

// Close releases server resources.
func (s *Server) Close() error {
	if s.detector != nil {
		return s.detector.Close()
	}
	return nil
}

// SetupRoutes configures the HTTP routes.
func (s *Server) SetupRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/health", s.corsMiddleware(s.healthHandler))
	mux.HandleFunc("/methods", s.corsMiddleware(s.methodsHandler))
	mux.HandleFunc("/detect", s.corsMiddleware(s.detectHandler))
	mux.HandleFunc("/detect/batch", s.corsMiddleware(s.batchHandler))
	mux.HandleFunc("/ws", s.detectWebSocketHandler)
	mux.Handle("/metrics", promhttp.Handler())
}

// payload wraps a pipeline result for the wire.
func payload(res *pipeline.Result) *DetectionPayload {
	if res == nil {
		return nil
	}
	return &DetectionPayload{
		Result:        res,
		ConfidencePct: pipeline.FormatConfidence(res.Confidence),
	}
}
