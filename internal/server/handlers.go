package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/MeKo-Tech/langid/internal/detector"
	"github.com/MeKo-Tech/langid/internal/pipeline"
	"github.com/MeKo-Tech/langid/internal/textnorm"
	"github.com/MeKo-Tech/langid/internal/version"
)

// defaultMaxBodyKB bounds request bodies when the server config leaves the
// limit unset.
const defaultMaxBodyKB = 512

// healthHandler returns server health status.
func (s *Server) healthHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	response := HealthResponse{
		Status:  "healthy",
		Version: version.Version,
		Time:    time.Now().UTC().Format(time.RFC3339),
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(response); err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding health response: %v\n", err)
	}
}

// methodsHandler returns the registered detection methods.
func (s *Server) methodsHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	methods := s.detector.Methods()
	response := MethodsResponse{
		Methods: methods,
		Count:   len(methods),
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(response); err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding methods response: %v\n", err)
	}
}

// detectHandler processes single detection requests.
func (s *Server) detectHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req DetectRequest
	if !s.decodeJSONBody(w, r, &req) {
		detectRequestsTotal.WithLabelValues("single", "error").Inc()
		return
	}

	start := time.Now()
	res, err := s.detector.DetectWithOptions(r.Context(), req.Text, pipeline.DetectOptions{
		Method:   req.Method,
		Cleaning: cleaningOptions(req.AdvancedCleaning, req.RemovePunctuation, req.RemoveNumbers, req.RemoveSpecialCharacters),
	})
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, detector.ErrUnknownMethod) {
			// Caller error, distinct from a low-confidence result.
			status = http.StatusBadRequest
		}
		detectRequestsTotal.WithLabelValues("single", "error").Inc()
		s.writeErrorResponse(w, err.Error(), status)
		return
	}

	detectRequestsTotal.WithLabelValues("single", "ok").Inc()
	detectDuration.WithLabelValues("single").Observe(time.Since(start).Seconds())
	detectTextLength.WithLabelValues("single").Observe(float64(len(req.Text)))
	detectedLanguages.WithLabelValues(res.Code).Inc()

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(DetectResponse{Success: true, Result: payload(res)}); err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding detect response: %v\n", err)
	}
}

// batchHandler processes batch detection requests.
func (s *Server) batchHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req BatchDetectRequest
	if !s.decodeJSONBody(w, r, &req) {
		detectRequestsTotal.WithLabelValues("batch", "error").Inc()
		return
	}
	if len(req.Texts) == 0 {
		detectRequestsTotal.WithLabelValues("batch", "error").Inc()
		s.writeErrorResponse(w, "No texts provided", http.StatusBadRequest)
		return
	}

	start := time.Now()
	results, err := s.detector.DetectBatchWithOptions(r.Context(), req.Texts, pipeline.DetectOptions{
		Method:   req.Method,
		Cleaning: cleaningOptions(req.AdvancedCleaning, req.RemovePunctuation, req.RemoveNumbers, req.RemoveSpecialCharacters),
	})
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, detector.ErrUnknownMethod) {
			status = http.StatusBadRequest
		}
		detectRequestsTotal.WithLabelValues("batch", "error").Inc()
		s.writeErrorResponse(w, err.Error(), status)
		return
	}

	detectRequestsTotal.WithLabelValues("batch", "ok").Inc()
	detectDuration.WithLabelValues("batch").Observe(time.Since(start).Seconds())

	payloads := make([]*DetectionPayload, len(results))
	for i, res := range results {
		payloads[i] = payload(res)
		detectedLanguages.WithLabelValues(res.Code).Inc()
	}

	w.Header().Set("Content-Type", "application/json")
	response := BatchDetectResponse{Success: true, Results: payloads, Count: len(payloads)}
	if err := json.NewEncoder(w).Encode(response); err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding batch response: %v\n", err)
	}
}

// decodeJSONBody reads a size-limited JSON body into dst, writing the error
// response itself on failure.
func (s *Server) decodeJSONBody(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	maxKB := s.maxBodyKB
	if maxKB <= 0 {
		maxKB = defaultMaxBodyKB
	}
	r.Body = http.MaxBytesReader(w, r.Body, maxKB*1024)

	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(dst); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			s.writeErrorResponse(w, "Request body too large", http.StatusRequestEntityTooLarge)
		} else {
			s.writeErrorResponse(w, "Invalid JSON body", http.StatusBadRequest)
		}
		return false
	}
	return true
}

// cleaningOptions maps request fields onto normalizer options. A nil
// removePunct keeps the advanced-mode default (on).
func cleaningOptions(advanced bool, removePunct *bool, removeNums, removeSpecial bool) *textnorm.Options {
	opts := textnorm.DefaultOptions()
	opts.Advanced = advanced
	if removePunct != nil {
		opts.RemovePunctuation = *removePunct
	}
	opts.RemoveNumbers = removeNums
	opts.RemoveSpecialChars = removeSpecial
	return &opts
}

// writeErrorResponse writes a JSON error response.
func (s *Server) writeErrorResponse(w http.ResponseWriter, message string, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	response := DetectResponse{
		Success: false,
		Error:   message,
	}

	if err := json.NewEncoder(w).Encode(response); err != nil {
		// Log error, but can't send another response
		fmt.Fprintf(os.Stderr, "Error writing error response: %v\n", err)
	}
}
