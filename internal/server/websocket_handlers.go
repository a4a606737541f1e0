package server

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/websocket"

	"github.com/MeKo-Tech/langid/internal/pipeline"
)

// WebSocket upgrader with reasonable defaults.
var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		// Allow connections from any origin in development
		// In production, you should check against allowed origins
		return true
	},
}

// WebSocketDetectRequest is a streaming detection request: each text in the
// batch is answered with its own message as soon as it is processed.
type WebSocketDetectRequest struct {
	Texts                   []string `json:"texts"`
	Method                  string   `json:"method,omitempty"`
	AdvancedCleaning        bool     `json:"advanced_cleaning,omitempty"`
	RemovePunctuation       *bool    `json:"remove_punctuation,omitempty"`
	RemoveNumbers           bool     `json:"remove_numbers,omitempty"`
	RemoveSpecialCharacters bool     `json:"remove_special_characters,omitempty"`
}

// WebSocketDetectResponse is one streamed message.
type WebSocketDetectResponse struct {
	Type      string            `json:"type"`
	Status    string            `json:"status"` // "processing", "result", "completed", "error"
	Index     int               `json:"index,omitempty"`
	Progress  float64           `json:"progress,omitempty"`
	Result    *DetectionPayload `json:"result,omitempty"`
	Error     string            `json:"error,omitempty"`
	RequestID string            `json:"request_id,omitempty"`
}

// detectWebSocketHandler handles WebSocket connections for streaming
// detection.
func (s *Server) detectWebSocketHandler(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		slog.Error("Failed to upgrade connection to WebSocket", "error", err)
		return
	}
	defer func() {
		_ = conn.Close()
	}()

	websocketConnections.Inc()
	defer websocketConnections.Dec()

	slog.Info("WebSocket connection established", "remote_addr", r.RemoteAddr)
	s.handleWebSocketConnection(conn, r)
}

// handleWebSocketConnection processes messages from a WebSocket connection.
func (s *Server) handleWebSocketConnection(conn *websocket.Conn, r *http.Request) {
	// Set read deadline to prevent hanging connections
	_ = conn.SetReadDeadline(time.Now().Add(60 * time.Second))
	conn.SetPongHandler(func(string) error {
		_ = conn.SetReadDeadline(time.Now().Add(60 * time.Second))
		return nil
	})

	// Send ping messages to keep connection alive
	done := make(chan struct{})
	defer close(done)
	go func() {
		ticker := time.NewTicker(30 * time.Second)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				if err := conn.WriteControl(websocket.PingMessage, []byte{}, time.Now().Add(10*time.Second)); err != nil {
					return
				}
			}
		}
	}()

	for {
		messageType, data, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				slog.Error("WebSocket error", "error", err)
			}
			break
		}

		websocketMessagesTotal.WithLabelValues("received").Inc()

		if messageType == websocket.TextMessage {
			s.handleWebSocketMessage(conn, r, data)
		}
	}
}

// handleWebSocketMessage runs one streaming detection request.
func (s *Server) handleWebSocketMessage(conn *websocket.Conn, r *http.Request, data []byte) {
	var req WebSocketDetectRequest
	if err := json.Unmarshal(data, &req); err != nil {
		s.sendWebSocketError(conn, "", "Failed to parse request: "+err.Error())
		return
	}

	requestID := strconv.FormatInt(time.Now().UnixNano(), 10)

	if len(req.Texts) == 0 {
		s.sendWebSocketError(conn, requestID, "No texts provided")
		return
	}

	s.sendWebSocketResponse(conn, WebSocketDetectResponse{
		Type:      "detect_response",
		Status:    "processing",
		Progress:  0.0,
		RequestID: requestID,
	})

	opts := pipeline.DetectOptions{
		Method:   req.Method,
		Cleaning: cleaningOptions(req.AdvancedCleaning, req.RemovePunctuation, req.RemoveNumbers, req.RemoveSpecialCharacters),
	}

	for i, text := range req.Texts {
		res, err := s.detector.DetectWithOptions(r.Context(), text, opts)
		if err != nil {
			detectRequestsTotal.WithLabelValues("websocket", "error").Inc()
			s.sendWebSocketError(conn, requestID, err.Error())
			return
		}
		detectRequestsTotal.WithLabelValues("websocket", "ok").Inc()
		detectedLanguages.WithLabelValues(res.Code).Inc()

		s.sendWebSocketResponse(conn, WebSocketDetectResponse{
			Type:      "detect_response",
			Status:    "result",
			Index:     i,
			Progress:  float64(i+1) / float64(len(req.Texts)),
			Result:    payload(res),
			RequestID: requestID,
		})
	}

	s.sendWebSocketResponse(conn, WebSocketDetectResponse{
		Type:      "detect_response",
		Status:    "completed",
		Progress:  1.0,
		RequestID: requestID,
	})
}

// sendWebSocketResponse marshals and sends a response message.
func (s *Server) sendWebSocketResponse(conn *websocket.Conn, resp WebSocketDetectResponse) {
	data, err := json.Marshal(resp)
	if err != nil {
		slog.Error("Failed to marshal WebSocket response", "error", err)
		return
	}
	if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
		slog.Error("Failed to write WebSocket message", "error", err)
		return
	}
	websocketMessagesTotal.WithLabelValues("sent").Inc()
}

// sendWebSocketError sends an error message.
func (s *Server) sendWebSocketError(conn *websocket.Conn, requestID, message string) {
	s.sendWebSocketResponse(conn, WebSocketDetectResponse{
		Type:      "detect_response",
		Status:    "error",
		Error:     message,
		RequestID: requestID,
	})
}
