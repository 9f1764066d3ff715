package stream

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/websocket"

	"wildfire-ca/internal/core"
	"wildfire-ca/internal/sims/fire"
)

// Message is one websocket payload. Type is "params", "frame", "done" or
// "error".
type Message struct {
	Type   string                  `json:"type"`
	Step   int                     `json:"step"`
	Grid   *fire.Snapshot          `json:"grid,omitempty"`
	Stats  *fire.Stats             `json:"stats,omitempty"`
	Params *core.ParameterSnapshot `json:"params,omitempty"`
	Error  string                  `json:"error,omitempty"`
}

// Server streams simulation runs to websocket clients and answers one-shot
// JSON requests.
type Server struct {
	upgrader websocket.Upgrader
	logger   *log.Logger
	// FrameInterval paces websocket frames; zero sends them back to back.
	FrameInterval time.Duration
}

// NewServer returns a server logging to logger, or to the standard logger
// when nil.
func NewServer(logger *log.Logger, frameInterval time.Duration) *Server {
	if logger == nil {
		logger = log.Default()
	}
	return &Server{
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
		logger:        logger,
		FrameInterval: frameInterval,
	}
}

// Handler returns the HTTP routes served by s.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", s.handleWebSocket)
	mux.HandleFunc("/api/simulation", s.handleSimulation)
	mux.HandleFunc("/api/risk-map", s.handleRiskMap)
	return mux
}

func (s *Server) handleSimulation(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	req := DefaultRequest()
	if r.Body != nil && r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]any{"success": false, "error": err.Error()})
			return
		}
	}
	world, err := Simulate(req)
	if err != nil {
		s.logger.Printf("simulation request rejected: %v", err)
		writeJSON(w, http.StatusBadRequest, map[string]any{"success": false, "error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"success": true, "simulation": world.Data()})
}

func (s *Server) handleRiskMap(w http.ResponseWriter, r *http.Request) {
	size := fire.DefaultParams().GridSize
	if v := r.URL.Query().Get("size"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil || parsed <= 0 || parsed > maxGridSize {
			http.Error(w, "invalid size", http.StatusBadRequest)
			return
		}
		size = parsed
	}
	seed := int64(42)
	if v := r.URL.Query().Get("seed"); v != "" {
		parsed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			http.Error(w, "invalid seed", http.StatusBadRequest)
			return
		}
		seed = parsed
	}
	writeJSON(w, http.StatusOK, map[string]any{"size": size, "risk": fire.SyntheticRiskMap(size, core.NewRNG(seed))})
}

func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Println("websocket upgrade error:", err)
		return
	}
	defer conn.Close()

	for {
		req := DefaultRequest()
		if err := conn.ReadJSON(&req); err != nil {
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				s.logger.Println("websocket read error:", err)
			}
			return
		}
		world, err := Simulate(req)
		if err != nil {
			if werr := conn.WriteJSON(Message{Type: "error", Error: err.Error()}); werr != nil {
				return
			}
			continue
		}
		if err := s.stream(r.Context(), conn, world); err != nil {
			s.logger.Println("websocket write error:", err)
			return
		}
	}
}

func (s *Server) stream(ctx context.Context, conn *websocket.Conn, world *fire.World) error {
	params := world.Parameters()
	if err := conn.WriteJSON(Message{Type: "params", Params: &params}); err != nil {
		return err
	}

	var tick <-chan time.Time
	if s.FrameInterval > 0 {
		ticker := time.NewTicker(s.FrameInterval)
		defer ticker.Stop()
		tick = ticker.C
	}

	h := world.History()
	for i := 0; i < h.Len(); i++ {
		if tick != nil && i > 0 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-tick:
			}
		}
		frame := h.Frame(i)
		stats := h.StatsAt(i)
		if err := conn.WriteJSON(Message{Type: "frame", Step: i, Grid: &frame, Stats: &stats}); err != nil {
			return err
		}
	}
	final, _ := h.Final()
	return conn.WriteJSON(Message{Type: "done", Step: h.Len() - 1, Stats: &final})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
