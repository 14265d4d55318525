package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/magpielabs/magpie/pkg/dispatcher"
	"github.com/magpielabs/magpie/pkg/metrics"
)

// HealthServer provides HTTP health check endpoints
type HealthServer struct {
	dispatcher *dispatcher.Dispatcher
	mux        *http.ServeMux
}

// NewHealthServer creates a new health check HTTP server
func NewHealthServer(d *dispatcher.Dispatcher) *HealthServer {
	mux := http.NewServeMux()
	hs := &HealthServer{
		dispatcher: d,
		mux:        mux,
	}

	mux.HandleFunc("/health", hs.healthHandler)
	mux.HandleFunc("/ready", hs.readyHandler)
	mux.Handle("/metrics", metrics.Handler())

	return hs
}

// Start starts the health check HTTP server
func (hs *HealthServer) Start(addr string) error {
	server := &http.Server{
		Addr:         addr,
		Handler:      hs.mux,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return server.ListenAndServe()
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}

// ReadyResponse represents the readiness check response
type ReadyResponse struct {
	Status    string            `json:"status"`
	Timestamp time.Time         `json:"timestamp"`
	Checks    map[string]string `json:"checks"`
	Message   string            `json:"message,omitempty"`
}

// healthHandler is a liveness check: 200 if the process is up.
func (hs *HealthServer) healthHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	response := HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now(),
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(response)
}

// readyHandler checks whether the dispatcher can serve traffic: the
// task store answers reads and the source catalog is loaded.
func (hs *HealthServer) readyHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	checks := make(map[string]string)
	ready := true
	var message string

	if _, err := hs.dispatcher.Tasks().CountTasks(); err != nil {
		checks["storage"] = fmt.Sprintf("error: %v", err)
		ready = false
		message = "Task store not accessible"
	} else {
		checks["storage"] = "ok"
	}

	if n := hs.dispatcher.Catalog().Len(); n == 0 {
		checks["catalog"] = "empty"
		ready = false
		if message == "" {
			message = "Source catalog is empty"
		}
	} else {
		checks["catalog"] = fmt.Sprintf("%d sources", n)
	}

	checks["collectors"] = fmt.Sprintf("%d registered", hs.dispatcher.Fleet().Len())

	status := "ready"
	statusCode := http.StatusOK
	if !ready {
		status = "not ready"
		statusCode = http.StatusServiceUnavailable
	}

	response := ReadyResponse{
		Status:    status,
		Timestamp: time.Now(),
		Checks:    checks,
		Message:   message,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(response)
}

// GetHandler returns the HTTP handler for embedding in other servers
func (hs *HealthServer) GetHandler() http.Handler {
	return hs.mux
}
