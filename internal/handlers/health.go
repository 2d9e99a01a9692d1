package handlers

import (
	"net/http"
	"time"
)

// ServerStatus is the root endpoint: a human-friendly liveness body with a timestamp.
func ServerStatus(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"message":   "Server is running smoothly",
		"timestamp": time.Now(),
	})
}

// Health is the plain-text liveness probe.
func Health(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("ok"))
}
