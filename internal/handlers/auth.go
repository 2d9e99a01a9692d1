package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/saifulislam1431/Post-Disaster-Community-server/internal/auth"
	"github.com/saifulislam1431/Post-Disaster-Community-server/internal/metrics"
)

type AuthHandler struct {
	Service *auth.Service
}

// Register creates an account. The email must not be held by any existing
// record; the conflict response deliberately names the condition because
// registration conflicts are not an enumeration channel worth hiding on
// this API (the same signal is available by just trying to register).
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var input struct {
		Name     string `json:"name"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]interface{}{
			"success": false,
			"message": "invalid JSON",
		})
		return
	}

	if err := h.Service.Register(r.Context(), input.Name, input.Email, input.Password); err != nil {
		if errors.Is(err, auth.ErrEmailTaken) {
			metrics.RegistrationsTotal.WithLabelValues("conflict").Inc()
			writeJSON(w, http.StatusBadRequest, map[string]interface{}{
				"success": false,
				"message": "User already exists",
			})
			return
		}
		slog.Error("register failed", "error", err)
		metrics.RegistrationsTotal.WithLabelValues("error").Inc()
		writeJSON(w, http.StatusInternalServerError, map[string]interface{}{
			"success": false,
			"message": ErrMessageInternal,
		})
		return
	}

	metrics.RegistrationsTotal.WithLabelValues("created").Inc()
	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"success": true,
		"message": "User registered successfully",
	})
}

// Login verifies credentials and returns a signed token. Unknown email and
// wrong password produce the identical response.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var input struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		JSONError(w, "invalid JSON", http.StatusBadRequest)
		return
	}

	token, err := h.Service.Login(r.Context(), input.Email, input.Password)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			metrics.LoginFailuresTotal.Inc()
			JSONError(w, "Invalid email or password", http.StatusUnauthorized)
			return
		}
		slog.Error("login failed", "error", err)
		JSONError(w, ErrMessageInternal, http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "Login successful",
		"token":   token,
	})
}
