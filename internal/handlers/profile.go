package handlers

import (
	"log/slog"
	"net/http"

	"github.com/saifulislam1431/Post-Disaster-Community-server/internal/middleware"
	"github.com/saifulislam1431/Post-Disaster-Community-server/internal/repo"
)

// ProfileHandler resolves the authenticated account from the token's email
// claim. It sits behind RequireAuth.
type ProfileHandler struct {
	Users *repo.UserRepo
}

func (h *ProfileHandler) Profile(w http.ResponseWriter, r *http.Request) {
	email, ok := middleware.GetEmail(r.Context())
	if !ok {
		JSONError(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	user, err := h.Users.FindByEmail(r.Context(), email)
	if err != nil {
		// Valid token but no matching record; accounts are never deleted,
		// so this is a store-level problem.
		slog.Error("profile lookup failed", "error", err)
		JSONError(w, ErrMessageGeneric, http.StatusUnauthorized)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"name":  user.Name,
		"email": user.Email,
	})
}
