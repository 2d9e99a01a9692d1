package handlers

import (
	"database/sql"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/saifulislam1431/Post-Disaster-Community-server/internal/models"
	"github.com/saifulislam1431/Post-Disaster-Community-server/internal/repo"
)

type PostHandler struct {
	Repo *repo.SupplyPostRepo
}

// ListPosts returns every supply post. Any store failure is collapsed into
// the generic 401 body; the cause goes to the log.
func (h *PostHandler) ListPosts(w http.ResponseWriter, r *http.Request) {
	posts, err := h.Repo.List(r.Context())
	if err != nil {
		slog.Error("list posts failed", "error", err)
		JSONError(w, ErrMessageGeneric, http.StatusUnauthorized)
		return
	}
	if posts == nil {
		posts = []models.SupplyPost{}
	}

	writeJSON(w, http.StatusOK, posts)
}

// GetPost returns a single post, or a JSON null when the id is unknown or
// not a well-formed identifier. A malformed id is a lookup miss, not an error.
func (h *PostHandler) GetPost(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		writeJSON(w, http.StatusOK, nil)
		return
	}

	post, err := h.Repo.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			writeJSON(w, http.StatusOK, nil)
			return
		}
		slog.Error("get post failed", "id", id, "error", err)
		JSONError(w, ErrMessageGeneric, http.StatusUnauthorized)
		return
	}

	writeJSON(w, http.StatusOK, post)
}

// CreatePost inserts a post and returns the generated id.
func (h *PostHandler) CreatePost(w http.ResponseWriter, r *http.Request) {
	var input struct {
		Title       string `json:"title"`
		Image       string `json:"image"`
		Category    string `json:"category"`
		Amount      string `json:"amount"`
		Description string `json:"description"`
	}

	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		JSONError(w, "invalid JSON", http.StatusBadRequest)
		return
	}

	id, err := h.Repo.Create(r.Context(), input.Title, input.Image, input.Category, input.Amount, input.Description)
	if err != nil {
		slog.Error("create post failed", "error", err)
		JSONError(w, ErrMessageGeneric, http.StatusUnauthorized)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success":    true,
		"insertedId": id,
		"message":    "Post added successfully",
	})
}

// UpdatePost patches title, description, amount, and category. A missing or
// malformed id yields modifiedCount 0 rather than an error.
func (h *PostHandler) UpdatePost(w http.ResponseWriter, r *http.Request) {
	id, idErr := strconv.Atoi(chi.URLParam(r, "id"))

	var input struct {
		Title       string `json:"title"`
		Description string `json:"description"`
		Amount      string `json:"amount"`
		Category    string `json:"category"`
	}

	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		JSONError(w, "invalid JSON", http.StatusBadRequest)
		return
	}

	var modified int64
	if idErr == nil {
		var err error
		modified, err = h.Repo.Update(r.Context(), id, input.Title, input.Description, input.Amount, input.Category)
		if err != nil {
			slog.Error("update post failed", "id", id, "error", err)
			JSONError(w, ErrMessageGeneric, http.StatusUnauthorized)
			return
		}
	}

	message := "Post updated successfully"
	if modified == 0 {
		message = "Post not found"
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success":       modified > 0,
		"modifiedCount": modified,
		"message":       message,
	})
}

// DeletePost removes a post. A missing or malformed id yields deletedCount 0.
func (h *PostHandler) DeletePost(w http.ResponseWriter, r *http.Request) {
	id, idErr := strconv.Atoi(chi.URLParam(r, "id"))

	var deleted int64
	if idErr == nil {
		var err error
		deleted, err = h.Repo.Delete(r.Context(), id)
		if err != nil {
			slog.Error("delete post failed", "id", id, "error", err)
			JSONError(w, ErrMessageGeneric, http.StatusUnauthorized)
			return
		}
	}

	message := "Post deleted successfully"
	if deleted == 0 {
		message = "Post not found"
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success":      deleted > 0,
		"deletedCount": deleted,
		"message":      message,
	})
}
