package handlers

import (
	"log/slog"
	"net/http"

	"github.com/saifulislam1431/Post-Disaster-Community-server/internal/models"
	"github.com/saifulislam1431/Post-Disaster-Community-server/internal/repo"
)

// CommunityHandler serves the read-only landing-page collections: testimonials,
// the work portfolio gallery, upcoming events, statistics, and the donor
// leaderboard.
type CommunityHandler struct {
	Testimonials *repo.TestimonialRepo
	Gallery      *repo.GalleryRepo
	Events       *repo.EventRepo
	Stats        *repo.StatisticRepo
	Donors       *repo.DonorRepo
}

func (h *CommunityHandler) ListTestimonials(w http.ResponseWriter, r *http.Request) {
	items, err := h.Testimonials.List(r.Context())
	if err != nil {
		slog.Error("list testimonials failed", "error", err)
		JSONError(w, ErrMessageGeneric, http.StatusUnauthorized)
		return
	}
	if items == nil {
		items = []models.Testimonial{}
	}
	writeJSON(w, http.StatusOK, items)
}

func (h *CommunityHandler) ListWorkPortfolio(w http.ResponseWriter, r *http.Request) {
	items, err := h.Gallery.List(r.Context())
	if err != nil {
		slog.Error("list gallery failed", "error", err)
		JSONError(w, ErrMessageGeneric, http.StatusUnauthorized)
		return
	}
	if items == nil {
		items = []models.GalleryItem{}
	}
	writeJSON(w, http.StatusOK, items)
}

func (h *CommunityHandler) ListUpcomingEvents(w http.ResponseWriter, r *http.Request) {
	events, err := h.Events.ListUpcoming(r.Context())
	if err != nil {
		slog.Error("list events failed", "error", err)
		JSONError(w, ErrMessageGeneric, http.StatusUnauthorized)
		return
	}
	if events == nil {
		events = []models.CommunityEvent{}
	}
	writeJSON(w, http.StatusOK, events)
}

func (h *CommunityHandler) ListStatistics(w http.ResponseWriter, r *http.Request) {
	stats, err := h.Stats.List(r.Context())
	if err != nil {
		slog.Error("list statistics failed", "error", err)
		JSONError(w, ErrMessageGeneric, http.StatusUnauthorized)
		return
	}
	if stats == nil {
		stats = []models.Statistic{}
	}
	writeJSON(w, http.StatusOK, stats)
}

// ListDonorsByDonation returns the donor leaderboard, highest donation first.
func (h *CommunityHandler) ListDonorsByDonation(w http.ResponseWriter, r *http.Request) {
	donors, err := h.Donors.ListByDonation(r.Context())
	if err != nil {
		slog.Error("list donors failed", "error", err)
		JSONError(w, ErrMessageGeneric, http.StatusUnauthorized)
		return
	}
	if donors == nil {
		donors = []models.Donor{}
	}
	writeJSON(w, http.StatusOK, donors)
}
