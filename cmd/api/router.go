package main

import (
	"database/sql"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/saifulislam1431/Post-Disaster-Community-server/internal/auth"
	"github.com/saifulislam1431/Post-Disaster-Community-server/internal/config"
	"github.com/saifulislam1431/Post-Disaster-Community-server/internal/handlers"
	"github.com/saifulislam1431/Post-Disaster-Community-server/internal/middleware"
	"github.com/saifulislam1431/Post-Disaster-Community-server/internal/repo"
)

// newRouter wires repositories, the auth service, and handlers onto the
// versioned API surface. db is the single long-lived connection handle
// shared by every repository.
func newRouter(db *sql.DB, cfg config.Config) http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestLog)
	r.Use(middleware.Prometheus)
	r.Use(middleware.SecurityHeaders(cfg.TLSCertFile != "" && cfg.TLSKeyFile != ""))
	r.Use(middleware.CORS(cfg.CORSAllowedOrigins))
	r.Use(middleware.MaxBytes(middleware.DefaultMaxBodyBytes))

	tokens := auth.NewTokenIssuer(cfg.JWTSecret, cfg.JWTExpiresIn)

	userRepo := repo.NewUserRepo(db)
	authH := &handlers.AuthHandler{Service: auth.NewService(userRepo, tokens, cfg.BcryptCost)}
	profileH := &handlers.ProfileHandler{Users: userRepo}
	postH := &handlers.PostHandler{Repo: repo.NewSupplyPostRepo(db)}
	communityH := &handlers.CommunityHandler{
		Testimonials: repo.NewTestimonialRepo(db),
		Gallery:      repo.NewGalleryRepo(db),
		Events:       repo.NewEventRepo(db),
		Stats:        repo.NewStatisticRepo(db),
		Donors:       repo.NewDonorRepo(db),
	}

	r.Get("/", handlers.ServerStatus)
	r.Get("/health", handlers.Health)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/register", authH.Register)
		r.Post("/login", authH.Login)

		r.With(middleware.RequireAuth(tokens)).Get("/profile", profileH.Profile)

		r.Get("/all-post", postH.ListPosts)
		r.Get("/single-post-details/{id}", postH.GetPost)
		r.Post("/add-post", postH.CreatePost)
		r.Patch("/update-post/{id}", postH.UpdatePost)
		r.Delete("/delete-post/{id}", postH.DeletePost)

		r.Get("/all-testimonial", communityH.ListTestimonials)
		r.Get("/all-work-portfolio", communityH.ListWorkPortfolio)
		r.Get("/upcoming-events", communityH.ListUpcomingEvents)
		r.Get("/statistics-data", communityH.ListStatistics)
		r.Get("/donors-data-by-donation", communityH.ListDonorsByDonation)
	})

	return r
}
