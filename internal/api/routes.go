package api

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/aws11/account-api/internal/auth"
)

// SetupRoutes configures the router. Everything under /api/user requires a
// valid bearer token; /health does not.
func SetupRoutes(h *Handlers, hc *HealthChecker, verifier *auth.Verifier, corsOrigins []string) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RealIP)
	r.Use(middleware.RequestID)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   corsOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Get("/health", hc.HealthCheck)

	r.Route("/api/user", func(r chi.Router) {
		r.Use(verifier.Middleware)

		r.Get("/profile", h.GetProfile)
		r.Put("/profile", h.UpdateProfile)

		r.Route("/reports", func(r chi.Router) {
			r.Post("/", h.CreateReport)
			r.Get("/", h.MyReports)
			// Fixed segments registered before the {reportID} wildcard.
			r.Get("/pending", h.PendingReports)
			r.Get("/search", h.SearchReports)
			r.Get("/against/{userID}", h.ReportsAgainstUser)
			r.Get("/{reportID}", h.GetReport)
			r.Put("/{reportID}/status", h.UpdateReportStatus)
		})

		r.Route("/inquiries", func(r chi.Router) {
			r.Post("/", h.CreateInquiry)
			r.Get("/", h.MyInquiries)
			r.Get("/pending", h.PendingInquiries)
			r.Get("/{inquiryID}", h.GetInquiry)
			r.Put("/{inquiryID}/status", h.UpdateInquiryStatus)
		})
	})

	return r
}
