package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"cookie-consent-api/internal/observability"
)

func Router(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Use(observability.Measure)
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(10 * time.Second))
	r.Use(CORS)

	r.Get("/analytics/{clientID}", h.Analytics)
	r.Get("/websites/{clientID}", h.ListWebsites)
	r.Post("/websites/{clientID}", h.AddWebsite)
	r.Get("/config/{clientID}", h.GetConfig)
	r.Put("/config/{clientID}", h.UpdateConfig)
	r.Post("/affiliate-ads", h.SelectAds)
	r.Post("/affiliate-click", h.TrackClick)
	r.Post("/cookie-scan", h.ReceiveScan)
	r.Post("/consent-record", h.RecordConsent)
	r.Get("/script/{clientID}", h.Script)
	r.Get("/revenue/{clientID}", h.RevenueReport)
	r.Get("/health", h.Health)
	r.Handle("/metrics", observability.MetricsHandler())
	return r
}
