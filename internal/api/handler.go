package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"cookie-consent-api/internal/journal"
	"cookie-consent-api/internal/observability"
	"cookie-consent-api/internal/report"
	"cookie-consent-api/internal/store"
)

// Version is reported by the health endpoint.
const Version = "1.0.0"

type Handler struct {
	store   *store.Store
	reports report.Source
	journal journal.Recorder
	ipSalt  string
}

func NewHandler(st *store.Store, src report.Source, rec journal.Recorder, ipSalt string) *Handler {
	return &Handler{store: st, reports: src, journal: rec, ipSalt: ipSalt}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// Analytics serves GET /analytics/{clientID}.
func (h *Handler) Analytics(w http.ResponseWriter, r *http.Request) {
	clientID := chi.URLParam(r, "clientID")
	if _, ok := h.store.Client(clientID); !ok {
		writeError(w, http.StatusNotFound, "Client not found")
		return
	}
	writeJSON(w, http.StatusOK, h.reports.Analytics(h.store.WebsiteCount(clientID)))
}

// ListWebsites serves GET /websites/{clientID}.
func (h *Handler) ListWebsites(w http.ResponseWriter, r *http.Request) {
	clientID := chi.URLParam(r, "clientID")
	if _, ok := h.store.Client(clientID); !ok {
		writeError(w, http.StatusNotFound, "Client not found")
		return
	}
	writeJSON(w, http.StatusOK, h.store.Websites(clientID))
}

// AddWebsite serves POST /websites/{clientID}.
func (h *Handler) AddWebsite(w http.ResponseWriter, r *http.Request) {
	clientID := chi.URLParam(r, "clientID")
	if _, ok := h.store.Client(clientID); !ok {
		writeError(w, http.StatusNotFound, "Client not found")
		return
	}

	var req struct {
		Domain string `json:"domain"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Domain == "" {
		writeError(w, http.StatusBadRequest, "Domain is required")
		return
	}

	site, ok := h.store.AddWebsite(clientID, req.Domain)
	if !ok {
		writeError(w, http.StatusNotFound, "Client not found")
		return
	}
	writeJSON(w, http.StatusCreated, site)
}

// GetConfig serves GET /config/{clientID}.
func (h *Handler) GetConfig(w http.ResponseWriter, r *http.Request) {
	clientID := chi.URLParam(r, "clientID")
	client, ok := h.store.Client(clientID)
	if !ok {
		writeError(w, http.StatusNotFound, "Client not found")
		return
	}
	writeJSON(w, http.StatusOK, client)
}

// UpdateConfig serves PUT /config/{clientID}. The body is a partial map of
// field name to value; recognized fields are overwritten, the rest ignored.
func (h *Handler) UpdateConfig(w http.ResponseWriter, r *http.Request) {
	clientID := chi.URLParam(r, "clientID")
	if _, ok := h.store.Client(clientID); !ok {
		writeError(w, http.StatusNotFound, "Client not found")
		return
	}

	var fields map[string]any
	if err := json.NewDecoder(r.Body).Decode(&fields); err != nil || len(fields) == 0 {
		writeError(w, http.StatusBadRequest, "No data provided")
		return
	}

	client, ok := h.store.UpdateClient(clientID, fields)
	if !ok {
		writeError(w, http.StatusNotFound, "Client not found")
		return
	}
	writeJSON(w, http.StatusOK, client)
}

// SelectAds serves POST /affiliate-ads. It never errors: any invalid input
// yields an empty array.
func (h *Handler) SelectAds(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ClientID string         `json:"clientId"`
		MaxAds   *int           `json:"maxAds"`
		Context  map[string]any `json:"context"` // accepted, no contextual matching yet
	}
	empty := []store.AffiliateAd{}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusOK, empty)
		return
	}

	client, ok := h.store.Client(req.ClientID)
	if !ok || !client.EnableAffiliateAds {
		writeJSON(w, http.StatusOK, empty)
		return
	}

	maxAds := 2
	if req.MaxAds != nil {
		maxAds = *req.MaxAds
	}
	if maxAds <= 0 {
		writeJSON(w, http.StatusOK, empty)
		return
	}
	writeJSON(w, http.StatusOK, sampleAds(h.store.Ads(), maxAds))
}

// TrackClick serves POST /affiliate-click. Revenue is split 60/40 in the
// client's favor.
func (h *Handler) TrackClick(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ClientID string `json:"clientId"`
		AdID     string `json:"adId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.ClientID == "" || req.AdID == "" {
		writeError(w, http.StatusBadRequest, "Missing required fields")
		return
	}
	if _, ok := h.store.Client(req.ClientID); !ok {
		writeError(w, http.StatusNotFound, "Client not found")
		return
	}
	ad, ok := h.store.Ad(req.AdID)
	if !ok {
		writeError(w, http.StatusNotFound, "Ad not found")
		return
	}

	revenue := ad.CPC * 0.6
	if err := h.journal.RecordClick(r.Context(), journal.ClickRecord{
		ClientID:   req.ClientID,
		AdID:       req.AdID,
		Revenue:    revenue,
		OccurredAt: time.Now().UTC(),
	}); err != nil {
		observability.JournalErrors.WithLabelValues("click").Inc()
		log.Error().Err(err).Str("client_id", req.ClientID).Msg("record click")
	}
	observability.AffiliateClicks.Inc()

	writeJSON(w, http.StatusOK, map[string]any{"success": true, "revenue": revenue})
}

// ReceiveScan serves POST /cookie-scan.
func (h *Handler) ReceiveScan(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ClientID string            `json:"clientId"`
		Domain   string            `json:"domain"`
		Cookies  []json.RawMessage `json:"cookies"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.ClientID == "" || req.Domain == "" {
		writeError(w, http.StatusBadRequest, "Missing required fields")
		return
	}
	if _, ok := h.store.Client(req.ClientID); !ok {
		writeError(w, http.StatusNotFound, "Client not found")
		return
	}

	if err := h.journal.RecordScan(r.Context(), journal.ScanRecord{
		ClientID:   req.ClientID,
		Domain:     req.Domain,
		Cookies:    req.Cookies,
		OccurredAt: time.Now().UTC(),
	}); err != nil {
		observability.JournalErrors.WithLabelValues("scan").Inc()
		log.Error().Err(err).Str("client_id", req.ClientID).Msg("record scan")
	}
	observability.CookieScans.Inc()

	writeJSON(w, http.StatusOK, map[string]any{"success": true, "cookies_detected": len(req.Cookies)})
}

// RecordConsent serves POST /consent-record. The caller's network origin is
// stored hashed, never raw.
func (h *Handler) RecordConsent(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ClientID string         `json:"clientId"`
		Domain   string         `json:"domain"`
		Consent  map[string]any `json:"consent"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.ClientID == "" || req.Domain == "" || len(req.Consent) == 0 {
		writeError(w, http.StatusBadRequest, "Missing required fields")
		return
	}
	if _, ok := h.store.Client(req.ClientID); !ok {
		writeError(w, http.StatusNotFound, "Client not found")
		return
	}

	if err := h.journal.RecordConsent(r.Context(), journal.ConsentRecord{
		ClientID:   req.ClientID,
		Domain:     req.Domain,
		Consent:    req.Consent,
		IPHash:     hashIP(clientIP(r), h.ipSalt),
		UserAgent:  r.UserAgent(),
		OccurredAt: time.Now().UTC(),
	}); err != nil {
		observability.JournalErrors.WithLabelValues("consent").Inc()
		log.Error().Err(err).Str("client_id", req.ClientID).Msg("record consent")
	}
	observability.ConsentsRecorded.Inc()

	writeJSON(w, http.StatusOK, map[string]any{"success": true})
}

// Script serves GET /script/{clientID}.
func (h *Handler) Script(w http.ResponseWriter, r *http.Request) {
	clientID := chi.URLParam(r, "clientID")
	client, ok := h.store.Client(clientID)
	if !ok {
		writeError(w, http.StatusNotFound, "Client not found")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"script": renderScript(client)})
}

// RevenueReport serves GET /revenue/{clientID}.
func (h *Handler) RevenueReport(w http.ResponseWriter, r *http.Request) {
	clientID := chi.URLParam(r, "clientID")
	if _, ok := h.store.Client(clientID); !ok {
		writeError(w, http.StatusNotFound, "Client not found")
		return
	}
	writeJSON(w, http.StatusOK, h.reports.Revenue())
}

// Health serves GET /health.
func (h *Handler) Health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":    "healthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"version":   Version,
	})
}
