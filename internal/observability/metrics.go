package observability

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	RequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "consent_api_requests_total",
			Help: "Total API requests",
		}, []string{"code"},
	)
	Latency = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "consent_api_request_duration_seconds",
		Help:    "Request latency seconds",
		Buckets: prometheus.DefBuckets,
	})
	InFlight = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "consent_api_in_flight",
		Help: "In-flight HTTP requests",
	})
	AffiliateClicks = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "affiliate_clicks_total",
		Help: "Affiliate ad clicks tracked",
	})
	CookieScans = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "cookie_scans_total",
		Help: "Cookie scan payloads received",
	})
	ConsentsRecorded = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "consent_records_total",
		Help: "Consent decisions recorded",
	})
	JournalErrors = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "journal_errors_total",
			Help: "Journal append failures by event type",
		}, []string{"event"},
	)
)

func init() {
	prometheus.MustRegister(RequestsTotal, Latency, InFlight, AffiliateClicks, CookieScans, ConsentsRecorded, JournalErrors)
}

func MetricsHandler() http.Handler { return promhttp.Handler() }

type rec struct {
	http.ResponseWriter
	code int
}

func (r *rec) WriteHeader(code int) {
	r.code = code
	r.ResponseWriter.WriteHeader(code)
}

func Measure(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		InFlight.Inc()
		defer InFlight.Dec()

		rr := &rec{ResponseWriter: w, code: http.StatusOK}
		next.ServeHTTP(rr, r)

		Latency.Observe(time.Since(start).Seconds())
		RequestsTotal.WithLabelValues(strconv.Itoa(rr.code)).Inc()
	})
}
