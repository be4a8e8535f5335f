package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "knowledgebase_http_requests_total",
		Help: "Total de peticiones HTTP",
	}, []string{"method", "path", "status"})

	httpRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "knowledgebase_http_request_duration_seconds",
		Help:    "Duración de las peticiones HTTP",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path", "status"})

	companiesOnboarded = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "knowledgebase_companies_onboarded_total",
		Help: "Empresas dadas de alta, por resultado",
	}, []string{"result"})

	connectSubmissions = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "knowledgebase_connect_submissions_total",
		Help: "Formularios lets-connect recibidos, por resultado",
	}, []string{"result"})
)

// ObserveHTTPRequest registra una petición HTTP con su duración.
func ObserveHTTPRequest(method, path, status string, duration time.Duration) {
	httpRequestsTotal.WithLabelValues(method, path, status).Inc()
	httpRequestDuration.WithLabelValues(method, path, status).Observe(duration.Seconds())
}

// ObserveCompanyOnboarding incrementa el contador de altas de empresa ("created" | "failed").
func ObserveCompanyOnboarding(result string) {
	companiesOnboarded.WithLabelValues(result).Inc()
}

// ObserveConnectSubmission incrementa el contador de formularios ("created" | "duplicate" | "invalid").
func ObserveConnectSubmission(result string) {
	connectSubmissions.WithLabelValues(result).Inc()
}
