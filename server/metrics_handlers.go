package server

import (
	"ai_digest/shared"
	"crypto/subtle"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"net/http"
	"strings"
)

const bearerPrefix = "Bearer "

// Exposes the digest counters (feeds_fetched, images_resolved, items_rendered, ...) to a Prometheus scraper.
type metricsHandlerGroup struct {
	cfg         *shared.Config
	logger      shared.ILogger
	digestStats http.Handler
}

func NewMetricsHandlerGroup(
	cfg *shared.Config,
	logger shared.ILogger,
) IHandlerGroup {
	gatherer := promhttp.HandlerFor(prometheus.DefaultGatherer, promhttp.HandlerOpts{
		ErrorHandling: promhttp.ContinueOnError,
	})
	res := metricsHandlerGroup{
		cfg:         cfg,
		logger:      logger,
		digestStats: promhttp.InstrumentMetricHandler(prometheus.DefaultRegisterer, gatherer),
	}
	if cfg.Secrets.MetricsAuth == "" {
		logger.Warn("No metrics_auth secret configured; /metrics is open")
	}
	return &res
}

func (hg *metricsHandlerGroup) Prefix() string {
	return "/"
}

func (hg *metricsHandlerGroup) GroupDefs() []handlerDef {
	return []handlerDef{
		{"GET", "/metrics", func(w http.ResponseWriter, r *http.Request) { hg.getMetrics(w, r) }},
	}
}

func (hg *metricsHandlerGroup) AuthMW() func(next http.Handler) http.Handler {
	if hg.cfg.Secrets.MetricsAuth == "" {
		return emptyMW
	}
	return func(next http.Handler) http.Handler {
		return hg.authMW(next)
	}
}

func (hg *metricsHandlerGroup) authMW(next http.Handler) http.Handler {
	want := []byte(hg.cfg.Secrets.MetricsAuth)
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, ok := bearerToken(r)
		if !ok || subtle.ConstantTimeCompare([]byte(token), want) != 1 {
			hg.logger.Warnf("Rejected digest metrics scrape from %s: missing or wrong bearer token", r.RemoteAddr)
			writeErrorResponse(w, badAuthorization, http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func bearerToken(r *http.Request) (string, bool) {
	authHeader := r.Header.Get(metricsAuthHeader)
	if !strings.HasPrefix(authHeader, bearerPrefix) {
		return "", false
	}
	token := strings.TrimSpace(strings.TrimPrefix(authHeader, bearerPrefix))
	return token, token != ""
}

func (hg *metricsHandlerGroup) getMetrics(w http.ResponseWriter, r *http.Request) {
	hg.logger.Debugf("Serving digest metrics to %s", r.RemoteAddr)
	hg.digestStats.ServeHTTP(w, r)
}
