package server

import (
	"ai_digest/logic"
	"ai_digest/shared"
	"crypto/subtle"
	"net/http"
)

type apiHandlerGroup struct {
	cfg       *shared.Config
	logger    shared.ILogger
	scheduler logic.IScheduler
}

func NewApiHandlerGroup(
	cfg *shared.Config,
	logger shared.ILogger,
	scheduler logic.IScheduler,
) IHandlerGroup {
	res := apiHandlerGroup{
		cfg:       cfg,
		logger:    logger,
		scheduler: scheduler,
	}
	if len(cfg.Secrets.ApiKeys) == 0 {
		logger.Warn("No API keys configured; /api endpoints are open")
	}
	return &res
}

func (hg *apiHandlerGroup) Prefix() string {
	return "/api"
}

func (hg *apiHandlerGroup) GroupDefs() []handlerDef {
	return []handlerDef{
		{"GET", "/digest", func(w http.ResponseWriter, r *http.Request) { hg.getDigest(w, r) }},
		{"GET", "/status", func(w http.ResponseWriter, r *http.Request) { hg.getStatus(w, r) }},
		{"POST", "/refresh", func(w http.ResponseWriter, r *http.Request) { hg.postRefresh(w, r) }},
	}
}

func (hg *apiHandlerGroup) AuthMW() func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return hg.authMW(next)
	}
}

func (hg *apiHandlerGroup) authMW(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if len(hg.cfg.Secrets.ApiKeys) == 0 {
			next.ServeHTTP(w, r)
			return
		}
		var apiKey = r.Header.Get(apiKeyHeader)
		found := false
		for _, key := range hg.cfg.Secrets.ApiKeys {
			if subtle.ConstantTimeCompare([]byte(apiKey), []byte(key)) == 1 {
				found = true
			}
		}
		if !found {
			keyPart := apiKey
			if len(apiKey) > 4 {
				keyPart = apiKey[:4] + "..."
			}
			hg.logger.Warnf("API request with missing or invalid key '%s': %s", keyPart, r.URL.Path)
			writeErrorResponse(w, badApiKeyStr, http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (hg *apiHandlerGroup) getDigest(w http.ResponseWriter, r *http.Request) {
	hg.logger.Debugf("GET /api/digest: Request received")
	latest := hg.scheduler.Latest()
	if latest == nil {
		writeErrorResponse(w, "No digest generated yet", http.StatusNotFound)
		return
	}
	writeJsonResponse(hg.logger, w, latest)
}

func (hg *apiHandlerGroup) getStatus(w http.ResponseWriter, r *http.Request) {
	hg.logger.Debugf("GET /api/status: Request received")
	writeJsonResponse(hg.logger, w, hg.scheduler.Status())
}

func (hg *apiHandlerGroup) postRefresh(w http.ResponseWriter, r *http.Request) {
	hg.logger.Info("POST /api/refresh: Request received")
	if err := hg.scheduler.Refresh(); err != nil {
		hg.logger.Errorf("Requested refresh failed: %v", err)
		writeErrorResponse(w, internalErrorStr, http.StatusInternalServerError)
		return
	}
	writeJsonResponse(hg.logger, w, hg.scheduler.Status())
}
