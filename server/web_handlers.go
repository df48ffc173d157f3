package server

import (
	"ai_digest/shared"
	"errors"
	"io/fs"
	"net/http"
	"os"
)

const pageNotReadyStr = "The digest has not been generated yet. Try again in a minute."

// Serves the generated page straight from the output file, so the server shows exactly what a batch run publishes.
type webHandlerGroup struct {
	cfg    *shared.Config
	logger shared.ILogger
}

func NewWebHandlerGroup(
	cfg *shared.Config,
	logger shared.ILogger,
) IHandlerGroup {
	res := webHandlerGroup{
		cfg:    cfg,
		logger: logger,
	}
	return &res
}

func (hg *webHandlerGroup) Prefix() string {
	return "/web"
}

func (hg *webHandlerGroup) GroupDefs() []handlerDef {
	return []handlerDef{
		{"GET", rootPlacholder, func(w http.ResponseWriter, r *http.Request) { hg.getRoot(w, r) }},
	}
}

func (hg *webHandlerGroup) AuthMW() func(next http.Handler) http.Handler {
	return emptyMW
}

func (hg *webHandlerGroup) getRoot(w http.ResponseWriter, r *http.Request) {

	page, err := os.ReadFile(hg.cfg.OutputFile)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			hg.logger.Infof("Page requested before first digest: %s", hg.cfg.OutputFile)
			http.Error(w, pageNotReadyStr, http.StatusServiceUnavailable)
			return
		}
		hg.logger.Errorf("Failed to read %s: %v", hg.cfg.OutputFile, err)
		http.Error(w, internalErrorStr, http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if r.Method == http.MethodOptions {
		return
	}
	_, _ = w.Write(page)
}
