package handlers

import (
	_ "embed"
	"net/http"
)

//go:embed index.html
var indexHTML []byte

// Home serves the embedded single-page try-on form.
func (a *App) Home(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(indexHTML)
}
