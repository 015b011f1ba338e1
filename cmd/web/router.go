package main

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/gorilla/mux"
)

type scoreLoader interface {
	Load() (int, error)
}

type highScoreResponse struct {
	HighScore int `json:"highScore"`
}

// newRouter serves the landing page and the high score endpoint.
func newRouter(page, sshHost string, scores scoreLoader, logger *log.Logger) *mux.Router {
	page = strings.ReplaceAll(page, "{{.SSHHost}}", sshHost)

	r := mux.NewRouter()
	r.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write([]byte(page))
	}).Methods(http.MethodGet)

	r.HandleFunc("/api/highscore", func(w http.ResponseWriter, r *http.Request) {
		hs, err := scores.Load()
		if err != nil {
			logger.Error("load high score", "err", err)
			http.Error(w, "high score unavailable", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(highScoreResponse{HighScore: hs})
	}).Methods(http.MethodGet)

	return r
}
