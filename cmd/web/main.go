package main

import (
	_ "embed"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/tomz197/target-blaster/internal/config"
	"github.com/tomz197/target-blaster/internal/store"
)

const (
	defaultHost          = "0.0.0.0"
	defaultPort          = "8080"
	defaultHighScoreFile = "/app/data/highscore.yaml"
)

//go:embed index.html
var htmlPage string

func main() {
	if err := config.LoadDotEnv(); err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
	}
	logger := config.NewLogger(os.Stderr, "web")

	host := config.GetEnv("WEB_HOST", defaultHost)
	port := config.GetEnv("WEB_PORT", defaultPort)
	sshHost := config.GetEnv("SSH_DISPLAY_HOST", "your-server.com")
	scores := store.NewFile(config.GetEnv("HIGHSCORE_FILE", defaultHighScoreFile))

	srv := &http.Server{
		Addr:              fmt.Sprintf("%s:%s", host, port),
		Handler:           newRouter(htmlPage, sshHost, scores, logger),
		ReadHeaderTimeout: 5 * time.Second,
	}

	logger.Info("Starting web server", "addr", "http://"+srv.Addr)
	if err := srv.ListenAndServe(); err != nil {
		logger.Fatal("server error", "err", err)
	}
}
