package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"net"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/activeterm"
	"github.com/charmbracelet/wish/logging"

	"github.com/tomz197/target-blaster/internal/ads"
	"github.com/tomz197/target-blaster/internal/config"
	"github.com/tomz197/target-blaster/internal/draw"
	"github.com/tomz197/target-blaster/internal/loop"
	loopconfig "github.com/tomz197/target-blaster/internal/loop/config"
	"github.com/tomz197/target-blaster/internal/loop/client"
	"github.com/tomz197/target-blaster/internal/loop/server"
	"github.com/tomz197/target-blaster/internal/store"
)

const (
	defaultHost          = "::"
	defaultPort          = "2222"
	defaultHostKeyPath   = "/app/keys/host_key"
	defaultHighScoreFile = "/app/data/highscore.yaml"
	defaultShutdownWait  = 15 * time.Second
)

// Shared by every session: the hub tracks who is connected and the store
// keeps one high score for the whole server.
var (
	hub        *server.Hub
	highScores *store.Max
	difficulty loopconfig.Difficulty
	idleWarn   time.Duration
	idleLimit  time.Duration
	logger     *log.Logger
)

func main() {
	if err := config.LoadDotEnv(); err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
	}
	logger = config.NewLogger(os.Stderr, "ssh")

	host := config.GetEnv("SSH_HOST", defaultHost)
	port := config.GetEnv("SSH_PORT", defaultPort)
	hostKeyPath := config.GetEnv("SSH_HOST_KEY", defaultHostKeyPath)
	scoreFile := config.GetEnv("HIGHSCORE_FILE", defaultHighScoreFile)
	logger.Info("SSH config", "host", host, "port", port, "hostKeyPath", hostKeyPath, "highScoreFile", scoreFile)

	var err error
	difficulty, err = loopconfig.ParseDifficulty(config.GetEnv("DIFFICULTY", "medium"))
	if err != nil {
		logger.Warn("falling back to medium", "err", err)
	}
	idleWarn = config.GetEnvDuration("SSH_IDLE_WARN", loopconfig.InactivityWarn)
	idleLimit = config.GetEnvDuration("SSH_IDLE_TIMEOUT", loopconfig.InactivityDisconnect)
	shutdownWait := config.GetEnvDuration("SSH_SHUTDOWN_TIMEOUT", defaultShutdownWait)
	hub = server.NewHub(logger.WithPrefix("hub"))
	highScores = store.NewMax(store.NewFile(scoreFile))

	opts := []ssh.Option{
		wish.WithAddress(net.JoinHostPort(host, port)),
		wish.WithMiddleware(
			gameMiddleware,
			activeterm.Middleware(),
			logging.MiddlewareWithLogger(logger),
		),
		// Set TCP_NODELAY to reduce latency for game input
		ssh.WrapConn(func(ctx ssh.Context, conn net.Conn) net.Conn {
			if tcpConn, ok := conn.(*net.TCPConn); ok {
				_ = tcpConn.SetNoDelay(true)
			}
			return conn
		}),
	}

	if hostKeyPath != "" {
		opts = append(opts, wish.WithHostKeyPath(hostKeyPath))
	}

	s, err := wish.NewServer(opts...)
	if err != nil {
		logger.Fatal("failed to create server", "err", err)
	}

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	logger.Info("Starting SSH server", "addr", net.JoinHostPort(host, port))
	go func() {
		if err := s.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			logger.Fatal("server error", "err", err)
		}
	}()

	<-done
	logger.Info("Shutting down server...")

	// Notify players and wait for them to disconnect
	logger.Info("Notifying connected players about shutdown...", "sessions", hub.Sessions())
	hub.Shutdown(shutdownWait)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := s.Shutdown(ctx); err != nil {
		logger.Fatal("shutdown error", "err", err)
	}
}

// gameMiddleware runs a private game for each SSH session.
func gameMiddleware(next ssh.Handler) ssh.Handler {
	return func(sess ssh.Session) {
		pty, winCh, ok := sess.Pty()
		if !ok {
			fmt.Fprintln(sess, "Error: PTY required. Please connect with: ssh -t user@host")
			return
		}

		sessLogger := logger.With("user", sess.User())
		sessLogger.Info("New game session", "terminal", pty.Term, "width", pty.Window.Width, "height", pty.Window.Height)

		// Create a terminal size tracker that updates on window changes
		sizeTracker := newSizeTracker(pty.Window.Width, pty.Window.Height)

		// Listen for window size changes in a goroutine
		go func() {
			for win := range winCh {
				sizeTracker.update(win.Width, win.Height)
			}
		}()

		adverts := ads.NewSimulated(sessLogger.WithPrefix("ads"))
		defer adverts.Close()

		// Sessions share nothing but the high score store.
		game := loop.New(loop.Options{
			Ads:        adverts,
			HighScores: highScores,
			Logger:     sessLogger,
			Difficulty: difficulty,
		})

		reader := bufio.NewReader(sess)
		c := client.NewClient(game, reader, sess, client.ClientOptions{
			TermSizeFunc: sizeTracker.getSize,
			Username:     sess.User(),
			Hub:          hub,
			IdleWarn:     idleWarn,
			IdleTimeout:  idleLimit,
			Logger:       sessLogger,
		})
		if err := c.Run(); err != nil {
			sessLogger.Error("Game error", "err", err)
		}

		sessLogger.Info("Session ended", "highScore", game.HighScore())
		next(sess)
	}
}

// sizeTracker tracks terminal size from SSH window change events.
type sizeTracker struct {
	mu     sync.RWMutex
	width  int
	height int
}

func newSizeTracker(width, height int) *sizeTracker {
	return &sizeTracker{width: width, height: height}
}

func (s *sizeTracker) update(width, height int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.width = width
	s.height = height
}

func (s *sizeTracker) getSize() (int, int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.width, s.height, nil
}

// Ensure sizeTracker.getSize satisfies draw.TermSizeFunc
var _ draw.TermSizeFunc = (*sizeTracker)(nil).getSize
