package main

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/tomz197/target-blaster/internal/ads"
	"github.com/tomz197/target-blaster/internal/audio"
	"github.com/tomz197/target-blaster/internal/audio/synth"
	"github.com/tomz197/target-blaster/internal/config"
	"github.com/tomz197/target-blaster/internal/loop"
	loopconfig "github.com/tomz197/target-blaster/internal/loop/config"
	"github.com/tomz197/target-blaster/internal/loop/client"
	"github.com/tomz197/target-blaster/internal/store"
)

const (
	defaultHighScoreFile = "highscore.yaml"
	defaultVolume        = 50 // percent
)

func main() {
	if err := config.LoadDotEnv(); err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
	}

	// stdout is the game screen, so logs go to a file or nowhere.
	var logOut io.Writer = io.Discard
	if path := config.GetEnv("GAME_LOG", ""); path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to open log file: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		logOut = f
	}
	logger := config.NewLogger(logOut, "game")

	difficulty, err := loopconfig.ParseDifficulty(config.GetEnv("DIFFICULTY", "medium"))
	if err != nil {
		logger.Warn("falling back to medium", "err", err)
	}

	snd := newSound(soundConfig{
		enabled: config.GetEnvBool("AUDIO", true),
		simple:  config.GetEnvBool("AUDIO_SIMPLE", false),
		volume:  config.GetEnvInt("AUDIO_VOLUME", defaultVolume),
	}, logger)
	defer snd.close()

	scoreFile := store.NewFile(config.GetEnv("HIGHSCORE_FILE", defaultHighScoreFile))
	logger.Info("high score file", "path", scoreFile.Path())

	adverts := ads.NewSimulated(logger.WithPrefix("ads"))
	defer adverts.Close()

	game := loop.New(loop.Options{
		Audio:      snd.out,
		Ads:        adverts,
		HighScores: store.NewMax(scoreFile),
		Logger:     logger,
		Difficulty: difficulty,
	})

	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to enable raw mode: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = term.Restore(fd, oldState)
	}()

	reader := bufio.NewReader(os.Stdin)
	c := client.NewClient(game, reader, os.Stdout, client.ClientOptions{Sound: snd.out, Logger: logger})
	if err := c.Run(); err != nil {
		_ = term.Restore(fd, oldState)
		fmt.Fprintf(os.Stderr, "game error: %v\n", err)
		os.Exit(1)
	}
}

type sound struct {
	out    *audio.Switch
	player *synth.Player
}

type soundConfig struct {
	enabled bool
	simple  bool
	volume  int // percent
}

// newSound builds the audio backend. A missing audio device leaves the game
// muted.
func newSound(cfg soundConfig, logger *log.Logger) *sound {
	if !cfg.enabled {
		s := &sound{out: audio.NewSwitch(audio.Nop{})}
		s.out.SetMuted(true)
		return s
	}
	volume := float64(max(0, min(cfg.volume, 100))) / 100
	p := synth.New(synth.Options{Volume: volume, Simple: cfg.simple})
	s := &sound{out: audio.NewSwitch(p), player: p}
	if err := p.Init(); err != nil {
		logger.Warn("audio disabled", "err", err)
		s.out.SetMuted(true)
	}
	return s
}

func (s *sound) close() {
	if s.player != nil {
		s.player.Close()
	}
}
