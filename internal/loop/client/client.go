// Package client drives a Game from a terminal: it reads keys and SGR mouse
// reports, runs the frame loop and renders the canvas plus text screens.
package client

import (
	"bufio"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/tomz197/target-blaster/internal/audio"
	"github.com/tomz197/target-blaster/internal/draw"
	"github.com/tomz197/target-blaster/internal/input"
	"github.com/tomz197/target-blaster/internal/loop"
	"github.com/tomz197/target-blaster/internal/loop/config"
	"github.com/tomz197/target-blaster/internal/loop/server"
)

// Client handles rendering and input for a single terminal.
type Client struct {
	game         *loop.Game
	hub          *server.Hub
	handle       *server.Handle
	state        *ClientState
	canvas       *draw.Canvas
	chunkWriter  *draw.ChunkWriter // Accumulates the frame for chunked output
	overlay      *draw.ChunkWriter // Entity labels, flushed into chunkWriter after the canvas
	writer       io.Writer
	inputStream  *input.Stream
	trigger      *input.Trigger
	lastInput    time.Time
	termSizeFunc draw.TermSizeFunc
	sound        *audio.Switch
	idleWarn     time.Duration
	idleTimeout  time.Duration
	logger       *log.Logger
}

// ClientOptions configures the client.
type ClientOptions struct {
	TermSizeFunc draw.TermSizeFunc
	Username     string
	// Hub registers the session on a multi-user host. Nil for local play,
	// which also disables the inactivity timeout.
	Hub *server.Hub
	// Sound is toggled by the mute key. Nil disables the key.
	Sound *audio.Switch
	// IdleWarn and IdleTimeout bound inactivity on a hub. Zero values use
	// config.InactivityWarn and config.InactivityDisconnect.
	IdleWarn    time.Duration
	IdleTimeout time.Duration
	Logger      *log.Logger
}

// NewClient creates a client that plays game on the terminal behind r and w.
func NewClient(game *loop.Game, r *bufio.Reader, w io.Writer, opts ClientOptions) *Client {
	termSizeFunc := opts.TermSizeFunc
	if termSizeFunc == nil {
		termSizeFunc = draw.DefaultTermSizeFunc
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	idleWarn, idleTimeout := opts.IdleWarn, opts.IdleTimeout
	if idleWarn <= 0 {
		idleWarn = config.InactivityWarn
	}
	if idleTimeout <= 0 {
		idleTimeout = config.InactivityDisconnect
	}

	// Create canvas with clamped dimensions for max render resolution
	termWidth, termHeight, _ := termSizeFunc()
	renderWidth, renderHeight, offsetCol, offsetRow := clampTermSize(termWidth, termHeight)
	logicalWidth, logicalHeight := game.Size()
	canvas := draw.NewScaledCanvas(renderWidth, renderHeight, logicalWidth, logicalHeight)
	canvas.SetOffset(offsetCol, offsetRow)
	chunkWriter := draw.NewChunkWriter(w, offsetCol, offsetRow)

	c := &Client{
		game:         game,
		hub:          opts.Hub,
		state:        NewClientState(),
		canvas:       canvas,
		chunkWriter:  chunkWriter,
		overlay:      draw.NewChunkWriter(chunkWriter, offsetCol, offsetRow),
		writer:       w,
		inputStream:  input.StartStream(r),
		trigger:      input.NewTrigger(),
		lastInput:    time.Now(),
		termSizeFunc: termSizeFunc,
		sound:        opts.Sound,
		idleWarn:     idleWarn,
		idleTimeout:  idleTimeout,
		logger:       logger,
	}
	if c.hub != nil {
		c.handle = c.hub.Register(opts.Username)
	}
	return c
}

// Run starts the client loop. Blocks until the player quits, the input
// closes or the host shuts down.
func (c *Client) Run() error {
	draw.HideCursor(c.writer)
	draw.EnableMouse(c.writer)
	defer func() {
		draw.DisableMouse(c.writer)
		draw.ShowCursor(c.writer)
	}()
	draw.ClearScreen(c.writer)

	if c.hub != nil {
		defer c.hub.Unregister(c.handle.ID)
	}

	c.game.Ready()
	lastTime := time.Now()

	for c.state.Running {
		frameStart := time.Now()
		c.state.delta = min(frameStart.Sub(lastTime), config.MaxFrameDelta)
		lastTime = frameStart

		c.processInput(frameStart)
		c.processServerEvents()
		c.updateScreen()

		c.game.Frame(c.state.delta)
		c.updateShutdownState()

		if err := c.drawFrame(); err != nil {
			return err
		}

		// Frame timing
		elapsed := time.Since(frameStart)
		if elapsed < config.ClientTargetFrameTime {
			time.Sleep(config.ClientTargetFrameTime - elapsed)
		}
	}

	draw.ClearScreen(c.writer)
	return nil
}

// processInput reads input and turns it into game requests.
func (c *Client) processInput(now time.Time) {
	in := input.ReadInput(c.inputStream)
	c.state.Input = in

	if c.hub != nil {
		if len(in.Pressed) > 0 {
			c.lastInput = now
			c.state.isInactive = false
		} else if now.Sub(c.lastInput) > c.idleTimeout {
			c.logger.Info("disconnecting inactive session")
			c.state.Running = false
		} else if now.Sub(c.lastInput) > c.idleWarn {
			c.state.isInactive = true
			c.game.Pause()
		}
	}

	if in.Quit {
		c.state.Running = false
		return
	}
	if c.state.shuttingDown {
		return
	}

	if in.Mute && c.sound != nil {
		c.logger.Debug("sound toggled", "muted", c.sound.Toggle())
	}
	c.handleKeys(in)
	c.handlePointer(now, in.Mouse)
}

func (c *Client) handleKeys(in input.Input) {
	g := c.game
	switch g.Phase() {
	case loop.PhaseMenu:
		c.selectDifficulty(in.Number)
		if in.Start || in.Pause {
			c.request("start", g.Start())
		}
	case loop.PhasePlaying:
		switch {
		case in.Pause:
			c.request("pause", g.TogglePause())
		case in.Menu:
			c.request("menu", g.ToMenu())
		}
	case loop.PhasePaused:
		switch {
		case in.Pause:
			c.request("resume", g.TogglePause())
		case in.Start:
			c.request("restart", g.Start())
		case in.Menu:
			c.request("menu", g.ToMenu())
		}
	case loop.PhaseGameOver:
		c.selectDifficulty(in.Number)
		switch {
		case in.Start:
			c.request("restart", g.Start())
		case in.Reward && g.RewardPending():
			c.request("skip reward", g.SkipReward())
		case in.Reward:
			c.request("reward", g.RequestReward())
		case in.Menu:
			c.request("menu", g.ToMenu())
		}
	}
}

func (c *Client) selectDifficulty(key int) {
	if d, ok := config.DifficultyFromKey(key); ok {
		c.request("difficulty", c.game.SetDifficulty(d))
	}
}

func (c *Client) request(action string, ok bool) {
	if !ok {
		c.logger.Debug("request ignored", "action", action, "phase", c.game.Phase())
	}
}

// handlePointer maps mouse reports onto the canvas and fires shots through
// the trigger's debounce and rapid-fire repeat.
func (c *Client) handlePointer(now time.Time, events []input.MouseEvent) {
	if c.game.Phase() != loop.PhasePlaying {
		c.trigger.Release()
		return
	}
	rapid := c.game.RapidFire()
	for _, ev := range events {
		x, y, ok := c.canvas.TerminalToLogical(ev.Col, ev.Row)
		switch ev.Kind {
		case input.MousePress:
			if ok && c.trigger.Press(now, x, y, rapid) {
				c.game.Shoot(x, y)
			}
		case input.MouseDrag:
			if ok {
				c.trigger.Move(x, y)
			}
		case input.MouseRelease:
			c.trigger.Release()
		}
	}
	if x, y, fire := c.trigger.Poll(now, rapid); fire {
		c.game.Shoot(x, y)
	}
}

// processServerEvents handles events from the hub.
func (c *Client) processServerEvents() {
	if c.handle == nil {
		return
	}
	for {
		select {
		case event, ok := <-c.handle.Events:
			if !ok {
				c.state.Running = false
				return
			}
			if event.Type == server.EventShutdown {
				c.state.shuttingDown = true
				c.state.shutdownTimer = config.ShutdownDisplaySeconds
				c.game.Pause()
			}
		default:
			return
		}
	}
}

// updateScreen handles terminal resize, clamping to max render resolution.
func (c *Client) updateScreen() {
	termWidth, termHeight, err := c.termSizeFunc()
	if err != nil {
		return
	}
	renderWidth, renderHeight, offsetCol, offsetRow := clampTermSize(termWidth, termHeight)

	c.canvas.Resize(renderWidth, renderHeight)
	c.canvas.SetOffset(offsetCol, offsetRow)
	c.chunkWriter.SetOffset(offsetCol, offsetRow)
	c.overlay.SetOffset(offsetCol, offsetRow)
}

// clampTermSize clamps terminal dimensions to the max render resolution and computes
// the centering offset for the render area.
func clampTermSize(termWidth, termHeight int) (renderWidth, renderHeight, offsetCol, offsetRow int) {
	renderWidth = min(termWidth, config.MaxTermWidth)
	renderHeight = min(termHeight, config.MaxTermHeight)
	offsetCol = (termWidth - renderWidth) / 2
	offsetRow = (termHeight - renderHeight) / 2
	return
}

// updateShutdownState handles the shutdown screen countdown.
func (c *Client) updateShutdownState() {
	if !c.state.shuttingDown {
		return
	}
	c.state.shutdownTimer -= c.state.delta.Seconds()
	if c.state.shutdownTimer <= 0 {
		c.state.Running = false
	}
}
