package client

import (
	"fmt"
	"strings"
	"time"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/tomz197/target-blaster/internal/draw"
	"github.com/tomz197/target-blaster/internal/loop"
	"github.com/tomz197/target-blaster/internal/loop/config"
	"github.com/tomz197/target-blaster/internal/object"
	"github.com/tomz197/target-blaster/internal/powerup"
)

var (
	hudGreen = colorful.Color{R: 0, G: 1, B: 0}
	hudWhite = colorful.Color{R: 1, G: 1, B: 1}
	hudGold  = colorful.Color{R: 1, G: 0.85, B: 0}
)

// drawFrame draws the current frame.
func (c *Client) drawFrame() error {
	cw := c.chunkWriter
	// The canvas only emits lit cells, so start from a blank screen.
	cw.WriteString("\033[H\033[2J")
	c.canvas.Clear()

	snap := c.game.Snapshot()
	if snap.Phase == loop.PhasePlaying || snap.Phase == loop.PhasePaused {
		c.game.Draw(object.DrawContext{Canvas: c.canvas, Text: c.overlay})
	}

	// Render canvas to terminal
	c.canvas.Render(cw)

	// Draw border when terminal exceeds max render resolution
	c.canvas.RenderBorder(cw)

	// Entity labels go on top of the pixels
	if err := c.overlay.Flush(); err != nil {
		return err
	}

	c.drawUI(snap)

	return cw.Flush()
}

// drawUI draws the text overlay for the current phase.
func (c *Client) drawUI(snap loop.Snapshot) {
	termWidth := c.canvas.TerminalWidth()
	termHeight := c.canvas.TerminalHeight()
	centerX := termWidth / 2
	centerY := termHeight / 2

	if c.state.shuttingDown {
		c.drawShutdownScreen(centerX, centerY)
		return
	}

	if c.state.isInactive {
		c.drawInactivityScreen(centerX, centerY)
		return
	}

	switch snap.Phase {
	case loop.PhaseLoading:
		c.writeCentered(centerX, centerY, "Loading...")
	case loop.PhaseMenu:
		c.drawStartScreen(centerX, centerY, snap)
	case loop.PhasePlaying:
		c.drawPlayingHUD(termWidth, termHeight, snap)
	case loop.PhasePaused:
		c.drawPlayingHUD(termWidth, termHeight, snap)
		c.drawPausedScreen(centerX, centerY)
	case loop.PhaseGameOver:
		c.drawGameOverScreen(centerX, centerY, snap)
	}
}

func (c *Client) writeCentered(centerX, row int, s string) {
	c.chunkWriter.WriteAt(centerX-len(s)/2, row, s)
}

func (c *Client) writeArt(centerX, top int, art []string) {
	width := 0
	for _, line := range art {
		width = max(width, len(line))
	}
	for i, line := range art {
		c.chunkWriter.WriteAt(centerX-width/2, top+i, line)
	}
}

func blink() bool {
	return time.Now().UnixMilli()/600%2 == 0
}

// drawInactivityScreen draws the inactivity warning screen.
func (c *Client) drawInactivityScreen(centerX, centerY int) {
	c.writeCentered(centerX, centerY-2, "INACTIVITY WARNING")

	msg := fmt.Sprintf(
		"You have been inactive for too long. You will be disconnected in %d seconds.",
		int((c.idleTimeout - time.Since(c.lastInput)).Seconds()),
	)
	c.writeCentered(centerX, centerY, msg)
	c.writeCentered(centerX, centerY+2, "Press any key to continue")
}

// drawStartScreen draws the title screen with the difficulty picker.
func (c *Client) drawStartScreen(centerX, centerY int, snap loop.Snapshot) {
	// ASCII art title (figlet "small" font)
	titleArt := []string{
		` _____    _    ___   ___  ___  _____ `,
		`|_   _|  /_\  | _ \ / __|| __||_   _|`,
		`  | |   / _ \ |   /| (_ || _|   | |  `,
		`  |_|  /_/ \_\|_|_\ \___||___|  |_|  `,
		` ___  _       _    ___  _____  ___  ___ `,
		`| _ )| |     /_\  / __||_   _|| __|| _ \`,
		`| _ \| |__  / _ \ \__ \  | |  | _| |   /`,
		`|___/|____|/_/ \_\|___/  |_|  |___||_|_\`,
	}
	titleStartY := centerY - 10
	c.writeArt(centerX, titleStartY, titleArt)

	y := titleStartY + len(titleArt) + 1
	c.writeCentered(centerX, y, "~ Shoot the targets before they fade ~")

	// Difficulty picker
	y += 2
	var picker strings.Builder
	for i, d := range config.Difficulties {
		if i > 0 {
			picker.WriteString("   ")
		}
		label := fmt.Sprintf("%d %s", i+1, strings.ToUpper(d.String()))
		if d == snap.Difficulty {
			label = "[" + label + "]"
		} else {
			label = " " + label + " "
		}
		picker.WriteString(label)
	}
	c.writeCentered(centerX, y, picker.String())

	p := snap.Difficulty.Profile()
	info := fmt.Sprintf("%ds on the clock, power-ups %d%%", int(p.TimeLimit/time.Second), int(p.PowerupChance*100))
	c.writeCentered(centerX, y+1, info)

	if snap.HighScore > 0 {
		c.writeCentered(centerX, y+3, fmt.Sprintf("High score: %d", snap.HighScore))
	}

	// Controls section
	controlsY := y + 5
	c.writeCentered(centerX, controlsY, "Controls")
	controlLines := []string{
		"Mouse click  . . . .  Shoot",
		"1 2 3  . . . .  Difficulty",
		"SPACE / P  . . . . .  Pause",
		"ESC / M  . . . . . . . Menu",
		"V  . . . . . . Sound on/off",
		"Q  . . . . . . . . . . Quit",
	}
	for i, line := range controlLines {
		c.writeCentered(centerX, controlsY+1+i, line)
	}
	if c.sound != nil && c.sound.Muted() {
		c.writeCentered(centerX, controlsY, "Controls (sound off)")
	}

	// Blinking start prompt
	if blink() {
		c.writeCentered(centerX, controlsY+len(controlLines)+2, ">>  Press ENTER to Start  <<")
	}
}

// drawPlayingHUD draws the in-game HUD. The score sits where score
// particles land.
func (c *Client) drawPlayingHUD(termWidth, termHeight int, snap loop.Snapshot) {
	cw := c.chunkWriter

	ax, ay := c.game.Anchor()
	col, row := c.canvas.LogicalToTerminal(ax, ay)
	scoreText := fmt.Sprintf("SCORE %d", snap.Score)
	cw.WriteAt(max(1, col-len(scoreText)/2), row, scoreText)
	if snap.PopupAlpha > 0 {
		popup := fmt.Sprintf("+%d", snap.Popup)
		cw.WriteColorAt(max(1, col-len(popup)/2), row+1, draw.Foreground(draw.Fade(hudGreen, snap.PopupAlpha)), popup)
	}

	// Time and high score (top right)
	timeText := fmt.Sprintf("Time: %-3d", snap.TimeLeft)
	cw.WriteAt(termWidth-len(timeText)-1, 1, timeText)
	highText := fmt.Sprintf("High: %-8d", snap.HighScore)
	cw.WriteAt(termWidth-len(highText)-1, 2, highText)

	// Multiplier (top center)
	if snap.Multiplier > 1 {
		mult := fmt.Sprintf("%.1fx", snap.Multiplier)
		alpha := min(1, snap.Multiplier/5)
		cw.WriteColorAt(termWidth/2-len(mult)/2, 3, draw.Foreground(draw.Fade(hudGreen, alpha)), mult)
	}

	// Active power-ups (bottom left)
	line := termHeight - 1
	for _, pt := range snap.Powerups {
		if !pt.Active {
			continue
		}
		props := pt.Kind.Props()
		cw.WriteColorAt(2, line, draw.Foreground(props.Color), powerupBar(props, pt))
		line--
	}

	// Accuracy (bottom left)
	accText := fmt.Sprintf("Accuracy: %3d%%  Hits: %d/%d", snap.Accuracy, snap.Hits, snap.Shots)
	cw.WriteAt(2, termHeight, accText)

	// Live players (bottom right)
	if c.hub != nil {
		playersText := fmt.Sprintf("Players: %-4d", c.hub.Sessions())
		cw.WriteAt(termWidth-len(playersText)-1, termHeight, playersText)
	}
}

func powerupBar(props powerup.Properties, pt loop.PowerupTimer) string {
	const width = 10
	filled := int(pt.Fraction*width + 0.5)
	return fmt.Sprintf("%c %-11s [%s%s] %.1fs", props.Symbol, props.Name,
		strings.Repeat("#", filled), strings.Repeat(" ", width-filled), pt.Remaining.Seconds())
}

// drawPausedScreen draws the pause banner over the frozen game.
func (c *Client) drawPausedScreen(centerX, centerY int) {
	titleArt := []string{
		` ___    _    _   _  ___  ___  ___  `,
		`| _ \  /_\  | | | |/ __|| __||   \ `,
		`|  _/ / _ \ | |_| |\__ \| _| | |) |`,
		`|_|  /_/ \_\ \___/ |___/|___||___/ `,
	}
	c.writeArt(centerX, centerY-4, titleArt)
	c.writeCentered(centerX, centerY+1, "SPACE resume   ENTER restart   M menu")
}

// drawGameOverScreen draws the final stats and the restart prompts.
func (c *Client) drawGameOverScreen(centerX, centerY int, snap loop.Snapshot) {
	titleArt := []string{
		`  ___    _    __  __  ___     ___  __   __ ___  ___ `,
		` / __|  /_\  |  \/  || __|   / _ \ \ \ / /| __|| _ \`,
		`| (_ | / _ \ | |\/| || _|   | (_) | \ V / | _| |   /`,
		` \___|/_/ \_\|_|  |_||___|   \___/   \_/  |___||_|_\`,
	}
	titleStartY := centerY - 7
	c.writeArt(centerX, titleStartY, titleArt)

	y := titleStartY + len(titleArt) + 1
	c.writeCentered(centerX, y, fmt.Sprintf("Score: %d", snap.Score))
	c.writeCentered(centerX, y+1, fmt.Sprintf("Accuracy: %d%%", snap.Accuracy))
	if snap.NewHighScore {
		msg := "NEW HIGH SCORE!"
		if blink() {
			c.chunkWriter.WriteColorAt(centerX-len(msg)/2, y+3, draw.Foreground(hudGold), msg)
		}
	} else {
		c.writeCentered(centerX, y+3, fmt.Sprintf("High score: %d", snap.HighScore))
	}

	c.writeCentered(centerX, y+5, fmt.Sprintf("Difficulty: %s (1 2 3 to change)", snap.Difficulty))
	if snap.RewardPending {
		c.writeCentered(centerX, y+7, "Watching ad... +30s incoming (R to skip after 5s)")
	} else {
		c.writeCentered(centerX, y+7, "R  Watch an ad for +30 seconds")
	}
	c.writeCentered(centerX, y+8, "M  Main menu")

	if blink() {
		c.chunkWriter.WriteColorAt(centerX-14, y+10, draw.Foreground(hudWhite), ">>  Press ENTER to Restart  <<")
	}
}

// drawShutdownScreen draws the server shutdown notification screen.
func (c *Client) drawShutdownScreen(centerX, centerY int) {
	c.writeCentered(centerX, centerY-3, "SERVER SHUTTING DOWN")
	c.writeCentered(centerX, centerY-1, "The server is restarting for maintenance.")
	c.writeCentered(centerX, centerY, "Please reconnect in a moment.")

	remaining := int(c.state.shutdownTimer) + 1
	c.writeCentered(centerX, centerY+2, fmt.Sprintf("Disconnecting in %d seconds...", remaining))
	c.writeCentered(centerX, centerY+4, "Press Q to disconnect now")
}
