// Package draw renders game frames to ANSI terminals using colored half-block
// characters.
package draw

import (
	"fmt"
	"io"
	"strconv"

	"github.com/lucasb-eyer/go-colorful"
)

// Point represents a 2D coordinate.
type Point struct {
	X, Y float64
}

// Block characters for drawing.
const (
	BlockUpperHalf = '▀'
	BlockLowerHalf = '▄'
)

// Background is the color faded entities blend toward.
var Background = colorful.Color{R: 0.04, G: 0.04, B: 0.08}

// Fade blends c toward the background. alpha 1 keeps c, 0 yields the background.
func Fade(c colorful.Color, alpha float64) colorful.Color {
	if alpha >= 1 {
		return c
	}
	if alpha <= 0 {
		return Background
	}
	return Background.BlendRgb(c, alpha).Clamped()
}

// Foreground returns the SGR sequence selecting c as the 24-bit text color.
func Foreground(c colorful.Color) string {
	return string(appendColor(nil, 38, c))
}

// Reset is the SGR sequence restoring default attributes.
const Reset = "\033[0m"

func appendColor(b []byte, code int, c colorful.Color) []byte {
	r, g, bl := c.Clamped().RGB255()
	b = append(b, "\033["...)
	b = strconv.AppendInt(b, int64(code), 10)
	b = append(b, ";2;"...)
	b = strconv.AppendInt(b, int64(r), 10)
	b = append(b, ';')
	b = strconv.AppendInt(b, int64(g), 10)
	b = append(b, ';')
	b = strconv.AppendInt(b, int64(bl), 10)
	return append(b, 'm')
}

// ClearScreen clears the terminal and moves cursor to top-left.
func ClearScreen(w io.Writer) {
	fmt.Fprint(w, "\033[H\033[2J")
}

// HideCursor hides the terminal cursor.
func HideCursor(w io.Writer) {
	fmt.Fprint(w, "\033[?25l")
}

// ShowCursor shows the terminal cursor.
func ShowCursor(w io.Writer) {
	fmt.Fprint(w, "\033[?25h")
}

// EnableMouse turns on button and drag reporting in SGR encoding.
func EnableMouse(w io.Writer) {
	fmt.Fprint(w, "\033[?1000h\033[?1002h\033[?1006h")
}

// DisableMouse undoes EnableMouse.
func DisableMouse(w io.Writer) {
	fmt.Fprint(w, "\033[?1006l\033[?1002l\033[?1000l")
}

// MoveCursor moves cursor to a specific position (1-based).
func MoveCursor(w io.Writer, x, y int) {
	fmt.Fprintf(w, "\033[%d;%dH", y, x)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
