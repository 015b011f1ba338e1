package draw

import (
	"bytes"
	"math"
	"strings"
	"testing"

	"github.com/lucasb-eyer/go-colorful"
)

var red = colorful.Color{R: 1}

func TestSetRendersTruecolorHalfBlock(t *testing.T) {
	c := unitCanvas(4, 2)
	c.Set(1, 1, red)

	var buf bytes.Buffer
	c.Render(&buf)
	out := buf.String()

	if !strings.Contains(out, "\033[1;2H") {
		t.Errorf("render missing cursor move to row 1 col 2: %q", out)
	}
	if !strings.Contains(out, "\033[38;2;255;0;0m") {
		t.Errorf("render missing red foreground: %q", out)
	}
	if !strings.ContainsRune(out, BlockLowerHalf) {
		t.Errorf("odd sub-pixel should render as lower half block: %q", out)
	}
}

func TestRenderBothHalves(t *testing.T) {
	c := unitCanvas(1, 1)
	blue := colorful.Color{B: 1}
	c.Set(0, 0, red)
	c.Set(0, 1, blue)

	var buf bytes.Buffer
	c.Render(&buf)
	out := buf.String()
	if !strings.Contains(out, "\033[48;2;0;0;255m") {
		t.Errorf("bottom pixel should become the background color: %q", out)
	}
	if !strings.ContainsRune(out, BlockUpperHalf) {
		t.Errorf("expected upper half block: %q", out)
	}
}

func TestClearEmptiesRender(t *testing.T) {
	c := unitCanvas(3, 3)
	c.DrawLine(Point{0, 0}, Point{2, 5}, red)
	c.Clear()
	var buf bytes.Buffer
	c.Render(&buf)
	if buf.Len() != 0 {
		t.Errorf("cleared canvas rendered %d bytes", buf.Len())
	}
}

func TestOutOfBoundsIgnored(t *testing.T) {
	c := unitCanvas(2, 2)
	c.Set(-5, 1, red)
	c.Set(1, 99, red)
	c.DrawCircle(-100, -100, 5, 0, red, true)
	var buf bytes.Buffer
	c.Render(&buf)
	if buf.Len() != 0 {
		t.Errorf("off-canvas drawing produced output: %q", buf.String())
	}
}

func TestTerminalToLogical(t *testing.T) {
	c := NewScaledCanvas(80, 24, 800, 600)
	x, y, ok := c.TerminalToLogical(41, 13)
	if !ok {
		t.Fatal("cell inside the canvas reported outside")
	}
	if math.Abs(x-405) > 1e-9 || math.Abs(y-312.5) > 1e-9 {
		t.Errorf("TerminalToLogical(41, 13) = (%f, %f), want (405, 312.5)", x, y)
	}

	c.SetOffset(10, 2)
	if _, _, ok := c.TerminalToLogical(5, 5); ok {
		t.Error("cell left of the offset canvas reported inside")
	}
	x, _, ok = c.TerminalToLogical(11, 3)
	if !ok || math.Abs(x-5) > 1e-9 {
		t.Errorf("first canvas cell maps to x = %f ok = %v, want 5 true", x, ok)
	}
}

func TestLogicalRoundTrip(t *testing.T) {
	c := NewScaledCanvas(100, 40, 800, 600)
	for _, p := range []Point{{0, 0}, {400, 300}, {790, 590}, {123, 456}} {
		col, row := c.LogicalToTerminal(p.X, p.Y)
		x, y, ok := c.TerminalToLogical(col, row)
		if !ok {
			t.Errorf("%v mapped outside the canvas", p)
			continue
		}
		if math.Abs(x-p.X) > 8 || math.Abs(y-p.Y) > 15 {
			t.Errorf("%v round-tripped to (%f, %f)", p, x, y)
		}
	}
}

func TestFade(t *testing.T) {
	if got := Fade(red, 1); got != red {
		t.Errorf("Fade(c, 1) = %v, want c", got)
	}
	if got := Fade(red, 0); got != Background {
		t.Errorf("Fade(c, 0) = %v, want background", got)
	}
	half := Fade(red, 0.5)
	if half.R <= Background.R || half.R >= red.R {
		t.Errorf("Fade(c, 0.5).R = %f, want between background and c", half.R)
	}
}

// unitCanvas maps one logical unit to one sub-pixel.
func unitCanvas(width, height int) *Canvas {
	return NewScaledCanvas(width, height, float64(width), float64(height*2))
}
