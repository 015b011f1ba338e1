// Package input turns raw terminal bytes into key flags and mouse events.
package input

import (
	"bufio"
)

// Input represents the current frame's input state.
type Input struct {
	Quit   bool
	Pause  bool
	Start  bool
	Menu   bool
	Reward bool
	Mute   bool
	// Number is the last digit pressed this frame, or -1.
	Number  int
	Mouse   []MouseEvent
	Pressed []byte
}

// MouseKind distinguishes SGR mouse reports.
type MouseKind int

const (
	MousePress MouseKind = iota
	MouseDrag
	MouseRelease
)

// MouseEvent is a primary-button report in absolute 1-based terminal cells.
type MouseEvent struct {
	Kind MouseKind
	Col  int
	Row  int
}

// Stream delivers input bytes via a channel.
type Stream struct {
	ch      chan byte
	pending []byte // incomplete escape sequence carried to the next read
	closed  bool
}

// StartStream spawns a goroutine that reads from r and sends bytes to the stream.
func StartStream(r *bufio.Reader) *Stream {
	s := &Stream{
		ch: make(chan byte, 512),
	}
	go func() {
		for {
			b, err := r.ReadByte()
			if err != nil {
				close(s.ch)
				return
			}
			s.ch <- b
		}
	}()
	return s
}

// ReadInput drains all available bytes from the stream (non-blocking).
// An ESC that ended the previous read counts as the Escape key only when
// nothing followed it by this read.
func ReadInput(s *Stream) Input {
	buf := s.pending
	s.pending = nil
	carried := len(buf)

drain:
	for {
		select {
		case b, ok := <-s.ch:
			if !ok {
				s.closed = true
				break drain
			}
			buf = append(buf, b)
		default:
			break drain
		}
	}

	if carried == 1 && len(buf) == 1 && buf[0] == '\x1b' {
		in := Input{Number: -1, Menu: true, Pressed: buf}
		if s.closed {
			in.Quit = true
		}
		return in
	}

	in, rest := Parse(buf)
	if len(rest) > 0 {
		s.pending = append([]byte(nil), rest...)
	}
	if s.closed {
		in.Quit = true
	}
	return in
}

// Parse decodes buf. rest is a trailing escape sequence that may still be
// incomplete and should be prefixed to the next chunk; a lone trailing ESC is
// returned as rest too, since it may start a mouse report.
func Parse(buf []byte) (in Input, rest []byte) {
	in.Number = -1
	in.Pressed = buf

	for i := 0; i < len(buf); i++ {
		b := buf[i]

		if b == '\x1b' && i+1 < len(buf) && buf[i+1] == '[' {
			n, ev, ok, complete := parseCSI(buf[i:])
			if !complete {
				return in, buf[i:]
			}
			if ok {
				in.Mouse = append(in.Mouse, ev)
			}
			i += n - 1
			continue
		}
		if b == '\x1b' && i+1 == len(buf) {
			return in, buf[i:]
		}
		if b == '\x1b' && buf[i+1] == '\x1b' {
			// Escape key right before another sequence.
			in.Menu = true
			continue
		}

		applyByte(&in, b)
	}
	return in, nil
}

// parseCSI consumes one CSI sequence starting at seq[0] == ESC. It returns the
// number of bytes consumed and, for SGR mouse reports of the primary button,
// the decoded event.
func parseCSI(seq []byte) (n int, ev MouseEvent, ok, complete bool) {
	if len(seq) < 3 {
		return 0, ev, false, false
	}
	if seq[2] != '<' {
		// Other CSI sequences (arrows, function keys) end at the first byte in 0x40..0x7e.
		for j := 2; j < len(seq); j++ {
			if seq[j] >= 0x40 && seq[j] <= 0x7e {
				return j + 1, ev, false, true
			}
		}
		return 0, ev, false, false
	}

	var fields [3]int
	field := 0
	for j := 3; j < len(seq); j++ {
		c := seq[j]
		switch {
		case c >= '0' && c <= '9':
			fields[field] = fields[field]*10 + int(c-'0')
		case c == ';':
			field++
			if field > 2 {
				return j + 1, ev, false, true
			}
		case c == 'M' || c == 'm':
			n = j + 1
			if field != 2 {
				return n, ev, false, true
			}
			button := fields[0]
			// Wheel and non-primary buttons are ignored.
			if button&64 != 0 || button&3 != 0 {
				return n, ev, false, true
			}
			ev = MouseEvent{Col: fields[1], Row: fields[2]}
			switch {
			case c == 'm':
				ev.Kind = MouseRelease
			case button&32 != 0:
				ev.Kind = MouseDrag
			default:
				ev.Kind = MousePress
			}
			return n, ev, true, true
		default:
			return j + 1, ev, false, true
		}
	}
	return 0, ev, false, false
}

func applyByte(in *Input, b byte) {
	switch b {
	case 'q', 'Q', '\x03':
		in.Quit = true
	case 'p', 'P', ' ':
		in.Pause = true
	case '\n', '\r', 's', 'S':
		in.Start = true
	case 'm', 'M':
		in.Menu = true
	case 'r', 'R':
		in.Reward = true
	case 'v', 'V':
		in.Mute = true
	case '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
		in.Number = int(b - '0')
	}
}
