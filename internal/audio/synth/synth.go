// Package synth renders audio cues through the system speaker using beep.
package synth

import (
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"

	"github.com/tomz197/target-blaster/internal/audio"
)

// DefaultSampleRate is used when Options leaves SampleRate zero.
const DefaultSampleRate = beep.SampleRate(44100)

// Options configures a Player.
type Options struct {
	SampleRate beep.SampleRate
	// Volume is a linear gain in [0, 1].
	Volume float64
	// Simple replaces every voice with a decaying sine beep at the cue's pitch.
	Simple bool
	// Latency is the speaker buffer length.
	Latency time.Duration
}

// Player mixes cues into a single speaker stream.
type Player struct {
	mu          sync.Mutex
	opts        Options
	mixer       *beep.Mixer
	initialized bool
}

func New(opts Options) *Player {
	if opts.SampleRate == 0 {
		opts.SampleRate = DefaultSampleRate
	}
	if opts.Latency == 0 {
		opts.Latency = 100 * time.Millisecond
	}
	opts.Volume = math.Max(0, math.Min(1, opts.Volume))
	return &Player{opts: opts, mixer: &beep.Mixer{}}
}

// Init opens the speaker. Play is a no-op until Init succeeds.
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.initialized {
		return nil
	}
	sr := p.opts.SampleRate
	if err := speaker.Init(sr, sr.N(p.opts.Latency)); err != nil {
		return fmt.Errorf("init speaker: %w", err)
	}
	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// Play queues c on the mixer without blocking.
func (p *Player) Play(c audio.Cue) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.initialized {
		return
	}
	s, err := p.Streamer(c)
	if err != nil {
		return
	}
	speaker.Lock()
	p.mixer.Add(s)
	speaker.Unlock()
}

// Close silences everything and releases the speaker.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.initialized {
		return
	}
	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	p.initialized = false
}

// Streamer builds the finite stream for c at the configured rate and volume.
func (p *Player) Streamer(c audio.Cue) (beep.Streamer, error) {
	v := c.Voice()
	if v.Wave == nil {
		return nil, fmt.Errorf("no voice for cue %d", c)
	}
	sr := p.opts.SampleRate

	var s beep.Streamer
	if p.opts.Simple {
		tone, err := generators.SineTone(sr, v.Freq)
		if err != nil {
			return nil, fmt.Errorf("sine tone for %s: %w", c, err)
		}
		s = &decay{Streamer: beep.Take(sr.N(v.Duration), tone), rate: sr, gain: 0.3, k: 5}
	} else {
		s = newVoice(v, sr)
	}
	return volume(s, p.opts.Volume), nil
}

// voice samples an audio.Voice waveform.
type voice struct {
	wave     func(t float64) float64
	rate     beep.SampleRate
	position int
	total    int
}

func newVoice(v audio.Voice, sr beep.SampleRate) *voice {
	return &voice{wave: v.Wave, rate: sr, total: sr.N(v.Duration)}
}

func (v *voice) Stream(samples [][2]float64) (n int, ok bool) {
	if v.position >= v.total {
		return 0, false
	}
	for i := range samples {
		if v.position >= v.total {
			return i, true
		}
		val := v.wave(float64(v.position) / float64(v.rate))
		samples[i][0] = val
		samples[i][1] = val
		v.position++
	}
	return len(samples), true
}

func (v *voice) Err() error { return nil }

// decay applies gain·exp(-k·t) to the wrapped stream.
type decay struct {
	beep.Streamer
	rate     beep.SampleRate
	gain     float64
	k        float64
	position int
}

func (d *decay) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = d.Streamer.Stream(samples)
	for i := 0; i < n; i++ {
		env := d.gain * math.Exp(-d.k*float64(d.position)/float64(d.rate))
		samples[i][0] *= env
		samples[i][1] *= env
		d.position++
	}
	return n, ok
}

func volume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}
