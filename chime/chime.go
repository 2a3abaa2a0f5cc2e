// Package chime plays the short fanfare of a solved maze.
package chime

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"
	log "github.com/sirupsen/logrus"
)

const SampleRate = beep.SampleRate(44100)

// tone is a sine note with a linear fade out over its last quarter.
type tone struct {
	freq     float64
	phase    float64
	position int
	duration int
	rate     beep.SampleRate
}

func NewTone(freq float64, duration time.Duration, rate beep.SampleRate) beep.Streamer {
	return &tone{freq: freq, duration: rate.N(duration), rate: rate}
}

func (t *tone) Stream(samples [][2]float64) (n int, ok bool) {
	release := t.duration / 4
	for i := range samples {
		if t.position >= t.duration {
			return i, i > 0
		}
		vol := 1.0
		if left := t.duration - t.position; release > 0 && left < release {
			vol = float64(left) / float64(release)
		}
		val := math.Sin(2*math.Pi*t.phase) * vol
		samples[i][0] = val
		samples[i][1] = val

		t.phase += t.freq / float64(t.rate)
		t.phase -= math.Floor(t.phase)
		t.position++
	}
	return len(samples), true
}

func (t *tone) Err() error { return nil }

// Note is one step of a melody.
type Note struct {
	Freq     float64
	Duration time.Duration
}

// Win is a rising major arpeggio.
var Win = []Note{
	{523.25, 90 * time.Millisecond},
	{659.25, 90 * time.Millisecond},
	{783.99, 90 * time.Millisecond},
	{1046.50, 260 * time.Millisecond},
}

// Melody strings the notes together at the given volume in [0,1].
func Melody(notes []Note, volume float64, rate beep.SampleRate) beep.Streamer {
	streamers := make([]beep.Streamer, 0, len(notes))
	for _, n := range notes {
		streamers = append(streamers, NewTone(n.Freq, n.Duration, rate))
	}
	seq := beep.Seq(streamers...)
	if volume <= 0 {
		return &effects.Volume{Streamer: seq, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: seq, Base: 2, Volume: math.Log2(volume)}
}

// Samples is how long a melody plays at rate.
func Samples(notes []Note, rate beep.SampleRate) int {
	total := 0
	for _, n := range notes {
		total += rate.N(n.Duration)
	}
	return total
}

// Player owns the speaker. Without a sound device it stays silent.
type Player struct {
	mu      sync.Mutex
	mixer   *beep.Mixer
	ready   bool
	Volume  float64
	started bool
}

func NewPlayer() *Player {
	return &Player{mixer: &beep.Mixer{}, Volume: 0.5}
}

func (p *Player) init() {
	if p.started {
		return
	}
	p.started = true
	if err := speaker.Init(SampleRate, SampleRate.N(100*time.Millisecond)); err != nil {
		log.Warnf("chime: no sound %v", err)
		return
	}
	speaker.Play(p.mixer)
	p.ready = true
}

func (p *Player) PlayWin() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.init()
	if !p.ready {
		return
	}
	speaker.Lock()
	p.mixer.Add(Melody(Win, p.Volume, SampleRate))
	speaker.Unlock()
}

func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.ready {
		speaker.Clear()
		p.ready = false
	}
}
