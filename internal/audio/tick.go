// Package audio plays a short tick whenever the obstacle bounces.
package audio

import (
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate = beep.SampleRate(44100)

	tickFreq     = 880
	tickDuration = 30 * time.Millisecond
	tickVolume   = 0.25
)

// Ticker plays a tick on every bounce. The zero value is silent until
// Initialize succeeds.
type Ticker struct {
	mu          sync.Mutex
	initialized bool
}

// NewTicker creates a ticker
func NewTicker() *Ticker {
	return &Ticker{}
}

// Initialize opens the audio device
func (t *Ticker) Initialize() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return fmt.Errorf("failed to initialize speaker: %w", err)
	}
	t.initialized = true
	return nil
}

// OnBounce plays one tick
func (t *Ticker) OnBounce() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.initialized {
		return
	}
	tick, err := NewTick(sampleRate)
	if err != nil {
		log.Printf("Failed to build bounce tick: %v", err)
		return
	}
	speaker.Play(tick)
}

// Close stops playback and releases the audio device
func (t *Ticker) Close() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.initialized {
		return
	}
	speaker.Clear()
	speaker.Close()
	t.initialized = false
}

// NewTick builds the tick sound: a short, quiet sine burst.
func NewTick(sr beep.SampleRate) (beep.Streamer, error) {
	sine, err := generators.SineTone(sr, tickFreq)
	if err != nil {
		return nil, err
	}
	// Gain scales samples by 1+Gain
	return &effects.Gain{Streamer: beep.Take(sr.N(tickDuration), sine), Gain: tickVolume - 1}, nil
}
