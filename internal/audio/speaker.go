package audio

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate = beep.SampleRate(44100)
)

// note is one tone of a sound effect.
type note struct {
	freq float64
	dur  time.Duration
}

// effects maps each sound to the tones it is made of.
var effects = map[Sound][]note{
	Startup: {{523.25, 80 * time.Millisecond}, {659.25, 80 * time.Millisecond}, {783.99, 120 * time.Millisecond}},
	Shoot:   {{880, 40 * time.Millisecond}},
	Move:    {{110, 60 * time.Millisecond}},
	Explode: {{196, 50 * time.Millisecond}, {98, 90 * time.Millisecond}},
	Win:     {{523.25, 100 * time.Millisecond}, {659.25, 100 * time.Millisecond}, {783.99, 100 * time.Millisecond}, {1046.5, 250 * time.Millisecond}},
	Lose:    {{392, 150 * time.Millisecond}, {311.13, 150 * time.Millisecond}, {261.63, 300 * time.Millisecond}},
}

// Speaker plays synthesized sound effects through the system audio device.
type Speaker struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
	logger      *log.Logger
}

// NewSpeaker creates a speaker. Call Initialize before playing sounds.
func NewSpeaker(logger *log.Logger) *Speaker {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Speaker{
		mixer:  &beep.Mixer{},
		logger: logger,
	}
}

// Initialize opens the audio device and starts the mixer.
func (s *Speaker) Initialize() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*100)); err != nil {
		return fmt.Errorf("audio: cannot open speaker: %w", err)
	}

	speaker.Play(s.mixer)
	s.initialized = true
	return nil
}

// Play queues a sound effect on the mixer and returns immediately.
// Unknown sounds and calls before Initialize are ignored.
func (s *Speaker) Play(name Sound) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized {
		return
	}

	streamer, err := build(effects[name])
	if err != nil {
		s.logger.Warn("cannot synthesize sound", "sound", name, "error", err)
		return
	}
	if streamer == nil {
		return
	}

	speaker.Lock()
	s.mixer.Add(streamer)
	speaker.Unlock()
}

// Close stops all sounds.
func (s *Speaker) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized {
		return
	}

	speaker.Lock()
	s.mixer.Clear()
	speaker.Unlock()

	// beep has no way to release the device, clearing the mixer silences it
	s.initialized = false
}

// build turns a list of notes into a single streamer, or nil for no notes.
func build(notes []note) (beep.Streamer, error) {
	if len(notes) == 0 {
		return nil, nil
	}

	parts := make([]beep.Streamer, 0, len(notes))
	for _, n := range notes {
		sine, err := generators.SineTone(sampleRate, n.freq)
		if err != nil {
			return nil, err
		}
		parts = append(parts, beep.Take(sampleRate.N(n.dur), sine))
	}
	return beep.Seq(parts...), nil
}
