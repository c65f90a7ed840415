package tui

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// Sound plays the cues of a game. Implementations must not block.
type Sound interface {
	LifeLost()
	Won()
	Lost()
}

type Silent struct{}

func (Silent) LifeLost() {}
func (Silent) Won()      {}
func (Silent) Lost()     {}

// Speaker plays cues on the default audio device through a single mixer.
type Speaker struct {
	mixer *beep.Mixer
}

// NewSpeaker initialises the audio device. Callers fall back to [Silent]
// when it fails.
func NewSpeaker() (*Speaker, error) {
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return nil, err
	}
	s := &Speaker{mixer: &beep.Mixer{}}
	speaker.Play(s.mixer)
	return s, nil
}

func (s *Speaker) play(streamer beep.Streamer) {
	speaker.Lock()
	s.mixer.Add(streamer)
	speaker.Unlock()
}

func (s *Speaker) LifeLost() { s.play(buzz(sampleRate, 120, 150*time.Millisecond)) }
func (s *Speaker) Lost()     { s.play(buzz(sampleRate, 70, 400*time.Millisecond)) }
func (s *Speaker) Won()      { s.play(chime(sampleRate, 523.25, 659.25, 783.99, 1046.5)) }

func (s *Speaker) Close() {
	speaker.Lock()
	s.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
}

type buzzGenerator struct {
	sr   beep.SampleRate
	freq float64
	pos  int
}

func (g *buzzGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		sample := 0.3 * math.Sin(2*math.Pi*g.freq*t)
		sample += 0.15 * math.Sin(2*math.Pi*g.freq*2*t)
		sample += 0.075 * math.Sin(2*math.Pi*g.freq*3*t)

		// 20ms fade in
		sample *= math.Min(t/0.02, 1.0) * 0.2

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *buzzGenerator) Err() error {
	return nil
}

func buzz(sr beep.SampleRate, freq float64, d time.Duration) beep.Streamer {
	return beep.Take(sr.N(d), &buzzGenerator{sr: sr, freq: freq})
}

const noteLength = 120 * time.Millisecond

func chime(sr beep.SampleRate, freqs ...float64) beep.Streamer {
	notes := make([]beep.Streamer, 0, len(freqs))
	for _, freq := range freqs {
		tone, err := generators.SineTone(sr, freq)
		if err != nil {
			continue
		}
		quiet := &effects.Volume{Streamer: tone, Base: 2, Volume: -3}
		notes = append(notes, beep.Take(sr.N(noteLength), quiet))
	}
	return beep.Seq(notes...)
}
