package feedback

import (
	"fmt"
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"
	"github.com/phanxgames/areas"
)

// DefaultSampleRate is used when a SoundCue is created with a zero rate.
const DefaultSampleRate beep.SampleRate = 44100

// Player plays a finished streamer.
type Player interface {
	Play(s beep.Streamer)
}

// SpeakerPlayer plays through the system audio device via beep/speaker.
type SpeakerPlayer struct{}

// NewSpeakerPlayer initializes the speaker with a 100ms buffer.
func NewSpeakerPlayer(rate beep.SampleRate) (*SpeakerPlayer, error) {
	if err := speaker.Init(rate, rate.N(100*time.Millisecond)); err != nil {
		return nil, fmt.Errorf("feedback: init speaker: %w", err)
	}
	return &SpeakerPlayer{}, nil
}

// Play queues s on the speaker mixer.
func (SpeakerPlayer) Play(s beep.Streamer) {
	speaker.Play(s)
}

// SoundCue plays a short synthesized cue for each zone event.
type SoundCue struct {
	player Player
	rate   beep.SampleRate
	// Volume is a linear gain; 0 mutes.
	Volume float64
}

// NewSoundCue creates a cue that hands streamers to player.
func NewSoundCue(player Player, rate beep.SampleRate) *SoundCue {
	if rate == 0 {
		rate = DefaultSampleRate
	}
	return &SoundCue{player: player, rate: rate, Volume: 0.6}
}

// Attach subscribes the cue to every event kind on z.
func (c *SoundCue) Attach(z *areas.Zone) []areas.CallbackHandle {
	play := func(ev areas.Event) {
		if s := c.Streamer(ev.Kind); s != nil && c.player != nil {
			c.player.Play(s)
		}
	}
	return []areas.CallbackHandle{
		z.OnIn(play),
		z.OnOut(play),
		z.OnInteract(play),
	}
}

// Streamer builds the cue for kind: a rising pair of notes for in, a
// falling pair for out and a bell for interact.
func (c *SoundCue) Streamer(kind areas.EventKind) beep.Streamer {
	var s beep.Streamer
	switch kind {
	case areas.EventIn:
		s = beep.Seq(
			c.note(523.25, 60*time.Millisecond),
			c.note(783.99, 90*time.Millisecond),
		)
	case areas.EventOut:
		s = beep.Seq(
			c.note(783.99, 60*time.Millisecond),
			c.note(523.25, 90*time.Millisecond),
		)
	case areas.EventInteract:
		d := 250 * time.Millisecond
		s = beep.Mix(
			newVolume(newEnvelope(newOscillator(880, d, c.rate), d, 5*time.Millisecond, 200*time.Millisecond, c.rate), 0.7),
			newVolume(newEnvelope(newOscillator(1760, d, c.rate), d, 5*time.Millisecond, 120*time.Millisecond, c.rate), 0.3),
		)
	default:
		return nil
	}
	return newVolume(s, c.Volume)
}

func (c *SoundCue) note(freq float64, d time.Duration) beep.Streamer {
	return newEnvelope(newOscillator(freq, d, c.rate), d, 5*time.Millisecond, d/2, c.rate)
}

// oscillator generates a sine wave for a fixed number of samples.
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	rate     beep.SampleRate
}

func newOscillator(freq float64, duration time.Duration, rate beep.SampleRate) beep.Streamer {
	return &oscillator{freq: freq, duration: rate.N(duration), rate: rate}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}
		val := math.Sin(2 * math.Pi * o.phase)
		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies linear attack and release to a stream.
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	totalSamples   int
}

func newEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer:       s,
		attackSamples:  rate.N(attack),
		releaseSamples: rate.N(release),
		totalSamples:   rate.N(duration),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)
	releaseStart := e.totalSamples - e.releaseSamples
	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}
		vol := 1.0
		if e.position < e.attackSamples {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		if e.releaseSamples > 0 && e.position >= releaseStart {
			vol = math.Max(0, float64(e.totalSamples-e.position)/float64(e.releaseSamples))
		}
		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume wraps s in a linear gain. math.Log2(0) is -Inf, so zero is silent.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}
