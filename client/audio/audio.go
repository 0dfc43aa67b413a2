package audio

import (
	"io"
	"math"
	"time"

	"github.com/hajimehoshi/oto/v2"
)

const (
	sampleRate   = 44100
	channelCount = 2
	bitDepth     = 0 // 32-bit float (oto.FormatFloat32LE)
)

// SoundKind identifies the sound effects the game makes.
type SoundKind int

const (
	SoundMenuSelect SoundKind = iota
	SoundEat
	SoundPause
	SoundGameOver
	SoundWin
)

// system manages playback of procedurally generated effects.
type system struct {
	ctx   *oto.Context
	ready chan struct{}
}

var globalAudio *system

// Init initializes the audio device. The game keeps working without sound
// when this fails; callers log the error and continue.
func Init() error {
	ctx, ready, err := oto.NewContext(sampleRate, channelCount, bitDepth)
	if err != nil {
		return err
	}
	globalAudio = &system{ctx: ctx, ready: ready}
	return nil
}

// Play generates and plays one sound effect. Playback is asynchronous and
// silently skipped while the device is still warming up or uninitialized.
func Play(kind SoundKind) {
	if globalAudio == nil {
		return
	}
	select {
	case <-globalAudio.ready:
	default:
		return
	}
	samples := generate(kind)
	if len(samples) == 0 {
		return
	}
	go func() {
		player := globalAudio.ctx.NewPlayer(&soundReader{data: samples})
		player.Play()
		for player.IsPlaying() {
			time.Sleep(10 * time.Millisecond)
		}
		player.Close()
	}()
}

type soundReader struct {
	data []byte
	pos  int
}

func (r *soundReader) Read(p []byte) (int, error) {
	if r.pos >= len(r.data) {
		return 0, io.EOF
	}
	n := copy(p, r.data[r.pos:])
	r.pos += n
	return n, nil
}

// putStereoF32 writes a [-1,1] sample as float32 LE to both channels at frame i.
func putStereoF32(buf []byte, i int, sample float64) {
	v := math.Float32bits(float32(sample))
	buf[i*8] = byte(v)
	buf[i*8+1] = byte(v >> 8)
	buf[i*8+2] = byte(v >> 16)
	buf[i*8+3] = byte(v >> 24)
	buf[i*8+4] = byte(v)
	buf[i*8+5] = byte(v >> 8)
	buf[i*8+6] = byte(v >> 16)
	buf[i*8+7] = byte(v >> 24)
}

func generate(kind SoundKind) []byte {
	switch kind {
	case SoundMenuSelect:
		return genTone(880, 0.06, 0.25)
	case SoundEat:
		return genSweep(660, 990, 0.09, 0.3)
	case SoundPause:
		return genTone(440, 0.07, 0.2)
	case SoundGameOver:
		return genSweep(330, 110, 0.45, 0.35)
	case SoundWin:
		return genArpeggio([]float64{523.25, 659.25, 783.99, 1046.5}, 0.10, 0.3)
	}
	return nil
}

// genTone renders a single sine tone with an exponential decay envelope.
func genTone(freq, dur, gain float64) []byte {
	frames := int(dur * sampleRate)
	buf := make([]byte, frames*8)
	for i := 0; i < frames; i++ {
		t := float64(i) / sampleRate
		env := math.Exp(-5 * t / dur)
		putStereoF32(buf, i, gain*env*math.Sin(2*math.Pi*freq*t))
	}
	return buf
}

// genSweep renders a tone whose pitch glides linearly from f0 to f1.
func genSweep(f0, f1, dur, gain float64) []byte {
	frames := int(dur * sampleRate)
	buf := make([]byte, frames*8)
	phase := 0.0
	for i := 0; i < frames; i++ {
		t := float64(i) / sampleRate
		freq := f0 + (f1-f0)*t/dur
		phase += 2 * math.Pi * freq / sampleRate
		env := math.Exp(-4 * t / dur)
		putStereoF32(buf, i, gain*env*math.Sin(phase))
	}
	return buf
}

// genArpeggio renders notes back to back, each with its own short envelope.
func genArpeggio(freqs []float64, noteDur, gain float64) []byte {
	noteFrames := int(noteDur * sampleRate)
	buf := make([]byte, len(freqs)*noteFrames*8)
	for n, freq := range freqs {
		for i := 0; i < noteFrames; i++ {
			t := float64(i) / sampleRate
			env := math.Exp(-4 * t / noteDur)
			putStereoF32(buf, n*noteFrames+i, gain*env*math.Sin(2*math.Pi*freq*t))
		}
	}
	return buf
}
