// player.go - real-time PCM playback adapter over the SP0256 voice chip,
// using oto the same way the teacher's audio_backend_oto.go does: an
// io.Reader pulling samples, wrapped by a single mutex guarding the whole
// struct rather than finer-grained locking.

package main

import (
	"sync"

	"github.com/ebitengine/oto/v3"
	"github.com/vox256/cts256voice"
)

const sampleRate = 8000

// VoicePlayer drains a board's SP0256 chip into an oto.Player. It is the
// only goroutine boundary in this program: Board/Sp0256Chip themselves stay
// single-threaded, and the oto callback only ever calls NextSample.
type VoicePlayer struct {
	mutex sync.Mutex
	voice *cts256.Sp0256Chip
	ctx   *oto.Context
	p     *oto.Player
}

// NewVoicePlayer opens an oto output context at the SP0256's native 8kHz
// rate and wraps it around voice.
func NewVoicePlayer(voice *cts256.Sp0256Chip) (*VoicePlayer, error) {
	ctx, ready, err := oto.NewContext(&oto.NewContextOptions{
		SampleRate:   sampleRate,
		ChannelCount: 1,
		Format:       oto.FormatSignedInt16LE,
		BufferSize:   0,
	})
	if err != nil {
		return nil, err
	}
	<-ready

	vp := &VoicePlayer{voice: voice, ctx: ctx}
	vp.p = ctx.NewPlayer(vp)
	return vp, nil
}

// Start begins streaming audio.
func (vp *VoicePlayer) Start() {
	vp.mutex.Lock()
	defer vp.mutex.Unlock()
	vp.p.Play()
}

// Close stops playback and releases the oto player.
func (vp *VoicePlayer) Close() {
	vp.mutex.Lock()
	defer vp.mutex.Unlock()
	vp.p.Close()
}

// StepBoard advances b by one CPU instruction under the same mutex that
// guards sample pulls, since both paths mutate the shared SP0256 chip and
// its filter-bank invariants forbid finer-grained locking.
func (vp *VoicePlayer) StepBoard(b *cts256.Board) cts256.StepResult {
	vp.mutex.Lock()
	defer vp.mutex.Unlock()
	return b.Step()
}

// Read implements io.Reader for oto: it pulls 16-bit little-endian samples
// from the SP0256 chip, one at a time, to fill p.
func (vp *VoicePlayer) Read(p []byte) (int, error) {
	vp.mutex.Lock()
	defer vp.mutex.Unlock()

	n := len(p) / 2
	for i := 0; i < n; i++ {
		s := vp.voice.NextSample()
		p[2*i] = byte(s)
		p[2*i+1] = byte(s >> 8)
	}
	return n * 2, nil
}
