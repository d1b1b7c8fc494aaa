package assets

import (
	"sync"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/milk9111/furi/voice"
)

// SampleRate is the rate every synthesized sound is rendered at.
const SampleRate = 44100

var (
	audioOnce    sync.Once
	audioContext *audio.Context
)

// AudioContext returns the process-wide audio context. ebiten allows only one,
// so it is created on first use.
func AudioContext() *audio.Context {
	audioOnce.Do(func() {
		audioContext = audio.NewContext(SampleRate)
	})
	return audioContext
}

// VoiceFactory plays synthesized PCM through ctx.
func VoiceFactory(ctx *audio.Context) voice.Factory {
	return func(pcm []byte) voice.Player {
		if ctx == nil {
			return nil
		}
		return ctx.NewPlayerFromBytes(pcm)
	}
}
