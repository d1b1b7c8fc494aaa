// Package voice gives NPC lines an audible babble. Each word becomes a short
// tone whose pitch and pace come from the speaker's profile.
package voice

import (
	"log/slog"
	"strings"
)

// DefaultProfile is used for unknown profile keys.
const DefaultProfile = "villager"

// Profile shapes a speaking voice.
type Profile struct {
	Pitch float64 `yaml:"pitch"`
	Rate  float64 `yaml:"rate"`
}

// DefaultProfiles mirrors the shipped voices.yaml.
func DefaultProfiles() map[string]Profile {
	return map[string]Profile{
		"villager":  {Pitch: 1.0, Rate: 0.9},
		"merchant":  {Pitch: 1.1, Rate: 1.0},
		"guard":     {Pitch: 0.9, Rate: 0.85},
		"assistant": {Pitch: 1.2, Rate: 1.0},
	}
}

// Player is the playback handle returned by a Factory. *audio.Player from
// ebiten satisfies it.
type Player interface {
	Play()
	IsPlaying() bool
	Close() error
}

// Factory turns 16-bit little-endian stereo PCM into a player.
type Factory func(pcm []byte) Player

// Speaker is what the dialogue presenter talks to.
type Speaker interface {
	Speak(text, profile string) bool
}

// Voice plays one line at a time. Lines that arrive while another is still
// playing are dropped.
type Voice struct {
	sampleRate int
	profiles   map[string]Profile
	factory    Factory
	current    Player
}

func New(sampleRate int, profiles map[string]Profile, factory Factory) *Voice {
	v := &Voice{sampleRate: sampleRate, factory: factory}
	v.SetProfiles(profiles)
	return v
}

// SetProfiles swaps the profile table, keeping the defaults for missing keys.
func (v *Voice) SetProfiles(profiles map[string]Profile) {
	merged := DefaultProfiles()
	for name, p := range profiles {
		merged[strings.ToLower(name)] = p
	}
	v.profiles = merged
}

// Profile resolves a key, falling back to DefaultProfile.
func (v *Voice) Profile(key string) Profile {
	if p, ok := v.profiles[strings.ToLower(key)]; ok {
		return p
	}
	return v.profiles[DefaultProfile]
}

// Busy reports whether a line is still playing.
func (v *Voice) Busy() bool {
	return v != nil && v.current != nil && v.current.IsPlaying()
}

// Speak starts text in the given profile. It never blocks and reports
// whether playback started.
func (v *Voice) Speak(text, profile string) bool {
	if v == nil || v.factory == nil || strings.TrimSpace(text) == "" || v.Busy() {
		return false
	}
	pcm := Synthesize(text, v.Profile(profile), v.sampleRate)
	if len(pcm) == 0 {
		return false
	}
	if v.current != nil {
		if err := v.current.Close(); err != nil {
			slog.Debug("voice: close previous player", "error", err)
		}
	}
	v.current = v.factory(pcm)
	if v.current == nil {
		return false
	}
	v.current.Play()
	return true
}
