package voice

import (
	"encoding/binary"
	"math"
	"strings"
	"unicode"
)

const (
	baseFrequency   = 180.0
	syllableSeconds = 0.085
	gapSeconds      = 0.035
	maxSyllables    = 48
	amplitude       = 0.22
)

// Synthesize renders text as 16-bit little-endian stereo PCM. Each word is
// one tone; its first letter nudges the pitch so sentences get a contour.
func Synthesize(text string, p Profile, sampleRate int) []byte {
	if sampleRate <= 0 {
		return nil
	}
	pitch := p.Pitch
	if pitch <= 0 {
		pitch = 1
	}
	rate := p.Rate
	if rate <= 0 {
		rate = 1
	}
	words := strings.FieldsFunc(text, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	if len(words) > maxSyllables {
		words = words[:maxSyllables]
	}
	if len(words) == 0 {
		return nil
	}

	tone := int(float64(sampleRate) * syllableSeconds / rate)
	gap := int(float64(sampleRate) * gapSeconds / rate)
	buf := make([]byte, 0, len(words)*(tone+gap)*4)

	for _, word := range words {
		freq := baseFrequency * pitch * (1 + 0.06*float64(unicode.ToLower([]rune(word)[0])%5))
		for i := 0; i < tone; i++ {
			t := float64(i) / float64(sampleRate)
			env := math.Sin(math.Pi * float64(i) / float64(tone))
			s := amplitude * env * math.Sin(2*math.Pi*freq*t)
			buf = appendSample(buf, s)
		}
		for i := 0; i < gap; i++ {
			buf = appendSample(buf, 0)
		}
	}
	return buf
}

func appendSample(buf []byte, s float64) []byte {
	v := int16(math.Max(-1, math.Min(1, s)) * math.MaxInt16)
	buf = binary.LittleEndian.AppendUint16(buf, uint16(v))
	return binary.LittleEndian.AppendUint16(buf, uint16(v))
}
