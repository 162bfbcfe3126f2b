package audio

import (
	"bytes"
	"encoding/binary"
	"math"
	"time"
)

// Tone renders a mono 16-bit sine wave as a WAV file. The last 20% fades
// out linearly so the chime does not click.
func Tone(freqHz float64, d time.Duration, sampleRate int) []byte {
	samples := int(int64(d) * int64(sampleRate) / int64(time.Second))
	dataSize := samples * 2

	var buf bytes.Buffer
	buf.Grow(44 + dataSize)

	buf.WriteString("RIFF")
	binary.Write(&buf, binary.LittleEndian, uint32(36+dataSize))
	buf.WriteString("WAVE")

	buf.WriteString("fmt ")
	binary.Write(&buf, binary.LittleEndian, uint32(16))
	binary.Write(&buf, binary.LittleEndian, uint16(1)) // PCM
	binary.Write(&buf, binary.LittleEndian, uint16(1)) // mono
	binary.Write(&buf, binary.LittleEndian, uint32(sampleRate))
	binary.Write(&buf, binary.LittleEndian, uint32(sampleRate*2))
	binary.Write(&buf, binary.LittleEndian, uint16(2))
	binary.Write(&buf, binary.LittleEndian, uint16(16))

	buf.WriteString("data")
	binary.Write(&buf, binary.LittleEndian, uint32(dataSize))

	fadeFrom := samples * 8 / 10
	for i := 0; i < samples; i++ {
		amp := 0.3
		if i >= fadeFrom && samples > fadeFrom {
			amp *= float64(samples-i) / float64(samples-fadeFrom)
		}
		v := amp * math.Sin(2*math.Pi*freqHz*float64(i)/float64(sampleRate))
		binary.Write(&buf, binary.LittleEndian, int16(v*math.MaxInt16))
	}

	return buf.Bytes()
}
