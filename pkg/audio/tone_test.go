package audio

import (
	"encoding/binary"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToneParsesAsPCM(t *testing.T) {
	wav := Tone(440, 100*time.Millisecond, 8000)

	format, data, err := parseWAV(wav)
	require.NoError(t, err)

	assert.Equal(t, 8000, format.SampleRate)
	assert.Equal(t, 1, format.Channels)
	assert.Equal(t, 16, format.BitDepth)
	assert.Len(t, data, 800*2)
}

func TestToneFadesOut(t *testing.T) {
	_, data, err := parseWAV(Tone(440, 100*time.Millisecond, 8000))
	require.NoError(t, err)

	last := int16(binary.LittleEndian.Uint16(data[len(data)-2:]))
	assert.InDelta(t, 0, last, 200)
}

func TestParseWAVSkipsUnknownChunks(t *testing.T) {
	tone := Tone(440, 10*time.Millisecond, 8000)

	// Insert a LIST chunk between the RIFF header and fmt
	list := []byte{'L', 'I', 'S', 'T', 4, 0, 0, 0, 'a', 'b', 'c', 'd'}
	wav := append(append(append([]byte{}, tone[:12]...), list...), tone[12:]...)

	format, data, err := parseWAV(wav)
	require.NoError(t, err)
	assert.Equal(t, 8000, format.SampleRate)
	assert.Len(t, data, 80*2)
}

func TestParseWAVRejectsGarbage(t *testing.T) {
	_, _, err := parseWAV([]byte("not a wav file at all"))
	assert.Error(t, err)

	_, _, err = parseWAV(nil)
	assert.Error(t, err)
}

func TestNilPlayerIsSafe(t *testing.T) {
	var p *Player
	p.Stop()
	p.Wait()
}
