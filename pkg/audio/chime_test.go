package audio

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestChime() (*Chime, *[]*fakeVoice) {
	voices := &[]*fakeVoice{}
	c := &Chime{play: func() *Player {
		v := &fakeVoice{endless: true}
		*voices = append(*voices, v)
		p := newPlayer()
		go p.play(v)
		return p
	}}
	return c, voices
}

func TestChimeStopsPreviousTone(t *testing.T) {
	c, voices := newTestChime()

	c.Ring()
	c.Ring()

	require.Len(t, *voices, 2)
	_, paused, closed := (*voices)[0].state()
	assert.True(t, paused)
	assert.True(t, closed)
	_, _, closed = (*voices)[1].state()
	assert.False(t, closed)

	c.Close()
}

func TestChimeCloseStopsTone(t *testing.T) {
	c, voices := newTestChime()

	c.Ring()
	c.Close()

	require.Len(t, *voices, 1)
	_, _, closed := (*voices)[0].state()
	assert.True(t, closed)

	c.Ring()
	assert.Len(t, *voices, 1, "no tone after Close")
}

func TestChimeWithoutAudioDevice(t *testing.T) {
	c := &Chime{play: func() *Player { return nil }}

	c.Ring()
	c.Ring()
	c.Close()
}
