package audio

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"log"
	"sync"
	"time"

	"github.com/ebitengine/oto/v3"
)

// Global audio context singleton
var (
	globalAudioCtx     *oto.Context
	globalAudioCtxOnce sync.Once
	audioCtxReady      bool
)

// voice is the part of *oto.Player a Player drives
type voice interface {
	Play()
	Pause()
	IsPlaying() bool
	Close() error
}

// Player plays a sound once and can be stopped early
type Player struct {
	stopChan chan struct{}
	done     chan struct{}
	player   voice
	stopped  bool
	mu       sync.Mutex
}

func newPlayer() *Player {
	return &Player{
		stopChan: make(chan struct{}),
		done:     make(chan struct{}),
	}
}

// wavFormat holds WAV file format information
type wavFormat struct {
	SampleRate int
	Channels   int
	BitDepth   int
}

// initAudioContext initializes the global audio context once
func initAudioContext(format *wavFormat) {
	globalAudioCtxOnce.Do(func() {
		op := &oto.NewContextOptions{
			SampleRate:   format.SampleRate,
			ChannelCount: format.Channels,
			Format:       oto.FormatSignedInt16LE,
		}

		ctx, readyChan, err := oto.NewContext(op)
		if err != nil {
			log.Printf("Failed to initialize audio context: %v", err)
			return
		}

		// Wait for the hardware audio devices to be ready
		<-readyChan

		globalAudioCtx = ctx
		audioCtxReady = true
		log.Println("Audio context initialized successfully")
	})
}

// PlayChime plays the default add-event tone
func PlayChime() *Player {
	return Play(Tone(880, 180*time.Millisecond, 44100))
}

// Play plays WAV data once in the background and returns a Player for control
func Play(wavData []byte) *Player {
	format, audioData, err := parseWAV(wavData)
	if err != nil {
		log.Printf("Failed to parse WAV data: %v", err)
		return nil
	}

	initAudioContext(format)

	if !audioCtxReady || globalAudioCtx == nil {
		log.Printf("Audio context not ready")
		return nil
	}

	p := newPlayer()
	go p.play(globalAudioCtx.NewPlayer(bytes.NewReader(audioData)))

	return p
}

func (p *Player) play(player voice) {
	defer close(p.done)

	p.mu.Lock()
	p.player = player
	stopped := p.stopped
	p.mu.Unlock()

	if stopped {
		player.Close()
		return
	}
	player.Play()

	for player.IsPlaying() {
		select {
		case <-p.stopChan:
			player.Pause()
			player.Close()
			return
		case <-time.After(10 * time.Millisecond):
		}
	}

	if err := player.Close(); err != nil {
		log.Printf("Failed to close audio player: %v", err)
	}
}

// Stop stops playback
func (p *Player) Stop() {
	if p == nil {
		return
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.stopped {
		p.stopped = true
		close(p.stopChan)
		if p.player != nil {
			p.player.Pause()
		}
	}
}

// Wait blocks until playback has finished or was stopped
func (p *Player) Wait() {
	if p == nil {
		return
	}
	<-p.done
}

// parseWAV parses a PCM WAV file and returns the format and audio data
func parseWAV(data []byte) (*wavFormat, []byte, error) {
	reader := bytes.NewReader(data)

	var header [12]byte
	if _, err := io.ReadFull(reader, header[:]); err != nil {
		return nil, nil, fmt.Errorf("read RIFF header: %w", err)
	}
	if string(header[0:4]) != "RIFF" || string(header[8:12]) != "WAVE" {
		return nil, nil, errors.New("not a RIFF/WAVE file")
	}

	var format *wavFormat

	for {
		var chunkID [4]byte
		if _, err := io.ReadFull(reader, chunkID[:]); err != nil {
			return nil, nil, fmt.Errorf("data chunk not found: %w", err)
		}

		var chunkSize uint32
		if err := binary.Read(reader, binary.LittleEndian, &chunkSize); err != nil {
			return nil, nil, fmt.Errorf("read chunk size: %w", err)
		}

		switch string(chunkID[:]) {
		case "fmt ":
			var fmtChunk struct {
				AudioFormat   uint16
				Channels      uint16
				SampleRate    uint32
				ByteRate      uint32
				BlockAlign    uint16
				BitsPerSample uint16
			}
			if err := binary.Read(reader, binary.LittleEndian, &fmtChunk); err != nil {
				return nil, nil, fmt.Errorf("read fmt chunk: %w", err)
			}
			format = &wavFormat{
				SampleRate: int(fmtChunk.SampleRate),
				Channels:   int(fmtChunk.Channels),
				BitDepth:   int(fmtChunk.BitsPerSample),
			}
			// Skip any extra format bytes
			if extra := int64(chunkSize) - 16; extra > 0 {
				reader.Seek(extra, io.SeekCurrent)
			}
		case "data":
			if format == nil {
				return nil, nil, errors.New("data chunk before fmt chunk")
			}
			audioData := make([]byte, chunkSize)
			if _, err := io.ReadFull(reader, audioData); err != nil {
				return nil, nil, fmt.Errorf("read data chunk: %w", err)
			}
			return format, audioData, nil
		default:
			// Skip unknown chunk
			reader.Seek(int64(chunkSize), io.SeekCurrent)
		}
	}
}
