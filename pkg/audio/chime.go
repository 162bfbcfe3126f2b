package audio

import "sync"

// Chime plays the add-event tone, cutting off the previous one if it is
// still ringing
type Chime struct {
	mu      sync.Mutex
	play    func() *Player
	current *Player
	closed  bool
}

// NewChime returns a Chime that plays PlayChime
func NewChime() *Chime {
	return &Chime{play: PlayChime}
}

// Ring stops the previous tone and starts a new one. It does nothing after Close.
func (c *Chime) Ring() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return
	}
	c.current.Stop()
	c.current.Wait()
	c.current = c.play()
}

// Close stops the tone that is playing and waits for the device to be released
func (c *Chime) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.closed = true
	c.current.Stop()
	c.current.Wait()
	c.current = nil
}
