package mpd

import "time"

// Playback control. Each method sends one command and drains its reply.

// Play starts playback at the given queue position, or resumes where the
// player stopped if pos is negative.
func (c *Client) Play(pos int) error {
	if pos < 0 {
		return c.run(Cmd("play"))
	}

	return c.run(Cmd("play", pos))
}

// PlayID starts playback of the song with the given queue id.
func (c *Client) PlayID(id int) error {
	return c.run(Cmd("playid", id))
}

// Pause pauses (true) or resumes (false) playback.
func (c *Client) Pause(pause bool) error {
	return c.run(Cmd("pause", pause))
}

// Stop stops playback.
func (c *Client) Stop() error {
	return c.run(Cmd("stop"))
}

// Next plays the next song in the queue.
func (c *Client) Next() error {
	return c.run(Cmd("next"))
}

// Previous plays the previous song in the queue.
func (c *Client) Previous() error {
	return c.run(Cmd("previous"))
}

// SeekID seeks within the song with the given queue id.
func (c *Client) SeekID(id int, offset time.Duration) error {
	return c.run(Cmd("seekid", id, offset.Seconds()))
}

// SetVolume sets the mixer volume, 0 to 100.
func (c *Client) SetVolume(volume int) error {
	return c.run(Cmd("setvol", volume))
}

// Repeat toggles repeat mode.
func (c *Client) Repeat(on bool) error {
	return c.run(Cmd("repeat", on))
}

// Random toggles random mode.
func (c *Client) Random(on bool) error {
	return c.run(Cmd("random", on))
}

// Single toggles single mode.
func (c *Client) Single(on bool) error {
	return c.run(Cmd("single", on))
}

// Consume toggles consume mode.
func (c *Client) Consume(on bool) error {
	return c.run(Cmd("consume", on))
}
