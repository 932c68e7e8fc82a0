package mpd

import "time"

// PlayState is the player state reported by the status command.
type PlayState string

const (
	StatePlay  PlayState = "play"
	StatePause PlayState = "pause"
	StateStop  PlayState = "stop"
)

// Status holds the player and queue state, as returned by Status.
type Status struct {
	// Volume is the mixer volume in percent, or -1 if there is no mixer.
	Volume int
	// Repeat, Random, Single and Consume are the playback option toggles.
	Repeat  bool
	Random  bool
	Single  bool
	Consume bool
	// Playlist is the queue version number; it changes on every queue edit.
	Playlist int
	// PlaylistLength is the number of songs in the queue.
	PlaylistLength int
	// State is the player state.
	State PlayState
	// Song and SongID identify the current song by queue position and id.
	Song   int
	SongID int
	// NextSong and NextSongID identify the song that plays next.
	NextSong   int
	NextSongID int
	// Elapsed and Duration are the position within and length of the
	// current song.
	Elapsed  time.Duration
	Duration time.Duration
	// Bitrate is the instantaneous bitrate in kbps.
	Bitrate int
	// Audio is the decoded audio format (samplerate:bits:channels).
	Audio string
	// Updating is the job id of a running database update, zero if none.
	Updating int
	// Error is the current player error message, empty if none.
	Error string
}

// Stats holds the server statistics, as returned by Stats.
type Stats struct {
	Artists    int
	Albums     int
	Songs      int
	Uptime     time.Duration
	Playtime   time.Duration
	DBPlaytime time.Duration
	DBUpdate   time.Time
}

// Status queries the current player and queue state.
func (c *Client) Status() (*Status, error) {
	pairs, err := c.Exec(Cmd("status"))
	if err != nil {
		return nil, err
	}

	st := &Status{Volume: -1, Song: -1, SongID: -1, NextSong: -1, NextSongID: -1}

	for _, p := range pairs {
		switch p.Key {
		case "volume":
			st.Volume, err = parseIntField(p.Key, p.Value)
		case "repeat":
			st.Repeat, err = parseBoolField(p.Key, p.Value)
		case "random":
			st.Random, err = parseBoolField(p.Key, p.Value)
		case "single":
			st.Single, err = parseBoolField(p.Key, p.Value)
		case "consume":
			st.Consume, err = parseBoolField(p.Key, p.Value)
		case "playlist":
			st.Playlist, err = parseIntField(p.Key, p.Value)
		case "playlistlength":
			st.PlaylistLength, err = parseIntField(p.Key, p.Value)
		case "state":
			st.State = PlayState(p.Value)
		case "song":
			st.Song, err = parseIntField(p.Key, p.Value)
		case "songid":
			st.SongID, err = parseIntField(p.Key, p.Value)
		case "nextsong":
			st.NextSong, err = parseIntField(p.Key, p.Value)
		case "nextsongid":
			st.NextSongID, err = parseIntField(p.Key, p.Value)
		case "elapsed":
			st.Elapsed, err = parseSecondsField(p.Key, p.Value)
		case "duration":
			st.Duration, err = parseSecondsField(p.Key, p.Value)
		case "bitrate":
			st.Bitrate, err = parseIntField(p.Key, p.Value)
		case "audio":
			st.Audio = p.Value
		case "updating_db":
			st.Updating, err = parseIntField(p.Key, p.Value)
		case "error":
			st.Error = p.Value
		}

		if err != nil {
			return nil, err
		}
	}

	return st, nil
}

// Stats queries the server statistics.
func (c *Client) Stats() (*Stats, error) {
	pairs, err := c.Exec(Cmd("stats"))
	if err != nil {
		return nil, err
	}

	st := &Stats{}

	for _, p := range pairs {
		switch p.Key {
		case "artists":
			st.Artists, err = parseIntField(p.Key, p.Value)
		case "albums":
			st.Albums, err = parseIntField(p.Key, p.Value)
		case "songs":
			st.Songs, err = parseIntField(p.Key, p.Value)
		case "uptime":
			st.Uptime, err = parseSecondsField(p.Key, p.Value)
		case "playtime":
			st.Playtime, err = parseSecondsField(p.Key, p.Value)
		case "db_playtime":
			st.DBPlaytime, err = parseSecondsField(p.Key, p.Value)
		case "db_update":
			var sec int

			sec, err = parseIntField(p.Key, p.Value)
			if err == nil {
				st.DBUpdate = time.Unix(int64(sec), 0).UTC()
			}
		}

		if err != nil {
			return nil, err
		}
	}

	return st, nil
}
