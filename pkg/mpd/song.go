package mpd

import "time"

// Song is one song record, materialized from a run of reply pairs starting
// at the "file" key. It carries no reference to the connection it came
// from.
type Song struct {
	// File is the song URI within the music directory.
	File string
	// Tag values; empty when the song does not carry the tag.
	Title  string
	Artist string
	Album  string
	Genre  string
	// Track is the track number within the album, zero if untagged.
	Track int
	// Duration is the song length.
	Duration time.Duration
	// Pos and ID locate the song in the queue; both are -1 outside of it.
	Pos int
	ID  int
	// LastModified is the file modification time, if reported.
	LastModified time.Time
}

// CurrentSong returns the song currently playing or paused, or nil when the
// player is stopped.
func (c *Client) CurrentSong() (*Song, error) {
	pairs, err := c.Exec(Cmd("currentsong"))
	if err != nil {
		return nil, err
	}

	records := groupRecords(pairs, "file")
	if len(records) == 0 {
		return nil, nil
	}

	return songFromRecord(records[0])
}

// Queue returns the contents of the play queue.
func (c *Client) Queue() ([]Song, error) {
	return c.songList(Cmd("playlistinfo"))
}

// Add appends the song or directory at uri to the queue.
func (c *Client) Add(uri string) error {
	return c.run(Cmd("add", uri))
}

// Delete removes the song at the given queue position.
func (c *Client) Delete(pos int) error {
	return c.run(Cmd("delete", pos))
}

// Clear empties the queue.
func (c *Client) Clear() error {
	return c.run(Cmd("clear"))
}

// songList runs a command whose reply is a sequence of song records.
func (c *Client) songList(cmd Command) ([]Song, error) {
	pairs, err := c.Exec(cmd)
	if err != nil {
		return nil, err
	}

	records := groupRecords(pairs, "file")
	songs := make([]Song, 0, len(records))

	for _, rec := range records {
		song, err := songFromRecord(rec)
		if err != nil {
			return nil, err
		}

		songs = append(songs, *song)
	}

	return songs, nil
}

func songFromRecord(rec []Pair) (*Song, error) {
	song := &Song{Pos: -1, ID: -1}

	var err error

	for _, p := range rec {
		switch p.Key {
		case "file":
			song.File = p.Value
		case "Title":
			song.Title = p.Value
		case "Artist":
			song.Artist = p.Value
		case "Album":
			song.Album = p.Value
		case "Genre":
			song.Genre = p.Value
		case "Track":
			song.Track, err = parseIntField(p.Key, p.Value)
		case "duration":
			song.Duration, err = parseSecondsField(p.Key, p.Value)
		case "Time":
			// Whole-second fallback sent by older servers; duration wins.
			if song.Duration == 0 {
				song.Duration, err = parseSecondsField(p.Key, p.Value)
			}
		case "Pos":
			song.Pos, err = parseIntField(p.Key, p.Value)
		case "Id":
			song.ID, err = parseIntField(p.Key, p.Value)
		case "Last-Modified":
			song.LastModified, err = parseTimeField(p.Key, p.Value)
		}

		if err != nil {
			return nil, err
		}
	}

	return song, nil
}
