package mpd

import "time"

// Playlist is one stored playlist, materialized from a run of reply pairs
// starting at the "playlist" key.
type Playlist struct {
	Name         string
	LastModified time.Time
}

// ListPlaylists returns the stored playlists.
func (c *Client) ListPlaylists() ([]Playlist, error) {
	pairs, err := c.Exec(Cmd("listplaylists"))
	if err != nil {
		return nil, err
	}

	records := groupRecords(pairs, "playlist")
	playlists := make([]Playlist, 0, len(records))

	for _, rec := range records {
		pl := Playlist{}

		for _, p := range rec {
			switch p.Key {
			case "playlist":
				pl.Name = p.Value
			case "Last-Modified":
				pl.LastModified, err = parseTimeField(p.Key, p.Value)
				if err != nil {
					return nil, err
				}
			}
		}

		playlists = append(playlists, pl)
	}

	return playlists, nil
}

// PlaylistContents returns the songs of a stored playlist.
func (c *Client) PlaylistContents(name string) ([]Song, error) {
	return c.songList(Cmd("listplaylistinfo", name))
}

// PlaylistLoad appends the stored playlist's songs to the queue.
func (c *Client) PlaylistLoad(name string) error {
	return c.run(Cmd("load", name))
}

// PlaylistSave stores the current queue as a playlist.
func (c *Client) PlaylistSave(name string) error {
	return c.run(Cmd("save", name))
}

// PlaylistAdd appends the song at uri to a stored playlist.
func (c *Client) PlaylistAdd(name, uri string) error {
	return c.run(Cmd("playlistadd", name, uri))
}

// PlaylistClear empties a stored playlist.
func (c *Client) PlaylistClear(name string) error {
	return c.run(Cmd("playlistclear", name))
}

// PlaylistDelete removes the song at the given position from a stored
// playlist.
func (c *Client) PlaylistDelete(name string, pos int) error {
	return c.run(Cmd("playlistdelete", name, pos))
}

// PlaylistMove moves a song within a stored playlist.
func (c *Client) PlaylistMove(name string, from, to int) error {
	return c.run(Cmd("playlistmove", name, from, to))
}

// PlaylistRename renames a stored playlist.
func (c *Client) PlaylistRename(name, newName string) error {
	return c.run(Cmd("rename", name, newName))
}

// PlaylistRemove deletes a stored playlist.
func (c *Client) PlaylistRemove(name string) error {
	return c.run(Cmd("rm", name))
}
