package mpd

// Update starts a database update, optionally limited to the given URI
// (empty for the whole music directory), and returns the update job id.
func (c *Client) Update(uri string) (int, error) {
	cmd := Cmd("update")
	if uri != "" {
		cmd = Cmd("update", uri)
	}

	pairs, err := c.Exec(cmd)
	if err != nil {
		return 0, err
	}

	for _, p := range pairs {
		if p.Key == "updating_db" {
			return parseIntField(p.Key, p.Value)
		}
	}

	return 0, &ProtocolError{Op: "update", Err: errMissingJobID}
}

// List returns the distinct values of the given tag across the database.
func (c *Client) List(tag string) ([]string, error) {
	pairs, err := c.Exec(Cmd("list", tag))
	if err != nil {
		return nil, err
	}

	values := make([]string, 0, len(pairs))

	for _, p := range pairs {
		values = append(values, p.Value)
	}

	return values, nil
}

// Search performs a case-insensitive search of the database for songs whose
// tag matches what.
func (c *Client) Search(tag, what string) ([]Song, error) {
	return c.songList(Cmd("search", tag, what))
}

// Find performs a case-sensitive, exact-match search of the database.
func (c *Client) Find(tag, what string) ([]Song, error) {
	return c.songList(Cmd("find", tag, what))
}
