package mpd

// Output is one audio output, materialized from a run of reply pairs
// starting at the "outputid" key.
type Output struct {
	ID      int
	Name    string
	Enabled bool
}

// Outputs returns the configured audio outputs.
func (c *Client) Outputs() ([]Output, error) {
	pairs, err := c.Exec(Cmd("outputs"))
	if err != nil {
		return nil, err
	}

	records := groupRecords(pairs, "outputid")
	outputs := make([]Output, 0, len(records))

	for _, rec := range records {
		out := Output{}

		for _, p := range rec {
			switch p.Key {
			case "outputid":
				out.ID, err = parseIntField(p.Key, p.Value)
			case "outputname":
				out.Name = p.Value
			case "outputenabled":
				out.Enabled, err = parseBoolField(p.Key, p.Value)
			}

			if err != nil {
				return nil, err
			}
		}

		outputs = append(outputs, out)
	}

	return outputs, nil
}

// EnableOutput turns the given output on.
func (c *Client) EnableOutput(id int) error {
	return c.run(Cmd("enableoutput", id))
}

// DisableOutput turns the given output off.
func (c *Client) DisableOutput(id int) error {
	return c.run(Cmd("disableoutput", id))
}
