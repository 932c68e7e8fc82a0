package mpd

import (
	"fmt"
	"strings"
)

// Pair is one key/value line of a reply body. Keys repeat for multi-valued
// fields, so the ordered sequence, not a map, is the canonical form.
type Pair struct {
	Key   string
	Value string
}

// Response is a forward-only, non-restartable reader over one command's
// reply. Next advances to the following key/value pair; once it returns
// false, Err reports the terminal outcome: nil for OK, a *ServerError for
// ACK, or a *ProtocolError for a reply the parser could not accept.
//
// Consuming the terminal outcome is what returns the connection to the
// ready state. A caller that abandons a Response mid-body must Close it
// before issuing another command.
type Response struct {
	c      *Client
	key    string
	value  string
	srvErr *ServerError
	err    error
	done   bool
	inList bool // terminate at list_OK rather than OK
}

// Next reads the next body line. It returns false at the terminal marker or
// on error.
func (r *Response) Next() bool {
	if r.done || r.err != nil {
		return false
	}

	line, err := r.c.lc.readLine()
	if err != nil {
		r.fail(&ProtocolError{Op: "read reply", Err: err})

		return false
	}

	switch {
	case !r.inList && line == "OK":
		r.done = true
		r.c.finishCommand()

		return false

	case r.inList && line == "list_OK":
		// The dispatcher draining the command list owns the state
		// transition; each member reader just stops here.
		r.done = true

		return false

	case strings.HasPrefix(line, "ACK "):
		srvErr, err := parseAck(line)
		if err != nil {
			r.fail(err)

			return false
		}

		r.srvErr = srvErr
		r.done = true

		if !r.inList {
			r.c.finishCommand()
		}

		return false

	default:
		key, value, ok := cutPair(line)
		if !ok {
			r.fail(&ProtocolError{Op: "read reply", Err: fmt.Errorf("malformed line %q", line)})

			return false
		}

		r.key, r.value = key, value

		return true
	}
}

// Key returns the key of the current pair.
func (r *Response) Key() string {
	return r.key
}

// Value returns the raw value of the current pair.
func (r *Response) Value() string {
	return r.value
}

// Err returns the terminal outcome once Next has returned false: nil for a
// success terminator, the *ServerError for an ACK, or the *ProtocolError
// that ended parsing.
func (r *Response) Err() error {
	if r.err != nil {
		return r.err
	}

	if r.srvErr != nil {
		return r.srvErr
	}

	return nil
}

// Pairs drains the remaining body and returns it in wire order together
// with the terminal outcome.
func (r *Response) Pairs() ([]Pair, error) {
	var pairs []Pair

	for r.Next() {
		pairs = append(pairs, Pair{Key: r.key, Value: r.value})
	}

	if err := r.Err(); err != nil {
		return nil, err
	}

	return pairs, nil
}

// Close drains any unread remainder of the reply and returns the terminal
// outcome. It is safe to call after the reply is already consumed.
func (r *Response) Close() error {
	for r.Next() {
	}

	return r.Err()
}

// fail records a fatal parse or transport error. The connection cannot be
// resynchronized afterwards, so it is poisoned.
func (r *Response) fail(err error) {
	r.err = err
	r.done = true
	r.c.poison()
}

// cutPair splits a body line on the first ": " separator. A line with no
// separator or an empty key does not match the reply grammar.
func cutPair(line string) (key, value string, ok bool) {
	key, value, ok = strings.Cut(line, ": ")
	if !ok || key == "" || strings.ContainsAny(key, " \t") {
		return "", "", false
	}

	return key, value, true
}

// groupRecords splits an ordered pair sequence into runs that each begin at
// startKey, the shape consumed by the typed entity views. Pairs before the
// first start key are ignored.
func groupRecords(pairs []Pair, startKey string) [][]Pair {
	var records [][]Pair

	for _, p := range pairs {
		if p.Key == startKey {
			records = append(records, []Pair{p})

			continue
		}

		if len(records) == 0 {
			continue
		}

		records[len(records)-1] = append(records[len(records)-1], p)
	}

	return records
}
