package mpd

import (
	"fmt"
	"strconv"
	"strings"
)

// Command is a verb plus an ordered sequence of arguments. It is immutable
// once constructed and serializes to exactly one line.
type Command struct {
	name string
	args []string
}

// Cmd builds a Command, rendering each argument to its canonical text form:
// booleans become "0"/"1", numbers their decimal representation, strings are
// taken verbatim. Quoting happens at serialization time.
func Cmd(name string, args ...any) Command {
	c := Command{name: name}

	for _, a := range args {
		c.args = append(c.args, renderArg(a))
	}

	return c
}

// Name returns the command verb.
func (c Command) Name() string {
	return c.name
}

// String returns the serialized command line, without the trailing newline.
func (c Command) String() string {
	if len(c.args) == 0 {
		return c.name
	}

	parts := make([]string, 0, len(c.args)+1)
	parts = append(parts, c.name)

	for _, a := range c.args {
		parts = append(parts, Quote(a))
	}

	return strings.Join(parts, " ")
}

// line serializes the command for the wire. The quoting grammar has no
// escape for a line break, so an argument carrying one cannot be framed as
// a single line and is rejected before anything is written.
func (c Command) line() (string, error) {
	for _, a := range c.args {
		if strings.ContainsAny(a, "\n\r") {
			return "", &ProtocolError{Op: c.name, Err: errLineBreak}
		}
	}

	return c.String(), nil
}

func renderArg(v any) string {
	switch x := v.(type) {
	case string:
		return x
	case Subsystem:
		return string(x)
	case bool:
		if x {
			return "1"
		}

		return "0"
	case int:
		return strconv.Itoa(x)
	case int64:
		return strconv.FormatInt(x, 10)
	case uint:
		return strconv.FormatUint(uint64(x), 10)
	case uint64:
		return strconv.FormatUint(x, 10)
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	default:
		return fmt.Sprint(x)
	}
}
