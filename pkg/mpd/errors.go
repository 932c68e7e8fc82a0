package mpd

import (
	"errors"
	"fmt"
	"net"
	"strconv"
	"strings"
)

var (
	errMissingJobID = errors.New("reply carried no updating_db key")
	errLineBreak    = errors.New("argument contains a line break")
)

// ServerError is returned when the server rejects a command with an ACK
// line. The connection remains usable afterwards.
type ServerError struct {
	Code    ErrorCode
	Index   int // position within a command list, zero outside lists
	Command string
	Message string
}

func (e *ServerError) Error() string {
	return fmt.Sprintf("mpd: %s", e.Message)
}

// ProtocolError is returned for transport failures and for reply lines that
// do not match the protocol grammar. A ProtocolError from a reply leaves
// the connection closed.
type ProtocolError struct {
	Op  string
	Err error
}

func (e *ProtocolError) Error() string {
	return fmt.Sprintf("protocol: %s: %v", e.Op, e.Err)
}

func (e *ProtocolError) Unwrap() error {
	return e.Err
}

// StateError is returned when a caller violates the connection state
// machine, for example by sending a command while a previous reply is
// undrained. Nothing is written to the transport.
type StateError struct {
	Op    string
	State string
}

func (e *StateError) Error() string {
	return fmt.Sprintf("mpd: %s: connection is %s", e.Op, e.State)
}

// IsTimeout reports whether err was caused by an I/O deadline expiring.
func IsTimeout(err error) bool {
	var nerr net.Error

	return errors.As(err, &nerr) && nerr.Timeout()
}

// parseAck decodes an error terminator line of the form
//
//	ACK [<code>@<index>] {<command>} <message>
func parseAck(line string) (*ServerError, error) {
	malformed := func() error {
		return &ProtocolError{Op: "parse ack", Err: fmt.Errorf("malformed ACK line %q", line)}
	}

	rest, ok := strings.CutPrefix(line, "ACK [")
	if !ok {
		return nil, malformed()
	}

	codeStr, rest, ok := strings.Cut(rest, "@")
	if !ok {
		return nil, malformed()
	}

	indexStr, rest, ok := strings.Cut(rest, "] {")
	if !ok {
		return nil, malformed()
	}

	command, message, ok := strings.Cut(rest, "} ")
	if !ok {
		// A missing trailing space is tolerated when the message is empty.
		command, ok = strings.CutSuffix(rest, "}")
		if !ok {
			return nil, malformed()
		}
	}

	code, err := strconv.Atoi(codeStr)
	if err != nil {
		return nil, malformed()
	}

	index, err := strconv.Atoi(indexStr)
	if err != nil {
		return nil, malformed()
	}

	return &ServerError{
		Code:    ErrorCode(code),
		Index:   index,
		Command: command,
		Message: message,
	}, nil
}
