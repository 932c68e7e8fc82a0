// Package mpd implements the client side of the Music Player Daemon
// protocol: a line-oriented, request/response text protocol spoken over a
// TCP or unix stream socket, including the idle long-poll sub-protocol.
//
// The package reports failures purely through returned errors and never
// retries or reconnects; those policies belong to callers.
package mpd

import (
	"fmt"
	"net"
	"strings"
	"sync"
	"time"
)

// Client owns one connection to the server. At most one command or idle
// wait may be in flight at a time; violating that yields a StateError
// without touching the transport.
type Client struct {
	lc       *lineConn
	mu       sync.Mutex
	state    connState
	version  string
	timeout  time.Duration
	password string
	noidle   bool // noidle already written for the current idle wait
}

// ConnectOption configures the client.
type ConnectOption func(*Client)

// WithTimeout sets the total per-operation I/O deadline. Zero (the default)
// means commands block indefinitely. The idle wait is never subject to this
// deadline.
func WithTimeout(d time.Duration) ConnectOption {
	return func(c *Client) {
		c.timeout = d
	}
}

// WithPassword authenticates with the given password immediately after the
// handshake, before any other command.
func WithPassword(password string) ConnectOption {
	return func(c *Client) {
		c.password = password
	}
}

// Dial connects to the server on the given network ("tcp" or "unix") and
// address, and performs the handshake.
func Dial(network, addr string, opts ...ConnectOption) (*Client, error) {
	conn, err := net.Dial(network, addr)
	if err != nil {
		return nil, &ProtocolError{Op: "connect", Err: err}
	}

	client, err := newClient(conn, opts...)
	if err != nil {
		conn.Close()

		return nil, err
	}

	return client, nil
}

// NewClientFromConn creates a client from an existing net.Conn (useful for
// testing with net.Pipe).
func NewClientFromConn(conn net.Conn, opts ...ConnectOption) (*Client, error) {
	return newClient(conn, opts...)
}

// Close closes the connection. It is idempotent; all later operations fail
// with a StateError without touching the transport.
func (c *Client) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state == stateClosed {
		return nil
	}

	c.state = stateClosed

	return c.lc.close()
}

// Version returns the protocol version announced in the server greeting.
func (c *Client) Version() string {
	return c.version
}

// Send serializes the command, writes it, and returns a Response bound to
// this connection. An argument containing a line break cannot be framed and
// is rejected with a ProtocolError before anything is written. The
// connection stays in the command-in-flight state until the Response's
// terminal outcome is consumed; dispatching another command before that
// fails with a StateError and writes nothing.
func (c *Client) Send(cmd Command) (*Response, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state != stateReady {
		return nil, &StateError{Op: cmd.Name(), State: c.state.String()}
	}

	line, err := cmd.line()
	if err != nil {
		return nil, err
	}

	if err := c.lc.writeLine(line); err != nil {
		c.poisonLocked()

		return nil, &ProtocolError{Op: cmd.Name() + " write", Err: err}
	}

	c.state = stateCommand

	return &Response{c: c}, nil
}

// Exec sends the command and drains its full reply, returning the body in
// wire order.
func (c *Client) Exec(cmd Command) ([]Pair, error) {
	resp, err := c.Send(cmd)
	if err != nil {
		return nil, err
	}

	return resp.Pairs()
}

// run sends a command whose reply carries no body.
func (c *Client) run(cmd Command) error {
	resp, err := c.Send(cmd)
	if err != nil {
		return err
	}

	return resp.Close()
}

// Ping checks that the connection is alive.
func (c *Client) Ping() error {
	return c.run(Cmd("ping"))
}

// Password authenticates the connection.
func (c *Client) Password(password string) error {
	return c.run(Cmd("password", password))
}

// ListResult is the outcome of one member of a command list. Exactly one of
// Pairs and Err is meaningful: members answered before a failure carry
// their body, the failing member carries the server error.
type ListResult struct {
	Pairs []Pair
	Err   *ServerError
}

// CommandList sends the commands inside a single
// command_list_ok_begin/command_list_end envelope. Replies are
// demultiplexed on the per-member list_OK markers.
//
// The server aborts the list at the first failure: the returned slice holds
// one entry per answered member, so on failure its last entry carries the
// ServerError (whose Index names the failing member) and later members are
// absent. The returned error is non-nil only for transport, parse, or state
// failures.
func (c *Client) CommandList(cmds ...Command) ([]ListResult, error) {
	if len(cmds) == 0 {
		return nil, nil
	}

	c.mu.Lock()

	if c.state != stateReady {
		defer c.mu.Unlock()

		return nil, &StateError{Op: "command list", State: c.state.String()}
	}

	lines := make([]string, 0, len(cmds)+2)
	lines = append(lines, "command_list_ok_begin")

	for _, cmd := range cmds {
		line, err := cmd.line()
		if err != nil {
			c.mu.Unlock()

			return nil, err
		}

		lines = append(lines, line)
	}

	lines = append(lines, "command_list_end")

	if err := c.lc.writeLines(lines); err != nil {
		c.poisonLocked()
		c.mu.Unlock()

		return nil, &ProtocolError{Op: "command list write", Err: err}
	}

	c.state = stateCommand
	c.mu.Unlock()

	results := make([]ListResult, 0, len(cmds))

	for range cmds {
		resp := &Response{c: c, inList: true}

		var pairs []Pair

		for resp.Next() {
			pairs = append(pairs, Pair{Key: resp.key, Value: resp.value})
		}

		if resp.err != nil {
			return results, resp.err
		}

		if resp.srvErr != nil {
			results = append(results, ListResult{Err: resp.srvErr})
			c.finishCommand()

			return results, nil
		}

		results = append(results, ListResult{Pairs: pairs})
	}

	// Every member succeeded; the envelope itself ends with a final OK.
	line, err := c.lc.readLine()
	if err != nil {
		c.poison()

		return results, &ProtocolError{Op: "command list read terminator", Err: err}
	}

	if line != "OK" {
		c.poison()

		return results, &ProtocolError{
			Op:  "command list read terminator",
			Err: fmt.Errorf("expected OK, got %q", line),
		}
	}

	c.finishCommand()

	return results, nil
}

// finishCommand marks the in-flight reply as fully consumed.
func (c *Client) finishCommand() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state == stateCommand {
		c.state = stateReady
	}
}

// poison closes the transport after an unrecoverable framing failure. The
// state machine keeps rejecting operations with a StateError afterwards.
func (c *Client) poison() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.poisonLocked()
}

func (c *Client) poisonLocked() {
	if c.state == stateClosed {
		return
	}

	c.state = stateClosed
	c.lc.close()
}

// newClient creates a Client from an existing connection, applies options,
// and performs the handshake plus optional authentication.
func newClient(conn net.Conn, opts ...ConnectOption) (*Client, error) {
	c := &Client{state: stateClosed}

	for _, opt := range opts {
		opt(c)
	}

	c.lc = newLineConn(conn, c.timeout)

	version, err := handshake(c.lc)
	if err != nil {
		return nil, err
	}

	c.version = version
	c.state = stateReady

	if c.password != "" {
		if err := c.Password(c.password); err != nil {
			return nil, err
		}
	}

	return c, nil
}

// handshake reads the greeting line, which must be "OK MPD <version>".
func handshake(lc *lineConn) (string, error) {
	line, err := lc.readLine()
	if err != nil {
		return "", &ProtocolError{Op: "handshake read greeting", Err: err}
	}

	version, ok := strings.CutPrefix(line, "OK MPD ")
	if !ok || version == "" {
		return "", &ProtocolError{
			Op:  "handshake validate greeting",
			Err: fmt.Errorf("unexpected greeting %q", line),
		}
	}

	return version, nil
}
