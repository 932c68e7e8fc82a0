package mpd

import (
	"bufio"
	"net"
	"strings"
	"time"
)

//nolint:gochecknoglobals
var noDeadline time.Time

// lineConn wraps a stream connection with buffered, newline-delimited line
// I/O. The owning Client enforces single-writer discipline; lineConn itself
// does no locking and no retries.
type lineConn struct {
	conn    net.Conn
	r       *bufio.Reader
	w       *bufio.Writer
	timeout time.Duration
}

func newLineConn(conn net.Conn, timeout time.Duration) *lineConn {
	return &lineConn{
		conn:    conn,
		r:       bufio.NewReader(conn),
		w:       bufio.NewWriter(conn),
		timeout: timeout,
	}
}

// readLine blocks until a full line arrives, subject to the configured
// timeout, and returns it without the trailing newline.
func (lc *lineConn) readLine() (string, error) {
	if lc.timeout > 0 {
		if err := lc.conn.SetReadDeadline(time.Now().Add(lc.timeout)); err != nil {
			return "", err
		}
	}

	return lc.read()
}

// waitLine blocks indefinitely for the next line. Used by the idle wait,
// which is bounded only by caller-supplied cancellation.
func (lc *lineConn) waitLine() (string, error) {
	if err := lc.conn.SetReadDeadline(noDeadline); err != nil {
		return "", err
	}

	return lc.read()
}

func (lc *lineConn) read() (string, error) {
	s, err := lc.r.ReadString('\n')
	if err != nil {
		return "", err
	}

	return strings.TrimSuffix(s, "\n"), nil
}

// writeLine appends a newline to s and writes it, flushing the buffer.
func (lc *lineConn) writeLine(s string) error {
	return lc.writeLines([]string{s})
}

// writeLines writes several lines with a single flush.
func (lc *lineConn) writeLines(lines []string) error {
	if lc.timeout > 0 {
		if err := lc.conn.SetWriteDeadline(time.Now().Add(lc.timeout)); err != nil {
			return err
		}
	}

	for _, s := range lines {
		if _, err := lc.w.WriteString(s); err != nil {
			return err
		}

		if err := lc.w.WriteByte('\n'); err != nil {
			return err
		}
	}

	return lc.w.Flush()
}

func (lc *lineConn) close() error {
	return lc.conn.Close()
}
