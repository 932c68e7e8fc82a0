package mpd

import (
	"context"
	"fmt"
	"strings"
)

// IdleEvent is the set of subsystems reported by one idle cycle. It is
// empty only when a cancellation raced the wait with no pending change.
type IdleEvent map[Subsystem]bool

// Has reports whether the event names the given subsystem.
func (e IdleEvent) Has(s Subsystem) bool {
	return e[s]
}

// Idle blocks until the server reports a change in one of the given
// subsystems (or in any subsystem, if none are given) and returns the
// reported set. The wait is bounded only by ctx: when ctx is cancelled the
// wait is resolved through NoIdle, and Idle still returns normally, with
// the pending event if the server had already produced one or an empty
// event otherwise.
//
// While Idle blocks, NoIdle is the only operation another goroutine may
// invoke on this client.
func (c *Client) Idle(ctx context.Context, subsystems ...Subsystem) (IdleEvent, error) {
	c.mu.Lock()

	if c.state != stateReady {
		defer c.mu.Unlock()

		return nil, &StateError{Op: "idle", State: c.state.String()}
	}

	line, err := idleLine(subsystems)
	if err != nil {
		c.mu.Unlock()

		return nil, err
	}

	if err := c.lc.writeLine(line); err != nil {
		c.poisonLocked()
		c.mu.Unlock()

		return nil, &ProtocolError{Op: "idle write", Err: err}
	}

	c.state = stateIdle
	c.noidle = false
	c.mu.Unlock()

	if ctx != nil && ctx.Done() != nil {
		stop := context.AfterFunc(ctx, func() {
			c.NoIdle() //nolint:errcheck // wait already resolved
		})
		defer stop()
	}

	event := IdleEvent{}

	for {
		line, err := c.lc.waitLine()
		if err != nil {
			c.poison()

			return nil, &ProtocolError{Op: "idle read", Err: err}
		}

		switch {
		case line == "OK":
			c.mu.Lock()
			c.state = stateReady
			c.noidle = false
			c.mu.Unlock()

			return event, nil

		case strings.HasPrefix(line, "ACK "):
			srvErr, perr := parseAck(line)
			if perr != nil {
				c.poison()

				return nil, perr
			}

			c.mu.Lock()
			c.state = stateReady
			c.noidle = false
			c.mu.Unlock()

			return nil, srvErr

		default:
			key, value, ok := cutPair(line)
			if !ok || key != "changed" {
				c.poison()

				return nil, &ProtocolError{Op: "idle read", Err: fmt.Errorf("unexpected line %q", line)}
			}

			event[Subsystem(value)] = true
		}
	}
}

// NoIdle cancels a blocked Idle from another goroutine; it is the only
// command legal while the connection is idle-blocking. The cancellation is
// never dropped: if the server has already begun reporting an event, the
// wait resolves with that event once its terminator is consumed. Calling
// NoIdle again before the wait resolves is a no-op.
func (c *Client) NoIdle() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state != stateIdle {
		return &StateError{Op: "noidle", State: c.state.String()}
	}

	if c.noidle {
		return nil
	}

	if err := c.lc.writeLine("noidle"); err != nil {
		c.poisonLocked()

		return &ProtocolError{Op: "noidle write", Err: err}
	}

	c.noidle = true

	return nil
}

func idleLine(subsystems []Subsystem) (string, error) {
	if len(subsystems) == 0 {
		return "idle", nil
	}

	parts := make([]string, 0, len(subsystems)+1)
	parts = append(parts, "idle")

	for _, s := range subsystems {
		if strings.ContainsAny(string(s), "\n\r") {
			return "", &ProtocolError{Op: "idle", Err: errLineBreak}
		}

		parts = append(parts, string(s))
	}

	return strings.Join(parts, " "), nil
}
