package mpd

import (
	"strconv"
	"time"
)

// Field decoding helpers for the typed views. A value that does not parse
// as its documented type is a protocol violation.

func parseIntField(key, value string) (int, error) {
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, &ProtocolError{Op: "parse " + key, Err: err}
	}

	return n, nil
}

func parseBoolField(key, value string) (bool, error) {
	switch value {
	case "0":
		return false, nil
	case "1":
		return true, nil
	}

	n, err := parseIntField(key, value)
	if err != nil {
		return false, err
	}

	return n != 0, nil
}

// parseSecondsField decodes a duration given in (possibly fractional)
// seconds, e.g. "231.675".
func parseSecondsField(key, value string) (time.Duration, error) {
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, &ProtocolError{Op: "parse " + key, Err: err}
	}

	return time.Duration(f * float64(time.Second)), nil
}

func parseTimeField(key, value string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, &ProtocolError{Op: "parse " + key, Err: err}
	}

	return t, nil
}
