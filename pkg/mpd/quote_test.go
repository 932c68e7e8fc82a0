package mpd_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mpd-community/go-mpd/pkg/mpd"
)

func TestQuoteBareWord(t *testing.T) {
	assert.Equal(t, "foo", mpd.Quote("foo"))
	assert.Equal(t, "some/path/track.mp3", mpd.Quote("some/path/track.mp3"))
	assert.Equal(t, "42", mpd.Quote("42"))
}

func TestQuoteSpecials(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"", `""`},
		{"with space", `"with space"`},
		{"tab\there", "\"tab\there\""},
		{"line\nbreak", "\"line\nbreak\""},
		{"carriage\rreturn", "\"carriage\rreturn\""},
		{`he said "hi"`, `"he said \"hi\""`},
		{`back\slash`, `"back\\slash"`},
		{"it's", `"it's"`},
		{`"`, `"\""`},
		{`\`, `"\\"`},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, mpd.Quote(tc.in), "input %q", tc.in)
	}
}

func TestQuoteRoundTrip(t *testing.T) {
	inputs := []string{
		"",
		"plain",
		"with space",
		`quotes " and \ slashes`,
		`\\\"`,
		"trailing backslash\\",
		"\x00opaque\x01bytes",
		"ünïcödé päth.ogg",
		"a'b'c",
		"  leading and trailing  ",
	}

	for _, in := range inputs {
		out, err := mpd.Unquote(mpd.Quote(in))
		require.NoError(t, err, "input %q", in)
		assert.Equal(t, in, out, "input %q", in)
	}
}

func TestUnquoteBareWord(t *testing.T) {
	got, err := mpd.Unquote("bare")
	require.NoError(t, err)
	assert.Equal(t, "bare", got)
}

func TestUnquoteErrors(t *testing.T) {
	for _, in := range []string{`"unterminated`, `"a"trailing`, `"esc\`, `"`} {
		_, err := mpd.Unquote(in)
		assert.Error(t, err, "input %q", in)

		var perr *mpd.ProtocolError

		assert.ErrorAs(t, err, &perr, "input %q", in)
	}
}
