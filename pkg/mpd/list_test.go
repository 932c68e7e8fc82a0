package mpd_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mpd-community/go-mpd/pkg/mpd"
)

func TestCommandListAllSucceed(t *testing.T) {
	mock, conn := newMockServer(t)
	defer mock.conn.Close()

	go func() {
		mock.greet()
		mock.expect("command_list_ok_begin")
		mock.expect("status")
		mock.expect("stats")
		mock.expect("command_list_end")
		mock.send("state: play", "list_OK", "songs: 7", "list_OK", "OK")
		mock.expect("ping")
		mock.send("OK")
	}()

	client, err := mpd.NewClientFromConn(conn)
	require.NoError(t, err)
	defer client.Close()

	results, err := client.CommandList(mpd.Cmd("status"), mpd.Cmd("stats"))
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, []mpd.Pair{{Key: "state", Value: "play"}}, results[0].Pairs)
	assert.Nil(t, results[0].Err)
	assert.Equal(t, []mpd.Pair{{Key: "songs", Value: "7"}}, results[1].Pairs)
	assert.Nil(t, results[1].Err)

	assert.NoError(t, client.Ping())
}

func TestCommandListAbortsAtFirstFailure(t *testing.T) {
	mock, conn := newMockServer(t)
	defer mock.conn.Close()

	go func() {
		mock.greet()
		mock.expect("command_list_ok_begin")
		mock.expect("ping")
		mock.expect("play 99")
		mock.expect("ping")
		mock.expect("command_list_end")
		// The second member fails; the server answers nothing for the
		// third and sends no final OK.
		mock.send("list_OK", "ACK [50@1] {play} No such song")
		mock.expect("ping")
		mock.send("OK")
	}()

	client, err := mpd.NewClientFromConn(conn)
	require.NoError(t, err)
	defer client.Close()

	results, err := client.CommandList(mpd.Cmd("ping"), mpd.Cmd("play", 99), mpd.Cmd("ping"))
	require.NoError(t, err)

	// One entry per answered member: the third was never executed and is
	// not reported at all.
	require.Len(t, results, 2)
	assert.Nil(t, results[0].Err)
	require.NotNil(t, results[1].Err)
	assert.Equal(t, mpd.ErrorNoExist, results[1].Err.Code)
	assert.Equal(t, 1, results[1].Err.Index)
	assert.Equal(t, "play", results[1].Err.Command)

	// An ACK does not poison the connection.
	assert.NoError(t, client.Ping())
}

func TestCommandListRejectsLineBreakArguments(t *testing.T) {
	mock, conn := newMockServer(t)
	defer mock.conn.Close()

	go func() {
		mock.greet()
		mock.expect("ping")
		mock.send("OK")
	}()

	client, err := mpd.NewClientFromConn(conn)
	require.NoError(t, err)
	defer client.Close()

	_, err = client.CommandList(mpd.Cmd("ping"), mpd.Cmd("add", "a\nb"))

	var perr *mpd.ProtocolError

	require.ErrorAs(t, err, &perr)

	// The envelope was never written; the connection stays ready.
	assert.NoError(t, client.Ping())
}

func TestCommandListEmpty(t *testing.T) {
	mock, conn := newMockServer(t)
	defer mock.conn.Close()

	go mock.greet()

	client, err := mpd.NewClientFromConn(conn)
	require.NoError(t, err)
	defer client.Close()

	results, err := client.CommandList()
	assert.NoError(t, err)
	assert.Empty(t, results)
}
