package mpd_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mpd-community/go-mpd/pkg/mpd"
)

func TestListPlaylists(t *testing.T) {
	mock, conn := newMockServer(t)
	defer mock.conn.Close()

	go func() {
		mock.greet()
		mock.expect("listplaylists")
		mock.send(
			"playlist: morning",
			"Last-Modified: 2024-01-15T08:30:00Z",
			"playlist: road trip",
			"Last-Modified: 2024-02-20T19:00:00Z",
			"OK",
		)
	}()

	client, err := mpd.NewClientFromConn(conn)
	require.NoError(t, err)
	defer client.Close()

	playlists, err := client.ListPlaylists()
	require.NoError(t, err)
	require.Len(t, playlists, 2)

	assert.Equal(t, "morning", playlists[0].Name)
	assert.Equal(t, time.Date(2024, 1, 15, 8, 30, 0, 0, time.UTC), playlists[0].LastModified.UTC())
	assert.Equal(t, "road trip", playlists[1].Name)
}

func TestPlaylistOperations(t *testing.T) {
	mock, conn := newMockServer(t)
	defer mock.conn.Close()

	go func() {
		mock.greet()
		mock.expect(`playlistadd "road trip" "albums/x/01 Intro.flac"`)
		mock.send("OK")
		mock.expect(`playlistmove "road trip" 0 3`)
		mock.send("OK")
		mock.expect(`playlistdelete "road trip" 3`)
		mock.send("OK")
		mock.expect(`rename "road trip" travel`)
		mock.send("OK")
		mock.expect("rm travel")
		mock.send("OK")
	}()

	client, err := mpd.NewClientFromConn(conn)
	require.NoError(t, err)
	defer client.Close()

	require.NoError(t, client.PlaylistAdd("road trip", "albums/x/01 Intro.flac"))
	require.NoError(t, client.PlaylistMove("road trip", 0, 3))
	require.NoError(t, client.PlaylistDelete("road trip", 3))
	require.NoError(t, client.PlaylistRename("road trip", "travel"))
	require.NoError(t, client.PlaylistRemove("travel"))
}

func TestPlaylistContents(t *testing.T) {
	mock, conn := newMockServer(t)
	defer mock.conn.Close()

	go func() {
		mock.greet()
		mock.expect("listplaylistinfo morning")
		mock.send("file: a.mp3", "Title: A", "file: b.mp3", "Title: B", "OK")
	}()

	client, err := mpd.NewClientFromConn(conn)
	require.NoError(t, err)
	defer client.Close()

	songs, err := client.PlaylistContents("morning")
	require.NoError(t, err)
	require.Len(t, songs, 2)
	assert.Equal(t, "A", songs[0].Title)
	assert.Equal(t, "b.mp3", songs[1].File)
}

func TestPlaylistLoadMissing(t *testing.T) {
	mock, conn := newMockServer(t)
	defer mock.conn.Close()

	go func() {
		mock.greet()
		mock.expect("load nope")
		mock.send("ACK [50@0] {load} No such playlist")
	}()

	client, err := mpd.NewClientFromConn(conn)
	require.NoError(t, err)
	defer client.Close()

	err = client.PlaylistLoad("nope")

	var srvErr *mpd.ServerError

	require.ErrorAs(t, err, &srvErr)
	assert.Equal(t, mpd.ErrorNoExist, srvErr.Code)
}
