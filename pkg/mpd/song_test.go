package mpd_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mpd-community/go-mpd/pkg/mpd"
)

func TestCurrentSong(t *testing.T) {
	mock, conn := newMockServer(t)
	defer mock.conn.Close()

	go func() {
		mock.greet()
		mock.expect("currentsong")
		mock.send(
			"file: albums/x/01 Intro.flac",
			"Last-Modified: 2024-03-01T10:00:00Z",
			"Artist: Someone",
			"Title: Intro",
			"Album: X",
			"Track: 1",
			"duration: 92.5",
			"Pos: 0",
			"Id: 11",
			"OK",
		)
	}()

	client, err := mpd.NewClientFromConn(conn)
	require.NoError(t, err)
	defer client.Close()

	song, err := client.CurrentSong()
	require.NoError(t, err)
	require.NotNil(t, song)

	assert.Equal(t, "albums/x/01 Intro.flac", song.File)
	assert.Equal(t, "Someone", song.Artist)
	assert.Equal(t, "Intro", song.Title)
	assert.Equal(t, "X", song.Album)
	assert.Equal(t, 1, song.Track)
	assert.Equal(t, 92500*time.Millisecond, song.Duration)
	assert.Equal(t, 0, song.Pos)
	assert.Equal(t, 11, song.ID)
	assert.Equal(t, time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC), song.LastModified.UTC())
}

func TestCurrentSongStopped(t *testing.T) {
	mock, conn := newMockServer(t)
	defer mock.conn.Close()

	go func() {
		mock.greet()
		mock.expect("currentsong")
		mock.send("OK")
	}()

	client, err := mpd.NewClientFromConn(conn)
	require.NoError(t, err)
	defer client.Close()

	song, err := client.CurrentSong()
	require.NoError(t, err)
	assert.Nil(t, song)
}

func TestQueueGroupsRecords(t *testing.T) {
	mock, conn := newMockServer(t)
	defer mock.conn.Close()

	go func() {
		mock.greet()
		mock.expect("playlistinfo")
		mock.send(
			"file: a.mp3",
			"Title: A",
			"Pos: 0",
			"Id: 1",
			"file: b.mp3",
			"Title: B",
			"Pos: 1",
			"Id: 2",
			"OK",
		)
	}()

	client, err := mpd.NewClientFromConn(conn)
	require.NoError(t, err)
	defer client.Close()

	songs, err := client.Queue()
	require.NoError(t, err)
	require.Len(t, songs, 2)

	assert.Equal(t, "a.mp3", songs[0].File)
	assert.Equal(t, "A", songs[0].Title)
	assert.Equal(t, 0, songs[0].Pos)
	assert.Equal(t, "b.mp3", songs[1].File)
	assert.Equal(t, 2, songs[1].ID)
}

func TestAddQuotesURI(t *testing.T) {
	mock, conn := newMockServer(t)
	defer mock.conn.Close()

	go func() {
		mock.greet()
		mock.expect(`add "My Music/track 01.mp3"`)
		mock.send("OK")
	}()

	client, err := mpd.NewClientFromConn(conn)
	require.NoError(t, err)
	defer client.Close()

	assert.NoError(t, client.Add("My Music/track 01.mp3"))
}
