// mpdctl is a small command-line controller for a Music Player Daemon
// server, built on the go-mpd client package.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/alecthomas/kong"

	"github.com/mpd-community/go-mpd/pkg/mpd"
)

const (
	defaultHost = "localhost"
	defaultPort = 6600
)

// Globals are the connection settings shared by every subcommand. Values
// resolve flag/env first, then the config file, then the defaults.
type Globals struct {
	Host     string        `help:"Server host, or absolute path of a unix socket." env:"MPD_HOST"`
	Port     int           `help:"Server port." env:"MPD_PORT"`
	Password string        `help:"Server password." env:"MPD_PASSWORD"`
	Timeout  time.Duration `help:"I/O timeout for commands (0 = none)."`
	Config   string        `help:"Config file path." type:"path"`
}

func (g *Globals) connect() (*mpd.Client, error) {
	cfg, err := loadConfig(g.Config)
	if err != nil {
		return nil, err
	}

	host := g.Host
	if host == "" {
		host = cfg.Host
	}

	if host == "" {
		host = defaultHost
	}

	port := g.Port
	if port == 0 {
		port = cfg.Port
	}

	if port == 0 {
		port = defaultPort
	}

	password := g.Password
	if password == "" {
		password = cfg.Password
	}

	timeout := g.Timeout
	if timeout == 0 {
		timeout, err = cfg.timeoutValue()
		if err != nil {
			return nil, err
		}
	}

	opts := []mpd.ConnectOption{mpd.WithTimeout(timeout)}
	if password != "" {
		opts = append(opts, mpd.WithPassword(password))
	}

	if strings.HasPrefix(host, "/") {
		return mpd.Dial("unix", host, opts...)
	}

	return mpd.Dial("tcp", fmt.Sprintf("%s:%d", host, port), opts...)
}

type StatusCmd struct{}

func (c *StatusCmd) Run(g *Globals) error {
	client, err := g.connect()
	if err != nil {
		return err
	}
	defer client.Close()

	st, err := client.Status()
	if err != nil {
		return err
	}

	cur, err := client.CurrentSong()
	if err != nil {
		return err
	}

	if cur != nil {
		fmt.Printf("%s\n", songLabel(cur))
		fmt.Printf("[%s] #%d/%d %s/%s\n",
			st.State, st.Song+1, st.PlaylistLength,
			clock(st.Elapsed), clock(st.Duration))
	} else {
		fmt.Printf("[%s]\n", st.State)
	}

	fmt.Printf("volume:%3d%%  repeat: %s  random: %s  single: %s  consume: %s\n",
		st.Volume, onOff(st.Repeat), onOff(st.Random), onOff(st.Single), onOff(st.Consume))

	if st.Error != "" {
		fmt.Printf("error: %s\n", st.Error)
	}

	return nil
}

type PlayCmd struct {
	Pos int `arg:"" optional:"" default:"-1" help:"Queue position to play from."`
}

func (c *PlayCmd) Run(g *Globals) error {
	return withClient(g, func(client *mpd.Client) error {
		return client.Play(c.Pos)
	})
}

type PauseCmd struct{}

func (c *PauseCmd) Run(g *Globals) error {
	return withClient(g, func(client *mpd.Client) error {
		return client.Pause(true)
	})
}

type StopCmd struct{}

func (c *StopCmd) Run(g *Globals) error {
	return withClient(g, func(client *mpd.Client) error {
		return client.Stop()
	})
}

type NextCmd struct{}

func (c *NextCmd) Run(g *Globals) error {
	return withClient(g, func(client *mpd.Client) error {
		return client.Next()
	})
}

type PrevCmd struct{}

func (c *PrevCmd) Run(g *Globals) error {
	return withClient(g, func(client *mpd.Client) error {
		return client.Previous()
	})
}

type VolumeCmd struct {
	Volume int `arg:"" help:"Volume percentage, 0-100."`
}

func (c *VolumeCmd) Run(g *Globals) error {
	return withClient(g, func(client *mpd.Client) error {
		return client.SetVolume(c.Volume)
	})
}

type QueueCmd struct{}

func (c *QueueCmd) Run(g *Globals) error {
	client, err := g.connect()
	if err != nil {
		return err
	}
	defer client.Close()

	songs, err := client.Queue()
	if err != nil {
		return err
	}

	for _, song := range songs {
		fmt.Printf("%4d  %s\n", song.Pos+1, songLabel(&song))
	}

	return nil
}

type PlaylistsCmd struct{}

func (c *PlaylistsCmd) Run(g *Globals) error {
	client, err := g.connect()
	if err != nil {
		return err
	}
	defer client.Close()

	playlists, err := client.ListPlaylists()
	if err != nil {
		return err
	}

	for _, pl := range playlists {
		fmt.Printf("%s\t%s\n", pl.Name, pl.LastModified.Format(time.RFC3339))
	}

	return nil
}

type OutputsCmd struct{}

func (c *OutputsCmd) Run(g *Globals) error {
	client, err := g.connect()
	if err != nil {
		return err
	}
	defer client.Close()

	outputs, err := client.Outputs()
	if err != nil {
		return err
	}

	for _, out := range outputs {
		state := "disabled"
		if out.Enabled {
			state = "enabled"
		}

		fmt.Printf("Output %d (%s) is %s\n", out.ID, out.Name, state)
	}

	return nil
}

type StatsCmd struct{}

func (c *StatsCmd) Run(g *Globals) error {
	client, err := g.connect()
	if err != nil {
		return err
	}
	defer client.Close()

	st, err := client.Stats()
	if err != nil {
		return err
	}

	fmt.Printf("Artists: %6d\nAlbums:  %6d\nSongs:   %6d\n", st.Artists, st.Albums, st.Songs)
	fmt.Printf("Play Time:    %s\nDB Play Time: %s\n", st.Playtime, st.DBPlaytime)
	fmt.Printf("DB Updated:   %s\n", st.DBUpdate.Format(time.RFC3339))

	return nil
}

type WatchCmd struct {
	Subsystems []string `arg:"" optional:"" help:"Subsystems to watch (default: all)."`
}

func (c *WatchCmd) Run(g *Globals) error {
	client, err := g.connect()
	if err != nil {
		return err
	}
	defer client.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	subs := make([]mpd.Subsystem, 0, len(c.Subsystems))
	for _, s := range c.Subsystems {
		subs = append(subs, mpd.Subsystem(s))
	}

	for ctx.Err() == nil {
		event, err := client.Idle(ctx, subs...)
		if err != nil {
			return err
		}

		for subsystem := range event {
			fmt.Println(subsystem)
		}
	}

	return nil
}

func withClient(g *Globals, f func(*mpd.Client) error) error {
	client, err := g.connect()
	if err != nil {
		return err
	}
	defer client.Close()

	return f(client)
}

func songLabel(s *mpd.Song) string {
	if s.Artist != "" && s.Title != "" {
		return s.Artist + " - " + s.Title
	}

	if s.Title != "" {
		return s.Title
	}

	return s.File
}

func clock(d time.Duration) string {
	secs := int(d.Seconds())

	return fmt.Sprintf("%d:%02d", secs/60, secs%60)
}

func onOff(b bool) string {
	if b {
		return "on"
	}

	return "off"
}

var cli struct {
	Globals

	Status    StatusCmd    `cmd:"" default:"1" help:"Show player status and the current song."`
	Play      PlayCmd      `cmd:"" help:"Start or resume playback."`
	Pause     PauseCmd     `cmd:"" help:"Pause playback."`
	Stop      StopCmd      `cmd:"" help:"Stop playback."`
	Next      NextCmd      `cmd:"" help:"Play the next song."`
	Prev      PrevCmd      `cmd:"" help:"Play the previous song."`
	Volume    VolumeCmd    `cmd:"" help:"Set the mixer volume."`
	Queue     QueueCmd     `cmd:"" help:"List the play queue."`
	Playlists PlaylistsCmd `cmd:"" help:"List stored playlists."`
	Outputs   OutputsCmd   `cmd:"" help:"List audio outputs."`
	Stats     StatsCmd     `cmd:"" help:"Show server statistics."`
	Watch     WatchCmd     `cmd:"" help:"Block and report server changes as they happen."`
}

func main() {
	ctx := kong.Parse(&cli,
		kong.Name("mpdctl"),
		kong.Description("Control a Music Player Daemon server."),
		kong.UsageOnError(),
	)

	err := ctx.Run(&cli.Globals)
	ctx.FatalIfErrorf(err)
}
