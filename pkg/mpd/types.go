package mpd

import "fmt"

// Subsystem is a named category of server state reported by idle events.
type Subsystem string

// Subsystems reported by the server.
const (
	SubsystemDatabase       Subsystem = "database"
	SubsystemUpdate         Subsystem = "update"
	SubsystemStoredPlaylist Subsystem = "stored_playlist"
	SubsystemPlaylist       Subsystem = "playlist"
	SubsystemPlayer         Subsystem = "player"
	SubsystemMixer          Subsystem = "mixer"
	SubsystemOutput         Subsystem = "output"
	SubsystemOptions        Subsystem = "options"
	SubsystemPartition      Subsystem = "partition"
	SubsystemSticker        Subsystem = "sticker"
	SubsystemSubscription   Subsystem = "subscription"
	SubsystemMessage        Subsystem = "message"
	SubsystemNeighbor       Subsystem = "neighbor"
	SubsystemMount          Subsystem = "mount"
)

// ErrorCode is the numeric error class reported in an ACK line.
type ErrorCode int

// Server error codes.
const (
	ErrorNotList        ErrorCode = 1
	ErrorArg            ErrorCode = 2
	ErrorPassword       ErrorCode = 3
	ErrorPermission     ErrorCode = 4
	ErrorUnknownCommand ErrorCode = 5
	ErrorNoExist        ErrorCode = 50
	ErrorPlaylistMax    ErrorCode = 51
	ErrorSystem         ErrorCode = 52
	ErrorPlaylistLoad   ErrorCode = 53
	ErrorUpdateAlready  ErrorCode = 54
	ErrorPlayerSync     ErrorCode = 55
	ErrorExist          ErrorCode = 56
)

//nolint:gochecknoglobals
var errorCodeNames = map[ErrorCode]string{
	ErrorNotList:        "NotList",
	ErrorArg:            "Arg",
	ErrorPassword:       "Password",
	ErrorPermission:     "Permission",
	ErrorUnknownCommand: "UnknownCommand",
	ErrorNoExist:        "NoExist",
	ErrorPlaylistMax:    "PlaylistMax",
	ErrorSystem:         "System",
	ErrorPlaylistLoad:   "PlaylistLoad",
	ErrorUpdateAlready:  "UpdateAlready",
	ErrorPlayerSync:     "PlayerSync",
	ErrorExist:          "Exist",
}

// String returns the human-readable name of the error code.
func (c ErrorCode) String() string {
	if name, ok := errorCodeNames[c]; ok {
		return name
	}

	return fmt.Sprintf("ErrorCode(%d)", int(c))
}

// connState tracks the lifecycle of a connection. Exactly one command or
// idle wait may be in flight at a time; every transition happens under the
// client mutex.
type connState int

const (
	stateReady connState = iota
	stateCommand
	stateIdle
	stateClosed
)

//nolint:gochecknoglobals
var connStateNames = map[connState]string{
	stateReady:   "ready",
	stateCommand: "command in flight",
	stateIdle:    "idle",
	stateClosed:  "closed",
}

// String returns the human-readable name of the connection state.
func (s connState) String() string {
	if name, ok := connStateNames[s]; ok {
		return name
	}

	return fmt.Sprintf("connState(%d)", int(s))
}
