package server

import (
	"time"

	"github.com/gorilla/websocket"

	"github.com/zucenko/mazeball/config"
	"github.com/zucenko/mazeball/game"
	"github.com/zucenko/mazeball/model"
	"github.com/zucenko/mazeball/physics"
)

type GameServer struct {
	Config       config.Config
	GameSessions []*GameSession
	GameRequests chan GameRequest
	Upgrader     *websocket.Upgrader
	nextId       int32
}

type GameSessionState int

const (
	GS_NEW GameSessionState = iota
	GS_PLAY
	GS_ERR
	GS_OVER
)

// GameSession is one maze played by one connection. Everything below is
// owned by the session loop.
type GameSession struct {
	State  GameSessionState
	Config config.Config
	Seed   int64
	Layout *model.Layout
	World  *physics.World
	Game   *game.Session
	UI     *RemoteUI
	Tick   int64

	PlayerSession         *PlayerSession
	Errors                chan int32
	Events                chan PlayerEvent
	PlayerConnectRequests chan PlayerConnectRequest
	Done                  chan struct{}
}

type PlayerSessionState int

const (
	PS_NEW PlayerSessionState = iota + 1
	PS_PLAY
	PS_OVER
	PS_ERR
)

type PlayerSession struct {
	State       PlayerSessionState
	Id          int32
	GameSession *GameSession
	Conn        *websocket.Conn
	GameOver    chan struct{}

	MessagesToSend chan model.ServerMessage

	DebugInMessages  int
	DebugOutMessages int
	DebugLastMessage time.Time
	DebugLastPing    time.Time
	DebugPings       int
}
