package server

import (
	"encoding/gob"
	"net"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/gorilla/websocket"
	log "github.com/sirupsen/logrus"

	"github.com/zucenko/mazeball/config"
	"github.com/zucenko/mazeball/game"
	"github.com/zucenko/mazeball/model"
	"github.com/zucenko/mazeball/physics"
)

const sendTimeout = 200 * time.Millisecond

func NewGameServer(cfg config.Config) *GameServer {
	return &GameServer{
		Config:       cfg,
		GameSessions: make([]*GameSession, 0),
		GameRequests: make(chan GameRequest),
		Upgrader:     &websocket.Upgrader{},
	}
}

func (s *GameServer) HandleHttpCall() http.HandlerFunc {
	timeout := 200 * time.Millisecond
	return func(w http.ResponseWriter, r *http.Request) {
		log.Printf("HandleHttpCall - Conection received")

		gcas := make(chan GameContextAwaiting, 1)
		select {
		case s.GameRequests <- GameRequest{GameContextAwaiting: gcas}:
			log.Printf("HandleHttpCall -> GameServer.GameRequests")
		case <-time.After(timeout):
			log.Warn("GameRequests TIMEOUTED")
			w.WriteHeader(HTTP_TIMEOUT)
			return
		}

		var gca GameContextAwaiting
		select {
		case gca = <-gcas:
			log.Printf("HandleHttpCall GameContextAwaiting <- code:%d", gca.ResponseCode)
			if gca.ResponseCode != GAME_READY {
				w.WriteHeader(gca.ResponseCode.ToHttp())
				return
			}
		case <-time.After(timeout):
			log.Warnf("HandleHttpCall GameContextAwaiting <- TIMEOUTED")
			w.WriteHeader(HTTP_TIMEOUT)
			return
		}

		log.Info("HandleHttpCall lets upgrade websocket")
		con, err := s.Upgrader.Upgrade(w, r, nil)
		if err != nil {
			// Upgrade already replied with an error status
			log.Printf("HandleHttpCall websocket upgrade err %v", err)
			close(gca.GameSession.PlayerConnectRequests)
			return
		}
		defer con.Close()

		gameOver := make(chan struct{})
		pcr := PlayerConnectRequest{
			Id:       atomic.AddInt32(&s.nextId, 1),
			Con:      con,
			GameOver: gameOver}
		if !gca.GameSession.connect(pcr, timeout) {
			return
		}

		log.Info("HandleHttpCall and wait for gameover")
		<-gameOver
	}
}

func (s *GameServer) Loop() {
	log.Printf("GameServer.Loop starting")
	for {
		select {
		case gameReq := <-s.GameRequests:
			s.prune()
			gs, err := NewGameSession(s.Config)
			if err != nil {
				log.Errorf("GameServer.Loop cant create GameSession: %v", err)
				gameReq.GameContextAwaiting <- GameContextAwaiting{ResponseCode: GAME_INVALIDE}
				continue
			}
			go gs.Loop()
			s.GameSessions = append(s.GameSessions, gs)
			log.WithField("sessions", len(s.GameSessions)).Info("GameServer.Loop created GameSession")

			gameReq.GameContextAwaiting <- GameContextAwaiting{
				ResponseCode: GAME_READY,
				GameSession:  gs,
			}
		}
	}
}

// prune forgets sessions whose loop has ended.
func (s *GameServer) prune() {
	live := s.GameSessions[:0]
	for _, gs := range s.GameSessions {
		select {
		case <-gs.Done:
		default:
			live = append(live, gs)
		}
	}
	s.GameSessions = live
}

func NewGameSession(cfg config.Config) (*GameSession, error) {
	gs := &GameSession{
		State:                 GS_NEW,
		Config:                cfg,
		Errors:                make(chan int32),
		Events:                make(chan PlayerEvent),
		PlayerConnectRequests: make(chan PlayerConnectRequest),
		Done:                  make(chan struct{}),
	}
	if err := gs.reload(); err != nil {
		return nil, err
	}
	return gs, nil
}

// reload replaces the maze, the world and the machine.
func (gs *GameSession) reload() error {
	layout, seed, err := Load(gs.Config)
	if err != nil {
		return err
	}
	gs.Layout, gs.Seed = layout, seed
	gs.World = physics.NewWorld(gs.Config.FrictionAir)
	gs.UI = NewRemoteUI()
	gs.Game = game.NewSession(layout, gs.World, gs.UI, gs.Config.Options())
	gs.Tick = 0
	// only the first maze follows the configured seed
	gs.Config.Seed = 0
	return nil
}

// connect hands the player to the session loop. When the loop does not take
// it in time the request channel is closed so the loop ends too.
func (gs *GameSession) connect(pcr PlayerConnectRequest, timeout time.Duration) bool {
	select {
	case gs.PlayerConnectRequests <- pcr:
		return true
	case <-time.After(timeout):
		log.Warn("HandleHttpCall PlayerConnectRequests TIMEOUTED")
		close(gs.PlayerConnectRequests)
		return false
	}
}

func (gs *GameSession) Loop() {
	log.Info("GameSession.Loop start")
	ticker := time.NewTicker(time.Second / time.Duration(gs.Config.TickRate))
	defer ticker.Stop()
	defer close(gs.Done)
	for {
		select {
		case pcr, ok := <-gs.PlayerConnectRequests:
			if !ok {
				log.Warn("GameSession.Loop connect aborted")
				gs.State = GS_OVER
				return
			}
			if gs.PlayerSession != nil {
				log.Warn("GameSession.Loop already has a player")
				close(pcr.GameOver)
				continue
			}
			gs.addPlayer(pcr.Id, pcr.Con, pcr.GameOver)
			gs.State = GS_PLAY
			gs.PlayerSession.State = PS_PLAY
			gs.send(gs.MakeGameSetupMessage(), true)
		case errPlayer := <-gs.Errors:
			log.Warnf("killing GS, player %d", errPlayer)
			gs.State = GS_ERR
			gs.PlayerSession.State = PS_ERR
			close(gs.PlayerSession.MessagesToSend)
			close(gs.PlayerSession.GameOver)
			return
		case pe := <-gs.Events:
			if msg := gs.Turn(pe); msg != nil {
				gs.send(*msg, true)
			}
		case <-ticker.C:
			if gs.State != GS_PLAY {
				continue
			}
			msg := gs.Step()
			gs.send(msg, len(msg.Commands) > 0)
		}
	}
}

// Turn applies one client message. A click on an armed reset carves a new
// maze and answers with its setup.
func (gs *GameSession) Turn(pe PlayerEvent) *model.ServerMessage {
	cm := pe.Message
	if cm.Click != "" {
		gs.UI.Click(cm.Click)
		if gs.UI.TakeReload() {
			log.WithField("player", pe.Player).Info("GameSession.Turn reload")
			if err := gs.reload(); err != nil {
				log.Errorf("GameSession.Turn reload failed: %v", err)
				return nil
			}
			msg := gs.MakeGameSetupMessage()
			return &msg
		}
	}
	if cm.Key != 0 {
		gs.Game.OnKeyDown(cm.Key)
	}
	if cmds := gs.UI.Flush(); cmds != nil {
		return &model.ServerMessage{Commands: cmds}
	}
	return nil
}

// Step advances the world one tick and reports where things are.
func (gs *GameSession) Step() model.ServerMessage {
	gs.Tick++
	gs.Game.OnCollisionStart(game.LabelPairs(gs.World.Step()))

	won := gs.Game.State() == game.WON
	frame := model.Frame{
		Tick: gs.Tick,
		Ball: gs.World.Body(gs.Game.Ball).Position(),
		Won:  won,
	}
	if won {
		frame.Walls = make([]model.Vec, 0, len(gs.Game.Walls))
		for _, id := range gs.Game.Walls {
			frame.Walls = append(frame.Walls, gs.World.Body(id).Position())
		}
	}
	return model.ServerMessage{
		Frames:   []model.Frame{frame},
		Commands: gs.UI.Flush(),
	}
}

func (gs *GameSession) MakeGameSetupMessage() model.ServerMessage {
	return model.ServerMessage{
		Setup: []model.Setup{{Layout: *gs.Layout, Seed: gs.Seed}},
	}
}

// send queues a message for the player. Frames may be dropped when the
// writer lags, everything else waits a little.
func (gs *GameSession) send(m model.ServerMessage, must bool) {
	ps := gs.PlayerSession
	if must {
		select {
		case ps.MessagesToSend <- m:
		case <-time.After(sendTimeout):
			log.Warnf("GameSession.send TIMEOUTED player:%d", ps.Id)
		}
		return
	}
	select {
	case ps.MessagesToSend <- m:
	default:
		log.Debugf("GameSession.send dropping frame %d", gs.Tick)
	}
}

func (gs *GameSession) fail(player int32) {
	select {
	case gs.Errors <- player:
	case <-gs.Done:
	}
}

func (gs *GameSession) addPlayer(
	id int32,
	conn *websocket.Conn,
	gameOver chan struct{},
) {
	log.Printf("GameSession.addPlayer %d", id)
	ps := &PlayerSession{
		State:          PS_NEW,
		Id:             id,
		GameSession:    gs,
		Conn:           conn,
		GameOver:       gameOver,
		MessagesToSend: make(chan model.ServerMessage, 10),
	}
	conn.SetPingHandler(
		func(message string) error {
			err := conn.WriteControl(websocket.PongMessage, []byte(message), time.Now().Add(time.Second))
			ps.DebugLastPing = time.Now()
			ps.DebugPings++
			if err == websocket.ErrCloseSent {
				return nil
			} else if e, ok := err.(net.Error); ok && e.Timeout() {
				return nil
			}
			return err
		})
	// start processing input from the client
	go ps.LoopChannelRead()
	// start sending from server
	go ps.LoopChannelWrite()
	gs.PlayerSession = ps
}

func (ps *PlayerSession) LoopChannelRead() {
	log.Printf("LoopChannelRead STARTED")
	gs := ps.GameSession
loop:
	for {
		messageType, r, err := ps.Conn.NextReader()
		if err != nil {
			log.Printf("LoopChannelRead err reading message from Conn %v", err)
			gs.fail(ps.Id)
			break loop
		}
		log.Debugf("LoopChannelRead received message type: %d", messageType)
		cm := model.ClientMessage{}
		if err := gob.NewDecoder(r).Decode(&cm); err != nil {
			log.Warnf("LoopChannelRead cant decode %v", err)
			gs.fail(ps.Id)
			break loop
		}
		ps.DebugLastMessage = time.Now()
		ps.DebugInMessages++

		select {
		case gs.Events <- PlayerEvent{Player: ps.Id, Message: cm}:
		case <-gs.Done:
			break loop
		}
	}
	log.Printf("LoopChannelRead ENDED")
}

// this function only consumes. no worries about full buffer stuck
func (ps *PlayerSession) LoopChannelWrite() {
	log.Printf("PlayerSession.LoopChannelWrite STARTED")
	for mes := range ps.MessagesToSend {
		w, err := ps.Conn.NextWriter(websocket.BinaryMessage)
		if err != nil {
			log.Warnf("PlayerSession.LoopChannelWrite cant get writer %v", err)
			ps.GameSession.fail(ps.Id)
			break
		}
		if err := gob.NewEncoder(w).Encode(mes); err != nil {
			log.Warnf("PlayerSession.LoopChannelWrite cant encode %v", err)
			ps.GameSession.fail(ps.Id)
			break
		}
		if err := w.Close(); err != nil {
			log.Warnf("PlayerSession.LoopChannelWrite cant flush %v", err)
			ps.GameSession.fail(ps.Id)
			break
		}
		ps.DebugOutMessages++
	}
	log.Printf("LoopChannelWrite ENDED")
}
