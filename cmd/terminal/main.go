package main

import (
	"encoding/gob"
	"flag"
	"os"

	"github.com/gdamore/tcell/v2"
	"github.com/gorilla/websocket"
	log "github.com/sirupsen/logrus"

	"github.com/zucenko/mazeball/chime"
	"github.com/zucenko/mazeball/game"
	"github.com/zucenko/mazeball/model"
	"github.com/zucenko/mazeball/terminal"
)

type client struct {
	con    *websocket.Conn
	screen tcell.Screen
	view   *terminal.View
	sound  *chime.Player
}

func (c *client) send(cm model.ClientMessage) {
	w, err := c.con.NextWriter(websocket.BinaryMessage)
	if err != nil {
		log.Warnf("send cant get writer %v", err)
		return
	}
	if err := gob.NewEncoder(w).Encode(cm); err != nil {
		log.Warnf("send cant encode %v", err)
	}
	if err := w.Close(); err != nil {
		log.Warnf("send cant flush %v", err)
	}
}

func (c *client) readLoop(messages chan<- model.ServerMessage) {
	defer close(messages)
	for {
		_, r, err := c.con.NextReader()
		if err != nil {
			log.Infof("readLoop %v", err)
			return
		}
		m := model.ServerMessage{}
		if err := gob.NewDecoder(r).Decode(&m); err != nil {
			log.Warnf("readLoop cant decode %v", err)
			return
		}
		messages <- m
	}
}

func (c *client) reset() {
	if c.view.Clickable(game.ElementReset) {
		c.send(model.ClientMessage{Click: game.ElementReset})
	}
}

// handle reports false when the player quits.
func (c *client) handle(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC ||
			(ev.Key() == tcell.KeyRune && ev.Rune() == 'q') {
			return false
		}
		if ev.Key() == tcell.KeyEnter || (ev.Key() == tcell.KeyRune && ev.Rune() == 'r') {
			c.reset()
			return true
		}
		if code := terminal.KeyCode(ev); code != 0 {
			c.send(model.ClientMessage{Key: code})
		}
	case *tcell.EventMouse:
		x, y := ev.Position()
		if ev.Buttons()&tcell.Button1 != 0 && c.view.OnButton(x, y) {
			c.reset()
		}
	case *tcell.EventResize:
		c.screen.Sync()
		c.view.Draw()
	}
	return true
}

func (c *client) run() {
	messages := make(chan model.ServerMessage, 16)
	go c.readLoop(messages)

	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := c.screen.PollEvent()
			if ev == nil {
				return
			}
			events <- ev
		}
	}()

	c.view.Draw()
	for {
		select {
		case m, ok := <-messages:
			if !ok {
				return
			}
			won := c.view.Won()
			c.view.Apply(m)
			if !won && c.view.Won() && c.sound != nil {
				c.sound.PlayWin()
			}
			c.view.Draw()
		case ev := <-events:
			if !c.handle(ev) {
				return
			}
		}
	}
}

func main() {
	addr := flag.String("addr", "ws://localhost:8080/play", "session endpoint")
	mute := flag.Bool("mute", false, "no sound")
	logFile := flag.String("log", "", "log to this file, the screen is taken")
	flag.Parse()

	log.SetOutput(os.Stderr)
	if *logFile != "" {
		f, err := os.OpenFile(*logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			log.Fatalf("log file: %v", err)
		}
		defer f.Close()
		log.SetOutput(f)
	}

	con, _, err := websocket.DefaultDialer.Dial(*addr, nil)
	if err != nil {
		log.Fatalf("dial %s: %v", *addr, err)
	}
	defer con.Close()

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("screen: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.Fatalf("screen init: %v", err)
	}
	screen.EnableMouse()
	if *logFile == "" {
		log.SetLevel(log.ErrorLevel)
	}

	c := &client{con: con, screen: screen, view: terminal.NewView(screen)}
	if !*mute {
		c.sound = chime.NewPlayer()
		defer c.sound.Close()
	}
	c.run()
	screen.Fini()
}
