package model

type ServerMessage struct {
	Setup    []Setup
	Frames   []Frame
	Commands []Command
}

type Setup struct {
	Layout Layout
	Seed   int64
}

// Frame is one tick of the session world. Walls is only filled once they move.
type Frame struct {
	Tick  int64
	Ball  Vec
	Walls []Vec
	Won   bool
}

type CommandOp int

const (
	CMD_SHOW CommandOp = iota + 1
	CMD_TEXT
	CMD_CLICKABLE
)

type Command struct {
	Op      CommandOp
	Element string
	Text    string
}
