package model

// ClientMessage carries one key press or one click on a UI element.
type ClientMessage struct {
	Key   int
	Click string
}
