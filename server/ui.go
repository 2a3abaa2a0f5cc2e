package server

import (
	log "github.com/sirupsen/logrus"

	"github.com/zucenko/mazeball/model"
)

// RemoteUI collects what the machine asks of the UI and ships it to the
// client as commands with the next message. Clicks come back as client
// messages.
type RemoteUI struct {
	pending  []model.Command
	handlers map[string]func()
	reload   bool
}

func NewRemoteUI() *RemoteUI {
	return &RemoteUI{
		pending:  make([]model.Command, 0),
		handlers: make(map[string]func()),
	}
}

func (u *RemoteUI) Show(element string) {
	u.pending = append(u.pending, model.Command{Op: model.CMD_SHOW, Element: element})
}

func (u *RemoteUI) SetText(element, text string) {
	u.pending = append(u.pending, model.Command{Op: model.CMD_TEXT, Element: element, Text: text})
}

func (u *RemoteUI) OnClick(element string, handler func()) {
	u.handlers[element] = handler
	u.pending = append(u.pending, model.Command{Op: model.CMD_CLICKABLE, Element: element})
}

func (u *RemoteUI) Reload() {
	u.reload = true
}

// Click runs the handler bound to element. Unbound elements are ignored.
func (u *RemoteUI) Click(element string) bool {
	handler, found := u.handlers[element]
	if !found {
		log.Warnf("RemoteUI.Click no handler for %q", element)
		return false
	}
	handler()
	return true
}

// Flush hands out the pending commands.
func (u *RemoteUI) Flush() []model.Command {
	if len(u.pending) == 0 {
		return nil
	}
	cmds := u.pending
	u.pending = make([]model.Command, 0)
	return cmds
}

// TakeReload reports and clears a reload request.
func (u *RemoteUI) TakeReload() bool {
	r := u.reload
	u.reload = false
	return r
}
