package main

import (
	"github.com/zucenko/mazeball/game"
)

// screenUI is what the machine can ask of the window: banners shown, texts
// set and click handlers bound to elements.
type screenUI struct {
	shown    map[string]bool
	texts    map[string]string
	handlers map[string]func()
	reload   bool
	// onShow lets the game animate an element when it appears
	onShow func(element string)
}

func newScreenUI(onShow func(string)) *screenUI {
	return &screenUI{
		shown:    make(map[string]bool),
		texts:    make(map[string]string),
		handlers: make(map[string]func()),
		onShow:   onShow,
	}
}

func (u *screenUI) Show(element string) {
	u.shown[element] = true
	if u.onShow != nil {
		u.onShow(element)
	}
}

func (u *screenUI) SetText(element, text string) { u.texts[element] = text }

func (u *screenUI) OnClick(element string, handler func()) { u.handlers[element] = handler }

func (u *screenUI) Reload() { u.reload = true }

func (u *screenUI) click(element string) {
	if h, ok := u.handlers[element]; ok {
		h()
	}
}

var _ game.UI = (*screenUI)(nil)
