package server

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/zucenko/mazeball/model"
)

func TestRemoteUIQueuesCommands(t *testing.T) {
	u := NewRemoteUI()
	assert.Nil(t, u.Flush())

	u.SetText("reset", "PLAY AGAIN")
	u.Show("reset")
	assert.Equal(t, []model.Command{
		{Op: model.CMD_TEXT, Element: "reset", Text: "PLAY AGAIN"},
		{Op: model.CMD_SHOW, Element: "reset"},
	}, u.Flush())
	assert.Nil(t, u.Flush())
}

func TestRemoteUIClick(t *testing.T) {
	u := NewRemoteUI()
	assert.False(t, u.Click("reset"))

	u.OnClick("reset", u.Reload)
	assert.Equal(t, []model.Command{{Op: model.CMD_CLICKABLE, Element: "reset"}}, u.Flush())
	assert.False(t, u.TakeReload())

	assert.True(t, u.Click("reset"))
	assert.True(t, u.TakeReload())
	assert.False(t, u.TakeReload())
}
