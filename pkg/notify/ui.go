package notify

import (
	"github.com/mitchellh/cli"
)

// UI writes messages through a cli.Ui, for the command line frontend.
type UI struct {
	ui cli.Ui
}

var _ Notifier = (*UI)(nil)

func NewUI(ui cli.Ui) *UI {
	return &UI{ui: ui}
}

func (u *UI) Info(msg string)  { u.ui.Info(msg) }
func (u *UI) Error(msg string) { u.ui.Error(msg) }
