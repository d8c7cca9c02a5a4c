package domain

import "sync/atomic"

// Control is the process-wide pause switch shared by the command handlers and
// the scheduler. The zero value is running.
type Control struct {
	paused atomic.Bool
}

func NewControl() *Control {
	return &Control{}
}

func (c *Control) Pause() {
	c.paused.Store(true)
}

func (c *Control) Resume() {
	c.paused.Store(false)
}

func (c *Control) Paused() bool {
	return c.paused.Load()
}
