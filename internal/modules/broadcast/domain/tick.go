package domain

import "time"

// TickReport summarizes one scheduler tick.
type TickReport struct {
	ID        string        `json:"id"`
	StartedAt time.Time     `json:"started_at"`
	Duration  time.Duration `json:"duration"`
	Paused    bool          `json:"paused"`
	Channels  int           `json:"channels"`
	Sent      int           `json:"sent"`
	Failed    []string      `json:"failed,omitempty"`
}
