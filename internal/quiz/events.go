package quiz

import "time"

const (
	EventGameStarted   = "game_started"
	EventGameCompleted = "game_completed"
)

// GameEvent is the fire-and-forget analytics payload emitted at session
// start and completion. Consumers must never block game flow; delivery is
// best effort through a buffered bus.
type GameEvent struct {
	Kind   string
	Mode   Mode
	Region string
	Score  int
	Rounds int
	At     time.Time
}
