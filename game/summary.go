package game

import (
	"fmt"
	"time"

	"circle-snake/game/manager"
)

// Summary describes a finished (or abandoned) session.
type Summary struct {
	UUID      string          `json:"uuid"`
	StartTime time.Time       `json:"start_time"`
	EndTime   time.Time       `json:"end_time"`
	Ticks     int             `json:"ticks"`
	FoodEaten int             `json:"food_eaten"`
	Length    int             `json:"length"`
	Outcome   manager.Outcome `json:"outcome"`
}

// Duration is the time spent running, zero if the session never started.
func (s Summary) Duration() time.Duration {
	if s.StartTime.IsZero() || s.EndTime.IsZero() {
		return 0
	}
	return s.EndTime.Sub(s.StartTime)
}

func (s Summary) String() string {
	return fmt.Sprintf("session %s: %v after %d ticks (%s), ate %d, length %d",
		s.UUID, s.Outcome, s.Ticks, s.Duration().Round(time.Millisecond), s.FoodEaten, s.Length)
}

func (g *Game) Summary() Summary {
	return Summary{
		UUID:      g.UUID,
		StartTime: g.stateMgr.StartTime(),
		EndTime:   g.stateMgr.EndTime(),
		Ticks:     g.stateMgr.Ticks(),
		FoodEaten: g.stateMgr.FoodEaten(),
		Length:    g.snake.Len(),
		Outcome:   g.stateMgr.Outcome(),
	}
}
