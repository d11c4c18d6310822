// Package terminal draws the board in a terminal, one cell per step-sized
// grid point, and feeds key presses back into the game.
package terminal

import (
	"fmt"
	"time"

	"circle-snake/game"
	"circle-snake/game/types"
	"circle-snake/ui/layout"

	"github.com/gdamore/tcell/v2"
)

var (
	borderStyle = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	headStyle   = tcell.StyleDefault.Foreground(tcell.ColorGreen).Bold(true)
	bodyStyle   = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	foodStyle   = tcell.StyleDefault.Foreground(tcell.ColorRed)
	statusStyle = tcell.StyleDefault.Foreground(tcell.ColorYellow)
)

const (
	borderRune = '█'
	headRune   = '@'
	bodyRune   = 'o'
	foodRune   = '*'
)

type Frontend struct {
	screen tcell.Screen
	cfg    types.Config
}

func New(screen tcell.Screen, cfg types.Config) *Frontend {
	return &Frontend{screen: screen, cfg: cfg}
}

// Run opens the terminal, plays g to the end and restores the terminal.
func Run(g *game.Game) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}

	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			panic(r)
		}
		screen.Fini()
	}()

	New(screen, g.Config).Loop(g)
	return nil
}

// Loop polls events and redraws at the configured frame rate until g ends.
func (f *Frontend) Loop(g *game.Game) {
	ticker := time.NewTicker(time.Second / time.Duration(f.cfg.FrameRate))
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	done := make(chan struct{})
	defer close(done)
	go func() {
		for {
			ev := f.screen.PollEvent()
			if ev == nil {
				return // screen finalized
			}
			select {
			case eventChan <- ev:
			case <-done:
				return
			}
		}
	}()

	f.Draw(g)
	for !g.Ended() {
		select {
		case ev := <-eventChan:
			f.handleEvent(g, ev)

		case <-ticker.C:
			g.Frame(time.Now())
			f.Draw(g)
		}
	}
}

func (f *Frontend) handleEvent(g *game.Game, ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if in := inputFor(ev.Key(), ev.Rune()); in != game.InputNone {
			g.HandleInput(in, time.Now())
		}
	case *tcell.EventResize:
		f.screen.Sync()
	}
}

// inputFor maps a terminal key press to a game input.
func inputFor(key tcell.Key, r rune) game.Input {
	switch key {
	case tcell.KeyUp:
		return game.InputUp
	case tcell.KeyRight:
		return game.InputRight
	case tcell.KeyDown:
		return game.InputDown
	case tcell.KeyLeft:
		return game.InputLeft
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return game.InputQuit
	case tcell.KeyRune:
		if r == ' ' {
			return game.InputStart
		}
	}
	return game.InputNone
}

// Draw renders g onto the screen. It never mutates g.
func (f *Frontend) Draw(g *game.Game) {
	f.screen.Clear()

	cols, rows := f.cfg.Columns(), f.cfg.Rows()
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			if layout.InBorder(f.cfg, col*f.cfg.Step, row*f.cfg.Step) {
				f.screen.SetContent(col, row, borderRune, nil, borderStyle)
			}
		}
	}

	col, row := layout.Cell(g.GetFood(), f.cfg.Step)
	f.screen.SetContent(col, row, foodRune, nil, foodStyle)

	segments := g.Segments()
	for i := len(segments) - 1; i >= 0; i-- {
		col, row := layout.Cell(segments[i].Pos, f.cfg.Step)
		if i == 0 {
			f.screen.SetContent(col, row, headRune, nil, headStyle)
		} else {
			f.screen.SetContent(col, row, bodyRune, nil, bodyStyle)
		}
	}

	for i, r := range layout.StatusLine(g) {
		f.screen.SetContent(i, rows, r, nil, statusStyle)
	}

	f.screen.Show()
}
