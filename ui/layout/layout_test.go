package layout

import (
	"strings"
	"testing"
	"time"

	"circle-snake/game"
	"circle-snake/game/types"

	"golang.org/x/exp/rand"
)

func TestBorderMatchesWallRule(t *testing.T) {
	cfg := types.DefaultConfig()
	b := cfg.BorderWidth

	cases := []struct {
		x, y int
		want bool
	}{
		{b - 1, 100, true},
		{b, 100, false},
		{100, b - 1, true},
		{100, b, false},
		{cfg.WindowWidth - b - 1, 100, false},
		{cfg.WindowWidth - b, 100, true},
		{100, cfg.WindowHeight - b, true},
		{cfg.WindowWidth - 1, cfg.WindowHeight - 1, true},
		{400, 400, false},
	}
	for _, c := range cases {
		if got := InBorder(cfg, c.x, c.y); got != c.want {
			t.Errorf("InBorder(%d, %d) = %v, want %v", c.x, c.y, got, c.want)
		}
	}
}

func TestCentre(t *testing.T) {
	x, y := Centre(types.Point{X: 100, Y: 200}, 10)
	if x != 110 || y != 210 {
		t.Errorf("got (%v, %v), want (110, 210)", x, y)
	}
}

func TestCell(t *testing.T) {
	cases := []struct {
		p        types.Point
		col, row int
	}{
		{types.Point{X: 100, Y: 120}, 5, 6},
		{types.Point{X: 0, Y: 0}, 0, 0},
		{types.Point{X: 19, Y: 21}, 0, 1},
		{types.Point{X: -20, Y: -1}, -1, -1},
	}
	for _, c := range cases {
		col, row := Cell(c.p, 20)
		if col != c.col || row != c.row {
			t.Errorf("Cell(%v) = (%d, %d), want (%d, %d)", c.p, col, row, c.col, c.row)
		}
	}
}

func TestStatusLine(t *testing.T) {
	now := time.Unix(0, 0)
	g := game.NewGame(types.DefaultConfig(), rand.New(rand.NewSource(1)), now)
	if s := StatusLine(g); !strings.Contains(s, "SPACE") {
		t.Errorf("before start got %q", s)
	}

	g.HandleInput(game.InputStart, now)
	if s := StatusLine(g); s != "Length: 1" {
		t.Errorf("running got %q, want %q", s, "Length: 1")
	}

	g.HandleInput(game.InputQuit, now)
	if s := StatusLine(g); s != "Game over: quit (length 1)" {
		t.Errorf("ended got %q", s)
	}
}
