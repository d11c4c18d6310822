package ui

import (
	"circle-snake/game"
	"circle-snake/game/entity"
	"circle-snake/game/types"
	"circle-snake/ui/layout"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const fontSize = 16

type Renderer struct {
	cfg       types.Config
	foodShape entity.Shape
}

func NewRenderer(cfg types.Config) *Renderer {
	return &Renderer{
		cfg:       cfg,
		foodShape: entity.Shape{Radius: cfg.Radius, Sides: cfg.CircleSides, Color: types.Red},
	}
}

func toRaylib(c types.Color) rl.Color {
	return rl.NewColor(c.R, c.G, c.B, 255)
}

// Draw renders whatever state g currently holds. It never mutates g.
func (r *Renderer) Draw(g *game.Game) {
	rl.BeginDrawing()
	rl.ClearBackground(rl.White)

	segments := g.Segments()

	// Head, border, food, then the rest of the body.
	r.drawShape(segments[0].Pos, segments[0].Shape)
	r.drawBorder()
	r.drawShape(g.GetFood(), r.foodShape)
	for _, seg := range segments[1:] {
		r.drawShape(seg.Pos, seg.Shape)
	}

	r.drawStatus(g)
	rl.EndDrawing()
}

func (r *Renderer) drawShape(pos types.Point, shape entity.Shape) {
	x, y := layout.Centre(pos, shape.Radius)
	rl.DrawPoly(rl.Vector2{X: x, Y: y}, int32(shape.Sides), float32(shape.Radius), 0, toRaylib(shape.Color))
}

func (r *Renderer) drawBorder() {
	for _, b := range layout.Border(r.cfg) {
		rl.DrawRectangle(int32(b.X), int32(b.Y), int32(b.W), int32(b.H), rl.Black)
	}
}

func (r *Renderer) drawStatus(g *game.Game) {
	text := layout.StatusLine(g)
	x := int32(r.cfg.BorderWidth + 5)
	y := int32(r.cfg.BorderWidth + 5)
	if !g.Started() {
		// centre the start hint
		x = (int32(r.cfg.WindowWidth) - rl.MeasureText(text, fontSize)) / 2
		y = int32(r.cfg.WindowHeight) / 2
	}
	rl.DrawText(text, x, y, fontSize, rl.DarkGray)
}
