// Package view is the windowed match viewer.
package view

import (
	"fmt"
	"image/color"
	"log/slog"

	"github.com/Garsondee/Ant-Arena/internal/arena"
	"github.com/atotto/clipboard"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

const (
	cellSize  = 40
	hudHeight = 36
	minHeight = 320
)

// speeds are rounds per second.
var speeds = []float64{0.5, 1, 2, 4, 8, 16}

// Game implements ebiten.Game around a ready match.
type Game struct {
	match  *arena.GamePlay
	ref    *arena.Referee
	events *EventLog
	logger *slog.Logger

	paused   bool
	speedIdx int
	accum    float64
	notice   string

	face   text.Face
	width  int
	height int
}

// New wraps match. maxRounds <= 0 means no round limit.
func New(match *arena.GamePlay, events *EventLog, maxRounds int, logger *slog.Logger) *Game {
	if logger == nil {
		logger = slog.Default()
	}
	size := match.View().Size()
	g := &Game{
		match:    match,
		ref:      arena.NewReferee(match, maxRounds),
		events:   events,
		logger:   logger,
		speedIdx: 2,
		face:     text.NewGoXFace(basicfont.Face7x13),
		width:    size.Width*cellSize + logPanelWidth,
		height:   size.Height*cellSize + hudHeight,
	}
	if g.height < minHeight {
		g.height = minHeight
	}
	return g
}

// WindowSize is the preferred window size for the board.
func (g *Game) WindowSize() (int, int) { return g.width, g.height }

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	g.handleInput()

	if g.paused || g.ref.Done() {
		return nil
	}
	g.accum += speeds[g.speedIdx] / float64(ebiten.TPS())
	for g.accum >= 1.0 && !g.ref.Done() {
		g.accum -= 1.0
		g.advance()
	}
	return nil
}

func (g *Game) handleInput() {
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.paused = true
		g.advance()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEqual) || inpututil.IsKeyJustPressed(ebiten.KeyKPAdd) {
		g.faster()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyMinus) || inpututil.IsKeyJustPressed(ebiten.KeyKPSubtract) {
		g.slower()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		if err := clipboard.WriteAll(g.Dump()); err != nil {
			g.logger.Warn("clipboard copy failed", "err", err)
			g.notice = "clipboard unavailable"
		} else {
			g.notice = "board copied"
		}
	}
}

func (g *Game) faster() {
	if g.speedIdx < len(speeds)-1 {
		g.speedIdx++
	}
}

func (g *Game) slower() {
	if g.speedIdx > 0 {
		g.speedIdx--
	}
}

// advance plays one round unless the referee has called the match.
func (g *Game) advance() {
	if !g.ref.Advance() || !g.ref.Done() {
		return
	}
	if err := g.ref.Err(); err != nil {
		g.logger.Warn("match halted", "round", g.match.RoundNumber(), "err", err)
		g.events.Add(g.match.RoundNumber(), "--", arena.TeamLeft, "halted: "+err.Error())
	}
	g.logger.Info("match over", "status", g.ref.Status(), "rounds", g.match.RoundNumber())
}

// Dump is the text copied to the clipboard: header, board and journal
// summary.
func (g *Game) Dump() string {
	v := g.match.View()
	return fmt.Sprintf("match %s round %d (%s)\n%s\n%s",
		g.match.ID(), g.match.RoundNumber(), g.ref.Status(),
		arena.BoardText(v),
		g.match.SimLog().Summary(g.match.RoundNumber(), v))
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{R: 24, G: 20, B: 14, A: 255})
	g.drawBoard(screen)
	g.drawHUD(screen)
	g.events.Draw(screen, g.width-logPanelWidth, g.height)
}

func (g *Game) drawBoard(screen *ebiten.Image) {
	v := g.match.View()
	size := v.Size()
	bw, bh := float32(size.Width*cellSize), float32(size.Height*cellSize)
	vector.FillRect(screen, 0, hudHeight, bw, bh, color.RGBA{R: 92, G: 70, B: 44, A: 255}, false)
	for x := 0; x <= size.Width; x++ {
		fx := float32(x * cellSize)
		vector.StrokeLine(screen, fx, hudHeight, fx, hudHeight+bh, 1, color.RGBA{R: 60, G: 45, B: 28, A: 255}, false)
	}
	for y := 0; y <= size.Height; y++ {
		fy := float32(hudHeight + y*cellSize)
		vector.StrokeLine(screen, 0, fy, bw, fy, 1, color.RGBA{R: 60, G: 45, B: 28, A: 255}, false)
	}

	for _, u := range v.Units() {
		cx := float32(u.Position.X*cellSize + cellSize/2)
		cy := float32(hudHeight + u.Position.Y*cellSize + cellSize/2)
		r := float32(cellSize) * 0.32
		vector.FillCircle(screen, cx, cy, r, teamColor(u.ID.Team), true)
		if u.ID.Local.Role == arena.RoleQueen {
			vector.StrokeCircle(screen, cx, cy, r+3, 2, color.RGBA{R: 240, G: 210, B: 90, A: 255}, true)
		}
		op := &text.DrawOptions{}
		op.GeoM.Translate(float64(cx)-3, float64(cy)-7)
		text.Draw(screen, fmt.Sprintf("%d", u.Strength), g.face, op)
	}
}

func (g *Game) drawHUD(screen *ebiten.Image) {
	o := arena.Standings(g.match.View())
	speed := fmt.Sprintf("%gr/s", speeds[g.speedIdx])
	if g.paused {
		speed = "PAUSED"
	}
	line := fmt.Sprintf("R=%d  %s  left %d (%d)  right %d (%d)  %s %s",
		g.match.RoundNumber(), speed,
		o.Teams[arena.TeamLeft].Alive, o.Teams[arena.TeamLeft].Strength,
		o.Teams[arena.TeamRight].Alive, o.Teams[arena.TeamRight].Strength,
		g.ref.Status(), g.notice)
	vector.FillRect(screen, 0, 0, float32(g.width-logPanelWidth), hudHeight, color.RGBA{R: 10, G: 8, B: 6, A: 230}, false)
	op := &text.DrawOptions{}
	op.GeoM.Translate(6, 4)
	text.Draw(screen, line, g.face, op)
	op = &text.DrawOptions{}
	op.GeoM.Translate(6, 19)
	op.ColorScale.ScaleWithColor(color.RGBA{R: 170, G: 160, B: 140, A: 255})
	text.Draw(screen, "space pause  N step  +/- speed  C copy  Esc quit", g.face, op)
}

func (g *Game) Layout(_, _ int) (int, int) {
	return g.width, g.height
}

func teamColor(t arena.Team) color.RGBA {
	if t == arena.TeamLeft {
		return color.RGBA{R: 210, G: 70, B: 70, A: 255}
	}
	return color.RGBA{R: 70, G: 110, B: 210, A: 255}
}
