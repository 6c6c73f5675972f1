// Package tui shows a match in a terminal.
package tui

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/Garsondee/Ant-Arena/internal/arena"
	"github.com/gdamore/tcell/v2"
)

const (
	boardTop = 2
	minStep  = 25 * time.Millisecond
)

var (
	styleEmpty = tcell.StyleDefault.Foreground(tcell.ColorDarkOliveGreen)
	styleLeft  = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
	styleRight = tcell.StyleDefault.Foreground(tcell.ColorBlue).Bold(true)
	styleHUD   = tcell.StyleDefault.Foreground(tcell.ColorYellow)
	styleHelp  = tcell.StyleDefault.Foreground(tcell.ColorGray)
)

// Viewer plays a match on a tcell screen, one round per interval.
type Viewer struct {
	screen   tcell.Screen
	match    *arena.GamePlay
	ref      *arena.Referee
	logger   *slog.Logger
	interval time.Duration
	paused   bool
	last     string
}

// New wraps an initialized screen. maxRounds <= 0 means no limit.
func New(screen tcell.Screen, match *arena.GamePlay, maxRounds int, interval time.Duration, logger *slog.Logger) *Viewer {
	if logger == nil {
		logger = slog.Default()
	}
	if interval < minStep {
		interval = minStep
	}
	return &Viewer{
		screen:   screen,
		match:    match,
		ref:      arena.NewReferee(match, maxRounds),
		logger:   logger,
		interval: interval,
	}
}

// Run polls input and steps the match until the user quits or ctx ends.
func (v *Viewer) Run(ctx context.Context) error {
	ticker := time.NewTicker(v.interval)
	defer ticker.Stop()

	done := make(chan struct{})
	defer close(done)
	events := pollEvents(v.screen, done)

	v.Draw()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-events:
			if !ok || !v.HandleEvent(ev) {
				return nil
			}
			v.Draw()
		case <-ticker.C:
			if !v.paused {
				v.step()
			}
			v.Draw()
		}
	}
}

// pollEvents forwards screen events until the screen is finalized or done
// is closed.
func pollEvents(screen tcell.Screen, done <-chan struct{}) <-chan tcell.Event {
	events := make(chan tcell.Event, 16)
	go func() {
		defer close(events)
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case <-done:
				return
			default:
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()
	return events
}

// HandleEvent applies a key press and reports whether to keep running.
func (v *Viewer) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
			return false
		}
		if ev.Key() == tcell.KeyRune {
			switch ev.Rune() {
			case 'q':
				return false
			case ' ':
				v.paused = !v.paused
			case 'n':
				v.paused = true
				v.step()
			}
		}
	case *tcell.EventResize:
		v.screen.Sync()
	}
	return true
}

func (v *Viewer) step() {
	if !v.ref.Advance() {
		return
	}
	v.last = v.lastEvent()
	if v.ref.Done() {
		if err := v.ref.Err(); err != nil {
			v.logger.Warn("match halted", "round", v.match.RoundNumber(), "err", err)
		}
		v.logger.Info("match over", "status", v.ref.Status(), "rounds", v.match.RoundNumber())
	}
}

func (v *Viewer) lastEvent() string {
	entries := v.match.SimLog().Entries()
	if len(entries) == 0 {
		return ""
	}
	return entries[len(entries)-1].String()
}

// Draw renders the HUD line, the board and the help line.
func (v *Viewer) Draw() {
	v.screen.Clear()
	view := v.match.View()
	o := arena.Standings(view)

	status := v.ref.Status()
	if v.paused && !v.ref.Done() {
		status = "paused"
	}
	v.print(0, 0, styleHUD, fmt.Sprintf("R=%d  left %d (%d)  right %d (%d)  %s",
		v.match.RoundNumber(),
		o.Teams[arena.TeamLeft].Alive, o.Teams[arena.TeamLeft].Strength,
		o.Teams[arena.TeamRight].Alive, o.Teams[arena.TeamRight].Strength,
		status))
	v.print(0, 1, styleHelp, v.last)

	size := view.Size()
	for y := 0; y < size.Height; y++ {
		for x := 0; x < size.Width; x++ {
			r, st := '.', styleEmpty
			if u, ok := view.UnitAt(arena.Point{X: x, Y: y}); ok {
				r, st = arena.Glyph(u), styleLeft
				if u.ID.Team == arena.TeamRight {
					st = styleRight
				}
			}
			v.screen.SetContent(x, boardTop+y, r, nil, st)
		}
	}
	v.print(0, boardTop+size.Height+1, styleHelp, "space pause  n step  q/Esc quit")
	v.screen.Show()
}

func (v *Viewer) print(x, y int, style tcell.Style, s string) {
	for _, r := range s {
		v.screen.SetContent(x, y, r, nil, style)
		x++
	}
}
