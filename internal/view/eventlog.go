package view

import (
	"fmt"
	"image/color"

	"github.com/Garsondee/Ant-Arena/internal/arena"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	logPanelWidth = 300
	logMaxEntries = 60
	logLineHeight = 11
)

// Event is a single line in the event log.
type Event struct {
	Round   int
	Label   string // e.g. "L-W0"
	Team    arena.Team
	Message string
}

func (e Event) String() string {
	return fmt.Sprintf("%4d [%s] %s", e.Round, e.Label, e.Message)
}

// EventLog is a ring buffer of match events rendered beside the board.
type EventLog struct {
	entries []Event
	head    int
	count   int
}

// NewEventLog creates an event log with a fixed capacity.
func NewEventLog() *EventLog {
	return &EventLog{
		entries: make([]Event, logMaxEntries),
	}
}

// Add appends an entry, overwriting the oldest once full.
func (l *EventLog) Add(round int, label string, team arena.Team, msg string) {
	l.entries[l.head] = Event{
		Round:   round,
		Label:   label,
		Team:    team,
		Message: msg,
	}
	l.head = (l.head + 1) % logMaxEntries
	if l.count < logMaxEntries {
		l.count++
	}
}

// Recent returns entries oldest first.
func (l *EventLog) Recent() []Event {
	result := make([]Event, l.count)
	for i := 0; i < l.count; i++ {
		idx := (l.head - l.count + i + logMaxEntries) % logMaxEntries
		result[i] = l.entries[idx]
	}
	return result
}

// Hooks returns match options that feed the log. round reports the round
// in progress when a hook fires.
func (l *EventLog) Hooks(round func() int) []arena.Option {
	return []arena.Option{
		arena.WithActionHook(func(r arena.ActionResult) {
			l.Add(round(), r.Command.Unit.Label(), r.Team, Describe(r))
		}),
		arena.WithRemoveHook(func(u arena.UnitView) {
			l.Add(round(), u.ID.Label(), u.ID.Team, fmt.Sprintf("removed at %s", u.Position))
		}),
	}
}

// Describe renders an action result as a short phrase.
func Describe(r arena.ActionResult) string {
	switch r.Command.Action {
	case arena.ActionAttack:
		if !r.Applied {
			return fmt.Sprintf("attack %s: miss", r.Command.Course)
		}
		return fmt.Sprintf("attack %s: hit", r.Command.Course)
	default:
		if !r.Applied {
			return fmt.Sprintf("move %s: blocked", r.Command.Course)
		}
		return fmt.Sprintf("move %s", r.Command.Course)
	}
}

// Draw renders the log panel at panelX, newest entry at the bottom.
func (l *EventLog) Draw(screen *ebiten.Image, panelX int, panelH int) {
	vector.FillRect(screen, float32(panelX), 0, float32(logPanelWidth), float32(panelH), color.RGBA{R: 12, G: 10, B: 8, A: 248}, false)
	vector.StrokeLine(screen, float32(panelX), 0, float32(panelX), float32(panelH), 1.0, color.RGBA{R: 70, G: 60, B: 45, A: 255}, false)

	vector.FillRect(screen, float32(panelX), 0, float32(logPanelWidth), 16, color.RGBA{R: 30, G: 24, B: 18, A: 255}, false)
	ebitenutil.DebugPrintAt(screen, "EVENTS", panelX+8, 0)

	entries := l.Recent()
	maxVisible := (panelH - 24) / logLineHeight
	if maxVisible < 0 {
		maxVisible = 0
	}
	start := 0
	if len(entries) > maxVisible {
		start = len(entries) - maxVisible
	}

	y := 20
	for _, e := range entries[start:] {
		vector.FillRect(screen, float32(panelX+5), float32(y+3), 3, 5, teamColor(e.Team), false)
		ebitenutil.DebugPrintAt(screen, e.String(), panelX+12, y-3)
		y += logLineHeight
	}
}
