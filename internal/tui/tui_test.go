package tui

import (
	"log/slog"
	"testing"
	"time"

	"github.com/Garsondee/Ant-Arena/internal/arena"
	"github.com/gdamore/tcell/v2"
)

func newScreen(t *testing.T) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("screen init: %v", err)
	}
	screen.SetSize(40, 12)
	t.Cleanup(screen.Fini)
	return screen
}

func newViewer(t *testing.T, screen tcell.Screen, maxRounds int) (*Viewer, *arena.TestMatch) {
	t.Helper()
	left := arena.ID(arena.TeamLeft, arena.RoleWarrior, 0)
	right := arena.ID(arena.TeamRight, arena.RoleQueen, 0)
	tm, err := arena.NewTestMatch(
		arena.WithBoard(4, 2),
		arena.WithStrength(1),
		arena.WithUnit(arena.TeamLeft, arena.RoleWarrior, 0, 0),
		arena.WithUnit(arena.TeamRight, arena.RoleQueen, 3, 1),
		arena.WithScript(arena.TeamLeft, arena.Command{Course: arena.CourseRight, Action: arena.ActionMove, Unit: left}),
		arena.WithScript(arena.TeamRight, arena.Command{Course: arena.CourseTop, Action: arena.ActionMove, Unit: right}),
	)
	if err != nil {
		t.Fatalf("NewTestMatch: %v", err)
	}
	return New(screen, tm.Game, maxRounds, time.Millisecond, slog.New(slog.DiscardHandler)), tm
}

func cell(t *testing.T, s tcell.SimulationScreen, x, y int) rune {
	t.Helper()
	cells, w, _ := s.GetContents()
	c := cells[y*w+x]
	if len(c.Runes) == 0 {
		return ' '
	}
	return c.Runes[0]
}

func TestDrawBoard(t *testing.T) {
	screen := newScreen(t)
	v, _ := newViewer(t, screen, 0)
	v.Draw()

	want := []string{"W...", "...q"}
	for y, row := range want {
		for x, r := range row {
			if got := cell(t, screen, x, boardTop+y); got != r {
				t.Errorf("cell (%d,%d) = %q, want %q", x, y, got, r)
			}
		}
	}
}

func TestStepKeyPausesAndAdvances(t *testing.T) {
	screen := newScreen(t)
	v, tm := newViewer(t, screen, 0)

	if !v.HandleEvent(tcell.NewEventKey(tcell.KeyRune, 'n', tcell.ModNone)) {
		t.Fatal("n should not quit")
	}
	if !v.paused || tm.Game.RoundNumber() != 1 {
		t.Fatalf("paused=%v round=%d", v.paused, tm.Game.RoundNumber())
	}
	v.Draw()
	if got := cell(t, screen, 1, boardTop); got != 'W' {
		t.Fatalf("expected warrior moved to x=1, got %q", got)
	}
	if got := cell(t, screen, 3, boardTop); got != 'q' {
		t.Fatalf("expected queen moved to top row, got %q", got)
	}
}

func TestQuitKeys(t *testing.T) {
	screen := newScreen(t)
	v, _ := newViewer(t, screen, 0)
	if v.HandleEvent(tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone)) {
		t.Fatal("q should quit")
	}
	if v.HandleEvent(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone)) {
		t.Fatal("Esc should quit")
	}
}

func TestRoundLimitStopsStepping(t *testing.T) {
	screen := newScreen(t)
	v, tm := newViewer(t, screen, 2)
	for i := 0; i < 5; i++ {
		v.step()
	}
	if tm.Game.RoundNumber() != 2 || v.ref.Status() != arena.StatusRoundLimit {
		t.Fatalf("round=%d status=%s", tm.Game.RoundNumber(), v.ref.Status())
	}
}

func TestPollEventsStopsWhenDone(t *testing.T) {
	screen := newScreen(t)
	done := make(chan struct{})
	events := pollEvents(screen, done)

	screen.InjectKey(tcell.KeyRune, 'n', tcell.ModNone)
	timeout := time.After(2 * time.Second)
	for got := false; !got; {
		select {
		case ev := <-events:
			if k, ok := ev.(*tcell.EventKey); ok {
				if k.Rune() != 'n' {
					t.Fatalf("unexpected key %q", k.Rune())
				}
				got = true
			}
		case <-timeout:
			t.Fatal("injected key never arrived")
		}
	}

	// The next event wakes the forwarder, which must notice done and close
	// the channel instead of delivering it.
	close(done)
	screen.InjectKey(tcell.KeyRune, 'x', tcell.ModNone)
	select {
	case ev, ok := <-events:
		if ok {
			t.Fatalf("expected closed channel, got %#v", ev)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("event forwarder did not stop after done was closed")
	}
}
