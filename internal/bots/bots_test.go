package bots

import (
	"errors"
	"log/slog"
	"testing"

	"github.com/Garsondee/Ant-Arena/internal/arena"
)

func TestDefaultRoster_Layout(t *testing.T) {
	size := arena.Size{Width: 6, Height: 5}
	left := DefaultRoster(size, arena.TeamLeft, 4)
	if len(left) != 4 {
		t.Fatalf("expected 4 spawns, got %d", len(left))
	}
	if left[0].Role != arena.RoleQueen || left[0].Position != (arena.Point{X: 0, Y: 2}) {
		t.Fatalf("expected queen at (0,2), got %+v", left[0])
	}
	want := []arena.Point{{X: 0, Y: 1}, {X: 0, Y: 3}, {X: 0, Y: 0}}
	for i, p := range want {
		if left[i+1].Position != p || left[i+1].Role != arena.RoleWarrior {
			t.Errorf("spawn %d = %+v, want warrior at %s", i+1, left[i+1], p)
		}
	}
	right := DefaultRoster(size, arena.TeamRight, 2)
	for _, sp := range right {
		if sp.Position.X != 5 {
			t.Errorf("right spawn not in last column: %+v", sp)
		}
	}
}

func TestDefaultRoster_ClampedToColumn(t *testing.T) {
	got := DefaultRoster(arena.Size{Width: 3, Height: 2}, arena.TeamLeft, 10)
	if len(got) != 2 {
		t.Fatalf("expected 2 spawns on a 2-high board, got %d", len(got))
	}
	if DefaultRoster(arena.Size{}, arena.TeamLeft, 3) != nil {
		t.Fatal("expected nil roster on empty board")
	}
}

func newMatch(t *testing.T, left, right arena.Bot, size arena.Size) *arena.GamePlay {
	t.Helper()
	g, err := arena.NewGamePlay(left, right, arena.WithLogger(slog.New(slog.DiscardHandler)))
	if err != nil {
		t.Fatalf("NewGamePlay: %v", err)
	}
	if err := g.Init(size); err != nil {
		t.Fatalf("Init: %v", err)
	}
	return g
}

func TestHunter_AttacksAdjacentEnemy(t *testing.T) {
	size := arena.Size{Width: 3, Height: 3}
	h := NewHunter(arena.TeamLeft, 7, 0, []arena.Spawn{{Role: arena.RoleWarrior, Position: arena.Point{X: 1, Y: 1}}})
	idle := &Idle{Side: arena.TeamRight, Roster: []arena.Spawn{{Role: arena.RoleWarrior, Position: arena.Point{X: 1, Y: 2}}}}
	g := newMatch(t, h, idle, size)

	cmd := h.Command(g.View(), arena.TeamLeft)
	if cmd.Action != arena.ActionAttack || cmd.Course != arena.CourseBottom {
		t.Fatalf("expected attack bottom, got %s", cmd)
	}
}

func TestHunter_ApproachesAlongLargerGap(t *testing.T) {
	size := arena.Size{Width: 8, Height: 3}
	h := NewHunter(arena.TeamLeft, 7, 0, []arena.Spawn{{Role: arena.RoleWarrior, Position: arena.Point{X: 0, Y: 0}}})
	idle := &Idle{Side: arena.TeamRight, Roster: []arena.Spawn{{Role: arena.RoleWarrior, Position: arena.Point{X: 6, Y: 1}}}}
	g := newMatch(t, h, idle, size)

	cmd := h.Command(g.View(), arena.TeamLeft)
	if cmd.Action != arena.ActionMove || cmd.Course != arena.CourseRight {
		t.Fatalf("expected move right, got %s", cmd)
	}
}

func TestHunter_BeatsIdle(t *testing.T) {
	size := arena.Size{Width: 6, Height: 5}
	g := newMatch(t,
		NewHunter(arena.TeamLeft, 3, 3, nil),
		&Idle{Side: arena.TeamRight, Count: 3},
		size)

	for i := 0; i < 200; i++ {
		if arena.Standings(g.View()).Decided() {
			break
		}
		if _, err := g.Step(); err != nil {
			if arena.Finished(err, g.View()) {
				break
			}
			t.Fatalf("round %d: %v", i+1, err)
		}
	}
	o := arena.Standings(g.View())
	if o.Result != arena.ResultLeftVictory {
		t.Fatalf("expected hunter to win within 200 rounds, got %s (%+v)", o.Result, o.Teams)
	}
	t.Log(g.SimLog().Summary(g.RoundNumber(), g.View()))
}

func TestRandom_IsReproducible(t *testing.T) {
	size := arena.Size{Width: 5, Height: 5}
	run := func() []arena.Command {
		a := NewRandom(arena.TeamLeft, 99, 3, nil)
		b := &Idle{Side: arena.TeamRight, Count: 1}
		g := newMatch(t, a, b, size)
		var cmds []arena.Command
		for i := 0; i < 10; i++ {
			cmds = append(cmds, a.Command(g.View(), arena.TeamLeft))
		}
		return cmds
	}
	first, second := run(), run()
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("command %d differs: %s vs %s", i, first[i], second[i])
		}
	}
}

func TestBotsWithoutUnitsNameNoUnit(t *testing.T) {
	size := arena.Size{Width: 3, Height: 3}
	for _, name := range Names() {
		b, err := New(Spec{Name: name, Side: arena.TeamLeft, Roster: []arena.Spawn{}})
		if err != nil {
			t.Fatalf("New(%s): %v", name, err)
		}
		other := &Idle{Side: arena.TeamRight, Count: 1}
		g := newMatch(t, b, other, size)
		if _, err := g.Step(); !errors.Is(err, arena.ErrUnitNotFound) {
			t.Errorf("%s: expected ErrUnitNotFound, got %v", name, err)
		}
	}
}

func TestNew_UnknownName(t *testing.T) {
	if _, err := New(Spec{Name: "genius"}); !errors.Is(err, ErrUnknownBot) {
		t.Fatalf("expected ErrUnknownBot, got %v", err)
	}
}
