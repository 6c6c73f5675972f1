package arena

import (
	"errors"
	"math"
	"testing"
)

func TestNewRegistry_AssignsIDsInDeclarationOrder(t *testing.T) {
	reg, err := NewRegistry(Size{Width: 5, Height: 5}, 2, [][]Spawn{
		{
			{Role: RoleWarrior, Position: Point{0, 0}},
			{Role: RoleQueen, Position: Point{0, 1}},
			{Role: RoleWarrior, Position: Point{0, 2}},
		},
		{
			{Role: RoleWarrior, Position: Point{4, 0}},
		},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if reg.Len() != 4 {
		t.Fatalf("expected 4 units, got %d", reg.Len())
	}

	want := map[UnitID]Point{
		ID(TeamLeft, RoleWarrior, 0):  {0, 0},
		ID(TeamLeft, RoleQueen, 0):    {0, 1},
		ID(TeamLeft, RoleWarrior, 1):  {0, 2},
		ID(TeamRight, RoleWarrior, 0): {4, 0},
	}
	for id, pos := range want {
		u, ok := reg.Lookup(id)
		if !ok {
			t.Fatalf("%s not found", id)
		}
		if u.Position != pos {
			t.Errorf("%s at %s, want %s", id, u.Position, pos)
		}
		if u.Strength != 2 {
			t.Errorf("%s strength %d, want 2", id, u.Strength)
		}
	}
}

func TestNewRegistry_RejectsOverlap(t *testing.T) {
	_, err := NewRegistry(Size{Width: 3, Height: 3}, 1, [][]Spawn{
		{{Role: RoleWarrior, Position: Point{1, 1}}},
		{{Role: RoleWarrior, Position: Point{1, 1}}},
	})
	if !errors.Is(err, ErrCellOccupied) {
		t.Fatalf("expected ErrCellOccupied, got %v", err)
	}
}

func TestNewRegistry_RejectsOutOfBounds(t *testing.T) {
	_, err := NewRegistry(Size{Width: 3, Height: 3}, 1, [][]Spawn{
		{{Role: RoleQueen, Position: Point{3, 0}}},
	})
	if !errors.Is(err, ErrOutOfBounds) {
		t.Fatalf("expected ErrOutOfBounds, got %v", err)
	}
}

func TestNewRegistry_RejectsUnknownRole(t *testing.T) {
	_, err := NewRegistry(Size{Width: 3, Height: 3}, 1, [][]Spawn{
		{{Role: Role(7), Position: Point{0, 0}}},
	})
	if !errors.Is(err, ErrUnknownRole) {
		t.Fatalf("expected ErrUnknownRole, got %v", err)
	}
}

func TestNewRegistry_RejectsBadConfiguration(t *testing.T) {
	if _, err := NewRegistry(Size{}, 1, nil); !errors.Is(err, ErrBadBoard) {
		t.Fatalf("expected ErrBadBoard, got %v", err)
	}
	if _, err := NewRegistry(Size{Width: math.MaxInt / 2, Height: 4}, 1, nil); !errors.Is(err, ErrBadBoard) {
		t.Fatalf("expected ErrBadBoard for an overflowing board, got %v", err)
	}
	if _, err := NewRegistry(Size{Width: 2, Height: 2}, 0, nil); !errors.Is(err, ErrBadStrength) {
		t.Fatalf("expected ErrBadStrength, got %v", err)
	}
	if _, err := NewRegistry(Size{Width: 2, Height: 2}, 1, make([][]Spawn, 3)); !errors.Is(err, ErrBadTeam) {
		t.Fatalf("expected ErrBadTeam, got %v", err)
	}
}

func TestRegistry_LookupByPosition(t *testing.T) {
	reg, err := NewRegistry(Size{Width: 3, Height: 3}, 1, [][]Spawn{
		{{Role: RoleWarrior, Position: Point{2, 1}}},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	u, ok := reg.LookupByPosition(Point{2, 1})
	if !ok || u.ID != ID(TeamLeft, RoleWarrior, 0) {
		t.Fatalf("expected L-W0 at (2,1), got %+v ok=%v", u, ok)
	}
	if _, ok := reg.LookupByPosition(Point{0, 0}); ok {
		t.Fatal("expected empty cell at (0,0)")
	}
}

func TestRegistry_RemoveTwiceIsAnError(t *testing.T) {
	reg, err := NewRegistry(Size{Width: 3, Height: 3}, 1, [][]Spawn{
		{{Role: RoleWarrior, Position: Point{0, 0}}},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	id := ID(TeamLeft, RoleWarrior, 0)
	if err := reg.Remove(id); err != nil {
		t.Fatalf("first remove: %v", err)
	}
	if _, ok := reg.Lookup(id); ok {
		t.Fatal("removed unit still found by id")
	}
	if _, ok := reg.LookupByPosition(Point{0, 0}); ok {
		t.Fatal("removed unit still found by position")
	}
	if err := reg.Remove(id); !errors.Is(err, ErrUnitNotFound) {
		t.Fatalf("expected ErrUnitNotFound on double remove, got %v", err)
	}
}

func TestRegistry_UnitsSorted(t *testing.T) {
	reg, err := NewRegistry(Size{Width: 4, Height: 4}, 1, [][]Spawn{
		{
			{Role: RoleQueen, Position: Point{0, 0}},
			{Role: RoleWarrior, Position: Point{0, 1}},
		},
		{
			{Role: RoleWarrior, Position: Point{3, 3}},
		},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got := reg.Units()
	want := []UnitID{
		ID(TeamLeft, RoleWarrior, 0),
		ID(TeamLeft, RoleQueen, 0),
		ID(TeamRight, RoleWarrior, 0),
	}
	if len(got) != len(want) {
		t.Fatalf("expected %d units, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i].ID != want[i] {
			t.Errorf("units[%d] = %s, want %s", i, got[i].ID, want[i])
		}
	}
}
