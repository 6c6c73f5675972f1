package arena

import "fmt"

// View is the read-only face of a match handed to bots and viewers.
// Everything it returns is a copy; nothing reachable from it mutates units.
type View interface {
	Size() Size
	Units() []UnitView
	TeamUnits(team Team) []UnitView
	Unit(id UnitID) (UnitView, bool)
	UnitAt(p Point) (UnitView, bool)
}

// State is the board plus its unit registry. Move and Attack are the only
// operations that change it once the match is running.
type State struct {
	size  Size
	units *Registry
}

// NewState builds the registry for the given rosters.
func NewState(size Size, strength int, teams [][]Spawn) (*State, error) {
	reg, err := NewRegistry(size, strength, teams)
	if err != nil {
		return nil, err
	}
	return &State{size: size, units: reg}, nil
}

func (s *State) Size() Size { return s.size }

func (s *State) Units() []UnitView { return s.units.Units() }

func (s *State) Unit(id UnitID) (UnitView, bool) { return s.units.Lookup(id) }

func (s *State) UnitAt(p Point) (UnitView, bool) { return s.units.LookupByPosition(p) }

func (s *State) TeamUnits(team Team) []UnitView {
	var out []UnitView
	for _, u := range s.units.Units() {
		if u.ID.Team == team {
			out = append(out, u)
		}
	}
	return out
}

// Contains reports whether p is on the board.
func (s *State) Contains(p Point) bool {
	return s.size.Contains(p)
}

// Registry exposes the underlying registry for lookups and removal.
func (s *State) Registry() *Registry {
	return s.units
}

func (s *State) actor(id UnitID, c Course) (*unit, error) {
	if !c.Valid() {
		return nil, fmt.Errorf("%w: %s", ErrUnknownCourse, c)
	}
	u, ok := s.units.get(id)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnitNotFound, id)
	}
	return u, nil
}

// Move steps the unit one cell along c. It reports false without touching
// anything when the target cell is off the board or occupied.
func (s *State) Move(id UnitID, c Course) (bool, error) {
	u, err := s.actor(id, c)
	if err != nil {
		return false, err
	}
	target := Offset(u.position, c)
	if !s.size.Contains(target) {
		return false, nil
	}
	if _, taken := s.units.at(target); taken {
		return false, nil
	}
	s.units.relocate(u, target)
	return true, nil
}

// Attack strikes the cell one step along c, taking one point of strength
// from whoever stands there. It reports false when the cell is off the board
// or empty. Units of either team can be hit.
func (s *State) Attack(id UnitID, c Course) (bool, error) {
	applied, _, err := s.strike(id, c)
	return applied, err
}

// strike is Attack that also returns the unit it removed, if any.
func (s *State) strike(id UnitID, c Course) (bool, *UnitView, error) {
	u, err := s.actor(id, c)
	if err != nil {
		return false, nil, err
	}
	target := Offset(u.position, c)
	if !s.size.Contains(target) {
		return false, nil, nil
	}
	victim, ok := s.units.at(target)
	if !ok {
		return false, nil, nil
	}
	victim.strength--
	if victim.strength > 0 {
		return true, nil, nil
	}
	removed := victim.view()
	if err := s.units.Remove(victim.id); err != nil {
		return true, nil, err
	}
	return true, &removed, nil
}
