package arena

import (
	"cmp"
	"fmt"
	"slices"
)

// Registry is the single mutable source of truth for the units of a match.
// It indexes units both by id and by cell so that I1 and I3 are enforced on
// every mutation instead of being checked after the fact.
type Registry struct {
	byID  map[UnitID]*unit
	byPos map[Point]*unit
}

// NewRegistry places every roster entry on a board of the given size.
// Units receive ids in declaration order: the n-th warrior a team declares is
// warrior #n, independently of how many queens it declared before it.
// Any roster entry that would break a board invariant fails the whole call.
func NewRegistry(size Size, strength int, teams [][]Spawn) (*Registry, error) {
	if size.Cells() == 0 {
		return nil, fmt.Errorf("%w: %s", ErrBadBoard, size)
	}
	if strength < 1 {
		return nil, fmt.Errorf("%w: %d", ErrBadStrength, strength)
	}
	if len(teams) > TeamCount {
		return nil, fmt.Errorf("%w: %d rosters", ErrBadTeam, len(teams))
	}

	r := &Registry{
		byID:  make(map[UnitID]*unit),
		byPos: make(map[Point]*unit),
	}
	for slot, roster := range teams {
		team := Team(slot)
		next := map[Role]int{}
		for _, sp := range roster {
			if !sp.Role.Valid() {
				return nil, fmt.Errorf("%w: %s declared %s", ErrUnknownRole, team, sp.Role)
			}
			id := UnitID{Local: LocalID{Role: sp.Role, Index: next[sp.Role]}, Team: team}
			next[sp.Role]++
			if err := r.insert(size, &unit{id: id, position: sp.Position, strength: strength}); err != nil {
				return nil, err
			}
		}
	}
	return r, nil
}

func (r *Registry) insert(size Size, u *unit) error {
	if _, dup := r.byID[u.id]; dup {
		return fmt.Errorf("%w: %s", ErrDuplicateUnit, u.id)
	}
	if !size.Contains(u.position) {
		return fmt.Errorf("%w: %s at %s on %s board", ErrOutOfBounds, u.id, u.position, size)
	}
	if other, taken := r.byPos[u.position]; taken {
		return fmt.Errorf("%w: %s and %s at %s", ErrCellOccupied, other.id, u.id, u.position)
	}
	r.byID[u.id] = u
	r.byPos[u.position] = u
	return nil
}

// Len returns the number of live units.
func (r *Registry) Len() int {
	return len(r.byID)
}

// Lookup returns a snapshot of the unit with the given id.
func (r *Registry) Lookup(id UnitID) (UnitView, bool) {
	u, ok := r.byID[id]
	if !ok {
		return UnitView{}, false
	}
	return u.view(), true
}

// LookupByPosition returns a snapshot of the unit occupying p, if any.
func (r *Registry) LookupByPosition(p Point) (UnitView, bool) {
	u, ok := r.byPos[p]
	if !ok {
		return UnitView{}, false
	}
	return u.view(), true
}

// Units returns snapshots of all live units ordered by team, role, index.
func (r *Registry) Units() []UnitView {
	out := make([]UnitView, 0, len(r.byID))
	for _, u := range r.byID {
		out = append(out, u.view())
	}
	slices.SortFunc(out, func(a, b UnitView) int {
		return compareIDs(a.ID, b.ID)
	})
	return out
}

func compareIDs(a, b UnitID) int {
	if c := cmp.Compare(a.Team, b.Team); c != 0 {
		return c
	}
	if c := cmp.Compare(a.Local.Role, b.Local.Role); c != 0 {
		return c
	}
	return cmp.Compare(a.Local.Index, b.Local.Index)
}

// Remove deletes a live unit. Removing an id that is not live is a caller
// bug and is reported rather than ignored.
func (r *Registry) Remove(id UnitID) error {
	u, ok := r.byID[id]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnitNotFound, id)
	}
	delete(r.byID, id)
	delete(r.byPos, u.position)
	return nil
}

func (r *Registry) get(id UnitID) (*unit, bool) {
	u, ok := r.byID[id]
	return u, ok
}

func (r *Registry) at(p Point) (*unit, bool) {
	u, ok := r.byPos[p]
	return u, ok
}

// relocate moves u to an empty cell p. The caller has checked bounds and
// vacancy.
func (r *Registry) relocate(u *unit, p Point) {
	delete(r.byPos, u.position)
	u.position = p
	r.byPos[p] = u
}
