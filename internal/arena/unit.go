package arena

import "fmt"

// DefaultStrength is the strength every unit starts a match with unless
// the match is built WithInitialStrength.
const DefaultStrength = 3

// TeamCount is the number of sides in a match.
const TeamCount = 2

// Role is fixed at creation.
type Role int

const (
	RoleWarrior Role = iota
	RoleQueen
)

// Valid reports whether r is a defined role.
func (r Role) Valid() bool {
	return r == RoleWarrior || r == RoleQueen
}

func (r Role) String() string {
	switch r {
	case RoleWarrior:
		return "warrior"
	case RoleQueen:
		return "queen"
	default:
		return fmt.Sprintf("role(%d)", int(r))
	}
}

// Team identifies a side. Team 0 always acts first within a round.
type Team int

const (
	TeamLeft  Team = iota // slot 0
	TeamRight             // slot 1
)

// Valid reports whether t is slot 0 or 1.
func (t Team) Valid() bool {
	return t == TeamLeft || t == TeamRight
}

// Opponent returns the other slot.
func (t Team) Opponent() Team {
	if t == TeamLeft {
		return TeamRight
	}
	return TeamLeft
}

func (t Team) String() string {
	switch t {
	case TeamLeft:
		return "left"
	case TeamRight:
		return "right"
	default:
		return fmt.Sprintf("team(%d)", int(t))
	}
}

// LocalID names a unit within its team: its role plus the order in which
// the bot declared units of that role.
type LocalID struct {
	Role  Role
	Index int
}

// UnitID is the match-wide identity of a unit. Ids of removed units are never
// handed out again.
type UnitID struct {
	Local LocalID
	Team  Team
}

// Label is the short form used by logs and viewers, e.g. "L-W2" or "R-Q0".
func (id UnitID) Label() string {
	side := "L"
	if id.Team == TeamRight {
		side = "R"
	}
	kind := "W"
	if id.Local.Role == RoleQueen {
		kind = "Q"
	}
	return fmt.Sprintf("%s-%s%d", side, kind, id.Local.Index)
}

func (id UnitID) String() string {
	return fmt.Sprintf("%s/%s#%d", id.Team, id.Local.Role, id.Local.Index)
}

// Spawn is one entry of a bot's initial roster.
type Spawn struct {
	Role     Role
	Position Point
}

// UnitView is an immutable snapshot of a unit handed to bots and viewers.
type UnitView struct {
	ID       UnitID
	Position Point
	Strength int
}

// unit is the mutable record owned by the registry.
type unit struct {
	id       UnitID
	position Point
	strength int
}

func (u *unit) view() UnitView {
	return UnitView{ID: u.id, Position: u.position, Strength: u.strength}
}
