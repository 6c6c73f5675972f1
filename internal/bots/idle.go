package bots

import "github.com/Garsondee/Ant-Arena/internal/arena"

// Idle places its roster and then keeps pushing its first unit toward its
// own wall, which stops having any effect once the unit is there.
type Idle struct {
	Side   arena.Team
	Roster []arena.Spawn
	Count  int
}

func (b *Idle) Init(size arena.Size) []arena.Spawn {
	return roster(b.Roster, size, b.Side, b.Count)
}

func (b *Idle) Command(v arena.View, team arena.Team) arena.Command {
	mine := v.TeamUnits(team)
	if len(mine) == 0 {
		return noUnits(team)
	}
	return arena.Command{Course: homeCourse(team), Action: arena.ActionMove, Unit: mine[0].ID}
}
