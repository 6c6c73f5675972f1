package bots

import (
	"math/rand"

	"github.com/Garsondee/Ant-Arena/internal/arena"
)

// Random issues a uniformly random command for one of its own units.
type Random struct {
	Side   arena.Team
	Roster []arena.Spawn
	Count  int
	rng    *rand.Rand
}

// NewRandom creates a Random bot. A zero seed is replaced by 1 so that runs
// stay reproducible.
func NewRandom(side arena.Team, seed int64, count int, explicit []arena.Spawn) *Random {
	if seed == 0 {
		seed = 1
	}
	return &Random{
		Side:   side,
		Roster: explicit,
		Count:  count,
		rng:    rand.New(rand.NewSource(seed)), // #nosec G404 -- simulation rng
	}
}

func (b *Random) Init(size arena.Size) []arena.Spawn {
	return roster(b.Roster, size, b.Side, b.Count)
}

func (b *Random) Command(v arena.View, team arena.Team) arena.Command {
	mine := v.TeamUnits(team)
	if len(mine) == 0 {
		return noUnits(team)
	}
	action := arena.ActionMove
	if b.rng.Intn(2) == 1 {
		action = arena.ActionAttack
	}
	return arena.Command{
		Course: arena.Courses[b.rng.Intn(len(arena.Courses))],
		Action: action,
		Unit:   mine[b.rng.Intn(len(mine))].ID,
	}
}
