package bots

import (
	"math/rand"

	"github.com/Garsondee/Ant-Arena/internal/arena"
)

// Hunter closes in on the nearest enemy and attacks once adjacent.
// It prefers warriors and only commits its queen when no warrior is left.
type Hunter struct {
	Side   arena.Team
	Roster []arena.Spawn
	Count  int
	rng    *rand.Rand
}

// NewHunter creates a Hunter. The seed only breaks ties between equally
// good moves.
func NewHunter(side arena.Team, seed int64, count int, explicit []arena.Spawn) *Hunter {
	if seed == 0 {
		seed = 1
	}
	return &Hunter{
		Side:   side,
		Roster: explicit,
		Count:  count,
		rng:    rand.New(rand.NewSource(seed)), // #nosec G404 -- tie breaks only
	}
}

func (b *Hunter) Init(size arena.Size) []arena.Spawn {
	return roster(b.Roster, size, b.Side, b.Count)
}

func (b *Hunter) Command(v arena.View, team arena.Team) arena.Command {
	mine := v.TeamUnits(team)
	if len(mine) == 0 {
		return noUnits(team)
	}
	enemies := v.TeamUnits(team.Opponent())
	if len(enemies) == 0 {
		return arena.Command{Course: homeCourse(team), Action: arena.ActionMove, Unit: mine[0].ID}
	}

	hunters := warriors(mine)
	if len(hunters) == 0 {
		hunters = mine
	}

	best, prey := hunters[0], enemies[0]
	bestDist := manhattan(best.Position, prey.Position)
	for _, h := range hunters {
		for _, e := range enemies {
			d := manhattan(h.Position, e.Position)
			if d < bestDist || (d == bestDist && b.rng.Intn(2) == 0) {
				best, prey, bestDist = h, e, d
			}
		}
	}

	if bestDist == 1 {
		return arena.Command{Course: courseToward(best.Position, prey.Position), Action: arena.ActionAttack, Unit: best.ID}
	}
	return arena.Command{Course: b.approach(v, best.Position, prey.Position), Action: arena.ActionMove, Unit: best.ID}
}

// approach picks a course that shortens the distance to target, preferring
// the axis with the larger gap and falling back to the other axis when the
// preferred cell is taken.
func (b *Hunter) approach(v arena.View, from, target arena.Point) arena.Course {
	dx, dy := target.X-from.X, target.Y-from.Y
	var options []arena.Course
	horizontal, vertical := arena.CourseRight, arena.CourseBottom
	if dx < 0 {
		horizontal = arena.CourseLeft
	}
	if dy < 0 {
		vertical = arena.CourseTop
	}
	switch {
	case dy == 0:
		options = []arena.Course{horizontal}
	case dx == 0:
		options = []arena.Course{vertical}
	case abs(dx) > abs(dy):
		options = []arena.Course{horizontal, vertical}
	case abs(dy) > abs(dx):
		options = []arena.Course{vertical, horizontal}
	default:
		options = []arena.Course{horizontal, vertical}
		if b.rng.Intn(2) == 0 {
			options[0], options[1] = options[1], options[0]
		}
	}
	for _, c := range options {
		if _, taken := v.UnitAt(arena.Offset(from, c)); !taken {
			return c
		}
	}
	return options[0]
}

func warriors(units []arena.UnitView) []arena.UnitView {
	var out []arena.UnitView
	for _, u := range units {
		if u.ID.Local.Role == arena.RoleWarrior {
			out = append(out, u)
		}
	}
	return out
}

// courseToward returns the course from a to an orthogonally adjacent b.
func courseToward(a, b arena.Point) arena.Course {
	switch {
	case b.X < a.X:
		return arena.CourseLeft
	case b.X > a.X:
		return arena.CourseRight
	case b.Y < a.Y:
		return arena.CourseTop
	default:
		return arena.CourseBottom
	}
}

func manhattan(a, b arena.Point) int {
	return abs(a.X-b.X) + abs(a.Y-b.Y)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
