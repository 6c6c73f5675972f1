// Package bots holds reference strategies for the arena. None of them is
// clever; they exist so the drivers have something to pit against each other.
package bots

import "github.com/Garsondee/Ant-Arena/internal/arena"

// DefaultRoster lines up to n units along the side's home column: the left
// side uses column 0, the right side the last column. The queen takes the
// middle row and warriors fill outward from her, alternating up and down.
func DefaultRoster(size arena.Size, side arena.Team, n int) []arena.Spawn {
	if size.Cells() == 0 || n <= 0 {
		return nil
	}
	if n > size.Height {
		n = size.Height
	}
	x := 0
	if side == arena.TeamRight {
		x = size.Width - 1
	}
	mid := size.Height / 2
	out := make([]arena.Spawn, 0, n)
	out = append(out, arena.Spawn{Role: arena.RoleQueen, Position: arena.Point{X: x, Y: mid}})
	for step := 1; len(out) < n; step++ {
		for _, y := range []int{mid - step, mid + step} {
			if len(out) == n {
				break
			}
			if y < 0 || y >= size.Height {
				continue
			}
			out = append(out, arena.Spawn{Role: arena.RoleWarrior, Position: arena.Point{X: x, Y: y}})
		}
	}
	return out
}

// homeCourse points from the board centre toward the side's home column.
func homeCourse(side arena.Team) arena.Course {
	if side == arena.TeamRight {
		return arena.CourseRight
	}
	return arena.CourseLeft
}

// roster returns the explicit roster if one was given, else the default.
func roster(explicit []arena.Spawn, size arena.Size, side arena.Team, n int) []arena.Spawn {
	if explicit != nil {
		return explicit
	}
	return DefaultRoster(size, side, n)
}

// noUnits is what a bot with nothing left on the board answers. The match
// rejects it with ErrUnitNotFound.
func noUnits(team arena.Team) arena.Command {
	return arena.Command{Unit: arena.UnitID{Team: team}}
}
