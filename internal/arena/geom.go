package arena

import (
	"fmt"
	"math"
)

// Point is a cell coordinate on the board. X grows to the right, Y grows down.
type Point struct {
	X, Y int
}

func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Size is the board extent. The origin is always (0,0).
type Size struct {
	Width, Height int
}

// Contains reports whether p lies in [0,Width) x [0,Height).
func (s Size) Contains(p Point) bool {
	return p.X >= 0 && p.Y >= 0 && p.X < s.Width && p.Y < s.Height
}

// Cells returns Width*Height, or 0 for a degenerate board or one whose
// cell count does not fit in an int.
func (s Size) Cells() int {
	if s.Width <= 0 || s.Height <= 0 || s.Width > math.MaxInt/s.Height {
		return 0
	}
	return s.Width * s.Height
}

func (s Size) String() string {
	return fmt.Sprintf("%dx%d", s.Width, s.Height)
}

// Course is one of the four cardinal directions a unit can act along.
type Course int

const (
	CourseLeft Course = iota
	CourseTop
	CourseRight
	CourseBottom
)

// Courses lists every defined course in declaration order.
var Courses = [...]Course{CourseLeft, CourseTop, CourseRight, CourseBottom}

// Valid reports whether c is one of the four defined courses.
func (c Course) Valid() bool {
	return c >= CourseLeft && c <= CourseBottom
}

func (c Course) String() string {
	switch c {
	case CourseLeft:
		return "left"
	case CourseTop:
		return "top"
	case CourseRight:
		return "right"
	case CourseBottom:
		return "bottom"
	default:
		return fmt.Sprintf("course(%d)", int(c))
	}
}

// Offset returns the neighbour of p one step along c.
// It panics on an undefined course; callers validate bot input first.
func Offset(p Point, c Course) Point {
	switch c {
	case CourseLeft:
		return Point{X: p.X - 1, Y: p.Y}
	case CourseTop:
		return Point{X: p.X, Y: p.Y - 1}
	case CourseRight:
		return Point{X: p.X + 1, Y: p.Y}
	case CourseBottom:
		return Point{X: p.X, Y: p.Y + 1}
	default:
		panic(fmt.Sprintf("arena: %v: %s", ErrUnknownCourse, c))
	}
}
