package arena

import "strings"

// Glyph is the board mark for u: Q or W for the left side, q or w for the
// right side.
func Glyph(u UnitView) rune {
	g := 'W'
	if u.ID.Local.Role == RoleQueen {
		g = 'Q'
	}
	if u.ID.Team == TeamRight {
		g += 'a' - 'A'
	}
	return g
}

// BoardText draws v one row per line, with '.' for empty cells.
func BoardText(v View) string {
	if v == nil {
		return ""
	}
	size := v.Size()
	var sb strings.Builder
	sb.Grow(size.Cells() + size.Height)
	for y := 0; y < size.Height; y++ {
		for x := 0; x < size.Width; x++ {
			if u, ok := v.UnitAt(Point{X: x, Y: y}); ok {
				sb.WriteRune(Glyph(u))
			} else {
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
