package arena

import "errors"

// Result classifies the board at a point in time.
type Result int

const (
	ResultInconclusive Result = iota
	ResultLeftVictory
	ResultRightVictory
	ResultDraw
)

func (r Result) String() string {
	switch r {
	case ResultLeftVictory:
		return "left_victory"
	case ResultRightVictory:
		return "right_victory"
	case ResultDraw:
		return "draw"
	case ResultInconclusive:
		return "inconclusive"
	default:
		return "unknown"
	}
}

// TeamStanding counts what one side still has on the board.
type TeamStanding struct {
	Alive    int
	Queens   int
	Strength int
}

// Outcome is a snapshot of both sides. It never ends a match by itself.
type Outcome struct {
	Teams  [TeamCount]TeamStanding
	Result Result
}

// Decided reports whether at least one side has no units left.
func (o Outcome) Decided() bool {
	return o.Result != ResultInconclusive
}

// Standings tallies the live units of each side. A side with no units left
// has lost; both sides empty is a draw.
func Standings(v View) Outcome {
	var o Outcome
	if v == nil {
		return o
	}
	for _, u := range v.Units() {
		ts := &o.Teams[u.ID.Team]
		ts.Alive++
		ts.Strength += u.Strength
		if u.ID.Local.Role == RoleQueen {
			ts.Queens++
		}
	}
	left, right := o.Teams[TeamLeft].Alive, o.Teams[TeamRight].Alive
	switch {
	case left == 0 && right == 0:
		o.Result = ResultDraw
	case right == 0:
		o.Result = ResultLeftVictory
	case left == 0:
		o.Result = ResultRightVictory
	}
	return o
}

// Finished reports whether err, returned by Step, only means that a side
// with no units left had nothing valid to command.
func Finished(err error, v View) bool {
	return errors.Is(err, ErrUnitNotFound) && Standings(v).Decided()
}
