package arena

// Status values reported by a Referee besides the Result names.
const (
	StatusRunning    = "running"
	StatusRoundLimit = "round_limit"
	StatusHalted     = "halted"
)

// Referee decides when a driver stops stepping a match: when one side is
// wiped out, when a round limit is hit, or when a bot breaks protocol.
// GamePlay itself never ends.
type Referee struct {
	match     *GamePlay
	maxRounds int
	done      bool
	status    string
	err       error
}

// NewReferee watches g. maxRounds <= 0 means no limit.
func NewReferee(g *GamePlay, maxRounds int) *Referee {
	return &Referee{match: g, maxRounds: maxRounds, status: StatusRunning}
}

// Advance plays one round unless the match is over and reports whether a
// round was played.
func (r *Referee) Advance() bool {
	if r.done || r.conclude() {
		return false
	}
	if _, err := r.match.Step(); err != nil && !Finished(err, r.match.View()) {
		r.done, r.status, r.err = true, StatusHalted, err
		return true
	}
	r.conclude()
	return true
}

func (r *Referee) conclude() bool {
	if o := Standings(r.match.View()); o.Decided() {
		r.done, r.status = true, o.Result.String()
	} else if r.maxRounds > 0 && r.match.RoundNumber() >= r.maxRounds {
		r.done, r.status = true, StatusRoundLimit
	}
	return r.done
}

func (r *Referee) Done() bool { return r.done }

// Status is StatusRunning, a Result name, StatusRoundLimit or StatusHalted.
func (r *Referee) Status() string { return r.status }

// Err is the protocol violation that halted the match, if any.
func (r *Referee) Err() error { return r.err }

// Match returns the match being refereed.
func (r *Referee) Match() *GamePlay { return r.match }
