package arena

import "log/slog"

// ScriptBot is a Bot that places a fixed roster and replays a queue of
// commands. Once the queue runs dry it keeps re-issuing its last command.
// The arena, view and tui tests use it to set up exact situations.
type ScriptBot struct {
	Roster []Spawn
	Script []Command
	next   int
}

func (b *ScriptBot) Init(Size) []Spawn {
	return b.Roster
}

func (b *ScriptBot) Command(View, Team) Command {
	if len(b.Script) == 0 {
		panic("arena: ScriptBot has no commands")
	}
	if b.next >= len(b.Script) {
		return b.Script[len(b.Script)-1]
	}
	c := b.Script[b.next]
	b.next++
	return c
}

// Push appends commands to the script.
func (b *ScriptBot) Push(cmds ...Command) {
	b.Script = append(b.Script, cmds...)
}

// TestMatch is a headless match harness with scripted bots on both sides.
type TestMatch struct {
	Size   Size
	Game   *GamePlay
	SimLog *SimLog
	Left   *ScriptBot
	Right  *ScriptBot

	strength int
	logger   *slog.Logger
	extra    []Option
}

// matchOptionKind controls the pass in which an option is applied.
type matchOptionKind int

const (
	matchOptInfra  matchOptionKind = iota // board size, strength, verbose: applied first
	matchOptUnit                          // roster entries
	matchOptScript                        // commands, applied after rosters exist
)

// MatchOption is a builder function applied to a TestMatch during construction.
type MatchOption struct {
	kind matchOptionKind
	fn   func(*TestMatch)
}

// WithBoard sets the board size.
func WithBoard(w, h int) MatchOption {
	return MatchOption{matchOptInfra, func(tm *TestMatch) {
		tm.Size = Size{Width: w, Height: h}
	}}
}

// WithStrength sets the initial strength of every unit.
func WithStrength(n int) MatchOption {
	return MatchOption{matchOptInfra, func(tm *TestMatch) {
		tm.strength = n
	}}
}

// WithVerbose keeps verbose journal entries.
func WithVerbose(v bool) MatchOption {
	return MatchOption{matchOptInfra, func(tm *TestMatch) {
		tm.SimLog = NewSimLog(v)
	}}
}

// WithHarnessLogger routes the match's structured log to l.
func WithHarnessLogger(l *slog.Logger) MatchOption {
	return MatchOption{matchOptInfra, func(tm *TestMatch) {
		tm.logger = l
	}}
}

// WithGameOptions passes extra options, such as hooks, to the match.
func WithGameOptions(opts ...Option) MatchOption {
	return MatchOption{matchOptInfra, func(tm *TestMatch) {
		tm.extra = append(tm.extra, opts...)
	}}
}

// WithUnit adds a roster entry for team at (x,y).
func WithUnit(team Team, role Role, x, y int) MatchOption {
	return MatchOption{matchOptUnit, func(tm *TestMatch) {
		b := tm.bot(team)
		b.Roster = append(b.Roster, Spawn{Role: role, Position: Point{X: x, Y: y}})
	}}
}

// WithScript queues commands for team's bot.
func WithScript(team Team, cmds ...Command) MatchOption {
	return MatchOption{matchOptScript, func(tm *TestMatch) {
		tm.bot(team).Push(cmds...)
	}}
}

// NewTestMatch builds and initializes a match from the given options in
// ordered passes: infrastructure, rosters, scripts.
// The default board is 3x3 with DefaultStrength.
func NewTestMatch(opts ...MatchOption) (*TestMatch, error) {
	tm := &TestMatch{
		Size:     Size{Width: 3, Height: 3},
		SimLog:   NewSimLog(false),
		Left:     &ScriptBot{},
		Right:    &ScriptBot{},
		strength: DefaultStrength,
		logger:   slog.New(slog.DiscardHandler),
	}
	for _, kind := range []matchOptionKind{matchOptInfra, matchOptUnit, matchOptScript} {
		for _, o := range opts {
			if o.kind == kind {
				o.fn(tm)
			}
		}
	}
	gameOpts := append([]Option{
		WithInitialStrength(tm.strength),
		WithSimLog(tm.SimLog),
		WithLogger(tm.logger),
	}, tm.extra...)
	g, err := NewGamePlay(tm.Left, tm.Right, gameOpts...)
	if err != nil {
		return nil, err
	}
	if err := g.Init(tm.Size); err != nil {
		return nil, err
	}
	tm.Game = g
	return tm, nil
}

func (tm *TestMatch) bot(team Team) *ScriptBot {
	if team == TeamRight {
		return tm.Right
	}
	return tm.Left
}

// RunRounds steps n rounds, stopping at the first error.
func (tm *TestMatch) RunRounds(n int) ([]Round, error) {
	out := make([]Round, 0, n)
	for i := 0; i < n; i++ {
		rd, err := tm.Game.Step()
		out = append(out, rd)
		if err != nil {
			return out, err
		}
	}
	return out, nil
}

// RunUntil steps up to maxRounds, stopping early once predicate holds.
// It returns the round at which the predicate was satisfied, or -1.
func (tm *TestMatch) RunUntil(predicate func(*TestMatch) bool, maxRounds int) (int, error) {
	for i := 0; i < maxRounds; i++ {
		if _, err := tm.Game.Step(); err != nil {
			return -1, err
		}
		if predicate(tm) {
			return tm.Game.RoundNumber(), nil
		}
	}
	return -1, nil
}

// View returns the read-only board view.
func (tm *TestMatch) View() View {
	return tm.Game.View()
}

// Unit looks a unit up by team, role and declaration index.
func (tm *TestMatch) Unit(team Team, role Role, index int) (UnitView, bool) {
	return tm.Game.View().Unit(ID(team, role, index))
}

// ID builds a UnitID.
func ID(team Team, role Role, index int) UnitID {
	return UnitID{Local: LocalID{Role: role, Index: index}, Team: team}
}

// MatchSnapshot is a lightweight copy of the board at a round.
type MatchSnapshot struct {
	Round int
	Units []UnitView
}

// Snapshot returns the current state of all units.
func (tm *TestMatch) Snapshot() MatchSnapshot {
	return MatchSnapshot{Round: tm.Game.RoundNumber(), Units: tm.Game.View().Units()}
}
