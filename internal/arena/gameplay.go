package arena

import (
	"errors"
	"fmt"
	"log/slog"
	"reflect"

	"github.com/google/uuid"
)

// ActionResult records what one team's command did during a round.
type ActionResult struct {
	Team    Team
	Command Command
	// Applied is false for a blocked move or an attack on an empty or
	// off-board cell. Such outcomes are routine, not errors.
	Applied bool
	// Removed is the unit taken off the board by this command, if any.
	Removed *UnitView
}

// Round is the outcome of one Step.
type Round struct {
	Number  int
	Results [TeamCount]ActionResult
}

// Option configures a GamePlay.
type Option func(*GamePlay)

// WithLogger sets the structured logger. The default is slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(g *GamePlay) {
		if l != nil {
			g.logger = l
		}
	}
}

// WithInitialStrength sets the strength units start with.
func WithInitialStrength(n int) Option {
	return func(g *GamePlay) {
		g.strength = n
	}
}

// WithSimLog records the match journal into sl instead of a private log.
func WithSimLog(sl *SimLog) Option {
	return func(g *GamePlay) {
		if sl != nil {
			g.journal = sl
		}
	}
}

// WithActionHook registers fn to be called after every applied or refused
// command that passed validation.
func WithActionHook(fn func(ActionResult)) Option {
	return func(g *GamePlay) {
		g.onAction = fn
	}
}

// WithRemoveHook registers fn to be called whenever a unit is removed.
func WithRemoveHook(fn func(UnitView)) Option {
	return func(g *GamePlay) {
		g.onRemove = fn
	}
}

// WithMatchID overrides the generated match id.
func WithMatchID(id string) Option {
	return func(g *GamePlay) {
		if id != "" {
			g.id = id
		}
	}
}

// GamePlay drives a match between two bots.
//
// A GamePlay starts Uninitialized: the bots are known but nothing is on the
// board. Init moves it to Ready exactly once. Every Step after that is one
// round: the left bot (slot 0) acts, then the right bot (slot 1).
// There is no terminal state; the caller decides when to stop stepping.
type GamePlay struct {
	id       string
	bots     [TeamCount]Bot
	state    *State
	round    int
	strength int

	logger   *slog.Logger
	journal  *SimLog
	onAction func(ActionResult)
	onRemove func(UnitView)
}

// NewGamePlay creates an uninitialized match between left (slot 0) and
// right (slot 1).
func NewGamePlay(left, right Bot, opts ...Option) (*GamePlay, error) {
	for slot, b := range []Bot{left, right} {
		if isNilBot(b) {
			return nil, fmt.Errorf("%w: slot %d", ErrNilBot, slot)
		}
	}
	g := &GamePlay{
		id:       uuid.NewString(),
		bots:     [TeamCount]Bot{left, right},
		strength: DefaultStrength,
		logger:   slog.Default(),
		journal:  NewSimLog(false),
	}
	for _, o := range opts {
		o(g)
	}
	if g.strength < 1 {
		return nil, fmt.Errorf("%w: %d", ErrBadStrength, g.strength)
	}
	g.logger = g.logger.With("match", g.id)
	return g, nil
}

func isNilBot(b Bot) bool {
	switch v := b.(type) {
	case nil:
		return true
	case BotFuncs:
		return v.CommandFunc == nil
	case *BotFuncs:
		return v == nil || v.CommandFunc == nil
	}
	rv := reflect.ValueOf(b)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return rv.IsNil()
	}
	return false
}

// ID returns the match id.
func (g *GamePlay) ID() string { return g.id }

// Ready reports whether Init has completed.
func (g *GamePlay) Ready() bool { return g.state != nil }

// RoundNumber returns the number of rounds stepped so far.
func (g *GamePlay) RoundNumber() int { return g.round }

// SimLog returns the match journal.
func (g *GamePlay) SimLog() *SimLog { return g.journal }

// View returns a read-only view of the board, or nil before Init.
func (g *GamePlay) View() View {
	if g.state == nil {
		return nil
	}
	return readOnly{g.state}
}

// Init asks each bot for its roster and places the units. Calling Init on a
// Ready match does nothing, even with a different size.
func (g *GamePlay) Init(size Size) error {
	if g.state != nil {
		g.logger.Debug("init ignored, match already ready", "size", size.String())
		return nil
	}
	rosters := make([][]Spawn, TeamCount)
	for slot, b := range g.bots {
		rosters[slot] = b.Init(size)
	}
	st, err := NewState(size, g.strength, rosters)
	if err != nil {
		g.logger.Error("init failed", "size", size.String(), "err", err)
		return fmt.Errorf("init %s board: %w", size, err)
	}
	g.state = st
	for _, u := range st.Units() {
		g.journal.Add(0, u.ID.Label(), u.ID.Team.String(), "init", "spawn", u.Position.String(), float64(u.Strength))
	}
	g.logger.Info("match ready",
		"size", size.String(),
		"left_units", len(rosters[TeamLeft]),
		"right_units", len(rosters[TeamRight]),
		"strength", g.strength,
	)
	return nil
}

// Step plays one round. A protocol violation by either bot aborts the round
// at that bot's turn and is returned; the offending command is not applied.
// When the right bot violates, the left bot's command of the same round has
// already been applied and is reported in the returned Round.
func (g *GamePlay) Step() (Round, error) {
	if g.state == nil {
		return Round{}, ErrNotInitialized
	}
	g.round++
	defer g.snapshot()
	rd := Round{Number: g.round}
	for slot, b := range g.bots {
		res, err := g.turn(b, Team(slot))
		rd.Results[slot] = res
		if err != nil {
			return rd, err
		}
	}
	return rd, nil
}

// snapshot records every live unit at the end of a round. Only a verbose
// journal keeps these.
func (g *GamePlay) snapshot() {
	if !g.journal.Verbose() {
		return
	}
	for _, u := range g.state.Units() {
		g.journal.AddVerbose(g.round, u.ID.Label(), u.ID.Team.String(), "unit", "state", u.Position.String(), float64(u.Strength))
	}
}

func (g *GamePlay) turn(b Bot, team Team) (ActionResult, error) {
	cmd := b.Command(readOnly{g.state}, team)
	res := ActionResult{Team: team, Command: cmd}

	if err := g.validate(cmd, team); err != nil {
		g.journal.Add(g.round, cmd.Unit.Label(), team.String(), "violation", violationKey(err), err.Error(), 0)
		g.logger.Warn("protocol violation", "round", g.round, "team", team.String(), "command", cmd.String(), "err", err)
		return res, fmt.Errorf("round %d, %s bot: %w", g.round, team, err)
	}

	var err error
	switch cmd.Action {
	case ActionMove:
		from := g.mustPosition(cmd.Unit)
		res.Applied, err = g.state.Move(cmd.Unit, cmd.Course)
		if err == nil {
			g.recordMove(team, cmd, from, res.Applied)
		}
	case ActionAttack:
		res.Applied, res.Removed, err = g.state.strike(cmd.Unit, cmd.Course)
		if err == nil {
			g.recordAttack(team, cmd, res)
		}
	}
	if err != nil {
		return res, fmt.Errorf("round %d, %s bot: %w", g.round, team, err)
	}

	if g.onAction != nil {
		g.onAction(res)
	}
	if res.Removed != nil && g.onRemove != nil {
		g.onRemove(*res.Removed)
	}
	return res, nil
}

// validate checks a command against the acting team before anything moves.
func (g *GamePlay) validate(cmd Command, team Team) error {
	if !cmd.Action.Valid() {
		return fmt.Errorf("%w: %s", ErrUnknownAction, cmd.Action)
	}
	if !cmd.Course.Valid() {
		return fmt.Errorf("%w: %s", ErrUnknownCourse, cmd.Course)
	}
	if cmd.Unit.Team != team {
		return fmt.Errorf("%w: %s commanded by %s", ErrForeignUnit, cmd.Unit, team)
	}
	if _, ok := g.state.units.get(cmd.Unit); !ok {
		return fmt.Errorf("%w: %s", ErrUnitNotFound, cmd.Unit)
	}
	return nil
}

func (g *GamePlay) mustPosition(id UnitID) Point {
	u, _ := g.state.units.get(id)
	return u.position
}

func (g *GamePlay) recordMove(team Team, cmd Command, from Point, applied bool) {
	key := "applied"
	if !applied {
		key = "blocked"
	}
	to := Offset(from, cmd.Course)
	g.journal.Add(g.round, cmd.Unit.Label(), team.String(), "move", key, from.String()+arrow+to.String(), 0)
	g.logger.Debug("move", "round", g.round, "unit", cmd.Unit.Label(), "course", cmd.Course.String(), "applied", applied)
}

func (g *GamePlay) recordAttack(team Team, cmd Command, res ActionResult) {
	label := cmd.Unit.Label()
	if !res.Applied {
		g.journal.Add(g.round, label, team.String(), "attack", "miss", cmd.Course.String(), 0)
		g.logger.Debug("attack missed", "round", g.round, "unit", label, "course", cmd.Course.String())
		return
	}
	if res.Removed != nil {
		victim := res.Removed.ID.Label()
		g.journal.Add(g.round, label, team.String(), "attack", "hit", victim, 0)
		g.journal.Add(g.round, victim, res.Removed.ID.Team.String(), "remove", "killed", fmt.Sprintf("by %s at %s", label, res.Removed.Position), 0)
		g.logger.Info("unit removed", "round", g.round, "unit", victim, "by", label)
		return
	}
	u, _ := g.state.UnitAt(Offset(g.mustPosition(cmd.Unit), cmd.Course))
	g.journal.Add(g.round, label, team.String(), "attack", "hit", u.ID.Label(), float64(u.Strength))
	g.logger.Debug("attack hit", "round", g.round, "unit", label, "victim", u.ID.Label(), "strength", u.Strength)
}

func violationKey(err error) string {
	switch {
	case errors.Is(err, ErrForeignUnit):
		return "foreign_unit"
	case errors.Is(err, ErrUnitNotFound):
		return "unit_not_found"
	case errors.Is(err, ErrUnknownCourse):
		return "unknown_course"
	case errors.Is(err, ErrUnknownAction):
		return "unknown_action"
	default:
		return "other"
	}
}

// readOnly hides *State behind View so a bot cannot type-assert its way to
// Move or Attack.
type readOnly struct {
	s *State
}

func (r readOnly) Size() Size                      { return r.s.Size() }
func (r readOnly) Units() []UnitView               { return r.s.Units() }
func (r readOnly) TeamUnits(team Team) []UnitView  { return r.s.TeamUnits(team) }
func (r readOnly) Unit(id UnitID) (UnitView, bool) { return r.s.Unit(id) }
func (r readOnly) UnitAt(p Point) (UnitView, bool) { return r.s.UnitAt(p) }
