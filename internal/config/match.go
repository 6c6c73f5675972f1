// Package config loads match settings from YAML.
package config

import (
	"errors"
	"fmt"

	"github.com/Garsondee/Ant-Arena/internal/arena"
	"github.com/Garsondee/Ant-Arena/internal/bots"
)

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("invalid match config")

type MatchConfig struct {
	Board           BoardConfig `yaml:"board"`
	InitialStrength int         `yaml:"initial_strength"`
	Seed            int64       `yaml:"seed"`
	Steps           int         `yaml:"steps"`
	UnitsPerSide    int         `yaml:"units_per_side"`
	Bots            SidesConfig `yaml:"bots"`
	Rosters         RosterPair  `yaml:"rosters"`
}

type BoardConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

type SidesConfig struct {
	Left  string `yaml:"left"`
	Right string `yaml:"right"`
}

// RosterPair holds optional explicit placements. An empty list means the
// bot uses its default roster.
type RosterPair struct {
	Left  []SpawnConfig `yaml:"left"`
	Right []SpawnConfig `yaml:"right"`
}

type SpawnConfig struct {
	Role string `yaml:"role"`
	X    int    `yaml:"x"`
	Y    int    `yaml:"y"`
}

// Default is a small hunter-versus-random match.
func Default() MatchConfig {
	return MatchConfig{
		Board:           BoardConfig{Width: 12, Height: 9},
		InitialStrength: arena.DefaultStrength,
		Seed:            1,
		Steps:           400,
		UnitsPerSide:    5,
		Bots:            SidesConfig{Left: "hunter", Right: "random"},
	}
}

// Load reads path over Default, so a file only needs the fields it changes.
func Load(path string) (MatchConfig, error) {
	cfg := Default()
	if err := loadYAML(path, &cfg); err != nil {
		return MatchConfig{}, fmt.Errorf("load %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return MatchConfig{}, fmt.Errorf("load %s: %w", path, err)
	}
	return cfg, nil
}

func (c MatchConfig) Size() arena.Size {
	return arena.Size{Width: c.Board.Width, Height: c.Board.Height}
}

func (c MatchConfig) Validate() error {
	if c.Board.Width < 1 || c.Board.Height < 1 {
		return fmt.Errorf("%w: board %dx%d", ErrInvalid, c.Board.Width, c.Board.Height)
	}
	if c.InitialStrength < 1 {
		return fmt.Errorf("%w: initial_strength %d", ErrInvalid, c.InitialStrength)
	}
	if c.Steps < 0 {
		return fmt.Errorf("%w: steps %d", ErrInvalid, c.Steps)
	}
	if c.UnitsPerSide < 0 {
		return fmt.Errorf("%w: units_per_side %d", ErrInvalid, c.UnitsPerSide)
	}
	for _, name := range []string{c.Bots.Left, c.Bots.Right} {
		if _, err := bots.New(bots.Spec{Name: name}); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalid, err)
		}
	}
	for _, r := range [][]SpawnConfig{c.Rosters.Left, c.Rosters.Right} {
		if _, err := spawns(r); err != nil {
			return err
		}
	}
	return nil
}

// Bots builds both sides. The right bot's seed is offset so that two
// random bots with the same config do not mirror each other.
func (c MatchConfig) Bots() (left, right arena.Bot, err error) {
	lr, err := spawns(c.Rosters.Left)
	if err != nil {
		return nil, nil, err
	}
	rr, err := spawns(c.Rosters.Right)
	if err != nil {
		return nil, nil, err
	}
	left, err = bots.New(bots.Spec{Name: c.Bots.Left, Side: arena.TeamLeft, Seed: c.Seed, Count: c.UnitsPerSide, Roster: lr})
	if err != nil {
		return nil, nil, err
	}
	right, err = bots.New(bots.Spec{Name: c.Bots.Right, Side: arena.TeamRight, Seed: c.Seed + 7919, Count: c.UnitsPerSide, Roster: rr})
	if err != nil {
		return nil, nil, err
	}
	return left, right, nil
}

// spawns converts explicit placements. It returns nil for an empty list.
func spawns(in []SpawnConfig) ([]arena.Spawn, error) {
	if len(in) == 0 {
		return nil, nil
	}
	out := make([]arena.Spawn, 0, len(in))
	for i, s := range in {
		role, err := parseRole(s.Role)
		if err != nil {
			return nil, fmt.Errorf("%w: roster entry %d: %w", ErrInvalid, i, err)
		}
		out = append(out, arena.Spawn{Role: role, Position: arena.Point{X: s.X, Y: s.Y}})
	}
	return out, nil
}

func parseRole(s string) (arena.Role, error) {
	switch s {
	case "warrior", "":
		return arena.RoleWarrior, nil
	case "queen":
		return arena.RoleQueen, nil
	default:
		return 0, fmt.Errorf("%w %q", arena.ErrUnknownRole, s)
	}
}

// NewMatch builds both bots, creates the match and places the rosters.
// Options are applied after the configured initial strength.
func (c MatchConfig) NewMatch(opts ...arena.Option) (*arena.GamePlay, error) {
	left, right, err := c.Bots()
	if err != nil {
		return nil, err
	}
	all := append([]arena.Option{arena.WithInitialStrength(c.InitialStrength)}, opts...)
	g, err := arena.NewGamePlay(left, right, all...)
	if err != nil {
		return nil, err
	}
	if err := g.Init(c.Size()); err != nil {
		return nil, err
	}
	return g, nil
}
