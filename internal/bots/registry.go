package bots

import (
	"errors"
	"fmt"
	"sort"

	"github.com/Garsondee/Ant-Arena/internal/arena"
)

// ErrUnknownBot is returned by New for a name with no strategy behind it.
var ErrUnknownBot = errors.New("unknown bot")

// Spec describes a bot to build.
type Spec struct {
	Name   string
	Side   arena.Team
	Seed   int64
	Count  int
	Roster []arena.Spawn // nil means DefaultRoster
}

var constructors = map[string]func(Spec) arena.Bot{
	"idle": func(s Spec) arena.Bot {
		return &Idle{Side: s.Side, Roster: s.Roster, Count: s.Count}
	},
	"random": func(s Spec) arena.Bot {
		return NewRandom(s.Side, s.Seed, s.Count, s.Roster)
	},
	"hunter": func(s Spec) arena.Bot {
		return NewHunter(s.Side, s.Seed, s.Count, s.Roster)
	},
}

// New builds the named strategy.
func New(s Spec) (arena.Bot, error) {
	ctor, ok := constructors[s.Name]
	if !ok {
		return nil, fmt.Errorf("%w: %q (known: %v)", ErrUnknownBot, s.Name, Names())
	}
	return ctor(s), nil
}

// Names lists the registered strategies in sorted order.
func Names() []string {
	out := make([]string, 0, len(constructors))
	for n := range constructors {
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}
