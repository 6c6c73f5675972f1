package arena

import "fmt"

//go:generate go tool mockgen -destination=./mocks/bot_mock.go -package=mocks . Bot

// Action selects what a command does to the cell along its course.
type Action int

const (
	ActionMove Action = iota
	ActionAttack
)

// Valid reports whether a is a defined action.
func (a Action) Valid() bool {
	return a == ActionMove || a == ActionAttack
}

func (a Action) String() string {
	switch a {
	case ActionMove:
		return "move"
	case ActionAttack:
		return "attack"
	default:
		return fmt.Sprintf("action(%d)", int(a))
	}
}

// Command is a bot's decision for one turn.
type Command struct {
	Course Course
	Action Action
	Unit   UnitID
}

func (c Command) String() string {
	return fmt.Sprintf("%s %s %s", c.Unit.Label(), c.Action, c.Course)
}

// Bot is a strategy provider. Init is called once per match with the board
// size and returns the bot's roster; Command is called once per round.
// Bots only ever see the match through View.
type Bot interface {
	Init(size Size) []Spawn
	Command(view View, team Team) Command
}

// BotFuncs turns a pair of plain functions into a Bot.
type BotFuncs struct {
	InitFunc    func(size Size) []Spawn
	CommandFunc func(view View, team Team) Command
}

func (b BotFuncs) Init(size Size) []Spawn {
	if b.InitFunc == nil {
		return nil
	}
	return b.InitFunc(size)
}

func (b BotFuncs) Command(view View, team Team) Command {
	return b.CommandFunc(view, team)
}
