package arena

import "errors"

// Configuration errors: the match cannot be created or initialized.
var (
	ErrNilBot         = errors.New("nil bot")
	ErrDuplicateUnit  = errors.New("duplicate unit id")
	ErrOutOfBounds    = errors.New("position out of bounds")
	ErrCellOccupied   = errors.New("cell already occupied")
	ErrUnknownRole    = errors.New("unknown role")
	ErrBadStrength    = errors.New("initial strength must be positive")
	ErrBadBoard       = errors.New("board must have positive width and height")
	ErrNotInitialized = errors.New("match not initialized")
)

// Protocol violations: a bot issued a command the core refuses to apply.
var (
	ErrUnitNotFound  = errors.New("unit not found")
	ErrForeignUnit   = errors.New("unit belongs to another team")
	ErrUnknownCourse = errors.New("unknown course")
	ErrUnknownAction = errors.New("unknown action")
	ErrBadTeam       = errors.New("team slot out of range")
)
