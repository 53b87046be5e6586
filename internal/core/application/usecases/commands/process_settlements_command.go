package commands

import (
	"errors"

	"logistics/internal/pkg/guard"
)

var ErrProcessSettlementsCommandIsNotConstructed = errors.New(
	"ProcessSettlementsCommand must be created via NewProcessSettlementsCommand constructor",
)

// ProcessSettlementsCommand represents the weekly sweep that settles every
// agency not yet settled during the current calendar week.
type ProcessSettlementsCommand struct {
	guard guard.ConstructorGuard
}

// NewProcessSettlementsCommand creates the sweep command.
func NewProcessSettlementsCommand() ProcessSettlementsCommand {
	return ProcessSettlementsCommand{guard: guard.NewConstructorGuard()}
}

// Validate ensures the command was created through the constructor.
func (c ProcessSettlementsCommand) Validate() error {
	return c.guard.Validate(ErrProcessSettlementsCommandIsNotConstructed)
}
