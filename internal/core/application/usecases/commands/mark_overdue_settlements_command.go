package commands

import (
	"errors"

	"logistics/internal/pkg/guard"
)

var ErrMarkOverdueSettlementsCommandIsNotConstructed = errors.New(
	"MarkOverdueSettlementsCommand must be created via NewMarkOverdueSettlementsCommand constructor",
)

// MarkOverdueSettlementsCommand represents the sweep that flips pending
// settlements past their due date to overdue.
type MarkOverdueSettlementsCommand struct {
	guard guard.ConstructorGuard
}

// NewMarkOverdueSettlementsCommand creates the sweep command.
func NewMarkOverdueSettlementsCommand() MarkOverdueSettlementsCommand {
	return MarkOverdueSettlementsCommand{guard: guard.NewConstructorGuard()}
}

// Validate ensures the command was created through the constructor.
func (c MarkOverdueSettlementsCommand) Validate() error {
	return c.guard.Validate(ErrMarkOverdueSettlementsCommandIsNotConstructed)
}
