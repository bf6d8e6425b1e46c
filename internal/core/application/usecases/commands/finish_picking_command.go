package commands

import (
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var ErrFinishPickingCommandIsNotConstructed = errors.New(
	"FinishPickingCommand must be created via NewFinishPickingCommand constructor",
)

// FinishPickingCommand records the end of the picking stage. Both
// timestamps come from the caller: the client measures the time the picker
// physically spent, and the system persists those values verbatim.
type FinishPickingCommand struct { //nolint:recvcheck //using for validation
	orderNumber kernel.OrderNumber
	startedAt   time.Time
	finishedAt  time.Time
	actor       kernel.Actor

	guard guard.ConstructorGuard
}

// NewFinishPickingCommand creates a command to finish picking an order.
// Both timestamps are required and the start must not follow the finish.
func NewFinishPickingCommand(
	orderNumber kernel.OrderNumber,
	startedAt, finishedAt time.Time,
	actor kernel.Actor,
) (FinishPickingCommand, error) {
	command := FinishPickingCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOrderNumber(orderNumber),
		command.setTimestamps(startedAt, finishedAt),
		command.setActor(actor),
	); err != nil {
		return FinishPickingCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c FinishPickingCommand) Validate() error {
	return c.guard.Validate(ErrFinishPickingCommandIsNotConstructed)
}

// OrderNumber returns the order being finished.
func (c FinishPickingCommand) OrderNumber() kernel.OrderNumber {
	return c.orderNumber
}

// StartedAt returns the caller-reported pick start time.
func (c FinishPickingCommand) StartedAt() time.Time {
	return c.startedAt
}

// FinishedAt returns the caller-reported pick finish time.
func (c FinishPickingCommand) FinishedAt() time.Time {
	return c.finishedAt
}

// Actor returns who finished the picking.
func (c FinishPickingCommand) Actor() kernel.Actor {
	return c.actor
}

func (c *FinishPickingCommand) setOrderNumber(orderNumber kernel.OrderNumber) error {
	if err := orderNumber.Validate(); err != nil {
		return err
	}

	c.orderNumber = orderNumber
	return nil
}

func (c *FinishPickingCommand) setTimestamps(startedAt, finishedAt time.Time) error {
	if startedAt.IsZero() {
		return errs.NewValueIsRequiredError("startedAt")
	}
	if finishedAt.IsZero() {
		return errs.NewValueIsRequiredError("finishedAt")
	}
	if finishedAt.Before(startedAt) {
		return errs.NewValueIsInvalidError("finishedAt precedes startedAt")
	}

	c.startedAt = startedAt
	c.finishedAt = finishedAt
	return nil
}

func (c *FinishPickingCommand) setActor(actor kernel.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}
