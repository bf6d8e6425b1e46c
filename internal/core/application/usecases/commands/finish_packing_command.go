package commands

import (
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var ErrFinishPackingCommandIsNotConstructed = errors.New(
	"FinishPackingCommand must be created via NewFinishPackingCommand constructor",
)

// FinishPackingCommand records the end of the packing stage, moving the
// order to Listo para despachar. Like FinishPickingCommand, the stage
// timestamps are caller-reported and persisted verbatim.
type FinishPackingCommand struct { //nolint:recvcheck //using for validation
	orderNumber kernel.OrderNumber
	startedAt   time.Time
	finishedAt  time.Time
	actor       kernel.Actor

	guard guard.ConstructorGuard
}

// NewFinishPackingCommand creates a command to finish packing an order.
func NewFinishPackingCommand(
	orderNumber kernel.OrderNumber,
	startedAt, finishedAt time.Time,
	actor kernel.Actor,
) (FinishPackingCommand, error) {
	command := FinishPackingCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOrderNumber(orderNumber),
		command.setTimestamps(startedAt, finishedAt),
		command.setActor(actor),
	); err != nil {
		return FinishPackingCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c FinishPackingCommand) Validate() error {
	return c.guard.Validate(ErrFinishPackingCommandIsNotConstructed)
}

// OrderNumber returns the order being finished.
func (c FinishPackingCommand) OrderNumber() kernel.OrderNumber {
	return c.orderNumber
}

// StartedAt returns the caller-reported pack start time.
func (c FinishPackingCommand) StartedAt() time.Time {
	return c.startedAt
}

// FinishedAt returns the caller-reported pack finish time.
func (c FinishPackingCommand) FinishedAt() time.Time {
	return c.finishedAt
}

// Actor returns who finished the packing.
func (c FinishPackingCommand) Actor() kernel.Actor {
	return c.actor
}

func (c *FinishPackingCommand) setOrderNumber(orderNumber kernel.OrderNumber) error {
	if err := orderNumber.Validate(); err != nil {
		return err
	}

	c.orderNumber = orderNumber
	return nil
}

func (c *FinishPackingCommand) setTimestamps(startedAt, finishedAt time.Time) error {
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

func (c *FinishPackingCommand) setActor(actor kernel.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}
