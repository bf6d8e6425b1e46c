package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrStartPickingCommandIsNotConstructed = errors.New(
	"StartPickingCommand must be created via NewStartPickingCommand constructor",
)

// StartPickingCommand claims an order for a picker. The claim stamps the
// acting operator and the server clock onto the order, moving it to
// En Proceso.
//
// Example:
//
//	cmd, err := NewStartPickingCommand(orderNumber, actor)
//	if err != nil {
//	    return err
//	}
//	handler := NewStartPickingCommandHandler(uowFactory)
//	err = handler.Handle(ctx, cmd)
type StartPickingCommand struct { //nolint:recvcheck //using for validation
	orderNumber kernel.OrderNumber
	actor       kernel.Actor

	guard guard.ConstructorGuard
}

// NewStartPickingCommand creates a command to claim an order for picking.
func NewStartPickingCommand(orderNumber kernel.OrderNumber, actor kernel.Actor) (StartPickingCommand, error) {
	command := StartPickingCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOrderNumber(orderNumber),
		command.setActor(actor),
	); err != nil {
		return StartPickingCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c StartPickingCommand) Validate() error {
	return c.guard.Validate(ErrStartPickingCommandIsNotConstructed)
}

// OrderNumber returns the order being claimed.
func (c StartPickingCommand) OrderNumber() kernel.OrderNumber {
	return c.orderNumber
}

// Actor returns who is claiming the order.
func (c StartPickingCommand) Actor() kernel.Actor {
	return c.actor
}

func (c *StartPickingCommand) setOrderNumber(orderNumber kernel.OrderNumber) error {
	if err := orderNumber.Validate(); err != nil {
		return err
	}

	c.orderNumber = orderNumber
	return nil
}

func (c *StartPickingCommand) setActor(actor kernel.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}
