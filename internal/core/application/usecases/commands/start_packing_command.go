package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrStartPackingCommandIsNotConstructed = errors.New(
	"StartPackingCommand must be created via NewStartPackingCommand constructor",
)

// StartPackingCommand claims an order for a packer, moving it from
// Listo para empacar to Empacando.
type StartPackingCommand struct { //nolint:recvcheck //using for validation
	orderNumber kernel.OrderNumber
	actor       kernel.Actor

	guard guard.ConstructorGuard
}

// NewStartPackingCommand creates a command to claim an order for packing.
func NewStartPackingCommand(orderNumber kernel.OrderNumber, actor kernel.Actor) (StartPackingCommand, error) {
	command := StartPackingCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOrderNumber(orderNumber),
		command.setActor(actor),
	); err != nil {
		return StartPackingCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c StartPackingCommand) Validate() error {
	return c.guard.Validate(ErrStartPackingCommandIsNotConstructed)
}

// OrderNumber returns the order being claimed.
func (c StartPackingCommand) OrderNumber() kernel.OrderNumber {
	return c.orderNumber
}

// Actor returns who is claiming the order.
func (c StartPackingCommand) Actor() kernel.Actor {
	return c.actor
}

func (c *StartPackingCommand) setOrderNumber(orderNumber kernel.OrderNumber) error {
	if err := orderNumber.Validate(); err != nil {
		return err
	}

	c.orderNumber = orderNumber
	return nil
}

func (c *StartPackingCommand) setActor(actor kernel.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}
