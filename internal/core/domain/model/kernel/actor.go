package kernel

import (
	"fmt"

	"fulfillment/internal/pkg/errs"
)

// UnknownActorName is the attribution recorded when the authenticated
// identity carries no usable name. The fallback is applied exactly once,
// in ResolveActor, so the rest of the system never deals with an
// absent actor name.
const UnknownActorName = "Desconocido"

const maxActorNameLength = 100

// Actor is the identity performing a workflow stage, reduced to the
// display name that gets stamped on orders and evidence. It is always
// non-empty: construction degrades to UnknownActorName rather than
// producing an empty actor.
type Actor struct {
	displayName string
}

// ResolveActor builds an Actor from the fields an identity token may or
// may not carry, preferring the display name, then the username, then
// UnknownActorName.
func ResolveActor(displayName, username string) Actor {
	name := displayName
	if name == "" {
		name = username
	}
	if name == "" {
		name = UnknownActorName
	}
	if len(name) > maxActorNameLength {
		name = name[:maxActorNameLength]
	}
	return Actor{displayName: name}
}

// NewActor builds an Actor from an already-resolved display name.
// Unlike ResolveActor it rejects an empty name instead of degrading.
func NewActor(displayName string) (Actor, error) {
	if displayName == "" {
		return Actor{}, errs.NewValueIsRequiredError("displayName")
	}
	if len(displayName) > maxActorNameLength {
		return Actor{}, errs.NewValueIsOutOfRangeErrorWithCause(
			"displayName", len(displayName), 1, maxActorNameLength,
			fmt.Errorf("%q is too long", displayName))
	}
	return Actor{displayName: displayName}, nil
}

// Validate checks the actor carries a name.
func (a Actor) Validate() error {
	if a.displayName == "" {
		return errs.NewValueIsRequiredError("displayName")
	}
	return nil
}

// DisplayName returns the name stamped on workflow fields.
func (a Actor) DisplayName() string {
	return a.displayName
}

// IsUnknown reports whether the actor degraded to the fallback name.
func (a Actor) IsUnknown() bool {
	return a.displayName == UnknownActorName
}

func (a Actor) String() string {
	return a.displayName
}
