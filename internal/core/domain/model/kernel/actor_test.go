package kernel_test

import (
	"strings"
	"testing"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveActor(t *testing.T) {
	t.Run("prefers display name", func(t *testing.T) {
		actor := kernel.ResolveActor("Ana Gómez", "agomez")

		assert.Equal(t, "Ana Gómez", actor.DisplayName())
		assert.False(t, actor.IsUnknown())
		require.NoError(t, actor.Validate())
	})

	t.Run("falls back to username", func(t *testing.T) {
		actor := kernel.ResolveActor("", "agomez")

		assert.Equal(t, "agomez", actor.DisplayName())
		assert.False(t, actor.IsUnknown())
	})

	t.Run("falls back to unknown when both empty", func(t *testing.T) {
		actor := kernel.ResolveActor("", "")

		assert.Equal(t, kernel.UnknownActorName, actor.DisplayName())
		assert.True(t, actor.IsUnknown())
		require.NoError(t, actor.Validate())
	})

	t.Run("truncates overlong names", func(t *testing.T) {
		actor := kernel.ResolveActor(strings.Repeat("a", 150), "")

		assert.Len(t, actor.DisplayName(), 100)
	})
}

func TestNewActor(t *testing.T) {
	t.Run("accepts valid name", func(t *testing.T) {
		actor, err := kernel.NewActor("Luis")

		require.NoError(t, err)
		assert.Equal(t, "Luis", actor.DisplayName())
		assert.Equal(t, "Luis", actor.String())
	})

	t.Run("rejects empty name", func(t *testing.T) {
		_, err := kernel.NewActor("")

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("rejects overlong name", func(t *testing.T) {
		_, err := kernel.NewActor(strings.Repeat("a", 101))

		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})
}

func TestActor_Validate(t *testing.T) {
	t.Run("zero value actor fails validation", func(t *testing.T) {
		var actor kernel.Actor

		require.ErrorIs(t, actor.Validate(), errs.ErrValueIsRequired)
	})
}
