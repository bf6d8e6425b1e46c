package orderline_test

import (
	"strings"
	"testing"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/orderline"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLine(t *testing.T) *orderline.Line {
	t.Helper()
	lineID, err := kernel.NewLineID(7)
	require.NoError(t, err)
	orderNumber, err := kernel.NewOrderNumber(1001)
	require.NoError(t, err)

	line, err := orderline.NewLine(lineID, orderNumber, 1, "REF-882", "Tornillo 3/8", 24, 1250.0)
	require.NoError(t, err)
	return line
}

func TestNewLine(t *testing.T) {
	t.Run("creates line with nothing picked or packed", func(t *testing.T) {
		line := newTestLine(t)

		assert.Equal(t, 7, line.ID().Int())
		assert.Equal(t, 1001, line.OrderNumber().Int())
		assert.Equal(t, 1, line.Sequence())
		assert.Equal(t, "REF-882", line.Reference())
		assert.Equal(t, 24, line.RequestedQuantity())
		assert.Nil(t, line.PickedQuantity())
		assert.Nil(t, line.PackedQuantity())
		assert.Nil(t, line.Box())
		require.NoError(t, line.Validate())
	})

	t.Run("rejects empty reference", func(t *testing.T) {
		lineID, _ := kernel.NewLineID(7)
		orderNumber, _ := kernel.NewOrderNumber(1001)

		_, err := orderline.NewLine(lineID, orderNumber, 1, "", "desc", 1, 0)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("rejects negative requested quantity", func(t *testing.T) {
		lineID, _ := kernel.NewLineID(7)
		orderNumber, _ := kernel.NewOrderNumber(1001)

		_, err := orderline.NewLine(lineID, orderNumber, 1, "REF", "desc", -1, 0)

		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("rejects overlong description", func(t *testing.T) {
		lineID, _ := kernel.NewLineID(7)
		orderNumber, _ := kernel.NewOrderNumber(1001)

		_, err := orderline.NewLine(lineID, orderNumber, 1, "REF", strings.Repeat("x", 256), 1, 0)

		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("rejects non-positive sequence", func(t *testing.T) {
		lineID, _ := kernel.NewLineID(7)
		orderNumber, _ := kernel.NewOrderNumber(1001)

		_, err := orderline.NewLine(lineID, orderNumber, 0, "REF", "desc", 1, 0)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("zero value line fails validation", func(t *testing.T) {
		var line orderline.Line

		require.ErrorIs(t, line.Validate(), orderline.ErrLineIsNotConstructed)
	})
}

func TestLine_SetPickedQuantity(t *testing.T) {
	t.Run("overwrites rather than accumulates", func(t *testing.T) {
		line := newTestLine(t)

		require.NoError(t, line.SetPickedQuantity(10))
		require.NoError(t, line.SetPickedQuantity(4))

		require.NotNil(t, line.PickedQuantity())
		assert.Equal(t, 4, *line.PickedQuantity())
	})

	t.Run("partial fulfillment is allowed", func(t *testing.T) {
		line := newTestLine(t)

		// requested 24, only 20 on the shelf
		require.NoError(t, line.SetPickedQuantity(20))
		assert.Equal(t, 20, *line.PickedQuantity())
	})

	t.Run("rejects negative values", func(t *testing.T) {
		line := newTestLine(t)

		require.ErrorIs(t, line.SetPickedQuantity(-1), errs.ErrValueIsOutOfRange)
	})
}

func TestLine_AddPickedQuantity(t *testing.T) {
	t.Run("accumulates from zero", func(t *testing.T) {
		line := newTestLine(t)

		require.NoError(t, line.AddPickedQuantity(10))
		require.NoError(t, line.AddPickedQuantity(5))

		assert.Equal(t, 15, *line.PickedQuantity())
	})

	t.Run("negative delta corrects an over-report", func(t *testing.T) {
		line := newTestLine(t)

		require.NoError(t, line.AddPickedQuantity(10))
		require.NoError(t, line.AddPickedQuantity(-3))

		assert.Equal(t, 7, *line.PickedQuantity())
	})

	t.Run("rejects going below zero", func(t *testing.T) {
		line := newTestLine(t)

		require.NoError(t, line.AddPickedQuantity(2))
		require.ErrorIs(t, line.AddPickedQuantity(-5), errs.ErrValueIsOutOfRange)
		assert.Equal(t, 2, *line.PickedQuantity())
	})
}

func TestLine_SetPackedQuantity(t *testing.T) {
	t.Run("rejects packing more than was picked", func(t *testing.T) {
		line := newTestLine(t)
		require.NoError(t, line.SetPickedQuantity(10))

		err := line.SetPackedQuantity(12)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Nil(t, line.PackedQuantity())
	})

	t.Run("allows packing at most the picked quantity", func(t *testing.T) {
		line := newTestLine(t)
		require.NoError(t, line.SetPickedQuantity(10))

		require.NoError(t, line.SetPackedQuantity(10))
		assert.Equal(t, 10, *line.PackedQuantity())
	})

	t.Run("allows packing when picked quantity is unreported", func(t *testing.T) {
		// The picked quantity is unknown, not zero; nothing to check against.
		line := newTestLine(t)

		require.NoError(t, line.SetPackedQuantity(5))
		assert.Equal(t, 5, *line.PackedQuantity())
	})
}

func TestLine_AssignBox(t *testing.T) {
	t.Run("records the container label", func(t *testing.T) {
		line := newTestLine(t)

		require.NoError(t, line.AssignBox("CAJA-3"))

		require.NotNil(t, line.Box())
		assert.Equal(t, "CAJA-3", *line.Box())
	})

	t.Run("rejects empty label", func(t *testing.T) {
		line := newTestLine(t)

		require.ErrorIs(t, line.AssignBox(""), errs.ErrValueIsRequired)
	})

	t.Run("rejects overlong label", func(t *testing.T) {
		line := newTestLine(t)

		require.ErrorIs(t, line.AssignBox(strings.Repeat("x", 101)), errs.ErrValueIsOutOfRange)
	})
}

func TestRestoreLine(t *testing.T) {
	t.Run("restores reported quantities and box", func(t *testing.T) {
		lineID, _ := kernel.NewLineID(7)
		orderNumber, _ := kernel.NewOrderNumber(1001)
		picked, packed := 20, 18
		box := "CAJA-1"

		line, err := orderline.RestoreLine(
			lineID, orderNumber, 2, "REF-1", "desc", 24, &picked, &packed, &box, 100)

		require.NoError(t, err)
		assert.Equal(t, 20, *line.PickedQuantity())
		assert.Equal(t, 18, *line.PackedQuantity())
		assert.Equal(t, "CAJA-1", *line.Box())
	})

	t.Run("rejects a row where packed exceeds picked", func(t *testing.T) {
		lineID, _ := kernel.NewLineID(7)
		orderNumber, _ := kernel.NewOrderNumber(1001)
		picked, packed := 5, 9

		_, err := orderline.RestoreLine(
			lineID, orderNumber, 2, "REF-1", "desc", 24, &picked, &packed, nil, 100)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}
