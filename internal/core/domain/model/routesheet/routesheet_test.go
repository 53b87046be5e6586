package routesheet_test

import (
	"testing"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/routesheet"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSheet(t *testing.T) *routesheet.RouteSheet {
	t.Helper()
	dest, err := kernel.NewPlace("Rosario", "Santa Fe")
	require.NoError(t, err)
	sheet, err := routesheet.NewRouteSheet(kernel.NewUUID(), routesheet.CodeFor(1), dest,
		kernel.NewUUID(), []kernel.UUID{kernel.NewUUID(), kernel.NewUUID()}, time.Now())
	require.NoError(t, err)
	return sheet
}

func TestCodeFor(t *testing.T) {
	assert.Equal(t, "HR0001", routesheet.CodeFor(1))
	assert.Equal(t, "HR0042", routesheet.CodeFor(42))
	assert.Equal(t, "HR12345", routesheet.CodeFor(12345))
}

func TestNewRouteSheet(t *testing.T) {
	t.Run("should create pending sheet", func(t *testing.T) {
		sheet := testSheet(t)

		require.NoError(t, sheet.Validate())
		assert.Equal(t, routesheet.StatusPending, sheet.Status())
		assert.Nil(t, sheet.Carrier())
		assert.Nil(t, sheet.AssignedAt())
		assert.True(t, sheet.IsActive())
		assert.Len(t, sheet.Orders(), 2)
	})

	t.Run("should fail without orders", func(t *testing.T) {
		dest, _ := kernel.NewPlace("Rosario", "Santa Fe")
		_, err := routesheet.NewRouteSheet(kernel.NewUUID(), "HR0001", dest, kernel.NewUUID(), nil, time.Now())
		require.Error(t, err)
	})
}

func TestRouteSheet_AssignCarrier(t *testing.T) {
	t.Run("should assign carrier and stamp time", func(t *testing.T) {
		sheet := testSheet(t)
		carrierID := kernel.NewUUID()
		at := time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC)

		require.NoError(t, sheet.AssignCarrier(carrierID, at))

		assert.Equal(t, routesheet.StatusAssigned, sheet.Status())
		assert.True(t, sheet.Carrier().IsEqual(carrierID))
		require.NotNil(t, sheet.AssignedAt())
		assert.Equal(t, at, *sheet.AssignedAt())
		assert.True(t, sheet.IsActive())
	})

	t.Run("should reject double assignment", func(t *testing.T) {
		sheet := testSheet(t)
		require.NoError(t, sheet.AssignCarrier(kernel.NewUUID(), time.Now()))
		require.Error(t, sheet.AssignCarrier(kernel.NewUUID(), time.Now()))
	})
}

func TestRouteSheet_Lifecycle(t *testing.T) {
	t.Run("assigned sheet can start then complete", func(t *testing.T) {
		sheet := testSheet(t)
		require.NoError(t, sheet.AssignCarrier(kernel.NewUUID(), time.Now()))
		require.NoError(t, sheet.Start())
		assert.Equal(t, routesheet.StatusInProgress, sheet.Status())
		assert.True(t, sheet.IsActive())

		require.NoError(t, sheet.Complete(time.Now()))
		assert.Equal(t, routesheet.StatusCompleted, sheet.Status())
		assert.False(t, sheet.IsActive())
		assert.NotNil(t, sheet.CompletedAt())
	})

	t.Run("pending sheet cannot start or complete", func(t *testing.T) {
		sheet := testSheet(t)
		require.Error(t, sheet.Start())
		require.Error(t, sheet.Complete(time.Now()))
	})
}

func TestRouteSheet_BlocksDestination(t *testing.T) {
	sheet := testSheet(t)
	sameDest, _ := kernel.NewPlace("rosario", "SANTA FE")
	otherDest, _ := kernel.NewPlace("Santa Fe", "Santa Fe")

	t.Run("active sheet blocks same agency and destination, case-insensitive", func(t *testing.T) {
		assert.True(t, sheet.BlocksDestination(sheet.Agency(), sameDest))
	})

	t.Run("different destination does not block", func(t *testing.T) {
		assert.False(t, sheet.BlocksDestination(sheet.Agency(), otherDest))
	})

	t.Run("different agency does not block", func(t *testing.T) {
		assert.False(t, sheet.BlocksDestination(kernel.NewUUID(), sameDest))
	})

	t.Run("completed sheet does not block", func(t *testing.T) {
		require.NoError(t, sheet.AssignCarrier(kernel.NewUUID(), time.Now()))
		require.NoError(t, sheet.Complete(time.Now()))
		assert.False(t, sheet.BlocksDestination(sheet.Agency(), sameDest))
	})
}
