package kernel_test

import (
	"testing"

	"logistics/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUUID(t *testing.T) {
	t.Run("NewUUID should create valid UUID", func(t *testing.T) {
		id := kernel.NewUUID()
		require.NoError(t, id.Validate())
		assert.Len(t, id.String(), 36)
	})

	t.Run("zero value should fail validation", func(t *testing.T) {
		var id kernel.UUID
		require.Error(t, id.Validate())
	})

	t.Run("UUIDFromString round-trips", func(t *testing.T) {
		original := kernel.NewUUID()
		parsed, err := kernel.UUIDFromString(original.String())
		require.NoError(t, err)
		assert.True(t, original.IsEqual(parsed))
	})

	t.Run("UUIDFromString should reject garbage", func(t *testing.T) {
		_, err := kernel.UUIDFromString("not-a-uuid")
		require.Error(t, err)
	})

	t.Run("UUIDFromBytes round-trips", func(t *testing.T) {
		original := kernel.NewUUID()
		raw := original.Bytes()
		parsed, err := kernel.UUIDFromBytes(raw[:])
		require.NoError(t, err)
		assert.True(t, original.IsEqual(parsed))
	})
}
