package guard_test

import (
	"errors"
	"testing"

	"logistics/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructorGuard_Validate(t *testing.T) {
	errNotConstructed := errors.New("thing must be created via NewThing")

	t.Run("should pass for constructed guard", func(t *testing.T) {
		g := guard.NewConstructorGuard()
		require.NoError(t, g.Validate(errNotConstructed))
	})

	t.Run("should fail for zero-value guard", func(t *testing.T) {
		var g guard.ConstructorGuard
		err := g.Validate(errNotConstructed)
		assert.Equal(t, errNotConstructed, err)
	})

	t.Run("should fall back to default error when nil is passed", func(t *testing.T) {
		var g guard.ConstructorGuard
		err := g.Validate(nil)
		assert.Equal(t, guard.ErrDefaultConstructorGuard, err)
	})
}
