package guard_test

import (
	"errors"
	"testing"

	"coldroute/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errTestNotConstructed = errors.New("object must be created via constructor")

type guardedValue struct {
	guard guard.ConstructorGuard
}

func newGuardedValue() guardedValue {
	return guardedValue{guard: guard.NewConstructorGuard()}
}

func (v guardedValue) Validate() error {
	return v.guard.Validate(errTestNotConstructed)
}

func TestConstructorGuard_Validate(t *testing.T) {
	t.Run("constructed guard passes validation", func(t *testing.T) {
		g := guard.NewConstructorGuard()

		require.NoError(t, g.Validate(errTestNotConstructed))
	})

	t.Run("zero value guard fails validation", func(t *testing.T) {
		var g guard.ConstructorGuard

		err := g.Validate(errTestNotConstructed)

		require.Error(t, err)
		assert.Equal(t, errTestNotConstructed, err)
	})

	t.Run("zero value guard with nil error returns default", func(t *testing.T) {
		var g guard.ConstructorGuard

		err := g.Validate(nil)

		require.Error(t, err)
		require.ErrorIs(t, err, guard.ErrDefaultConstructorGuard)
	})

	t.Run("constructed guard with nil error passes", func(t *testing.T) {
		g := guard.NewConstructorGuard()

		require.NoError(t, g.Validate(nil))
	})
}

func TestConstructorGuard_EmbeddedUsage(t *testing.T) {
	t.Run("value created via constructor is valid", func(t *testing.T) {
		v := newGuardedValue()

		require.NoError(t, v.Validate())
	})

	t.Run("zero value struct is invalid", func(t *testing.T) {
		var v guardedValue

		err := v.Validate()

		require.Error(t, err)
		assert.Equal(t, errTestNotConstructed, err)
	})

	t.Run("guard survives copying", func(t *testing.T) {
		v := newGuardedValue()
		copied := v

		require.NoError(t, copied.Validate())
	})
}
