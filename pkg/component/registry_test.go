package component

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRegistry(t *testing.T) {
	r := NewRegistry()
	r.Register(Definition{Name: "a", Scope: "prototype"})
	r.Register(Definition{Name: "b"})

	got, ok := r.Lookup("a")
	require.True(t, ok)
	require.Equal(t, "prototype", got.Scope)

	_, ok = r.Lookup("missing")
	require.False(t, ok)

	// Re-registering replaces in place, keeping order.
	r.Register(Definition{Name: "a", Scope: "singleton"})
	defs := r.Definitions()
	require.Len(t, defs, 2)
	require.Equal(t, "a", defs[0].Name)
	require.Equal(t, "singleton", defs[0].Scope)
	require.Equal(t, "b", defs[1].Name)
}
