package component

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestSubscribePrependsTopic(t *testing.T) {
	d := Definition{Properties: []string{"custom=1"}}
	d = d.Subscribe("a/b/X")
	d = d.Subscribe("a/b/Y")

	want := []string{"event.topics=a/b/Y", "event.topics=a/b/X", "custom=1"}
	require.Empty(t, cmp.Diff(want, d.Properties))
	require.Equal(t, []string{"a/b/Y", "a/b/X"}, d.Topics())
}

func TestTopicsKeepsEmptyValues(t *testing.T) {
	d := Definition{Properties: []string{
		"event.topics=",
		"custom=1",
		"event.topics=a/b/X",
	}}
	require.Equal(t, []string{"", "a/b/X"}, d.Topics())
}

func TestSubscribeForcesImmediateWithoutServices(t *testing.T) {
	d := Definition{}.Subscribe("a/b/X")
	require.Equal(t, True, d.Immediate)
}

func TestSubscribeRespectsExplicitImmediateFalse(t *testing.T) {
	d := Definition{Immediate: False}.Subscribe("a/b/X")
	require.Equal(t, False, d.Immediate)
}

func TestSubscribeLeavesImmediateWhenServicesDeclared(t *testing.T) {
	d := Definition{Services: []string{"org.example.Audit"}}.Subscribe("a/b/X")
	require.Equal(t, Unset, d.Immediate)
}

func TestSubscribeAddsMarkerService(t *testing.T) {
	d := Definition{Services: []string{"org.example.Audit"}}.Subscribe("a/b/X")
	require.Equal(t, []string{"org.example.Audit", MarkerService}, d.Services)

	// Idempotent: the marker is not appended twice.
	d = d.Subscribe("a/b/Y")
	require.Equal(t, []string{"org.example.Audit", MarkerService}, d.Services)
}

func TestTriBool(t *testing.T) {
	require.True(t, Unset.Bool(true))
	require.False(t, Unset.Bool(false))
	require.True(t, True.Bool(false))
	require.False(t, False.Bool(true))
	require.Equal(t, True, Unset.Or(True))
	require.Equal(t, False, False.Or(True))
}
