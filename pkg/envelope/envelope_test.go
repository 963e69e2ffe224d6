package envelope

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTopicDerivation(t *testing.T) {
	tests := []struct {
		qualified string
		want      string
	}{
		{qualified: "a.b.C", want: "a/b/C"},
		{qualified: "example.com.demo.events.UserCreated", want: "example/com/demo/events/UserCreated"},
		{qualified: "C", want: "C"},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, Topic(tt.qualified))
	}
}

func TestProperty(t *testing.T) {
	ev := New("a/b/C", map[string]any{"Name": "x", "Age": 3})
	require.Equal(t, "a/b/C", ev.Topic)
	require.Equal(t, "x", ev.Property("Name"))
	require.Equal(t, 3, ev.Property("Age"))
	require.Nil(t, ev.Property("Missing"))
}
