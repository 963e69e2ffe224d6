package manifest

import (
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileIsEmpty(t *testing.T) {
	m, err := Load(filepath.Join(t.TempDir(), "components.yaml"))
	require.NoError(t, err)
	require.Empty(t, m.Module)
	require.Empty(t, m.DataObjects)
	require.Empty(t, m.Components)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "components.yaml")

	m := &Manifest{Module: "example.com/demo"}
	m.AddDataObject("example.com.demo.User")
	m.AddDataObject("example.com.demo.Address")
	m.AddComponent(Component{
		Name:   "auditor",
		File:   "demo/componentgen_gen.go",
		Topics: []string{"example/com/demo/User"},
	})
	require.NoError(t, m.Save(path))

	got, err := Load(path)
	require.NoError(t, err)
	require.Empty(t, cmp.Diff(m, got))
}

func TestAddComponentReplacesByName(t *testing.T) {
	m := &Manifest{}
	m.AddComponent(Component{Name: "auditor", File: "a.go"})
	m.AddComponent(Component{Name: "monitor", File: "b.go"})
	m.AddComponent(Component{Name: "auditor", File: "c.go", Topics: []string{"t"}})

	require.Len(t, m.Components, 2)
	require.Equal(t, "c.go", m.ComponentFile("auditor"))
	require.Equal(t, "b.go", m.ComponentFile("monitor"))
	require.Empty(t, m.ComponentFile("absent"))
}

func TestAddDataObjectDeduplicates(t *testing.T) {
	m := &Manifest{}
	m.AddDataObject("a.B")
	m.AddDataObject("a.B")
	m.AddDataObject("a.C")
	require.Equal(t, []string{"a.B", "a.C"}, m.DataObjects)
}
