package parser

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/averell-io/componentgen/internal/gen"
	"github.com/averell-io/componentgen/internal/model"
	"github.com/averell-io/componentgen/pkg/generator"
)

func parseCanonical(t *testing.T) *Parser {
	t.Helper()
	opts := generator.NewOptions()
	opts.InDir = filepath.Join("testdata", "fixtures", "canonical")
	p, err := NewWithOpts(opts)
	require.NoError(t, err)
	require.NoError(t, p.Parse())
	return p
}

func TestNewAppliesFunctionalOptions(t *testing.T) {
	p, err := New(
		generator.WithInDir(filepath.Join("testdata", "fixtures", "canonical")),
		generator.WithDryRun(),
	)
	require.NoError(t, err)
	require.True(t, p.Opts.DryRun)

	require.NoError(t, p.Parse())
	require.Equal(t, "example.com/canonical", p.ModulePath)
	require.NotNil(t, p.Decls.Find("User"))
}

func TestParseCollectsOnlyMarkedTypes(t *testing.T) {
	p := parseCanonical(t)

	require.Equal(t, "example.com/canonical", p.ModulePath)
	require.Len(t, p.Decls, 4)
	require.Nil(t, p.Decls.Find("Internal"))

	for _, name := range []string{"Address", "User", "Billing", "Auditor"} {
		d := p.Decls.Find(name)
		require.NotNil(t, d, name)
		require.Equal(t, "example.com/canonical", d.PkgPath)
		require.Equal(t, "canonical", d.PkgName)
		require.True(t, d.Exported)
	}
}

func TestParseFieldTypes(t *testing.T) {
	p := parseCanonical(t)
	user := p.Decls.Find("User")
	require.NotNil(t, user)
	require.True(t, user.DataObject)
	require.False(t, user.Component)

	name := user.Field("Name")
	require.NotNil(t, name)
	require.Equal(t, model.KindString, name.Type.Kind)

	age := user.Field("Age")
	require.NotNil(t, age)
	require.Equal(t, model.KindBasic, age.Type.Kind)
	require.Equal(t, "int", age.Type.Name)

	tags := user.Field("Tags")
	require.NotNil(t, tags)
	require.Equal(t, model.KindSlice, tags.Type.Kind)
	require.Equal(t, model.KindString, tags.Type.Elem.Kind)

	attrs := user.Field("Attrs")
	require.NotNil(t, attrs)
	require.Equal(t, model.KindMap, attrs.Type.Kind)
	require.Equal(t, model.KindString, attrs.Type.Key.Kind)
	require.Equal(t, model.KindAny, attrs.Type.Elem.Kind)
}

func TestParseLinksNamedTypes(t *testing.T) {
	p := parseCanonical(t)
	user := p.Decls.Find("User")
	require.NotNil(t, user)

	home := user.Field("Home")
	require.NotNil(t, home)
	require.Equal(t, model.KindNamed, home.Type.Kind)
	require.True(t, home.Type.IsDataObject())
	require.Same(t, p.Decls.Find("Address"), home.Type.Decl)
}

func TestParseConstructors(t *testing.T) {
	p := parseCanonical(t)
	user := p.Decls.Find("User")
	require.NotNil(t, user)

	// NewUser counts; NewUserNamed names no collected type and is skipped.
	require.Len(t, user.Constructors, 1)
	require.Equal(t, "NewUser", user.Constructors[0].Name)
	require.Zero(t, user.Constructors[0].NumParams)

	require.Empty(t, p.Decls.Find("Address").Constructors)
}

func TestParseEmbeddedBase(t *testing.T) {
	p := parseCanonical(t)
	billing := p.Decls.Find("Billing")
	require.NotNil(t, billing)
	require.Equal(t, "Address", billing.EmbeddedBase)

	// The embedded field is a base, not a data field.
	require.Nil(t, billing.Field("Address"))
	require.NotNil(t, billing.Field("VAT"))
}

func TestParseStrayHandlerDirectiveIsDiagnosed(t *testing.T) {
	opts := generator.NewOptions()
	opts.InDir = filepath.Join("testdata", "fixtures", "stray")
	p, err := NewWithOpts(opts)
	require.NoError(t, err)
	require.NoError(t, p.Parse())

	// The unmarked receiver is still collected, handler attached, so the
	// contract check can attribute its error.
	monitor := p.Decls.Find("Monitor")
	require.NotNil(t, monitor)
	require.False(t, monitor.Component)
	require.False(t, monitor.DataObject)
	require.Len(t, monitor.Handlers, 1)
	require.Equal(t, "OnPing", monitor.Handlers[0].Name)

	res, err := gen.New(&p.Opts).Run(p.Decls)
	require.NoError(t, err)
	require.Len(t, res.Diagnostics, 1)
	require.Equal(t, "example.com.stray.Monitor", res.Diagnostics[0].Decl)
	require.Equal(t, "OnPing", res.Diagnostics[0].Field)
	require.Contains(t, res.Diagnostics[0].Message, "component directive")
	require.Empty(t, res.Files)
}

func TestParseHandlersAndAttrs(t *testing.T) {
	p := parseCanonical(t)
	auditor := p.Decls.Find("Auditor")
	require.NotNil(t, auditor)
	require.True(t, auditor.Component)
	require.False(t, auditor.DataObject)
	require.Equal(t, []string{
		"name=auditor",
		"service=example.com/canonical.Auditor",
		"property=rank=1",
	}, auditor.Attrs)

	// Reset has no directive and is not a handler.
	require.Len(t, auditor.Handlers, 2)
	names := []string{auditor.Handlers[0].Name, auditor.Handlers[1].Name}
	require.ElementsMatch(t, []string{"OnUser", "OnAddress"}, names)

	for _, h := range auditor.Handlers {
		require.Len(t, h.Params, 1)
		require.True(t, h.Params[0].IsDataObject())
	}
}
