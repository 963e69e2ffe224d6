package validate

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/averell-io/componentgen/internal/diag"
	"github.com/averell-io/componentgen/internal/model"
)

func TestDataObjectAcceptsWellFormed(t *testing.T) {
	d := dto("User",
		field("Name", str()),
		field("Age", basic("int")),
		field("Tags", slice(str())),
	)
	d.Constructors = []*model.ConstructorDecl{{Name: "NewUser", NumParams: 0}}

	r := diag.NewReporter()
	require.True(t, DataObject(r, d))
	require.False(t, r.HasErrors())
}

func TestDataObjectRejectsUnexportedType(t *testing.T) {
	d := dto("user")
	d.Exported = false

	r := diag.NewReporter()
	require.False(t, DataObject(r, d))
	require.Contains(t, r.Diagnostics()[0].Message, "exported")
}

func TestDataObjectRejectsTypeParams(t *testing.T) {
	d := dto("Box", field("V", str()))
	d.TypeParams = []string{"T"}

	r := diag.NewReporter()
	require.False(t, DataObject(r, d))
	require.Contains(t, r.Diagnostics()[0].Message, "type parameters")
}

func TestDataObjectShortCircuitsOnFirstFailure(t *testing.T) {
	// Both a static and an unexported field: only the static-field rule
	// fires, and nothing downstream runs.
	d := dto("Bad",
		&model.FieldDecl{Name: "Counter", Exported: true, Static: true, Type: basic("int")},
		&model.FieldDecl{Name: "hidden", Exported: false, Type: str()},
	)

	r := diag.NewReporter()
	require.False(t, DataObject(r, d))

	diags := r.Diagnostics()
	require.Len(t, diags, 1)
	require.Equal(t, "Counter", diags[0].Field)
	require.Contains(t, diags[0].Message, "static")
}

func TestDataObjectRejectsUnexportedField(t *testing.T) {
	d := dto("Bad", &model.FieldDecl{Name: "hidden", Exported: false, Type: str()})

	r := diag.NewReporter()
	require.False(t, DataObject(r, d))
	require.Equal(t, "hidden", r.Diagnostics()[0].Field)
}

func TestDataObjectConstructorRule(t *testing.T) {
	d := dto("User", field("Name", str()))
	d.Constructors = []*model.ConstructorDecl{{Name: "NewUser", NumParams: 2}}

	r := diag.NewReporter()
	require.False(t, DataObject(r, d))
	require.Contains(t, r.Diagnostics()[0].Message, "zero-argument constructor")

	// Adding a no-arg constructor alongside satisfies the rule.
	d.Constructors = append(d.Constructors, &model.ConstructorDecl{Name: "NewUser", NumParams: 0})
	r = diag.NewReporter()
	require.True(t, DataObject(r, d))
}

func TestDataObjectNoConstructorIsFine(t *testing.T) {
	d := dto("User", field("Name", str()))

	r := diag.NewReporter()
	require.True(t, DataObject(r, d))
}

func handlerDecl(params ...*model.TypeRef) *model.HandlerDecl {
	return &model.HandlerDecl{Name: "OnEvent", Params: params}
}

func componentDecl() *model.StructDecl {
	return &model.StructDecl{
		Name:      "Auditor",
		PkgPath:   "example.com/demo",
		Exported:  true,
		Component: true,
	}
}

func TestHandlerAcceptsWellFormed(t *testing.T) {
	r := diag.NewReporter()
	require.True(t, Handler(r, componentDecl(), handlerDecl(dto("User").Ref())))
	require.False(t, r.HasErrors())
}

func TestHandlerRequiresComponentDirective(t *testing.T) {
	d := componentDecl()
	d.Component = false

	r := diag.NewReporter()
	require.False(t, Handler(r, d, handlerDecl(dto("User").Ref())))
	require.Contains(t, r.Diagnostics()[0].Message, "component directive")
}

func TestHandlerRequiresSingleParameter(t *testing.T) {
	r := diag.NewReporter()
	require.False(t, Handler(r, componentDecl(), handlerDecl(dto("A").Ref(), dto("B").Ref())))
	require.Contains(t, r.Diagnostics()[0].Message, "exactly one parameter")

	r = diag.NewReporter()
	require.False(t, Handler(r, componentDecl(), handlerDecl()))
}

func TestHandlerRequiresDataObjectParameter(t *testing.T) {
	plain := &model.StructDecl{Name: "Thread", PkgPath: "example.com/demo", Exported: true}

	r := diag.NewReporter()
	require.False(t, Handler(r, componentDecl(), handlerDecl(plain.Ref())))
	require.Contains(t, r.Diagnostics()[0].Message, "not a marked data object")
}

func TestHandlerFailureIsIndependentPerMethod(t *testing.T) {
	d := componentDecl()
	good := handlerDecl(dto("User").Ref())
	bad := handlerDecl(str())

	r := diag.NewReporter()
	require.False(t, Handler(r, d, bad))
	require.True(t, Handler(r, d, good))
	require.Len(t, r.Diagnostics(), 1)
}
