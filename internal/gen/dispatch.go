package gen

import (
	"fmt"

	"github.com/dave/jennifer/jen"

	"github.com/averell-io/componentgen/internal/model"
	"github.com/averell-io/componentgen/pkg/component"
	"github.com/averell-io/componentgen/pkg/envelope"
)

// Dispatch accumulates the routing branches of one component class. Each
// validated handler appends a branch; the method body is rebuilt from the
// full branch list every time, so the rendered method always reflects every
// handler seen so far.
type Dispatch struct {
	decl     *model.StructDecl
	branches []branch
	counter  int
}

type branch struct {
	topic   string
	handler string
	param   *model.TypeRef
	local   string
}

func newDispatch(d *model.StructDecl) *Dispatch {
	return &Dispatch{decl: d}
}

// Add appends a routing branch for a validated handler. The local variable
// name comes from a monotonic counter so branches never collide.
func (s *Dispatch) Add(h *model.HandlerDecl) {
	param := h.Params[0]
	s.branches = append(s.branches, branch{
		topic:   envelope.Topic(param.Decl.QualifiedName()),
		handler: h.Name,
		param:   param,
		local:   fmt.Sprintf("e%d", s.counter),
	})
	s.counter++
}

// Body renders the full dispatch body from scratch: one branch per handler
// in encounter order, first matching topic wins, no match falls through.
func (s *Dispatch) Body() []jen.Code {
	stmts := make([]jen.Code, 0, len(s.branches))
	for _, b := range s.branches {
		stmts = append(stmts, jen.If(jen.Id("ev").Dot("Topic").Op("==").Lit(b.topic)).Block(
			jen.Id(b.local).Op(":=").Qual(b.param.PkgPath, b.param.Name+"FromEnvelope").Call(jen.Id("ev")),
			jen.Id("c").Dot(b.handler).Call(jen.Id(b.local)),
			jen.Return(),
		))
	}
	return stmts
}

// Emit writes the dispatch method and pins the handler marker interface.
func (s *Dispatch) Emit(f *jen.File) {
	f.Var().Id("_").Qual(componentPkg, "Handler").Op("=").Parens(jen.Op("*").Id(s.decl.Name)).Parens(jen.Nil())
	f.Line()

	f.Comment("HandleEvent routes an inbound envelope to the matching typed handler.")
	f.Func().Params(jen.Id("c").Op("*").Id(s.decl.Name)).Id("HandleEvent").
		Params(jen.Id("ev").Qual(envelopePkg, "Envelope")).Block(s.Body()...)
	f.Line()
}

// Definition merges the component directive's attributes with the derived
// topic subscriptions. Topics are prepended one per handler, newest first;
// everything the user supplied is preserved.
func (s *Dispatch) Definition() (component.Definition, error) {
	def, err := component.ParseAttrs(s.decl.Attrs)
	if err != nil {
		return component.Definition{}, err
	}
	if def.Name == "" {
		def.Name = s.decl.QualifiedName()
	}
	for _, b := range s.branches {
		def = def.Subscribe(b.topic)
	}
	return def, nil
}

// emitRegistration writes the init function registering the merged
// definition. Attributes still at their documented default are not pinned,
// so user customization stays untouched.
func emitRegistration(f *jen.File, def component.Definition) {
	dict := jen.Dict{
		jen.Id("Name"): jen.Lit(def.Name),
	}
	if def.ConfigPID != "" {
		dict[jen.Id("ConfigPID")] = jen.Lit(def.ConfigPID)
	}
	if def.Policy != "" && def.Policy != component.DefaultPolicy {
		dict[jen.Id("Policy")] = jen.Lit(def.Policy)
	}
	if def.Enabled == component.False {
		dict[jen.Id("Enabled")] = jen.Qual(componentPkg, "False")
	}
	if def.Factory != "" {
		dict[jen.Id("Factory")] = jen.Lit(def.Factory)
	}
	if def.Immediate == component.True {
		dict[jen.Id("Immediate")] = jen.Qual(componentPkg, "True")
	}
	if len(def.Services) > 0 {
		dict[jen.Id("Services")] = stringSlice(def.Services)
	}
	if len(def.Properties) > 0 {
		dict[jen.Id("Properties")] = stringSlice(def.Properties)
	}
	if len(def.References) > 0 {
		refs := make([]jen.Code, 0, len(def.References))
		for _, r := range def.References {
			refs = append(refs, jen.Values(jen.Dict{
				jen.Id("Name"):      jen.Lit(r.Name),
				jen.Id("Interface"): jen.Lit(r.Interface),
			}))
		}
		dict[jen.Id("References")] = jen.Index().Qual(componentPkg, "Reference").Values(refs...)
	}
	if def.Scope != "" && def.Scope != component.DefaultScope {
		dict[jen.Id("Scope")] = jen.Lit(def.Scope)
	}
	if def.ServiceFactory == component.True {
		dict[jen.Id("ServiceFactory")] = jen.Qual(componentPkg, "True")
	}

	f.Func().Id("init").Params().Block(
		jen.Qual(componentPkg, "Register").Call(jen.Qual(componentPkg, "Definition").Values(dict)),
	)
	f.Line()
}

func stringSlice(vals []string) *jen.Statement {
	lits := make([]jen.Code, 0, len(vals))
	for _, v := range vals {
		lits = append(lits, jen.Lit(v))
	}
	return jen.Index().String().Values(lits...)
}
