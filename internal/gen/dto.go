package gen

import (
	"github.com/dave/jennifer/jen"
	"github.com/jinzhu/inflection"

	"github.com/averell-io/componentgen/internal/model"
	"github.com/averell-io/componentgen/pkg/envelope"
)

// dtoMethods emits the four conversion methods for one validated data
// object, pins the marker base when the type extends nothing, and optionally
// adds a pluralized slice alias.
func (g *Generator) dtoMethods(f *jen.File, d *model.StructDecl) {
	topic := envelope.Topic(d.QualifiedName())

	if d.EmbeddedBase == "" {
		// Base-type adjustment: a data object with no explicit base gets
		// the marker base pinned. One with its own base is left untouched.
		f.Var().Id("_").Qual(componentPkg, "DataObject").Op("=").Parens(jen.Op("*").Id(d.Name)).Parens(jen.Nil())
		f.Line()
	}

	g.toMap(f, d)
	g.fromMap(f, d)
	g.toEnvelope(f, d, topic)
	g.fromEnvelope(f, d)

	if g.opts.Pluralize {
		g.pluralAlias(f, d)
	}
}

func (g *Generator) toMap(f *jen.File, d *model.StructDecl) {
	stmts := []jen.Code{
		jen.Id("m").Op(":=").Make(jen.Map(jen.String()).Any(), jen.Lit(len(d.Fields))),
	}
	for _, fld := range d.Fields {
		if fld.Type.IsDataObject() {
			stmts = append(stmts, jen.Id("m").Index(jen.Lit(fld.Name)).Op("=").
				Id("x").Dot(fld.Name).Dot("ToMap").Call())
			continue
		}
		stmts = append(stmts, jen.Id("m").Index(jen.Lit(fld.Name)).Op("=").
			Id("x").Dot(fld.Name))
	}
	stmts = append(stmts, jen.Return(jen.Id("m")))

	f.Comment("ToMap flattens x into a string-keyed property mapping.")
	f.Func().Params(jen.Id("x").Id(d.Name)).Id("ToMap").Params().
		Map(jen.String()).Any().Block(stmts...)
	f.Line()
}

func (g *Generator) fromMap(f *jen.File, d *model.StructDecl) {
	stmts := []jen.Code{jen.Var().Id("x").Id(d.Name)}
	for _, fld := range d.Fields {
		if fld.Type.IsDataObject() {
			stmts = append(stmts, jen.Id("x").Dot(fld.Name).Op("=").
				Qual(fld.Type.PkgPath, fld.Type.Name+"FromMap").
				Call(jen.Id("m").Index(jen.Lit(fld.Name)).Assert(jen.Map(jen.String()).Any())))
			continue
		}
		stmts = append(stmts, jen.Id("x").Dot(fld.Name).Op("=").
			Id("m").Index(jen.Lit(fld.Name)).Assert(typeJen(fld.Type)))
	}
	stmts = append(stmts, jen.Return(jen.Id("x")))

	f.Comment(d.Name + "FromMap rebuilds a value from its property mapping.")
	f.Func().Id(d.Name+"FromMap").Params(jen.Id("m").Map(jen.String()).Any()).
		Id(d.Name).Block(stmts...)
	f.Line()
}

func (g *Generator) toEnvelope(f *jen.File, d *model.StructDecl, topic string) {
	f.Comment("ToEnvelope wraps x and its derived topic into a message envelope.")
	f.Func().Params(jen.Id("x").Id(d.Name)).Id("ToEnvelope").Params().
		Qual(envelopePkg, "Envelope").Block(
		jen.Return(jen.Qual(envelopePkg, "New").Call(jen.Lit(topic), jen.Id("x").Dot("ToMap").Call())),
	)
	f.Line()
}

func (g *Generator) fromEnvelope(f *jen.File, d *model.StructDecl) {
	stmts := []jen.Code{jen.Var().Id("x").Id(d.Name)}
	for _, fld := range d.Fields {
		if fld.Type.IsDataObject() {
			stmts = append(stmts, jen.Id("x").Dot(fld.Name).Op("=").
				Qual(fld.Type.PkgPath, fld.Type.Name+"FromMap").
				Call(jen.Id("ev").Dot("Property").Call(jen.Lit(fld.Name)).Assert(jen.Map(jen.String()).Any())))
			continue
		}
		stmts = append(stmts, jen.Id("x").Dot(fld.Name).Op("=").
			Id("ev").Dot("Property").Call(jen.Lit(fld.Name)).Assert(typeJen(fld.Type)))
	}
	stmts = append(stmts, jen.Return(jen.Id("x")))

	f.Comment(d.Name + "FromEnvelope rebuilds a value from an envelope's properties.")
	f.Func().Id(d.Name+"FromEnvelope").Params(jen.Id("ev").Qual(envelopePkg, "Envelope")).
		Id(d.Name).Block(stmts...)
	f.Line()
}

// pluralAlias emits a slice alias named by pluralizing the type name,
// e.g. type Users []User.
func (g *Generator) pluralAlias(f *jen.File, d *model.StructDecl) {
	plural := inflection.Plural(d.Name)
	if plural == d.Name {
		return
	}
	if g.opts.PointerSlice {
		f.Type().Id(plural).Index().Op("*").Id(d.Name)
	} else {
		f.Type().Id(plural).Index().Id(d.Name)
	}
	f.Line()
}
