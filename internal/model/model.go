package model

import (
	"go/token"
	"strings"
)

type Kind int

const (
	KindInvalid Kind = iota
	KindBasic        // bool, int, float64, etc.
	KindString       // string
	KindSlice        // []T
	KindMap          // map[K]V
	KindNamed        // named struct type, possibly a data object
	KindPointer      // *T
	KindAny          // interface{} / any
)

// TypeRef describes a field's declared type as a small graph. Named types
// carry a link back to their declaration when it lives in the parsed set.
type TypeRef struct {
	Kind    Kind
	Name    string // leaf name: "int", "string", "User"
	PkgPath string // import path for named types, "" otherwise

	Elem *TypeRef // slice element, map value, pointer target
	Key  *TypeRef // map key

	Decl *StructDecl // resolved declaration for KindNamed, may be nil
}

// String renders the type the way diagnostics should name it.
func (t *TypeRef) String() string {
	if t == nil {
		return "<nil>"
	}
	switch t.Kind {
	case KindSlice:
		return "[]" + t.Elem.String()
	case KindMap:
		return "map[" + t.Key.String() + "]" + t.Elem.String()
	case KindPointer:
		return "*" + t.Elem.String()
	case KindAny:
		return "any"
	default:
		if t.PkgPath != "" {
			return t.PkgPath + "." + t.Name
		}
		return t.Name
	}
}

// IsDataObject reports whether the referenced type is a marked data object.
func (t *TypeRef) IsDataObject() bool {
	return t != nil && t.Kind == KindNamed && t.Decl != nil && t.Decl.DataObject
}

// FieldDecl is one declared field of a candidate struct.
//
// Static has no Go-source producer; it is part of the structural contract the
// validator enforces and is settable when the model is built from another
// frontend (or directly, in tests).
type FieldDecl struct {
	Name     string
	Exported bool
	Static   bool
	Type     *TypeRef
	Pos      token.Pos
}

// ConstructorDecl records a detected constructor function (New<Type>).
type ConstructorDecl struct {
	Name      string
	NumParams int
}

// HandlerDecl is a method carrying the onevent directive.
type HandlerDecl struct {
	Name   string
	Params []*TypeRef
	Pos    token.Pos
}

// StructDecl is the declaration-model node for one candidate type.
type StructDecl struct {
	Name     string
	PkgPath  string
	PkgName  string
	Exported bool
	File     string
	Pos      token.Pos

	TypeParams   []string
	Fields       []*FieldDecl
	Constructors []*ConstructorDecl
	Handlers     []*HandlerDecl

	// Directive markers.
	DataObject bool     // //componentgen:dto
	Component  bool     // //componentgen:component ...
	Attrs      []string // raw component directive key=value tokens, in order

	// EmbeddedBase names the first embedded field, the Go analog of an
	// explicit base type. Empty means the type extends nothing.
	EmbeddedBase string
}

// QualifiedName is the dot-separated fully qualified type name,
// e.g. pkg path "a/b" + name "C" -> "a.b.C".
func (d *StructDecl) QualifiedName() string {
	if d.PkgPath == "" {
		return d.Name
	}
	return strings.ReplaceAll(d.PkgPath, "/", ".") + "." + d.Name
}

// Ref returns a TypeRef pointing at this declaration.
func (d *StructDecl) Ref() *TypeRef {
	return &TypeRef{Kind: KindNamed, Name: d.Name, PkgPath: d.PkgPath, Decl: d}
}

// Field looks up a declared field by name.
func (d *StructDecl) Field(name string) *FieldDecl {
	for _, f := range d.Fields {
		if f.Name == name {
			return f
		}
	}
	return nil
}

// Decls is the ordered set of declarations from one parse run.
type Decls []*StructDecl

func (x Decls) Find(name string) *StructDecl {
	for _, d := range x {
		if d.Name == name {
			return d
		}
	}
	return nil
}

// DataObjects returns the dto-marked declarations in encounter order.
func (x Decls) DataObjects() Decls {
	out := make(Decls, 0, len(x))
	for _, d := range x {
		if d.DataObject {
			out = append(out, d)
		}
	}
	return out
}

// Components returns declarations with at least one handler method.
func (x Decls) Components() Decls {
	out := make(Decls, 0, len(x))
	for _, d := range x {
		if len(d.Handlers) > 0 {
			out = append(out, d)
		}
	}
	return out
}
