// Package validate enforces the structural contracts a declaration must meet
// before any code is synthesized for it. All checks are pure functions over
// the declaration model; failures are accumulated diagnostics, and a failed
// declaration produces no output at all.
package validate

import (
	"github.com/averell-io/componentgen/internal/diag"
	"github.com/averell-io/componentgen/internal/model"
)

// DataObject runs the full structural contract for a dto-marked declaration,
// short-circuiting on the first failing rule. It returns true when synthesis
// may proceed.
func DataObject(r *diag.Reporter, decl *model.StructDecl) bool {
	name := decl.QualifiedName()

	if !decl.Exported {
		r.Errorf(name, decl.Pos, "data object type must be exported")
		return false
	}
	if len(decl.TypeParams) > 0 {
		r.Errorf(name, decl.Pos, "data object type must not declare type parameters")
		return false
	}
	for _, f := range decl.Fields {
		if f.Static {
			r.FieldErrorf(name, f.Name, f.Pos, "data object field must not be static")
			return false
		}
	}
	for _, f := range decl.Fields {
		if !f.Exported {
			r.FieldErrorf(name, f.Name, f.Pos, "data object field must be exported")
			return false
		}
	}
	if len(decl.Constructors) > 0 && !hasZeroArgConstructor(decl) {
		r.Errorf(name, decl.Pos, "data object must keep a zero-argument constructor")
		return false
	}
	for _, f := range decl.Fields {
		if !AllowedType(r, decl, f, f.Type) {
			return false
		}
	}
	if HasCycle(r, decl, nil) {
		return false
	}
	return true
}

func hasZeroArgConstructor(decl *model.StructDecl) bool {
	for _, c := range decl.Constructors {
		if c.NumParams == 0 {
			return true
		}
	}
	return false
}

// Handler checks one onevent-marked method against its enclosing
// declaration. A failure skips that handler only; other handlers on the same
// type are validated independently.
func Handler(r *diag.Reporter, decl *model.StructDecl, h *model.HandlerDecl) bool {
	name := decl.QualifiedName()

	if !decl.Component {
		r.FieldErrorf(name, h.Name, h.Pos, "enclosing type must carry the component directive")
		return false
	}
	if len(h.Params) != 1 {
		r.FieldErrorf(name, h.Name, h.Pos,
			"event handler must declare exactly one parameter, has %d", len(h.Params))
		return false
	}
	if !h.Params[0].IsDataObject() {
		r.FieldErrorf(name, h.Name, h.Pos,
			"event handler parameter type %s is not a marked data object", h.Params[0].String())
		return false
	}
	return true
}
