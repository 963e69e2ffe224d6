package validate

import (
	"github.com/averell-io/componentgen/internal/diag"
	"github.com/averell-io/componentgen/internal/model"
)

// AllowedType classifies a field's declared type against the data-object
// grammar:
//
//	T ::= data-object | primitive | string | []T | map[string]T
//
// Slices cover both the array and collection cases; an any-typed element or
// map value is the raw-container case and is vacuously accepted, since there
// is no argument to check. A rejection reports a diagnostic attached to the
// given field.
func AllowedType(r *diag.Reporter, decl *model.StructDecl, field *model.FieldDecl, t *model.TypeRef) bool {
	if t == nil {
		r.FieldErrorf(decl.QualifiedName(), field.Name, field.Pos, "field type may not be nil")
		return false
	}

	switch t.Kind {
	case model.KindBasic, model.KindString:
		return true

	case model.KindSlice:
		if t.Elem != nil && t.Elem.Kind == model.KindAny {
			return true
		}
		return AllowedType(r, decl, field, t.Elem)

	case model.KindMap:
		if t.Key == nil || t.Key.Kind != model.KindString {
			r.FieldErrorf(decl.QualifiedName(), field.Name, field.Pos,
				"map key type %s is not allowed, keys must be string", t.Key.String())
			return false
		}
		if t.Elem != nil && t.Elem.Kind == model.KindAny {
			return true
		}
		return AllowedType(r, decl, field, t.Elem)

	case model.KindNamed:
		if t.IsDataObject() {
			return true
		}
	}

	r.FieldErrorf(decl.QualifiedName(), field.Name, field.Pos,
		"type %s is not allowed in a data object", t.String())
	return false
}
