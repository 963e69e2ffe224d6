package validate

import (
	"slices"

	"github.com/averell-io/componentgen/internal/diag"
	"github.com/averell-io/componentgen/internal/model"
)

// HasCycle walks the field-type graph of a data-object declaration looking
// for a type that appears twice on the same descent path. The path is an
// appended copy handed down the recursion, so sibling subtrees are checked
// independently: a diamond (two fields sharing a leaf type) is revisited but
// never flagged. The first offending field gets the diagnostic and the walk
// stops.
func HasCycle(r *diag.Reporter, decl *model.StructDecl, path []string) bool {
	name := decl.QualifiedName()
	if slices.Contains(path, name) {
		return true
	}
	path = append(append([]string(nil), path...), name)

	for _, f := range decl.Fields {
		for _, next := range dataObjectTargets(f.Type) {
			if HasCycle(r, next, path) {
				r.FieldErrorf(name, f.Name, f.Pos,
					"field type %s closes a reference cycle", f.Type.String())
				return true
			}
		}
	}
	return false
}

// dataObjectTargets lists the data-object declarations a field type can
// reach directly: the type itself, a slice element, or a map value.
func dataObjectTargets(t *model.TypeRef) []*model.StructDecl {
	if t == nil {
		return nil
	}
	switch t.Kind {
	case model.KindNamed:
		if t.IsDataObject() {
			return []*model.StructDecl{t.Decl}
		}
	case model.KindSlice, model.KindMap:
		if t.Elem.IsDataObject() {
			return []*model.StructDecl{t.Elem.Decl}
		}
	}
	return nil
}
