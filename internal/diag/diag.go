// Package diag accumulates validation diagnostics. Failures are reported and
// attributed, never thrown: a bad declaration stops its own synthesis and the
// pass moves on to the next one.
package diag

import (
	"fmt"
	"go/token"
)

// Diagnostic is one attributed validation error.
type Diagnostic struct {
	Decl    string // qualified name of the declaration the error attaches to
	Field   string // offending field or method name, "" for type-level errors
	Message string
	Pos     token.Pos
}

func (d Diagnostic) String() string {
	if d.Field != "" {
		return fmt.Sprintf("%s.%s: %s", d.Decl, d.Field, d.Message)
	}
	return fmt.Sprintf("%s: %s", d.Decl, d.Message)
}

// Reporter collects diagnostics in emission order.
type Reporter struct {
	diags []Diagnostic
}

func NewReporter() *Reporter {
	return &Reporter{}
}

// Errorf records a type-level diagnostic.
func (r *Reporter) Errorf(decl string, pos token.Pos, format string, args ...any) {
	r.diags = append(r.diags, Diagnostic{
		Decl:    decl,
		Message: fmt.Sprintf(format, args...),
		Pos:     pos,
	})
}

// FieldErrorf records a diagnostic attached to a field or method.
func (r *Reporter) FieldErrorf(decl, field string, pos token.Pos, format string, args ...any) {
	r.diags = append(r.diags, Diagnostic{
		Decl:    decl,
		Field:   field,
		Message: fmt.Sprintf(format, args...),
		Pos:     pos,
	})
}

// Diagnostics returns everything reported so far, in order.
func (r *Reporter) Diagnostics() []Diagnostic {
	return r.diags
}

func (r *Reporter) HasErrors() bool {
	return len(r.diags) > 0
}
