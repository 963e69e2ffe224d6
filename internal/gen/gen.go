// Package gen synthesizes the generated source for validated declarations:
// the four conversion methods for data objects and the per-component
// dispatch method with its registration metadata.
package gen

import (
	"bytes"
	"fmt"
	"path/filepath"

	"github.com/dave/jennifer/jen"

	"github.com/averell-io/componentgen/internal/diag"
	"github.com/averell-io/componentgen/internal/model"
	"github.com/averell-io/componentgen/internal/validate"
	"github.com/averell-io/componentgen/pkg/generator"
)

const (
	envelopePkg  = "github.com/averell-io/componentgen/pkg/envelope"
	componentPkg = "github.com/averell-io/componentgen/pkg/component"
)

// OutFile is one rendered output file.
type OutFile struct {
	Path    string
	PkgPath string
	Source  []byte
}

// ComponentInfo summarizes one generated component for the manifest.
type ComponentInfo struct {
	Name   string
	File   string
	Topics []string
}

// Result carries everything one generation run produced.
type Result struct {
	Files       []OutFile
	Components  []ComponentInfo
	DataObjects []string
	Diagnostics []diag.Diagnostic
}

// Generator drives validation and synthesis over a declaration set. Dispatch
// accumulators are keyed by class identity, so unrelated classes can never
// leak branches into each other.
type Generator struct {
	opts     *generator.Options
	reporter *diag.Reporter
	dispatch map[string]*Dispatch
}

func New(opts *generator.Options) *Generator {
	return &Generator{
		opts:     opts,
		reporter: diag.NewReporter(),
		dispatch: make(map[string]*Dispatch),
	}
}

// Run processes declarations in encounter order. A declaration that fails
// validation contributes diagnostics and nothing else; the rest of the run
// is unaffected.
func (g *Generator) Run(decls model.Decls) (*Result, error) {
	files := make(map[string]*jen.File)
	dirs := make(map[string]string)
	var order []string

	fileFor := func(d *model.StructDecl) *jen.File {
		f, ok := files[d.PkgPath]
		if !ok {
			f = jen.NewFilePathName(d.PkgPath, d.PkgName)
			f.HeaderComment("Code generated by componentgen. DO NOT EDIT.")
			files[d.PkgPath] = f
			dirs[d.PkgPath] = filepath.Dir(d.File)
			order = append(order, d.PkgPath)
		}
		return f
	}

	res := &Result{}

	for _, d := range decls {
		if !d.DataObject {
			continue
		}
		if !validate.DataObject(g.reporter, d) {
			continue
		}
		g.dtoMethods(fileFor(d), d)
		res.DataObjects = append(res.DataObjects, d.QualifiedName())
	}

	for _, d := range decls.Components() {
		for _, h := range d.Handlers {
			if !validate.Handler(g.reporter, d, h) {
				continue
			}
			g.Dispatch(d).Add(h)
		}
		st := g.dispatch[d.QualifiedName()]
		if st == nil || len(st.branches) == 0 {
			continue
		}
		def, err := st.Definition()
		if err != nil {
			return nil, fmt.Errorf("component %s: %w", d.QualifiedName(), err)
		}
		f := fileFor(d)
		st.Emit(f)
		emitRegistration(f, def)
		res.Components = append(res.Components, ComponentInfo{
			Name:   def.Name,
			File:   filepath.Join(dirs[d.PkgPath], g.opts.OutFile),
			Topics: def.Topics(),
		})
	}

	for _, pkgPath := range order {
		var buf bytes.Buffer
		if err := files[pkgPath].Render(&buf); err != nil {
			return nil, fmt.Errorf("render %s: %w", pkgPath, err)
		}
		res.Files = append(res.Files, OutFile{
			Path:    filepath.Join(dirs[pkgPath], g.opts.OutFile),
			PkgPath: pkgPath,
			Source:  buf.Bytes(),
		})
	}

	res.Diagnostics = g.reporter.Diagnostics()
	return res, nil
}

// Dispatch returns the accumulator for one class, creating it on first use.
func (g *Generator) Dispatch(d *model.StructDecl) *Dispatch {
	key := d.QualifiedName()
	st, ok := g.dispatch[key]
	if !ok {
		st = newDispatch(d)
		g.dispatch[key] = st
	}
	return st
}

// typeJen renders a model TypeRef as a jen type expression.
func typeJen(t *model.TypeRef) *jen.Statement {
	if t == nil {
		return jen.Any()
	}
	switch t.Kind {
	case model.KindBasic, model.KindString:
		return jen.Id(t.Name)
	case model.KindAny:
		return jen.Any()
	case model.KindSlice:
		return jen.Index().Add(typeJen(t.Elem))
	case model.KindMap:
		return jen.Map(typeJen(t.Key)).Add(typeJen(t.Elem))
	case model.KindPointer:
		return jen.Op("*").Add(typeJen(t.Elem))
	case model.KindNamed:
		if t.PkgPath != "" {
			return jen.Qual(t.PkgPath, t.Name)
		}
		return jen.Id(t.Name)
	}
	return jen.Any()
}
