// Package parser loads a Go module's source and builds the declaration model
// the validators and synthesizers operate on. The model is built once per
// run; everything downstream treats it as read-only.
package parser

import (
	"fmt"
	"go/ast"
	"go/token"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/mod/modfile"
	"golang.org/x/tools/go/packages"

	"github.com/averell-io/componentgen/internal/model"
	"github.com/averell-io/componentgen/pkg/generator"
)

// Parser holds the state and results of a parse run.
type Parser struct {
	Opts generator.Options

	ModulePath string
	Decls      model.Decls

	fset    *token.FileSet
	imports map[string]map[string]string // file key -> alias -> import path
}

// New executes the parser with opts.
func New(opts ...generator.Option) (*Parser, error) {
	o := generator.NewOptions()
	for _, fn := range opts {
		fn(o)
	}
	return NewWithOpts(o)
}

func NewWithOpts(opts *generator.Options) (*Parser, error) {
	opts.Normalize()
	return &Parser{
		Opts:    *opts,
		fset:    token.NewFileSet(),
		imports: make(map[string]map[string]string),
	}, nil
}

// Parse loads every package under InDir and collects candidate declarations.
func (p *Parser) Parse() error {
	if err := p.readModulePath(); err != nil {
		return err
	}

	pkgs, err := packages.Load(&packages.Config{
		Mode: packages.LoadAllSyntax,
		Dir:  p.Opts.InDir,
		Fset: p.fset,
	}, "./...")
	if err != nil {
		return fmt.Errorf("load packages: %w", err)
	}

	for _, pkg := range pkgs {
		for _, file := range pkg.Syntax {
			p.collectImports(pkg.PkgPath, file)
			p.collectTypes(pkg.PkgPath, pkg.Name, file)
		}
	}
	for _, pkg := range pkgs {
		for _, file := range pkg.Syntax {
			p.collectFuncs(pkg.PkgPath, pkg.Name, file)
		}
	}

	p.linkNamedTypes()
	return nil
}

// readModulePath resolves the module path of the scanned directory from its
// go.mod, so manifest entries name the module they came from.
func (p *Parser) readModulePath() error {
	path := filepath.Join(p.Opts.InDir, "go.mod")
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	mf, err := modfile.Parse(path, data, nil)
	if err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	if mf.Module == nil {
		return fmt.Errorf("%s does not declare a module path", path)
	}
	p.ModulePath = mf.Module.Mod.Path
	return nil
}

func (p *Parser) collectImports(pkgPath string, file *ast.File) {
	aliases := make(map[string]string)
	for _, imp := range file.Imports {
		path := strings.Trim(imp.Path.Value, `"`)
		alias := filepath.Base(path)
		if imp.Name != nil && imp.Name.Name != "_" && imp.Name.Name != "." {
			alias = imp.Name.Name
		}
		aliases[alias] = path
	}
	p.imports[p.fileKey(pkgPath, file)] = aliases
}

func (p *Parser) fileKey(pkgPath string, file *ast.File) string {
	return pkgPath + ":" + p.fset.File(file.Pos()).Name()
}

func (p *Parser) collectTypes(pkgPath, pkgName string, file *ast.File) {
	for _, decl := range file.Decls {
		gen, ok := decl.(*ast.GenDecl)
		if !ok || gen.Tok != token.TYPE {
			continue
		}
		for _, spec := range gen.Specs {
			ts, ok := spec.(*ast.TypeSpec)
			if !ok || ts.Assign.IsValid() {
				continue
			}
			st, ok := ts.Type.(*ast.StructType)
			if !ok {
				continue
			}

			doc := ts.Doc
			if doc == nil {
				doc = gen.Doc
			}
			_, isDTO := directive(doc, dtoDirective)
			attrs, isComponent := directive(doc, componentDirective)
			if !isDTO && !isComponent {
				continue
			}

			sd := &model.StructDecl{
				Name:       ts.Name.Name,
				PkgPath:    pkgPath,
				PkgName:    pkgName,
				Exported:   ast.IsExported(ts.Name.Name),
				File:       p.fset.File(file.Pos()).Name(),
				Pos:        ts.Pos(),
				DataObject: isDTO,
				Component:  isComponent,
				Attrs:      attrs,
			}
			if ts.TypeParams != nil {
				for _, tp := range ts.TypeParams.List {
					for _, n := range tp.Names {
						sd.TypeParams = append(sd.TypeParams, n.Name)
					}
				}
			}
			p.collectFields(sd, st, pkgPath, file)
			p.Decls = append(p.Decls, sd)
		}
	}
}

func (p *Parser) collectFields(sd *model.StructDecl, st *ast.StructType, pkgPath string, file *ast.File) {
	for _, fld := range st.Fields.List {
		if len(fld.Names) == 0 {
			// Embedded field: the Go analog of an explicit base type.
			if sd.EmbeddedBase == "" {
				sd.EmbeddedBase = embeddedFieldName(fld.Type)
			}
			continue
		}
		for _, id := range fld.Names {
			sd.Fields = append(sd.Fields, &model.FieldDecl{
				Name:     id.Name,
				Exported: ast.IsExported(id.Name),
				Type:     p.resolveTypeExpr(fld.Type, pkgPath, file),
				Pos:      id.Pos(),
			})
		}
	}
}

// collectFuncs runs after all types are known and picks up constructors and
// onevent handler methods for collected declarations.
func (p *Parser) collectFuncs(pkgPath, pkgName string, file *ast.File) {
	for _, decl := range file.Decls {
		fn, ok := decl.(*ast.FuncDecl)
		if !ok {
			continue
		}

		if fn.Recv == nil {
			p.collectConstructor(pkgPath, fn)
			continue
		}

		recv := receiverTypeName(fn.Recv)
		if recv == "" {
			continue
		}
		if _, ok := directive(fn.Doc, oneventDirective); !ok {
			continue
		}
		sd := p.find(pkgPath, recv)
		if sd == nil {
			// The handler directive still needs a diagnostic when its
			// receiver type carries no marker of its own, so the receiver
			// gets a bare declaration for the contract check to attribute.
			sd = &model.StructDecl{
				Name:     recv,
				PkgPath:  pkgPath,
				PkgName:  pkgName,
				Exported: ast.IsExported(recv),
				File:     p.fset.File(file.Pos()).Name(),
				Pos:      fn.Pos(),
			}
			p.Decls = append(p.Decls, sd)
		}

		h := &model.HandlerDecl{Name: fn.Name.Name, Pos: fn.Pos()}
		if fn.Type.Params != nil {
			for _, param := range fn.Type.Params.List {
				t := p.resolveTypeExpr(param.Type, pkgPath, file)
				n := len(param.Names)
				if n == 0 {
					n = 1
				}
				for i := 0; i < n; i++ {
					h.Params = append(h.Params, t)
				}
			}
		}
		sd.Handlers = append(sd.Handlers, h)
	}
}

func (p *Parser) collectConstructor(pkgPath string, fn *ast.FuncDecl) {
	name := fn.Name.Name
	if !strings.HasPrefix(name, "New") {
		return
	}
	sd := p.find(pkgPath, strings.TrimPrefix(name, "New"))
	if sd == nil {
		return
	}
	num := 0
	if fn.Type.Params != nil {
		for _, param := range fn.Type.Params.List {
			n := len(param.Names)
			if n == 0 {
				n = 1
			}
			num += n
		}
	}
	sd.Constructors = append(sd.Constructors, &model.ConstructorDecl{Name: name, NumParams: num})
}

func (p *Parser) find(pkgPath, name string) *model.StructDecl {
	for _, d := range p.Decls {
		if d.PkgPath == pkgPath && d.Name == name {
			return d
		}
	}
	return nil
}

var builtinKinds = map[string]model.Kind{
	"bool": model.KindBasic, "byte": model.KindBasic, "rune": model.KindBasic,
	"int": model.KindBasic, "int8": model.KindBasic, "int16": model.KindBasic,
	"int32": model.KindBasic, "int64": model.KindBasic,
	"uint": model.KindBasic, "uint8": model.KindBasic, "uint16": model.KindBasic,
	"uint32": model.KindBasic, "uint64": model.KindBasic,
	"float32": model.KindBasic, "float64": model.KindBasic,
	"string": model.KindString,
	"any":    model.KindAny,
}

// resolveTypeExpr maps an ast.Expr to the model's type graph.
func (p *Parser) resolveTypeExpr(expr ast.Expr, pkgPath string, file *ast.File) *model.TypeRef {
	switch t := expr.(type) {
	case *ast.Ident:
		if kind, ok := builtinKinds[t.Name]; ok {
			ref := &model.TypeRef{Kind: kind, Name: t.Name}
			if kind == model.KindAny {
				ref.Name = "any"
			}
			return ref
		}
		return &model.TypeRef{Kind: model.KindNamed, Name: t.Name, PkgPath: pkgPath}

	case *ast.StarExpr:
		return &model.TypeRef{Kind: model.KindPointer, Elem: p.resolveTypeExpr(t.X, pkgPath, file)}

	case *ast.ArrayType:
		return &model.TypeRef{Kind: model.KindSlice, Elem: p.resolveTypeExpr(t.Elt, pkgPath, file)}

	case *ast.MapType:
		return &model.TypeRef{
			Kind: model.KindMap,
			Key:  p.resolveTypeExpr(t.Key, pkgPath, file),
			Elem: p.resolveTypeExpr(t.Value, pkgPath, file),
		}

	case *ast.SelectorExpr:
		name := t.Sel.Name
		if id, ok := t.X.(*ast.Ident); ok {
			if aliases, ok := p.imports[p.fileKey(pkgPath, file)]; ok {
				if path, ok := aliases[id.Name]; ok {
					return &model.TypeRef{Kind: model.KindNamed, Name: name, PkgPath: path}
				}
			}
		}
		return &model.TypeRef{Kind: model.KindNamed, Name: name}

	case *ast.InterfaceType:
		if t.Methods == nil || len(t.Methods.List) == 0 {
			return &model.TypeRef{Kind: model.KindAny, Name: "any"}
		}
	}

	return &model.TypeRef{Kind: model.KindInvalid, Name: exprString(expr)}
}

// linkNamedTypes resolves Decl links for every named TypeRef that points at
// a collected declaration.
func (p *Parser) linkNamedTypes() {
	for _, d := range p.Decls {
		for _, f := range d.Fields {
			p.linkRef(f.Type)
		}
		for _, h := range d.Handlers {
			for _, t := range h.Params {
				p.linkRef(t)
			}
		}
	}
}

func (p *Parser) linkRef(t *model.TypeRef) {
	if t == nil {
		return
	}
	if t.Kind == model.KindNamed && t.Decl == nil {
		t.Decl = p.find(t.PkgPath, t.Name)
	}
	p.linkRef(t.Key)
	p.linkRef(t.Elem)
}

// helpers

func receiverTypeName(recv *ast.FieldList) string {
	if recv == nil || len(recv.List) == 0 {
		return ""
	}
	expr := recv.List[0].Type
	if star, ok := expr.(*ast.StarExpr); ok {
		expr = star.X
	}
	if id, ok := expr.(*ast.Ident); ok {
		return id.Name
	}
	return ""
}

func embeddedFieldName(expr ast.Expr) string {
	switch t := expr.(type) {
	case *ast.Ident:
		return t.Name
	case *ast.SelectorExpr:
		return t.Sel.Name
	case *ast.StarExpr:
		return embeddedFieldName(t.X)
	}
	return ""
}

func exprString(expr ast.Expr) string {
	switch t := expr.(type) {
	case *ast.Ident:
		return t.Name
	case *ast.SelectorExpr:
		return exprString(t.X) + "." + t.Sel.Name
	default:
		return fmt.Sprintf("%T", expr)
	}
}
