// Package generate orchestrates one generation run: parse, validate,
// synthesize, write.
package generate

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/averell-io/componentgen/internal/gen"
	"github.com/averell-io/componentgen/internal/parser"
	"github.com/averell-io/componentgen/pkg/generator"
	"github.com/averell-io/componentgen/pkg/manifest"
)

// Run executes a full generation pass over opts.InDir. Validation
// diagnostics are logged and make the run fail after all declarations have
// been processed; declarations that validated cleanly are still written.
func Run(opts *generator.Options) error {
	p, err := parser.NewWithOpts(opts)
	if err != nil {
		return err
	}
	if err = p.Parse(); err != nil {
		return err
	}
	slog.With("module", p.ModulePath, "declarations", len(p.Decls)).Info("parsed module")

	res, err := gen.New(&p.Opts).Run(p.Decls)
	if err != nil {
		return err
	}
	for _, d := range res.Diagnostics {
		slog.With("declaration", d.Decl, "field", d.Field).Error(d.Message)
	}

	if !p.Opts.DryRun {
		for _, f := range res.Files {
			if err := os.WriteFile(f.Path, f.Source, 0o644); err != nil {
				return fmt.Errorf("write %s: %w", f.Path, err)
			}
			slog.With("file", f.Path, "package", f.PkgPath).Info("wrote generated file")
		}

		man, err := manifest.Load(p.Opts.ManifestFile)
		if err != nil {
			return err
		}
		man.Module = p.ModulePath
		for _, d := range res.DataObjects {
			man.AddDataObject(d)
		}
		for _, c := range res.Components {
			man.AddComponent(manifest.Component{Name: c.Name, File: c.File, Topics: c.Topics})
		}
		if err := man.Save(p.Opts.ManifestFile); err != nil {
			return err
		}
	}

	if len(res.Diagnostics) > 0 {
		return fmt.Errorf("generation finished with %d diagnostic(s)", len(res.Diagnostics))
	}
	return nil
}
