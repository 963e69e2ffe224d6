package generator

import (
	"path/filepath"
	"strings"
)

// Options control parsing and generation.
//
// InDir        – module directory to scan
// OutFile      – generated filename, written into each package that has candidates
// ManifestFile – components manifest path, relative to InDir unless absolute
// Pluralize    – also emit plural slice aliases for data objects
// PointerSlice – plural aliases hold pointers ([]*T instead of []T)
// DryRun       – render everything but write nothing
type Options struct {
	InDir        string `json:"in_dir,omitempty" yaml:"in_dir,omitempty" mapstructure:"in_dir,omitempty"`
	OutFile      string `json:"out_file,omitempty" yaml:"out_file,omitempty" mapstructure:"out_file,omitempty"`
	ManifestFile string `json:"manifest_file,omitempty" yaml:"manifest_file,omitempty" mapstructure:"manifest_file,omitempty"`
	Pluralize    bool   `json:"pluralize,omitempty" yaml:"pluralize,omitempty" mapstructure:"pluralize,omitempty"`
	PointerSlice bool   `json:"pointer_slice,omitempty" yaml:"pointer_slice,omitempty" mapstructure:"pointer_slice,omitempty"`
	DryRun       bool   `json:"dry_run,omitempty" yaml:"dry_run,omitempty" mapstructure:"dry_run,omitempty"`
}

func NewOptions() *Options {
	return &Options{
		InDir:        ".",
		OutFile:      "componentgen_gen.go",
		ManifestFile: "components.yaml",
	}
}

func (o *Options) Normalize() {
	if o.InDir == "" {
		o.InDir = "."
	}
	if strings.Contains(o.InDir, ".") {
		o.InDir, _ = filepath.Abs(o.InDir)
	}
	if o.OutFile == "" {
		o.OutFile = "componentgen_gen.go"
	}
	if !strings.HasSuffix(o.OutFile, ".go") {
		o.OutFile += ".go"
	}
	if o.ManifestFile == "" {
		o.ManifestFile = "components.yaml"
	}
	if !filepath.IsAbs(o.ManifestFile) {
		o.ManifestFile = filepath.Join(o.InDir, o.ManifestFile)
	}
}

// functional option pattern ---------------------------------------------------

type Option func(*Options)

func WithInDir(d string) Option        { return func(o *Options) { o.InDir = d } }
func WithOutFile(f string) Option      { return func(o *Options) { o.OutFile = f } }
func WithManifestFile(f string) Option { return func(o *Options) { o.ManifestFile = f } }
func WithDryRun() Option               { return func(o *Options) { o.DryRun = true } }
func WithPluralize(pluralize bool, pointerSlice ...bool) Option {
	return func(o *Options) {
		o.Pluralize = pluralize
		if len(pointerSlice) > 0 {
			o.PointerSlice = pointerSlice[0]
		}
	}
}
