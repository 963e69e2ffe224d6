package cmd

import (
	"github.com/spf13/cobra"

	"github.com/averell-io/componentgen/pkg/action/generate"
	"github.com/averell-io/componentgen/pkg/generator"
)

func init() {
	rootCmd.AddCommand(NewGenerateCommand())
}

func NewGenerateCommand() *cobra.Command {
	options := generator.NewOptions()

	var genCmd = &cobra.Command{
		Use:   "generate",
		Short: "generate component code",
		Long:  "Scan a module for componentgen directives and generate conversion methods, dispatch methods, and the components manifest",
		RunE: func(c *cobra.Command, args []string) error {
			options.Normalize()
			return generate.Run(options)
		},
	}
	genCmd.PersistentFlags().StringVarP(&options.InDir, "input-directory", "i", ".", "module directory to scan")
	genCmd.PersistentFlags().StringVarP(&options.OutFile, "output-file", "f", "componentgen_gen.go", "generated filename written into each package")
	genCmd.PersistentFlags().StringVarP(&options.ManifestFile, "manifest", "m", "components.yaml", "components manifest path")
	genCmd.PersistentFlags().BoolVarP(&options.Pluralize, "pluralize", "p", false, "emit plural slice aliases for data objects")
	genCmd.PersistentFlags().BoolVar(&options.PointerSlice, "pointer-slice", false, "plural aliases hold pointers")
	genCmd.PersistentFlags().BoolVarP(&options.DryRun, "dry-run", "n", false, "render but do not write")

	return genCmd
}
