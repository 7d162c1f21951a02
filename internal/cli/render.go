package cli

import (
	"context"
	"fmt"
	"os"
	"slices"

	"github.com/spf13/cobra"

	"github.com/matzehuels/adaptivegrid/pkg/pipeline"
)

// stdoutPath makes -o write a single artifact to standard output.
const stdoutPath = "-"

// layoutFlagNames are the flags that only matter when laying out a scene.
var layoutFlagNames = []string{"strategy", "columns", "spacing", "anchor", "min-item-width", "width", "unbounded"}

// renderCommand creates the render command for generating output files.
func (c *CLI) renderCommand() *cobra.Command {
	var (
		formatsStr string
		output     string
		padding    float64
		flags      layoutFlags
	)
	opts := &flags.opts

	cmd := &cobra.Command{
		Use:   "render [scene|layout.json]",
		Short: "Render a scene or a computed layout",
		Long: `Render a scene or a computed layout.

The input is either a scene file (.toml or .json), which is laid out first, or
a layout written by 'layout' (*.layout.json), which is rendered as stored.

Formats:
  svg   vector drawing with one rectangle and label per item
  png   raster image via graphviz
  jpg   raster image via graphviz
  dot   graphviz source with pinned item positions
  json  the layout itself, renderable again later
  txt   character drawing, as shown by 'preview'

With several formats, -o is a base path and each format gets its extension.
Use -o - to write a single format to standard output.`,
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: completeSceneFiles,
		RunE: func(cmd *cobra.Command, args []string) error {
			o := flags.options(cmd.Flags())
			o.Formats = parseFormats(formatsStr)
			if cmd.Flags().Changed("padding") {
				o.Padding = &padding
			}
			if err := o.ValidateForRender(); err != nil {
				return err
			}
			return c.runRender(cmd, args[0], o, output)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (single format), base path (multiple), or - for stdout")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): svg (default), png, jpg, dot, json, txt (comma-separated)")
	cmd.Flags().StringVar(&opts.Style, "style", pipeline.DefaultStyle, "visual style: simple, outline")
	cmd.Flags().BoolVar(&opts.Guides, "guides", false, "draw row or column guide lines (svg)")
	cmd.Flags().Float64Var(&padding, "padding", 0, "padding around the drawing (svg, default 8)")
	cmd.Flags().StringVar(&opts.Background, "background", "", "background color (svg)")
	cmd.Flags().IntVar(&opts.TermColumns, "term-columns", 0, "character width of txt output (default 80)")
	flags.register(cmd)
	_ = cmd.RegisterFlagCompletionFunc("format", completeFormats)

	return cmd
}

// runRender parses the input, runs the pipeline and writes one file per
// format.
func (c *CLI) runRender(cmd *cobra.Command, input string, opts pipeline.Options, output string) error {
	ctx := cmd.Context()

	in, err := pipeline.Parse(input)
	if err != nil {
		return err
	}
	if in.Layout != nil && slices.ContainsFunc(layoutFlagNames, cmd.Flags().Changed) {
		printWarning("%s is a stored layout; layout flags are ignored", input)
	}
	if output == stdoutPath && len(opts.Formats) != 1 {
		return fmt.Errorf("-o %s needs exactly one format, got %d", stdoutPath, len(opts.Formats))
	}

	result, err := c.execute(ctx, in, opts)
	if err != nil {
		return err
	}

	if output == stdoutPath {
		_, err := cmd.OutOrStdout().Write(result.Artifacts[opts.Formats[0]])
		return err
	}

	prog := newProgress(loggerFromContext(ctx))
	paths, err := writeArtifacts(result, opts.Formats, output, input)
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Wrote %s", plural(len(paths), "file")))

	printSuccess("Render complete")
	for _, p := range paths {
		printFile(p)
	}
	printLayoutStats(result.Stats, result.Layout.Columns > 0)
	return nil
}

// execute runs the pipeline behind a spinner.
func (c *CLI) execute(ctx context.Context, in pipeline.Input, opts pipeline.Options) (*pipeline.Result, error) {
	spinner := newSpinner(ctx, "Rendering...")
	spinner.Start()

	result, err := c.newRunner().Execute(ctx, in, opts)
	if err != nil {
		spinner.StopWithError("Render failed")
		return nil, err
	}
	spinner.Stop()
	return result, ctx.Err()
}

// writeArtifacts writes each format to its path and returns the paths in
// format order. A single format is written to output verbatim when given.
func writeArtifacts(result *pipeline.Result, formats []string, output, input string) ([]string, error) {
	base := basePath(output, input)
	paths := make([]string, 0, len(formats))
	for _, format := range formats {
		path := outputPath(base, format)
		if len(formats) == 1 && output != "" {
			path = output
		}
		if err := os.WriteFile(path, result.Artifacts[format], 0o644); err != nil {
			return paths, fmt.Errorf("write %s: %w", path, err)
		}
		paths = append(paths, path)
	}
	return paths, nil
}
