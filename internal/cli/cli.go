// Package cli implements the adaptivegrid command-line interface.
package cli

import (
	"io"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/matzehuels/adaptivegrid/pkg/buildinfo"
	"github.com/matzehuels/adaptivegrid/pkg/grid"
	"github.com/matzehuels/adaptivegrid/pkg/pipeline"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for display and tracing.
	appName = "adaptivegrid"

	// addrEnv overrides the default listen address of 'serve'.
	addrEnv = "ADAPTIVEGRID_ADDR"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   appName,
		Short: "Adaptivegrid lays out items in wrapping rows and balanced columns",
		Long: `Adaptivegrid measures a scene of boxes, images and text and places them with
a flow-wrap or column layout. Layouts can be written as JSON, rendered to SVG,
PNG, JPG or DOT, previewed interactively in the terminal, or served over HTTP.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
		},
	}

	root.SetVersionTemplate(buildinfo.Template())

	root.AddCommand(c.layoutCommand())
	root.AddCommand(c.renderCommand())
	root.AddCommand(c.previewCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// newRunner creates a pipeline runner for CLI use.
func (c *CLI) newRunner() *pipeline.Runner {
	return pipeline.NewRunner(c.Logger)
}

// =============================================================================
// Layout Flags
// =============================================================================

// layoutFlags are the scene overrides shared by layout, render and preview.
type layoutFlags struct {
	opts    pipeline.Options
	spacing float64
}

func (f *layoutFlags) register(cmd *cobra.Command) {
	fs := cmd.Flags()
	fs.StringVarP(&f.opts.Strategy, "strategy", "s", "", "layout strategy: "+strings.Join(grid.Strategies, ", ")+" (default: scene, else flow)")
	fs.IntVarP(&f.opts.Columns, "columns", "c", 0, "column count for columnar strategies")
	fs.Float64Var(&f.spacing, "spacing", 0, "gap between items and tracks")
	fs.StringVar(&f.opts.Anchor, "anchor", "", "item alignment within its slot, a name (center, top-leading, ...) or x,y")
	fs.Float64Var(&f.opts.MinItemWidth, "min-item-width", 0, "minimum proposed item width")
	fs.Float64VarP(&f.opts.Width, "width", "w", 0, "container width (default: scene canvas, else 800)")
	fs.BoolVar(&f.opts.Unbounded, "unbounded", false, "lay out without a width limit")
	_ = cmd.RegisterFlagCompletionFunc("strategy", completeStrategies)
}

// options returns the pipeline options, taking spacing only when it was set
// on the command line.
func (f *layoutFlags) options(fs *pflag.FlagSet) pipeline.Options {
	opts := f.opts
	if fs.Changed("spacing") {
		v := f.spacing
		opts.Spacing = &v
	}
	return opts
}

// =============================================================================
// Options Helpers
// =============================================================================

// parseFormats parses a comma-separated format string into a slice.
func parseFormats(s string) []string {
	if s == "" {
		return []string{pipeline.FormatSVG}
	}
	parts := strings.Split(s, ",")
	for i := range parts {
		parts[i] = strings.ToLower(strings.TrimSpace(parts[i]))
	}
	return parts
}

// basePath derives the base output path from the output and input file paths.
// If output is empty, it strips the extension (or the layout suffix) from
// input. If output has a format extension (.svg, .png, etc.), it strips that.
func basePath(output, input string) string {
	if output == "" {
		if strings.HasSuffix(input, pipeline.LayoutSuffix) {
			return strings.TrimSuffix(input, pipeline.LayoutSuffix)
		}
		return strings.TrimSuffix(input, filepath.Ext(input))
	}
	ext := filepath.Ext(output)
	if pipeline.ValidFormats[strings.TrimPrefix(ext, ".")] {
		return strings.TrimSuffix(output, ext)
	}
	return output
}

// outputPath is the file a format is written to under base. JSON output is a
// layout, so it gets the layout suffix and can be fed back to 'render'.
func outputPath(base, format string) string {
	if format == pipeline.FormatJSON {
		return base + pipeline.LayoutSuffix
	}
	return base + "." + format
}
