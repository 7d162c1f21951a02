package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/adaptivegrid/pkg/grid"
	"github.com/matzehuels/adaptivegrid/pkg/pipeline"
	"github.com/matzehuels/adaptivegrid/pkg/scene"
)

// layoutCommand creates the layout command for computing layouts.
func (c *CLI) layoutCommand() *cobra.Command {
	var (
		output string
		flags  layoutFlags
	)

	cmd := &cobra.Command{
		Use:   "layout [scene.toml|scene.json]",
		Short: "Compute a layout from a scene file",
		Long: `Compute a layout from a scene file.

The layout command measures every item of the scene and places it with the
scene's [layout] strategy, or the one given by flags. The result is written to
<scene>.layout.json (same format as 'render -f json') and can be rendered with
'render' without laying out again.

Flags override the scene file: --strategy balanced -c 4 re-packs any scene
into four balanced columns.`,
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: completeSceneFiles,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runLayout(cmd.Context(), args[0], flags.options(cmd.Flags()), output)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: <scene>.layout.json)")
	flags.register(cmd)

	return cmd
}

// runLayout loads the scene, computes the layout, and writes output.
func (c *CLI) runLayout(ctx context.Context, input string, opts pipeline.Options, output string) error {
	s, err := scene.ReadFile(input)
	if err != nil {
		return fmt.Errorf("load scene %s: %w", input, err)
	}

	runner := c.newRunner()
	prog := newProgress(c.Logger)

	spinner := newSpinner(ctx, fmt.Sprintf("Computing %s layout...", opts.LayoutConfig(s).Strategy))
	spinner.Start()

	res, err := runner.Layout(ctx, s, opts)
	if err != nil {
		spinner.StopWithError("Layout failed")
		return fmt.Errorf("compute layout: %w", err)
	}
	spinner.Stop()

	if ctx.Err() != nil {
		return ctx.Err()
	}

	outputPath := output
	if outputPath == "" {
		outputPath = pipeline.LayoutPath(input)
	}
	if err := scene.WriteResultFile(res, outputPath); err != nil {
		return fmt.Errorf("write output %s: %w", outputPath, err)
	}

	printSuccess("Layout complete (%s)", prog.elapsed())
	printFile(outputPath)
	printLayoutStats(pipeline.LayoutStats(res), grid.Config{Strategy: res.Strategy}.IsColumnar())
	printNewline()
	printNextStep("Render", appName+" render "+outputPath)

	return nil
}

// completeSceneFiles restricts argument completion to scene and layout files.
func completeSceneFiles(_ *cobra.Command, args []string, _ string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	return sceneExtensions, cobra.ShellCompDirectiveFilterFileExt
}
