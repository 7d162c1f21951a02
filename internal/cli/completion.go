package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/adaptivegrid/pkg/grid"
	"github.com/matzehuels/adaptivegrid/pkg/pipeline"
)

// completionCommand creates the completion command for generating shell completions.
func (c *CLI) completionCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion scripts",
		Long: `Generate shell completion scripts for adaptivegrid.

To load completions:

Bash:
  $ source <(adaptivegrid completion bash)

  # To load completions for each session, execute once:
  # Linux:
  $ adaptivegrid completion bash > /etc/bash_completion.d/adaptivegrid
  # macOS:
  $ adaptivegrid completion bash > $(brew --prefix)/etc/bash_completion.d/adaptivegrid

Zsh:
  # If shell completion is not already enabled in your environment,
  # you will need to enable it. You can execute the following once:
  $ echo "autoload -U compinit; compinit" >> ~/.zshrc

  # To load completions for each session, execute once:
  $ adaptivegrid completion zsh > "${fpath[1]}/_adaptivegrid"

  # You will need to start a new shell for this setup to take effect.

Fish:
  $ adaptivegrid completion fish | source

  # To load completions for each session, execute once:
  $ adaptivegrid completion fish > ~/.config/fish/completions/adaptivegrid.fish

PowerShell:
  PS> adaptivegrid completion powershell | Out-String | Invoke-Expression

  # To load completions for every new session, run:
  PS> adaptivegrid completion powershell > adaptivegrid.ps1
  # and source this file from your PowerShell profile.
`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletionV2(w, true)
			case "zsh":
				return cmd.Root().GenZshCompletion(w)
			case "fish":
				return cmd.Root().GenFishCompletion(w, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(w)
			}
			return nil
		},
	}

	return cmd
}

// completeStrategies offers the strategy names for --strategy.
func completeStrategies(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
	return grid.Strategies, cobra.ShellCompDirectiveNoFileComp
}

// completeFormats offers the output formats for --format. Formats are comma
// separated, so the completion extends the already typed list.
func completeFormats(_ *cobra.Command, _ []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	prefix := ""
	if i := strings.LastIndex(toComplete, ","); i >= 0 {
		prefix = toComplete[:i+1]
	}
	names := pipeline.FormatNames()
	out := make([]string, len(names))
	for i, f := range names {
		out[i] = prefix + f
	}
	return out, cobra.ShellCompDirectiveNoFileComp | cobra.ShellCompDirectiveNoSpace
}

// sceneExtensions limits file completion for scene arguments.
var sceneExtensions = []string{"toml", "json"}
