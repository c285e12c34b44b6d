package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/sortwheel/pkg/sorting"
)

// completionCommand creates the completion command for generating shell completions.
func (c *CLI) completionCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion scripts",
		Long: `Generate shell completion scripts for sortwheel.

Bash:
  $ source <(sortwheel completion bash)

Zsh:
  $ sortwheel completion zsh > "${fpath[1]}/_sortwheel"

Fish:
  $ sortwheel completion fish | source

PowerShell:
  PS> sortwheel completion powershell | Out-String | Invoke-Expression
`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletionV2(out, true)
			case "zsh":
				return cmd.Root().GenZshCompletion(out)
			case "fish":
				return cmd.Root().GenFishCompletion(out, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(out)
			}
			return nil
		},
	}

	return cmd
}

// completeAlgorithms completes the comma-separated --algorithms flag with
// sorting algorithm ids and aliases.
func completeAlgorithms(_ *cobra.Command, _ []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	done, current := "", toComplete
	if i := strings.LastIndex(toComplete, ","); i >= 0 {
		done, current = toComplete[:i+1], toComplete[i+1:]
	}

	var out []string
	for _, info := range sorting.All() {
		if !info.Sort {
			continue
		}
		for _, name := range []string{string(info.ID), info.Alias} {
			if strings.HasPrefix(name, current) {
				out = append(out, done+name+"\t"+info.Name)
			}
		}
	}
	return out, cobra.ShellCompDirectiveNoFileComp | cobra.ShellCompDirectiveNoSpace
}
