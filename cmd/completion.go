package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
)

// completionShells maps each supported shell to its script generator.
var completionShells = []struct {
	name string
	gen  func(w io.Writer) error
}{
	{"bash", func(w io.Writer) error { return rootCmd.GenBashCompletion(w) }},
	{"zsh", func(w io.Writer) error { return rootCmd.GenZshCompletion(w) }},
	{"fish", func(w io.Writer) error { return rootCmd.GenFishCompletion(w, true) }},
	{"powershell", func(w io.Writer) error { return rootCmd.GenPowerShellCompletionWithDesc(w) }},
}

func shellNames() []string {
	names := make([]string, len(completionShells))
	for i, s := range completionShells {
		names[i] = s.name
	}
	return names
}

var completionCmd = &cobra.Command{
	Use:   "completion [bash|zsh|fish|powershell]",
	Short: "Generate shell completion scripts",
	Long: `Print a completion script for vibe to stdout.

Try it in the current session:
  source <(vibe completion bash)
  source <(vibe completion zsh)

Install it for good:
  vibe completion bash > ~/.local/share/bash-completion/completions/vibe
  vibe completion zsh  > "${fpath[1]}/_vibe"
  vibe completion fish > ~/.config/fish/completions/vibe.fish

PowerShell: add this line to $PROFILE
  vibe completion powershell | Out-String | Invoke-Expression`,
	ValidArgs: shellNames(),
	Args:      cobra.ExactValidArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		generateCompletion(args[0])
	},
}

func init() {
	rootCmd.AddCommand(completionCmd)
}

// generateCompletion writes the completion script for shell to stdout
func generateCompletion(shell string) {
	for _, s := range completionShells {
		if s.name != shell {
			continue
		}
		if err := s.gen(deps.Stdout); err != nil {
			fail(fmt.Sprintf("Failed to generate %s completion", shell), err, "")
		}
		return
	}

	fail(fmt.Sprintf("Unsupported shell '%s'", shell), nil,
		"Supported shells: "+strings.Join(shellNames(), ", "))
}
