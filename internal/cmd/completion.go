package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	clierrors "github.com/salmonumbrella/textx/internal/errors"
)

// writeCompletion prints the completion script for shell. Operation names
// complete through the root command's ValidArgs.
func writeCompletion(root *cobra.Command, shell string, w io.Writer) error {
	switch strings.ToLower(strings.TrimSpace(shell)) {
	case "bash":
		return root.GenBashCompletionV2(w, true)
	case "zsh":
		return root.GenZshCompletion(w)
	case "fish":
		return root.GenFishCompletion(w, true)
	case "powershell":
		return root.GenPowerShellCompletionWithDesc(w)
	default:
		return clierrors.NewUserError(
			fmt.Sprintf("unsupported shell %q for --completion", shell),
			"Use one of: bash, zsh, fish, powershell",
		)
	}
}
