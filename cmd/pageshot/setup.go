package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/entrhq/pageshot/pkg/bootstrap"
)

const timeRound = time.Millisecond

var (
	stepOKStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true)
	stepFailStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	stepNameStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
)

func newSetupCommand() *cobra.Command {
	var rcFile string

	cmd := &cobra.Command{
		Use:   "setup",
		Short: "Provision the browser environment and register the shell alias",
		Long: `Setup runs the bootstrap pipeline: it creates an isolated Playwright
environment next to the pageshot binary, installs the driver and the
browser engines listed in pageshot.yaml, and registers a shell alias that
invokes "pageshot run".

The pipeline is fail-fast: the first failing step aborts the whole
procedure and nothing is rolled back. Re-running is safe; the environment
directory is reused and the alias line is updated in place.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			b := bootstrap.New(bootstrap.Options{
				RCFile: rcFile,
				Stdout: cmd.OutOrStdout(),
			})
			return b.Run(cmd.Context(), renderStep)
		},
	}

	cmd.Flags().StringVar(&rcFile, "rc-file", "", "shell rc file the alias is written to (default: manifest value or ~/.bashrc)")

	return cmd
}

// renderStep prints one status line per executed pipeline step.
func renderStep(result bootstrap.StepResult) {
	if result.Err != nil {
		fmt.Fprintf(os.Stdout, "%s %s: %v\n",
			stepFailStyle.Render("✗"), stepNameStyle.Render(result.Name), result.Err)
		return
	}
	fmt.Fprintf(os.Stdout, "%s %s (%s)\n",
		stepOKStyle.Render("✓"), stepNameStyle.Render(result.Name), result.Duration.Round(timeRound))
}
