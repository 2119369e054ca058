package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/tdl-lang/tdl/internal/diag"
	"github.com/tdl-lang/tdl/internal/parser"
)

var checkCmd = &cobra.Command{
	Use:   "check <file>...",
	Short: "Parse declaration files and report errors",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

var (
	errStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	okStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
)

func runCheck(cmd *cobra.Command, args []string) error {
	formatter := diag.NewFormatter()
	failed := 0

	for _, path := range args {
		data, err := os.ReadFile(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s %s\n", errStyle.Render("error:"), err)
			failed++
			continue
		}
		src := string(data)

		mod, err := parser.Parse(src, parser.WithFilename(path))
		if err != nil {
			var synErr *parser.SyntaxError
			if errors.As(err, &synErr) {
				formatter.AddSource(path, src)
				formatter.Format(synErr.ToDiagnostic())
			} else {
				fmt.Fprintf(os.Stderr, "%s %s\n", errStyle.Render("error:"), err)
			}
			failed++
			continue
		}

		fmt.Printf("%s %s: %d function(s), %d class(es), %d interface(s)\n",
			okStyle.Render("ok"), path,
			len(mod.Functions), len(mod.Classes), len(mod.Interfaces))
	}

	if failed > 0 {
		return fmt.Errorf("%d file(s) failed", failed)
	}
	return nil
}
