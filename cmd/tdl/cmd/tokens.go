package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tdl-lang/tdl/internal/lexer"
)

var tokensCmd = &cobra.Command{
	Use:   "tokens <file>",
	Short: "Dump the token stream of a declaration file",
	Args:  cobra.ExactArgs(1),
	RunE:  runTokens,
}

func init() {
	rootCmd.AddCommand(tokensCmd)
}

func runTokens(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return err
	}

	lx := lexer.New(string(data))
	lx.SetFilename(args[0])

	for _, tok := range lx.Tokenize() {
		fmt.Printf("%d:%d\t%-10s %q\n", tok.Span.Line, tok.Span.Column, tok.Type, tok.Value)
	}

	if lexErr := lx.Err(); lexErr != nil {
		return fmt.Errorf("%s:%d:%d: %s", args[0], lexErr.Span.Line, lexErr.Span.Column, lexErr.Message)
	}
	return nil
}
