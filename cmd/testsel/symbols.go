package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ivoronin/testsel/internal/output"
)

var symbolsJSON bool

var symbolsCmd = &cobra.Command{
	Use:   "symbols",
	Short: "List condition symbols",
	Long:  `Display every condition symbol, the condition it resolves to and the value types accepting it.`,
	Args:  cobra.NoArgs,
	RunE:  runSymbols,
}

func init() {
	symbolsCmd.Flags().BoolVarP(&symbolsJSON, "json", "j", false, "Output in JSON format")
}

func runSymbols(cmd *cobra.Command, args []string) error {
	format := output.FormatText
	if symbolsJSON {
		format = output.FormatJSON
	}
	result, err := output.FormatOutput(output.NewSymbolTable(), format)
	if err != nil {
		return err
	}
	fmt.Println(result)
	return nil
}
