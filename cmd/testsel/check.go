package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ivoronin/testsel/internal/output"
	"github.com/ivoronin/testsel/internal/rule"
)

var (
	checkFormat string
	checkJSON   bool
)

var checkCmd = &cobra.Command{
	Use:   "check <rule>...",
	Short: "Parse and validate selection rules",
	Long:  `Parse each rule and show the property, type, condition and value it resolves to.`,
	Args:  cobra.MinimumNArgs(1),
	Example: `  testsel check 'priority lt 3'
  testsel check 'with tags smoke, fast' 'not unstable' -j`,
	RunE: runCheck,
}

func init() {
	checkCmd.Flags().StringVarP(&checkFormat, "format", "o", "text", "Output format: text, json, yaml")
	checkCmd.Flags().BoolVarP(&checkJSON, "json", "j", false, "Output in JSON format")
}

func runCheck(cmd *cobra.Command, args []string) error {
	format, err := output.ParseFormat(checkFormat)
	if err != nil {
		return err
	}
	if checkJSON {
		format = output.FormatJSON
	}

	rules := make([]rule.Rule, 0, len(args))
	for _, expr := range args {
		r, err := rule.Parse(expr)
		if err != nil {
			return fmt.Errorf("%q: %w", expr, err)
		}
		rules = append(rules, r)
	}

	result, err := output.FormatOutput(output.NewRuleList(args, rules), format)
	if err != nil {
		return err
	}
	fmt.Println(result)
	return nil
}
