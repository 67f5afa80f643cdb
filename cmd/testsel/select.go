package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ivoronin/testsel/internal/catalog"
	"github.com/ivoronin/testsel/internal/output"
	"github.com/ivoronin/testsel/internal/rule"
	"github.com/ivoronin/testsel/internal/selection"
)

var (
	selectInclude    []string
	selectExclude    []string
	selectCatalog    string
	selectCombinator string
	selectWorkers    int
	selectFormat     string
	selectJSON       bool
	selectShowAll    bool
)

// catalogRetries is how often a remote catalog request is retried.
const catalogRetries = 3

var selectCmd = &cobra.Command{
	Use:   "select",
	Short: "Select tests from a catalog",
	Long: `Evaluate include and exclude rules against every test in the catalog.
A test is selected when the include rules pass (no include rules selects
everything) and no exclude rule matches. Exits 1 when nothing is selected.`,
	Args: cobra.NoArgs,
	Example: `  testsel select -i 'priority lt 3' -e unstable
  testsel select -c suite.json -i 'with tags smoke,fast' -j
  testsel select --combinator all -i 'owner = qa' -i 'app_version ge 2.0' -a`,
	RunE: runSelect,
}

func init() {
	selectCmd.Flags().StringArrayVarP(&selectInclude, "include", "i", nil, "Include rule (repeatable)")
	selectCmd.Flags().StringArrayVarP(&selectExclude, "exclude", "e", nil, "Exclude rule (repeatable)")
	selectCmd.Flags().StringVarP(&selectCatalog, "catalog", "c", "", "Test catalog file (.yaml, .yml, .json) or http(s) URL")
	selectCmd.Flags().StringVar(&selectCombinator, "combinator", "", "How include rules combine: any, all")
	selectCmd.Flags().IntVar(&selectWorkers, "workers", 0, "Parallel evaluation workers")
	selectCmd.Flags().StringVarP(&selectFormat, "format", "o", "text", "Output format: text, json, yaml")
	selectCmd.Flags().BoolVarP(&selectJSON, "json", "j", false, "Output in JSON format")
	selectCmd.Flags().BoolVarP(&selectShowAll, "all", "a", false, "Show deselected tests too")
}

func runSelect(cmd *cobra.Command, args []string) error {
	cfg, err := loadSettings(cmd)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("include") {
		cfg.Include = selectInclude
	}
	if flags.Changed("exclude") {
		cfg.Exclude = selectExclude
	}
	if flags.Changed("catalog") {
		cfg.Catalog = selectCatalog
	}
	if flags.Changed("combinator") {
		cfg.Combinator = selectCombinator
	}
	if flags.Changed("workers") {
		cfg.Workers = selectWorkers
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	format, err := output.ParseFormat(selectFormat)
	if err != nil {
		return err
	}
	if selectJSON {
		format = output.FormatJSON
	}

	logger, err := newLogger(cfg)
	if err != nil {
		return err
	}

	include, err := rule.ParseAll(cfg.Include)
	if err != nil {
		return fmt.Errorf("include: %w", err)
	}
	exclude, err := rule.ParseAll(cfg.Exclude)
	if err != nil {
		return fmt.Errorf("exclude: %w", err)
	}
	combine, err := selection.CombinatorByName(cfg.Combinator)
	if err != nil {
		return err
	}

	tests, err := catalog.Open(cmd.Context(), cfg.Catalog, catalog.NewFetcher(logger, catalogRetries))
	if err != nil {
		return err
	}
	logger.Info("loaded catalog", "path", cfg.Catalog, "tests", len(tests),
		"include", len(include), "exclude", len(exclude), "combinator", combine.Name())

	s := &selection.Selector{
		Include: include,
		Exclude: exclude,
		Combine: combine,
		Logger:  logger,
	}
	decisions, err := s.SelectAll(cmd.Context(), tests, cfg.Workers)
	if err != nil {
		return err
	}

	list := &output.DecisionList{Decisions: decisions, All: selectShowAll}
	result, err := output.FormatOutput(list, format)
	if err != nil {
		return err
	}
	if result != "" {
		fmt.Println(result)
	}

	if !anySelected(decisions) {
		logger.Warn("no tests selected", "tests", len(tests))
		os.Exit(ExitNoneSelected)
	}
	return nil
}

func anySelected(decisions []selection.Decision) bool {
	for _, d := range decisions {
		if d.Selected {
			return true
		}
	}
	return false
}
