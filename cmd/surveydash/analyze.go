package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"surveydash/internal/survey"
)

var (
	analyzeCountry string
	analyzeTop     int
)

// analyzeCmd runs one frequency breakdown non-interactively, exercising
// the same loader and aggregator pipeline the dashboard uses.
var analyzeCmd = &cobra.Command{
	Use:   "analyze [topic]",
	Short: "Print the top entries for an analysis topic",
	Long: `Computes a ranked frequency breakdown for one analysis topic and
prints it as a table.

Topics:
  LanguageHaveWorkedWith (default)   LanguageWantToWorkWith
  DatabaseHaveWorkedWith             DatabaseWantToWorkWith
  PlatformHaveWorkedWith             PlatformWantToWorkWith

Example:
  surveydash analyze DatabaseHaveWorkedWith --country Germany --top 10`,
	Args: cobra.MaximumNArgs(1),
	RunE: runAnalyze,
}

func init() {
	analyzeCmd.Flags().StringVar(&analyzeCountry, "country", survey.AllCountries, "country filter")
	analyzeCmd.Flags().IntVar(&analyzeTop, "top", 15, "number of entries to print")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	topic := survey.TopicLanguagesUsed
	if len(args) == 1 {
		t, ok := survey.TopicByLabel(args[0])
		if !ok {
			return fmt.Errorf("unknown topic %q", args[0])
		}
		topic = t
	}

	_, table, err := setup()
	if err != nil {
		return err
	}

	logger.Debug("analyzing",
		zap.String("topic", topic.Column()),
		zap.String("country", analyzeCountry))

	analyzer := survey.NewAnalyzer()
	top := analyzer.Top(table, topic, analyzeCountry, analyzeTop)
	if top.Empty() {
		fmt.Printf("No %s data for country %q.\n", topic.Label(), analyzeCountry)
		return nil
	}

	fmt.Printf("%s (%s)\n", topic.Label(), analyzeCountry)
	fmt.Println(strings.Repeat("-", 40))
	for i, e := range top {
		label := e.Label
		if label == "" {
			label = "(empty)"
		}
		fmt.Printf("%3d. %-25s %6d\n", i+1, label, e.Count)
	}
	return nil
}
