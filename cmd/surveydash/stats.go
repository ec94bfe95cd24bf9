package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// statsCmd prints a dataset summary without entering the TUI.
var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show a summary of the loaded survey dataset",
	RunE:  showStats,
}

func showStats(cmd *cobra.Command, args []string) error {
	_, table, err := setup()
	if err != nil {
		return err
	}

	countries := table.Countries()
	logger.Debug("dataset loaded",
		zap.Int("rows", table.Len()),
		zap.Int("columns", len(table.Columns())),
		zap.Int("countries", len(countries)))

	fmt.Printf("Responses:  %d\n", table.Len())
	fmt.Printf("Columns:    %d\n", len(table.Columns()))
	fmt.Printf("Countries:  %d\n", len(countries))
	return nil
}
