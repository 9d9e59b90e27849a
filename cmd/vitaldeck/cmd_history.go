package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"vitaldeck/internal/ledger"
)

var historyClear bool

// historyCmd lists or clears the persisted session history.
var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List past prediction sessions (newest first)",
	RunE:  runHistory,
}

func init() {
	historyCmd.Flags().BoolVar(&historyClear, "clear", false, "delete all recorded history")
}

func runHistory(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	_, lg := newCollaborators(cfg)

	if historyClear {
		if err := lg.Clear(); err != nil {
			return err
		}
		fmt.Println("History cleared.")
		return nil
	}

	sessions := lg.Load()
	if len(sessions) == 0 {
		fmt.Println("No predictions recorded yet.")
		return nil
	}
	for _, line := range ledger.Lines(sessions) {
		fmt.Println(line)
	}
	return nil
}
