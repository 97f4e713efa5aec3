package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/cepheus-dice/internal/errors"
	"github.com/KirkDiggler/cepheus-dice/internal/orchestrators/roll"
	"github.com/KirkDiggler/cepheus-dice/internal/render"
)

var (
	historyOwner   string
	historyContext string
	historyFormat  string
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Inspect or clear the roll history",
}

var historyShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the recorded rolls for an owner and context",
	Args:  exactArgs(0),
	RunE:  runHistoryShow,
}

var historyClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Clear the recorded rolls for an owner and context",
	Args:  exactArgs(0),
	RunE:  runHistoryClear,
}

func init() {
	historyCmd.AddCommand(historyShowCmd)
	historyCmd.AddCommand(historyClearCmd)

	historyCmd.PersistentFlags().StringVar(&historyOwner, "owner", getEnv(envOwner, "local"), "owner of the roll log")
	historyCmd.PersistentFlags().StringVar(&historyContext, "context", roll.ContextAdhoc, "log context")
	historyShowCmd.Flags().StringVar(&historyFormat, "format", "text", "output format (text, json, yaml)")
}

func runHistoryShow(cmd *cobra.Command, args []string) error {
	format, err := render.ParseFormat(historyFormat)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	svc, err := newService(ctx)
	if err != nil {
		return err
	}

	output, err := svc.GetRollLog(ctx, &roll.GetRollLogInput{
		OwnerID: historyOwner,
		Context: historyContext,
	})
	if err != nil {
		if errors.IsNotFound(err) {
			fmt.Println("No rolls recorded.")
			return nil
		}
		return err
	}

	if format == render.FormatText {
		for _, entry := range output.Log.Entries {
			line := fmt.Sprintf("%s  %-10s %s", entry.RolledAt.Format(time.RFC3339), entry.Expression, entry.Breakdown)
			if entry.Description != "" {
				line += "  # " + entry.Description
			}
			fmt.Println(line)
		}
		return nil
	}

	out, err := render.Marshal(newHistoryView(output.Log), format)
	if err != nil {
		return err
	}
	fmt.Print(out)
	return nil
}

func runHistoryClear(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	svc, err := newService(ctx)
	if err != nil {
		return err
	}

	output, err := svc.ClearRollLog(ctx, &roll.ClearRollLogInput{
		OwnerID: historyOwner,
		Context: historyContext,
	})
	if err != nil {
		return err
	}

	fmt.Printf("Cleared %d roll(s).\n", output.EntriesDeleted)
	return nil
}
