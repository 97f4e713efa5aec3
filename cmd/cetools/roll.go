package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/cepheus-dice/internal/orchestrators/roll"
	"github.com/KirkDiggler/cepheus-dice/internal/render"
)

var (
	rollSeed    int64
	rollAdv     bool
	rollDis     bool
	rollFormat  string
	rollOwner   string
	rollContext string
	rollNote    string
)

var rollCmd = &cobra.Command{
	Use:   "roll EXPRESSION",
	Short: "Roll a dice expression",
	Long: `Roll a Cepheus Engine dice expression and record it in the roll history.

Expressions combine dice groups and constant modifiers: 2d6+3, d20-1d4+2.
The d66 and d66u tokens compose two d6 draws into a two-digit value and
cannot be mixed with other terms. With --seed the roll is reproducible.`,
	Example: `  cetools roll 2d6+3
  cetools roll d66u --seed 42
  cetools roll 2d6 --adv --format json`,
	Args: exactArgs(1),
	RunE: runRoll,
}

func init() {
	rollCmd.Flags().Int64Var(&rollSeed, "seed", 0, "seed for a reproducible roll")
	rollCmd.Flags().BoolVar(&rollAdv, "adv", false, "roll twice, keep the higher total")
	rollCmd.Flags().BoolVar(&rollDis, "dis", false, "roll twice, keep the lower total")
	rollCmd.Flags().StringVar(&rollFormat, "format", "text", "output format (text, json, yaml)")
	rollCmd.Flags().StringVar(&rollOwner, "owner", getEnv(envOwner, "local"), "owner the roll is recorded under")
	rollCmd.Flags().StringVar(&rollContext, "context", roll.ContextAdhoc, "log context the roll is recorded under")
	rollCmd.Flags().StringVar(&rollNote, "note", "", "description stored with the roll")
}

func runRoll(cmd *cobra.Command, args []string) error {
	format, err := render.ParseFormat(rollFormat)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	svc, err := newService(ctx)
	if err != nil {
		return err
	}

	input := &roll.RollInput{
		OwnerID:      rollOwner,
		Context:      rollContext,
		Expression:   args[0],
		Advantage:    rollAdv,
		Disadvantage: rollDis,
		Description:  rollNote,
	}
	if cmd.Flags().Changed("seed") {
		seed := rollSeed
		input.Seed = &seed
	}

	output, err := svc.Roll(ctx, input)
	if err != nil {
		return err
	}

	if format == render.FormatText {
		fmt.Printf("Rolling %s\n", output.Entry.Expression)
		if input.Seed != nil {
			fmt.Printf("Seed: %d\n", *input.Seed)
		}
		fmt.Printf("Result: %s\n", render.Text(output.Result))
		return nil
	}

	out, err := render.Marshal(newEntryView(output.Entry), format)
	if err != nil {
		return err
	}
	fmt.Print(out)
	return nil
}
