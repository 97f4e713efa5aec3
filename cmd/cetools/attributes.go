package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/cepheus-dice/internal/orchestrators/roll"
	"github.com/KirkDiggler/cepheus-dice/internal/render"
)

var (
	attrSeed   int64
	attrFormat string
	attrOwner  string
)

var attributesCmd = &cobra.Command{
	Use:   "attributes",
	Short: "Roll a full characteristic set",
	Long: `Roll 2d6 for each of the six Cepheus Engine characteristics in order
(strength, dexterity, endurance, intelligence, education, social standing)
and report the set as a pseudo-hex UPP string.

With --seed every characteristic's roll is derived from the one master
seed, so the whole set is reproducible.`,
	Example: `  cetools attributes
  cetools attributes --seed 42
  cetools attributes --format yaml`,
	Args: exactArgs(0),
	RunE: runAttributes,
}

func init() {
	attributesCmd.Flags().Int64Var(&attrSeed, "seed", 0, "master seed for a reproducible set")
	attributesCmd.Flags().StringVar(&attrFormat, "format", "text", "output format (text, json, yaml)")
	attributesCmd.Flags().StringVar(&attrOwner, "owner", getEnv(envOwner, "local"), "owner the set is recorded under")
}

func runAttributes(cmd *cobra.Command, args []string) error {
	format, err := render.ParseFormat(attrFormat)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	svc, err := newService(ctx)
	if err != nil {
		return err
	}

	input := &roll.RollAttributesInput{
		OwnerID: attrOwner,
	}
	if cmd.Flags().Changed("seed") {
		seed := attrSeed
		input.Seed = &seed
	}

	output, err := svc.RollAttributes(ctx, input)
	if err != nil {
		return err
	}

	if format == render.FormatText {
		for _, attr := range output.Attributes {
			fmt.Printf("%-16s %2d (%s)  %s\n", attr.Name, attr.Value, attr.Ehex, render.Text(attr.Result))
		}
		fmt.Printf("UPP: %s\n", output.UPP)
		return nil
	}

	out, err := render.Marshal(newAttributesView(output), format)
	if err != nil {
		return err
	}
	fmt.Print(out)
	return nil
}
