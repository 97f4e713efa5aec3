package roll

import (
	"context"
	"log/slog"
	"strconv"
	"strings"

	"github.com/cespare/xxhash/v2"

	"github.com/KirkDiggler/cepheus-dice/internal/dice"
	"github.com/KirkDiggler/cepheus-dice/internal/errors"
	"github.com/KirkDiggler/cepheus-dice/internal/pkg/ehex"
	rolllog "github.com/KirkDiggler/cepheus-dice/internal/repositories/roll_log"
)

// attributeOrder lists the six characteristics in UPP order
var attributeOrder = []string{
	"strength",
	"dexterity",
	"endurance",
	"intelligence",
	"education",
	"social_standing",
}

// attributeExpression is rolled once per characteristic
const attributeExpression = "2d6"

// deriveSeed maps a master seed and an attribute name to the seed for that
// attribute's roll. The derivation is a pure function, so a master seed
// always produces the same attribute set.
func deriveSeed(master int64, attribute string) int64 {
	return int64(xxhash.Sum64String(strconv.FormatInt(master, 10) + ":" + attribute))
}

// RollAttributes rolls a complete characteristic set for character creation.
// A new set replaces any previous one recorded for the owner.
func (o *orchestrator) RollAttributes(ctx context.Context, input *RollAttributesInput) (*RollAttributesOutput, error) {
	if input.OwnerID == "" {
		return nil, errors.InvalidArgument("owner ID is required")
	}

	master := input.Seed
	if master == nil {
		generated := dice.NewSeed()
		master = &generated
	}

	expr, err := dice.Parse(attributeExpression)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse attribute expression")
	}

	attributes := make([]Attribute, 0, len(attributeOrder))
	entries := make([]rolllog.Entry, 0, len(attributeOrder))
	var upp strings.Builder

	for _, name := range attributeOrder {
		seed := deriveSeed(*master, name)

		result, rollErr := dice.Evaluate(expr, dice.RollModeStandard, dice.NewSource(seed))
		if rollErr != nil {
			return nil, errors.Wrap(rollErr, "failed to roll attribute")
		}

		code, encodeErr := ehex.Encode(result.Total)
		if encodeErr != nil {
			return nil, errors.Wrap(encodeErr, "failed to encode attribute value")
		}
		upp.WriteString(code)

		attributes = append(attributes, Attribute{
			Name:   name,
			Value:  result.Total,
			Ehex:   code,
			Result: result,
		})

		entrySeed := seed
		entries = append(entries, rolllog.Entry{
			RollID:      o.idGen.Generate(),
			Expression:  attributeExpression,
			Mode:        result.Mode,
			Seed:        &entrySeed,
			Outcomes:    result.Outcomes(),
			Total:       result.Total,
			Breakdown:   result.Description(),
			Description: name,
			RolledAt:    o.clock.Now(),
		})
	}

	createOutput, err := o.rollLogRepo.Create(ctx, rolllog.CreateInput{
		OwnerID: input.OwnerID,
		Context: ContextAttributes,
		Entries: entries,
		TTL:     rolllog.DefaultTTL,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create attribute roll log")
	}

	slog.Info("Attribute set rolled",
		"owner_id", input.OwnerID,
		"upp", upp.String(),
	)

	return &RollAttributesOutput{
		Attributes: attributes,
		UPP:        upp.String(),
		Log:        createOutput.Log,
	}, nil
}
