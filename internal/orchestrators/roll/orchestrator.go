// Package roll implements the orchestrator for evaluating dice expressions
// and recording the results in roll logs
package roll

//go:generate mockgen -destination=mock/mock_service.go -package=rollmock github.com/KirkDiggler/cepheus-dice/internal/orchestrators/roll Service

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/cepheus-dice/internal/dice"
	"github.com/KirkDiggler/cepheus-dice/internal/errors"
	"github.com/KirkDiggler/cepheus-dice/internal/pkg/clock"
	"github.com/KirkDiggler/cepheus-dice/internal/pkg/idgen"
	rolllog "github.com/KirkDiggler/cepheus-dice/internal/repositories/roll_log"
)

const (
	// ContextAdhoc is the log context used for one-off rolls when the
	// caller does not name one
	ContextAdhoc = "adhoc"

	// ContextAttributes is the log context attribute sets are recorded under
	ContextAttributes = "attributes"
)

// Service defines the interface for roll operations
type Service interface {
	// Roll evaluates a dice expression and records it in the owner's roll log
	Roll(ctx context.Context, input *RollInput) (*RollOutput, error)

	// GetRollLog retrieves the roll log for an owner and context
	GetRollLog(ctx context.Context, input *GetRollLogInput) (*GetRollLogOutput, error)

	// ClearRollLog removes the roll log for an owner and context
	ClearRollLog(ctx context.Context, input *ClearRollLogInput) (*ClearRollLogOutput, error)

	// RollAttributes rolls a complete characteristic set for character creation
	RollAttributes(ctx context.Context, input *RollAttributesInput) (*RollAttributesOutput, error)
}

// Config holds the dependencies for the roll orchestrator
type Config struct {
	RollLogRepo rolllog.Repository
	IDGenerator idgen.Generator
	Clock       clock.Clock
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.RollLogRepo == nil {
		vb.RequiredField("RollLogRepo")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}
	if c.Clock == nil {
		vb.RequiredField("Clock")
	}

	return vb.Build()
}

type orchestrator struct {
	rollLogRepo rolllog.Repository
	idGen       idgen.Generator
	clock       clock.Clock
}

// NewOrchestrator creates a new roll orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &orchestrator{
		rollLogRepo: cfg.RollLogRepo,
		idGen:       cfg.IDGenerator,
		clock:       cfg.Clock,
	}, nil
}

// Roll evaluates a dice expression and records it in the owner's roll log
func (o *orchestrator) Roll(ctx context.Context, input *RollInput) (*RollOutput, error) {
	if input.OwnerID == "" {
		return nil, errors.InvalidArgument("owner ID is required")
	}
	if input.Context == "" {
		return nil, errors.InvalidArgument("context is required")
	}
	if input.Expression == "" {
		return nil, errors.InvalidArgument("dice expression is required")
	}
	if input.Advantage && input.Disadvantage {
		return nil, errors.InvalidArgument("cannot roll with both advantage and disadvantage")
	}

	expr, err := dice.Parse(input.Expression)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, err.Error()).
			WithMeta("expression", input.Expression)
	}

	mode := expr.Mode()
	if input.Advantage {
		mode = dice.RollModeAdvantage
	}
	if input.Disadvantage {
		mode = dice.RollModeDisadvantage
	}

	// A roll without a caller-supplied seed still gets one recorded, so
	// any entry in the log can be replayed later.
	seed := input.Seed
	if seed == nil {
		generated := dice.NewSeed()
		seed = &generated
	}

	result, err := dice.Evaluate(expr, mode, dice.NewSource(*seed))
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, err.Error()).
			WithMeta("expression", input.Expression).
			WithMeta("mode", string(mode))
	}

	entry := rolllog.Entry{
		RollID:      o.idGen.Generate(),
		Expression:  input.Expression,
		Mode:        result.Mode,
		Seed:        seed,
		Outcomes:    result.Outcomes(),
		Total:       result.Total,
		Breakdown:   result.Description(),
		Description: input.Description,
		RolledAt:    o.clock.Now(),
	}

	// Get or create the roll log
	getOutput, err := o.rollLogRepo.Get(ctx, rolllog.GetInput{
		OwnerID: input.OwnerID,
		Context: input.Context,
	})

	var log *rolllog.RollLog
	if err != nil {
		if !errors.IsNotFound(err) {
			return nil, errors.Wrap(err, "failed to check for existing roll log")
		}

		ttl := input.TTL
		if ttl == 0 {
			ttl = rolllog.DefaultTTL
		}

		createOutput, createErr := o.rollLogRepo.Create(ctx, rolllog.CreateInput{
			OwnerID: input.OwnerID,
			Context: input.Context,
			Entries: []rolllog.Entry{entry},
			TTL:     ttl,
		})
		if createErr != nil {
			return nil, errors.Wrap(createErr, "failed to create roll log")
		}
		log = createOutput.Log
	} else {
		log = getOutput.Log
		log.Entries = append(log.Entries, entry)

		if updateErr := o.rollLogRepo.Update(ctx, log); updateErr != nil {
			return nil, errors.Wrap(updateErr, "failed to update roll log")
		}
	}

	slog.Info("Roll recorded",
		"owner_id", input.OwnerID,
		"context", input.Context,
		"expression", input.Expression,
		"mode", string(result.Mode),
		"total", result.Total,
		"roll_id", entry.RollID,
	)

	return &RollOutput{
		Result: result,
		Entry:  &entry,
		Log:    log,
	}, nil
}

// GetRollLog retrieves the roll log for an owner and context
func (o *orchestrator) GetRollLog(ctx context.Context, input *GetRollLogInput) (*GetRollLogOutput, error) {
	if input.OwnerID == "" {
		return nil, errors.InvalidArgument("owner ID is required")
	}
	if input.Context == "" {
		return nil, errors.InvalidArgument("context is required")
	}

	getOutput, err := o.rollLogRepo.Get(ctx, rolllog.GetInput{
		OwnerID: input.OwnerID,
		Context: input.Context,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get roll log")
	}

	return &GetRollLogOutput{
		Log: getOutput.Log,
	}, nil
}

// ClearRollLog removes the roll log for an owner and context
func (o *orchestrator) ClearRollLog(ctx context.Context, input *ClearRollLogInput) (*ClearRollLogOutput, error) {
	if input.OwnerID == "" {
		return nil, errors.InvalidArgument("owner ID is required")
	}
	if input.Context == "" {
		return nil, errors.InvalidArgument("context is required")
	}

	deleteOutput, err := o.rollLogRepo.Delete(ctx, rolllog.DeleteInput{
		OwnerID: input.OwnerID,
		Context: input.Context,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to clear roll log")
	}

	slog.Info("Roll log cleared",
		"owner_id", input.OwnerID,
		"context", input.Context,
		"entries_deleted", deleteOutput.EntriesDeleted,
	)

	return &ClearRollLogOutput{
		EntriesDeleted: deleteOutput.EntriesDeleted,
	}, nil
}
