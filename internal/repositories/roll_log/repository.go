// Package rolllog provides repository interface and types for recorded dice rolls
package rolllog

import (
	"context"
	"time"

	"github.com/KirkDiggler/cepheus-dice/internal/dice"
)

//go:generate mockgen -destination=mock/mock_repository.go -package=rolllogmock github.com/KirkDiggler/cepheus-dice/internal/repositories/roll_log Repository

// RollLog represents a collection of recorded rolls grouped by owner and context
type RollLog struct {
	// Owner of these rolls (e.g., "char_123", a table handle, a hostname)
	OwnerID string

	// Context for grouping related rolls (e.g., "adhoc", "attributes", "combat_round_1")
	Context string

	// The recorded rolls in this log, oldest first
	Entries []Entry

	// When this log was created
	CreatedAt time.Time

	// When this log expires
	ExpiresAt time.Time
}

// Entry represents a single recorded roll
type Entry struct {
	// Unique identifier for this roll within the log
	RollID string

	// Expression text exactly as the caller supplied it (e.g., "2d6+3", "d66u")
	Expression string

	// Mode the expression was evaluated under
	Mode dice.RollMode

	// Seed used for the roll; replaying the expression with it
	// reproduces the outcomes
	Seed *int64

	// Raw die outcomes of the kept evaluation, in draw order
	Outcomes []int

	// Final value
	Total int

	// One-line human-readable breakdown
	Breakdown string

	// Optional caller-supplied label (e.g., an attribute name)
	Description string

	// When the roll happened
	RolledAt time.Time
}

// CreateInput contains parameters for creating a roll log
type CreateInput struct {
	OwnerID string
	Context string
	Entries []Entry
	TTL     time.Duration // How long the log should live
}

// CreateOutput contains the result of creating a roll log
type CreateOutput struct {
	Log *RollLog
}

// GetInput contains parameters for retrieving a roll log
type GetInput struct {
	OwnerID string
	Context string
}

// GetOutput contains the result of retrieving a roll log
type GetOutput struct {
	Log *RollLog
}

// DeleteInput contains parameters for deleting a roll log
type DeleteInput struct {
	OwnerID string
	Context string
}

// DeleteOutput contains the result of deleting a roll log
type DeleteOutput struct {
	EntriesDeleted int
}

// Repository defines the interface for roll log storage operations
type Repository interface {
	// Create stores a new roll log with the specified TTL
	Create(ctx context.Context, input CreateInput) (*CreateOutput, error)

	// Get retrieves a roll log by owner ID and context
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// Delete removes a roll log
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)

	// Update replaces an existing roll log (used for appending entries)
	Update(ctx context.Context, log *RollLog) error
}
