package rolllog

import (
	"context"
	"fmt"
	"sync"

	"github.com/KirkDiggler/cepheus-dice/internal/errors"
	"github.com/KirkDiggler/cepheus-dice/internal/pkg/clock"
)

// InMemoryConfig holds the configuration for the in-memory repository
type InMemoryConfig struct {
	Clock clock.Clock
}

// Validate ensures all required dependencies are provided
func (c *InMemoryConfig) Validate() error {
	if c.Clock == nil {
		return errors.InvalidArgument("clock is required")
	}
	return nil
}

// inMemoryRepository implements Repository using process-local storage.
// It carries the same TTL semantics as the Redis repository so callers
// can swap between them freely.
type inMemoryRepository struct {
	mu    sync.RWMutex
	logs  map[string]*RollLog
	clock clock.Clock
}

// NewInMemoryRepository creates a new in-memory repository for roll logs
func NewInMemoryRepository(cfg *InMemoryConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &inMemoryRepository{
		logs:  make(map[string]*RollLog),
		clock: cfg.Clock,
	}, nil
}

// Ensure inMemoryRepository implements Repository
var _ Repository = (*inMemoryRepository)(nil)

// Create stores a new roll log with the specified TTL
func (r *inMemoryRepository) Create(ctx context.Context, input CreateInput) (*CreateOutput, error) {
	if input.OwnerID == "" {
		return nil, errors.InvalidArgument(errOwnerIDEmpty)
	}
	if input.Context == "" {
		return nil, errors.InvalidArgument(errContextEmpty)
	}

	now := r.clock.Now()
	ttl := input.TTL
	if ttl == 0 {
		ttl = DefaultTTL
	}

	log := &RollLog{
		OwnerID:   input.OwnerID,
		Context:   input.Context,
		Entries:   input.Entries,
		CreatedAt: now,
		ExpiresAt: now.Add(ttl),
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.logs[r.buildKey(input.OwnerID, input.Context)] = copyLog(log)

	return &CreateOutput{
		Log: log,
	}, nil
}

// Get retrieves a roll log by owner ID and context
func (r *inMemoryRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.OwnerID == "" {
		return nil, errors.InvalidArgument(errOwnerIDEmpty)
	}
	if input.Context == "" {
		return nil, errors.InvalidArgument(errContextEmpty)
	}

	key := r.buildKey(input.OwnerID, input.Context)

	r.mu.Lock()
	defer r.mu.Unlock()

	log, exists := r.logs[key]
	if !exists {
		return nil, errors.NotFound("roll log not found")
	}

	// Check if the log has expired
	if r.clock.Now().After(log.ExpiresAt) {
		delete(r.logs, key)
		return nil, errors.NotFound("roll log has expired")
	}

	// Return a copy to prevent external modification
	return &GetOutput{
		Log: copyLog(log),
	}, nil
}

// Delete removes a roll log
func (r *inMemoryRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.OwnerID == "" {
		return nil, errors.InvalidArgument(errOwnerIDEmpty)
	}
	if input.Context == "" {
		return nil, errors.InvalidArgument(errContextEmpty)
	}

	key := r.buildKey(input.OwnerID, input.Context)

	r.mu.Lock()
	defer r.mu.Unlock()

	entriesDeleted := 0
	if log, exists := r.logs[key]; exists && !r.clock.Now().After(log.ExpiresAt) {
		entriesDeleted = len(log.Entries)
	}
	delete(r.logs, key)

	return &DeleteOutput{
		EntriesDeleted: entriesDeleted,
	}, nil
}

// Update replaces an existing roll log (used for appending entries)
func (r *inMemoryRepository) Update(ctx context.Context, log *RollLog) error {
	if log == nil {
		return errors.InvalidArgument(errLogNil)
	}
	if log.OwnerID == "" {
		return errors.InvalidArgument(errOwnerIDEmpty)
	}
	if log.Context == "" {
		return errors.InvalidArgument(errContextEmpty)
	}

	if r.clock.Now().After(log.ExpiresAt) {
		return errors.InvalidArgument(errLogExpired)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.logs[r.buildKey(log.OwnerID, log.Context)] = copyLog(log)

	return nil
}

// buildKey creates the storage key for a roll log
func (r *inMemoryRepository) buildKey(ownerID, context string) string {
	return fmt.Sprintf("%s%s:%s", logKeyPrefix, ownerID, context)
}

// copyLog deep-copies a log so callers never share entry slices with
// the store.
func copyLog(log *RollLog) *RollLog {
	cp := *log
	cp.Entries = make([]Entry, len(log.Entries))
	copy(cp.Entries, log.Entries)
	return &cp
}
