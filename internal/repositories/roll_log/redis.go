package rolllog

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	redis "github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/cepheus-dice/internal/errors"
	"github.com/KirkDiggler/cepheus-dice/internal/pkg/clock"
	redisclient "github.com/KirkDiggler/cepheus-dice/internal/redis"
)

const (
	// Key pattern: roll_log:{owner_id}:{context}
	logKeyPrefix = "roll_log:"

	// DefaultTTL is how long a roll log lives when the caller does not
	// choose a lifetime
	DefaultTTL = 15 * time.Minute

	// Error messages
	errLogNil       = "roll log cannot be nil"
	errOwnerIDEmpty = "owner ID cannot be empty"
	errContextEmpty = "context cannot be empty"
	errLogExpired   = "roll log has already expired"
)

// Config holds the configuration for the Redis repository
type Config struct {
	Client redisclient.Client
	Clock  clock.Clock
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c.Client == nil {
		return errors.InvalidArgument("redis client is required")
	}
	if c.Clock == nil {
		return errors.InvalidArgument("clock is required")
	}
	return nil
}

type redisRepository struct {
	client redisclient.Client
	clock  clock.Clock
}

// NewRedisRepository creates a new Redis repository for roll logs
func NewRedisRepository(cfg *Config) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &redisRepository{
		client: cfg.Client,
		clock:  cfg.Clock,
	}, nil
}

// Ensure redisRepository implements Repository
var _ Repository = (*redisRepository)(nil)

// Create stores a new roll log with the specified TTL
func (r *redisRepository) Create(ctx context.Context, input CreateInput) (*CreateOutput, error) {
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

	// Serialize the log
	logJSON, err := json.Marshal(log)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal roll log")
	}

	// Store in Redis with TTL
	key := r.buildKey(input.OwnerID, input.Context)
	err = r.client.Set(ctx, key, logJSON, ttl).Err()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to store roll log in Redis")
	}

	return &CreateOutput{
		Log: log,
	}, nil
}

// Get retrieves a roll log by owner ID and context
func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.OwnerID == "" {
		return nil, errors.InvalidArgument(errOwnerIDEmpty)
	}
	if input.Context == "" {
		return nil, errors.InvalidArgument(errContextEmpty)
	}

	key := r.buildKey(input.OwnerID, input.Context)

	// Get from Redis
	logJSON, err := r.client.Get(ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFound("roll log not found")
		}
		return nil, errors.Wrapf(err, "failed to get roll log from Redis")
	}

	// Deserialize the log
	var log RollLog
	if err := json.Unmarshal([]byte(logJSON), &log); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal roll log")
	}

	// Check if the log has expired
	if r.clock.Now().After(log.ExpiresAt) {
		// Log has expired, clean it up
		_ = r.client.Del(ctx, key)
		return nil, errors.NotFound("roll log has expired")
	}

	return &GetOutput{
		Log: &log,
	}, nil
}

// Delete removes a roll log
func (r *redisRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.OwnerID == "" {
		return nil, errors.InvalidArgument(errOwnerIDEmpty)
	}
	if input.Context == "" {
		return nil, errors.InvalidArgument(errContextEmpty)
	}

	key := r.buildKey(input.OwnerID, input.Context)

	// Get the log first to count entries
	getOutput, err := r.Get(ctx, GetInput(input))

	entriesDeleted := 0
	if err == nil && getOutput.Log != nil {
		entriesDeleted = len(getOutput.Log.Entries)
	}

	// Delete from Redis
	result := r.client.Del(ctx, key)
	if result.Err() != nil {
		return nil, errors.Wrapf(result.Err(), "failed to delete roll log from Redis")
	}

	return &DeleteOutput{
		EntriesDeleted: entriesDeleted,
	}, nil
}

// Update replaces an existing roll log (used for appending entries)
func (r *redisRepository) Update(ctx context.Context, log *RollLog) error {
	if log == nil {
		return errors.InvalidArgument(errLogNil)
	}
	if log.OwnerID == "" {
		return errors.InvalidArgument(errOwnerIDEmpty)
	}
	if log.Context == "" {
		return errors.InvalidArgument(errContextEmpty)
	}

	// Calculate remaining TTL
	now := r.clock.Now()
	if now.After(log.ExpiresAt) {
		return errors.InvalidArgument(errLogExpired)
	}

	remainingTTL := log.ExpiresAt.Sub(now)

	// Serialize the log
	logJSON, err := json.Marshal(log)
	if err != nil {
		return errors.Wrapf(err, "failed to marshal roll log")
	}

	// Update in Redis with remaining TTL
	key := r.buildKey(log.OwnerID, log.Context)
	err = r.client.Set(ctx, key, logJSON, remainingTTL).Err()
	if err != nil {
		return errors.Wrapf(err, "failed to update roll log in Redis")
	}

	return nil
}

// buildKey creates the Redis key for a roll log
func (r *redisRepository) buildKey(ownerID, context string) string {
	return fmt.Sprintf("%s%s:%s", logKeyPrefix, ownerID, context)
}
