// Package main is the entry point for the cetools CLI
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/cepheus-dice/internal/errors"
	"github.com/KirkDiggler/cepheus-dice/internal/orchestrators/roll"
	"github.com/KirkDiggler/cepheus-dice/internal/pkg/clock"
	"github.com/KirkDiggler/cepheus-dice/internal/pkg/idgen"
	redisclient "github.com/KirkDiggler/cepheus-dice/internal/redis"
	rolllog "github.com/KirkDiggler/cepheus-dice/internal/repositories/roll_log"
)

const version = "0.1.0"

const (
	// envRedisAddr selects the Redis-backed roll log store. Unset means
	// the in-process store, which lives only for the one command.
	envRedisAddr = "CETOOLS_REDIS_ADDR"

	// envOwner overrides the default owner rolls are recorded under
	envOwner = "CETOOLS_OWNER"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "cetools",
	Short: "Cepheus Engine dice roller",
	Long: `cetools rolls Cepheus Engine dice expressions (NdM+K, d66, d66u) with
seedable, reproducible results and keeps a roll history per owner and context.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := slog.LevelWarn
		if verbose {
			level = slog.LevelInfo
		}
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: level,
		})))
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the cetools version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(version)
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", errors.GetMessage(err))
		os.Exit(errors.ExitCode(err))
	}
}

func init() {
	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return errors.WrapWithCode(err, errors.CodeInvalidArgument, err.Error())
	})

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log service activity to stderr")

	rootCmd.AddCommand(rollCmd)
	rootCmd.AddCommand(attributesCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(versionCmd)
}

// newService wires the roll orchestrator against the configured store
func newService(ctx context.Context) (roll.Service, error) {
	repo, err := newRepository(ctx)
	if err != nil {
		return nil, err
	}

	return roll.NewOrchestrator(&roll.Config{
		RollLogRepo: repo,
		IDGenerator: idgen.NewUUID("roll"),
		Clock:       clock.New(),
	})
}

func newRepository(ctx context.Context) (rolllog.Repository, error) {
	addr := os.Getenv(envRedisAddr)
	if addr == "" {
		return rolllog.NewInMemoryRepository(&rolllog.InMemoryConfig{
			Clock: clock.New(),
		})
	}

	client, err := redisclient.NewClient(addr, nil)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, err.Error())
	}
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable,
			fmt.Sprintf("redis unreachable at %s", addr))
	}

	return rolllog.NewRedisRepository(&rolllog.Config{
		Client: client,
		Clock:  clock.New(),
	})
}

// getEnv returns the environment value for key, or defaultValue when unset
func getEnv(key, defaultValue string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultValue
}

// exactArgs mirrors cobra.ExactArgs but returns a coded error so usage
// mistakes exit 2 instead of 10.
func exactArgs(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) != n {
			return errors.InvalidArgumentf("accepts %d arg(s), received %d", n, len(args))
		}
		return nil
	}
}
