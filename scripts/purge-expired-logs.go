package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/redis/go-redis/v9"
)

// Roll log keys normally expire through their Redis TTL. This script
// catches keys that outlived it (persisted keys, restored dumps) by
// checking the recorded expiry timestamp.
type rollLogData struct {
	ExpiresAt time.Time
}

func main() {
	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		redisURL = "redis://localhost:6379"
	}

	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		log.Fatal("Failed to parse Redis URL:", err)
	}

	client := redis.NewClient(opt)
	ctx := context.Background()

	if err := client.Ping(ctx).Err(); err != nil {
		log.Fatal("Failed to connect to Redis:", err)
	}

	fmt.Println("Connected to Redis:", redisURL)
	fmt.Println("Scanning for expired roll logs...")

	iter := client.Scan(ctx, 0, "roll_log:*", 0).Iterator()

	now := time.Now()
	var staleKeys []string
	var checkedCount int

	for iter.Next(ctx) {
		key := iter.Val()
		checkedCount++

		data, err := client.Get(ctx, key).Result()
		if err != nil {
			fmt.Printf("Error reading %s: %v\n", key, err)
			continue
		}

		var logData rollLogData
		if err := json.Unmarshal([]byte(data), &logData); err != nil {
			fmt.Printf("✗ Unreadable JSON in %s\n", key)
			staleKeys = append(staleKeys, key)
			continue
		}

		if now.After(logData.ExpiresAt) {
			fmt.Printf("✗ Expired %s at %s\n", key, logData.ExpiresAt.Format(time.RFC3339))
			staleKeys = append(staleKeys, key)
		}
	}

	if err := iter.Err(); err != nil {
		log.Fatal("Error during scan:", err)
	}

	fmt.Printf("\nChecked %d keys, found %d expired logs\n", checkedCount, len(staleKeys))

	if len(staleKeys) == 0 {
		fmt.Println("No expired logs found!")
		return
	}

	fmt.Println("\nExpired keys:")
	for _, key := range staleKeys {
		fmt.Printf("  - %s\n", key)
	}

	fmt.Print("\nDo you want to DELETE these logs? (yes/no): ")
	var response string
	fmt.Scanln(&response)

	if response == "yes" {
		for _, key := range staleKeys {
			if err := client.Del(ctx, key).Err(); err != nil {
				fmt.Printf("Failed to delete %s: %v\n", key, err)
			} else {
				fmt.Printf("Deleted %s\n", key)
			}
		}
		fmt.Println("\nCleanup complete!")
	} else {
		fmt.Println("Aborted - no changes made")
	}
}
