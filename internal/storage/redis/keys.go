package redis

import "fmt"

// Key prefix for all game-related data
const keyPrefix = "bnc"

// accountKey returns the Redis key for an account
func accountKey(username string) string {
	return fmt.Sprintf("%s:account:%s", keyPrefix, username)
}

// statsKey returns the Redis key for a player's stat history list
func statsKey(username string) string {
	return fmt.Sprintf("%s:stats:%s", keyPrefix, username)
}
