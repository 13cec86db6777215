package rdx

import (
	"os"

	"trasferte/globals"

	"github.com/redis/go-redis/v9"
)

var Conn *redis.Client

// Init opens the Redis connection used for the token cache and the
// change-notification channel.
func Init() error {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		addr = "localhost:6379"
	}
	Conn = redis.NewClient(&redis.Options{Addr: addr})
	return Conn.Ping(globals.Ctx).Err()
}

func RdxHset(hash, field, value string) error {
	return Conn.HSet(globals.Ctx, hash, field, value).Err()
}

func RdxHdel(hash, field string) (int64, error) {
	return Conn.HDel(globals.Ctx, hash, field).Result()
}
