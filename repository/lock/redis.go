package lock

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	lockKey       = "rsvp:submit:lock"
	lockTTL       = 10 * time.Second
	pollInterval  = 50 * time.Millisecond
	acquireBudget = 5 * time.Second
)

// Lua release: delete the key only if we still own it, so an expired lock
// taken over by another instance is never removed by the old holder.
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0`)

type redisLocker struct {
	client *redis.Client
}

// NewRedisLocker returns a SET NX based locker for deployments running
// more than one instance against the same store.
func NewRedisLocker(client *redis.Client) Locker {
	return &redisLocker{client: client}
}

func (l *redisLocker) Acquire(ctx context.Context) (func(), error) {
	ctx, cancel := context.WithTimeout(ctx, acquireBudget)
	defer cancel()

	owner := uuid.NewString()
	for {
		ok, err := l.client.SetNX(ctx, lockKey, owner, lockTTL).Result()
		if err != nil {
			return nil, err
		}
		if ok {
			return func() {
				releaseCtx, releaseCancel := context.WithTimeout(context.Background(), time.Second)
				defer releaseCancel()
				_ = releaseScript.Run(releaseCtx, l.client, []string{lockKey}, owner).Err()
			}, nil
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(pollInterval):
		}
	}
}
