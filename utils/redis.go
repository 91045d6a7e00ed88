package utils

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/iic-bit/IIC-Backend/config"
)

var RedisClient *redis.Client

// InitRedis connects the shared client used for per-event registration locks.
func InitRedis(cfg *config.Config) error {
	RedisClient = redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := RedisClient.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis ping failed: %w", err)
	}

	log.Println("✅ Redis connection established")
	return nil
}

// EventLocker serializes registration batches per event so two concurrent
// batches cannot both pass the team capacity check on a stale count.
type EventLocker interface {
	Acquire(ctx context.Context, eventID uint) (release func(), err error)
}

var ErrLockBusy = errors.New("event is locked by another registration")

const (
	lockTTL       = 10 * time.Second
	lockRetryWait = 50 * time.Millisecond
	lockRetries   = 40
)

// RedisEventLocker takes a SET NX lock keyed by event id. The value is a
// per-acquisition token so release cannot drop a lock a later caller took
// over after expiry.
type RedisEventLocker struct {
	Client *redis.Client
}

func NewRedisEventLocker(client *redis.Client) *RedisEventLocker {
	return &RedisEventLocker{Client: client}
}

func (l *RedisEventLocker) Acquire(ctx context.Context, eventID uint) (func(), error) {
	key := fmt.Sprintf("lock:event:%d:register", eventID)
	token := uuid.New().String()

	for i := 0; i < lockRetries; i++ {
		ok, err := l.Client.SetNX(ctx, key, token, lockTTL).Result()
		if err != nil {
			return nil, fmt.Errorf("acquire event lock: %w", err)
		}
		if ok {
			release := func() {
				// Delete only if we still own the lock.
				script := redis.NewScript(`
					if redis.call("GET", KEYS[1]) == ARGV[1] then
						return redis.call("DEL", KEYS[1])
					end
					return 0
				`)
				if err := script.Run(context.Background(), l.Client, []string{key}, token).Err(); err != nil && err != redis.Nil {
					log.Printf("⚠️ failed to release event lock %s: %v", key, err)
				}
			}
			return release, nil
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(lockRetryWait):
		}
	}

	return nil, ErrLockBusy
}

// LocalEventLocker is an in-process fallback used when Redis is unavailable
// and by tests.
type LocalEventLocker struct {
	mu    sync.Mutex
	locks map[uint]*sync.Mutex
}

func NewLocalEventLocker() *LocalEventLocker {
	return &LocalEventLocker{locks: make(map[uint]*sync.Mutex)}
}

func (l *LocalEventLocker) Acquire(ctx context.Context, eventID uint) (func(), error) {
	l.mu.Lock()
	m, ok := l.locks[eventID]
	if !ok {
		m = &sync.Mutex{}
		l.locks[eventID] = m
	}
	l.mu.Unlock()

	m.Lock()
	return m.Unlock, nil
}
