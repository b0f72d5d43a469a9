package snapshot

import (
	"context"
	"crypto/tls"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/farmlogix/compliance"
	"github.com/farmlogix/compliance/dashboard"
)

// ErrNotFound indicates no snapshot has been saved for the requested farm.
var ErrNotFound = errors.New("snapshot not found")

// Options configures the Redis connection.
type Options struct {
	// URL is the Redis connection string (e.g., "redis://localhost:6379").
	URL string

	// TLS configuration for secure connections.
	TLS *tls.Config

	// ConnectTimeout is the maximum time to wait for connection
	// establishment.
	ConnectTimeout time.Duration

	// ReadTimeout is the maximum time to wait for read operations.
	ReadTimeout time.Duration

	// WriteTimeout is the maximum time to wait for write operations.
	WriteTimeout time.Duration

	// KeyPrefix namespaces all keys written by the store. Default:
	// "compliance".
	KeyPrefix string
}

// Store keeps the latest dashboard snapshot per farm in Redis and fans out
// refresh notifications over pub/sub.
type Store struct {
	client *redis.Client
	prefix string
}

// NewStore creates a snapshot store with the given options and verifies
// connectivity.
func NewStore(opts Options) (*Store, error) {
	if opts.URL == "" {
		opts.URL = "redis://localhost:6379"
	}
	if opts.ConnectTimeout == 0 {
		opts.ConnectTimeout = 5 * time.Second
	}
	if opts.ReadTimeout == 0 {
		opts.ReadTimeout = 30 * time.Second
	}
	if opts.WriteTimeout == 0 {
		opts.WriteTimeout = 5 * time.Second
	}
	if opts.KeyPrefix == "" {
		opts.KeyPrefix = "compliance"
	}

	redisOpts, err := redis.ParseURL(opts.URL)
	if err != nil {
		return nil, compliance.NewConfigurationError("snapshot.NewStore",
			fmt.Errorf("failed to parse Redis URL: %w", err))
	}

	redisOpts.TLSConfig = opts.TLS
	redisOpts.DialTimeout = opts.ConnectTimeout
	redisOpts.ReadTimeout = opts.ReadTimeout
	redisOpts.WriteTimeout = opts.WriteTimeout

	client := redis.NewClient(redisOpts)

	ctx, cancel := context.WithTimeout(context.Background(), opts.ConnectTimeout)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, compliance.NewNetworkError("snapshot.NewStore",
			fmt.Errorf("failed to connect to Redis: %w", err))
	}

	return &Store{client: client, prefix: opts.KeyPrefix}, nil
}

// Save stores the snapshot as the latest for the given farm and publishes a
// refresh notification to the farm's channel.
func (s *Store) Save(ctx context.Context, farmID string, snap dashboard.Snapshot) error {
	data, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("failed to marshal snapshot: %w", err)
	}

	if err := s.client.Set(ctx, s.key(farmID), data, 0).Err(); err != nil {
		return fmt.Errorf("failed to save snapshot for farm %s: %w", farmID, err)
	}

	if err := s.client.Publish(ctx, s.channel(farmID), data).Err(); err != nil {
		return fmt.Errorf("failed to publish snapshot for farm %s: %w", farmID, err)
	}

	return nil
}

// Load returns the latest snapshot for the given farm, or ErrNotFound when
// none has been saved.
func (s *Store) Load(ctx context.Context, farmID string) (dashboard.Snapshot, error) {
	data, err := s.client.Get(ctx, s.key(farmID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return dashboard.Snapshot{}, ErrNotFound
		}
		return dashboard.Snapshot{}, fmt.Errorf("failed to load snapshot for farm %s: %w", farmID, err)
	}

	var snap dashboard.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return dashboard.Snapshot{}, fmt.Errorf("failed to unmarshal snapshot for farm %s: %w", farmID, err)
	}

	return snap, nil
}

// Subscribe returns a channel that receives each snapshot published for the
// given farm until the context is cancelled. Malformed payloads are skipped.
func (s *Store) Subscribe(ctx context.Context, farmID string) (<-chan dashboard.Snapshot, error) {
	pubsub := s.client.Subscribe(ctx, s.channel(farmID))

	if _, err := pubsub.Receive(ctx); err != nil {
		return nil, fmt.Errorf("failed to subscribe for farm %s: %w", farmID, err)
	}

	out := make(chan dashboard.Snapshot)

	go func() {
		defer close(out)
		defer pubsub.Close()

		ch := pubsub.Channel()
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-ch:
				if !ok {
					return
				}

				var snap dashboard.Snapshot
				if err := json.Unmarshal([]byte(msg.Payload), &snap); err != nil {
					continue
				}

				select {
				case out <- snap:
				case <-ctx.Done():
					return
				}
			}
		}
	}()

	return out, nil
}

// Close closes the Redis connection.
func (s *Store) Close() error {
	return s.client.Close()
}

func (s *Store) key(farmID string) string {
	return fmt.Sprintf("%s:snapshot:%s", s.prefix, farmID)
}

func (s *Store) channel(farmID string) string {
	return fmt.Sprintf("%s:refresh:%s", s.prefix, farmID)
}
