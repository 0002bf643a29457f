package session

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

// Store persists one Booking per opaque session identifier. A missing
// session loads as the zero Booking. Concurrent writes to the same
// session are last-write-wins; no locking is provided or expected.
type Store interface {
	Load(ctx context.Context, sessionID string) (Booking, error)
	Save(ctx context.Context, sessionID string, b Booking) error
	Clear(ctx context.Context, sessionID string) error
}

// RedisStore keeps booking sessions in Redis under a TTL so abandoned
// flows expire on their own.
type RedisStore struct {
	redis  *redis.Client
	ttl    time.Duration
	tracer trace.Tracer
}

// NewRedisStore creates a Redis-backed session store.
func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	if client == nil {
		panic("session: redis client cannot be nil")
	}
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &RedisStore{
		redis:  client,
		ttl:    ttl,
		tracer: otel.Tracer("crs.internal.session"),
	}
}

func sessionKey(id string) string {
	return fmt.Sprintf("booking_session:%s", id)
}

// Load returns the booking stored for the session, or the zero Booking
// when nothing has been stored yet.
func (s *RedisStore) Load(ctx context.Context, sessionID string) (Booking, error) {
	ctx, span := s.tracer.Start(ctx, "session.load")
	defer span.End()

	data, err := s.redis.Get(ctx, sessionKey(sessionID)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return Booking{}, nil
		}
		span.RecordError(err)
		return Booking{}, fmt.Errorf("session: failed to load booking: %w", err)
	}

	var b Booking
	if err := json.Unmarshal(data, &b); err != nil {
		span.RecordError(err)
		return Booking{}, fmt.Errorf("session: failed to decode booking: %w", err)
	}
	return b, nil
}

// Save overwrites the booking for the session and refreshes its TTL.
func (s *RedisStore) Save(ctx context.Context, sessionID string, b Booking) error {
	ctx, span := s.tracer.Start(ctx, "session.save")
	defer span.End()

	data, err := json.Marshal(b)
	if err != nil {
		span.RecordError(err)
		return fmt.Errorf("session: failed to marshal booking: %w", err)
	}
	if err := s.redis.Set(ctx, sessionKey(sessionID), data, s.ttl).Err(); err != nil {
		span.RecordError(err)
		return fmt.Errorf("session: failed to persist booking: %w", err)
	}
	return nil
}

// Clear destroys the session record in full.
func (s *RedisStore) Clear(ctx context.Context, sessionID string) error {
	ctx, span := s.tracer.Start(ctx, "session.clear")
	defer span.End()

	if err := s.redis.Del(ctx, sessionKey(sessionID)).Err(); err != nil {
		span.RecordError(err)
		return fmt.Errorf("session: failed to clear booking: %w", err)
	}
	return nil
}

// MemoryStore is an in-process Store for tests and for running without
// a Redis instance. Entries never expire.
type MemoryStore struct {
	mu       sync.RWMutex
	bookings map[string]Booking
}

// NewMemoryStore creates an empty in-memory session store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{bookings: make(map[string]Booking)}
}

func (s *MemoryStore) Load(_ context.Context, sessionID string) (Booking, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.bookings[sessionID], nil
}

func (s *MemoryStore) Save(_ context.Context, sessionID string, b Booking) error {
	s.mu.Lock()
	s.bookings[sessionID] = b
	s.mu.Unlock()
	return nil
}

func (s *MemoryStore) Clear(_ context.Context, sessionID string) error {
	s.mu.Lock()
	delete(s.bookings, sessionID)
	s.mu.Unlock()
	return nil
}
