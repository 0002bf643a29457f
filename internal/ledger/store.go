package ledger

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

const reservationsKey = "reservations"

// Store persists the shared reservation ledger.
type Store interface {
	// Append records a new reservation and returns it with its
	// generated ID and timestamp filled in.
	Append(ctx context.Context, name, date, timeSlot string) (Reservation, error)
	// List returns every reservation in insertion order.
	List(ctx context.Context) ([]Reservation, error)
}

// RedisStore keeps the ledger in a single Redis list so every visitor
// sees the same rows.
type RedisStore struct {
	redis  *redis.Client
	tracer trace.Tracer
}

// NewRedisStore creates a Redis-backed ledger store.
func NewRedisStore(redisClient *redis.Client) *RedisStore {
	if redisClient == nil {
		return nil
	}
	return &RedisStore{
		redis:  redisClient,
		tracer: otel.Tracer("crs.internal.ledger"),
	}
}

func (s *RedisStore) Append(ctx context.Context, name, date, timeSlot string) (Reservation, error) {
	res := newReservation(name, date, timeSlot)

	data, err := json.Marshal(res)
	if err != nil {
		return Reservation{}, fmt.Errorf("ledger: marshal reservation: %w", err)
	}

	ctx, span := s.tracer.Start(ctx, "ledger.append")
	defer span.End()

	if err := s.redis.RPush(ctx, reservationsKey, data).Err(); err != nil {
		span.RecordError(err)
		return Reservation{}, fmt.Errorf("ledger: append reservation: %w", err)
	}
	return res, nil
}

func (s *RedisStore) List(ctx context.Context) ([]Reservation, error) {
	ctx, span := s.tracer.Start(ctx, "ledger.list")
	defer span.End()

	raw, err := s.redis.LRange(ctx, reservationsKey, 0, -1).Result()
	if err != nil {
		span.RecordError(err)
		if err == redis.Nil {
			return []Reservation{}, nil
		}
		return nil, fmt.Errorf("ledger: list reservations: %w", err)
	}

	out := make([]Reservation, 0, len(raw))
	for _, item := range raw {
		var res Reservation
		if err := json.Unmarshal([]byte(item), &res); err != nil {
			span.RecordError(err)
			continue
		}
		out = append(out, res)
	}
	return out, nil
}

// MemoryStore is an in-process ledger for local development and tests.
type MemoryStore struct {
	mu           sync.RWMutex
	reservations []Reservation
}

// NewMemoryStore creates an empty in-memory ledger store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Append(ctx context.Context, name, date, timeSlot string) (Reservation, error) {
	res := newReservation(name, date, timeSlot)

	s.mu.Lock()
	s.reservations = append(s.reservations, res)
	s.mu.Unlock()

	return res, nil
}

func (s *MemoryStore) List(ctx context.Context) ([]Reservation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Reservation, len(s.reservations))
	copy(out, s.reservations)
	return out, nil
}

func newReservation(name, date, timeSlot string) Reservation {
	return Reservation{
		ID:        uuid.NewString(),
		Name:      name,
		Date:      date,
		Time:      timeSlot,
		Status:    StatusBooked,
		CreatedAt: time.Now().UTC(),
	}
}
