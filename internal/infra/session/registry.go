package session

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"boat-scheduler/internal/domain/confirm"
	"boat-scheduler/internal/pkg/clock"
	"boat-scheduler/internal/pkg/config"
	"boat-scheduler/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
)

// Registry keeps one session per operator in memory. Idle sessions expire after the session
// TTL and an evicted session's gate is disarmed.
type Registry struct {
	mu             sync.Mutex
	cache          *cache.Cache
	loader         shared.ScheduleLoader
	clock          clock.Clock
	confirmTimeout time.Duration
	logger         *slog.Logger
}

func NewRegistry(cfg config.SessionConfig, confirmTimeout time.Duration, loader shared.ScheduleLoader, c clock.Clock, logger *slog.Logger) *Registry {
	if c == nil {
		c = clock.NewRealClock()
	}
	ttl := cfg.TTL
	if ttl <= 0 {
		ttl = cache.NoExpiration
	}
	r := &Registry{
		cache:          cache.New(ttl, cfg.CleanupInterval),
		loader:         loader,
		clock:          c,
		confirmTimeout: confirmTimeout,
		logger:         logger,
	}
	r.cache.OnEvicted(r.evicted)
	return r
}

// Acquire returns the operator's session and extends its lifetime. A missing session is built
// from a freshly loaded schedule; concurrent first requests share one load.
func (r *Registry) Acquire(ctx context.Context, operatorID uuid.UUID) (*shared.Session, error) {
	key := operatorID.String()
	if s, ok := r.lookup(key); ok {
		r.cache.SetDefault(key, s)
		return s, nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if s, ok := r.lookup(key); ok {
		r.cache.SetDefault(key, s)
		return s, nil
	}

	store, err := r.loader.Load(ctx)
	if err != nil {
		return nil, err
	}
	s := shared.NewSession(operatorID, store, r.newGate(operatorID))
	r.cache.SetDefault(key, s)

	r.logger.Info("Session opened",
		slog.String("operator_id", key),
		slog.Int("bookings", store.Len()))
	return s, nil
}

func (r *Registry) Drop(operatorID uuid.UUID) bool {
	key := operatorID.String()
	if _, ok := r.lookup(key); !ok {
		return false
	}
	r.cache.Delete(key)
	return true
}

func (r *Registry) Len() int {
	return r.cache.ItemCount()
}

func (r *Registry) lookup(key string) (*shared.Session, bool) {
	v, ok := r.cache.Get(key)
	if !ok {
		return nil, false
	}
	s, ok := v.(*shared.Session)
	return s, ok
}

func (r *Registry) newGate(operatorID uuid.UUID) *confirm.Gate {
	return confirm.NewGate(r.clock, r.confirmTimeout, confirm.WithOnDisarm(func(p confirm.Pending, reason confirm.DisarmReason) {
		r.logger.Info("Confirmation disarmed",
			slog.String("operator_id", operatorID.String()),
			slog.String("kind", string(p.Kind)),
			slog.String("booking_id", p.Target.BookingID.String()),
			slog.String("passenger_id", p.Target.PassengerID.String()),
			slog.String("reason", string(reason)))
	}))
}

func (r *Registry) evicted(key string, v any) {
	s, ok := v.(*shared.Session)
	if !ok {
		return
	}
	s.Gate().Disarm()
	r.logger.Info("Session closed", slog.String("operator_id", key))
}

var _ shared.SessionRepository = (*Registry)(nil)
