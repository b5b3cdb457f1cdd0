//go:build unit

package session_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"boat-scheduler/internal/domain/booking"
	"boat-scheduler/internal/domain/confirm"
	"boat-scheduler/internal/domain/schedule"
	"boat-scheduler/internal/infra/session"
	"boat-scheduler/internal/pkg/clock"
	"boat-scheduler/internal/pkg/config"
	sharedmock "boat-scheduler/tests/mock/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func demoStore(t *testing.T) *schedule.Store {
	t.Helper()
	s, err := schedule.DemoStore(time.UTC)
	require.NoError(t, err)
	return s
}

func newRegistry(t *testing.T, loader *sharedmock.MockScheduleLoader, c clock.Clock) *session.Registry {
	t.Helper()
	return session.NewRegistry(config.SessionConfig{TTL: time.Hour}, 3*time.Second, loader, c, discardLogger())
}

func TestRegistryAcquire(t *testing.T) {
	ctrl := gomock.NewController(t)
	loader := sharedmock.NewMockScheduleLoader(ctrl)
	reg := newRegistry(t, loader, clock.NewMockClock(time.Now()))
	ctx := context.Background()

	alice, bob := uuid.New(), uuid.New()
	loader.EXPECT().Load(gomock.Any()).DoAndReturn(func(context.Context) (*schedule.Store, error) {
		return demoStore(t), nil
	}).Times(2)

	first, err := reg.Acquire(ctx, alice)
	require.NoError(t, err)
	again, err := reg.Acquire(ctx, alice)
	require.NoError(t, err)
	other, err := reg.Acquire(ctx, bob)
	require.NoError(t, err)

	assert.Same(t, first, again)
	assert.NotSame(t, first, other)
	assert.NotSame(t, first.Gate(), other.Gate())
	assert.Equal(t, alice, first.OperatorID())
	assert.Equal(t, 2, reg.Len())
}

func TestRegistryAcquireLoadsOnce(t *testing.T) {
	ctrl := gomock.NewController(t)
	loader := sharedmock.NewMockScheduleLoader(ctrl)
	reg := newRegistry(t, loader, clock.NewMockClock(time.Now()))
	store := demoStore(t)
	loader.EXPECT().Load(gomock.Any()).Return(store, nil).Times(1)

	id := uuid.New()
	var wg sync.WaitGroup
	results := make([]bool, 8)
	for i := range results {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s, err := reg.Acquire(context.Background(), id)
			results[i] = err == nil && s.Snapshot() == store
		}()
	}
	wg.Wait()

	for _, ok := range results {
		assert.True(t, ok)
	}
}

func TestRegistryLoadFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	loader := sharedmock.NewMockScheduleLoader(ctrl)
	reg := newRegistry(t, loader, clock.NewMockClock(time.Now()))
	boom := errors.New("remote down")

	loader.EXPECT().Load(gomock.Any()).Return(nil, boom)

	_, err := reg.Acquire(context.Background(), uuid.New())
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 0, reg.Len())
}

func TestRegistryDropDisarms(t *testing.T) {
	ctrl := gomock.NewController(t)
	loader := sharedmock.NewMockScheduleLoader(ctrl)
	mc := clock.NewMockClock(time.Date(2026, 1, 1, 9, 0, 0, 0, time.UTC))
	reg := newRegistry(t, loader, mc)
	loader.EXPECT().Load(gomock.Any()).Return(demoStore(t), nil)

	id := uuid.New()
	s, err := reg.Acquire(context.Background(), id)
	require.NoError(t, err)

	target, err := confirm.NewTarget(confirm.KindCancel, booking.ID(1), "")
	require.NoError(t, err)
	outcome, err := s.Gate().Invoke(confirm.KindCancel, target, func() error { return nil })
	require.NoError(t, err)
	require.Equal(t, confirm.OutcomeArmed, outcome)

	assert.True(t, reg.Drop(id))
	_, armed := s.Gate().Pending()
	assert.False(t, armed)
	assert.Equal(t, 0, mc.PendingTimers())
	assert.False(t, reg.Drop(id))
}
