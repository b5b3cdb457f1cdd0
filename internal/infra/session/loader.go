package session

import (
	"context"
	"log/slog"
	"time"

	"boat-scheduler/internal/domain/schedule"
	"boat-scheduler/internal/infra"
	"boat-scheduler/internal/pkg/clock"
	"boat-scheduler/internal/pkg/config"
	"boat-scheduler/internal/usecase/shared"
)

// Loader builds a session's starting schedule from the configured data source.
type Loader struct {
	source  string
	window  time.Duration
	loc     *time.Location
	gateway shared.ReservationGateway
	clock   clock.Clock
	logger  *slog.Logger
}

func NewLoader(cfg config.ScheduleConfig, loc *time.Location, gateway shared.ReservationGateway, c clock.Clock, logger *slog.Logger) *Loader {
	if loc == nil {
		loc = time.UTC
	}
	if c == nil {
		c = clock.NewRealClock()
	}
	return &Loader{
		source:  cfg.DataSource,
		window:  cfg.SyncWindow,
		loc:     loc,
		gateway: gateway,
		clock:   c,
		logger:  logger,
	}
}

func (l *Loader) Load(ctx context.Context) (*schedule.Store, error) {
	switch l.source {
	case config.DataSourceDemo, "":
		store, err := schedule.DemoStore(l.loc)
		if err != nil {
			return nil, infra.WrapRepoErr(l.logger, infra.KindLoadFailure, "failed to build demo schedule", err)
		}
		return store, nil
	case config.DataSourceEmpty:
		fleet, err := schedule.DemoFleet()
		if err != nil {
			return nil, infra.WrapRepoErr(l.logger, infra.KindLoadFailure, "failed to build fleet", err)
		}
		return schedule.NewStore(fleet, nil)
	case config.DataSourceRemote:
		return l.loadRemote(ctx)
	default:
		return nil, infra.WrapRepoErr(l.logger, infra.KindInvalidConfig, "unknown schedule data source "+l.source, nil)
	}
}

// loadRemote fetches the window of window before and after now.
func (l *Loader) loadRemote(ctx context.Context) (*schedule.Store, error) {
	if !l.gateway.Enabled() {
		return nil, infra.WrapRepoErr(l.logger, infra.KindInvalidConfig, "remote data source without a reservation service", nil)
	}
	now := l.clock.Now().In(l.loc)
	remote, err := l.gateway.FetchSchedule(ctx, now.Add(-l.window), now.Add(l.window))
	if err != nil {
		return nil, infra.WrapRepoErr(l.logger, infra.KindLoadFailure, "failed to fetch remote schedule", err)
	}
	store, err := schedule.NewStore(remote.Resources, remote.Bookings)
	if err != nil {
		return nil, infra.WrapRepoErr(l.logger, infra.KindLoadFailure, "remote schedule is inconsistent", err)
	}
	return store, nil
}

var _ shared.ScheduleLoader = (*Loader)(nil)
