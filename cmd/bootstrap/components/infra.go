package components

import (
	"log/slog"
	"strings"
	"time"

	"boat-scheduler/internal/infra/remote"
	"boat-scheduler/internal/infra/repository"
	"boat-scheduler/internal/infra/session"
	"boat-scheduler/internal/pkg/clock"
	"boat-scheduler/internal/pkg/config"
	"boat-scheduler/internal/usecase/queries"
	"boat-scheduler/internal/usecase/shared"

	"go.uber.org/fx"
)

var InfraModule = fx.Module("infra",
	accountModule,
	remoteModule,
	sessionModule,
)

var accountModule = fx.Module("infra/account",
	fx.Provide(
		fx.Annotate(
			NewOperatorRepository,
			fx.As(new(queries.OperatorReadStore)),
		),
	),
)

var remoteModule = fx.Module("infra/remote",
	fx.Provide(
		NewReservationGateway,
	),
)

var sessionModule = fx.Module("infra/session",
	fx.Provide(
		fx.Annotate(
			NewScheduleLoader,
			fx.As(new(shared.ScheduleLoader)),
		),
		fx.Annotate(
			NewSessionRegistry,
			fx.As(new(shared.SessionRepository)),
		),
	),
)

func NewOperatorRepository(cfg config.Config, logger *slog.Logger) (*repository.OperatorRepository, error) {
	return repository.NewOperatorRepository(cfg.Operator, logger)
}

// NewReservationGateway talks to the reservation service only when the schedule is sourced from it.
func NewReservationGateway(cfg config.Config, loc *time.Location, logger *slog.Logger) shared.ReservationGateway {
	if cfg.Schedule.DataSource != config.DataSourceRemote || strings.TrimSpace(cfg.Remote.BaseURL) == "" {
		logger.Info("Reservation service disabled", "data_source", cfg.Schedule.DataSource)
		return remote.NoopGateway{}
	}
	logger.Info("Reservation service enabled", "base_url", cfg.Remote.BaseURL)
	return remote.NewGateway(remote.NewClient(cfg.Remote), loc, logger)
}

func NewScheduleLoader(cfg config.Config, loc *time.Location, gateway shared.ReservationGateway, c clock.Clock, logger *slog.Logger) *session.Loader {
	return session.NewLoader(cfg.Schedule, loc, gateway, c, logger)
}

func NewSessionRegistry(cfg config.Config, loader shared.ScheduleLoader, c clock.Clock, logger *slog.Logger) *session.Registry {
	return session.NewRegistry(cfg.Session, cfg.Schedule.ConfirmTimeout, loader, c, logger)
}
