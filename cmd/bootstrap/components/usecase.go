package components

import (
	"boat-scheduler/internal/domain/schedule"
	"boat-scheduler/internal/pkg/clock"
	"boat-scheduler/internal/pkg/config"
	"boat-scheduler/internal/usecase"
	"boat-scheduler/internal/usecase/commands"
	"boat-scheduler/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	func(cfg config.Config) *schedule.Engine {
		return schedule.NewEngine(cfg.Schedule.SinglePriceCents)
	},
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAuthCommands,
		commands.NewBookingCommands,
		commands.NewConfirmCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewOperatorQueries,
		queries.NewScheduleQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)
