package bootstrap

import (
	"time"

	"boat-scheduler/internal/pkg/config"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
		NewScheduleLocation,
	),
)

// NewScheduleLocation is the zone bookings are displayed and imported in.
func NewScheduleLocation(cfg config.Config) (*time.Location, error) {
	return cfg.Schedule.Location()
}
