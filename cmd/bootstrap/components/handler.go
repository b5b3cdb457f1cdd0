package components

import (
	"boat-scheduler/internal/handler"
	"boat-scheduler/internal/handler/api"
	"boat-scheduler/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewScheduleHandler,
		api.NewBookingHandler,
		api.NewPassengerHandler,
		api.NewConfirmHandler,
		middleware.NewAuthMiddleware,
		NewHandlers,
	),
	fx.Invoke(handler.NewRouter),
)

type handlerParams struct {
	fx.In

	Auth      *api.AuthHandler
	Schedule  *api.ScheduleHandler
	Booking   *api.BookingHandler
	Passenger *api.PassengerHandler
	Confirm   *api.ConfirmHandler
}

func NewHandlers(p handlerParams) handler.Handlers {
	return handler.Handlers{
		Auth:      p.Auth,
		Schedule:  p.Schedule,
		Booking:   p.Booking,
		Passenger: p.Passenger,
		Confirm:   p.Confirm,
	}
}
