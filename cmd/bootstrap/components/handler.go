package components

import (
	"bookit/internal/handler"
	"bookit/internal/handler/api"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewBookingHandler,
		api.NewPromoHandler,
		api.NewExperienceHandler,
		func(b *api.BookingHandler, p *api.PromoHandler, e *api.ExperienceHandler) handler.Handlers {
			return handler.Handlers{Booking: b, Promo: p, Experience: e}
		},
	),
	fx.Invoke(handler.NewRouter),
)
