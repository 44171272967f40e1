package components

import (
	"bookit/internal/domain/booking"
	"bookit/internal/pkg/clock"
	"bookit/internal/usecase/commands"
	"bookit/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	fx.Annotate(
		booking.NewReferenceGenerator,
		fx.As(new(booking.ReferenceGenerator)),
	),
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewSlotLedger,
		commands.NewBookingCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewBookingQueries,
		queries.NewExperienceQueries,
		queries.NewPromoQueries,
	),
)
