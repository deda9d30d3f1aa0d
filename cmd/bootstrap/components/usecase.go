package components

import (
	"car-rental-api/internal/domain/rental"
	"car-rental-api/internal/pkg/clock"
	"car-rental-api/internal/pkg/password"
	"car-rental-api/internal/usecase"
	"car-rental-api/internal/usecase/commands"
	"car-rental-api/internal/usecase/queries"

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
	fx.Annotate(
		rental.NewDefaultFeeCalculator,
		fx.As(new(rental.FeeCalculator)),
	),
	func(clock clock.Clock, calc rental.FeeCalculator) *rental.Services {
		return &rental.Services{
			Clock:         clock,
			FeeCalculator: calc,
		}
	},
	fx.Annotate(
		password.NewHasher,
		fx.As(new(commands.PasswordHasher)),
	),
	commands.NewAvailabilityTracker,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAuthCommands,
		commands.NewCarCommands,
		commands.NewRentalCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewUserQueries,
		queries.NewCarQueries,
		queries.NewRentalQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)
