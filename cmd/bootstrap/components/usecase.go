package components

import (
	"equiprent/internal/pkg/clock"
	"equiprent/internal/usecase/commands"
	"equiprent/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseCommandsModule,
	usecaseQueriesModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewRentalCommands,
		commands.NewFleetCommands,
		commands.NewCustomerCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewItemQueries,
		queries.NewCustomerQueries,
		queries.NewContractQueries,
		queries.NewDashboardQueries,
		queries.NewPricingQueries,
	),
)
